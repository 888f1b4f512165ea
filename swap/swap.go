package swap

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xPolygon/swaplayer/messages"
)

var (
	ErrUnderDelivered         = errors.New("swap under delivered")
	ErrSameAsset              = errors.New("swap input and output assets are the same")
	ErrZeroAmountIn           = errors.New("swap amount in is zero")
	ErrInvalidSwapInstruction = errors.New("invalid swap instruction")
)

// Request is an exact in swap. Route is nil when the executor has to pick it, SwapType is set
// for swaps requested through a SwapLayerMessage and Instruction for pre-composed ones.
// ID is the idempotency key of the swap.
type Request struct {
	ID           string                    `json:"id"`
	InputAsset   messages.UniversalAddress `json:"inputAsset"`
	OutputAsset  messages.UniversalAddress `json:"outputAsset"`
	AmountIn     uint64                    `json:"amountIn"`
	MinAmountOut uint64                    `json:"minAmountOut"`
	Deadline     uint32                    `json:"deadline,omitempty"`
	SwapType     *messages.SwapType        `json:"swapType,omitempty"`
	Instruction  []byte                    `json:"instruction,omitempty"`
}

// Executor runs a swap on a DEX and returns the amount of OutputAsset received. It must not
// return an error after the swap has taken place, and a request with an ID that was already
// executed returns the recorded amount without swapping again.
type Executor interface {
	Execute(ctx context.Context, req Request) (uint64, error)
}

// CheckedExecute runs req on executor and checks the executor delivered at least MinAmountOut
func CheckedExecute(ctx context.Context, executor Executor, req Request) (uint64, error) {
	if req.InputAsset == req.OutputAsset {
		return 0, ErrSameAsset
	}
	if req.AmountIn == 0 {
		return 0, ErrZeroAmountIn
	}
	amountOut, err := executor.Execute(ctx, req)
	if err != nil {
		return 0, fmt.Errorf("swap of %d %s into %s failed: %w", req.AmountIn, req.InputAsset, req.OutputAsset, err)
	}
	if amountOut < req.MinAmountOut {
		return 0, fmt.Errorf("%w: got %d, expected at least %d", ErrUnderDelivered, amountOut, req.MinAmountOut)
	}
	return amountOut, nil
}
