package remote

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/config/types"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/sony/gobreaker"
)

const (
	executeMethod = "swapexecutor_executeExactIn"
	settleMethod  = "swapexecutor_settle"

	settledExecuted  = "executed"
	settledCancelled = "cancelled"
)

var (
	ErrExecutorUnavailable = errors.New("swap executor unavailable")
	ErrMissingSwapID       = errors.New("swap request without id")
	// ErrSwapCancelled means the executor confirmed the swap did not and will not take place
	ErrSwapCancelled = errors.New("swap cancelled")
	// ErrSwapUnsettled means the outcome of the swap is unknown. Retrying with the same id
	// returns the swapped amount if it took place.
	ErrSwapUnsettled = errors.New("swap outcome unknown")
)

// Config is the configuration of the remote swap executor client
type Config struct {
	// URL of the JSON-RPC endpoint of the executor
	URL string `mapstructure:"URL"`
	// Timeout of a single call
	Timeout types.Duration `mapstructure:"Timeout"`
	// MaxConsecutiveFailures opens the breaker once reached
	MaxConsecutiveFailures uint32 `mapstructure:"MaxConsecutiveFailures"`
	// OpenTimeout is how long the breaker stays open
	OpenTimeout types.Duration `mapstructure:"OpenTimeout"`
}

// RejectedError is an error answered by the executor. Rejected swaps are never executed.
type RejectedError struct {
	Code    int
	Message string
}

func (e *RejectedError) Error() string {
	return fmt.Sprintf("%d %s", e.Code, e.Message)
}

type executeResult struct {
	AmountOut uint64 `json:"amountOut"`
}

// settleResult is the final state of a swap id. Settling a swap still in flight cancels it,
// unless it has already been executed.
type settleResult struct {
	Status    string `json:"status"`
	AmountOut uint64 `json:"amountOut"`
}

// callFn performs the JSON-RPC call, it's rpc.JSONRPCCallWithContext outside of tests
type callFn func(ctx context.Context, url, method string, parameters ...interface{}) (rpc.Response, error)

// Executor sends the swaps to a remote executor service. Calls go through a circuit breaker
// so a failing executor makes the engines fail fast instead of holding their db transactions.
type Executor struct {
	logger  *log.Logger
	url     string
	timeout time.Duration
	cb      *gobreaker.CircuitBreaker
	call    callFn
}

var _ swap.Executor = (*Executor)(nil)

func New(logger *log.Logger, cfg Config) *Executor {
	settings := gobreaker.Settings{
		Name:    "swap-executor",
		Timeout: cfg.OpenTimeout.Duration,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.MaxConsecutiveFailures
		},
		OnStateChange: func(name string, from gobreaker.State, to gobreaker.State) {
			logger.Warnf("circuit breaker %s changed from %s to %s", name, from, to)
		},
	}
	return &Executor{
		logger:  logger,
		url:     cfg.URL,
		timeout: cfg.Timeout.Duration,
		cb:      gobreaker.NewCircuitBreaker(settings),
		call:    rpc.JSONRPCCallWithContext,
	}
}

// Execute implements swap.Executor. When the call fails or times out the swap is settled
// by id, so the returned error always means the swap did not take place, except for
// ErrSwapUnsettled.
func (e *Executor) Execute(ctx context.Context, req swap.Request) (uint64, error) {
	if req.ID == "" {
		return 0, ErrMissingSwapID
	}
	result, err := e.cb.Execute(func() (interface{}, error) {
		return e.execute(ctx, req)
	})
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return 0, fmt.Errorf("%w: %w", ErrExecutorUnavailable, err)
	}
	if err != nil {
		return 0, err
	}
	amountOut, ok := result.(uint64)
	if !ok {
		return 0, fmt.Errorf("unexpected result type %T", result)
	}
	return amountOut, nil
}

func (e *Executor) execute(ctx context.Context, req swap.Request) (uint64, error) {
	callCtx, cancel := e.withTimeout(ctx)
	defer cancel()

	var result executeResult
	err := e.callInto(callCtx, &result, executeMethod, req)
	if err != nil {
		var rejected *RejectedError
		if errors.As(err, &rejected) {
			return 0, err
		}
		e.logger.Warnf("swap %s failed with %v, settling it", req.ID, err)
		return e.settle(ctx, req, err)
	}
	e.logger.Debugf("swap %s: %d %s into %d %s",
		req.ID, req.AmountIn, req.InputAsset, result.AmountOut, req.OutputAsset)
	return result.AmountOut, nil
}

// settle asks the executor for the final state of req, even if ctx is already done
func (e *Executor) settle(ctx context.Context, req swap.Request, cause error) (uint64, error) {
	settleCtx, cancel := e.withTimeout(context.WithoutCancel(ctx))
	defer cancel()

	var result settleResult
	if err := e.callInto(settleCtx, &result, settleMethod, req.ID); err != nil {
		return 0, fmt.Errorf("%w: %s: %w, settle: %w", ErrSwapUnsettled, req.ID, cause, err)
	}
	switch result.Status {
	case settledExecuted:
		e.logger.Infof("swap %s was executed, %d %s received", req.ID, result.AmountOut, req.OutputAsset)
		return result.AmountOut, nil
	case settledCancelled:
		return 0, fmt.Errorf("%w: %s: %w", ErrSwapCancelled, req.ID, cause)
	default:
		return 0, fmt.Errorf("%w: %s: unexpected settle status %q", ErrSwapUnsettled, req.ID, result.Status)
	}
}

func (e *Executor) callInto(ctx context.Context, result interface{}, method string, params ...interface{}) error {
	res, err := e.call(ctx, e.url, method, params...)
	if err != nil {
		return err
	}
	if res.Error != nil {
		return &RejectedError{Code: res.Error.Code, Message: res.Error.Message}
	}
	return json.Unmarshal(res.Result, result)
}

func (e *Executor) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if e.timeout > 0 {
		return context.WithTimeout(ctx, e.timeout)
	}
	return context.WithCancel(ctx)
}
