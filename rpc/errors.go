package rpc

import (
	"context"
	"errors"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/0xPolygon/swaplayer/swap/remote"
)

// ErrorClass tells the callers how to react to a failed operation
type ErrorClass string

const (
	// ValidationError is returned for malformed requests, rejected before any mutation
	ValidationError ErrorClass = "ValidationError"
	// EconomicsError is returned when fees or gas dropoffs exceed what's allowed
	EconomicsError ErrorClass = "EconomicsError"
	// ConsistencyError is returned when the completion path doesn't match the fill
	ConsistencyError ErrorClass = "ConsistencyError"
	// ReplayError is returned when the fill was already handled
	ReplayError ErrorClass = "ReplayError"
	// ExternalFailure is returned when a dependency (swap, attestation, storage) failed.
	// The operation can be retried.
	ExternalFailure ErrorClass = "ExternalFailure"
)

var errorClasses = []struct {
	class ErrorClass
	errs  []error
}{
	{
		class: ReplayError,
		errs: []error{
			redemption.ErrFillAlreadyPrepared,
			redemption.ErrFillAlreadyConsumed,
			relayer.ErrAlreadyQueued,
		},
	},
	{
		class: ConsistencyError,
		errs: []error{
			redemption.ErrInvalidRedeemMode,
			redemption.ErrInvalidOutputToken,
			redemption.ErrUnsupportedFillType,
		},
	},
	{
		class: EconomicsError,
		errs: []error{
			relayerfee.ErrRelayingDisabled,
			relayerfee.ErrInvalidGasDropoff,
			relayerfee.ErrGasDropoffCalculationFailed,
			relayerfee.ErrEvmGasCalculationFailed,
			staging.ErrExceedsMaxRelayingFee,
			staging.ErrRelayingFeeExceedsMinAmountOut,
			staging.ErrZeroMinAmountOut,
			staging.ErrCustodyOverflow,
			redemption.ErrInvalidRelayerFee,
			redemption.ErrSwapPastDeadline,
			redemption.ErrInvalidLimitAmount,
			redemption.ErrSwapTimeLimitNotExceeded,
			custody.ErrInsufficientBalance,
			custody.ErrBalanceOverflow,
			messages.ErrRelayerFeeOverflow,
		},
	},
	{
		class: ExternalFailure,
		errs: []error{
			swap.ErrUnderDelivered,
			remote.ErrExecutorUnavailable,
			remote.ErrSwapCancelled,
			remote.ErrSwapUnsettled,
			staging.ErrHandoffPending,
			redemption.ErrInvalidAttestation,
			bridge.ErrInvalidSignature,
			bridge.ErrQuorumNotReached,
			bridge.ErrReceiptMismatch,
			bridge.ErrInvalidReceiptBody,
			context.DeadlineExceeded,
		},
	},
	{
		class: ValidationError,
		errs: []error{
			messages.ErrInvalidEncoding,
			relayerfee.ErrInvalidExecutionParams,
			registry.ErrAlreadyInitialized,
			registry.ErrNotInitialized,
			registry.ErrInvalidCustodian,
			registry.ErrChainNotAllowed,
			registry.ErrInvalidPeer,
			registry.ErrNoRegisteredPeer,
			registry.ErrInvalidRelayParams,
			registry.ErrOwnerOnly,
			registry.ErrOwnerOrAssistantOnly,
			registry.ErrFeeUpdaterOnly,
			registry.ErrNotPendingOwner,
			registry.ErrInvalidNewOwner,
			registry.ErrNoPendingOwner,
			staging.ErrInvalidRecipient,
			staging.ErrInvalidSourceAsset,
			staging.ErrInvalidAmount,
			staging.ErrInvalidRedeemOption,
			staging.ErrInvalidCaller,
			redemption.ErrInvalidRedeemer,
			redemption.ErrInvalidRecipient,
			swap.ErrSameAsset,
			swap.ErrZeroAmountIn,
			swap.ErrInvalidSwapInstruction,
			remote.ErrMissingSwapID,
			custody.ErrZeroAmount,
			db.ErrNotFound,
			relayer.ErrNotFound,
			relayer.ErrRelayerNotEnabled,
		},
	},
}

// Classify returns the class of err. Errors that aren't known by the node are
// considered external failures.
func Classify(err error) ErrorClass {
	for _, c := range errorClasses {
		for _, e := range c.errs {
			if errors.Is(err, e) {
				return c.class
			}
		}
	}

	return ExternalFailure
}

// newRPCError builds the error returned by the endpoints, prefixed with the class of err
func newRPCError(msg string, err error) rpc.Error {
	code := rpc.DefaultErrorCode
	if errors.Is(err, db.ErrNotFound) || errors.Is(err, relayer.ErrNotFound) {
		code = rpc.NotFoundErrorCode
	}

	return rpc.NewRPCError(code, fmt.Sprintf("%s: %s: %s", Classify(err), msg, err))
}
