package registry

import (
	"errors"
	"fmt"
	"math"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/relayerfee"
)

var (
	ErrAlreadyInitialized   = errors.New("registry already initialized")
	ErrNotInitialized       = errors.New("registry not initialized")
	ErrInvalidCustodian     = errors.New("invalid custodian address")
	ErrChainNotAllowed      = errors.New("chain not allowed")
	ErrInvalidPeer          = errors.New("invalid peer")
	ErrNoRegisteredPeer     = errors.New("no registered peer")
	ErrInvalidRelayParams   = errors.New("invalid relay params")
	ErrOwnerOnly            = errors.New("caller is not the owner")
	ErrOwnerOrAssistantOnly = errors.New("caller is not the owner or the owner assistant")
	ErrFeeUpdaterOnly       = errors.New("caller is not the fee updater")
	ErrNotPendingOwner      = errors.New("caller is not the pending owner")
	ErrInvalidNewOwner      = errors.New("invalid new owner")
	ErrNoPendingOwner       = errors.New("no pending ownership transfer")
)

// Peer is the swap layer deployment on another chain
type Peer struct {
	Chain       messages.ChainID          `meddler:"chain" json:"chain"`
	Address     messages.UniversalAddress `meddler:"address,universaladdress" json:"address"`
	RelayParams messages.RelayParams      `meddler:"relay_params,json" json:"relayParams"`
}

// Custodian holds the roles allowed to administrate the registry. The zero address in
// PendingOwner means there's no ownership transfer in progress.
type Custodian struct {
	ID             int64                     `meddler:"id,pk" json:"-"`
	Owner          messages.UniversalAddress `meddler:"owner,universaladdress" json:"owner"`
	PendingOwner   messages.UniversalAddress `meddler:"pending_owner,universaladdress" json:"pendingOwner"`
	OwnerAssistant messages.UniversalAddress `meddler:"owner_assistant,universaladdress" json:"ownerAssistant"`
	FeeUpdater     messages.UniversalAddress `meddler:"fee_updater,universaladdress" json:"feeUpdater"`
	FeeRecipient   messages.UniversalAddress `meddler:"fee_recipient,universaladdress" json:"feeRecipient"`
}

func (c *Custodian) isOwner(caller messages.UniversalAddress) bool {
	return caller == c.Owner
}

func (c *Custodian) isOwnerOrAssistant(caller messages.UniversalAddress) bool {
	return caller == c.Owner || caller == c.OwnerAssistant
}

// HasPendingOwner reports whether an ownership transfer waits for confirmation
func (c *Custodian) HasPendingOwner() bool {
	return !c.PendingOwner.IsZero()
}

// ValidateRelayParams checks the params can be used to price relays. A BaseFee of
// math.MaxUint32 is accepted, it disables relaying towards the peer.
func ValidateRelayParams(params messages.RelayParams) error {
	if params.NativeTokenPrice == 0 {
		return fmt.Errorf("%w: native token price is zero", ErrInvalidRelayParams)
	}
	if params.GasDropoffMargin > relayerfee.MaxMargin {
		return fmt.Errorf("%w: gas dropoff margin %d above %d",
			ErrInvalidRelayParams, params.GasDropoffMargin, relayerfee.MaxMargin)
	}
	switch params.ExecutionParams.Kind {
	case messages.ExecutionNone:
	case messages.ExecutionEvm:
		if params.ExecutionParams.GasPrice == 0 {
			return fmt.Errorf("%w: gas price is zero", ErrInvalidRelayParams)
		}
		if params.ExecutionParams.GasPriceMargin > relayerfee.MaxMargin {
			return fmt.Errorf("%w: gas price margin %d above %d",
				ErrInvalidRelayParams, params.ExecutionParams.GasPriceMargin, relayerfee.MaxMargin)
		}
	default:
		return fmt.Errorf("%w: unknown execution params %d", ErrInvalidRelayParams, params.ExecutionParams.Kind)
	}
	if params.SwapTimeLimit.FastLimit > params.SwapTimeLimit.FinalizedLimit {
		return fmt.Errorf("%w: fast swap time limit %d above the finalized one %d",
			ErrInvalidRelayParams, params.SwapTimeLimit.FastLimit, params.SwapTimeLimit.FinalizedLimit)
	}
	return nil
}

// RelayingDisabled reports whether the peer refuses relayed redemptions
func (p Peer) RelayingDisabled() bool {
	return p.RelayParams.BaseFee == math.MaxUint32
}
