package rpc

import (
	"context"
	"fmt"
	"math/big"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/rpc/types"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const (
	// SWAPLAYER is the namespace of the swap layer service
	SWAPLAYER = "swaplayer"
	meterName = "github.com/0xPolygon/swaplayer/rpc"

	usdcDecimals = 6
)

// SwapLayerEndpoints contains implementations for the "swaplayer" RPC endpoints
type SwapLayerEndpoints struct {
	logger       *log.Logger
	meter        metric.Meter
	readTimeout  time.Duration
	writeTimeout time.Duration
	registry     PeerRegistry
	staging      OutboundStager
	redemption   FillRedeemer
	ledger       Balancer
	relayer      RelayQueuer
}

// NewSwapLayerEndpoints returns SwapLayerEndpoints. relayer can be nil, in which case the relay
// endpoints are disabled.
func NewSwapLayerEndpoints(
	logger *log.Logger,
	writeTimeout time.Duration,
	readTimeout time.Duration,
	registry PeerRegistry,
	staging OutboundStager,
	redemption FillRedeemer,
	ledger Balancer,
	relayer RelayQueuer,
) *SwapLayerEndpoints {
	meter := otel.Meter(meterName)
	return &SwapLayerEndpoints{
		logger:       logger,
		meter:        meter,
		readTimeout:  readTimeout,
		writeTimeout: writeTimeout,
		registry:     registry,
		staging:      staging,
		redemption:   redemption,
		ledger:       ledger,
		relayer:      relayer,
	}
}

func (s *SwapLayerEndpoints) count(ctx context.Context, name string) {
	c, merr := s.meter.Int64Counter(name)
	if merr != nil {
		s.logger.Warnf("failed to create %s counter: %s", name, merr)
	}
	c.Add(ctx, 1)
}

// QuoteRelayingFee returns the fee a relayer charges to deliver a fill on chain with the given
// gas dropoff (wire units) and encoded output token
func (s *SwapLayerEndpoints) QuoteRelayingFee(
	chain messages.ChainID, gasDropoff uint32, outputToken hexutil.Bytes,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "quote_relaying_fee")

	output, err := messages.DecodeOutputToken(outputToken)
	if err != nil {
		return nil, newRPCError("failed to decode output token", err)
	}
	peer, err := s.registry.GetPeer(ctx, chain)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get peer for chain %d", chain), err)
	}
	fee, err := relayerfee.CalculateRelayerFee(peer.RelayParams, gasDropoff, output)
	if err != nil {
		return nil, newRPCError("failed to calculate relaying fee", err)
	}

	return types.RelayingFeeQuote{
		Chain:      chain,
		Fee:        fee,
		FeeUSDC:    decimal.NewFromBigInt(new(big.Int).SetUint64(fee), -usdcDecimals).String(),
		GasDropoff: relayerfee.DenormalizeGasDropoff(gasDropoff),
	}, nil
}

// GetPeer returns the peer registered for chain
func (s *SwapLayerEndpoints) GetPeer(chain messages.ChainID) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_peer")

	peer, err := s.registry.GetPeer(ctx, chain)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get peer for chain %d", chain), err)
	}
	return peer, nil
}

// GetPeers returns all the registered peers
func (s *SwapLayerEndpoints) GetPeers() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_peers")

	peers, err := s.registry.GetPeers(ctx)
	if err != nil {
		return nil, newRPCError("failed to get peers", err)
	}
	return peers, nil
}

func (s *SwapLayerEndpoints) GetCustodian() (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_custodian")

	custodian, err := s.registry.GetCustodian(ctx)
	if err != nil {
		return nil, newRPCError("failed to get custodian", err)
	}
	return custodian, nil
}

func (s *SwapLayerEndpoints) GetStagedOutbound(id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_staged_outbound")

	staged, err := s.staging.GetStagedOutbound(ctx, id)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get staged outbound %s", id), err)
	}
	return staged, nil
}

func (s *SwapLayerEndpoints) GetStagedOutboundsBySender(sender messages.UniversalAddress) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_staged_outbounds_by_sender")

	staged, err := s.staging.GetStagedOutboundsBySender(ctx, sender)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get staged outbounds of %s", sender), err)
	}
	return staged, nil
}

func (s *SwapLayerEndpoints) GetFill(fillID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_fill")

	fill, err := s.redemption.GetFill(ctx, fillID)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get fill %s", fillID), err)
	}
	return fill, nil
}

func (s *SwapLayerEndpoints) GetStagedInbound(id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_staged_inbound")

	staged, err := s.redemption.GetStagedInbound(ctx, id)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get staged inbound %s", id), err)
	}
	return staged, nil
}

func (s *SwapLayerEndpoints) GetBalances(account messages.UniversalAddress) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_balances")

	balances, err := s.ledger.GetBalances(ctx, account)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get balances of %s", account), err)
	}
	return balances, nil
}

// QueueRelay asks the relayer of this node to redeem a prepared fill on behalf of its recipient.
// Only unconsumed fills requesting a relayed redemption are accepted.
func (s *SwapLayerEndpoints) QueueRelay(fillID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "queue_relay")

	if s.relayer == nil {
		return nil, newRPCError("this client does not relay fills", relayer.ErrRelayerNotEnabled)
	}
	fill, err := s.redemption.GetFill(ctx, fillID)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get fill %s", fillID), err)
	}
	if fill.Status != redemption.Unconsumed {
		return nil, newRPCError(fmt.Sprintf("fill %s can't be relayed", fillID), redemption.ErrFillAlreadyConsumed)
	}
	msg, err := fill.Message()
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to decode fill %s", fillID), err)
	}
	if msg.RedeemMode.Kind != messages.RedeemRelay {
		return nil, newRPCError(fmt.Sprintf("fill %s can't be relayed", fillID),
			fmt.Errorf("%w: %s", redemption.ErrInvalidRedeemMode, msg.RedeemMode.Kind))
	}
	if err := s.relayer.AddFillToQueue(ctx, fillID); err != nil {
		return nil, newRPCError("error adding fill to the queue", err)
	}
	return nil, nil
}

// GetRelayStatus returns the status of a fill that has been previously queued to be relayed
func (s *SwapLayerEndpoints) GetRelayStatus(fillID common.Hash) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_relay_status")

	if s.relayer == nil {
		return nil, newRPCError("this client does not relay fills", relayer.ErrRelayerNotEnabled)
	}
	relay, err := s.relayer.GetRelay(ctx, fillID)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get relay status of fill %s", fillID), err)
	}
	return relay, nil
}

// DecodeMessage decodes an encoded SwapLayerMessage
func (s *SwapLayerEndpoints) DecodeMessage(payload hexutil.Bytes) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "decode_message")

	msg, err := messages.Decode(payload)
	if err != nil {
		return nil, newRPCError("failed to decode message", err)
	}
	return msg, nil
}

// AddPeer registers the peer encoded in args (see messages.EncodeAddPeerArgs). caller must be
// the owner of the custodian.
func (s *SwapLayerEndpoints) AddPeer(caller messages.UniversalAddress, args hexutil.Bytes) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "add_peer")

	peer, err := messages.DecodeAddPeerArgs(args)
	if err != nil {
		return nil, newRPCError("failed to decode peer", err)
	}
	if err := s.registry.AddPeer(ctx, caller, peer.Chain, peer.Address, peer.RelayParams); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to add peer for chain %d", peer.Chain), err)
	}
	return nil, nil
}

// UpdatePeer replaces the address and relay params of a registered peer. args are encoded the
// same way as for AddPeer.
func (s *SwapLayerEndpoints) UpdatePeer(caller messages.UniversalAddress, args hexutil.Bytes) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "update_peer")

	peer, err := messages.DecodeAddPeerArgs(args)
	if err != nil {
		return nil, newRPCError("failed to decode peer", err)
	}
	if err := s.registry.UpdatePeer(ctx, caller, peer.Chain, peer.Address, peer.RelayParams); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to update peer for chain %d", peer.Chain), err)
	}
	return nil, nil
}

// UpdateRelayParams sets the relay params encoded in args (see messages.EncodeUpdateRelayParamsArgs)
func (s *SwapLayerEndpoints) UpdateRelayParams(
	caller messages.UniversalAddress, args hexutil.Bytes,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "update_relay_params")

	update, err := messages.DecodeUpdateRelayParamsArgs(args)
	if err != nil {
		return nil, newRPCError("failed to decode relay params", err)
	}
	if err := s.registry.UpdateRelayParams(ctx, caller, update.Chain, update.RelayParams); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to update relay params of chain %d", update.Chain), err)
	}
	return nil, nil
}

func (s *SwapLayerEndpoints) SubmitOwnershipTransfer(
	caller, newOwner messages.UniversalAddress,
) (interface{}, rpc.Error) {
	return s.updateCustodian("submit_ownership_transfer", "failed to submit ownership transfer",
		func(ctx context.Context) error {
			return s.registry.SubmitOwnershipTransfer(ctx, caller, newOwner)
		})
}

func (s *SwapLayerEndpoints) ConfirmOwnershipTransfer(caller messages.UniversalAddress) (interface{}, rpc.Error) {
	return s.updateCustodian("confirm_ownership_transfer", "failed to confirm ownership transfer",
		func(ctx context.Context) error {
			return s.registry.ConfirmOwnershipTransfer(ctx, caller)
		})
}

func (s *SwapLayerEndpoints) CancelOwnershipTransfer(caller messages.UniversalAddress) (interface{}, rpc.Error) {
	return s.updateCustodian("cancel_ownership_transfer", "failed to cancel ownership transfer",
		func(ctx context.Context) error {
			return s.registry.CancelOwnershipTransfer(ctx, caller)
		})
}

func (s *SwapLayerEndpoints) UpdateOwnerAssistant(
	caller, newAssistant messages.UniversalAddress,
) (interface{}, rpc.Error) {
	return s.updateCustodian("update_owner_assistant", "failed to update owner assistant",
		func(ctx context.Context) error {
			return s.registry.UpdateOwnerAssistant(ctx, caller, newAssistant)
		})
}

func (s *SwapLayerEndpoints) UpdateFeeRecipient(
	caller, newFeeRecipient messages.UniversalAddress,
) (interface{}, rpc.Error) {
	return s.updateCustodian("update_fee_recipient", "failed to update fee recipient",
		func(ctx context.Context) error {
			return s.registry.UpdateFeeRecipient(ctx, caller, newFeeRecipient)
		})
}

func (s *SwapLayerEndpoints) UpdateFeeUpdater(
	caller, newFeeUpdater messages.UniversalAddress,
) (interface{}, rpc.Error) {
	return s.updateCustodian("update_fee_updater", "failed to update fee updater",
		func(ctx context.Context) error {
			return s.registry.UpdateFeeUpdater(ctx, caller, newFeeUpdater)
		})
}

func (s *SwapLayerEndpoints) updateCustodian(
	name, msg string, update func(ctx context.Context) error,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, name)

	if err := update(ctx); err != nil {
		return nil, newRPCError(msg, err)
	}
	return nil, nil
}

// Deposit credits amount of asset to account
func (s *SwapLayerEndpoints) Deposit(
	account, asset messages.UniversalAddress, amount uint64,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "deposit")

	if err := s.ledger.Deposit(ctx, account, asset, amount); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to deposit into %s", account), err)
	}
	return nil, nil
}

// StageOutbound takes custody of the input of an outbound order and returns the staged record
func (s *SwapLayerEndpoints) StageOutbound(args staging.StageOutboundArgs) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "stage_outbound")

	staged, err := s.staging.StageOutbound(ctx, args)
	if err != nil {
		return nil, newRPCError("failed to stage outbound", err)
	}
	return staged, nil
}

// InitiateTransfer hands the staged order id over to the bridge. An ExternalFailure caused by
// staging.ErrHandoffPending means the order is committed and its handoff will be retried, check
// it with GetHandoff.
func (s *SwapLayerEndpoints) InitiateTransfer(caller messages.UniversalAddress, id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "initiate_transfer")

	handoff, err := s.staging.InitiateTransfer(ctx, caller, id)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to initiate transfer of %s", id), err)
	}
	return handoff, nil
}

func (s *SwapLayerEndpoints) ReleaseStagedOutbound(
	caller messages.UniversalAddress, id string,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "release_staged_outbound")

	if err := s.staging.ReleaseStagedOutbound(ctx, caller, id); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to release staged outbound %s", id), err)
	}
	return nil, nil
}

func (s *SwapLayerEndpoints) GetHandoff(id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.readTimeout)
	defer cancel()
	s.count(ctx, "get_handoff")

	handoff, err := s.staging.GetHandoff(ctx, id)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to get handoff %s", id), err)
	}
	return handoff, nil
}

// PrepareFill verifies an inbound fill and records it
func (s *SwapLayerEndpoints) PrepareFill(fill bridge.InboundFill) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "prepare_fill")

	prepared, err := s.redemption.PrepareFill(ctx, fill)
	if err != nil {
		return nil, newRPCError(
			fmt.Sprintf("failed to prepare fill %d from chain %d", fill.Sequence, fill.SourceChain), err,
		)
	}
	return prepared, nil
}

// RedeemFill completes a prepared fill through the given path. caller is the redeemer for the
// direct paths and the payer otherwise.
func (s *SwapLayerEndpoints) RedeemFill(
	fillID common.Hash, completion redemption.Completion, caller messages.UniversalAddress,
) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "redeem_fill")

	var complete func(context.Context, common.Hash, messages.UniversalAddress) (redemption.Redemption, error)
	switch completion {
	case redemption.TransferDirect:
		complete = s.redemption.CompleteTransferDirect
	case redemption.SwapDirect:
		complete = s.redemption.CompleteSwapDirect
	case redemption.TransferRelay:
		complete = s.redemption.CompleteTransferRelay
	case redemption.SwapRelay:
		complete = s.redemption.CompleteSwapRelay
	case redemption.TransferPayload:
		complete = s.redemption.CompleteTransferPayload
	case redemption.SwapPayload:
		complete = s.redemption.CompleteSwapPayload
	default:
		return nil, newRPCError(fmt.Sprintf("unknown completion %q", completion), redemption.ErrInvalidRedeemMode)
	}

	result, err := complete(ctx, fillID, caller)
	if err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to redeem fill %s", fillID), err)
	}
	return result, nil
}

func (s *SwapLayerEndpoints) ReleaseInbound(caller messages.UniversalAddress, id string) (interface{}, rpc.Error) {
	ctx, cancel := context.WithTimeout(context.Background(), s.writeTimeout)
	defer cancel()
	s.count(ctx, "release_inbound")

	if err := s.redemption.ReleaseInbound(ctx, caller, id); err != nil {
		return nil, newRPCError(fmt.Sprintf("failed to release staged inbound %s", id), err)
	}
	return nil, nil
}
