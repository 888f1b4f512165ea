package rpc

import (
	"context"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/ethereum/go-ethereum/common"
)

type PeerRegistry interface {
	GetPeer(ctx context.Context, chain messages.ChainID) (registry.Peer, error)
	GetPeers(ctx context.Context) ([]registry.Peer, error)
	GetCustodian(ctx context.Context) (registry.Custodian, error)
	AddPeer(
		ctx context.Context, caller messages.UniversalAddress, chain messages.ChainID,
		address messages.UniversalAddress, params messages.RelayParams,
	) error
	UpdatePeer(
		ctx context.Context, caller messages.UniversalAddress, chain messages.ChainID,
		address messages.UniversalAddress, params messages.RelayParams,
	) error
	UpdateRelayParams(
		ctx context.Context, caller messages.UniversalAddress, chain messages.ChainID, params messages.RelayParams,
	) error
	SubmitOwnershipTransfer(ctx context.Context, caller, newOwner messages.UniversalAddress) error
	ConfirmOwnershipTransfer(ctx context.Context, caller messages.UniversalAddress) error
	CancelOwnershipTransfer(ctx context.Context, caller messages.UniversalAddress) error
	UpdateOwnerAssistant(ctx context.Context, caller, newAssistant messages.UniversalAddress) error
	UpdateFeeRecipient(ctx context.Context, caller, newFeeRecipient messages.UniversalAddress) error
	UpdateFeeUpdater(ctx context.Context, caller, newFeeUpdater messages.UniversalAddress) error
}

type OutboundStager interface {
	StageOutbound(ctx context.Context, args staging.StageOutboundArgs) (staging.StagedOutbound, error)
	InitiateTransfer(ctx context.Context, caller messages.UniversalAddress, id string) (bridge.Handoff, error)
	ReleaseStagedOutbound(ctx context.Context, caller messages.UniversalAddress, id string) error
	GetStagedOutbound(ctx context.Context, id string) (staging.StagedOutbound, error)
	GetStagedOutboundsBySender(ctx context.Context, sender messages.UniversalAddress) ([]staging.StagedOutbound, error)
	GetHandoff(ctx context.Context, id string) (staging.OutboundHandoff, error)
}

type FillRedeemer interface {
	PrepareFill(ctx context.Context, fill bridge.InboundFill) (redemption.PreparedFill, error)
	CompleteTransferDirect(
		ctx context.Context, fillID common.Hash, redeemer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteSwapDirect(
		ctx context.Context, fillID common.Hash, redeemer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteTransferRelay(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteSwapRelay(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteTransferPayload(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteSwapPayload(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
	ReleaseInbound(ctx context.Context, caller messages.UniversalAddress, id string) error
	GetFill(ctx context.Context, fillID common.Hash) (redemption.PreparedFill, error)
	GetStagedInbound(ctx context.Context, id string) (redemption.StagedInbound, error)
}

type RelayQueuer interface {
	AddFillToQueue(ctx context.Context, fillID common.Hash) error
	GetRelay(ctx context.Context, fillID common.Hash) (*relayer.Relay, error)
}

type Balancer interface {
	Deposit(ctx context.Context, account, asset messages.UniversalAddress, amount uint64) error
	GetBalances(ctx context.Context, account messages.UniversalAddress) ([]custody.Balance, error)
}
