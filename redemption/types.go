package redemption

import (
	"errors"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidAttestation       = errors.New("invalid attestation")
	ErrFillAlreadyPrepared      = errors.New("fill already prepared")
	ErrFillAlreadyConsumed      = errors.New("fill already consumed")
	ErrInvalidRedeemMode        = errors.New("invalid redeem mode")
	ErrInvalidOutputToken       = errors.New("invalid output token")
	ErrInvalidRedeemer          = errors.New("invalid redeemer")
	ErrInvalidRecipient         = errors.New("invalid recipient")
	ErrSwapPastDeadline         = errors.New("swap past deadline")
	ErrInvalidLimitAmount       = errors.New("invalid limit amount")
	ErrSwapTimeLimitNotExceeded = errors.New("swap time limit not exceeded")
	ErrInvalidRelayerFee        = errors.New("invalid relayer fee")
	ErrUnsupportedFillType      = errors.New("unsupported fill type")
)

type FillStatus string

const (
	Unconsumed FillStatus = "unconsumed"
	Consumed   FillStatus = "consumed"
)

// Completion names the path a fill was redeemed through
type Completion string

const (
	TransferDirect  Completion = "transferDirect"
	SwapDirect      Completion = "swapDirect"
	TransferRelay   Completion = "transferRelay"
	SwapRelay       Completion = "swapRelay"
	TransferPayload Completion = "transferPayload"
	SwapPayload     Completion = "swapPayload"
)

// PreparedFill is an authenticated inbound fill waiting to be redeemed. ConsumedAt,
// ConsumedBy and Completion are set once the fill is consumed.
type PreparedFill struct {
	FillID        common.Hash               `meddler:"fill_id,hash" json:"fillId"`
	SourceChain   messages.ChainID          `meddler:"source_chain" json:"sourceChain"`
	Sender        messages.UniversalAddress `meddler:"sender,universaladdress" json:"sender"`
	Sequence      uint64                    `meddler:"sequence,uint64" json:"sequence"`
	FillType      bridge.FillType           `meddler:"fill_type" json:"fillType"`
	CustodyAmount uint64                    `meddler:"custody_amount,uint64" json:"custodyAmount"`
	Payload       []byte                    `meddler:"payload" json:"payload"`
	Status        FillStatus                `meddler:"status" json:"status"`
	PreparedAt    uint64                    `meddler:"prepared_at" json:"preparedAt"`
	ConsumedAt    uint64                    `meddler:"consumed_at" json:"consumedAt,omitempty"`
	ConsumedBy    messages.UniversalAddress `meddler:"consumed_by,universaladdress" json:"consumedBy"`
	Completion    Completion                `meddler:"completion" json:"completion,omitempty"`
}

// Message decodes the payload of the fill
func (f PreparedFill) Message() (messages.SwapLayerMessage, error) {
	return messages.Decode(f.Payload)
}

// StagedInbound holds the output of a payload redemption until the recipient releases it
type StagedInbound struct {
	ID               string                    `meddler:"id" json:"id"`
	FillID           common.Hash               `meddler:"fill_id,hash" json:"fillId"`
	StagedBy         messages.UniversalAddress `meddler:"staged_by,universaladdress" json:"stagedBy"`
	SourceChain      messages.ChainID          `meddler:"source_chain" json:"sourceChain"`
	Recipient        messages.UniversalAddress `meddler:"recipient,universaladdress" json:"recipient"`
	IsNative         bool                      `meddler:"is_native" json:"isNative"`
	Asset            messages.UniversalAddress `meddler:"asset,universaladdress" json:"asset"`
	Amount           uint64                    `meddler:"amount,uint64" json:"amount"`
	RecipientPayload []byte                    `meddler:"recipient_payload" json:"recipientPayload"`
	CreatedAt        uint64                    `meddler:"created_at" json:"createdAt"`
}

// Redemption is the outcome of a completion
type Redemption struct {
	FillID     common.Hash               `json:"fillId"`
	Completion Completion                `json:"completion"`
	Recipient  messages.UniversalAddress `json:"recipient"`
	// Asset and Amount paid out, or staged when StagedInboundID is set
	Asset           messages.UniversalAddress `json:"asset"`
	Amount          uint64                    `json:"amount"`
	RelayerFee      uint64                    `json:"relayerFee"`
	GasDropoff      uint64                    `json:"gasDropoff"`
	StagedInboundID string                    `json:"stagedInboundId,omitempty"`
}
