package staging

import (
	"errors"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/config/types"
	"github.com/0xPolygon/swaplayer/messages"
	ethCommon "github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidRecipient               = errors.New("invalid recipient")
	ErrInvalidSourceAsset             = errors.New("invalid source asset")
	ErrInvalidAmount                  = errors.New("invalid amount")
	ErrInvalidRedeemOption            = errors.New("invalid redeem option")
	ErrExceedsMaxRelayingFee          = errors.New("relaying fee exceeds the max relayer fee")
	ErrRelayingFeeExceedsMinAmountOut = errors.New("relaying fee exceeds the min amount out")
	ErrZeroMinAmountOut               = errors.New("min amount out is zero")
	ErrInvalidCaller                  = errors.New("invalid caller")
	ErrCustodyOverflow                = errors.New("custody amount overflow")
	ErrHandoffPending                 = errors.New("handoff pending")
)

type Config struct {
	// ResendHandoffsPeriod is how often the handoffs that couldn't be sent to the bridge are retried
	ResendHandoffsPeriod types.Duration `mapstructure:"ResendHandoffsPeriod"`
}

// StagedInputKind tells what the sender handed over when staging
type StagedInputKind uint8

const (
	// InputUsdc is an amount of USDC bridged as is
	InputUsdc StagedInputKind = iota
	// InputSwapExactIn is a pre-composed swap of the source asset into USDC
	InputSwapExactIn
)

func (k StagedInputKind) String() string {
	switch k {
	case InputUsdc:
		return "usdc"
	case InputSwapExactIn:
		return "swapExactIn"
	default:
		return "unknown"
	}
}

// StagedInput is the asset given by the sender. Amount is used for InputUsdc and
// InstructionData, an encoded swap.ExactInInstruction, for InputSwapExactIn.
type StagedInput struct {
	Kind            StagedInputKind `json:"kind"`
	Amount          uint64          `json:"amount,omitempty"`
	InstructionData []byte          `json:"instructionData,omitempty"`
}

// RedeemOption is the redeem mode requested by the sender. For relays the fee is quoted when
// staging and must not exceed MaxRelayerFee.
type RedeemOption struct {
	Kind          messages.RedeemModeKind `json:"kind"`
	GasDropoff    uint32                  `json:"gasDropoff,omitempty"`
	MaxRelayerFee uint64                  `json:"maxRelayerFee,omitempty"`
	Payload       []byte                  `json:"payload,omitempty"`
}

type StageOutboundArgs struct {
	Preparer     messages.UniversalAddress `json:"preparer"`
	Sender       messages.UniversalAddress `json:"sender"`
	SrcAsset     messages.UniversalAddress `json:"srcAsset"`
	TargetChain  messages.ChainID          `json:"targetChain"`
	Recipient    messages.UniversalAddress `json:"recipient"`
	RedeemOption RedeemOption              `json:"redeemOption"`
	// OutputToken is an encoded messages.OutputToken
	OutputToken []byte      `json:"outputToken"`
	Input       StagedInput `json:"input"`
}

// StagedOutbound is an order waiting to be handed over to the bridge. CustodyAmount of SrcAsset
// has been taken from the sender.
type StagedOutbound struct {
	ID              string                    `meddler:"id" json:"id"`
	PreparedBy      messages.UniversalAddress `meddler:"prepared_by,universaladdress" json:"preparedBy"`
	Sender          messages.UniversalAddress `meddler:"sender,universaladdress" json:"sender"`
	SrcAsset        messages.UniversalAddress `meddler:"src_asset,universaladdress" json:"srcAsset"`
	TargetChain     messages.ChainID          `meddler:"target_chain" json:"targetChain"`
	Recipient       messages.UniversalAddress `meddler:"recipient,universaladdress" json:"recipient"`
	InputKind       StagedInputKind           `meddler:"input_kind" json:"inputKind"`
	InstructionData []byte                    `meddler:"instruction_data" json:"instructionData,omitempty"`
	CustodyAmount   uint64                    `meddler:"custody_amount,uint64" json:"custodyAmount"`
	// MinAmountOut is the minimum USDC the swap of the input has to deliver, zero for USDC inputs
	MinAmountOut       uint64              `meddler:"min_amount_out,uint64" json:"minAmountOut"`
	RedeemMode         messages.RedeemMode `meddler:"redeem_mode,json" json:"redeemMode"`
	EncodedOutputToken []byte              `meddler:"output_token" json:"outputToken"`
	CreatedAt          uint64              `meddler:"created_at" json:"createdAt"`
}

type HandoffStatus string

const (
	HandoffPending HandoffStatus = "pending"
	HandoffSent    HandoffStatus = "sent"
)

// OutboundHandoff is an initiated order. It replaces the StagedOutbound it comes from and is
// owed to the bridge until its status is HandoffSent.
type OutboundHandoff struct {
	ID          string                    `meddler:"id" json:"id"`
	Sender      messages.UniversalAddress `meddler:"sender,universaladdress" json:"sender"`
	TargetChain messages.ChainID          `meddler:"target_chain" json:"targetChain"`
	Peer        messages.UniversalAddress `meddler:"peer,universaladdress" json:"peer"`
	Amount      uint64                    `meddler:"amount,uint64" json:"amount"`
	Payload     []byte                    `meddler:"payload" json:"payload"`
	Status      HandoffStatus             `meddler:"status" json:"status"`
	Sequence    uint64                    `meddler:"sequence,uint64" json:"sequence"`
	Digest      ethCommon.Hash            `meddler:"digest,hash" json:"digest"`
	CreatedAt   uint64                    `meddler:"created_at" json:"createdAt"`
	SentAt      uint64                    `meddler:"sent_at" json:"sentAt,omitempty"`
}

func (h OutboundHandoff) bridgeHandoff() bridge.Handoff {
	return bridge.Handoff{
		ID:          h.ID,
		TargetChain: h.TargetChain,
		Peer:        h.Peer,
		Amount:      h.Amount,
		Payload:     h.Payload,
	}
}
