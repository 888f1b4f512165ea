package bridge

import (
	"context"
	"errors"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
)

var (
	ErrInvalidSignature   = errors.New("invalid signature")
	ErrQuorumNotReached   = errors.New("quorum not reached")
	ErrReceiptMismatch    = errors.New("receipt does not match the fill")
	ErrInvalidReceiptBody = errors.New("invalid receipt body")
)

// FillType tells how final the source chain transfer was when the fill was emitted
type FillType uint8

const (
	FastFill FillType = iota
	Finalized
)

func (f FillType) String() string {
	switch f {
	case FastFill:
		return "fast"
	case Finalized:
		return "finalized"
	default:
		return "unknown"
	}
}

// Receipt is the burn/mint receipt of the USDC moved along with the message.
// It's correlated with the message by {SourceDomain, Nonce}.
type Receipt struct {
	SourceDomain uint32 `json:"sourceDomain"`
	Nonce        uint64 `json:"nonce"`
	Body         []byte `json:"body"`
	Attestation  []byte `json:"attestation"`
}

// InboundFill is a message delivered by the bridge on the local chain
type InboundFill struct {
	SourceChain messages.ChainID          `json:"sourceChain"`
	Sender      messages.UniversalAddress `json:"sender"`
	Sequence    uint64                    `json:"sequence"`
	FillType    FillType                  `json:"fillType"`
	Amount      uint64                    `json:"amount"`
	Payload     []byte                    `json:"payload"`
	// Signatures of the guardians over MessageDigest
	Signatures [][]byte `json:"signatures"`
	Receipt    Receipt  `json:"receipt"`
}

// Handoff is an outbound transfer given to the bridge
type Handoff struct {
	// ID is the idempotency key of the handoff, a Sender accepts each ID once
	ID          string                    `json:"id"`
	TargetChain messages.ChainID          `json:"targetChain"`
	Peer        messages.UniversalAddress `json:"peer"`
	Amount      uint64                    `json:"amount"`
	Payload     []byte                    `json:"payload"`
	// Sequence is assigned by the Sender
	Sequence uint64 `json:"sequence"`
	// Digest identifies the handoff on the bridge, it's set by the Sender
	Digest common.Hash `json:"digest"`
}

// Sender hands outbound transfers over to the bridge and returns them with the Sequence and
// Digest they got. Sending an ID that was already accepted returns the first result
// without sending it again.
type Sender interface {
	Send(ctx context.Context, handoff Handoff) (Handoff, error)
}

// MessageVerifier checks the message of a fill was emitted by the bridge
type MessageVerifier interface {
	VerifyMessage(ctx context.Context, fill InboundFill) error
}

// Attester checks the USDC receipt of a fill
type Attester interface {
	VerifyReceipt(ctx context.Context, fill InboundFill) error
}
