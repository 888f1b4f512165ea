package bridge

import (
	"encoding/binary"
	"fmt"

	swaplayerCommon "github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/iden3/go-iden3-crypto/keccak256"
)

const receiptBodyLength = 4 + 8 + 8 + messages.UniversalAddressLength

// FillID identifies a fill: keccak256(sourceChain | sender | sequence | payload)
func FillID(fill InboundFill) common.Hash {
	return common.BytesToHash(keccak256.Hash(
		binary.BigEndian.AppendUint16(nil, uint16(fill.SourceChain)),
		fill.Sender.Bytes(),
		swaplayerCommon.Uint64ToBytes(fill.Sequence),
		fill.Payload,
	))
}

// MessageDigest is the hash signed by the guardians. Unlike FillID it covers the fill type
// and the amount.
func MessageDigest(fill InboundFill) common.Hash {
	return common.BytesToHash(keccak256.Hash(
		binary.BigEndian.AppendUint16(nil, uint16(fill.SourceChain)),
		fill.Sender.Bytes(),
		swaplayerCommon.Uint64ToBytes(fill.Sequence),
		[]byte{byte(fill.FillType)},
		swaplayerCommon.Uint64ToBytes(fill.Amount),
		fill.Payload,
	))
}

// ReceiptBody is the content of a burn/mint receipt:
// sourceDomain u32 | nonce u64 | amount u64 | mintRecipient 32B
type ReceiptBody struct {
	SourceDomain  uint32
	Nonce         uint64
	Amount        uint64
	MintRecipient messages.UniversalAddress
}

func (b ReceiptBody) Encode() []byte {
	buf := make([]byte, 0, receiptBodyLength)
	buf = append(buf, swaplayerCommon.Uint32ToBytes(b.SourceDomain)...)
	buf = append(buf, swaplayerCommon.Uint64ToBytes(b.Nonce)...)
	buf = append(buf, swaplayerCommon.Uint64ToBytes(b.Amount)...)
	return append(buf, b.MintRecipient.Bytes()...)
}

func DecodeReceiptBody(data []byte) (ReceiptBody, error) {
	if len(data) != receiptBodyLength {
		return ReceiptBody{}, fmt.Errorf("%w: expected %d bytes, got %d", ErrInvalidReceiptBody, receiptBodyLength, len(data))
	}
	return ReceiptBody{
		SourceDomain:  swaplayerCommon.BytesToUint32(data[:4]),
		Nonce:         swaplayerCommon.BytesToUint64(data[4:12]),
		Amount:        swaplayerCommon.BytesToUint64(data[12:20]),
		MintRecipient: messages.BytesToUniversalAddress(data[20:]),
	}, nil
}
