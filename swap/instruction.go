package swap

import (
	"bytes"
	"encoding/binary"
	"fmt"
)

const (
	discriminatorLength = 8
	maxSlippageBps      = 10_000
)

// exactInDiscriminator prefixes every pre-composed exact in instruction
var exactInDiscriminator = [discriminatorLength]byte{193, 32, 155, 51, 65, 214, 156, 129}

// ExactInInstruction is a pre-composed swap handed over by the sender when staging a non USDC
// asset. The amount to be taken into custody is read from it, never from the caller.
//
// Layout (little endian): discriminator 8B | route len u32 | route | inAmount u64 |
// quotedOutAmount u64 | slippageBps u16 | platformFeeBps u8
type ExactInInstruction struct {
	Route           []byte
	InAmount        uint64
	QuotedOutAmount uint64
	SlippageBps     uint16
	PlatformFeeBps  uint8
}

// MinAmountOut is the quoted amount minus the slippage, rounded down
func (i ExactInInstruction) MinAmountOut() uint64 {
	// quotedOutAmount * (10000 - bps) can't overflow once split in quotient and remainder
	q, r := i.QuotedOutAmount/maxSlippageBps, i.QuotedOutAmount%maxSlippageBps
	keep := uint64(maxSlippageBps - i.SlippageBps)
	return q*keep + r*keep/maxSlippageBps
}

// Encode serializes the instruction
func (i ExactInInstruction) Encode() ([]byte, error) {
	if i.SlippageBps > maxSlippageBps {
		return nil, fmt.Errorf("%w: slippage %d bps", ErrInvalidSwapInstruction, i.SlippageBps)
	}
	buf := make([]byte, 0, discriminatorLength+4+len(i.Route)+8+8+2+1) //nolint:mnd
	buf = append(buf, exactInDiscriminator[:]...)
	buf = binary.LittleEndian.AppendUint32(buf, uint32(len(i.Route)))
	buf = append(buf, i.Route...)
	buf = binary.LittleEndian.AppendUint64(buf, i.InAmount)
	buf = binary.LittleEndian.AppendUint64(buf, i.QuotedOutAmount)
	buf = binary.LittleEndian.AppendUint16(buf, i.SlippageBps)
	return append(buf, i.PlatformFeeBps), nil
}

// DecodeExactInInstruction parses the output of ExactInInstruction.Encode
func DecodeExactInInstruction(data []byte) (ExactInInstruction, error) {
	const tailLength = 8 + 8 + 2 + 1

	if len(data) < discriminatorLength+4 || !bytes.Equal(data[:discriminatorLength], exactInDiscriminator[:]) {
		return ExactInInstruction{}, fmt.Errorf("%w: unknown discriminator", ErrInvalidSwapInstruction)
	}
	data = data[discriminatorLength:]
	routeLen := binary.LittleEndian.Uint32(data)
	data = data[4:]
	if uint64(len(data)) != uint64(routeLen)+tailLength {
		return ExactInInstruction{}, fmt.Errorf("%w: expected %d bytes after the route length, got %d",
			ErrInvalidSwapInstruction, uint64(routeLen)+tailLength, len(data))
	}

	var i ExactInInstruction
	if routeLen > 0 {
		i.Route = append([]byte(nil), data[:routeLen]...)
	}
	data = data[routeLen:]
	i.InAmount = binary.LittleEndian.Uint64(data)
	i.QuotedOutAmount = binary.LittleEndian.Uint64(data[8:])
	i.SlippageBps = binary.LittleEndian.Uint16(data[16:])
	i.PlatformFeeBps = data[18]
	if i.SlippageBps > maxSlippageBps {
		return ExactInInstruction{}, fmt.Errorf("%w: slippage %d bps", ErrInvalidSwapInstruction, i.SlippageBps)
	}
	return i, nil
}
