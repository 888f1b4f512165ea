package swap

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestExactInInstructionEncodeDecode(t *testing.T) {
	tests := []struct {
		name        string
		instruction ExactInInstruction
	}{
		{
			name: "with route",
			instruction: ExactInInstruction{
				Route:           []byte{1, 2, 3, 4, 5},
				InAmount:        1_000_000,
				QuotedOutAmount: 42_000,
				SlippageBps:     50,
				PlatformFeeBps:  3,
			},
		},
		{
			name: "empty route",
			instruction: ExactInInstruction{
				InAmount:        math.MaxUint64,
				QuotedOutAmount: 1,
			},
		},
		{
			name: "max slippage",
			instruction: ExactInInstruction{
				Route:           []byte{0xff},
				InAmount:        7,
				QuotedOutAmount: 7,
				SlippageBps:     maxSlippageBps,
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			encoded, err := tt.instruction.Encode()
			require.NoError(t, err)
			require.Equal(t, exactInDiscriminator[:], encoded[:discriminatorLength])

			decoded, err := DecodeExactInInstruction(encoded)
			require.NoError(t, err)
			require.Equal(t, tt.instruction, decoded)
		})
	}
}

func TestDecodeExactInInstructionErrors(t *testing.T) {
	valid, err := ExactInInstruction{Route: []byte{9, 9}, InAmount: 10, QuotedOutAmount: 10}.Encode()
	require.NoError(t, err)

	wrongDiscriminator := append([]byte(nil), valid...)
	wrongDiscriminator[0]++

	tooMuchSlippage := append([]byte(nil), valid...)
	// slippage is right before the platform fee byte
	tooMuchSlippage[len(tooMuchSlippage)-3] = 0xff
	tooMuchSlippage[len(tooMuchSlippage)-2] = 0xff

	tests := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "only discriminator", data: exactInDiscriminator[:]},
		{name: "wrong discriminator", data: wrongDiscriminator},
		{name: "truncated", data: valid[:len(valid)-1]},
		{name: "trailing bytes", data: append(append([]byte(nil), valid...), 0)},
		{name: "slippage above 100%", data: tooMuchSlippage},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeExactInInstruction(tt.data)
			require.ErrorIs(t, err, ErrInvalidSwapInstruction)
		})
	}

	_, err = ExactInInstruction{SlippageBps: maxSlippageBps + 1}.Encode()
	require.ErrorIs(t, err, ErrInvalidSwapInstruction)
}

func TestMinAmountOut(t *testing.T) {
	tests := []struct {
		quoted   uint64
		bps      uint16
		expected uint64
	}{
		{quoted: 10_000, bps: 0, expected: 10_000},
		{quoted: 10_000, bps: 100, expected: 9_900},
		{quoted: 12_345, bps: 30, expected: 12_307},
		{quoted: 1, bps: 1, expected: 0},
		{quoted: 10_000, bps: maxSlippageBps, expected: 0},
		{quoted: math.MaxUint64, bps: 0, expected: math.MaxUint64},
		{quoted: math.MaxUint64, bps: 5_000, expected: math.MaxUint64 / 2},
	}

	for _, tt := range tests {
		i := ExactInInstruction{QuotedOutAmount: tt.quoted, SlippageBps: tt.bps}
		require.Equal(t, tt.expected, i.MinAmountOut(), "quoted %d, slippage %d", tt.quoted, tt.bps)
	}
}
