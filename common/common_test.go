package common

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestUintBytes(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		input uint64
	}{
		{name: "Zero value", input: 0},
		{name: "Small value", input: 123456789},
		{name: "Max uint32", input: math.MaxUint32},
		{name: "Max uint64", input: math.MaxUint64},
	}

	for _, tt := range tests {
		tt := tt

		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			b := Uint64ToBytes(tt.input)
			require.Len(t, b, 8)
			require.Equal(t, tt.input, BytesToUint64(b))

			if tt.input <= math.MaxUint32 {
				b = Uint32ToBytes(uint32(tt.input))
				require.Len(t, b, 4)
				require.Equal(t, uint32(tt.input), BytesToUint32(b))
			}
		})
	}

	// big endian keys keep the numeric order in lexicographic kv stores
	require.Less(t, string(Uint64ToBytes(255)), string(Uint64ToBytes(256)))
}
