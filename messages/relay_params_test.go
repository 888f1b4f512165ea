package messages

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRelayParamsRoundTrip(t *testing.T) {
	evm := RelayParams{
		BaseFee:          250_000,
		NativeTokenPrice: 10_000_000,
		MaxGasDropoff:    1_000_000,
		GasDropoffMargin: 10_000,
		ExecutionParams: ExecutionParams{
			Kind:            ExecutionEvm,
			GasPrice:        25_000,
			GasPriceMargin:  250_000,
			UpdateThreshold: 100_000,
		},
		SwapTimeLimit: SwapTimeLimit{FastLimit: 60, FinalizedLimit: 1200},
	}
	none := evm
	none.ExecutionParams = ExecutionParams{Kind: ExecutionNone}

	for _, params := range []RelayParams{evm, none} {
		encoded, err := EncodeRelayParams(params)
		require.NoError(t, err)
		decoded, err := DecodeRelayParams(encoded)
		require.NoError(t, err)
		require.Equal(t, params, decoded)
	}

	// the timestamp belongs to the registry, it never travels
	stamped := evm
	stamped.LastUpdateTimestamp = 1234
	encoded, err := EncodeRelayParams(stamped)
	require.NoError(t, err)
	decoded, err := DecodeRelayParams(encoded)
	require.NoError(t, err)
	require.Zero(t, decoded.LastUpdateTimestamp)

	unknown := append([]byte{}, encoded...)
	unknown[4+8+4+4] = 7
	_, err = DecodeRelayParams(unknown)
	require.ErrorIs(t, err, ErrInvalidEncoding)

	decoded, err = DecodeRelayParams(append(encoded, 0))
	require.ErrorIs(t, err, ErrInvalidEncoding)
	require.Equal(t, RelayParams{}, decoded)

	_, err = EncodeRelayParams(RelayParams{ExecutionParams: ExecutionParams{Kind: 9}})
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestPeerArgsRoundTrip(t *testing.T) {
	params := RelayParams{
		BaseFee:          1_500_000,
		NativeTokenPrice: 200_000_000,
		MaxGasDropoff:    500_000,
		GasDropoffMargin: 500_000,
		ExecutionParams:  ExecutionParams{Kind: ExecutionEvm, GasPrice: 10_000, GasPriceMargin: 250_000},
	}
	addArgs := AddPeerArgs{
		Chain:       2,
		Address:     testRecipient(),
		RelayParams: params,
	}
	encoded, err := EncodeAddPeerArgs(addArgs)
	require.NoError(t, err)
	decodedAdd, err := DecodeAddPeerArgs(encoded)
	require.NoError(t, err)
	require.Equal(t, addArgs, decodedAdd)

	_, err = DecodeAddPeerArgs(encoded[:len(encoded)-1])
	require.ErrorIs(t, err, ErrInvalidEncoding)

	updateArgs := UpdateRelayParamsArgs{Chain: 6, RelayParams: params}
	encoded, err = EncodeUpdateRelayParamsArgs(updateArgs)
	require.NoError(t, err)
	decodedUpdate, err := DecodeUpdateRelayParamsArgs(encoded)
	require.NoError(t, err)
	require.Equal(t, updateArgs, decodedUpdate)

	_, err = DecodeUpdateRelayParamsArgs(append(encoded, 0))
	require.ErrorIs(t, err, ErrInvalidEncoding)
}
