package messages

import (
	"fmt"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/stretchr/testify/require"
)

func testRecipient() UniversalAddress {
	return EVMToUniversalAddress(common.HexToAddress("0x6ca6d1e2d5347bfab1d91e883f1915560e09129d"))
}

func TestDecodeKnownVectors(t *testing.T) {
	testCases := []struct {
		name     string
		encoded  string
		expected SwapLayerMessage
	}{
		{
			name:    "relay without dropoff, usdc output",
			encoded: "010000000000000000000000006ca6d1e2d5347bfab1d91e883f1915560e09129d02000000000000000f424000",
			expected: SwapLayerMessage{
				Recipient:   testRecipient(),
				RedeemMode:  RelayMode(0, 1_000_000),
				OutputToken: UsdcOutput(),
			},
		},
		{
			name:    "relay with dropoff, usdc output",
			encoded: "010000000000000000000000006ca6d1e2d5347bfab1d91e883f1915560e09129d02000A87500000000f424000",
			expected: SwapLayerMessage{
				Recipient:   testRecipient(),
				RedeemMode:  RelayMode(690_000, 1_000_000),
				OutputToken: UsdcOutput(),
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			decoded, err := Decode(common.FromHex(tc.encoded))
			require.NoError(t, err)
			require.Equal(t, tc.expected, decoded)

			encoded, err := Encode(tc.expected)
			require.NoError(t, err)
			require.Equal(t, common.FromHex(tc.encoded), encoded)
		})
	}
}

func testSwaps() []OutputSwap {
	dex := BytesToUniversalAddress([]byte{0xde, 0xad})
	limit := uint256.NewInt(0)
	limit.Lsh(uint256.NewInt(1), 100) //nolint:mnd
	return []OutputSwap{
		{
			Deadline:    0,
			LimitAmount: *uint256.NewInt(0),
			SwapType:    UniswapV3Route(500), //nolint:mnd
		},
		{
			Deadline:    1_700_000_000,
			LimitAmount: *limit,
			SwapType: UniswapV3Route(500, //nolint:mnd
				UniswapSwapPath{Address: common.HexToAddress("0x01"), Fee: 3000},
				UniswapSwapPath{Address: common.HexToAddress("0x02"), Fee: MaxUint24},
			),
		},
		{
			Deadline:    42,
			LimitAmount: *uint256.NewInt(1_000_000),
			SwapType: TraderJoeRoute(TraderJoePoolID{Version: 2, BinSize: 25},
				TraderJoeSwapPath{Address: common.HexToAddress("0x03"), PoolID: TraderJoePoolID{Version: 1, BinSize: 10}},
			),
		},
		{
			LimitAmount: *uint256.NewInt(7),
			SwapType:    JupiterV6Route(nil),
		},
		{
			LimitAmount: *uint256.NewInt(8),
			SwapType:    JupiterV6Route(&dex),
		},
	}
}

func TestRoundTripAllVariants(t *testing.T) {
	modes := []RedeemMode{
		DirectMode(),
		RelayMode(0, 0),
		RelayMode(500_000, MaxUint48),
		PayloadMode([]byte("all your base are belong to us")),
		PayloadMode([]byte{}),
	}
	outputs := []OutputToken{UsdcOutput()}
	for _, swap := range testSwaps() {
		outputs = append(outputs,
			GasOutput(swap),
			OtherOutput(BytesToUniversalAddress([]byte{0xaa, 0xbb, 0xcc}), swap),
		)
	}

	for i, mode := range modes {
		for j, output := range outputs {
			t.Run(fmt.Sprintf("%s-%s-%d-%d", mode.Kind, output.Kind, i, j), func(t *testing.T) {
				m := SwapLayerMessage{
					Recipient:   testRecipient(),
					RedeemMode:  mode,
					OutputToken: output,
				}
				encoded, err := Encode(m)
				require.NoError(t, err)
				decoded, err := Decode(encoded)
				require.NoError(t, err)
				require.Equal(t, m, decoded)

				encodedOutput, err := EncodeOutputToken(output)
				require.NoError(t, err)
				decodedOutput, err := DecodeOutputToken(encodedOutput)
				require.NoError(t, err)
				require.Equal(t, output, decodedOutput)
			})
		}
	}
}

func TestEmptyPayloadDecodesNonNil(t *testing.T) {
	for _, payload := range [][]byte{nil, {}} {
		encoded, err := Encode(SwapLayerMessage{
			Recipient:   testRecipient(),
			RedeemMode:  PayloadMode(payload),
			OutputToken: UsdcOutput(),
		})
		require.NoError(t, err)
		decoded, err := Decode(encoded)
		require.NoError(t, err)
		require.NotNil(t, decoded.RedeemMode.Payload)
		require.Empty(t, decoded.RedeemMode.Payload)
	}
}

func TestDecodeRejectsInvalidEncoding(t *testing.T) {
	valid, err := Encode(SwapLayerMessage{
		Recipient:   testRecipient(),
		RedeemMode:  DirectMode(),
		OutputToken: GasOutput(testSwaps()[1]),
	})
	require.NoError(t, err)

	badVersion := append([]byte{}, valid...)
	badVersion[0] = 2

	unknownRedeemMode := append([]byte{}, valid...)
	unknownRedeemMode[33] = 3

	unknownOutputToken := append([]byte{}, valid...)
	unknownOutputToken[34] = 3

	unknownSwapType := append([]byte{}, valid...)
	// version + recipient + redeem tag + output tag + deadline + limit amount
	unknownSwapType[1+32+1+1+4+16] = 3

	testCases := []struct {
		name string
		data []byte
	}{
		{name: "empty", data: nil},
		{name: "bad version", data: badVersion},
		{name: "unknown redeem mode", data: unknownRedeemMode},
		{name: "unknown output token", data: unknownOutputToken},
		{name: "unknown swap type", data: unknownSwapType},
		{name: "truncated", data: valid[:len(valid)-1]},
		{name: "trailing bytes", data: append(append([]byte{}, valid...), 0)},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := Decode(tc.data)
			require.ErrorIs(t, err, ErrInvalidEncoding)
		})
	}
}

func TestEncodeRejectsOutOfRangeValues(t *testing.T) {
	_, err := Encode(SwapLayerMessage{
		Recipient:   testRecipient(),
		RedeemMode:  RelayMode(0, MaxUint48+1),
		OutputToken: UsdcOutput(),
	})
	require.ErrorIs(t, err, ErrRelayerFeeOverflow)

	swap := testSwaps()[0]
	swap.LimitAmount.Lsh(uint256.NewInt(1), 128) //nolint:mnd
	_, err = Encode(SwapLayerMessage{
		Recipient:   testRecipient(),
		RedeemMode:  DirectMode(),
		OutputToken: GasOutput(swap),
	})
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = EncodeOutputToken(GasOutput(OutputSwap{SwapType: UniswapV3Route(MaxUint24 + 1)}))
	require.ErrorIs(t, err, ErrInvalidEncoding)

	_, err = EncodeOutputToken(OutputToken{Kind: OutputGas})
	require.ErrorIs(t, err, ErrInvalidEncoding)
}

func TestUniversalAddress(t *testing.T) {
	addr, err := HexToUniversalAddress("0x6ca6d1e2d5347bfab1d91e883f1915560e09129d")
	require.NoError(t, err)
	require.Equal(t, testRecipient(), addr)
	require.False(t, addr.IsZero())
	require.True(t, UniversalAddress{}.IsZero())

	text, err := addr.MarshalText()
	require.NoError(t, err)
	var parsed UniversalAddress
	require.NoError(t, parsed.UnmarshalText(text))
	require.Equal(t, addr, parsed)

	_, err = HexToUniversalAddress("0xzz")
	require.Error(t, err)
}
