package messages

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

// Version is the only SwapLayerMessage version understood by this node
const Version uint8 = 1

const (
	// MaxUint24 is the largest value that fits in the 3 byte fee fields
	MaxUint24 = 1<<24 - 1
	// MaxUint48 is the largest relaying fee that can be carried on the wire
	MaxUint48 = 1<<48 - 1
	// UniversalAddressLength is the byte length of an address once normalized across chains
	UniversalAddressLength = 32
)

// ChainID identifies a chain on the cross-chain messaging network
type ChainID uint16

// UniversalAddress is a 32 byte address. Shorter addresses are left padded with zeroes.
type UniversalAddress [UniversalAddressLength]byte

// BytesToUniversalAddress left pads b into a UniversalAddress. If b is longer than 32 bytes,
// the leading bytes are dropped.
func BytesToUniversalAddress(b []byte) UniversalAddress {
	var a UniversalAddress
	if len(b) > len(a) {
		b = b[len(b)-len(a):]
	}
	copy(a[len(a)-len(b):], b)
	return a
}

// EVMToUniversalAddress converts a 20 byte EVM address
func EVMToUniversalAddress(addr common.Address) UniversalAddress {
	return BytesToUniversalAddress(addr.Bytes())
}

// HexToUniversalAddress parses a 0x prefixed (or bare) hex string of at most 32 bytes
func HexToUniversalAddress(s string) (UniversalAddress, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return UniversalAddress{}, fmt.Errorf("invalid universal address %q: %w", s, err)
	}
	if len(b) > UniversalAddressLength {
		return UniversalAddress{}, fmt.Errorf("invalid universal address %q: too long (%d bytes)", s, len(b))
	}
	return BytesToUniversalAddress(b), nil
}

// IsZero reports whether the address is all zeroes
func (a UniversalAddress) IsZero() bool {
	return a == UniversalAddress{}
}

// Bytes returns a copy of the address bytes
func (a UniversalAddress) Bytes() []byte {
	return append([]byte(nil), a[:]...)
}

// Hex returns the 0x prefixed hex representation
func (a UniversalAddress) Hex() string {
	return "0x" + hex.EncodeToString(a[:])
}

func (a UniversalAddress) String() string {
	return a.Hex()
}

// MarshalText implements encoding.TextMarshaler
func (a UniversalAddress) MarshalText() ([]byte, error) {
	return []byte(a.Hex()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (a *UniversalAddress) UnmarshalText(text []byte) error {
	parsed, err := HexToUniversalAddress(string(text))
	if err != nil {
		return err
	}
	*a = parsed
	return nil
}

// RedeemModeKind is the wire tag of a RedeemMode
type RedeemModeKind uint8

const (
	RedeemDirect  RedeemModeKind = 0
	RedeemPayload RedeemModeKind = 1
	RedeemRelay   RedeemModeKind = 2
)

func (k RedeemModeKind) String() string {
	switch k {
	case RedeemDirect:
		return "direct"
	case RedeemPayload:
		return "payload"
	case RedeemRelay:
		return "relay"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// RedeemMode tells the destination chain how the fill has to be redeemed.
// GasDropoff and RelayingFee are only meaningful for RedeemRelay, Payload only for RedeemPayload.
type RedeemMode struct {
	Kind RedeemModeKind `json:"kind"`
	// GasDropoff is the normalized amount of native gas to deliver to the recipient
	GasDropoff uint32 `json:"gasDropoff,omitempty"`
	// RelayingFee is the USDC amount owed to the relayer, fixed when the order was staged
	RelayingFee uint64 `json:"relayingFee,omitempty"`
	Payload     []byte `json:"payload,omitempty"`
}

// DirectMode returns a RedeemMode for a direct redemption
func DirectMode() RedeemMode {
	return RedeemMode{Kind: RedeemDirect}
}

// RelayMode returns a RedeemMode for a relayer assisted redemption
func RelayMode(gasDropoff uint32, relayingFee uint64) RedeemMode {
	return RedeemMode{Kind: RedeemRelay, GasDropoff: gasDropoff, RelayingFee: relayingFee}
}

// PayloadMode returns a RedeemMode that stages the transfer together with an opaque payload
func PayloadMode(payload []byte) RedeemMode {
	return RedeemMode{Kind: RedeemPayload, Payload: payload}
}

// OutputTokenKind is the wire tag of an OutputToken
type OutputTokenKind uint8

const (
	OutputUsdc  OutputTokenKind = 0
	OutputGas   OutputTokenKind = 1
	OutputOther OutputTokenKind = 2
)

func (k OutputTokenKind) String() string {
	switch k {
	case OutputUsdc:
		return "usdc"
	case OutputGas:
		return "gas"
	case OutputOther:
		return "other"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// OutputToken is the asset the recipient wants to receive on the destination chain.
// Swap is set for OutputGas and OutputOther, Address only for OutputOther.
type OutputToken struct {
	Kind    OutputTokenKind  `json:"kind"`
	Address UniversalAddress `json:"address,omitempty"`
	Swap    *OutputSwap      `json:"swap,omitempty"`
}

// UsdcOutput returns an OutputToken that pays out the bridged USDC
func UsdcOutput() OutputToken {
	return OutputToken{Kind: OutputUsdc}
}

// GasOutput returns an OutputToken that swaps the bridged USDC into the native gas token
func GasOutput(swap OutputSwap) OutputToken {
	return OutputToken{Kind: OutputGas, Swap: &swap}
}

// OtherOutput returns an OutputToken that swaps the bridged USDC into the given asset
func OtherOutput(address UniversalAddress, swap OutputSwap) OutputToken {
	return OutputToken{Kind: OutputOther, Address: address, Swap: &swap}
}

// IsSwap reports whether redeeming this output token requires a swap
func (o OutputToken) IsSwap() bool {
	return o.Kind == OutputGas || o.Kind == OutputOther
}

// OutputSwap describes the swap to perform on the destination chain
type OutputSwap struct {
	// Deadline is a unix timestamp in seconds, zero means no deadline
	Deadline uint32 `json:"deadline"`
	// LimitAmount is the minimum amount out accepted
	LimitAmount uint256.Int `json:"limitAmount"`
	SwapType    SwapType    `json:"swapType"`
}

// SwapTypeKind is the wire tag of a SwapType
type SwapTypeKind uint8

const (
	SwapUniswapV3 SwapTypeKind = 1
	SwapTraderJoe SwapTypeKind = 2
	SwapJupiterV6 SwapTypeKind = 16
)

func (k SwapTypeKind) String() string {
	switch k {
	case SwapUniswapV3:
		return "uniswapV3"
	case SwapTraderJoe:
		return "traderJoe"
	case SwapJupiterV6:
		return "jupiterV6"
	default:
		return fmt.Sprintf("unknown(%d)", uint8(k))
	}
}

// SwapType is the route of an OutputSwap. Exactly one of the parameter fields matches Kind.
type SwapType struct {
	Kind      SwapTypeKind             `json:"kind"`
	UniswapV3 *UniswapSwapParameters   `json:"uniswapV3,omitempty"`
	TraderJoe *TraderJoeSwapParameters `json:"traderJoe,omitempty"`
	JupiterV6 *JupiterV6SwapParameters `json:"jupiterV6,omitempty"`
}

// UniswapV3Route builds a SwapType for a UniswapV3 route
func UniswapV3Route(firstLegFee uint32, path ...UniswapSwapPath) SwapType {
	if len(path) == 0 {
		path = nil
	}
	return SwapType{
		Kind:      SwapUniswapV3,
		UniswapV3: &UniswapSwapParameters{FirstLegFee: firstLegFee, Path: path},
	}
}

// TraderJoeRoute builds a SwapType for a TraderJoe route
func TraderJoeRoute(firstPoolID TraderJoePoolID, path ...TraderJoeSwapPath) SwapType {
	if len(path) == 0 {
		path = nil
	}
	return SwapType{
		Kind:      SwapTraderJoe,
		TraderJoe: &TraderJoeSwapParameters{FirstPoolID: firstPoolID, Path: path},
	}
}

// JupiterV6Route builds a SwapType for a JupiterV6 route, dexProgramID may be nil
func JupiterV6Route(dexProgramID *UniversalAddress) SwapType {
	return SwapType{
		Kind:      SwapJupiterV6,
		JupiterV6: &JupiterV6SwapParameters{DexProgramID: dexProgramID},
	}
}

// NumHops returns the number of pools the route goes through, zero for JupiterV6
func (s SwapType) NumHops() int {
	switch s.Kind {
	case SwapUniswapV3:
		if s.UniswapV3 != nil {
			return len(s.UniswapV3.Path) + 1
		}
	case SwapTraderJoe:
		if s.TraderJoe != nil {
			return len(s.TraderJoe.Path) + 1
		}
	}
	return 0
}

type UniswapSwapParameters struct {
	// FirstLegFee is a uint24
	FirstLegFee uint32            `json:"firstLegFee"`
	Path        []UniswapSwapPath `json:"path,omitempty"`
}

type UniswapSwapPath struct {
	Address common.Address `json:"address"`
	// Fee is a uint24
	Fee uint32 `json:"fee"`
}

type TraderJoePoolID struct {
	Version uint8  `json:"version"`
	BinSize uint16 `json:"binSize"`
}

type TraderJoeSwapParameters struct {
	FirstPoolID TraderJoePoolID     `json:"firstPoolId"`
	Path        []TraderJoeSwapPath `json:"path,omitempty"`
}

type TraderJoeSwapPath struct {
	Address common.Address  `json:"address"`
	PoolID  TraderJoePoolID `json:"poolId"`
}

type JupiterV6SwapParameters struct {
	DexProgramID *UniversalAddress `json:"dexProgramId,omitempty"`
}

// SwapLayerMessage is the payload carried by the bridge from the source to the destination chain
type SwapLayerMessage struct {
	Recipient   UniversalAddress `json:"recipient"`
	RedeemMode  RedeemMode       `json:"redeemMode"`
	OutputToken OutputToken      `json:"outputToken"`
}
