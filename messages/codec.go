package messages

import (
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
)

const (
	limitAmountLength = 16
	maxPathLength     = 255
)

var (
	ErrInvalidEncoding    = errors.New("invalid encoding")
	ErrRelayerFeeOverflow = errors.New("relayer fee does not fit in uint48")
)

// Encode serializes a SwapLayerMessage:
// version u8 | recipient 32B | redeem mode | output token
func Encode(m SwapLayerMessage) ([]byte, error) {
	buf := make([]byte, 0, 1+UniversalAddressLength+16) //nolint:mnd
	buf = append(buf, Version)
	buf = append(buf, m.Recipient[:]...)

	buf, err := appendRedeemMode(buf, m.RedeemMode)
	if err != nil {
		return nil, err
	}
	return appendOutputToken(buf, m.OutputToken)
}

// Decode parses a SwapLayerMessage. Unknown tags, short buffers and trailing bytes
// are rejected with ErrInvalidEncoding.
func Decode(data []byte) (SwapLayerMessage, error) {
	r := &reader{buf: data}
	version, err := r.readU8()
	if err != nil {
		return SwapLayerMessage{}, err
	}
	if version != Version {
		return SwapLayerMessage{}, fmt.Errorf("%w: unsupported version %d", ErrInvalidEncoding, version)
	}

	var m SwapLayerMessage
	if m.Recipient, err = r.readUniversalAddress(); err != nil {
		return SwapLayerMessage{}, err
	}
	if m.RedeemMode, err = readRedeemMode(r); err != nil {
		return SwapLayerMessage{}, err
	}
	if m.OutputToken, err = readOutputToken(r); err != nil {
		return SwapLayerMessage{}, err
	}
	if err = r.done(); err != nil {
		return SwapLayerMessage{}, err
	}

	return m, nil
}

// EncodeOutputToken serializes an OutputToken on its own
func EncodeOutputToken(o OutputToken) ([]byte, error) {
	return appendOutputToken(nil, o)
}

// DecodeOutputToken parses an OutputToken serialized with EncodeOutputToken
func DecodeOutputToken(data []byte) (OutputToken, error) {
	r := &reader{buf: data}
	o, err := readOutputToken(r)
	if err != nil {
		return OutputToken{}, err
	}
	if err = r.done(); err != nil {
		return OutputToken{}, err
	}
	return o, nil
}

func appendRedeemMode(buf []byte, mode RedeemMode) ([]byte, error) {
	buf = append(buf, byte(mode.Kind))
	switch mode.Kind {
	case RedeemDirect:
		return buf, nil
	case RedeemPayload:
		if uint64(len(mode.Payload)) > uint64(^uint32(0)) {
			return nil, fmt.Errorf("%w: payload too long (%d bytes)", ErrInvalidEncoding, len(mode.Payload))
		}
		buf = binary.BigEndian.AppendUint32(buf, uint32(len(mode.Payload)))
		return append(buf, mode.Payload...), nil
	case RedeemRelay:
		if mode.RelayingFee > MaxUint48 {
			return nil, ErrRelayerFeeOverflow
		}
		buf = binary.BigEndian.AppendUint32(buf, mode.GasDropoff)
		return appendUint48(buf, mode.RelayingFee), nil
	default:
		return nil, fmt.Errorf("%w: unknown redeem mode %d", ErrInvalidEncoding, mode.Kind)
	}
}

func readRedeemMode(r *reader) (RedeemMode, error) {
	tag, err := r.readU8()
	if err != nil {
		return RedeemMode{}, err
	}
	switch RedeemModeKind(tag) {
	case RedeemDirect:
		return DirectMode(), nil
	case RedeemPayload:
		size, err := r.readU32()
		if err != nil {
			return RedeemMode{}, err
		}
		payload, err := r.next(int(size))
		if err != nil {
			return RedeemMode{}, err
		}
		return PayloadMode(append([]byte{}, payload...)), nil
	case RedeemRelay:
		gasDropoff, err := r.readU32()
		if err != nil {
			return RedeemMode{}, err
		}
		fee, err := r.readU48()
		if err != nil {
			return RedeemMode{}, err
		}
		return RelayMode(gasDropoff, fee), nil
	default:
		return RedeemMode{}, fmt.Errorf("%w: unknown redeem mode %d", ErrInvalidEncoding, tag)
	}
}

func appendOutputToken(buf []byte, o OutputToken) ([]byte, error) {
	buf = append(buf, byte(o.Kind))
	switch o.Kind {
	case OutputUsdc:
		return buf, nil
	case OutputGas:
		return appendOutputSwap(buf, o.Swap)
	case OutputOther:
		buf = append(buf, o.Address[:]...)
		return appendOutputSwap(buf, o.Swap)
	default:
		return nil, fmt.Errorf("%w: unknown output token %d", ErrInvalidEncoding, o.Kind)
	}
}

func readOutputToken(r *reader) (OutputToken, error) {
	tag, err := r.readU8()
	if err != nil {
		return OutputToken{}, err
	}
	switch OutputTokenKind(tag) {
	case OutputUsdc:
		return UsdcOutput(), nil
	case OutputGas:
		swap, err := readOutputSwap(r)
		if err != nil {
			return OutputToken{}, err
		}
		return GasOutput(swap), nil
	case OutputOther:
		addr, err := r.readUniversalAddress()
		if err != nil {
			return OutputToken{}, err
		}
		swap, err := readOutputSwap(r)
		if err != nil {
			return OutputToken{}, err
		}
		return OtherOutput(addr, swap), nil
	default:
		return OutputToken{}, fmt.Errorf("%w: unknown output token %d", ErrInvalidEncoding, tag)
	}
}

func appendOutputSwap(buf []byte, swap *OutputSwap) ([]byte, error) {
	if swap == nil {
		return nil, fmt.Errorf("%w: missing swap for output token", ErrInvalidEncoding)
	}
	if swap.LimitAmount.BitLen() > limitAmountLength*8 {
		return nil, fmt.Errorf("%w: limit amount %s does not fit in uint128", ErrInvalidEncoding, swap.LimitAmount.Dec())
	}
	buf = binary.BigEndian.AppendUint32(buf, swap.Deadline)
	limit := swap.LimitAmount.Bytes32()
	buf = append(buf, limit[len(limit)-limitAmountLength:]...)

	return appendSwapType(buf, swap.SwapType)
}

func readOutputSwap(r *reader) (OutputSwap, error) {
	deadline, err := r.readU32()
	if err != nil {
		return OutputSwap{}, err
	}
	limit, err := r.next(limitAmountLength)
	if err != nil {
		return OutputSwap{}, err
	}
	swapType, err := readSwapType(r)
	if err != nil {
		return OutputSwap{}, err
	}
	swap := OutputSwap{
		Deadline: deadline,
		SwapType: swapType,
	}
	swap.LimitAmount.SetBytes(limit)

	return swap, nil
}

func appendSwapType(buf []byte, s SwapType) ([]byte, error) {
	buf = append(buf, byte(s.Kind))
	switch s.Kind {
	case SwapUniswapV3:
		params := s.UniswapV3
		if params == nil {
			return nil, fmt.Errorf("%w: missing uniswap parameters", ErrInvalidEncoding)
		}
		if len(params.Path) > maxPathLength {
			return nil, fmt.Errorf("%w: path too long (%d)", ErrInvalidEncoding, len(params.Path))
		}
		var err error
		if buf, err = appendUint24(buf, params.FirstLegFee); err != nil {
			return nil, err
		}
		buf = append(buf, uint8(len(params.Path)))
		for _, p := range params.Path {
			buf = append(buf, p.Address.Bytes()...)
			if buf, err = appendUint24(buf, p.Fee); err != nil {
				return nil, err
			}
		}
		return buf, nil
	case SwapTraderJoe:
		params := s.TraderJoe
		if params == nil {
			return nil, fmt.Errorf("%w: missing trader joe parameters", ErrInvalidEncoding)
		}
		if len(params.Path) > maxPathLength {
			return nil, fmt.Errorf("%w: path too long (%d)", ErrInvalidEncoding, len(params.Path))
		}
		buf = appendPoolID(buf, params.FirstPoolID)
		buf = append(buf, uint8(len(params.Path)))
		for _, p := range params.Path {
			buf = append(buf, p.Address.Bytes()...)
			buf = appendPoolID(buf, p.PoolID)
		}
		return buf, nil
	case SwapJupiterV6:
		if s.JupiterV6 == nil || s.JupiterV6.DexProgramID == nil {
			return append(buf, 0), nil
		}
		buf = append(buf, 1)
		return append(buf, s.JupiterV6.DexProgramID[:]...), nil
	default:
		return nil, fmt.Errorf("%w: unknown swap type %d", ErrInvalidEncoding, s.Kind)
	}
}

func readSwapType(r *reader) (SwapType, error) {
	tag, err := r.readU8()
	if err != nil {
		return SwapType{}, err
	}
	switch SwapTypeKind(tag) {
	case SwapUniswapV3:
		firstLegFee, err := r.readU24()
		if err != nil {
			return SwapType{}, err
		}
		n, err := r.readU8()
		if err != nil {
			return SwapType{}, err
		}
		var path []UniswapSwapPath
		for i := 0; i < int(n); i++ {
			addr, err := r.readEVMAddress()
			if err != nil {
				return SwapType{}, err
			}
			fee, err := r.readU24()
			if err != nil {
				return SwapType{}, err
			}
			path = append(path, UniswapSwapPath{Address: addr, Fee: fee})
		}
		return UniswapV3Route(firstLegFee, path...), nil
	case SwapTraderJoe:
		firstPoolID, err := readPoolID(r)
		if err != nil {
			return SwapType{}, err
		}
		n, err := r.readU8()
		if err != nil {
			return SwapType{}, err
		}
		var path []TraderJoeSwapPath
		for i := 0; i < int(n); i++ {
			addr, err := r.readEVMAddress()
			if err != nil {
				return SwapType{}, err
			}
			poolID, err := readPoolID(r)
			if err != nil {
				return SwapType{}, err
			}
			path = append(path, TraderJoeSwapPath{Address: addr, PoolID: poolID})
		}
		return TraderJoeRoute(firstPoolID, path...), nil
	case SwapJupiterV6:
		hasDex, err := r.readU8()
		if err != nil {
			return SwapType{}, err
		}
		switch hasDex {
		case 0:
			return JupiterV6Route(nil), nil
		case 1:
			dex, err := r.readUniversalAddress()
			if err != nil {
				return SwapType{}, err
			}
			return JupiterV6Route(&dex), nil
		default:
			return SwapType{}, fmt.Errorf("%w: invalid option flag %d", ErrInvalidEncoding, hasDex)
		}
	default:
		return SwapType{}, fmt.Errorf("%w: unknown swap type %d", ErrInvalidEncoding, tag)
	}
}

func appendPoolID(buf []byte, id TraderJoePoolID) []byte {
	buf = append(buf, id.Version)
	return binary.BigEndian.AppendUint16(buf, id.BinSize)
}

func readPoolID(r *reader) (TraderJoePoolID, error) {
	version, err := r.readU8()
	if err != nil {
		return TraderJoePoolID{}, err
	}
	binSize, err := r.readU16()
	if err != nil {
		return TraderJoePoolID{}, err
	}
	return TraderJoePoolID{Version: version, BinSize: binSize}, nil
}

func appendUint24(buf []byte, v uint32) ([]byte, error) {
	if v > MaxUint24 {
		return nil, fmt.Errorf("%w: %d does not fit in uint24", ErrInvalidEncoding, v)
	}
	return append(buf, byte(v>>16), byte(v>>8), byte(v)), nil //nolint:mnd
}

func appendUint48(buf []byte, v uint64) []byte {
	var b [8]byte
	binary.BigEndian.PutUint64(b[:], v)
	return append(buf, b[2:]...)
}

// reader consumes a byte slice front to back. Every short read is an ErrInvalidEncoding.
type reader struct {
	buf []byte
	off int
}

func (r *reader) next(n int) ([]byte, error) {
	if n < 0 || len(r.buf)-r.off < n {
		return nil, fmt.Errorf("%w: need %d bytes at offset %d, %d left",
			ErrInvalidEncoding, n, r.off, len(r.buf)-r.off)
	}
	b := r.buf[r.off : r.off+n]
	r.off += n
	return b, nil
}

func (r *reader) done() error {
	if r.off != len(r.buf) {
		return fmt.Errorf("%w: %d trailing bytes", ErrInvalidEncoding, len(r.buf)-r.off)
	}
	return nil
}

func (r *reader) readU8() (uint8, error) {
	b, err := r.next(1)
	if err != nil {
		return 0, err
	}
	return b[0], nil
}

func (r *reader) readU16() (uint16, error) {
	b, err := r.next(2) //nolint:mnd
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint16(b), nil
}

func (r *reader) readU24() (uint32, error) {
	b, err := r.next(3) //nolint:mnd
	if err != nil {
		return 0, err
	}
	return uint32(b[0])<<16 | uint32(b[1])<<8 | uint32(b[2]), nil
}

func (r *reader) readU32() (uint32, error) {
	b, err := r.next(4) //nolint:mnd
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b), nil
}

func (r *reader) readU48() (uint64, error) {
	b, err := r.next(6) //nolint:mnd
	if err != nil {
		return 0, err
	}
	var full [8]byte
	copy(full[2:], b)
	return binary.BigEndian.Uint64(full[:]), nil
}

func (r *reader) readU64() (uint64, error) {
	b, err := r.next(8) //nolint:mnd
	if err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint64(b), nil
}

func (r *reader) readUniversalAddress() (UniversalAddress, error) {
	b, err := r.next(UniversalAddressLength)
	if err != nil {
		return UniversalAddress{}, err
	}
	return BytesToUniversalAddress(b), nil
}

func (r *reader) readEVMAddress() (common.Address, error) {
	b, err := r.next(common.AddressLength)
	if err != nil {
		return common.Address{}, err
	}
	return common.BytesToAddress(b), nil
}

// LimitAmountToUint64 returns the limit amount of a swap as uint64, false if it does not fit
func LimitAmountToUint64(limit *uint256.Int) (uint64, bool) {
	if !limit.IsUint64() {
		return 0, false
	}
	return limit.Uint64(), true
}
