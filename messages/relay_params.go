package messages

import (
	"encoding/binary"
	"fmt"
)

// ExecutionParamsKind identifies the execution cost model of a destination chain
type ExecutionParamsKind uint8

const (
	ExecutionNone ExecutionParamsKind = 0
	ExecutionEvm  ExecutionParamsKind = 1
)

// ExecutionParams holds the gas pricing of the destination chain. Only ExecutionEvm carries values.
type ExecutionParams struct {
	Kind ExecutionParamsKind `json:"kind" mapstructure:"Kind"`
	// GasPrice in mwei, multiply by 1e6 to get wei
	GasPrice uint32 `json:"gasPrice" mapstructure:"GasPrice"`
	// GasPriceMargin in parts per million
	GasPriceMargin uint32 `json:"gasPriceMargin" mapstructure:"GasPriceMargin"`
	// UpdateThreshold is the gas price change (ppm) that makes the fee updater push new params
	UpdateThreshold uint32 `json:"updateThreshold" mapstructure:"UpdateThreshold"`
}

// SwapTimeLimit is the time (seconds) a third party relayer has to wait before redeeming a
// swap fill as plain USDC
type SwapTimeLimit struct {
	FastLimit      uint16 `json:"fastLimit" mapstructure:"FastLimit"`
	FinalizedLimit uint16 `json:"finalizedLimit" mapstructure:"FinalizedLimit"`
}

// RelayParams prices the relaying of a fill towards a peer chain
type RelayParams struct {
	// LastUpdateTimestamp is set by the registry on every write, it's not part of the encoding
	LastUpdateTimestamp uint64 `json:"lastUpdateTimestamp" mapstructure:"-"`
	// BaseFee in USDC units, MaxUint32 disables relaying
	BaseFee uint32 `json:"baseFee" mapstructure:"BaseFee"`
	// NativeTokenPrice is the USDC price of one whole native token of the peer chain
	NativeTokenPrice uint64 `json:"nativeTokenPrice" mapstructure:"NativeTokenPrice"`
	// MaxGasDropoff is the max normalized gas dropoff accepted
	MaxGasDropoff uint32 `json:"maxGasDropoff" mapstructure:"MaxGasDropoff"`
	// GasDropoffMargin in parts per million
	GasDropoffMargin uint32          `json:"gasDropoffMargin" mapstructure:"GasDropoffMargin"`
	ExecutionParams  ExecutionParams `json:"executionParams" mapstructure:"ExecutionParams"`
	SwapTimeLimit    SwapTimeLimit   `json:"swapTimeLimit" mapstructure:"SwapTimeLimit"`
}

// AddPeerArgs are the arguments of a peer registration
type AddPeerArgs struct {
	Chain       ChainID          `json:"chain"`
	Address     UniversalAddress `json:"address"`
	RelayParams RelayParams      `json:"relayParams"`
}

// UpdateRelayParamsArgs are the arguments of a relay params update
type UpdateRelayParamsArgs struct {
	Chain       ChainID     `json:"chain"`
	RelayParams RelayParams `json:"relayParams"`
}

// EncodeRelayParams serializes:
// baseFee u32 | nativeTokenPrice u64 | maxGasDropoff u32 | gasDropoffMargin u32 |
// exec tag u8 [| gasPrice u32 | gasPriceMargin u32 | updateThreshold u32] | fastLimit u16 | finalizedLimit u16
func EncodeRelayParams(p RelayParams) ([]byte, error) {
	return appendRelayParams(nil, p)
}

// DecodeRelayParams parses the output of EncodeRelayParams
func DecodeRelayParams(data []byte) (RelayParams, error) {
	r := &reader{buf: data}
	p, err := readRelayParams(r)
	if err != nil {
		return RelayParams{}, err
	}
	if err = r.done(); err != nil {
		return RelayParams{}, err
	}
	return p, nil
}

// EncodeAddPeerArgs serializes: chain u16 | address 32B | relay params
func EncodeAddPeerArgs(args AddPeerArgs) ([]byte, error) {
	buf := binary.BigEndian.AppendUint16(nil, uint16(args.Chain))
	buf = append(buf, args.Address[:]...)
	return appendRelayParams(buf, args.RelayParams)
}

// DecodeAddPeerArgs parses the output of EncodeAddPeerArgs
func DecodeAddPeerArgs(data []byte) (AddPeerArgs, error) {
	r := &reader{buf: data}
	chain, err := r.readU16()
	if err != nil {
		return AddPeerArgs{}, err
	}
	addr, err := r.readUniversalAddress()
	if err != nil {
		return AddPeerArgs{}, err
	}
	params, err := readRelayParams(r)
	if err != nil {
		return AddPeerArgs{}, err
	}
	if err = r.done(); err != nil {
		return AddPeerArgs{}, err
	}
	return AddPeerArgs{Chain: ChainID(chain), Address: addr, RelayParams: params}, nil
}

// EncodeUpdateRelayParamsArgs serializes: chain u16 | relay params
func EncodeUpdateRelayParamsArgs(args UpdateRelayParamsArgs) ([]byte, error) {
	buf := binary.BigEndian.AppendUint16(nil, uint16(args.Chain))
	return appendRelayParams(buf, args.RelayParams)
}

// DecodeUpdateRelayParamsArgs parses the output of EncodeUpdateRelayParamsArgs
func DecodeUpdateRelayParamsArgs(data []byte) (UpdateRelayParamsArgs, error) {
	r := &reader{buf: data}
	chain, err := r.readU16()
	if err != nil {
		return UpdateRelayParamsArgs{}, err
	}
	params, err := readRelayParams(r)
	if err != nil {
		return UpdateRelayParamsArgs{}, err
	}
	if err = r.done(); err != nil {
		return UpdateRelayParamsArgs{}, err
	}
	return UpdateRelayParamsArgs{Chain: ChainID(chain), RelayParams: params}, nil
}

func appendRelayParams(buf []byte, p RelayParams) ([]byte, error) {
	buf = binary.BigEndian.AppendUint32(buf, p.BaseFee)
	buf = binary.BigEndian.AppendUint64(buf, p.NativeTokenPrice)
	buf = binary.BigEndian.AppendUint32(buf, p.MaxGasDropoff)
	buf = binary.BigEndian.AppendUint32(buf, p.GasDropoffMargin)
	buf = append(buf, byte(p.ExecutionParams.Kind))
	switch p.ExecutionParams.Kind {
	case ExecutionNone:
	case ExecutionEvm:
		buf = binary.BigEndian.AppendUint32(buf, p.ExecutionParams.GasPrice)
		buf = binary.BigEndian.AppendUint32(buf, p.ExecutionParams.GasPriceMargin)
		buf = binary.BigEndian.AppendUint32(buf, p.ExecutionParams.UpdateThreshold)
	default:
		return nil, fmt.Errorf("%w: unknown execution params %d", ErrInvalidEncoding, p.ExecutionParams.Kind)
	}
	buf = binary.BigEndian.AppendUint16(buf, p.SwapTimeLimit.FastLimit)
	return binary.BigEndian.AppendUint16(buf, p.SwapTimeLimit.FinalizedLimit), nil
}

func readRelayParams(r *reader) (RelayParams, error) {
	var (
		p   RelayParams
		err error
	)
	if p.BaseFee, err = r.readU32(); err != nil {
		return RelayParams{}, err
	}
	if p.NativeTokenPrice, err = r.readU64(); err != nil {
		return RelayParams{}, err
	}
	if p.MaxGasDropoff, err = r.readU32(); err != nil {
		return RelayParams{}, err
	}
	if p.GasDropoffMargin, err = r.readU32(); err != nil {
		return RelayParams{}, err
	}
	tag, err := r.readU8()
	if err != nil {
		return RelayParams{}, err
	}
	p.ExecutionParams.Kind = ExecutionParamsKind(tag)
	switch p.ExecutionParams.Kind {
	case ExecutionNone:
	case ExecutionEvm:
		if p.ExecutionParams.GasPrice, err = r.readU32(); err != nil {
			return RelayParams{}, err
		}
		if p.ExecutionParams.GasPriceMargin, err = r.readU32(); err != nil {
			return RelayParams{}, err
		}
		if p.ExecutionParams.UpdateThreshold, err = r.readU32(); err != nil {
			return RelayParams{}, err
		}
	default:
		return RelayParams{}, fmt.Errorf("%w: unknown execution params %d", ErrInvalidEncoding, tag)
	}
	if p.SwapTimeLimit.FastLimit, err = r.readU16(); err != nil {
		return RelayParams{}, err
	}
	if p.SwapTimeLimit.FinalizedLimit, err = r.readU16(); err != nil {
		return RelayParams{}, err
	}
	return p, nil
}
