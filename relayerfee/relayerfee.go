package relayerfee

import (
	"errors"
	"math"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/holiman/uint256"
)

// EVM gas overheads in gas units
const (
	EvmGasOverhead        = 280_000
	DropoffGasOverhead    = 32_000
	UniswapGasOverhead    = 10_000
	UniswapGasPerSwap     = 120_000
	TraderJoeGasOverhead  = 30_000
	TraderJoeGasPerSwap   = 80_000
	GasPriceScalar        = 1_000_000
	GasDropoffScalar      = 1_000
	MaxMargin             = 1_000_000
	oneNative             = 1_000_000_000
	oneEther       uint64 = 1_000_000_000_000_000_000
)

var (
	ErrRelayingDisabled            = errors.New("relaying disabled")
	ErrInvalidGasDropoff           = errors.New("invalid gas dropoff")
	ErrGasDropoffCalculationFailed = errors.New("gas dropoff calculation failed")
	ErrEvmGasCalculationFailed     = errors.New("evm gas calculation failed")
	ErrInvalidExecutionParams      = errors.New("invalid execution params")
)

var (
	marginDenominator = uint256.NewInt(MaxMargin)
	nativeDivisor     = new(uint256.Int).Mul(uint256.NewInt(oneNative), marginDenominator)
	etherDivisor      = new(uint256.Int).Mul(uint256.NewInt(oneEther), marginDenominator)
)

// DenormalizeGasDropoff converts a wire gas dropoff into native token base units
func DenormalizeGasDropoff(gasDropoff uint32) uint64 {
	return uint64(gasDropoff) * GasDropoffScalar
}

// DenormalizeGasPrice converts a mwei gas price into wei
func DenormalizeGasPrice(gasPrice uint32) uint64 {
	return uint64(gasPrice) * GasPriceScalar
}

// CalculateRelayerFee returns the USDC amount a relayer charges for delivering a fill to the
// peer described by params, including the cost of the requested gas dropoff. Every division
// rounds up.
func CalculateRelayerFee(
	params messages.RelayParams, gasDropoff uint32, outputToken messages.OutputToken,
) (uint64, error) {
	if params.BaseFee == math.MaxUint32 {
		return 0, ErrRelayingDisabled
	}

	fee := uint256.NewInt(uint64(params.BaseFee))

	if gasDropoff > 0 {
		if gasDropoff > params.MaxGasDropoff {
			return 0, ErrInvalidGasDropoff
		}
		dropoffCost, err := GasDropoffCost(gasDropoff, params.GasDropoffMargin, params.NativeTokenPrice)
		if err != nil {
			return 0, err
		}
		fee.AddUint64(fee, dropoffCost)
	}

	switch params.ExecutionParams.Kind {
	case messages.ExecutionEvm:
		totalGas := uint64(EvmGasOverhead)
		if gasDropoff > 0 {
			totalGas += DropoffGasOverhead
		}
		if outputToken.IsSwap() {
			if outputToken.Swap == nil {
				return 0, ErrEvmGasCalculationFailed
			}
			swapOverhead, err := EvmSwapOverhead(outputToken.Swap.SwapType)
			if err != nil {
				return 0, err
			}
			totalGas += swapOverhead
		}

		gasCost, err := EvmGasCost(
			params.ExecutionParams.GasPrice,
			params.ExecutionParams.GasPriceMargin,
			totalGas,
			params.NativeTokenPrice,
		)
		if err != nil {
			return 0, err
		}
		fee.AddUint64(fee, gasCost)
	default:
		return 0, ErrInvalidExecutionParams
	}

	if !fee.IsUint64() || fee.Uint64() > messages.MaxUint48 {
		return 0, messages.ErrRelayerFeeOverflow
	}

	return fee.Uint64(), nil
}

// EvmSwapOverhead estimates the gas used by a swap on an EVM chain
func EvmSwapOverhead(swapType messages.SwapType) (uint64, error) {
	var overhead, costPerSwap uint64
	switch swapType.Kind {
	case messages.SwapUniswapV3:
		overhead, costPerSwap = UniswapGasOverhead, UniswapGasPerSwap
	case messages.SwapTraderJoe:
		overhead, costPerSwap = TraderJoeGasOverhead, TraderJoeGasPerSwap
	default:
		return 0, ErrEvmGasCalculationFailed
	}
	numHops := swapType.NumHops()
	if numHops == 0 {
		return 0, ErrEvmGasCalculationFailed
	}

	return overhead + costPerSwap*uint64(numHops), nil
}

// EvmGasCost converts totalGas into USDC:
// ceil(totalGas * gasPrice(wei) * nativeTokenPrice * (1e6 + margin) / (1e18 * 1e6))
func EvmGasCost(gasPrice, gasPriceMargin uint32, totalGas, nativeTokenPrice uint64) (uint64, error) {
	if gasPriceMargin > MaxMargin {
		return 0, ErrEvmGasCalculationFailed
	}
	num := uint256.NewInt(totalGas)
	num.Mul(num, uint256.NewInt(DenormalizeGasPrice(gasPrice)))
	num.Mul(num, uint256.NewInt(nativeTokenPrice))
	num.Mul(num, uint256.NewInt(MaxMargin+uint64(gasPriceMargin)))

	cost := ceilDiv(num, etherDivisor)
	if !cost.IsUint64() {
		return 0, ErrEvmGasCalculationFailed
	}
	return cost.Uint64(), nil
}

// GasDropoffCost converts a gas dropoff into USDC:
// ceil(gasDropoff * 1e3 * nativeTokenPrice * (1e6 + margin) / (1e9 * 1e6))
func GasDropoffCost(gasDropoff, gasDropoffMargin uint32, nativeTokenPrice uint64) (uint64, error) {
	if gasDropoffMargin > MaxMargin {
		return 0, ErrGasDropoffCalculationFailed
	}
	num := uint256.NewInt(DenormalizeGasDropoff(gasDropoff))
	num.Mul(num, uint256.NewInt(nativeTokenPrice))
	num.Mul(num, uint256.NewInt(MaxMargin+uint64(gasDropoffMargin)))

	cost := ceilDiv(num, nativeDivisor)
	if !cost.IsUint64() {
		return 0, ErrGasDropoffCalculationFailed
	}
	return cost.Uint64(), nil
}

func ceilDiv(num, den *uint256.Int) *uint256.Int {
	quo := new(uint256.Int).Div(num, den)
	if !new(uint256.Int).Mod(num, den).IsZero() {
		quo.AddUint64(quo, 1)
	}
	return quo
}
