package types

import "github.com/0xPolygon/swaplayer/messages"

// RelayingFeeQuote is the fee charged to relay a fill towards a peer
type RelayingFeeQuote struct {
	Chain messages.ChainID `json:"chain"`
	// Fee in USDC base units
	Fee uint64 `json:"fee"`
	// FeeUSDC is Fee in USDC, as a decimal string
	FeeUSDC string `json:"feeUsdc"`
	// GasDropoff is the requested dropoff in native token base units
	GasDropoff uint64 `json:"gasDropoff"`
}
