package common

import "github.com/0xPolygon/swaplayer/messages"

type Config struct {
	// LocalChainID is the chain this node settles on, it can never be registered as a peer
	LocalChainID messages.ChainID `mapstructure:"LocalChainID"`
	// USDCAsset is the asset id of USDC on the local chain
	USDCAsset messages.UniversalAddress `mapstructure:"USDCAsset"`
}
