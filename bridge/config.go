package bridge

import "github.com/ethereum/go-ethereum/common"

type Config struct {
	// Guardians are the addresses whose signatures authenticate inbound messages
	Guardians []common.Address `mapstructure:"Guardians"`
	// GuardianQuorum is the number of distinct guardian signatures required on a message
	GuardianQuorum int `mapstructure:"GuardianQuorum"`
	// Attesters are the addresses allowed to attest USDC burn receipts
	Attesters []common.Address `mapstructure:"Attesters"`
}
