package common

const (
	// RPC name to identify the rpc component
	RPC = "rpc"
	// RELAYER name to identify the relayer component (redeems queued relay fills)
	RELAYER = "relayer"
	// REGISTRY name used by the peer and custodian registry logs
	REGISTRY = "registry"
	// STAGING name used by the outbound staging engine logs
	STAGING = "staging"
	// REDEMPTION name used by the redemption engine logs
	REDEMPTION = "redemption"
	// CUSTODY name used by the custody ledger logs
	CUSTODY = "custody"
	// SWAP_EXECUTOR name used by the remote swap executor logs
	SWAP_EXECUTOR = "swap-executor" //nolint:stylecheck
	// BRIDGE name used by the bridge boundary logs
	BRIDGE = "bridge"
)
