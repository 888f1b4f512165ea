package rpc

import (
	"encoding/json"
	"fmt"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/rpc/types"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
)

type SwapLayerClientInterface interface {
	QuoteRelayingFee(chain messages.ChainID, gasDropoff uint32, outputToken []byte) (*types.RelayingFeeQuote, error)
	GetPeer(chain messages.ChainID) (*registry.Peer, error)
	GetStagedOutbound(id string) (*staging.StagedOutbound, error)
	GetFill(fillID common.Hash) (*redemption.PreparedFill, error)
	QueueRelay(fillID common.Hash) error
	GetRelayStatus(fillID common.Hash) (*relayer.Relay, error)
	DecodeMessage(payload []byte) (*messages.SwapLayerMessage, error)
	GetBalances(account messages.UniversalAddress) ([]custody.Balance, error)
	GetHandoff(id string) (*staging.OutboundHandoff, error)
	AddPeer(caller messages.UniversalAddress, peer messages.AddPeerArgs) error
	UpdateRelayParams(caller messages.UniversalAddress, update messages.UpdateRelayParamsArgs) error
	Deposit(account, asset messages.UniversalAddress, amount uint64) error
	StageOutbound(args staging.StageOutboundArgs) (*staging.StagedOutbound, error)
	InitiateTransfer(caller messages.UniversalAddress, id string) (*bridge.Handoff, error)
	ReleaseStagedOutbound(caller messages.UniversalAddress, id string) error
	PrepareFill(fill bridge.InboundFill) (*redemption.PreparedFill, error)
	RedeemFill(
		fillID common.Hash, completion redemption.Completion, caller messages.UniversalAddress,
	) (*redemption.Redemption, error)
}

// QuoteRelayingFee returns the fee charged to relay a fill towards chain
func (c *Client) QuoteRelayingFee(
	chain messages.ChainID, gasDropoff uint32, outputToken []byte,
) (*types.RelayingFeeQuote, error) {
	var result types.RelayingFeeQuote
	return &result, c.call(&result, "swaplayer_quoteRelayingFee", chain, gasDropoff, hexutil.Bytes(outputToken))
}

func (c *Client) GetPeer(chain messages.ChainID) (*registry.Peer, error) {
	var result registry.Peer
	return &result, c.call(&result, "swaplayer_getPeer", chain)
}

func (c *Client) GetStagedOutbound(id string) (*staging.StagedOutbound, error) {
	var result staging.StagedOutbound
	return &result, c.call(&result, "swaplayer_getStagedOutbound", id)
}

func (c *Client) GetFill(fillID common.Hash) (*redemption.PreparedFill, error) {
	var result redemption.PreparedFill
	return &result, c.call(&result, "swaplayer_getFill", fillID)
}

// QueueRelay asks the node to relay a prepared fill.
// This call needs to be done to a node running the relayer
func (c *Client) QueueRelay(fillID common.Hash) error {
	return c.call(nil, "swaplayer_queueRelay", fillID)
}

// GetRelayStatus returns the status of a fill that has been previously queued to be relayed.
// This call needs to be done to the same node were it was queued
func (c *Client) GetRelayStatus(fillID common.Hash) (*relayer.Relay, error) {
	var result relayer.Relay
	return &result, c.call(&result, "swaplayer_getRelayStatus", fillID)
}

func (c *Client) DecodeMessage(payload []byte) (*messages.SwapLayerMessage, error) {
	var result messages.SwapLayerMessage
	return &result, c.call(&result, "swaplayer_decodeMessage", hexutil.Bytes(payload))
}

func (c *Client) GetBalances(account messages.UniversalAddress) ([]custody.Balance, error) {
	var result []custody.Balance
	return result, c.call(&result, "swaplayer_getBalances", account)
}

func (c *Client) GetHandoff(id string) (*staging.OutboundHandoff, error) {
	var result staging.OutboundHandoff
	return &result, c.call(&result, "swaplayer_getHandoff", id)
}

// AddPeer registers a peer, caller must be the owner of the custodian
func (c *Client) AddPeer(caller messages.UniversalAddress, peer messages.AddPeerArgs) error {
	args, err := messages.EncodeAddPeerArgs(peer)
	if err != nil {
		return err
	}
	return c.call(nil, "swaplayer_addPeer", caller, hexutil.Bytes(args))
}

func (c *Client) UpdateRelayParams(caller messages.UniversalAddress, update messages.UpdateRelayParamsArgs) error {
	args, err := messages.EncodeUpdateRelayParamsArgs(update)
	if err != nil {
		return err
	}
	return c.call(nil, "swaplayer_updateRelayParams", caller, hexutil.Bytes(args))
}

func (c *Client) Deposit(account, asset messages.UniversalAddress, amount uint64) error {
	return c.call(nil, "swaplayer_deposit", account, asset, amount)
}

func (c *Client) StageOutbound(args staging.StageOutboundArgs) (*staging.StagedOutbound, error) {
	var result staging.StagedOutbound
	return &result, c.call(&result, "swaplayer_stageOutbound", args)
}

// InitiateTransfer hands a staged order over to the bridge and returns the sent handoff
func (c *Client) InitiateTransfer(caller messages.UniversalAddress, id string) (*bridge.Handoff, error) {
	var result bridge.Handoff
	return &result, c.call(&result, "swaplayer_initiateTransfer", caller, id)
}

func (c *Client) ReleaseStagedOutbound(caller messages.UniversalAddress, id string) error {
	return c.call(nil, "swaplayer_releaseStagedOutbound", caller, id)
}

func (c *Client) PrepareFill(fill bridge.InboundFill) (*redemption.PreparedFill, error) {
	var result redemption.PreparedFill
	return &result, c.call(&result, "swaplayer_prepareFill", fill)
}

func (c *Client) RedeemFill(
	fillID common.Hash, completion redemption.Completion, caller messages.UniversalAddress,
) (*redemption.Redemption, error) {
	var result redemption.Redemption
	return &result, c.call(&result, "swaplayer_redeemFill", fillID, completion, caller)
}

// call runs method and decodes the result into result, unless it's nil
func (c *Client) call(result interface{}, method string, parameters ...interface{}) error {
	response, err := rpc.JSONRPCCall(c.url, method, parameters...)
	if err != nil {
		return err
	}
	if response.Error != nil {
		return fmt.Errorf("%v %v", response.Error.Code, response.Error.Message)
	}
	if result == nil {
		return nil
	}
	return json.Unmarshal(response.Result, result)
}
