package redemption

import (
	"context"
	"path"
	"testing"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/staging"
	swapmocks "github.com/0xPolygon/swaplayer/swap/mocks"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/require"
)

// TestStageAndRedeemRelay stages USDC on the source chain, carries the handoff through a
// loopback bridge and redeems it with a relayer on the destination chain
func TestStageAndRedeemRelay(t *testing.T) {
	const (
		amountIn      = 20_000_000_000
		rawGasDropoff = 100_000
		maxRelayerFee = 999_999_999_999
	)
	ctx := context.Background()
	logger := log.GetDefaultLogger()
	sender := messages.BytesToUniversalAddress([]byte{0x11})
	destinationPeer := messages.BytesToUniversalAddress([]byte{0xcc, 0xdd})

	// source chain
	srcDB, err := db.NewSQLiteDB(path.Join(t.TempDir(), "source.sqlite"))
	require.NoError(t, err)
	srcRegistry, err := registry.New(logger, srcDB, sourceChain)
	require.NoError(t, err)
	require.NoError(t, srcRegistry.Initialize(ctx, owner, owner, feeRecipient, owner))
	require.NoError(t, srcRegistry.AddPeer(ctx, owner, localChain, destinationPeer, relayParams()))
	srcLedger, err := custody.New(logger, srcDB)
	require.NoError(t, err)
	require.NoError(t, srcLedger.Deposit(ctx, sender, usdc, 30_000_000_000))
	loopback := bridge.NewLoopbackSender(logger)
	stager, err := staging.New(logger, srcDB, common.Config{LocalChainID: sourceChain, USDCAsset: usdc},
		srcRegistry, srcLedger, loopback, swapmocks.NewExecutor(t))
	require.NoError(t, err)

	expectedFee, err := relayerfee.CalculateRelayerFee(relayParams(), rawGasDropoff, messages.UsdcOutput())
	require.NoError(t, err)
	outputToken, err := messages.EncodeOutputToken(messages.UsdcOutput())
	require.NoError(t, err)

	staged, err := stager.StageOutbound(ctx, staging.StageOutboundArgs{
		Preparer:    sender,
		Sender:      sender,
		SrcAsset:    usdc,
		TargetChain: localChain,
		Recipient:   recipient,
		RedeemOption: staging.RedeemOption{
			Kind:          messages.RedeemRelay,
			GasDropoff:    rawGasDropoff,
			MaxRelayerFee: maxRelayerFee,
		},
		OutputToken: outputToken,
		Input:       staging.StagedInput{Kind: staging.InputUsdc, Amount: amountIn},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(amountIn)+expectedFee, staged.CustodyAmount)
	senderBalance, err := srcLedger.BalanceOf(nil, sender, usdc)
	require.NoError(t, err)
	require.Equal(t, 30_000_000_000-amountIn-expectedFee, senderBalance)

	handoff, err := stager.InitiateTransfer(ctx, sender, staged.ID)
	require.NoError(t, err)
	require.Equal(t, destinationPeer, handoff.Peer)
	require.Equal(t, []bridge.Handoff{handoff}, loopback.Handoffs())
	require.NotEqual(t, ethCommon.Hash{}, handoff.Digest)

	// destination chain, the source peer is the swap layer of the source chain
	te := newTestEngine(t)
	fill, err := te.PrepareFill(ctx, bridge.InboundFill{
		SourceChain: sourceChain,
		Sender:      sourcePeer,
		Sequence:    handoff.Sequence,
		FillType:    bridge.Finalized,
		Amount:      handoff.Amount,
		Payload:     handoff.Payload,
	})
	require.NoError(t, err)

	relayerNative := te.balance(t, relayer, custody.NativeAsset)
	redemption, err := te.CompleteTransferRelay(ctx, fill.FillID, relayer)
	require.NoError(t, err)
	require.Equal(t, expectedFee, redemption.RelayerFee)

	dropoff := relayerfee.DenormalizeGasDropoff(rawGasDropoff)
	require.Equal(t, uint64(amountIn), te.balance(t, recipient, usdc))
	require.Equal(t, expectedFee, te.balance(t, feeRecipient, usdc))
	require.Equal(t, dropoff, te.balance(t, recipient, custody.NativeAsset))
	require.Equal(t, relayerNative-dropoff, te.balance(t, relayer, custody.NativeAsset))
}
