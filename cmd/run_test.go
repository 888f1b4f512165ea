package main

import (
	"context"
	"fmt"
	"net"
	"strings"
	"testing"
	"time"

	"github.com/0xPolygon/swaplayer/config"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/rpc"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/stretchr/testify/require"
)

const targetChain messages.ChainID = 3

func freePort(t *testing.T) int {
	t.Helper()
	lis, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	port := lis.Addr().(*net.TCPAddr).Port
	require.NoError(t, lis.Close())
	return port
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	custom := config.FileData{
		Name: "test.toml",
		Content: fmt.Sprintf(`
PathRWData = "%s"

[RPC]
  Host = "127.0.0.1"
  Port = %d
  MaxRequestsPerIPAndSecond = 1000
`, t.TempDir(), freePort(t)),
	}
	cfg, err := config.LoadFile([]config.FileData{custom}, "")
	require.NoError(t, err)
	return cfg
}

func peerRelayParams() messages.RelayParams {
	return messages.RelayParams{
		BaseFee:          250_000,
		NativeTokenPrice: 10_000_000,
		MaxGasDropoff:    1_000_000,
		GasDropoffMargin: 10_000,
		ExecutionParams: messages.ExecutionParams{
			Kind:           messages.ExecutionEvm,
			GasPrice:       25_000,
			GasPriceMargin: 250_000,
		},
		SwapTimeLimit: messages.SwapTimeLimit{FastLimit: 60, FinalizedLimit: 1200},
	}
}

func TestNewSettlementSharesOneDatabase(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)

	s, err := newSettlement(ctx, *cfg)
	require.NoError(t, err)
	custodian, err := s.registry.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, cfg.Registry.Owner, custodian.Owner)
	require.Equal(t, cfg.Registry.FeeRecipient, custodian.FeeRecipient)

	// every component keeps its own migration history on the shared file
	database, err := db.NewSQLiteDB(cfg.Storage.DBPath)
	require.NoError(t, err)
	for _, table := range []string{
		"custodian", "peer", "balance", "staged_outbound", "outbound_handoff", "prepared_fill", "staged_inbound",
		"migrations_registry", "migrations_custody", "migrations_staging", "migrations_redemption",
	} {
		var name string
		err := database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1;`, table).Scan(&name)
		require.NoError(t, err, table)
	}

	// restarting on the same file keeps the custodian
	require.NoError(t, s.registry.UpdateFeeRecipient(ctx, cfg.Registry.Owner, messages.UniversalAddress{9}))
	restarted, err := newSettlement(ctx, *cfg)
	require.NoError(t, err)
	custodian, err = restarted.registry.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, messages.UniversalAddress{9}, custodian.FeeRecipient)
	require.ErrorIs(t,
		restarted.registry.Initialize(ctx, cfg.Registry.Owner, cfg.Registry.Owner, cfg.Registry.Owner, cfg.Registry.Owner),
		registry.ErrAlreadyInitialized,
	)
}

func TestNewSettlementInvalidGuardianQuorum(t *testing.T) {
	cfg := testConfig(t)
	cfg.Bridge.GuardianQuorum = len(cfg.Bridge.Guardians) + 1

	_, err := newSettlement(context.Background(), *cfg)
	require.ErrorContains(t, err, "[Bridge]")
}

func TestOutboundTransferThroughRPC(t *testing.T) {
	ctx := context.Background()
	cfg := testConfig(t)
	s, err := newSettlement(ctx, *cfg)
	require.NoError(t, err)

	server := createRPC(cfg.RPC, s, nil)
	go func() {
		_ = server.Start()
	}()

	client := rpc.NewClient(fmt.Sprintf("http://%s:%d", cfg.RPC.Host, cfg.RPC.Port))
	encodedUsdc, err := messages.EncodeOutputToken(messages.UsdcOutput())
	require.NoError(t, err)
	require.Eventually(t, func() bool {
		_, err := client.QuoteRelayingFee(targetChain, 0, encodedUsdc)
		// the peer isn't registered yet, the error comes from the node once it's up
		return err != nil && strings.Contains(err.Error(), string(rpc.ValidationError))
	}, 5*time.Second, 50*time.Millisecond)

	owner := cfg.Registry.Owner
	sender := messages.UniversalAddress{0x51}
	usdc := cfg.Common.USDCAsset
	peer := messages.AddPeerArgs{Chain: targetChain, Address: messages.UniversalAddress{0xaa}, RelayParams: peerRelayParams()}

	err = client.AddPeer(sender, peer)
	require.ErrorContains(t, err, string(rpc.ValidationError))
	require.NoError(t, client.AddPeer(owner, peer))
	stored, err := client.GetPeer(targetChain)
	require.NoError(t, err)
	require.Equal(t, peer.Address, stored.Address)

	require.NoError(t, client.Deposit(sender, usdc, 1_000_000))
	staged, err := client.StageOutbound(staging.StageOutboundArgs{
		Preparer:     sender,
		Sender:       sender,
		SrcAsset:     usdc,
		TargetChain:  targetChain,
		Recipient:    messages.UniversalAddress{0x52},
		RedeemOption: staging.RedeemOption{Kind: messages.RedeemDirect},
		OutputToken:  encodedUsdc,
		Input:        staging.StagedInput{Kind: staging.InputUsdc, Amount: 400_000},
	})
	require.NoError(t, err)
	require.Equal(t, uint64(400_000), staged.CustodyAmount)

	handoff, err := client.InitiateTransfer(sender, staged.ID)
	require.NoError(t, err)
	require.Equal(t, staged.ID, handoff.ID)
	require.Equal(t, uint64(400_000), handoff.Amount)
	require.Equal(t, peer.Address, handoff.Peer)
	require.NotZero(t, handoff.Digest)

	sent, err := client.GetHandoff(staged.ID)
	require.NoError(t, err)
	require.Equal(t, staging.HandoffSent, sent.Status)
	require.Equal(t, handoff.Digest, sent.Digest)

	// the order is gone: it can't be initiated again and releasing it refunds nothing
	_, err = client.InitiateTransfer(sender, staged.ID)
	require.ErrorContains(t, err, "not found")
	require.NoError(t, client.ReleaseStagedOutbound(sender, staged.ID))

	balances, err := client.GetBalances(sender)
	require.NoError(t, err)
	require.Equal(t, []custody.Balance{{Account: sender, Asset: usdc, Amount: 600_000}}, balances)
}
