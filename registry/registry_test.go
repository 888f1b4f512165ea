package registry

import (
	"context"
	"math"
	"path"
	"testing"
	"time"

	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/stretchr/testify/require"
)

const localChain messages.ChainID = 1

var (
	owner        = messages.BytesToUniversalAddress([]byte{0x01})
	assistant    = messages.BytesToUniversalAddress([]byte{0x02})
	feeUpdater   = messages.BytesToUniversalAddress([]byte{0x03})
	feeRecipient = messages.BytesToUniversalAddress([]byte{0x04})
	stranger     = messages.BytesToUniversalAddress([]byte{0x05})
	peerAddress  = messages.BytesToUniversalAddress([]byte{0xaa, 0xbb})

	fixedNow = time.Unix(1_700_000_000, 0)
)

func testRelayParams() messages.RelayParams {
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

func newTestRegistry(t *testing.T, initialize bool) *Registry {
	t.Helper()
	database, err := db.NewSQLiteDB(path.Join(t.TempDir(), "registry.sqlite"))
	require.NoError(t, err)
	r, err := New(log.GetDefaultLogger(), database, localChain)
	require.NoError(t, err)
	r.now = func() time.Time { return fixedNow }
	if initialize {
		require.NoError(t, r.Initialize(context.Background(), owner, assistant, feeRecipient, feeUpdater))
	}
	return r
}

func TestInitialize(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, false)

	_, err := r.GetCustodian(ctx)
	require.ErrorIs(t, err, ErrNotInitialized)
	err = r.AddPeer(ctx, owner, 2, peerAddress, testRelayParams())
	require.ErrorIs(t, err, ErrNotInitialized)

	err = r.Initialize(ctx, owner, messages.UniversalAddress{}, feeRecipient, feeUpdater)
	require.ErrorIs(t, err, ErrInvalidCustodian)

	require.NoError(t, r.Initialize(ctx, owner, assistant, feeRecipient, feeUpdater))
	err = r.Initialize(ctx, stranger, assistant, feeRecipient, feeUpdater)
	require.ErrorIs(t, err, ErrAlreadyInitialized)

	custodian, err := r.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, owner, custodian.Owner)
	require.Equal(t, assistant, custodian.OwnerAssistant)
	require.Equal(t, feeUpdater, custodian.FeeUpdater)
	require.Equal(t, feeRecipient, custodian.FeeRecipient)
	require.Equal(t, int64(custodianID), custodian.ID)
	require.False(t, custodian.HasPendingOwner())

	// roles can still be updated on the single custodian row
	require.NoError(t, r.UpdateFeeRecipient(ctx, assistant, stranger))
	custodian, err = r.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, stranger, custodian.FeeRecipient)
}

func TestAddPeer(t *testing.T) {
	ctx := context.Background()

	invalidParams := testRelayParams()
	invalidParams.NativeTokenPrice = 0

	testCases := []struct {
		name        string
		caller      messages.UniversalAddress
		chain       messages.ChainID
		address     messages.UniversalAddress
		params      messages.RelayParams
		expectedErr error
	}{
		{name: "owner", caller: owner, chain: 2, address: peerAddress, params: testRelayParams()},
		{name: "assistant", caller: assistant, chain: 2, address: peerAddress, params: testRelayParams()},
		{
			name: "local chain", caller: owner, chain: localChain, address: peerAddress,
			params: testRelayParams(), expectedErr: ErrChainNotAllowed,
		},
		{
			name: "zero address", caller: owner, chain: 2, address: messages.UniversalAddress{},
			params: testRelayParams(), expectedErr: ErrInvalidPeer,
		},
		{
			name: "not allowed caller", caller: stranger, chain: 2, address: peerAddress,
			params: testRelayParams(), expectedErr: ErrOwnerOrAssistantOnly,
		},
		{
			name: "fee updater is not allowed", caller: feeUpdater, chain: 2, address: peerAddress,
			params: testRelayParams(), expectedErr: ErrOwnerOrAssistantOnly,
		},
		{
			name: "invalid relay params", caller: owner, chain: 2, address: peerAddress,
			params: invalidParams, expectedErr: ErrInvalidRelayParams,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			r := newTestRegistry(t, true)
			err := r.AddPeer(ctx, tc.caller, tc.chain, tc.address, tc.params)
			if tc.expectedErr != nil {
				require.ErrorIs(t, err, tc.expectedErr)
				_, err = r.GetPeer(ctx, tc.chain)
				require.ErrorIs(t, err, ErrNoRegisteredPeer)
				return
			}
			require.NoError(t, err)

			peer, err := r.GetPeer(ctx, tc.chain)
			require.NoError(t, err)
			expectedParams := tc.params
			expectedParams.LastUpdateTimestamp = uint64(fixedNow.Unix())
			require.Equal(t, Peer{Chain: tc.chain, Address: tc.address, RelayParams: expectedParams}, peer)

			err = r.AddPeer(ctx, tc.caller, tc.chain, peerAddress, tc.params)
			require.ErrorIs(t, err, ErrInvalidPeer)
		})
	}
}

func TestGetPeers(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, true)

	peers, err := r.GetPeers(ctx)
	require.NoError(t, err)
	require.Empty(t, peers)

	for _, chain := range []messages.ChainID{30, 2, 6} {
		require.NoError(t, r.AddPeer(ctx, owner, chain, peerAddress, testRelayParams()))
	}
	peers, err = r.GetPeers(ctx)
	require.NoError(t, err)
	require.Len(t, peers, 3)
	require.Equal(t, messages.ChainID(2), peers[0].Chain)
	require.Equal(t, messages.ChainID(6), peers[1].Chain)
	require.Equal(t, messages.ChainID(30), peers[2].Chain)
}

func TestUpdateRelayParams(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, true)
	require.NoError(t, r.AddPeer(ctx, owner, 2, peerAddress, testRelayParams()))

	newParams := testRelayParams()
	newParams.BaseFee = math.MaxUint32
	newParams.ExecutionParams.GasPrice = 30_000

	err := r.UpdateRelayParams(ctx, owner, 2, newParams)
	require.ErrorIs(t, err, ErrFeeUpdaterOnly)
	err = r.UpdateRelayParams(ctx, feeUpdater, 3, newParams)
	require.ErrorIs(t, err, ErrNoRegisteredPeer)

	invalid := newParams
	invalid.SwapTimeLimit.FastLimit = invalid.SwapTimeLimit.FinalizedLimit + 1
	err = r.UpdateRelayParams(ctx, feeUpdater, 2, invalid)
	require.ErrorIs(t, err, ErrInvalidRelayParams)

	later := fixedNow.Add(time.Hour)
	r.now = func() time.Time { return later }
	require.NoError(t, r.UpdateRelayParams(ctx, feeUpdater, 2, newParams))

	peer, err := r.GetPeer(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, peerAddress, peer.Address)
	require.True(t, peer.RelayingDisabled())
	require.Equal(t, uint32(30_000), peer.RelayParams.ExecutionParams.GasPrice)
	require.Equal(t, uint64(later.Unix()), peer.RelayParams.LastUpdateTimestamp)
}

func TestUpdatePeer(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, true)
	newAddress := messages.BytesToUniversalAddress([]byte{0xcc})

	err := r.UpdatePeer(ctx, owner, 2, newAddress, testRelayParams())
	require.ErrorIs(t, err, ErrNoRegisteredPeer)

	require.NoError(t, r.AddPeer(ctx, owner, 2, peerAddress, testRelayParams()))
	err = r.UpdatePeer(ctx, assistant, 2, newAddress, testRelayParams())
	require.ErrorIs(t, err, ErrOwnerOnly)
	err = r.UpdatePeer(ctx, owner, 2, messages.UniversalAddress{}, testRelayParams())
	require.ErrorIs(t, err, ErrInvalidPeer)

	require.NoError(t, r.UpdatePeer(ctx, owner, 2, newAddress, testRelayParams()))
	peer, err := r.GetPeer(ctx, 2)
	require.NoError(t, err)
	require.Equal(t, newAddress, peer.Address)
}

func TestOwnershipTransfer(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, true)
	newOwner := messages.BytesToUniversalAddress([]byte{0x0e})

	require.ErrorIs(t, r.SubmitOwnershipTransfer(ctx, assistant, newOwner), ErrOwnerOnly)
	require.ErrorIs(t, r.SubmitOwnershipTransfer(ctx, owner, messages.UniversalAddress{}), ErrInvalidNewOwner)
	require.ErrorIs(t, r.SubmitOwnershipTransfer(ctx, owner, owner), ErrInvalidNewOwner)
	require.ErrorIs(t, r.ConfirmOwnershipTransfer(ctx, newOwner), ErrNoPendingOwner)

	// cancelled transfer
	require.NoError(t, r.SubmitOwnershipTransfer(ctx, owner, newOwner))
	require.ErrorIs(t, r.CancelOwnershipTransfer(ctx, newOwner), ErrOwnerOnly)
	require.NoError(t, r.CancelOwnershipTransfer(ctx, owner))
	require.ErrorIs(t, r.ConfirmOwnershipTransfer(ctx, newOwner), ErrNoPendingOwner)

	// confirmed transfer
	require.NoError(t, r.SubmitOwnershipTransfer(ctx, owner, newOwner))
	custodian, err := r.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, owner, custodian.Owner)
	require.Equal(t, newOwner, custodian.PendingOwner)

	require.ErrorIs(t, r.ConfirmOwnershipTransfer(ctx, stranger), ErrNotPendingOwner)
	require.NoError(t, r.ConfirmOwnershipTransfer(ctx, newOwner))
	custodian, err = r.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, newOwner, custodian.Owner)
	require.False(t, custodian.HasPendingOwner())

	require.ErrorIs(t, r.UpdateOwnerAssistant(ctx, owner, stranger), ErrOwnerOnly)
	require.NoError(t, r.UpdateOwnerAssistant(ctx, newOwner, stranger))
}

func TestUpdateRoles(t *testing.T) {
	ctx := context.Background()
	r := newTestRegistry(t, true)
	newRole := messages.BytesToUniversalAddress([]byte{0x99})

	require.ErrorIs(t, r.UpdateFeeRecipient(ctx, stranger, newRole), ErrOwnerOrAssistantOnly)
	require.ErrorIs(t, r.UpdateFeeRecipient(ctx, owner, messages.UniversalAddress{}), ErrInvalidCustodian)
	require.NoError(t, r.UpdateFeeRecipient(ctx, assistant, newRole))

	require.ErrorIs(t, r.UpdateFeeUpdater(ctx, feeUpdater, newRole), ErrOwnerOrAssistantOnly)
	require.NoError(t, r.UpdateFeeUpdater(ctx, owner, newRole))

	require.ErrorIs(t, r.UpdateOwnerAssistant(ctx, owner, messages.UniversalAddress{}), ErrInvalidCustodian)

	custodian, err := r.GetCustodian(ctx)
	require.NoError(t, err)
	require.Equal(t, newRole, custodian.FeeRecipient)
	require.Equal(t, newRole, custodian.FeeUpdater)
	require.Equal(t, assistant, custodian.OwnerAssistant)
}

func TestValidateRelayParams(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(p *messages.RelayParams)
		valid  bool
	}{
		{name: "valid", mutate: func(p *messages.RelayParams) {}, valid: true},
		{name: "relaying disabled", mutate: func(p *messages.RelayParams) { p.BaseFee = math.MaxUint32 }, valid: true},
		{
			name:   "no execution params",
			mutate: func(p *messages.RelayParams) { p.ExecutionParams = messages.ExecutionParams{} },
			valid:  true,
		},
		{name: "zero price", mutate: func(p *messages.RelayParams) { p.NativeTokenPrice = 0 }},
		{name: "dropoff margin", mutate: func(p *messages.RelayParams) { p.GasDropoffMargin = 1_000_001 }},
		{name: "zero gas price", mutate: func(p *messages.RelayParams) { p.ExecutionParams.GasPrice = 0 }},
		{name: "gas price margin", mutate: func(p *messages.RelayParams) { p.ExecutionParams.GasPriceMargin = 1_000_001 }},
		{name: "unknown execution", mutate: func(p *messages.RelayParams) { p.ExecutionParams.Kind = 7 }},
		{name: "time limits", mutate: func(p *messages.RelayParams) { p.SwapTimeLimit.FastLimit = 1201 }},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			params := testRelayParams()
			tc.mutate(&params)
			err := ValidateRelayParams(params)
			if tc.valid {
				require.NoError(t, err)
			} else {
				require.ErrorIs(t, err, ErrInvalidRelayParams)
			}
		})
	}
}
