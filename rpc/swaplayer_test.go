package rpc

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayer"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/rpc/mocks"
	"github.com/0xPolygon/swaplayer/rpc/types"
	"github.com/0xPolygon/swaplayer/staging"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/ethereum/go-ethereum/common"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type swapLayerWithMocks struct {
	*SwapLayerEndpoints
	registry   *mocks.PeerRegistry
	staging    *mocks.OutboundStager
	redemption *mocks.FillRedeemer
	ledger     *mocks.Balancer
	relayer    *mocks.RelayQueuer
}

func newSwapLayerWithMocks(t *testing.T, withRelayer bool) swapLayerWithMocks {
	t.Helper()

	s := swapLayerWithMocks{
		registry:   mocks.NewPeerRegistry(t),
		staging:    mocks.NewOutboundStager(t),
		redemption: mocks.NewFillRedeemer(t),
		ledger:     mocks.NewBalancer(t),
	}
	var queuer RelayQueuer
	if withRelayer {
		s.relayer = mocks.NewRelayQueuer(t)
		queuer = s.relayer
	}
	s.SwapLayerEndpoints = NewSwapLayerEndpoints(
		log.GetDefaultLogger(), time.Second, time.Second,
		s.registry, s.staging, s.redemption, s.ledger, queuer,
	)

	return s
}

func relayParams() messages.RelayParams {
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
	}
}

func requireRPCError(t *testing.T, err rpc.Error, class ErrorClass) {
	t.Helper()

	require.NotNil(t, err)
	require.Contains(t, err.Error(), string(class))
}

func TestQuoteRelayingFee(t *testing.T) {
	chain := messages.ChainID(2)
	usdcOutput, err := messages.EncodeOutputToken(messages.UsdcOutput())
	require.NoError(t, err)
	peer := registry.Peer{Chain: chain, RelayParams: relayParams()}

	t.Run("quote", func(t *testing.T) {
		s := newSwapLayerWithMocks(t, false)
		s.registry.EXPECT().GetPeer(mock.Anything, chain).Return(peer, nil).Once()

		expectedFee, err := relayerfee.CalculateRelayerFee(peer.RelayParams, 100, messages.UsdcOutput())
		require.NoError(t, err)

		res, rerr := s.QuoteRelayingFee(chain, 100, usdcOutput)
		require.Nil(t, rerr)
		require.Equal(t, types.RelayingFeeQuote{
			Chain:      chain,
			Fee:        expectedFee,
			FeeUSDC:    decimal.New(int64(expectedFee), -usdcDecimals).String(),
			GasDropoff: 100_000,
		}, res)
	})

	t.Run("unknown peer", func(t *testing.T) {
		s := newSwapLayerWithMocks(t, false)
		s.registry.EXPECT().GetPeer(mock.Anything, chain).
			Return(registry.Peer{}, fmt.Errorf("%w: %d", registry.ErrNoRegisteredPeer, chain)).Once()

		_, rerr := s.QuoteRelayingFee(chain, 0, usdcOutput)
		requireRPCError(t, rerr, ValidationError)
	})

	t.Run("gas dropoff above max", func(t *testing.T) {
		s := newSwapLayerWithMocks(t, false)
		s.registry.EXPECT().GetPeer(mock.Anything, chain).Return(peer, nil).Once()

		_, rerr := s.QuoteRelayingFee(chain, peer.RelayParams.MaxGasDropoff+1, usdcOutput)
		requireRPCError(t, rerr, EconomicsError)
	})

	t.Run("invalid output token", func(t *testing.T) {
		s := newSwapLayerWithMocks(t, false)

		_, rerr := s.QuoteRelayingFee(chain, 0, []byte{0xff})
		requireRPCError(t, rerr, ValidationError)
	})
}

func TestQueueRelay(t *testing.T) {
	fillID := common.HexToHash("0xf111")
	fill := func(mode messages.RedeemMode, status redemption.FillStatus) redemption.PreparedFill {
		payload, err := messages.Encode(messages.SwapLayerMessage{
			Recipient:   messages.BytesToUniversalAddress([]byte{1}),
			RedeemMode:  mode,
			OutputToken: messages.UsdcOutput(),
		})
		require.NoError(t, err)
		return redemption.PreparedFill{FillID: fillID, Payload: payload, Status: status}
	}

	testCases := []struct {
		description   string
		withRelayer   bool
		setupMocks    func(s swapLayerWithMocks)
		expectedClass ErrorClass
	}{
		{
			description:   "relayer disabled",
			expectedClass: ValidationError,
		},
		{
			description: "unknown fill",
			withRelayer: true,
			setupMocks: func(s swapLayerWithMocks) {
				s.redemption.EXPECT().GetFill(mock.Anything, fillID).
					Return(redemption.PreparedFill{}, db.ErrNotFound).Once()
			},
			expectedClass: ValidationError,
		},
		{
			description: "consumed fill",
			withRelayer: true,
			setupMocks: func(s swapLayerWithMocks) {
				s.redemption.EXPECT().GetFill(mock.Anything, fillID).
					Return(fill(messages.RelayMode(0, 10), redemption.Consumed), nil).Once()
			},
			expectedClass: ReplayError,
		},
		{
			description: "direct fill",
			withRelayer: true,
			setupMocks: func(s swapLayerWithMocks) {
				s.redemption.EXPECT().GetFill(mock.Anything, fillID).
					Return(fill(messages.DirectMode(), redemption.Unconsumed), nil).Once()
			},
			expectedClass: ConsistencyError,
		},
		{
			description: "already queued",
			withRelayer: true,
			setupMocks: func(s swapLayerWithMocks) {
				s.redemption.EXPECT().GetFill(mock.Anything, fillID).
					Return(fill(messages.RelayMode(0, 10), redemption.Unconsumed), nil).Once()
				s.relayer.EXPECT().AddFillToQueue(mock.Anything, fillID).Return(relayer.ErrAlreadyQueued).Once()
			},
			expectedClass: ReplayError,
		},
		{
			description: "queued",
			withRelayer: true,
			setupMocks: func(s swapLayerWithMocks) {
				s.redemption.EXPECT().GetFill(mock.Anything, fillID).
					Return(fill(messages.RelayMode(0, 10), redemption.Unconsumed), nil).Once()
				s.relayer.EXPECT().AddFillToQueue(mock.Anything, fillID).Return(nil).Once()
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.description, func(t *testing.T) {
			s := newSwapLayerWithMocks(t, tc.withRelayer)
			if tc.setupMocks != nil {
				tc.setupMocks(s)
			}
			_, rerr := s.QueueRelay(fillID)
			if tc.expectedClass == "" {
				require.Nil(t, rerr)
				return
			}
			requireRPCError(t, rerr, tc.expectedClass)
		})
	}
}

func TestGetRelayStatus(t *testing.T) {
	fillID := common.HexToHash("0xf111")
	s := newSwapLayerWithMocks(t, true)

	s.relayer.EXPECT().GetRelay(mock.Anything, fillID).Return(nil, relayer.ErrNotFound).Once()
	_, rerr := s.GetRelayStatus(fillID)
	require.NotNil(t, rerr)
	require.Equal(t, rpc.NotFoundErrorCode, rerr.ErrorCode())

	relay := &relayer.Relay{FillID: fillID, Status: relayer.SuccessRelayStatus}
	s.relayer.EXPECT().GetRelay(mock.Anything, fillID).Return(relay, nil).Once()
	res, rerr := s.GetRelayStatus(fillID)
	require.Nil(t, rerr)
	require.Equal(t, relay, res)
}

func TestGetters(t *testing.T) {
	s := newSwapLayerWithMocks(t, false)
	sender := messages.BytesToUniversalAddress([]byte{7})

	staged := staging.StagedOutbound{ID: "foo", Sender: sender}
	s.staging.EXPECT().GetStagedOutbound(mock.Anything, "foo").Return(staged, nil).Once()
	res, rerr := s.GetStagedOutbound("foo")
	require.Nil(t, rerr)
	require.Equal(t, staged, res)

	s.staging.EXPECT().GetStagedOutbound(mock.Anything, "bar").Return(staging.StagedOutbound{}, db.ErrNotFound).Once()
	_, rerr = s.GetStagedOutbound("bar")
	require.NotNil(t, rerr)
	require.Equal(t, rpc.NotFoundErrorCode, rerr.ErrorCode())

	s.staging.EXPECT().GetStagedOutboundsBySender(mock.Anything, sender).
		Return([]staging.StagedOutbound{staged}, nil).Once()
	res, rerr = s.GetStagedOutboundsBySender(sender)
	require.Nil(t, rerr)
	require.Equal(t, []staging.StagedOutbound{staged}, res)

	custodian := registry.Custodian{Owner: sender}
	s.registry.EXPECT().GetCustodian(mock.Anything).Return(custodian, nil).Once()
	res, rerr = s.GetCustodian()
	require.Nil(t, rerr)
	require.Equal(t, custodian, res)

	s.redemption.EXPECT().GetStagedInbound(mock.Anything, "baz").
		Return(redemption.StagedInbound{}, errors.New("database is locked")).Once()
	_, rerr = s.GetStagedInbound("baz")
	requireRPCError(t, rerr, ExternalFailure)
	require.Equal(t, rpc.DefaultErrorCode, rerr.ErrorCode())
}

func TestDecodeMessage(t *testing.T) {
	s := newSwapLayerWithMocks(t, false)
	msg := messages.SwapLayerMessage{
		Recipient:   messages.BytesToUniversalAddress([]byte{1}),
		RedeemMode:  messages.RelayMode(100, 5_000),
		OutputToken: messages.UsdcOutput(),
	}
	payload, err := messages.Encode(msg)
	require.NoError(t, err)

	res, rerr := s.DecodeMessage(payload)
	require.Nil(t, rerr)
	require.Equal(t, msg, res)

	_, rerr = s.DecodeMessage(payload[:len(payload)-1])
	requireRPCError(t, rerr, ValidationError)
}

func TestClassify(t *testing.T) {
	testCases := []struct {
		err      error
		expected ErrorClass
	}{
		{fmt.Errorf("peer: %w", registry.ErrChainNotAllowed), ValidationError},
		{registry.ErrInvalidPeer, ValidationError},
		{staging.ErrExceedsMaxRelayingFee, EconomicsError},
		{relayerfee.ErrInvalidGasDropoff, EconomicsError},
		{redemption.ErrInvalidRedeemMode, ConsistencyError},
		{redemption.ErrInvalidOutputToken, ConsistencyError},
		{fmt.Errorf("fill 0x01: %w", redemption.ErrFillAlreadyConsumed), ReplayError},
		{fmt.Errorf("swap: %w", swap.ErrUnderDelivered), ExternalFailure},
		{redemption.ErrInvalidAttestation, ExternalFailure},
		{fmt.Errorf("%w: error sending 1 to the bridge: %w", staging.ErrHandoffPending, errors.New("down")), ExternalFailure},
		{errors.New("unknown"), ExternalFailure},
	}

	for _, tc := range testCases {
		t.Run(tc.err.Error(), func(t *testing.T) {
			require.Equal(t, tc.expected, Classify(tc.err))
		})
	}
}
