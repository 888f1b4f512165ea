package swap_test

import (
	"context"
	"errors"
	"testing"

	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/0xPolygon/swaplayer/swap/mocks"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var (
	usdc  = messages.UniversalAddress{1}
	token = messages.UniversalAddress{2}
)

func TestCheckedExecute(t *testing.T) {
	errDex := errors.New("pool drained")

	tests := []struct {
		name          string
		req           swap.Request
		mockAmountOut uint64
		mockErr       error
		callsExecutor bool
		expectedOut   uint64
		expectedErr   error
	}{
		{
			name:          "delivers more than the minimum",
			req:           swap.Request{InputAsset: usdc, OutputAsset: token, AmountIn: 100, MinAmountOut: 90},
			mockAmountOut: 95,
			callsExecutor: true,
			expectedOut:   95,
		},
		{
			name:          "delivers exactly the minimum",
			req:           swap.Request{InputAsset: usdc, OutputAsset: token, AmountIn: 100, MinAmountOut: 90},
			mockAmountOut: 90,
			callsExecutor: true,
			expectedOut:   90,
		},
		{
			name:          "under delivers",
			req:           swap.Request{InputAsset: usdc, OutputAsset: token, AmountIn: 100, MinAmountOut: 90},
			mockAmountOut: 89,
			callsExecutor: true,
			expectedErr:   swap.ErrUnderDelivered,
		},
		{
			name:          "executor fails",
			req:           swap.Request{InputAsset: usdc, OutputAsset: token, AmountIn: 100},
			mockErr:       errDex,
			callsExecutor: true,
			expectedErr:   errDex,
		},
		{
			name:        "same asset",
			req:         swap.Request{InputAsset: usdc, OutputAsset: usdc, AmountIn: 100},
			expectedErr: swap.ErrSameAsset,
		},
		{
			name:        "zero amount in",
			req:         swap.Request{InputAsset: usdc, OutputAsset: token},
			expectedErr: swap.ErrZeroAmountIn,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			executor := mocks.NewExecutor(t)
			if tt.callsExecutor {
				executor.EXPECT().Execute(mock.Anything, tt.req).Return(tt.mockAmountOut, tt.mockErr)
			}

			out, err := swap.CheckedExecute(context.Background(), executor, tt.req)
			if tt.expectedErr != nil {
				require.ErrorIs(t, err, tt.expectedErr)
				require.Zero(t, out)
				return
			}
			require.NoError(t, err)
			require.Equal(t, tt.expectedOut, out)
		})
	}
}
