package remote

import (
	"context"
	"encoding/json"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/0xPolygon/cdk-rpc/rpc"
	"github.com/0xPolygon/swaplayer/config/types"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/stretchr/testify/require"
)

func newTestExecutor(t *testing.T, call callFn) *Executor {
	t.Helper()

	e := New(log.GetDefaultLogger(), Config{
		URL:                    "http://localhost:1234",
		Timeout:                types.NewDuration(time.Second),
		MaxConsecutiveFailures: 2,
		OpenTimeout:            types.NewDuration(time.Hour),
	})
	e.call = call
	return e
}

func response(t *testing.T, result interface{}) rpc.Response {
	t.Helper()
	raw, err := json.Marshal(result)
	require.NoError(t, err)
	return rpc.Response{Result: raw}
}

func testRequest(id string) swap.Request {
	return swap.Request{
		ID:           id,
		InputAsset:   messages.UniversalAddress{1},
		OutputAsset:  messages.UniversalAddress{2},
		AmountIn:     1_000,
		MinAmountOut: 900,
	}
}

func TestExecute(t *testing.T) {
	req := testRequest("fill-1")

	var gotMethod string
	var gotParams []interface{}
	e := newTestExecutor(t, func(_ context.Context, url, method string, parameters ...interface{}) (rpc.Response, error) {
		gotMethod = method
		gotParams = parameters
		return response(t, executeResult{AmountOut: 950}), nil
	})

	out, err := e.Execute(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, uint64(950), out)
	require.Equal(t, executeMethod, gotMethod)
	require.Equal(t, []interface{}{req}, gotParams)
}

func TestExecuteWithoutID(t *testing.T) {
	e := newTestExecutor(t, func(context.Context, string, string, ...interface{}) (rpc.Response, error) {
		t.Fatal("the executor must not be called")
		return rpc.Response{}, nil
	})

	_, err := e.Execute(context.Background(), swap.Request{})
	require.ErrorIs(t, err, ErrMissingSwapID)
}

func TestExecuteRejected(t *testing.T) {
	var methods []string
	e := newTestExecutor(t, func(_ context.Context, url, method string, parameters ...interface{}) (rpc.Response, error) {
		methods = append(methods, method)
		return rpc.Response{Error: &rpc.ErrorObject{Code: -32000, Message: "no route"}}, nil
	})

	_, err := e.Execute(context.Background(), testRequest("fill-1"))
	require.ErrorContains(t, err, "no route")
	var rejected *RejectedError
	require.ErrorAs(t, err, &rejected)
	require.Equal(t, -32000, rejected.Code)
	// rejected swaps aren't settled
	require.Equal(t, []string{executeMethod}, methods)
}

// fakeExecutor lands a swap delay after receiving it, unless it's settled before
type fakeExecutor struct {
	t            *testing.T
	delay        time.Duration
	dropResponse bool
	settleErr    error

	mu       sync.Mutex
	status   map[string]string
	executed int
}

func newFakeExecutor(t *testing.T, delay time.Duration) *fakeExecutor {
	t.Helper()
	return &fakeExecutor{t: t, delay: delay, status: map[string]string{}}
}

func (f *fakeExecutor) call(ctx context.Context, _, method string, parameters ...interface{}) (rpc.Response, error) {
	switch method {
	case executeMethod:
		req, ok := parameters[0].(swap.Request)
		require.True(f.t, ok)
		f.mu.Lock()
		f.status[req.ID] = "pending"
		f.mu.Unlock()

		landed := make(chan struct{})
		go func() {
			time.Sleep(f.delay)
			f.mu.Lock()
			if f.status[req.ID] == "pending" {
				f.status[req.ID] = settledExecuted
				f.executed++
			}
			f.mu.Unlock()
			close(landed)
		}()
		select {
		case <-ctx.Done():
			return rpc.Response{}, ctx.Err()
		case <-landed:
		}
		if f.dropResponse {
			return rpc.Response{}, errors.New("connection reset by peer")
		}
		return response(f.t, executeResult{AmountOut: 950}), nil

	case settleMethod:
		if f.settleErr != nil {
			return rpc.Response{}, f.settleErr
		}
		id, ok := parameters[0].(string)
		require.True(f.t, ok)
		require.NoError(f.t, ctx.Err())
		f.mu.Lock()
		defer f.mu.Unlock()
		if f.status[id] == "pending" {
			f.status[id] = settledCancelled
		}
		res := settleResult{Status: f.status[id]}
		if res.Status == settledExecuted {
			res.AmountOut = 950
		}
		return response(f.t, res), nil
	}
	f.t.Fatalf("unexpected method %s", method)
	return rpc.Response{}, nil
}

func (f *fakeExecutor) executedSwaps() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.executed
}

func TestExecuteTimeoutCancelsTheSwap(t *testing.T) {
	f := newFakeExecutor(t, 200*time.Millisecond)
	e := newTestExecutor(t, f.call)
	e.timeout = 20 * time.Millisecond

	_, err := e.Execute(context.Background(), testRequest("fill-1"))
	require.ErrorIs(t, err, ErrSwapCancelled)
	require.ErrorIs(t, err, context.DeadlineExceeded)

	// the swap never lands once the call has failed
	time.Sleep(300 * time.Millisecond)
	require.Zero(t, f.executedSwaps())
}

func TestExecuteCancelledCallerCancelsTheSwap(t *testing.T) {
	f := newFakeExecutor(t, 200*time.Millisecond)
	e := newTestExecutor(t, f.call)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	_, err := e.Execute(ctx, testRequest("fill-1"))
	require.ErrorIs(t, err, ErrSwapCancelled)

	time.Sleep(300 * time.Millisecond)
	require.Zero(t, f.executedSwaps())
}

func TestExecuteLostResponseReturnsTheSwap(t *testing.T) {
	f := newFakeExecutor(t, time.Millisecond)
	f.dropResponse = true
	e := newTestExecutor(t, f.call)

	out, err := e.Execute(context.Background(), testRequest("fill-1"))
	require.NoError(t, err)
	require.Equal(t, uint64(950), out)
	require.Equal(t, 1, f.executedSwaps())
}

func TestExecuteUnsettled(t *testing.T) {
	f := newFakeExecutor(t, 200*time.Millisecond)
	f.settleErr = errors.New("connection refused")
	e := newTestExecutor(t, f.call)
	e.timeout = 20 * time.Millisecond

	_, err := e.Execute(context.Background(), testRequest("fill-1"))
	require.ErrorIs(t, err, ErrSwapUnsettled)
	require.ErrorIs(t, err, context.DeadlineExceeded)
	require.ErrorIs(t, err, f.settleErr)
}

func TestCircuitBreakerOpens(t *testing.T) {
	errDown := errors.New("connection refused")
	calls := 0
	e := newTestExecutor(t, func(_ context.Context, url, method string, parameters ...interface{}) (rpc.Response, error) {
		if method == executeMethod {
			calls++
		}
		return rpc.Response{}, errDown
	})

	for i := 0; i < 2; i++ {
		_, err := e.Execute(context.Background(), testRequest("fill-1"))
		require.ErrorIs(t, err, errDown)
	}
	_, err := e.Execute(context.Background(), testRequest("fill-1"))
	require.ErrorIs(t, err, ErrExecutorUnavailable)
	require.Equal(t, 2, calls)
}
