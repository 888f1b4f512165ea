package relayer

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/0xPolygon/swaplayer/config/types"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	swaplayerCommon "github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/0xPolygon/swaplayer/sync"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ledgerwatch/erigon-lib/kv"
	"github.com/ledgerwatch/erigon-lib/kv/iter"
	"github.com/ledgerwatch/erigon-lib/kv/mdbx"
)

type RelayStatus string

const (
	PendingRelayStatus = "pending"
	WIPStatus          = "work in progress"
	SuccessRelayStatus = "success"
	FailedRelayStatus  = "failed"

	relayTable = "relayer-relay"
	queueTable = "relayer-queue"
)

var (
	ErrNotFound          = errors.New("not found")
	ErrAlreadyQueued     = errors.New("fill already queued")
	ErrRelayerNotEnabled = errors.New("relayer not enabled")
)

type Config struct {
	// Enabled indicates if the relayer should be run or not
	Enabled bool `mapstructure:"Enabled"`
	// DBPath is the path of the queue database
	DBPath string `mapstructure:"DBPath"`
	// RelayerAccount is the account redeeming the fills. It gets the relaying fees through the
	// fee recipient and pays the gas dropoffs.
	RelayerAccount messages.UniversalAddress `mapstructure:"RelayerAccount"`
	// RetryAfterErrorPeriod is the time that will be waited when an unexpected error happens before retry
	RetryAfterErrorPeriod types.Duration `mapstructure:"RetryAfterErrorPeriod"`
	// MaxRetryAttemptsAfterError is the maximum number of consecutive attempts that will happen before panicing.
	// Any number smaller than zero will be considered as unlimited retries
	MaxRetryAttemptsAfterError int `mapstructure:"MaxRetryAttemptsAfterError"`
	// WaitOnEmptyQueue is the time that will be waited before trying to relay the next fill when the queue is empty
	WaitOnEmptyQueue types.Duration `mapstructure:"WaitOnEmptyQueue"`
}

// Relay is the state of a fill handled by the relayer
type Relay struct {
	FillID     common.Hash            `json:"fillId"`
	Status     RelayStatus            `json:"status"`
	Completion redemption.Completion  `json:"completion,omitempty"`
	Redemption *redemption.Redemption `json:"redemption,omitempty"`
	Error      string                 `json:"error,omitempty"`
}

func (r *Relay) Key() []byte {
	return r.FillID.Bytes()
}

// Redeemer is the part of the redemption engine used to relay fills
type Redeemer interface {
	GetFill(ctx context.Context, fillID common.Hash) (redemption.PreparedFill, error)
	CompleteTransferRelay(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
	CompleteSwapRelay(
		ctx context.Context, fillID common.Hash, payer messages.UniversalAddress) (redemption.Redemption, error)
}

// Relayer redeems queued relay fills on behalf of their recipients, one at a time and in
// the order they were queued
type Relayer struct {
	logger           *log.Logger
	db               kv.RwDB
	redeemer         Redeemer
	account          messages.UniversalAddress
	rh               *sync.RetryHandler
	waitOnEmptyQueue time.Duration
}

func New(logger *log.Logger, cfg Config, redeemer Redeemer) (*Relayer, error) {
	tableCfgFunc := func(defaultBuckets kv.TableCfg) kv.TableCfg {
		cfg := kv.TableCfg{
			relayTable: {},
			queueTable: {},
		}

		return cfg
	}
	database, err := mdbx.NewMDBX(nil).
		Path(cfg.DBPath).
		WithTableCfg(tableCfgFunc).
		Open()
	if err != nil {
		return nil, err
	}
	rh := &sync.RetryHandler{
		MaxRetryAttemptsAfterError: cfg.MaxRetryAttemptsAfterError,
		RetryAfterErrorPeriod:      cfg.RetryAfterErrorPeriod.Duration,
	}

	return &Relayer{
		logger:           logger,
		db:               database,
		redeemer:         redeemer,
		account:          cfg.RelayerAccount,
		rh:               rh,
		waitOnEmptyQueue: cfg.WaitOnEmptyQueue.Duration,
	}, nil
}

func (r *Relayer) Start(ctx context.Context) {
	var (
		attempts int
		err      error
	)
	for {
		if ctx.Err() != nil {
			r.logger.Info("relayer stopped")
			return
		}
		if err != nil {
			attempts++
			r.rh.Handle("relayer main loop", attempts)
		}
		tx, err2 := r.db.BeginRw(ctx)
		if err2 != nil {
			err = err2
			r.logger.Errorf("error calling BeginRw: %v", err)
			continue
		}
		queueIndex, fillID, err2 := getFirstQueueIndex(tx)
		if err2 != nil {
			err = err2
			tx.Rollback()
			if errors.Is(err, ErrNotFound) {
				r.logger.Debugf("queue is empty")
				err = nil
				attempts = 0
				r.wait(ctx)

				continue
			}
			r.logger.Errorf("error calling getFirstQueueIndex: %v", err)
			continue
		}
		relay, err2 := getRelay(tx, fillID)
		if err2 != nil {
			err = err2
			tx.Rollback()
			r.logger.Errorf("error calling getRelay with fill %s: %v", fillID, err)
			continue
		}
		relay.Status = WIPStatus
		if err2 = putRelay(tx, relay); err2 != nil {
			err = err2
			tx.Rollback()
			r.logger.Errorf("error calling putRelay with fill %s: %v", fillID, err)
			continue
		}
		if err2 = tx.Commit(); err2 != nil {
			err = err2
			r.logger.Errorf("error calling tx.Commit after putting relay: %v", err)
			continue
		}

		requeue, err2 := r.relay(ctx, relay)
		if err2 != nil {
			err = err2
			r.logger.Errorf("error relaying fill %s: %v", fillID, err)
			continue
		}
		r.logger.Infof("fill %s concluded with status: %s", fillID, relay.Status)

		tx, err2 = r.db.BeginRw(ctx)
		if err2 != nil {
			err = err2
			r.logger.Errorf("error calling BeginRw: %v", err)
			continue
		}
		if err2 = putRelay(tx, relay); err2 != nil {
			err = err2
			tx.Rollback()
			r.logger.Errorf("error calling putRelay with fill %s: %v", fillID, err)
			continue
		}
		if err2 = tx.Delete(queueTable, swaplayerCommon.Uint64ToBytes(queueIndex)); err2 != nil {
			err = err2
			tx.Rollback()
			r.logger.Errorf("error calling delete on the queue table with index %d: %v", queueIndex, err)
			continue
		}
		if requeue {
			if err2 = enqueue(tx, relay); err2 != nil {
				err = err2
				tx.Rollback()
				r.logger.Errorf("error requeuing fill %s: %v", fillID, err)
				continue
			}
		}
		if err2 = tx.Commit(); err2 != nil {
			err = err2
			r.logger.Errorf("error calling tx.Commit after putting relay: %v", err)
			continue
		}
		if requeue {
			r.wait(ctx)
		}

		attempts = 0
		err = nil
	}
}

// relay redeems the fill of relay and sets its final status. It returns true when the fill
// can't be redeemed yet and has to go back to the queue. Errors are only returned for
// failures worth retrying right away.
func (r *Relayer) relay(ctx context.Context, relay *Relay) (bool, error) {
	fill, err := r.redeemer.GetFill(ctx, relay.FillID)
	if err != nil {
		if errors.Is(err, db.ErrNotFound) {
			r.fail(relay, err)
			return false, nil
		}
		return false, err
	}
	msg, err := fill.Message()
	if err != nil {
		r.fail(relay, err)
		return false, nil
	}

	var res redemption.Redemption
	if msg.OutputToken.IsSwap() {
		relay.Completion = redemption.SwapRelay
		res, err = r.redeemer.CompleteSwapRelay(ctx, relay.FillID, r.account)
		if err != nil && isSwapFailure(err) {
			r.logger.Warnf("swap of fill %s failed, redeeming it as USDC: %v", relay.FillID, err)
			relay.Completion = redemption.TransferRelay
			res, err = r.redeemer.CompleteTransferRelay(ctx, relay.FillID, r.account)
		}
	} else {
		relay.Completion = redemption.TransferRelay
		res, err = r.redeemer.CompleteTransferRelay(ctx, relay.FillID, r.account)
	}

	switch {
	case err == nil:
		relay.Status = SuccessRelayStatus
		relay.Redemption = &res
		relay.Error = ""
		return false, nil
	case errors.Is(err, redemption.ErrSwapTimeLimitNotExceeded):
		r.logger.Debugf("fill %s can't be relayed yet: %v", relay.FillID, err)
		relay.Status = PendingRelayStatus
		relay.Error = err.Error()
		return true, nil
	case isPermanent(err):
		r.fail(relay, err)
		return false, nil
	default:
		return false, err
	}
}

func (r *Relayer) fail(relay *Relay, err error) {
	r.logger.Warnf("fill %s can't be relayed: %v", relay.FillID, err)
	relay.Status = FailedRelayStatus
	relay.Error = err.Error()
}

func (r *Relayer) wait(ctx context.Context) {
	select {
	case <-ctx.Done():
	case <-time.After(r.waitOnEmptyQueue):
	}
}

func isSwapFailure(err error) bool {
	return errors.Is(err, swap.ErrUnderDelivered) ||
		errors.Is(err, redemption.ErrSwapPastDeadline) ||
		errors.Is(err, redemption.ErrInvalidLimitAmount) ||
		errors.Is(err, swap.ErrSameAsset)
}

func isPermanent(err error) bool {
	for _, permanent := range []error{
		redemption.ErrFillAlreadyConsumed,
		redemption.ErrInvalidRedeemMode,
		redemption.ErrInvalidOutputToken,
		redemption.ErrInvalidRelayerFee,
		redemption.ErrUnsupportedFillType,
		custody.ErrInsufficientBalance,
		messages.ErrInvalidEncoding,
		db.ErrNotFound,
	} {
		if errors.Is(err, permanent) {
			return true
		}
	}
	return isSwapFailure(err)
}

// AddFillToQueue queues a prepared fill to be relayed
func (r *Relayer) AddFillToQueue(ctx context.Context, fillID common.Hash) error {
	tx, err := r.db.BeginRw(ctx)
	if err != nil {
		return err
	}

	_, err = getRelay(tx, fillID)
	if !errors.Is(err, ErrNotFound) {
		tx.Rollback()
		if err != nil {
			return err
		}

		return fmt.Errorf("%w: %s", ErrAlreadyQueued, fillID)
	}

	relay := &Relay{FillID: fillID, Status: PendingRelayStatus}
	if err = putRelay(tx, relay); err != nil {
		tx.Rollback()

		return err
	}
	if err = enqueue(tx, relay); err != nil {
		tx.Rollback()

		return err
	}

	return tx.Commit()
}

// GetRelay returns ErrNotFound if the fill was never queued
func (r *Relayer) GetRelay(ctx context.Context, fillID common.Hash) (*Relay, error) {
	tx, err := r.db.BeginRo(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	return getRelay(tx, fillID)
}

func enqueue(tx kv.RwTx, relay *Relay) error {
	var queuePosition uint64
	lastQueuePosition, _, err := getLastQueueIndex(tx)
	switch {
	case errors.Is(err, ErrNotFound):
		queuePosition = 0
	case err != nil:
		return err
	default:
		queuePosition = lastQueuePosition + 1
	}

	return tx.Put(queueTable, swaplayerCommon.Uint64ToBytes(queuePosition), relay.Key())
}

func putRelay(tx kv.RwTx, relay *Relay) error {
	value, err := json.Marshal(relay)
	if err != nil {
		return err
	}

	return tx.Put(relayTable, relay.Key(), value)
}

func getRelay(tx kv.Tx, fillID common.Hash) (*Relay, error) {
	relayBytes, err := tx.GetOne(relayTable, fillID.Bytes())
	if err != nil {
		return nil, err
	}
	if relayBytes == nil {
		return nil, ErrNotFound
	}
	relay := &Relay{}
	err = json.Unmarshal(relayBytes, relay)

	return relay, err
}

func getLastQueueIndex(tx kv.Tx) (uint64, common.Hash, error) {
	iter, err := tx.RangeDescend(
		queueTable,
		swaplayerCommon.Uint64ToBytes(math.MaxUint64),
		swaplayerCommon.Uint64ToBytes(0), 1,
	)
	if err != nil {
		return 0, common.Hash{}, err
	}

	return getIndex(iter)
}

func getFirstQueueIndex(tx kv.Tx) (uint64, common.Hash, error) {
	iter, err := tx.RangeAscend(
		queueTable,
		swaplayerCommon.Uint64ToBytes(0),
		nil, 1,
	)
	if err != nil {
		return 0, common.Hash{}, err
	}

	return getIndex(iter)
}

func getIndex(iter iter.KV) (uint64, common.Hash, error) {
	k, v, err := iter.Next()
	if err != nil {
		return 0, common.Hash{}, err
	}
	if k == nil {
		return 0, common.Hash{}, ErrNotFound
	}

	return swaplayerCommon.BytesToUint64(k), common.BytesToHash(v), nil
}
