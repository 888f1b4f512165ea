package redemption

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/redemption/migrations"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/swap"
	ethCommon "github.com/ethereum/go-ethereum/common"
	"github.com/google/uuid"
	"github.com/russross/meddler"
)

const errWhileRollbackFormat = "error while rolling back tx: %w"

// Engine redeems the fills delivered by the bridge. Every fill is consumed at most once,
// through the completion matching its redeem mode and output token.
type Engine struct {
	logger   *log.Logger
	db       *sql.DB
	cfg      common.Config
	registry registry.Storage
	ledger   *custody.Ledger
	verifier bridge.MessageVerifier
	attester bridge.Attester
	executor swap.Executor
	queue    RelayQueue
	now      func() time.Time
}

// RelayQueue receives the fills asking to be relayed once they're prepared
type RelayQueue interface {
	AddFillToQueue(ctx context.Context, fillID ethCommon.Hash) error
}

func New(
	logger *log.Logger,
	database *sql.DB,
	cfg common.Config,
	reg registry.Storage,
	ledger *custody.Ledger,
	verifier bridge.MessageVerifier,
	attester bridge.Attester,
	executor swap.Executor,
) (*Engine, error) {
	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}
	return &Engine{
		logger:   logger,
		db:       database,
		cfg:      cfg,
		registry: reg,
		ledger:   ledger,
		verifier: verifier,
		attester: attester,
		executor: executor,
		now:      time.Now,
	}, nil
}

// SetRelayQueue makes PrepareFill queue the relay fills into q after they're stored
func (e *Engine) SetRelayQueue(q RelayQueue) {
	e.queue = q
}

// PrepareFill authenticates fill and stores it as unconsumed. Nothing is credited until the
// fill is completed.
func (e *Engine) PrepareFill(ctx context.Context, fill bridge.InboundFill) (PreparedFill, error) {
	if err := e.verifier.VerifyMessage(ctx, fill); err != nil {
		return PreparedFill{}, fmt.Errorf("%w: message: %w", ErrInvalidAttestation, err)
	}
	if err := e.attester.VerifyReceipt(ctx, fill); err != nil {
		return PreparedFill{}, fmt.Errorf("%w: receipt: %w", ErrInvalidAttestation, err)
	}
	peer, err := e.registry.GetPeer(ctx, fill.SourceChain)
	if err != nil {
		return PreparedFill{}, fmt.Errorf("%w: %w", registry.ErrInvalidPeer, err)
	}
	if peer.Address != fill.Sender {
		return PreparedFill{}, fmt.Errorf("%w: fill sent by %s, peer of chain %d is %s",
			registry.ErrInvalidPeer, fill.Sender, fill.SourceChain, peer.Address)
	}
	msg, err := messages.Decode(fill.Payload)
	if err != nil {
		return PreparedFill{}, err
	}
	if fill.FillType != bridge.FastFill && fill.FillType != bridge.Finalized {
		return PreparedFill{}, fmt.Errorf("%w: %d", ErrUnsupportedFillType, fill.FillType)
	}

	prepared := PreparedFill{
		FillID:        bridge.FillID(fill),
		SourceChain:   fill.SourceChain,
		Sender:        fill.Sender,
		Sequence:      fill.Sequence,
		FillType:      fill.FillType,
		CustodyAmount: fill.Amount,
		Payload:       fill.Payload,
		Status:        Unconsumed,
		PreparedAt:    uint64(e.now().Unix()),
	}
	tx, err := db.NewTx(ctx, e.db)
	if err != nil {
		return PreparedFill{}, err
	}
	if err = meddler.Insert(tx, "prepared_fill", &prepared); err != nil {
		if errRllbck := tx.Rollback(); errRllbck != nil {
			e.logger.Errorf(errWhileRollbackFormat, errRllbck)
		}
		if db.IsUniqueConstraintErr(err) {
			return PreparedFill{}, fmt.Errorf("%w: %s", ErrFillAlreadyPrepared, prepared.FillID)
		}
		return PreparedFill{}, err
	}
	if e.queue != nil && msg.RedeemMode.Kind == messages.RedeemRelay {
		tx.AddCommitCallback(func() {
			if err := e.queue.AddFillToQueue(ctx, prepared.FillID); err != nil {
				e.logger.Warnf("error queueing fill %s to be relayed: %v", prepared.FillID, err)
			}
		})
	}
	if err = tx.Commit(); err != nil {
		return PreparedFill{}, err
	}

	e.logger.Infof("fill %s prepared, source chain: %d, sequence: %d, amount: %d",
		prepared.FillID, prepared.SourceChain, prepared.Sequence, prepared.CustodyAmount)
	return prepared, nil
}

// CompleteTransferDirect pays the custody out in USDC. Fills asking for a swap can only be
// redeemed this way by their recipient.
func (e *Engine) CompleteTransferDirect(
	ctx context.Context, fillID ethCommon.Hash, redeemer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, redeemer, TransferDirect, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemDirect); err != nil {
			return err
		}
		if r.msg.OutputToken.IsSwap() && redeemer != r.msg.Recipient {
			return fmt.Errorf("%w: only the recipient can redeem a swap as USDC", ErrInvalidRedeemer)
		}
		if err := r.claim(); err != nil {
			return err
		}
		return r.payout(e.cfg.USDCAsset, r.fill.CustodyAmount)
	})
}

// CompleteSwapDirect swaps the custody into the output token of the fill
func (e *Engine) CompleteSwapDirect(
	ctx context.Context, fillID ethCommon.Hash, redeemer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, redeemer, SwapDirect, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemDirect); err != nil {
			return err
		}
		plan, err := r.swapPlan()
		if err != nil {
			return err
		}
		if err = r.claim(); err != nil {
			return err
		}
		out, err := r.swap(plan, r.fill.CustodyAmount)
		if err != nil {
			return err
		}
		return r.payout(plan.asset, out)
	})
}

// CompleteTransferRelay redeems a relay fill in USDC. A payer other than the recipient gets
// the relaying fee and delivers the gas dropoff from its own native balance.
func (e *Engine) CompleteTransferRelay(
	ctx context.Context, fillID ethCommon.Hash, payer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, payer, TransferRelay, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemRelay); err != nil {
			return err
		}
		if r.msg.OutputToken.IsSwap() && !r.selfRedeem() {
			if err := r.checkSwapTimeLimit(); err != nil {
				return err
			}
		}
		if err := r.claim(); err != nil {
			return err
		}
		amount, err := r.chargeRelay()
		if err != nil {
			return err
		}
		return r.payout(e.cfg.USDCAsset, amount)
	})
}

// CompleteSwapRelay is CompleteTransferRelay swapping the custody left after the fee into the
// output token
func (e *Engine) CompleteSwapRelay(
	ctx context.Context, fillID ethCommon.Hash, payer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, payer, SwapRelay, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemRelay); err != nil {
			return err
		}
		plan, err := r.swapPlan()
		if err != nil {
			return err
		}
		if err = r.claim(); err != nil {
			return err
		}
		amountIn, err := r.chargeRelay()
		if err != nil {
			return err
		}
		out, err := r.swap(plan, amountIn)
		if err != nil {
			return err
		}
		return r.payout(plan.asset, out)
	})
}

// CompleteTransferPayload stages the USDC custody with the payload of the fill
func (e *Engine) CompleteTransferPayload(
	ctx context.Context, fillID ethCommon.Hash, payer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, payer, TransferPayload, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemPayload); err != nil {
			return err
		}
		if r.msg.OutputToken.Kind != messages.OutputUsdc {
			return fmt.Errorf("%w: expected usdc, got %s", ErrInvalidOutputToken, r.msg.OutputToken.Kind)
		}
		if err := r.claim(); err != nil {
			return err
		}
		return r.stageInbound(e.cfg.USDCAsset, false, r.fill.CustodyAmount)
	})
}

// CompleteSwapPayload swaps the custody and stages the output with the payload of the fill
func (e *Engine) CompleteSwapPayload(
	ctx context.Context, fillID ethCommon.Hash, payer messages.UniversalAddress,
) (Redemption, error) {
	return e.complete(ctx, fillID, payer, SwapPayload, func(r *redeemCtx) error {
		if err := r.requireMode(messages.RedeemPayload); err != nil {
			return err
		}
		plan, err := r.swapPlan()
		if err != nil {
			return err
		}
		if err = r.claim(); err != nil {
			return err
		}
		out, err := r.swap(plan, r.fill.CustodyAmount)
		if err != nil {
			return err
		}
		return r.stageInbound(plan.asset, r.msg.OutputToken.Kind == messages.OutputGas, out)
	})
}

// ReleaseInbound credits a staged inbound to its recipient, who must be the caller
func (e *Engine) ReleaseInbound(ctx context.Context, caller messages.UniversalAddress, id string) error {
	tx, err := db.NewTx(ctx, e.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				e.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	staged, err := getStagedInbound(tx, id)
	if err != nil {
		return err
	}
	if caller != staged.Recipient {
		err = fmt.Errorf("%w: only %s can release staged inbound %s", ErrInvalidRecipient, staged.Recipient, id)
		return err
	}
	if err = e.ledger.Credit(tx, staged.Recipient, staged.Asset, staged.Amount); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM staged_inbound WHERE id = $1;`, id); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	e.logger.Infof("staged inbound %s released, %d of %s credited to %s", id, staged.Amount, staged.Asset, staged.Recipient)
	return nil
}

// GetFill returns db.ErrNotFound for unknown fills
func (e *Engine) GetFill(ctx context.Context, fillID ethCommon.Hash) (PreparedFill, error) {
	return getFill(e.db, fillID)
}

// GetStagedInbound returns db.ErrNotFound for unknown ids
func (e *Engine) GetStagedInbound(ctx context.Context, id string) (StagedInbound, error) {
	return getStagedInbound(e.db, id)
}

// complete runs consume on a fresh tx. consume has to validate the fill before claiming it and
// paying it out, any error rolls everything back.
func (e *Engine) complete(
	ctx context.Context,
	fillID ethCommon.Hash,
	caller messages.UniversalAddress,
	completion Completion,
	consume func(r *redeemCtx) error,
) (Redemption, error) {
	tx, err := db.NewTx(ctx, e.db)
	if err != nil {
		return Redemption{}, err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				e.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	fill, err := getFill(tx, fillID)
	if err != nil {
		return Redemption{}, err
	}
	if fill.Status == Consumed {
		err = fmt.Errorf("%w: %s was consumed by %s through %s",
			ErrFillAlreadyConsumed, fillID, fill.ConsumedBy, fill.Completion)
		return Redemption{}, err
	}
	msg, err := fill.Message()
	if err != nil {
		return Redemption{}, err
	}

	r := &redeemCtx{
		ctx:        ctx,
		e:          e,
		tx:         tx,
		fill:       fill,
		msg:        msg,
		caller:     caller,
		completion: completion,
		now:        e.now(),
		result: Redemption{
			FillID:     fillID,
			Completion: completion,
			Recipient:  msg.Recipient,
		},
	}
	if err = consume(r); err != nil {
		return Redemption{}, err
	}
	if !r.claimed {
		err = fmt.Errorf("fill %s not claimed by %s", fillID, completion)
		return Redemption{}, err
	}
	if err = tx.Commit(); err != nil {
		return Redemption{}, err
	}

	e.logger.Infof("fill %s redeemed through %s by %s: %d of %s for %s, relayer fee: %d, gas dropoff: %d",
		fillID, completion, caller, r.result.Amount, r.result.Asset, r.result.Recipient,
		r.result.RelayerFee, r.result.GasDropoff)
	return r.result, nil
}

// redeemCtx carries the state of a completion in progress
type redeemCtx struct {
	ctx        context.Context
	e          *Engine
	tx         *db.Tx
	fill       PreparedFill
	msg        messages.SwapLayerMessage
	caller     messages.UniversalAddress
	completion Completion
	now        time.Time
	claimed    bool
	result     Redemption
}

type swapPlan struct {
	asset messages.UniversalAddress
	limit uint64
	swap  messages.OutputSwap
}

func (r *redeemCtx) requireMode(kind messages.RedeemModeKind) error {
	if r.msg.RedeemMode.Kind != kind {
		return fmt.Errorf("%w: %s expects %s, fill is %s",
			ErrInvalidRedeemMode, r.completion, kind, r.msg.RedeemMode.Kind)
	}
	return nil
}

func (r *redeemCtx) selfRedeem() bool {
	return r.caller == r.msg.Recipient
}

// swapPlan validates the output token of a swap completion
func (r *redeemCtx) swapPlan() (swapPlan, error) {
	out := r.msg.OutputToken
	var asset messages.UniversalAddress
	switch out.Kind {
	case messages.OutputGas:
		asset = custody.NativeAsset
	case messages.OutputOther:
		asset = out.Address
	default:
		return swapPlan{}, fmt.Errorf("%w: %s can't be swapped", ErrInvalidOutputToken, out.Kind)
	}
	if out.Swap == nil {
		return swapPlan{}, fmt.Errorf("%w: missing swap", ErrInvalidOutputToken)
	}
	if out.Swap.Deadline != 0 && r.now.Unix() > int64(out.Swap.Deadline) {
		return swapPlan{}, fmt.Errorf("%w: deadline %d", ErrSwapPastDeadline, out.Swap.Deadline)
	}
	limit, ok := messages.LimitAmountToUint64(&out.Swap.LimitAmount)
	if !ok {
		return swapPlan{}, fmt.Errorf("%w: %s", ErrInvalidLimitAmount, out.Swap.LimitAmount.Dec())
	}
	if asset == r.e.cfg.USDCAsset {
		return swapPlan{}, swap.ErrSameAsset
	}
	return swapPlan{asset: asset, limit: limit, swap: *out.Swap}, nil
}

func (r *redeemCtx) checkSwapTimeLimit() error {
	peer, err := r.e.registry.GetPeerTx(r.tx, r.fill.SourceChain)
	if err != nil {
		return err
	}
	var limit uint16
	switch r.fill.FillType {
	case bridge.FastFill:
		limit = peer.RelayParams.SwapTimeLimit.FastLimit
	case bridge.Finalized:
		limit = peer.RelayParams.SwapTimeLimit.FinalizedLimit
	default:
		return fmt.Errorf("%w: %d", ErrUnsupportedFillType, r.fill.FillType)
	}
	elapsed := r.now.Unix() - int64(r.fill.PreparedAt)
	if elapsed < int64(limit) {
		return fmt.Errorf("%w: %ds elapsed, %ds required for %s fills",
			ErrSwapTimeLimitNotExceeded, elapsed, limit, r.fill.FillType)
	}
	return nil
}

// claim marks the fill as consumed. The update only matches unconsumed fills so a concurrent
// completion can't consume it twice.
func (r *redeemCtx) claim() error {
	res, err := r.tx.Exec(`
		UPDATE prepared_fill SET status = $1, consumed_at = $2, consumed_by = $3, completion = $4
		WHERE fill_id = $5 AND status = $6;`,
		Consumed, r.now.Unix(), r.caller.Hex(), r.completion, r.fill.FillID.Hex(), Unconsumed)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return fmt.Errorf("%w: %s", ErrFillAlreadyConsumed, r.fill.FillID)
	}
	r.claimed = true
	return nil
}

// chargeRelay pays the relayer fee and the gas dropoff unless the recipient is redeeming by
// itself. It returns the USDC left for the recipient.
func (r *redeemCtx) chargeRelay() (uint64, error) {
	if r.selfRedeem() {
		return r.fill.CustodyAmount, nil
	}
	fee := r.msg.RedeemMode.RelayingFee
	if fee > r.fill.CustodyAmount {
		return 0, fmt.Errorf("%w: fee %d above custody %d", ErrInvalidRelayerFee, fee, r.fill.CustodyAmount)
	}
	custodian, err := r.e.registry.GetCustodianTx(r.tx)
	if err != nil {
		return 0, err
	}
	if err = r.e.ledger.Credit(r.tx, custodian.FeeRecipient, r.e.cfg.USDCAsset, fee); err != nil {
		return 0, err
	}
	dropoff := relayerfee.DenormalizeGasDropoff(r.msg.RedeemMode.GasDropoff)
	if err = r.e.ledger.Transfer(r.tx, r.caller, r.msg.Recipient, custody.NativeAsset, dropoff); err != nil {
		return 0, fmt.Errorf("gas dropoff: %w", err)
	}
	r.result.RelayerFee = fee
	r.result.GasDropoff = dropoff
	return r.fill.CustodyAmount - fee, nil
}

func (r *redeemCtx) swap(plan swapPlan, amountIn uint64) (uint64, error) {
	swapType := plan.swap.SwapType
	return swap.CheckedExecute(r.ctx, r.e.executor, swap.Request{
		ID:           "fill-" + r.fill.FillID.Hex(),
		InputAsset:   r.e.cfg.USDCAsset,
		OutputAsset:  plan.asset,
		AmountIn:     amountIn,
		MinAmountOut: plan.limit,
		Deadline:     plan.swap.Deadline,
		SwapType:     &swapType,
	})
}

func (r *redeemCtx) payout(asset messages.UniversalAddress, amount uint64) error {
	if err := r.e.ledger.Credit(r.tx, r.msg.Recipient, asset, amount); err != nil {
		return err
	}
	r.result.Asset = asset
	r.result.Amount = amount
	return nil
}

func (r *redeemCtx) stageInbound(asset messages.UniversalAddress, isNative bool, amount uint64) error {
	staged := StagedInbound{
		ID:               uuid.NewString(),
		FillID:           r.fill.FillID,
		StagedBy:         r.caller,
		SourceChain:      r.fill.SourceChain,
		Recipient:        r.msg.Recipient,
		IsNative:         isNative,
		Asset:            asset,
		Amount:           amount,
		RecipientPayload: r.msg.RedeemMode.Payload,
		CreatedAt:        uint64(r.now.Unix()),
	}
	if err := meddler.Insert(r.tx, "staged_inbound", &staged); err != nil {
		return err
	}
	r.result.Asset = asset
	r.result.Amount = amount
	r.result.StagedInboundID = staged.ID
	return nil
}

func getFill(tx db.Querier, fillID ethCommon.Hash) (PreparedFill, error) {
	var fill PreparedFill
	err := meddler.QueryRow(tx, &fill, `SELECT * FROM prepared_fill WHERE fill_id = $1;`, fillID.Hex())
	if err != nil {
		return PreparedFill{}, db.ReturnErrNotFound(err)
	}
	return fill, nil
}

func getStagedInbound(tx db.Querier, id string) (StagedInbound, error) {
	var staged StagedInbound
	err := meddler.QueryRow(tx, &staged, `SELECT * FROM staged_inbound WHERE id = $1;`, id)
	if err != nil {
		return StagedInbound{}, db.ReturnErrNotFound(err)
	}
	return staged, nil
}
