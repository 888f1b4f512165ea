package staging

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/0xPolygon/swaplayer/bridge"
	"github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/custody"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/registry"
	"github.com/0xPolygon/swaplayer/relayerfee"
	"github.com/0xPolygon/swaplayer/staging/migrations"
	"github.com/0xPolygon/swaplayer/swap"
	"github.com/google/uuid"
	"github.com/russross/meddler"
)

const errWhileRollbackFormat = "error while rolling back tx: %w"

// Engine takes assets from senders into custody and hands the staged orders over to the bridge
type Engine struct {
	logger   *log.Logger
	db       *sql.DB
	cfg      common.Config
	registry registry.Storage
	ledger   *custody.Ledger
	sender   bridge.Sender
	executor swap.Executor
	now      func() time.Time
}

func New(
	logger *log.Logger,
	database *sql.DB,
	cfg common.Config,
	reg registry.Storage,
	ledger *custody.Ledger,
	sender bridge.Sender,
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
		sender:   sender,
		executor: executor,
		now:      time.Now,
	}, nil
}

// StageOutbound takes the input of args into custody and stores the order until it's
// initiated or released
func (e *Engine) StageOutbound(ctx context.Context, args StageOutboundArgs) (StagedOutbound, error) {
	if args.Recipient.IsZero() {
		return StagedOutbound{}, ErrInvalidRecipient
	}
	if args.TargetChain == e.cfg.LocalChainID {
		return StagedOutbound{}, fmt.Errorf("%w: %d is the local chain", registry.ErrChainNotAllowed, args.TargetChain)
	}
	outputToken, err := messages.DecodeOutputToken(args.OutputToken)
	if err != nil {
		return StagedOutbound{}, fmt.Errorf("output token: %w", err)
	}

	tx, err := db.NewTx(ctx, e.db)
	if err != nil {
		return StagedOutbound{}, err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				e.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	peer, err := e.registry.GetPeerTx(tx, args.TargetChain)
	if err != nil {
		return StagedOutbound{}, err
	}
	redeemMode, err := redeemModeFor(peer, args.RedeemOption, outputToken)
	if err != nil {
		return StagedOutbound{}, err
	}

	staged := StagedOutbound{
		ID:                 uuid.NewString(),
		PreparedBy:         args.Preparer,
		Sender:             args.Sender,
		SrcAsset:           args.SrcAsset,
		TargetChain:        args.TargetChain,
		Recipient:          args.Recipient,
		InputKind:          args.Input.Kind,
		RedeemMode:         redeemMode,
		EncodedOutputToken: args.OutputToken,
		CreatedAt:          uint64(e.now().Unix()),
	}
	if err = e.setCustody(&staged, args.Input); err != nil {
		return StagedOutbound{}, err
	}
	if err = e.ledger.Debit(tx, staged.Sender, staged.SrcAsset, staged.CustodyAmount); err != nil {
		return StagedOutbound{}, err
	}
	if err = meddler.Insert(tx, "staged_outbound", &staged); err != nil {
		return StagedOutbound{}, err
	}
	if err = tx.Commit(); err != nil {
		return StagedOutbound{}, err
	}

	e.logger.Infof("staged outbound %s: %d of %s from %s to %s on chain %d, redeem mode %s",
		staged.ID, staged.CustodyAmount, staged.SrcAsset, staged.Sender, staged.Recipient,
		staged.TargetChain, staged.RedeemMode.Kind)
	return staged, nil
}

// InitiateTransfer swaps the custody into USDC when needed and hands the order over to the
// bridge. The staged record is replaced by an OutboundHandoff on the same transaction, and the
// handoff is sent once that's committed. If sending fails the error wraps ErrHandoffPending,
// the order can't be released anymore and the handoff is retried by Start.
func (e *Engine) InitiateTransfer(
	ctx context.Context, caller messages.UniversalAddress, id string,
) (bridge.Handoff, error) {
	pending, err := e.initiate(ctx, caller, id)
	if err != nil {
		return bridge.Handoff{}, err
	}
	return e.send(ctx, pending)
}

func (e *Engine) initiate(
	ctx context.Context, caller messages.UniversalAddress, id string,
) (OutboundHandoff, error) {
	tx, err := db.NewTx(ctx, e.db)
	if err != nil {
		return OutboundHandoff{}, err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				e.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	staged, err := getStagedOutbound(tx, id)
	if err != nil {
		return OutboundHandoff{}, err
	}
	if caller != staged.PreparedBy && caller != staged.Sender {
		err = fmt.Errorf("%w: %s is neither the preparer nor the sender", ErrInvalidCaller, caller)
		return OutboundHandoff{}, err
	}
	peer, err := e.registry.GetPeerTx(tx, staged.TargetChain)
	if err != nil {
		return OutboundHandoff{}, err
	}

	amount := staged.CustodyAmount
	if staged.InputKind == InputSwapExactIn {
		amount, err = swap.CheckedExecute(ctx, e.executor, swap.Request{
			ID:           swapID(staged.ID),
			InputAsset:   staged.SrcAsset,
			OutputAsset:  e.cfg.USDCAsset,
			AmountIn:     staged.CustodyAmount,
			MinAmountOut: staged.MinAmountOut,
			Instruction:  staged.InstructionData,
		})
		if err != nil {
			return OutboundHandoff{}, err
		}
		tx.AddRollbackCallback(func() {
			e.logger.Warnf("swap %s of staged outbound %s executed but not recorded, "+
				"initiating the transfer again reuses it", swapID(staged.ID), staged.ID)
		})
	}

	outputToken, err := messages.DecodeOutputToken(staged.EncodedOutputToken)
	if err != nil {
		return OutboundHandoff{}, err
	}
	payload, err := messages.Encode(messages.SwapLayerMessage{
		Recipient:   staged.Recipient,
		RedeemMode:  staged.RedeemMode,
		OutputToken: outputToken,
	})
	if err != nil {
		return OutboundHandoff{}, err
	}

	if _, err = tx.Exec(`DELETE FROM staged_outbound WHERE id = $1;`, id); err != nil {
		return OutboundHandoff{}, err
	}
	pending := OutboundHandoff{
		ID:          staged.ID,
		Sender:      staged.Sender,
		TargetChain: staged.TargetChain,
		Peer:        peer.Address,
		Amount:      amount,
		Payload:     payload,
		Status:      HandoffPending,
		CreatedAt:   uint64(e.now().Unix()),
	}
	if err = meddler.Insert(tx, "outbound_handoff", &pending); err != nil {
		return OutboundHandoff{}, err
	}
	if err = tx.Commit(); err != nil {
		return OutboundHandoff{}, err
	}

	e.logger.Debugf("staged outbound %s initiated, %d USDC owed to the bridge", id, amount)
	return pending, nil
}

// send hands pending over to the bridge and marks it as sent
func (e *Engine) send(ctx context.Context, pending OutboundHandoff) (bridge.Handoff, error) {
	sent, err := e.sender.Send(ctx, pending.bridgeHandoff())
	if err != nil {
		return bridge.Handoff{}, fmt.Errorf("%w: error sending %s to the bridge: %w", ErrHandoffPending, pending.ID, err)
	}

	// the bridge already has it, ctx is ignored from here on
	_, err = e.db.Exec(`
		UPDATE outbound_handoff SET status = $1, sequence = $2, digest = $3, sent_at = $4
		WHERE id = $5 AND status = $6;`,
		HandoffSent, strconv.FormatUint(sent.Sequence, 10), sent.Digest.Hex(), e.now().Unix(),
		pending.ID, HandoffPending,
	)
	if err != nil {
		// Start sends it again, the sender returns the same handoff
		e.logger.Errorf("error marking handoff %s as sent: %v", pending.ID, err)
	}

	e.logger.Infof("staged outbound %s handed over to the bridge with sequence %d, amount: %d",
		pending.ID, sent.Sequence, sent.Amount)
	return sent, nil
}

// ResendPendingHandoffs sends again, oldest first, the handoffs that didn't reach the bridge.
// It stops on the first failure and returns how many were sent.
func (e *Engine) ResendPendingHandoffs(ctx context.Context) (int, error) {
	var pending []*OutboundHandoff
	err := meddler.QueryAll(e.db, &pending,
		`SELECT * FROM outbound_handoff WHERE status = $1 ORDER BY created_at ASC, id ASC;`, HandoffPending)
	if err != nil {
		return 0, err
	}
	for i, h := range pending {
		if _, err := e.send(ctx, *h); err != nil {
			return i, err
		}
	}
	return len(pending), nil
}

// Start resends the pending handoffs every period until ctx is done
func (e *Engine) Start(ctx context.Context, period time.Duration) {
	if period <= 0 {
		e.logger.Warnf("pending handoffs won't be resent, invalid period %s", period)
		return
	}
	ticker := time.NewTicker(period)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			e.logger.Info("staging stopped")
			return
		case <-ticker.C:
			n, err := e.ResendPendingHandoffs(ctx)
			if err != nil {
				e.logger.Warnf("error resending pending handoffs: %v", err)
			}
			if n > 0 {
				e.logger.Infof("%d pending handoffs sent", n)
			}
		}
	}
}

// GetHandoff returns db.ErrNotFound if the order with that id hasn't been initiated
func (e *Engine) GetHandoff(ctx context.Context, id string) (OutboundHandoff, error) {
	var h OutboundHandoff
	err := meddler.QueryRow(e.db, &h, `SELECT * FROM outbound_handoff WHERE id = $1;`, id)
	if err != nil {
		return OutboundHandoff{}, db.ReturnErrNotFound(err)
	}
	return h, nil
}

func swapID(stagedID string) string {
	return "outbound-" + stagedID
}

// ReleaseStagedOutbound gives the custody back to the sender and removes the order.
// Releasing an unknown id succeeds without doing anything.
func (e *Engine) ReleaseStagedOutbound(ctx context.Context, caller messages.UniversalAddress, id string) error {
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

	staged, err := getStagedOutbound(tx, id)
	if errors.Is(err, db.ErrNotFound) {
		e.logger.Debugf("staged outbound %s not found, nothing to release", id)
		if err = tx.Rollback(); err != nil {
			return err
		}
		return nil
	}
	if err != nil {
		return err
	}
	if caller != staged.Sender {
		err = fmt.Errorf("%w: only the sender can release", ErrInvalidCaller)
		return err
	}
	if err = e.ledger.Credit(tx, staged.Sender, staged.SrcAsset, staged.CustodyAmount); err != nil {
		return err
	}
	if _, err = tx.Exec(`DELETE FROM staged_outbound WHERE id = $1;`, id); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	e.logger.Infof("staged outbound %s released, %d of %s returned to %s",
		id, staged.CustodyAmount, staged.SrcAsset, staged.Sender)
	return nil
}

// GetStagedOutbound returns db.ErrNotFound if there's no order with that id
func (e *Engine) GetStagedOutbound(ctx context.Context, id string) (StagedOutbound, error) {
	return getStagedOutbound(e.db, id)
}

// GetStagedOutboundsBySender returns the orders of sender, oldest first
func (e *Engine) GetStagedOutboundsBySender(
	ctx context.Context, sender messages.UniversalAddress,
) ([]StagedOutbound, error) {
	var staged []*StagedOutbound
	err := meddler.QueryAll(e.db, &staged,
		`SELECT * FROM staged_outbound WHERE sender = $1 ORDER BY created_at ASC, id ASC;`, sender.Hex())
	if err != nil {
		return nil, err
	}
	return db.SlicePtrsToSlice(staged).([]StagedOutbound), nil
}

func (e *Engine) setCustody(staged *StagedOutbound, input StagedInput) error {
	fee := staged.RedeemMode.RelayingFee
	switch input.Kind {
	case InputUsdc:
		if staged.SrcAsset != e.cfg.USDCAsset {
			return fmt.Errorf("%w: %s is not USDC", ErrInvalidSourceAsset, staged.SrcAsset)
		}
		if input.Amount == 0 {
			return fmt.Errorf("%w: zero amount", ErrInvalidAmount)
		}
		if input.Amount > math.MaxUint64-fee {
			return fmt.Errorf("%w: amount %d plus fee %d", ErrCustodyOverflow, input.Amount, fee)
		}
		staged.CustodyAmount = input.Amount + fee

	case InputSwapExactIn:
		if staged.SrcAsset == e.cfg.USDCAsset {
			return fmt.Errorf("%w: USDC can't be swapped into USDC", ErrInvalidSourceAsset)
		}
		instruction, err := swap.DecodeExactInInstruction(input.InstructionData)
		if err != nil {
			return err
		}
		if instruction.InAmount == 0 {
			return fmt.Errorf("%w: zero amount in", ErrInvalidAmount)
		}
		minAmountOut := instruction.MinAmountOut()
		switch {
		case staged.RedeemMode.Kind == messages.RedeemRelay && minAmountOut <= fee:
			return fmt.Errorf("%w: fee %d, min amount out %d", ErrRelayingFeeExceedsMinAmountOut, fee, minAmountOut)
		case minAmountOut == 0:
			return ErrZeroMinAmountOut
		}
		staged.CustodyAmount = instruction.InAmount
		staged.MinAmountOut = minAmountOut
		staged.InstructionData = input.InstructionData

	default:
		return fmt.Errorf("%w: unknown staged input %d", ErrInvalidAmount, input.Kind)
	}
	return nil
}

func redeemModeFor(
	peer registry.Peer, option RedeemOption, outputToken messages.OutputToken,
) (messages.RedeemMode, error) {
	switch option.Kind {
	case messages.RedeemDirect:
		return messages.DirectMode(), nil
	case messages.RedeemPayload:
		return messages.PayloadMode(option.Payload), nil
	case messages.RedeemRelay:
		fee, err := relayerfee.CalculateRelayerFee(peer.RelayParams, option.GasDropoff, outputToken)
		if err != nil {
			return messages.RedeemMode{}, err
		}
		if fee > option.MaxRelayerFee {
			return messages.RedeemMode{}, fmt.Errorf("%w: fee %d, max %d", ErrExceedsMaxRelayingFee, fee, option.MaxRelayerFee)
		}
		return messages.RelayMode(option.GasDropoff, fee), nil
	default:
		return messages.RedeemMode{}, fmt.Errorf("%w: unknown redeem mode %d", ErrInvalidRedeemOption, option.Kind)
	}
}

func getStagedOutbound(tx db.Querier, id string) (StagedOutbound, error) {
	var staged StagedOutbound
	err := meddler.QueryRow(tx, &staged, `SELECT * FROM staged_outbound WHERE id = $1;`, id)
	if err != nil {
		return StagedOutbound{}, db.ReturnErrNotFound(err)
	}
	return staged, nil
}
