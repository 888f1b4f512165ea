package registry

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/0xPolygon/swaplayer/registry/migrations"
	"github.com/russross/meddler"
)

const (
	errWhileRollbackFormat = "error while rolling back tx: %w"

	custodianID = 1
)

// Storage is the read side of the registry used by the settlement engines
type Storage interface {
	GetPeer(ctx context.Context, chain messages.ChainID) (Peer, error)
	GetPeers(ctx context.Context) ([]Peer, error)
	GetCustodian(ctx context.Context) (Custodian, error)
	GetPeerTx(tx db.Querier, chain messages.ChainID) (Peer, error)
	GetCustodianTx(tx db.Querier) (Custodian, error)
}

var _ Storage = (*Registry)(nil)

// Registry stores the peers of every remote chain and the custodian roles
type Registry struct {
	logger     *log.Logger
	db         *sql.DB
	localChain messages.ChainID
	now        func() time.Time
}

// New runs the registry migrations on database and returns a Registry using it
func New(logger *log.Logger, database *sql.DB, localChain messages.ChainID) (*Registry, error) {
	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}
	return &Registry{
		logger:     logger,
		db:         database,
		localChain: localChain,
		now:        time.Now,
	}, nil
}

// LocalChain returns the chain this registry belongs to
func (r *Registry) LocalChain() messages.ChainID {
	return r.localChain
}

// Initialize sets the custodian roles. It can only be called once.
func (r *Registry) Initialize(
	ctx context.Context, owner, ownerAssistant, feeRecipient, feeUpdater messages.UniversalAddress,
) error {
	if owner.IsZero() || ownerAssistant.IsZero() || feeRecipient.IsZero() || feeUpdater.IsZero() {
		return ErrInvalidCustodian
	}
	// meddler.Insert only takes zero primary keys, the custodian row is always id 1
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO custodian (id, owner, pending_owner, owner_assistant, fee_updater, fee_recipient)
		VALUES ($1, $2, $3, $4, $5, $6);`,
		custodianID, owner.Hex(), messages.UniversalAddress{}.Hex(), ownerAssistant.Hex(), feeUpdater.Hex(), feeRecipient.Hex(),
	)
	if err != nil {
		if db.IsUniqueConstraintErr(err) {
			return ErrAlreadyInitialized
		}
		return err
	}
	r.logger.Infof("registry initialized, owner: %s, assistant: %s, fee updater: %s, fee recipient: %s",
		owner, ownerAssistant, feeUpdater, feeRecipient)
	return nil
}

// AddPeer registers the swap layer deployment of chain
func (r *Registry) AddPeer(
	ctx context.Context,
	caller messages.UniversalAddress,
	chain messages.ChainID,
	address messages.UniversalAddress,
	params messages.RelayParams,
) error {
	tx, err := db.NewTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				r.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	custodian, err := r.GetCustodianTx(tx)
	if err != nil {
		return err
	}
	if !custodian.isOwnerOrAssistant(caller) {
		err = ErrOwnerOrAssistantOnly
		return err
	}
	if err = r.checkPeer(chain, address, params); err != nil {
		return err
	}

	params.LastUpdateTimestamp = uint64(r.now().Unix())
	peer := &Peer{Chain: chain, Address: address, RelayParams: params}
	if err = meddler.Insert(tx, "peer", peer); err != nil {
		if db.IsUniqueConstraintErr(err) {
			err = fmt.Errorf("%w: chain %d already registered", ErrInvalidPeer, chain)
		}
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	r.logger.Infof("peer added for chain %d: %s", chain, address)
	return nil
}

// UpdatePeer replaces the address and the relay params of an already registered peer
func (r *Registry) UpdatePeer(
	ctx context.Context,
	caller messages.UniversalAddress,
	chain messages.ChainID,
	address messages.UniversalAddress,
	params messages.RelayParams,
) error {
	tx, err := db.NewTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				r.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	custodian, err := r.GetCustodianTx(tx)
	if err != nil {
		return err
	}
	if !custodian.isOwner(caller) {
		err = ErrOwnerOnly
		return err
	}
	if err = r.checkPeer(chain, address, params); err != nil {
		return err
	}
	if _, err = r.GetPeerTx(tx, chain); err != nil {
		return err
	}

	params.LastUpdateTimestamp = uint64(r.now().Unix())
	if err = updatePeer(tx, Peer{Chain: chain, Address: address, RelayParams: params}); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	r.logger.Infof("peer updated for chain %d: %s", chain, address)
	return nil
}

// UpdateRelayParams replaces the relay params of the peer of chain, the new params are validated
// and stamped with the current time
func (r *Registry) UpdateRelayParams(
	ctx context.Context, caller messages.UniversalAddress, chain messages.ChainID, params messages.RelayParams,
) error {
	tx, err := db.NewTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				r.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	custodian, err := r.GetCustodianTx(tx)
	if err != nil {
		return err
	}
	if caller != custodian.FeeUpdater {
		err = ErrFeeUpdaterOnly
		return err
	}
	peer, err := r.GetPeerTx(tx, chain)
	if err != nil {
		return err
	}
	if err = ValidateRelayParams(params); err != nil {
		return err
	}

	params.LastUpdateTimestamp = uint64(r.now().Unix())
	peer.RelayParams = params
	if err = updatePeer(tx, peer); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	r.logger.Debugf("relay params updated for chain %d: %+v", chain, params)
	return nil
}

// SubmitOwnershipTransfer starts the handoff of the registry to newOwner. It only takes effect
// once newOwner confirms it.
func (r *Registry) SubmitOwnershipTransfer(
	ctx context.Context, caller, newOwner messages.UniversalAddress,
) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.isOwner(caller) {
			return ErrOwnerOnly
		}
		if newOwner.IsZero() || newOwner == c.Owner {
			return ErrInvalidNewOwner
		}
		c.PendingOwner = newOwner
		return nil
	})
}

// ConfirmOwnershipTransfer is called by the pending owner to take over the registry
func (r *Registry) ConfirmOwnershipTransfer(ctx context.Context, caller messages.UniversalAddress) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.HasPendingOwner() {
			return ErrNoPendingOwner
		}
		if caller != c.PendingOwner {
			return ErrNotPendingOwner
		}
		c.Owner = c.PendingOwner
		c.PendingOwner = messages.UniversalAddress{}
		return nil
	})
}

// CancelOwnershipTransfer clears the pending owner
func (r *Registry) CancelOwnershipTransfer(ctx context.Context, caller messages.UniversalAddress) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.isOwner(caller) {
			return ErrOwnerOnly
		}
		c.PendingOwner = messages.UniversalAddress{}
		return nil
	})
}

func (r *Registry) UpdateOwnerAssistant(
	ctx context.Context, caller, newAssistant messages.UniversalAddress,
) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.isOwner(caller) {
			return ErrOwnerOnly
		}
		if newAssistant.IsZero() {
			return ErrInvalidCustodian
		}
		c.OwnerAssistant = newAssistant
		return nil
	})
}

func (r *Registry) UpdateFeeRecipient(
	ctx context.Context, caller, newFeeRecipient messages.UniversalAddress,
) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.isOwnerOrAssistant(caller) {
			return ErrOwnerOrAssistantOnly
		}
		if newFeeRecipient.IsZero() {
			return ErrInvalidCustodian
		}
		c.FeeRecipient = newFeeRecipient
		return nil
	})
}

func (r *Registry) UpdateFeeUpdater(
	ctx context.Context, caller, newFeeUpdater messages.UniversalAddress,
) error {
	return r.updateCustodian(ctx, func(c *Custodian) error {
		if !c.isOwnerOrAssistant(caller) {
			return ErrOwnerOrAssistantOnly
		}
		if newFeeUpdater.IsZero() {
			return ErrInvalidCustodian
		}
		c.FeeUpdater = newFeeUpdater
		return nil
	})
}

// GetPeer returns the peer registered for chain
func (r *Registry) GetPeer(ctx context.Context, chain messages.ChainID) (Peer, error) {
	return r.GetPeerTx(r.db, chain)
}

// GetPeerTx is GetPeer running on tx
func (r *Registry) GetPeerTx(tx db.Querier, chain messages.ChainID) (Peer, error) {
	var peer Peer
	if err := meddler.QueryRow(tx, &peer, `SELECT * FROM peer WHERE chain = $1;`, chain); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Peer{}, fmt.Errorf("%w for chain %d", ErrNoRegisteredPeer, chain)
		}
		return Peer{}, err
	}
	return peer, nil
}

// GetPeers returns every registered peer sorted by chain
func (r *Registry) GetPeers(ctx context.Context) ([]Peer, error) {
	var peers []*Peer
	if err := meddler.QueryAll(r.db, &peers, `SELECT * FROM peer ORDER BY chain ASC;`); err != nil {
		return nil, err
	}
	return db.SlicePtrsToSlice(peers).([]Peer), nil
}

// GetCustodian returns the custodian roles
func (r *Registry) GetCustodian(ctx context.Context) (Custodian, error) {
	return r.GetCustodianTx(r.db)
}

// GetCustodianTx is GetCustodian running on tx
func (r *Registry) GetCustodianTx(tx db.Querier) (Custodian, error) {
	var custodian Custodian
	if err := meddler.QueryRow(tx, &custodian, `SELECT * FROM custodian WHERE id = $1;`, custodianID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Custodian{}, ErrNotInitialized
		}
		return Custodian{}, err
	}
	return custodian, nil
}

func (r *Registry) checkPeer(
	chain messages.ChainID, address messages.UniversalAddress, params messages.RelayParams,
) error {
	if chain == r.localChain {
		return fmt.Errorf("%w: %d is the local chain", ErrChainNotAllowed, chain)
	}
	if address.IsZero() {
		return fmt.Errorf("%w: zero address", ErrInvalidPeer)
	}
	return ValidateRelayParams(params)
}

func (r *Registry) updateCustodian(ctx context.Context, update func(c *Custodian) error) error {
	tx, err := db.NewTx(ctx, r.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				r.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	custodian, err := r.GetCustodianTx(tx)
	if err != nil {
		return err
	}
	if err = update(&custodian); err != nil {
		return err
	}
	if err = meddler.Update(tx, "custodian", &custodian); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}

	r.logger.Debugf("custodian updated: %+v", custodian)
	return nil
}

func updatePeer(tx db.Querier, peer Peer) error {
	params, err := json.Marshal(peer.RelayParams)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`UPDATE peer SET address = $1, relay_params = $2 WHERE chain = $3;`,
		peer.Address.Hex(), string(params), peer.Chain)
	return err
}
