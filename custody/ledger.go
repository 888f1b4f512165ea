package custody

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math"

	"github.com/0xPolygon/swaplayer/custody/migrations"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/russross/meddler"
)

const errWhileRollbackFormat = "error while rolling back tx: %w"

// NativeAsset is the asset id of the gas token of the local chain
var NativeAsset = messages.UniversalAddress{}

var (
	ErrInsufficientBalance = errors.New("insufficient balance")
	ErrBalanceOverflow     = errors.New("balance overflow")
	ErrZeroAmount          = errors.New("amount must be greater than zero")
)

// Balance is the amount of asset held by account
type Balance struct {
	Account messages.UniversalAddress `meddler:"account,universaladdress" json:"account"`
	Asset   messages.UniversalAddress `meddler:"asset,universaladdress" json:"asset"`
	Amount  uint64                    `meddler:"amount,uint64" json:"amount"`
}

// Ledger keeps the local balances of accounts per asset. The settlement engines move funds
// through it inside their own transactions, so every write method takes the tx to run on.
type Ledger struct {
	logger *log.Logger
	db     *sql.DB
}

// New runs the custody migrations on database and returns a Ledger using it
func New(logger *log.Logger, database *sql.DB) (*Ledger, error) {
	if err := migrations.RunMigrations(logger, database); err != nil {
		return nil, err
	}
	return &Ledger{logger: logger, db: database}, nil
}

// BalanceOf returns the balance of account, zero if the account never held asset
func (l *Ledger) BalanceOf(tx db.Querier, account, asset messages.UniversalAddress) (uint64, error) {
	if tx == nil {
		tx = l.db
	}
	b := &Balance{}
	err := meddler.QueryRow(tx, b,
		`SELECT * FROM balance WHERE account = $1 AND asset = $2;`, account.Hex(), asset.Hex())
	if errors.Is(err, sql.ErrNoRows) {
		return 0, nil
	}
	if err != nil {
		return 0, err
	}
	return b.Amount, nil
}

// Credit adds amount to the balance of account
func (l *Ledger) Credit(tx db.Querier, account, asset messages.UniversalAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	current, err := l.BalanceOf(tx, account, asset)
	if err != nil {
		return err
	}
	if current > math.MaxUint64-amount {
		return fmt.Errorf("%w: crediting %d to %s", ErrBalanceOverflow, amount, account)
	}
	return setBalance(tx, Balance{Account: account, Asset: asset, Amount: current + amount})
}

// Debit subtracts amount from the balance of account
func (l *Ledger) Debit(tx db.Querier, account, asset messages.UniversalAddress, amount uint64) error {
	if amount == 0 {
		return nil
	}
	current, err := l.BalanceOf(tx, account, asset)
	if err != nil {
		return err
	}
	if current < amount {
		return fmt.Errorf("%w: %s holds %d of %s, %d needed", ErrInsufficientBalance, account, current, asset, amount)
	}
	return setBalance(tx, Balance{Account: account, Asset: asset, Amount: current - amount})
}

// Transfer moves amount of asset from one account to another
func (l *Ledger) Transfer(tx db.Querier, from, to, asset messages.UniversalAddress, amount uint64) error {
	if err := l.Debit(tx, from, asset, amount); err != nil {
		return err
	}
	return l.Credit(tx, to, asset, amount)
}

// Deposit credits account on its own transaction. It's the entrypoint of funds coming
// from outside of the settlement engines.
func (l *Ledger) Deposit(ctx context.Context, account, asset messages.UniversalAddress, amount uint64) error {
	if amount == 0 {
		return ErrZeroAmount
	}
	tx, err := db.NewTx(ctx, l.db)
	if err != nil {
		return err
	}
	defer func() {
		if err != nil {
			if errRllbck := tx.Rollback(); errRllbck != nil {
				l.logger.Errorf(errWhileRollbackFormat, errRllbck)
			}
		}
	}()

	if err = l.Credit(tx, account, asset, amount); err != nil {
		return err
	}
	if err = tx.Commit(); err != nil {
		return err
	}
	l.logger.Debugf("deposited %d of %s to %s", amount, asset, account)
	return nil
}

// GetBalances returns every balance held by account
func (l *Ledger) GetBalances(ctx context.Context, account messages.UniversalAddress) ([]Balance, error) {
	var balances []*Balance
	err := meddler.QueryAll(l.db, &balances,
		`SELECT * FROM balance WHERE account = $1 ORDER BY asset ASC;`, account.Hex())
	if err != nil {
		return nil, err
	}
	return db.SlicePtrsToSlice(balances).([]Balance), nil
}

func setBalance(tx db.Querier, b Balance) error {
	amount, err := db.Uint64Meddler{}.PreWrite(b.Amount)
	if err != nil {
		return err
	}
	_, err = tx.Exec(`
		INSERT INTO balance (account, asset, amount) VALUES ($1, $2, $3)
		ON CONFLICT (account, asset) DO UPDATE SET amount = excluded.amount;`,
		b.Account.Hex(), b.Asset.Hex(), amount)
	return err
}
