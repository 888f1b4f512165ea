package db

import (
	"context"
	"math"
	"path"
	"testing"

	"github.com/0xPolygon/swaplayer/db/types"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/0xPolygon/swaplayer/messages"
	"github.com/ethereum/go-ethereum/common"
	"github.com/holiman/uint256"
	"github.com/russross/meddler"
	"github.com/stretchr/testify/require"
)

const testMigration = `
-- +migrate Down
DROP TABLE IF EXISTS sample;

-- +migrate Up
CREATE TABLE sample (
	id      INTEGER PRIMARY KEY,
	hash    VARCHAR NOT NULL UNIQUE,
	owner   VARCHAR NOT NULL,
	amount  TEXT NOT NULL,
	limit_  TEXT NOT NULL
);
`

type sample struct {
	ID     int64                    `meddler:"id,pk"`
	Hash   common.Hash              `meddler:"hash,hash"`
	Owner  messages.UniversalAddress `meddler:"owner,universaladdress"`
	Amount uint64                   `meddler:"amount,uint64"`
	Limit  *uint256.Int             `meddler:"limit_,uint256"`
}

func newTestDB(t *testing.T) string {
	t.Helper()
	dbPath := path.Join(t.TempDir(), "dbTest.sqlite")
	require.NoError(t, RunMigrations(dbPath, "sample", []types.Migration{{ID: "sample0001", SQL: testMigration}}))
	return dbPath
}

func TestMeddlersRoundTrip(t *testing.T) {
	database, err := NewSQLiteDB(newTestDB(t))
	require.NoError(t, err)

	limit := new(uint256.Int).Lsh(uint256.NewInt(1), 127) //nolint:mnd
	expected := &sample{
		Hash:   common.HexToHash("0xbeef"),
		Owner:  messages.BytesToUniversalAddress([]byte{1, 2, 3}),
		Amount: math.MaxUint64,
		Limit:  limit,
	}
	require.NoError(t, meddler.Insert(database, "sample", expected))
	require.Equal(t, int64(1), expected.ID)

	actual := &sample{}
	require.NoError(t, meddler.QueryRow(database, actual, `SELECT * FROM sample WHERE id = $1;`, 1))
	require.Equal(t, expected, actual)

	err = meddler.Insert(database, "sample", &sample{Hash: expected.Hash, Limit: uint256.NewInt(0)})
	require.Error(t, err)
	require.True(t, IsUniqueConstraintErr(err))
	require.False(t, IsUniqueConstraintErr(ErrNotFound))

	err = meddler.QueryRow(database, actual, `SELECT * FROM sample WHERE id = $1;`, 3)
	require.ErrorIs(t, ReturnErrNotFound(err), ErrNotFound)
}

func TestTxCallbacks(t *testing.T) {
	database, err := NewSQLiteDB(newTestDB(t))
	require.NoError(t, err)

	var committed, rolledBack bool
	tx, err := NewTx(context.Background(), database)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = true })
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, tx.Rollback())
	require.False(t, committed)
	require.True(t, rolledBack)

	committed, rolledBack = false, false
	tx, err = NewTx(context.Background(), database)
	require.NoError(t, err)
	tx.AddCommitCallback(func() { committed = true })
	tx.AddRollbackCallback(func() { rolledBack = true })
	require.NoError(t, tx.Commit())
	require.True(t, committed)
	require.False(t, rolledBack)
}

func TestRunMigrationsIsIdempotent(t *testing.T) {
	dbPath := newTestDB(t)
	database, err := NewSQLiteDB(dbPath)
	require.NoError(t, err)
	migs := []types.Migration{{ID: "sample0001", SQL: testMigration}}
	require.NoError(t, RunMigrationsDB(log.GetDefaultLogger(), database, "sample", migs))

	err = RunMigrationsDB(log.GetDefaultLogger(), database, "sample", []types.Migration{{ID: "broken", SQL: "CREATE TABLE x (id INTEGER);"}})
	require.Error(t, err)
}

func TestRunMigrationsSharedDB(t *testing.T) {
	database, err := NewSQLiteDB(newTestDB(t))
	require.NoError(t, err)

	other := []types.Migration{{ID: "other0001", SQL: `
-- +migrate Down
DROP TABLE IF EXISTS other;

-- +migrate Up
CREATE TABLE other (id INTEGER PRIMARY KEY);
`}}
	require.NoError(t, RunMigrationsDB(log.GetDefaultLogger(), database, "other", other))
	// running both sets again is a no op
	require.NoError(t, RunMigrationsDB(log.GetDefaultLogger(), database, "other", other))
	require.NoError(t, RunMigrationsDB(log.GetDefaultLogger(), database, "sample",
		[]types.Migration{{ID: "sample0001", SQL: testMigration}}))

	for _, table := range []string{"sample", "other", "migrations_sample", "migrations_other"} {
		var name string
		err = database.QueryRow(`SELECT name FROM sqlite_master WHERE type = 'table' AND name = $1;`, table).Scan(&name)
		require.NoError(t, err, table)
	}
}
