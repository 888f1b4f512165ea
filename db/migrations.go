package db

import (
	"database/sql"
	"fmt"
	"strings"

	"github.com/0xPolygon/swaplayer/db/types"
	"github.com/0xPolygon/swaplayer/log"
	migrate "github.com/rubenv/sql-migrate"
)

const (
	upDownSeparator      = "-- +migrate Up"
	migrationTablePrefix = "migrations_"
)

// RunMigrations opens the DB at dbPath and runs the pending migrations of component on it
func RunMigrations(dbPath, component string, migrations []types.Migration) error {
	db, err := NewSQLiteDB(dbPath)
	if err != nil {
		return fmt.Errorf("error creating DB %w", err)
	}
	defer db.Close()

	return RunMigrationsDB(log.GetDefaultLogger(), db, component, migrations)
}

// RunMigrationsDB will execute pending migrations if needed to keep the database
// updated with the latest changes. Every component tracks its applied migrations on
// its own table, so several of them can share db.
func RunMigrationsDB(logger *log.Logger, db *sql.DB, component string, migrations []types.Migration) error {
	migs := &migrate.MemoryMigrationSource{Migrations: []*migrate.Migration{}}
	for _, m := range migrations {
		splitted := strings.Split(m.SQL, upDownSeparator)
		if len(splitted) != 2 { //nolint:mnd
			return fmt.Errorf("migration %s: expected a single %q marker", m.ID, upDownSeparator)
		}
		migs.Migrations = append(migs.Migrations, &migrate.Migration{
			Id:   m.ID,
			Up:   []string{splitted[1]},
			Down: []string{splitted[0]},
		})
	}

	logger.Debugf("running migrations of %s:", component)
	for _, m := range migs.Migrations {
		logger.Debugf("%+v", m.Id)
	}
	ms := migrate.MigrationSet{TableName: migrationTablePrefix + component}
	nMigrations, err := ms.Exec(db, "sqlite3", migs, migrate.Up)
	if err != nil {
		return fmt.Errorf("error executing migrations of %s: %w", component, err)
	}

	logger.Infof("successfully ran %d migrations of %s", nMigrations, component)
	return nil
}
