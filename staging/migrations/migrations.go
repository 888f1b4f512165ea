package migrations

import (
	"database/sql"
	_ "embed"

	swaplayerCommon "github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/db/types"
	"github.com/0xPolygon/swaplayer/log"
)

//go:embed staging0001.sql
var mig001 string

//go:embed staging0002.sql
var mig002 string

var Migrations = []types.Migration{
	{
		ID:  "staging0001",
		SQL: mig001,
	},
	{
		ID:  "staging0002",
		SQL: mig002,
	},
}

func RunMigrations(logger *log.Logger, database *sql.DB) error {
	return db.RunMigrationsDB(logger, database, swaplayerCommon.STAGING, Migrations)
}
