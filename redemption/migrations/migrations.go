package migrations

import (
	"database/sql"
	_ "embed"

	swaplayerCommon "github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/db"
	"github.com/0xPolygon/swaplayer/db/types"
	"github.com/0xPolygon/swaplayer/log"
)

//go:embed redemption0001.sql
var mig001 string

var Migrations = []types.Migration{
	{
		ID:  "redemption0001",
		SQL: mig001,
	},
}

func RunMigrations(logger *log.Logger, database *sql.DB) error {
	return db.RunMigrationsDB(logger, database, swaplayerCommon.REDEMPTION, Migrations)
}
