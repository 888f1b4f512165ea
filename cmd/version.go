package main

import (
	"os"

	"github.com/0xPolygon/swaplayer"
	"github.com/urfave/cli/v2"
)

func versionCmd(*cli.Context) error {
	swaplayer.PrintVersion(os.Stdout)
	return nil
}
