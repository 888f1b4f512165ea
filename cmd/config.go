package main

import (
	"os"

	"github.com/0xPolygon/swaplayer/config"
	"github.com/urfave/cli/v2"
)

// configCmd renders the configuration resulting of merging the defaults with the given files
func configCmd(cliCtx *cli.Context) error {
	c, err := config.Load(cliCtx)
	if err != nil {
		return err
	}
	rendered, err := config.SaveConfigToString(*c)
	if err != nil {
		return err
	}

	_, err = os.Stdout.WriteString(rendered)

	return err
}
