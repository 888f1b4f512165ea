package main

import (
	"os"

	"github.com/0xPolygon/swaplayer"
	"github.com/0xPolygon/swaplayer/common"
	"github.com/0xPolygon/swaplayer/config"
	"github.com/0xPolygon/swaplayer/log"
	"github.com/urfave/cli/v2"
)

const appName = "swaplayer"

var (
	configFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s)",
		Required: true,
	}
	optionalConfigFileFlag = cli.StringSliceFlag{
		Name:     config.FlagCfg,
		Aliases:  []string{"c"},
		Usage:    "Configuration file(s), the defaults are printed if none is given",
		Required: false,
	}
	componentsFlag = cli.StringSliceFlag{
		Name:     config.FlagComponents,
		Aliases:  []string{"co"},
		Usage:    "List of components to run",
		Required: false,
		Value:    cli.NewStringSlice(common.RPC, common.RELAYER),
	}
	saveConfigFlag = cli.StringFlag{
		Name:     config.FlagSaveConfigPath,
		Aliases:  []string{"s"},
		Usage:    "Save final configuration into to the indicated path (name: swaplayer_config.toml)",
		Required: false,
	}
)

func main() {
	app := cli.NewApp()
	app.Name = appName
	app.Version = swaplayer.Version
	app.Commands = []*cli.Command{
		{
			Name:    "version",
			Aliases: []string{},
			Usage:   "Application version and build",
			Action:  versionCmd,
		},
		{
			Name:    "run",
			Aliases: []string{},
			Usage:   "Run the swap layer settlement node",
			Action:  start,
			Flags:   []cli.Flag{&configFileFlag, &componentsFlag, &saveConfigFlag},
		},
		{
			Name:    "config",
			Aliases: []string{},
			Usage:   "Print the effective configuration",
			Action:  configCmd,
			Flags:   []cli.Flag{&optionalConfigFileFlag},
		},
	}

	err := app.Run(os.Args)
	if err != nil {
		log.Fatal(err)
		os.Exit(1)
	}
}
