package main

import (
	"os"

	"github.com/urfave/cli/v2"

	"github.com/forum-dev/forum/shared/logger"
)

func main() {
	app := &cli.App{
		Name:  "forum-api",
		Usage: "Discussion forum API server and maintenance tools",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config_folder",
				Usage:   "path to folder with public.yaml and private.yaml",
				Value:   "backend/config",
				EnvVars: []string{"CONFIG_FOLDER"},
			},
		},
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			usersCommand(),
			tokenCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Log.Error("command failed", "error", err)
		os.Exit(1)
	}
}
