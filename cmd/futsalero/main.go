package main

import (
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/d60-Lab/futsalero/pkg/logger"
)

func main() {
	app := newApp()
	if err := app.Run(os.Args); err != nil {
		logger.Error("futsalero exited", zap.Error(err))
		logger.Sync()
		os.Exit(1)
	}
}

func newApp() *cli.App {
	app := cli.NewApp()
	app.Name = "futsalero"
	app.Usage = "futsal social league backend"
	app.Action = cli.ShowAppHelp
	app.Flags = []cli.Flag{
		&cli.StringFlag{
			Name:    "config",
			Aliases: []string{"c"},
			Usage:   "path to config.yaml (env vars still override)",
			EnvVars: []string{"FUTSALERO_CONFIG"},
		},
	}
	app.Commands = []*cli.Command{
		{
			Action:      runServe,
			Name:        "serve",
			Usage:       "Start the HTTP api",
			Category:    "Api",
			Description: `Serves the public api until SIGINT/SIGTERM. Run migrate first on a fresh database.`,
		},
		{
			Action:      runMigrate,
			Name:        "migrate",
			Usage:       "Create or update tables",
			Category:    "Database",
			Description: `Runs schema migration and exits.`,
		},
	}
	return app
}
