package main

import (
	"context"

	"github.com/openlms/editorconf/cmd/editorconf/server"
	"github.com/urfave/cli/v3"
)

var serveCmd = &cli.Command{
	Name:  "serve",
	Usage: "Start the editor configuration server",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "settings",
			Usage:    "Path to the settings file (TOML or YAML)",
			Aliases:  []string{"s"},
			Required: true,
		},
		&cli.StringFlag{
			Name:    "listen",
			Usage:   "Address to bind the HTTP listener (host:port)",
			Aliases: []string{"l"},
			Value:   ":8420",
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		logger, err := setupLogging(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		settingsPath := cmd.String("settings")
		listenAddr := cmd.String("listen")

		if err := server.Run(ctx, logger, settingsPath, listenAddr); err != nil {
			return cli.Exit(err, 1)
		}
		return nil
	},
}
