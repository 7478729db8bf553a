package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/openlms/editorconf/cmd/editorconf/server"
	"github.com/openlms/editorconf/internal/editor"
	"github.com/openlms/editorconf/internal/fancy"
	"github.com/openlms/editorconf/internal/settings/loader"
	"github.com/urfave/cli/v3"
)

var showCmd = &cli.Command{
	Name:  "show",
	Usage: "Print the configuration a user would receive for a context",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:     "settings",
			Usage:    "Path to the settings file (TOML or YAML)",
			Aliases:  []string{"s"},
			Required: true,
		},
		&cli.StringFlag{
			Name:     "user",
			Usage:    "User identifier",
			Aliases:  []string{"u"},
			Required: true,
		},
		&cli.StringFlag{
			Name:  "context-type",
			Usage: "Context type (course, module, or system)",
			Value: "course",
		},
		&cli.IntFlag{
			Name:     "context-id",
			Usage:    "Context identifier",
			Required: true,
		},
	},
	Action: func(ctx context.Context, cmd *cli.Command) error {
		logger, err := setupLogging(cmd)
		if err != nil {
			return cli.Exit(err, 1)
		}

		doc, err := loader.LoadDocument(cmd.String("settings"))
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		agg, err := server.BuildAggregator(doc, logger)
		if err != nil {
			return fmt.Errorf("failed to build aggregator: %w", err)
		}

		resp, err := agg.GetConfiguration(
			ctx,
			editor.User{ID: cmd.String("user")},
			cmd.String("context-type"),
			int64(cmd.Int("context-id")),
		)
		if err != nil {
			slog.Debug("Configuration request failed", "code", editor.ErrorCode(err))
			return fmt.Errorf("failed to build configuration: %w", err)
		}

		fmt.Println(fancy.ConfigurationTree(resp))
		return nil
	},
}
