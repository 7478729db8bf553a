package main

import (
	"fmt"
	"log/slog"

	"github.com/openlms/editorconf/internal/logging"
	"github.com/openlms/editorconf/internal/logging/writers"
	"github.com/urfave/cli/v3"
)

var loggingFlags = []cli.Flag{
	&cli.StringFlag{
		Name:  "log-level",
		Usage: "Log level (trace, debug, info, warn, error)",
		Value: "info",
	},
	&cli.StringFlag{
		Name:  "log-format",
		Usage: "Log format (text or json)",
		Value: "text",
	},
	&cli.StringFlag{
		Name:  "log-file",
		Usage: "Log destination (stdout, stderr, or a file path)",
		Value: "stderr",
	},
}

// setupLogging configures the default slog logger from the root command flags.
func setupLogging(cmd *cli.Command) (*slog.Logger, error) {
	root := cmd.Root()

	writer, err := writers.CreateWriter(root.String("log-file"))
	if err != nil {
		return nil, fmt.Errorf("failed to create log writer: %w", err)
	}

	handler := logging.SetupHandler(root.String("log-format"), root.String("log-level"), writer)
	logger := slog.New(handler)
	slog.SetDefault(logger)
	return logger, nil
}
