package main

import (
	"context"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"
)

func main() {
	app := &cli.Command{
		Name:    "editorconf",
		Version: Version,
		Usage:   "Rich-text editor configuration service",
		Flags:   loggingFlags,
		Commands: []*cli.Command{
			serveCmd,
			validateCmd,
			showCmd,
			versionCmd,
		},
	}

	if err := app.Run(context.Background(), os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
