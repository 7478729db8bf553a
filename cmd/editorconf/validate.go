package main

import (
	"context"
	"fmt"

	"github.com/openlms/editorconf/internal/identity"
	"github.com/openlms/editorconf/internal/settings/loader"
	"github.com/urfave/cli/v3"
)

var validateCmd = &cli.Command{
	Name:  "validate",
	Usage: "Validate a settings file",
	Action: func(ctx context.Context, cmd *cli.Command) error {
		if cmd.Args().Len() < 1 {
			return fmt.Errorf("settings file path required")
		}

		settingsPath := cmd.Args().Get(0)
		doc, err := loader.LoadDocument(settingsPath)
		if err != nil {
			return fmt.Errorf("failed to load settings: %w", err)
		}

		// Role assignments are not part of document validation, so check
		// them here too before declaring the file usable.
		if _, err := identity.New(doc.Contexts, doc.Users); err != nil {
			return fmt.Errorf("validation failed: %w", err)
		}

		fmt.Printf("Settings file %s is valid\n", settingsPath)
		fmt.Printf(
			"  %d contexts, %d users, %d languages\n",
			len(doc.Contexts), len(doc.Users), len(doc.Languages),
		)

		return nil
	},
}
