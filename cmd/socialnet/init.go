package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ersonp/social-core/internal/application/handlers"
)

func newInitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "init",
		Short: "Write a default configuration",
		Long:  "Creates a .socialnet directory with a default config.yaml. --people and --relations, when given, are saved in it.",
		Args:  cobra.NoArgs,
		RunE:  runInit,
	}
}

func runInit(cmd *cobra.Command, args []string) error {
	basePath := globals.configDir
	if basePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("getting current directory: %w", err)
		}
		basePath = cwd
	}

	result, err := handlers.HandleInit(basePath, handlers.InitOptions{
		PeopleFile:    globals.peopleFile,
		RelationsFile: globals.relationsFile,
	})
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Created %s\n", result.ConfigPath)
	fmt.Fprintf(out, "Data directory: %s\n", result.DataDir)
	if result.PeopleFile != "" {
		fmt.Fprintf(out, "People file: %s\n", result.PeopleFile)
	}
	if result.RelationsFile != "" {
		fmt.Fprintf(out, "Relations file: %s\n", result.RelationsFile)
	}
	return nil
}
