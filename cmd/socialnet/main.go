// Package main provides the entry point for the socialnet CLI application.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
)

var (
	version = "0.1.0-dev"
	globals rootOptions
)

// rootOptions holds the persistent flags shared by every command.
type rootOptions struct {
	configDir     string
	peopleFile    string
	relationsFile string
}

func main() {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	if err := run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	rootCmd := &cobra.Command{
		Use:           "socialnet",
		Short:         "Query an in-memory registry of people and friendships",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVar(&globals.configDir, "config-dir", "", "Directory containing .socialnet/config.yaml (default: current directory)")
	rootCmd.PersistentFlags().StringVarP(&globals.peopleFile, "people", "p", "", "People file (csv or json)")
	rootCmd.PersistentFlags().StringVarP(&globals.relationsFile, "relations", "r", "", "Relations file (csv or json)")

	rootCmd.AddCommand(
		newInitCmd(),
		newLoadCmd(),
		newPeopleCmd(),
		newFriendsCmd(),
		newCityCmd(),
		newBornCmd(),
		newResidentialCmd(),
		newMoviesCmd(),
		newExportCmd(),
	)

	return rootCmd.ExecuteContext(ctx)
}
