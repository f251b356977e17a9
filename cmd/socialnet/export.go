package main

import (
	"context"
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/ersonp/social-core/internal/application/handlers"
	"github.com/ersonp/social-core/internal/infrastructure/config"
	"github.com/ersonp/social-core/internal/infrastructure/relationaldb/sqlite"
)

func newExportCmd() *cobra.Command {
	var dbPath string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write a SQLite snapshot of the registry",
		Long:  "Exports every person, their list fields, and every relation to a SQLite database. Existing rows are replaced.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return withDeps(cmd.Context(), func(d *Deps) error {
				return runExport(cmd.Context(), cmd.OutOrStdout(), d, dbPath)
			})
		},
	}

	cmd.Flags().StringVar(&dbPath, "db", "", "SQLite database path (default: sqlite.path from config)")

	return cmd
}

func runExport(ctx context.Context, w io.Writer, d *Deps, dbPath string) error {
	path := d.Config.SQLite.Path
	if dbPath != "" {
		path = dbPath
	}

	repo, err := sqlite.NewRepository(config.SQLiteConfig{Path: path})
	if err != nil {
		return fmt.Errorf("creating sqlite repository: %w", err)
	}
	defer repo.Close()

	info, err := handlers.NewExportHandler(d.Registry, repo).Handle(ctx)
	if err != nil {
		return err
	}

	d.Logger.Info().Str("snapshot_id", info.ID).Str("path", repo.Path()).Msg("snapshot exported")
	_, err = fmt.Fprintf(w, "Exported %d people and %d relations to %s\n", info.People, info.Relations, repo.Path())
	return err
}
