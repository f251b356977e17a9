package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/ersonp/social-core/internal/application/handlers"
	"github.com/ersonp/social-core/internal/domain/registry"
	"github.com/ersonp/social-core/internal/domain/services"
	"github.com/ersonp/social-core/internal/infrastructure/config"
	"github.com/ersonp/social-core/internal/infrastructure/logging"
)

// Deps holds high-level dependencies for commands.
// Every invocation builds a fresh registry from the input files.
type Deps struct {
	Config       *config.Config
	Logger       zerolog.Logger
	Registry     *registry.Registry
	QueryHandler *handlers.QueryHandler
	Load         LoadSummary
}

// LoadSummary reports what happened while filling the registry.
type LoadSummary struct {
	PeopleFile    string
	RelationsFile string
	People        *handlers.PeopleImportResult
	Relations     *handlers.RelationsImportResult
}

// withDeps loads config, fills the registry, then calls the provided function.
func withDeps(ctx context.Context, fn func(*Deps) error) error {
	deps, err := buildDeps(ctx, globals, os.Stderr)
	if err != nil {
		return err
	}
	return fn(deps)
}

func buildDeps(ctx context.Context, opts rootOptions, logOut io.Writer) (*Deps, error) {
	basePath := opts.configDir
	if basePath == "" {
		cwd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting current directory: %w", err)
		}
		basePath = cwd
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.peopleFile != "" {
		cfg.Data.PeopleFile = opts.peopleFile
	}
	if opts.relationsFile != "" {
		cfg.Data.RelationsFile = opts.relationsFile
	}
	if cfg.Data.PeopleFile == "" {
		return nil, errors.New("no people file configured (use --people or data.people_file)")
	}

	logger, err := logging.New(cfg.Log, logOut)
	if err != nil {
		return nil, err
	}

	reg := registry.New()
	importHandler := handlers.NewImportHandler(services.NewIngestService(reg, logger), cfg.Data.DateLayouts)

	summary := LoadSummary{PeopleFile: cfg.Data.Resolve(cfg.Data.PeopleFile)}
	summary.People, err = importHandler.HandlePeople(ctx, summary.PeopleFile, handlers.ImportOptions{})
	if err != nil {
		return nil, fmt.Errorf("loading people: %w", err)
	}
	logImportErrors(logger, summary.PeopleFile, summary.People.Errors)

	if cfg.Data.RelationsFile != "" {
		summary.RelationsFile = cfg.Data.Resolve(cfg.Data.RelationsFile)
		summary.Relations, err = importHandler.HandleRelations(ctx, summary.RelationsFile, handlers.ImportOptions{})
		if err != nil {
			return nil, fmt.Errorf("loading relations: %w", err)
		}
		logImportErrors(logger, summary.RelationsFile, summary.Relations.Errors)
	}

	return &Deps{
		Config:       cfg,
		Logger:       logger,
		Registry:     reg,
		QueryHandler: handlers.NewQueryHandler(services.NewQueryService(reg, logger)),
		Load:         summary,
	}, nil
}

func logImportErrors(logger zerolog.Logger, file string, errs []handlers.ImportError) {
	for _, e := range errs {
		logger.Warn().Str("file", file).Int("line", e.Line).Str("field", e.Field).Msg(e.Message)
	}
}
