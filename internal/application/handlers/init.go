// Package handlers contains application use case handlers.
package handlers

import (
	"fmt"

	"github.com/ersonp/social-core/internal/infrastructure/config"
)

// InitOptions are values recorded in the new config file. Empty fields keep
// the defaults.
type InitOptions struct {
	PeopleFile    string
	RelationsFile string
}

// InitResult contains the result of initialization.
type InitResult struct {
	ConfigPath    string
	DataDir       string
	PeopleFile    string
	RelationsFile string
}

// HandleInit writes a default config file under basePath.
func HandleInit(basePath string, opts InitOptions) (*InitResult, error) {
	if config.Exists(basePath) {
		return nil, fmt.Errorf("socialnet already initialized in %s", basePath)
	}

	if err := config.WriteDefault(basePath); err != nil {
		return nil, fmt.Errorf("writing default config: %w", err)
	}

	cfg, err := config.Load(basePath)
	if err != nil {
		return nil, fmt.Errorf("loading config: %w", err)
	}

	if opts.PeopleFile != "" || opts.RelationsFile != "" {
		if opts.PeopleFile != "" {
			cfg.Data.PeopleFile = opts.PeopleFile
		}
		if opts.RelationsFile != "" {
			cfg.Data.RelationsFile = opts.RelationsFile
		}
		if err := config.Write(basePath, cfg); err != nil {
			return nil, fmt.Errorf("saving input files: %w", err)
		}
	}

	return &InitResult{
		ConfigPath:    config.ConfigFilePath(basePath),
		DataDir:       cfg.Data.Dir,
		PeopleFile:    cfg.Data.PeopleFile,
		RelationsFile: cfg.Data.RelationsFile,
	}, nil
}
