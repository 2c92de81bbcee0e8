package main

import (
	"context"
	"fmt"
	"time"

	"github.com/gts-project/gts/internal/cliconfig"
	"github.com/gts-project/gts/internal/docsource"
	"github.com/gts-project/gts/internal/gtslog"
	"github.com/gts-project/gts/internal/store"
)

// openStore loads CLI config, walks sourcesDir (the CLI config default
// when empty), and ingests every matching document into a fresh Store.
func openStore(sourcesDir string, verbose bool) (*store.Store, *cliconfig.Config, error) {
	cfg, err := cliconfig.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("loading config: %w", err)
	}
	if sourcesDir == "" {
		sourcesDir = cfg.SourcesDir
	}

	logger := gtslog.New(verbose)
	defer func() { _ = logger.Sync() }()

	src, err := docsource.New(docsource.DefaultConfig(sourcesDir))
	if err != nil {
		return nil, nil, fmt.Errorf("scanning %s: %w", sourcesDir, err)
	}

	st := store.New(cfg.StoreConfig())
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	report, err := st.Ingest(ctx, src)
	if err != nil {
		return nil, nil, fmt.Errorf("ingest failed: %w", err)
	}
	for _, ingestErr := range report.Errors {
		logger.Warn(ingestErr.Error())
	}
	return st, cfg, nil
}
