package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/gts-project/gts/internal/cliconfig"
	"github.com/gts-project/gts/internal/docsource"
	"github.com/gts-project/gts/internal/gtslog"
)

var watchSourcesFlag string

var watchCmd = &cobra.Command{
	Use:   "watch",
	Short: "Watch the source tree and re-ingest on change",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := cliconfig.Load()
		if err != nil {
			return err
		}
		sourcesDir := watchSourcesFlag
		if sourcesDir == "" {
			sourcesDir = cfg.SourcesDir
		}

		logger := gtslog.New(verboseFlag)
		defer func() { _ = logger.Sync() }()

		debounce := time.Duration(cfg.Watch.DebounceMS) * time.Millisecond
		w, err := docsource.NewWatcher(sourcesDir, debounce, cfg.Watch.ExcludeDirs)
		if err != nil {
			return err
		}

		ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
		defer stop()

		if err := w.Start(ctx); err != nil {
			return err
		}
		defer func() { _ = w.Stop() }()

		fmt.Printf("watching %s for changes (ctrl-c to stop)\n", sourcesDir)
		for {
			select {
			case <-ctx.Done():
				return nil
			case ev, ok := <-w.Events():
				if !ok {
					return nil
				}
				logger.Info("change detected", zap.String("path", ev.Path))
				if _, _, err := openStore(sourcesDir, verboseFlag); err != nil {
					logger.Warn(err.Error())
				}
			}
		}
	},
}

func init() {
	watchCmd.Flags().StringVar(&watchSourcesFlag, "sources", "", "source directory (overrides config)")
}
