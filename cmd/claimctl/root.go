package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"claimflow/internal/config"
	"claimflow/internal/domain"
	"claimflow/internal/logging"
)

type rootOptions struct {
	logLevel string
}

func newRootCmd() *cobra.Command {
	opts := &rootOptions{}
	cmd := &cobra.Command{
		Use:           "claimctl",
		Short:         "Process insurance claim documents from the command line",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.PersistentFlags().StringVar(&opts.logLevel, "log-level", "", "log level (debug, info, warn, error); defaults to CLAIMFLOW_LOG_LEVEL")

	cmd.AddCommand(newProcessCmd(opts), newClassifyCmd(opts))
	return cmd
}

// setup loads configuration and builds a stderr logger for a command run.
func (o *rootOptions) setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}
	if o.logLevel != "" {
		cfg.Log.Level = o.logLevel
	}
	return cfg, logging.New(cfg.Log, os.Stderr), nil
}

// readFiles loads each path as an InputFile named by its base name.
func readFiles(ctx context.Context, paths []string) ([]domain.InputFile, error) {
	files := make([]domain.InputFile, 0, len(paths))
	for _, p := range paths {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		content, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		files = append(files, domain.InputFile{Filename: filepath.Base(p), Content: content})
	}
	return files, nil
}
