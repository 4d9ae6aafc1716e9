// Package commands implements the fittrack command line.
package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"example.com/fittrack/internal/backend"
	"example.com/fittrack/internal/config"
	"example.com/fittrack/internal/domain"
	"example.com/fittrack/internal/logging"
	"example.com/fittrack/internal/store"
)

// Opener builds the service a command runs against and returns a release func.
type Opener func(ctx context.Context, backendName string) (*domain.Service, func() error, error)

// BackendOpener opens the configured medium. A non-empty backendName overrides cfg.Backend.
func BackendOpener(cfg config.Config, logger zerolog.Logger) Opener {
	return func(ctx context.Context, backendName string) (*domain.Service, func() error, error) {
		if backendName != "" {
			cfg.Backend = backendName
		}
		medium, closeMedium, err := backend.Open(ctx, cfg)
		if err != nil {
			return nil, nil, fmt.Errorf("open %s medium: %w", cfg.Backend, err)
		}
		opts, err := backend.StoreOptions(cfg, logging.Component(logger, "store"))
		if err != nil {
			_ = closeMedium()
			return nil, nil, err
		}
		records := store.New(medium, opts...)
		return domain.NewService(records.Runs, records.Workouts), closeMedium, nil
	}
}

// Execute runs the root command.
func Execute(ctx context.Context, version string, open Opener) error {
	return NewRootCommand(version, open).ExecuteContext(ctx)
}

type app struct {
	open        Opener
	backendName string
	service     *domain.Service
	release     func() error
}

// NewRootCommand assembles the command tree.
func NewRootCommand(version string, open Opener) *cobra.Command {
	a := &app{open: open}

	rootCmd := &cobra.Command{
		Use:           "fittrack",
		Short:         "Record and review runs and workouts",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			svc, release, err := a.open(cmd.Context(), a.backendName)
			if err != nil {
				return err
			}
			a.service, a.release = svc, release
			return nil
		},
		PersistentPostRunE: func(cmd *cobra.Command, args []string) error {
			if a.release == nil {
				return nil
			}
			return a.release()
		},
	}

	rootCmd.PersistentFlags().StringVar(&a.backendName, "backend", "", "store backend (memory, bolt, sqlite, redis, postgres)")

	rootCmd.AddCommand(newRunsCommand(a))
	rootCmd.AddCommand(newWorkoutsCommand(a))
	rootCmd.AddCommand(newTimelineCommand(a))
	rootCmd.AddCommand(newSummaryCommand(a))
	rootCmd.AddCommand(newClearAllCommand(a))

	return rootCmd
}

func printJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
