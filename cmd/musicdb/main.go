// Command musicdb runs maintenance tasks against the catalog database.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"musiccatalog/internal/config"
	"musiccatalog/internal/database"
	"musiccatalog/internal/logging"
)

var rootCmd = &cobra.Command{
	Use:           "musicdb",
	Short:         "Maintenance tasks for the music catalog database.",
	SilenceUsage:  true,
	SilenceErrors: true,
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		stop()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// connect loads configuration, installs the logger and opens the database.
func connect(ctx context.Context) (*database.Provider, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	logger := logging.New(logging.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		File:   cfg.Logging.File,
	})
	logging.SetGlobalLogger(logger)

	db, err := database.Open(ctx, cfg.Database)
	if err != nil {
		return nil, logger, err
	}
	return db, logger, nil
}
