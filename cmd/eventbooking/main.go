package main

import (
	"context"
	"fmt"
	"os"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/logger"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func main() {
	root := &cobra.Command{
		Use:           "eventbooking",
		Short:         "Users, events and bookings over HTTP",
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.AddCommand(
		newServeCommand(),
		newMigrateCommand(),
		newRoutesCommand(),
		newPeopleCommand(),
	)

	if err := root.ExecuteContext(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

// bootstrap loads the configuration and builds the root logger. The caller
// owns the returned LoggerService and must shut it down.
func bootstrap() (*config.Config, *logger.LoggerService, *zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, nil, err
	}

	loggerService, err := logger.NewLoggerService(cfg.Observability)
	if err != nil {
		return nil, nil, nil, fmt.Errorf("failed to initialize logger service: %w", err)
	}

	log := logger.NewLoggerWithService(cfg.Observability, loggerService)
	return cfg, loggerService, &log, nil
}
