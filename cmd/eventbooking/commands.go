package main

import (
	"fmt"
	"sort"

	"github.com/deppfellow/go-eventbooking/internal/config"
	"github.com/deppfellow/go-eventbooking/internal/database"
	"github.com/deppfellow/go-eventbooking/internal/handler"
	"github.com/deppfellow/go-eventbooking/internal/lib/utils"
	"github.com/deppfellow/go-eventbooking/internal/people"
	"github.com/deppfellow/go-eventbooking/internal/repository"
	"github.com/deppfellow/go-eventbooking/internal/router"
	"github.com/deppfellow/go-eventbooking/internal/server"
	"github.com/deppfellow/go-eventbooking/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

func newMigrateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "migrate",
		Short: "Apply pending PostgreSQL migrations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, loggerService, log, err := bootstrap()
			if err != nil {
				return err
			}
			defer loggerService.Shutdown()

			if !cfg.UsesPostgres() {
				return fmt.Errorf("store.driver is %q, migrations need %q", cfg.Store.Driver, config.StorePostgres)
			}

			return database.Migrate(cmd.Context(), log, cfg)
		},
	}
}

// newRoutesCommand prints the registered routes. It builds the router over
// the memory store so it needs no running dependencies.
func newRoutesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "routes",
		Short: "Print every HTTP route as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg := config.DefaultConfig()
			log := zerolog.Nop()
			srv := &server.Server{Config: cfg, Logger: &log}

			services := service.NewServices(srv, repository.NewMemoryRepositories(false))
			e := router.NewRouter(srv, handler.NewHandlers(srv, services))

			routes := e.Routes()
			sort.Slice(routes, func(i, j int) bool {
				if routes[i].Path != routes[j].Path {
					return routes[i].Path < routes[j].Path
				}
				return routes[i].Method < routes[j].Method
			})

			out := make([]*echo.Route, 0, len(routes))
			for _, r := range routes {
				// Internal not-found handlers, not API routes.
				if r.Method == echo.RouteNotFound {
					continue
				}
				out = append(out, r)
			}

			return utils.PrintJSON(cmd.OutOrStdout(), out)
		},
	}
}

func newPeopleCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "people",
		Short: "Print the student and instructor demo",
		Run: func(cmd *cobra.Command, _ []string) {
			people.Demo(people.NewConsolePrinter(cmd.OutOrStdout()))
		},
	}
}
