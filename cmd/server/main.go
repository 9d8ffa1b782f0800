/*
main.go - Application entry point

PURPOSE:
  Starts the employee portal server, or answers a single lookup from the
  command line. Handles configuration, dependency injection, and graceful
  shutdown.

COMMANDS:
  serve         Run the HTTP server (default when no command is given)
  lookup <id>   Print one employee's record as JSON and exit

STARTUP SEQUENCE (serve):
  1. Load configuration (defaults, YAML file, environment)
  2. Build the zap logger
  3. Create the fetch client and employee service
  4. Configure HTTP router
  5. Start server with graceful shutdown

FLAGS:
  --config   YAML config file (default: $PORTAL_CONFIG)

GRACEFUL SHUTDOWN:
  On SIGINT/SIGTERM:
  1. Stop accepting new connections
  2. Wait for active requests to complete (server.shutdown_timeout)
  3. Exit

EXAMPLES:
  # Run with defaults
  ./server

  # Run on a different port
  PORTAL_SERVER_PORT=3000 ./server serve

  # Check one employee against the live sheets
  ./server lookup 1234

SEE ALSO:
  - config/config.go: Configuration keys
  - api/server.go: Router configuration
  - employee/service.go: Lookup orchestration
*/
package main

import (
	"fmt"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/warp/employee-portal/config"
	"github.com/warp/employee-portal/employee"
	"github.com/warp/employee-portal/fetch"
	"github.com/warp/employee-portal/logging"
	"go.uber.org/zap"
)

// app carries what every command needs once flags are parsed.
type app struct {
	configPath string
	cfg        *config.Config
	logger     *zap.Logger
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:           "server",
		Short:         "Employee portal backed by published HR sheets",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(a.configPath)
			if err != nil {
				return err
			}
			logger, err := logging.New(cfg.Logging)
			if err != nil {
				return err
			}
			a.cfg = cfg
			a.logger = logger
			return nil
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			if a.logger != nil {
				_ = a.logger.Sync()
			}
		},
	}
	root.PersistentFlags().StringVar(&a.configPath, "config", os.Getenv("PORTAL_CONFIG"), "YAML config file")

	serve := newServeCmd(a)
	root.AddCommand(serve)
	root.AddCommand(newLookupCmd(a))

	// Bare invocation serves.
	root.RunE = serve.RunE

	return root
}

// newService wires the fetch client and the lookup service. reg may be
// nil, in which case no metrics are recorded.
func (a *app) newService(reg prometheus.Registerer) *employee.Service {
	opts := []fetch.Option{
		fetch.WithTimeout(a.cfg.Fetch.Timeout),
		fetch.WithLogger(a.logger),
	}
	if reg != nil {
		opts = append(opts, fetch.WithMetrics(fetch.NewMetrics(reg)))
	}
	client := fetch.NewClient(opts...)

	return employee.NewService(client, a.cfg.Sources.Employee(), a.logger, employee.Options{})
}
