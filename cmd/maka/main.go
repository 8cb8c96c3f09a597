// Package main provides the maka CLI, a thin command-line front end for the
// Academic Knowledge API client library.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/scholartools/maka/academic"
	"github.com/scholartools/maka/internal/config"
	"github.com/scholartools/maka/internal/observability"
	"github.com/scholartools/maka/query"
	"github.com/scholartools/maka/transport"
)

// Version is set at build time via ldflags.
var Version = "dev"

var (
	configPath string
	logLevel   string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "maka",
	Short: "Query the Microsoft Academic Knowledge API",
	Long: `maka queries the Microsoft Academic Knowledge API.

Subcommands cover the four supported endpoints: interpret a natural
language query, evaluate a query expression, compute an attribute
histogram, and score the similarity of two strings.

The subscription key is read from MAKA_SUBSCRIPTION_KEY (a .env file in
the working directory is loaded if present). Results print as JSON keyed
by canonical field names.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.Version = Version
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "Path to a YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Override the configured log level")
}

// newQuerier loads configuration and wires the transport, logger, and
// querier for a command invocation.
func newQuerier() (*query.Querier, error) {
	// A missing .env file is fine; the environment may be set directly.
	_ = godotenv.Load()

	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}
	if logLevel != "" {
		cfg.Logging.Level = logLevel
	}

	logger := observability.NewLogger(observability.LoggingConfig{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})

	sender := transport.NewClient(transport.Config{
		SubscriptionKey: cfg.API.SubscriptionKey,
		Timeout:         cfg.API.Timeout,
		RateLimit:       cfg.API.RateLimit,
		BurstSize:       cfg.API.BurstSize,
		UserAgent:       cfg.API.UserAgent,
	})

	return query.NewQuerier(query.QuerierConfig{
		BaseURL: cfg.API.BaseURL,
		Logger:  logger,
	}, sender), nil
}

// printEntities writes the decoded entities as an indented JSON array keyed
// by canonical field names.
func printEntities(entities []*academic.Entity) error {
	out, err := json.MarshalIndent(entities, "", "  ")
	if err != nil {
		return fmt.Errorf("rendering entities: %w", err)
	}
	fmt.Println(string(out))
	return nil
}
