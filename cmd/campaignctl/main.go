// campaignctl is the terminal client for the election services API:
// browse the catalog, place and inspect orders, and walk the resource
// upload flow for paid orders.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/shiblymohammed/electionServices/pkg/client"
)

var (
	// Global flags
	cfgPath string
	baseURL string
	token   string
	verbose bool

	cfg    *Config
	logger *zap.Logger
)

var rootCmd = &cobra.Command{
	Use:   "campaignctl",
	Short: "Election campaign services client",
	Long: `campaignctl talks to the election services API.

It covers the customer flow end to end: browsing packages and campaign
services, placing orders, and uploading the campaign resources each paid
order item needs before processing can start.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		zcfg := zap.NewProductionConfig()
		zcfg.Level = zap.NewAtomicLevelAt(zapcore.WarnLevel)
		if verbose {
			zcfg.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
		}
		var err error
		logger, err = zcfg.Build()
		if err != nil {
			return fmt.Errorf("initialize logger: %w", err)
		}

		cfg, err = loadConfig(cfgPath)
		if err != nil {
			return err
		}
		if baseURL != "" {
			cfg.BaseURL = baseURL
		}
		if token != "" {
			cfg.Token = token
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func newClient() (*client.Client, error) {
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("no base URL configured; pass --base-url or set base_url in %s", configDisplayPath(cfgPath))
	}
	return client.New(cfg.BaseURL,
		client.WithAuthToken(cfg.Token),
		client.WithLogger(logger),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "", "config file (default ~/.campaignctl.yaml)")
	rootCmd.PersistentFlags().StringVar(&baseURL, "base-url", "", "API base URL (overrides config)")
	rootCmd.PersistentFlags().StringVar(&token, "token", "", "API token (overrides config)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}
