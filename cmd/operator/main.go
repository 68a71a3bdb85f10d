package main

import (
	"fmt"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/operatorhq/operator/internal/config"
	"github.com/operatorhq/operator/internal/engine"
	"github.com/operatorhq/operator/internal/handlers"
)

var cfgPath string

var rootCmd = &cobra.Command{
	Use:   "operator",
	Short: "Generate Dockerfiles from project source",
	Long: `Operator inspects a project directory, detects which language(s) it is
written in, harvests referenced dependencies from the source, and generates
a Dockerfile tailored to each detected language.

Run without a subcommand for the interactive menu.`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runInteractive(cmd.Context())
	},
}

func main() {
	// Log to stderr, never stdout (serve mode uses stdout for JSON-RPC).
	log.SetOutput(os.Stderr)

	rootCmd.PersistentFlags().StringVar(&cfgPath, "config", "operator.yaml", "config file path")
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(languagesCmd)
	rootCmd.AddCommand(serveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// loadConfig reads the configured file, falling back to defaults when it is
// missing.
func loadConfig() *config.Config {
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "warning: %v, using defaults\n", err)
		return config.Default()
	}
	return cfg
}

// newEngine builds an engine over the full handler registry.
func newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(cfg, handlers.DefaultRegistry())
}
