package main

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/operatorhq/operator/internal/engine"
)

var printOnly bool

var generateCmd = &cobra.Command{
	Use:   "generate [path]",
	Short: "Detect a project's language(s) and generate its Dockerfile",
	Long: `Detect a project's language(s) and generate its Dockerfile.

When several languages are detected, the output contains one stage per
language, in a fixed order.

Examples:
  operator generate               # inspect the current directory
  operator generate ./backend     # inspect a specific directory
  operator generate -p ./backend  # print the Dockerfile without writing it`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		return runGenerate(cmd.Context(), dir)
	},
}

func init() {
	generateCmd.Flags().BoolVarP(&printOnly, "print", "p", false, "print the Dockerfile to stdout instead of writing it")
}

func runGenerate(ctx context.Context, dir string) error {
	info, err := os.Stat(dir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("not a valid directory: %s", dir)
	}

	cfg := loadConfig()
	eng := newEngine(cfg)

	result, err := eng.Resolve(ctx, dir)
	if err != nil {
		return err
	}

	printReport(result)

	if printOnly {
		fmt.Print(result.Dockerfile)
		return nil
	}

	outPath, err := eng.WriteDockerfile(dir, result.Dockerfile)
	if err != nil {
		return err
	}
	fmt.Printf("Dockerfile written: %s\n", outPath)
	return nil
}

// printReport prints the per-language dependency report.
func printReport(result *engine.Result) {
	if len(result.Matches) == 1 {
		m := result.Matches[0]
		fmt.Printf("Detected language: %s\n", m.Language)
		if len(m.Dependencies) == 0 {
			fmt.Printf("No libraries detected (%s).\n\n", m.Language)
			return
		}
		fmt.Printf("\n=== Detected libraries (%s) ===\n", m.Language)
		for _, dep := range m.Dependencies {
			fmt.Printf("  - %s\n", dep)
		}
		fmt.Printf("===============================\n\n")
		return
	}

	fmt.Println("Multiple languages detected. Generating a stage for each.")
	for _, m := range result.Matches {
		fmt.Printf("\n[%s] detected libraries:\n", m.Language)
		if len(m.Dependencies) == 0 {
			fmt.Println("  (none)")
			continue
		}
		for _, dep := range m.Dependencies {
			fmt.Printf("  - %s\n", dep)
		}
	}
	fmt.Println()
}
