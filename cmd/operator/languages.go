package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/operatorhq/operator/internal/langlist"
)

var languagesCmd = &cobra.Command{
	Use:   "languages",
	Short: "Manage the registered language names",
}

var languagesListCmd = &cobra.Command{
	Use:   "list",
	Short: "List the registered language names",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := langlist.New(loadConfig().Langlist.Path)
		if err := langs.Init(); err != nil {
			return err
		}
		names, err := langs.Names()
		if err != nil {
			return err
		}
		for _, name := range names {
			fmt.Println(name)
		}
		return nil
	},
}

var languagesAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Register a new language name",
	Long: `Register a new language name in the language list file.

Registration is informational: detection stays hard-coded per handler.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		langs := langlist.New(loadConfig().Langlist.Path)
		if err := langs.Init(); err != nil {
			return err
		}
		if err := langs.Add(args[0]); err != nil {
			return err
		}
		fmt.Printf("Added language: %s\n", args[0])
		return nil
	},
}

func init() {
	languagesCmd.AddCommand(languagesListCmd)
	languagesCmd.AddCommand(languagesAddCmd)
}
