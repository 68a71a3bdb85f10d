package main

import (
	"github.com/spf13/cobra"

	"github.com/operatorhq/operator/internal/server"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the MCP server on stdio",
	Long: `Run the MCP server on the stdio transport, exposing Dockerfile
generation and the language registry as tools.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := loadConfig()
		srv, err := server.New(newEngine(cfg), cfg)
		if err != nil {
			return err
		}
		return srv.Run(cmd.Context())
	},
}
