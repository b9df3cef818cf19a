package cmd

import (
	"github.com/mj1618/zommation/internal/server"
	"github.com/mj1618/zommation/internal/version"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start an MCP server exposing the document editing tools",
	Long: `Start a Model Context Protocol (MCP) server on stdio that exposes the document
editing and export operations as tools. Every tool call loads the document
file, applies the change and saves it, so the CLI and the server can be used
on the same file.

Examples:
  zommation serve
  zommation -f game.yaml serve`,
	Args: cobra.NoArgs,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	srv := server.New(server.Config{
		DocumentPath: documentPath(),
		Defaults:     editDefaults(),
		Version:      version.Version,
	})
	return srv.ServeStdio()
}
