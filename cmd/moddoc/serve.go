package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"moddoc/internal/server"
)

func newServeCommand(logger *log.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Serve documentation generation over MCP on stdio",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return server.New(version, logger).Run(cmd.Context())
		},
	}
}
