package main

import (
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notes-craft/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Serve the note tools over MCP stdio",
	Long:  "Serve generate_notes and list_subjects as MCP tools on stdin/stdout. Logs are written to stderr.",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		// stdout carries the protocol.
		a, err := newApp(ctx, os.Stderr)
		if err != nil {
			return err
		}
		defer a.close()
		a.startWatcher(ctx)

		server := mcpserver.New(a.notes, a.catalog, a.log, version)
		return mcpserver.Run(ctx, server)
	},
}
