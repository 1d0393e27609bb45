package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/nguyentantai21042004/notes-craft/internal/web"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the web UI",
	Example: `  notescraft serve
  NOTESCRAFT_ADDR=:9000 notescraft serve --config prod.yaml`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, cancel := context.WithCancel(cmd.Context())
		defer cancel()

		a, err := newApp(ctx, os.Stdout)
		if err != nil {
			return err
		}
		defer a.close()
		a.startWatcher(ctx)

		srv := web.New(a.cfg.Server.Addr, a.notes, a.catalog, a.log, a.cfg.Server.DownloadTTL)

		sigChan := make(chan os.Signal, 1)
		signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
		defer signal.Stop(sigChan)

		errChan := make(chan error, 1)
		go func() {
			errChan <- srv.Run(ctx)
		}()

		select {
		case <-sigChan:
			a.log.Info(ctx, "Shutdown signal received")
			cancel()
			err = <-errChan
		case err = <-errChan:
		}

		if err != nil {
			a.log.Error(ctx, "Web UI error: %v", err)
			return err
		}
		a.log.Info(ctx, "Notes Craft stopped")
		return nil
	},
}
