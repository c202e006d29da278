package main

import (
	"context"
	"database/sql"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/gdrive"
	"github.com/MervinPraison/PraisonAIPPT/internal/watcher"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch",
		Short: "Watch the stage directory and regenerate decks on change",
		Long: `watch observes the configured stage directory for verse sources
(JSON or Markdown) and regenerates the corresponding deck whenever one
is created or modified. When a database or Google Drive credentials are
configured, generated decks are recorded and uploaded as well.`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			var db *sql.DB
			if cfg.Database.IsConfigured() {
				db, err = openLibrary()
				if err != nil {
					return err
				}
				defer db.Close()
			}

			ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			var uploader *gdrive.Uploader
			if cfg.Drive.IsConfigured() {
				uploader, err = gdrive.NewUploader(ctx, cfg.Drive.CredentialsFile)
				if err != nil {
					return err
				}
			}

			fmt.Printf("Watching %s (Ctrl+C to stop)\n", cfg.Application.Storage.Stage)
			return watcher.New(cfg, db, uploader, nil).Start(ctx)
		},
	}
}
