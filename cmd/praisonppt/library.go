package main

import (
	"database/sql"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/library"
)

func newLibraryCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "library",
		Short: "Query the deck library (requires a configured database)",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List recorded decks, newest first",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openLibrary()
			if err != nil {
				return err
			}
			defer db.Close()

			decks, err := library.AllDecks(db)
			if err != nil {
				return err
			}
			if len(decks) == 0 {
				fmt.Println("No decks recorded.")
				return nil
			}
			for _, d := range decks {
				fmt.Printf("%s  %-30s  %3d slides  %s", d.CreatedAt.Format("2006-01-02 15:04"), d.Filename, d.SlideCount, d.OutputPath)
				if d.DriveLink != "" {
					fmt.Printf("  %s", d.DriveLink)
				}
				fmt.Println()
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "clear",
		Short: "Delete every recorded deck",
		RunE: func(cmd *cobra.Command, _ []string) error {
			db, err := openLibrary()
			if err != nil {
				return err
			}
			defer db.Close()
			return library.Clear(db)
		},
	})

	return cmd
}

func openLibrary() (*sql.DB, error) {
	cfg, err := requireConfig()
	if err != nil {
		return nil, err
	}
	if !cfg.Database.IsConfigured() {
		return nil, fmt.Errorf("no database configured (set DB_URL or PG_* variables)")
	}
	db, err := library.NewConnection(cfg.Database.GetConnectStr())
	if err != nil {
		return nil, err
	}
	if err := library.EnsureSchema(db); err != nil {
		db.Close()
		return nil, err
	}
	return db, nil
}
