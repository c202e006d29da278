package main

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/deck"
	"github.com/MervinPraison/PraisonAIPPT/internal/verses"
)

func newExamplesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "examples",
		Short: "Work with the embedded example decks",
	}

	cmd.AddCommand(&cobra.Command{
		Use:   "list",
		Short: "List the embedded examples",
		RunE: func(cmd *cobra.Command, _ []string) error {
			for _, name := range verses.Examples() {
				fmt.Println(name)
			}
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "show <name>",
		Short: "Print an example's JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := verses.Example(args[0])
			if err != nil {
				return err
			}
			fmt.Print(string(data))
			return nil
		},
	})

	cmd.AddCommand(&cobra.Command{
		Use:   "render <name>",
		Short: "Generate a deck from an embedded example",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pres, err := verses.LoadExample(args[0])
			if err != nil {
				return err
			}

			built := deck.Build(pres, deck.Options{
				MaxChars:       cfg.Deck.MaxChars,
				Author:         cfg.Application.Author,
				HighlightColor: cfg.Deck.HighlightColor,
				BodyColor:      cfg.Deck.BodyColor,
				ReferenceColor: cfg.Deck.ReferenceColor,
				SectionColor:   cfg.Deck.SectionColor,
			})

			outPath := deck.OutputName(pres, "", "")
			if cfg.Application.Storage.Output != "" {
				outPath = filepath.Join(cfg.Application.Storage.Output, outPath)
			}
			if err := built.Save(outPath); err != nil {
				return err
			}
			fmt.Printf("PowerPoint presentation saved as: %s (%d slides)\n", outPath, built.SlideCount())
			return nil
		},
	})

	return cmd
}
