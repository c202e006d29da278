package main

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/deck"
	"github.com/MervinPraison/PraisonAIPPT/internal/gdrive"
	"github.com/MervinPraison/PraisonAIPPT/internal/verses"
)

func newGenerateCmd() *cobra.Command {
	var (
		versesFile  string
		customTitle string
		output      string
		maxChars    int
		upload      bool
		folderID    string
		folderName  string
		share       bool
	)

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a PowerPoint deck from a verses file",
		Example: `  praisonppt generate
  praisonppt generate -v my_verses.json
  praisonppt generate -v outline.md -t "Why Delay?" -o promises.pptx
  praisonppt generate -v verses.json --upload --folder-name Presentations --share`,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
			}

			pres, err := loadVerseSource(versesFile)
			if err != nil {
				return err
			}

			if maxChars == 0 {
				maxChars = cfg.Deck.MaxChars
			}
			built := deck.Build(pres, deck.Options{
				CustomTitle:    customTitle,
				MaxChars:       maxChars,
				Author:         cfg.Application.Author,
				HighlightColor: cfg.Deck.HighlightColor,
				BodyColor:      cfg.Deck.BodyColor,
				ReferenceColor: cfg.Deck.ReferenceColor,
				SectionColor:   cfg.Deck.SectionColor,
			})

			outPath := deck.OutputName(pres, customTitle, output)
			if output == "" && cfg.Application.Storage.Output != "" {
				outPath = filepath.Join(cfg.Application.Storage.Output, outPath)
			}

			if err := built.Save(outPath); err != nil {
				return err
			}
			fmt.Printf("PowerPoint presentation saved as: %s (%d slides)\n", outPath, built.SlideCount())

			if !upload {
				return nil
			}

			ctx := context.Background()
			uploader, err := gdrive.NewUploader(ctx, cfg.Drive.CredentialsFile)
			if err != nil {
				return err
			}
			if folderID == "" {
				folderID = cfg.Drive.FolderID
			}
			if folderName == "" {
				folderName = cfg.Drive.FolderName
			}
			result, err := uploadFile(ctx, uploader, outPath, folderID, folderName, "", share || cfg.Drive.Share)
			if err != nil {
				return err
			}
			fmt.Printf("Uploaded to Google Drive: %s\n", result.WebViewLink)
			return nil
		},
	}

	cmd.Flags().StringVarP(&versesFile, "verses", "v", "verses.json", "Input JSON or Markdown file containing verses")
	cmd.Flags().StringVarP(&customTitle, "title", "t", "", "Custom title (overrides the file title, skips section slides)")
	cmd.Flags().StringVarP(&output, "output", "o", "", "Output file name (default: derived from the title)")
	cmd.Flags().IntVar(&maxChars, "max-chars", 0, "Maximum characters per verse slide (default from config)")
	cmd.Flags().BoolVar(&upload, "upload", false, "Upload the deck to Google Drive after generating")
	cmd.Flags().StringVar(&folderID, "folder-id", "", "Google Drive folder id for the upload")
	cmd.Flags().StringVar(&folderName, "folder-name", "", "Google Drive folder name, created when missing")
	cmd.Flags().BoolVar(&share, "share", false, "Make the uploaded file readable by anyone with the link")

	return cmd
}

// loadVerseSource picks the loader by extension: .md is a Markdown
// outline, everything else is verses JSON.
func loadVerseSource(path string) (*verses.Presentation, error) {
	if strings.EqualFold(filepath.Ext(path), ".md") {
		return verses.LoadMarkdown(path)
	}
	return verses.LoadFile(path)
}
