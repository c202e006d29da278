package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/config"
)

var activeCfg *config.Config

// NewRootCmd wires the praisonppt command tree. Configuration is loaded
// once before any subcommand runs.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "praisonppt",
		Short: "Generate PowerPoint decks from verse collections",
		Long: `praisonppt turns a JSON or Markdown description of text passages
into a PowerPoint deck: a title slide, a divider per section, and one
slide per verse, with long verses split at sentence boundaries and
highlight terms rendered bold in an accent color. Decks can optionally
be uploaded to Google Drive and recorded in a Postgres library.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.LoadConfig()
			if err != nil {
				return fmt.Errorf("loading configuration: %w", err)
			}
			activeCfg = cfg
			return nil
		},
	}

	cmd.AddCommand(newGenerateCmd())
	cmd.AddCommand(newUploadCmd())
	cmd.AddCommand(newInspectCmd())
	cmd.AddCommand(newExamplesCmd())
	cmd.AddCommand(newLibraryCmd())
	cmd.AddCommand(newWatchCmd())

	return cmd
}

func requireConfig() (*config.Config, error) {
	if activeCfg == nil {
		return nil, fmt.Errorf("configuration not loaded")
	}
	return activeCfg, nil
}
