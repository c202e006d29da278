package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MervinPraison/PraisonAIPPT/internal/gdrive"
)

func newUploadCmd() *cobra.Command {
	var (
		folderID   string
		folderName string
		name       string
		share      bool
	)

	cmd := &cobra.Command{
		Use:   "upload <file>",
		Short: "Upload a file to Google Drive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := requireConfig()
			if err != nil {
				return err
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

			result, err := uploadFile(ctx, uploader, args[0], folderID, folderName, name, share || cfg.Drive.Share)
			if err != nil {
				return err
			}

			fmt.Printf("Uploaded: %s\n", result.Name)
			fmt.Printf("View link: %s\n", result.WebViewLink)
			if result.WebContentLink != "" {
				fmt.Printf("Download link: %s\n", result.WebContentLink)
			}
			return nil
		},
	}

	cmd.Flags().StringVar(&folderID, "folder-id", "", "Google Drive folder id")
	cmd.Flags().StringVar(&folderName, "folder-name", "", "Google Drive folder name, created when missing")
	cmd.Flags().StringVar(&name, "name", "", "Name for the uploaded file (default: local file name)")
	cmd.Flags().BoolVar(&share, "share", false, "Make the file readable by anyone with the link")

	return cmd
}

// uploadFile resolves the target folder (id wins over name) and uploads,
// optionally sharing the result.
func uploadFile(ctx context.Context, uploader *gdrive.Uploader, path, folderID, folderName, name string, share bool) (*gdrive.Result, error) {
	if folderID == "" && folderName != "" {
		id, err := uploader.EnsureFolder(ctx, folderName)
		if err != nil {
			return nil, err
		}
		folderID = id
	}

	result, err := uploader.Upload(ctx, path, folderID, name)
	if err != nil {
		return nil, err
	}

	if share {
		if err := uploader.Share(ctx, result.ID); err != nil {
			return nil, err
		}
	}
	return result, nil
}
