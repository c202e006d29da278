// Package gdrive uploads generated decks to Google Drive using a service
// account. The client is constructed explicitly and passed around; there
// is no package-level singleton.
package gdrive

import (
	"context"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

const folderMIMEType = "application/vnd.google-apps.folder"

// Uploader wraps an authenticated Drive service.
type Uploader struct {
	svc *drive.Service
}

// Result describes an uploaded file.
type Result struct {
	ID             string `json:"id"`
	Name           string `json:"name"`
	WebViewLink    string `json:"webViewLink"`
	WebContentLink string `json:"webContentLink"`
}

// NewUploader authenticates with a service-account credentials file,
// scoped to files the app creates (drive.file).
func NewUploader(ctx context.Context, credentialsFile string) (*Uploader, error) {
	if credentialsFile == "" {
		return nil, fmt.Errorf("no Drive credentials file configured")
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, fmt.Errorf("credentials file not found: %w", err)
	}
	svc, err := drive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Drive service: %w", err)
	}
	return &Uploader{svc: svc}, nil
}

// NewUploaderFromJSON authenticates with in-memory service-account JSON.
func NewUploaderFromJSON(ctx context.Context, credentials []byte) (*Uploader, error) {
	if len(credentials) == 0 {
		return nil, fmt.Errorf("empty service account JSON")
	}
	svc, err := drive.NewService(ctx,
		option.WithCredentialsJSON(credentials),
		option.WithScopes(drive.DriveFileScope),
	)
	if err != nil {
		return nil, fmt.Errorf("creating Drive service: %w", err)
	}
	return &Uploader{svc: svc}, nil
}

// FolderIDByName returns the id of the first non-trashed folder with the
// given name, or "" when none exists.
func (u *Uploader) FolderIDByName(ctx context.Context, name string) (string, error) {
	q := fmt.Sprintf("mimeType='%s' and name='%s' and trashed=false",
		folderMIMEType, escapeQuery(name))
	list, err := u.svc.Files.List().
		Q(q).
		Spaces("drive").
		Fields("files(id, name)").
		PageSize(10).
		Context(ctx).
		Do()
	if err != nil {
		return "", fmt.Errorf("searching for folder %q: %w", name, err)
	}
	if len(list.Files) == 0 {
		return "", nil
	}
	return list.Files[0].Id, nil
}

// CreateFolder creates a folder in the Drive root and returns its id.
func (u *Uploader) CreateFolder(ctx context.Context, name string) (string, error) {
	created, err := u.svc.Files.Create(&drive.File{
		Name:     name,
		MimeType: folderMIMEType,
	}).Fields("id").Context(ctx).Do()
	if err != nil {
		return "", fmt.Errorf("creating folder %q: %w", name, err)
	}
	return created.Id, nil
}

// EnsureFolder finds a folder by name, creating it when absent.
func (u *Uploader) EnsureFolder(ctx context.Context, name string) (string, error) {
	id, err := u.FolderIDByName(ctx, name)
	if err != nil {
		return "", err
	}
	if id != "" {
		return id, nil
	}
	log.Printf("Creating Drive folder: %s", name)
	return u.CreateFolder(ctx, name)
}

// Upload sends a local file to Drive. folderID may be empty (root);
// name overrides the local file name when non-empty.
func (u *Uploader) Upload(ctx context.Context, path, folderID, name string) (*Result, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	if name == "" {
		name = filepath.Base(path)
	}
	mimeType := MIMEType(path)

	meta := &drive.File{Name: name, MimeType: mimeType}
	if folderID != "" {
		meta.Parents = []string{folderID}
	}

	uploaded, err := u.svc.Files.Create(meta).
		Media(f, googleapi.ContentType(mimeType)).
		Fields("id, name, webViewLink, webContentLink").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("uploading %s: %w", name, err)
	}

	return &Result{
		ID:             uploaded.Id,
		Name:           uploaded.Name,
		WebViewLink:    uploaded.WebViewLink,
		WebContentLink: uploaded.WebContentLink,
	}, nil
}

// Share grants anyone-with-the-link read access.
func (u *Uploader) Share(ctx context.Context, fileID string) error {
	_, err := u.svc.Permissions.Create(fileID, &drive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return fmt.Errorf("sharing file %s: %w", fileID, err)
	}
	return nil
}

// MIMEType maps a file extension to its upload content type.
func MIMEType(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".pptx":
		return "application/vnd.openxmlformats-officedocument.presentationml.presentation"
	case ".ppt":
		return "application/vnd.ms-powerpoint"
	case ".pdf":
		return "application/pdf"
	case ".json":
		return "application/json"
	default:
		return "application/octet-stream"
	}
}

// escapeQuery escapes a literal for inclusion in a Drive query string.
func escapeQuery(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	return strings.ReplaceAll(s, `'`, `\'`)
}
