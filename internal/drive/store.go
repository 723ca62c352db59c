package drive

import (
	"context"
	"fmt"
	"io"

	drive "google.golang.org/api/drive/v3"
	"google.golang.org/api/option"

	"lus-labeler-backend/internal/config"
)

const folderMimeType = "application/vnd.google-apps.folder"

// Entry is a single remote file or folder: its opaque Drive id plus its name.
type Entry struct {
	ID   string
	Name string
}

// Store is the read-only surface of the remote file store the catalog needs.
type Store interface {
	// ListFolders returns the immediate child folders of parentID.
	ListFolders(ctx context.Context, parentID string) ([]Entry, error)
	// ListFiles returns the immediate child files (non-folders) of parentID.
	ListFiles(ctx context.Context, parentID string) ([]Entry, error)
	// OpenFile opens the content of the file with the given id for reading.
	OpenFile(ctx context.Context, fileID string) (io.ReadCloser, error)
}

// DriveStore implements Store against the Google Drive v3 API.
// It is built once at startup and shared by all requests; the underlying
// service is safe for concurrent use.
type DriveStore struct {
	svc *drive.Service
}

// NewDriveStore builds the Drive service from the configured service-account
// credentials. Inline JSON credentials take precedence over the key file path.
func NewDriveStore(ctx context.Context, cfg *config.Config) (*DriveStore, error) {
	opts := []option.ClientOption{
		option.WithScopes(drive.DriveReadonlyScope),
	}
	if cfg.DriveCredentialsJSON != "" {
		opts = append(opts, option.WithCredentialsJSON([]byte(cfg.DriveCredentialsJSON)))
	} else {
		opts = append(opts, option.WithCredentialsFile(cfg.DriveCredentialsFile))
	}

	svc, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to build drive service: %w", err)
	}
	return &DriveStore{svc: svc}, nil
}

// ListFolders returns the immediate child folders of parentID, following
// page tokens until the listing is exhausted.
func (s *DriveStore) ListFolders(ctx context.Context, parentID string) ([]Entry, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType = '%s' and trashed = false",
		parentID, folderMimeType)
	return s.list(ctx, query)
}

// ListFiles returns the immediate child files (never folders) of parentID.
func (s *DriveStore) ListFiles(ctx context.Context, parentID string) ([]Entry, error) {
	query := fmt.Sprintf("'%s' in parents and mimeType != '%s' and trashed = false",
		parentID, folderMimeType)
	return s.list(ctx, query)
}

func (s *DriveStore) list(ctx context.Context, query string) ([]Entry, error) {
	var entries []Entry
	pageToken := ""
	for {
		call := s.svc.Files.List().
			Q(query).
			Spaces("drive").
			Fields("nextPageToken, files(id, name)").
			Context(ctx)
		if pageToken != "" {
			call = call.PageToken(pageToken)
		}

		resp, err := call.Do()
		if err != nil {
			return nil, fmt.Errorf("drive listing failed: %w", err)
		}
		for _, f := range resp.Files {
			entries = append(entries, Entry{ID: f.Id, Name: f.Name})
		}

		pageToken = resp.NextPageToken
		if pageToken == "" {
			return entries, nil
		}
	}
}

// OpenFile opens a media download for the given file id.
func (s *DriveStore) OpenFile(ctx context.Context, fileID string) (io.ReadCloser, error) {
	resp, err := s.svc.Files.Get(fileID).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("drive download failed: %w", err)
	}
	return resp.Body, nil
}
