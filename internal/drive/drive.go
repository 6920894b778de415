// Package drive uploads rendered exam papers to a Google Drive folder using
// a service account, and lists or deletes what is already there. The
// integration is optional: when no credentials or folder are configured the
// rest of the application keeps working and the storage routes degrade
// gracefully.
package drive

import (
	"context"
	"errors"
	"fmt"
	"os"

	gdrive "google.golang.org/api/drive/v3"
	"google.golang.org/api/googleapi"
	"google.golang.org/api/option"
)

// ErrNotConfigured is returned when credentials or the target folder are
// missing.
var ErrNotConfigured = errors.New("google drive is not configured")

const listPageSize = 50

var mimeTypes = map[string]string{
	"pdf":  "application/pdf",
	"docx": "application/vnd.openxmlformats-officedocument.wordprocessingml.document",
}

// File describes one stored exam paper.
type File struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	ViewLink     string `json:"view_link"`
	DownloadLink string `json:"download_link"`
	CreatedTime  string `json:"created_time"`
	Size         int64  `json:"size"`
	Type         string `json:"type,omitempty"`
}

// Service wraps the Drive API scoped to one folder.
type Service struct {
	api      *gdrive.Service
	folderID string
}

// New builds a Drive service from a service-account credentials file. It
// returns ErrNotConfigured when the file does not exist, so callers can run
// without the integration.
func New(ctx context.Context, credentialsFile, folderID string) (*Service, error) {
	if credentialsFile == "" {
		return nil, ErrNotConfigured
	}
	if _, err := os.Stat(credentialsFile); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNotConfigured, err)
	}

	api, err := gdrive.NewService(ctx,
		option.WithCredentialsFile(credentialsFile),
		option.WithScopes(gdrive.DriveScope),
	)
	if err != nil {
		return nil, fmt.Errorf("create drive service: %w", err)
	}
	return &Service{api: api, folderID: folderID}, nil
}

// FolderConfigured reports whether a target folder id is set.
func (s *Service) FolderConfigured() bool {
	return s.folderID != ""
}

const fileFields = "id, name, webViewLink, webContentLink, createdTime, size"

// Upload stores a local file in the configured folder under the given name
// (extension appended from fileType), makes it readable by anyone with the
// link, and returns its descriptor.
func (s *Service) Upload(ctx context.Context, localPath, name, fileType string) (*File, error) {
	if s.folderID == "" {
		return nil, ErrNotConfigured
	}

	mime, ok := mimeTypes[fileType]
	if !ok {
		mime = "application/octet-stream"
	}

	f, err := os.Open(localPath)
	if err != nil {
		return nil, fmt.Errorf("open local file: %w", err)
	}
	defer f.Close()

	meta := &gdrive.File{
		Name:    fmt.Sprintf("%s.%s", name, fileType),
		Parents: []string{s.folderID},
	}
	created, err := s.api.Files.Create(meta).
		Media(f, googleapi.ContentType(mime)).
		Fields(fileFields).
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("upload file: %w", err)
	}

	// Anyone with the link can view; session links are shared with students.
	_, err = s.api.Permissions.Create(created.Id, &gdrive.Permission{
		Type: "anyone",
		Role: "reader",
	}).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("share file: %w", err)
	}

	// Re-fetch so the returned descriptor carries the sharing links.
	fetched, err := s.api.Files.Get(created.Id).Fields(fileFields).Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("fetch uploaded file: %w", err)
	}
	return toFile(fetched), nil
}

// List returns the files in the configured folder, newest first. An
// unconfigured folder lists as empty rather than failing.
func (s *Service) List(ctx context.Context) ([]File, error) {
	if s.folderID == "" {
		return []File{}, nil
	}

	query := fmt.Sprintf("'%s' in parents and trashed = false", s.folderID)
	res, err := s.api.Files.List().
		Q(query).
		PageSize(listPageSize).
		Fields("files(" + fileFields + ", mimeType)").
		OrderBy("createdTime desc").
		Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("list files: %w", err)
	}

	files := make([]File, 0, len(res.Files))
	for _, f := range res.Files {
		files = append(files, *toFile(f))
	}
	return files, nil
}

// Delete removes a file by id.
func (s *Service) Delete(ctx context.Context, fileID string) error {
	if err := s.api.Files.Delete(fileID).Context(ctx).Do(); err != nil {
		return fmt.Errorf("delete file: %w", err)
	}
	return nil
}

// Info returns the descriptor for one file.
func (s *Service) Info(ctx context.Context, fileID string) (*File, error) {
	f, err := s.api.Files.Get(fileID).Fields(fileFields + ", mimeType").Context(ctx).Do()
	if err != nil {
		return nil, fmt.Errorf("get file: %w", err)
	}
	return toFile(f), nil
}

func toFile(f *gdrive.File) *File {
	out := &File{
		ID:           f.Id,
		Name:         f.Name,
		ViewLink:     f.WebViewLink,
		DownloadLink: f.WebContentLink,
		CreatedTime:  f.CreatedTime,
		Size:         f.Size,
	}
	switch f.MimeType {
	case mimeTypes["pdf"]:
		out.Type = "pdf"
	case mimeTypes["docx"]:
		out.Type = "docx"
	}
	return out
}
