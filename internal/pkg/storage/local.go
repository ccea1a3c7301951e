// internal/pkg/storage/local.go
package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/your-org/storefront-backend/internal/config"
)

// LocalStore saves uploaded product images on the local filesystem and
// hands back the public path stored on the catalog row.
type LocalStore struct {
	config *config.Config
}

// NewLocalStore creates a new local image store
func NewLocalStore(cfg *config.Config) *LocalStore {
	return &LocalStore{
		config: cfg,
	}
}

// SaveUpload writes one multipart file under the configured directory with
// a generated name (the client filename is used only for its extension)
// and returns the public URL path.
func (s *LocalStore) SaveUpload(file *multipart.FileHeader) (string, error) {
	if err := os.MkdirAll(s.config.Storage.LocalPath, 0o755); err != nil {
		return "", fmt.Errorf("failed to create storage directory: %w", err)
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := uuid.New().String() + ext
	dst := filepath.Join(s.config.Storage.LocalPath, name)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open upload: %w", err)
	}
	defer src.Close()

	out, err := os.Create(dst)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}
	defer out.Close()

	if _, err := io.Copy(out, src); err != nil {
		return "", fmt.Errorf("failed to write file: %w", err)
	}

	return s.config.Storage.PublicBaseURL + "/" + name, nil
}

// SaveUploads writes a batch of gallery files, skipping empty entries the
// way browsers submit unselected file inputs.
func (s *LocalStore) SaveUploads(files []*multipart.FileHeader) ([]string, error) {
	var paths []string
	for _, file := range files {
		if file == nil || file.Filename == "" {
			continue
		}
		path, err := s.SaveUpload(file)
		if err != nil {
			return nil, err
		}
		paths = append(paths, path)
	}
	return paths, nil
}
