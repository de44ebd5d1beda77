package upload

import (
	"fmt"
	"mime"
	"os"
	"path/filepath"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

const defaultContentType = "text/csv"

// ReadFile loads a file from disk for selection.
func ReadFile(path string) (*domain.File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	contentType := mime.TypeByExtension(filepath.Ext(path))
	if contentType == "" {
		contentType = defaultContentType
	}

	return &domain.File{
		Name:        filepath.Base(path),
		ContentType: contentType,
		Data:        data,
	}, nil
}
