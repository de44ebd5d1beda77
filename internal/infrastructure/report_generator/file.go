package report_generator

import (
	"fmt"
	"os"
	"path/filepath"
)

func save(path string, pdf []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("failed to create report directory: %w", err)
	}

	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, pdf, 0o644); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}

	if err := os.Rename(tmp, path); err != nil {
		return fmt.Errorf("failed to move report into place: %w", err)
	}

	return nil
}
