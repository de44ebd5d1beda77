package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type Scanner struct {
	log             *slog.Logger
	watchDir        string
	scanInterval    time.Duration
	files           chan<- string
	uploadsProvider UploadsProvider
	uploadUpdater   UploadUpdater
}

func NewScanner(
	log *slog.Logger,
	watchDir string,
	scanInterval time.Duration,
	files chan<- string,
	uploadsProvider UploadsProvider,
	uploadUpdater UploadUpdater,
) *Scanner {
	return &Scanner{
		log:             log,
		watchDir:        watchDir,
		scanInterval:    scanInterval,
		files:           files,
		uploadsProvider: uploadsProvider,
		uploadUpdater:   uploadUpdater,
	}
}

func (s *Scanner) Run(ctx context.Context) error {
	defer close(s.files)

	ticker := time.NewTicker(s.scanInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			s.log.DebugContext(ctx, "scan cycle started")

			err := s.scanFiles(ctx)
			if err != nil {
				s.log.ErrorContext(ctx, "failed to scan files", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (s *Scanner) scanFiles(ctx context.Context) error {
	statuses, err := s.extractStatusesFromDB(ctx)
	if err != nil {
		return err
	}

	entries, err := os.ReadDir(s.watchDir)
	if err != nil {
		return fmt.Errorf("failed to read directory %q: %w", s.watchDir, err)
	}

	for _, entry := range entries {
		err := s.processEntry(ctx, entry, statuses)
		if err != nil {
			s.log.ErrorContext(ctx, "failed process entry, skipping file",
				slog.String("filename", entry.Name()),
				slog.String("err", err.Error()),
			)
			continue
		}
	}

	return nil
}

func (s *Scanner) extractStatusesFromDB(ctx context.Context) (map[string]domain.Status, error) {
	uploads, err := s.uploadsProvider.Uploads(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get uploads: %w", err)
	}

	statuses := make(map[string]domain.Status, len(uploads))
	for _, upload := range uploads {
		statuses[upload.Name] = upload.Status
	}

	return statuses, nil
}

func (s *Scanner) processEntry(ctx context.Context, entry os.DirEntry, statuses map[string]domain.Status) error {
	if entry.IsDir() || !strings.EqualFold(filepath.Ext(entry.Name()), ".csv") {
		return nil
	}

	if !statuses[entry.Name()].Claimable() {
		return nil
	}

	err := s.uploadUpdater.UpdateOrCreateUpload(ctx, &domain.Upload{
		Name:   entry.Name(),
		Status: domain.StatusProcessing,
	})
	if err != nil {
		return fmt.Errorf("failed to update upload status: %w", err)
	}

	s.log.DebugContext(ctx, "updated upload status to processing", slog.String("filename", entry.Name()))

	select {
	case s.files <- filepath.Join(s.watchDir, entry.Name()):
	case <-ctx.Done():
		return ctx.Err()
	}

	return nil
}
