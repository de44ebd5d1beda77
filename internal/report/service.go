package report

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/kurochkinivan/autobiz/internal/analysis"
	"github.com/kurochkinivan/autobiz/internal/domain"
	"github.com/kurochkinivan/autobiz/internal/pipeline"
)

// ReportsURLPrefix is the path under which generated reports are served.
const ReportsURLPrefix = "reports"

// ErrInvalidCSV marks uploads whose content could not be decoded.
var ErrInvalidCSV = errors.New("invalid csv")

type Service struct {
	log        *slog.Logger
	uploadsDir string
	reportsDir string
	generator  ReportGenerator
	uploads    UploadUpdater
	records    RecordsSaver
	transactor Transactor
}

func NewService(
	log *slog.Logger,
	uploadsDir, reportsDir string,
	generator ReportGenerator,
	uploads UploadUpdater,
	records RecordsSaver,
	transactor Transactor,
) *Service {
	return &Service{
		log:        log,
		uploadsDir: uploadsDir,
		reportsDir: reportsDir,
		generator:  generator,
		uploads:    uploads,
		records:    records,
		transactor: transactor,
	}
}

// GenerateReport stores the uploaded file, persists its records and renders
// a PDF report. It returns the report path relative to the server root.
func (s *Service) GenerateReport(ctx context.Context, filename string, src io.Reader) (string, error) {
	id := uuid.NewString()
	base := clientBase(filename)
	name := id + "_" + base

	log := s.log.With(slog.String("upload", name))
	log.InfoContext(ctx, "received file")

	records, err := s.storeAndParse(name, src)
	if err != nil {
		s.markFailed(ctx, log, name, err)
		return "", err
	}

	err = s.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		err := s.uploads.UpdateOrCreateUpload(ctx, &domain.Upload{
			Name:   name,
			Status: domain.StatusProcessing,
		})
		if err != nil {
			return fmt.Errorf("failed to create upload: %w", err)
		}

		if err := s.records.SaveRecords(ctx, name, records...); err != nil {
			return fmt.Errorf("failed to save records: %w", err)
		}

		return nil
	})
	if err != nil {
		err = fmt.Errorf("failed to persist upload: %w", err)
		s.markFailed(ctx, log, name, err)
		return "", err
	}

	reportName := id + ".pdf"
	outputPath := filepath.Join(s.reportsDir, reportName)

	if err := s.generator.GenerateReport(ctx, outputPath, base, records); err != nil {
		s.markFailed(ctx, log, name, err)
		return "", err
	}

	now := time.Now()
	err = s.uploads.UpdateOrCreateUpload(ctx, &domain.Upload{
		Name:        name,
		Status:      domain.StatusDone,
		ReportPath:  outputPath,
		ProcessedAt: &now,
	})
	if err != nil {
		err = fmt.Errorf("failed to update upload status: %w", err)
		s.markFailed(ctx, log, name, err)
		return "", err
	}

	log.InfoContext(ctx, "report generated", slog.String("report", outputPath))

	return path.Join(ReportsURLPrefix, reportName), nil
}

// Insights decodes the upload and returns human readable insight lines
// without persisting anything.
func (s *Service) Insights(_ context.Context, src io.Reader) ([]string, error) {
	records, err := pipeline.ParseRecords(src)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}

	return analysis.Lines(analysis.Analyze(records)), nil
}

func (s *Service) storeAndParse(name string, src io.Reader) (_ []*domain.SalesRecord, err error) {
	if err := os.MkdirAll(s.uploadsDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create uploads directory: %w", err)
	}

	f, err := os.Create(filepath.Join(s.uploadsDir, name))
	if err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}
	defer func() { err = errors.Join(err, f.Close()) }()

	if _, err := io.Copy(f, src); err != nil {
		return nil, fmt.Errorf("failed to store upload: %w", err)
	}

	if _, err := f.Seek(0, io.SeekStart); err != nil {
		return nil, fmt.Errorf("failed to rewind upload: %w", err)
	}

	records, err := pipeline.ParseRecords(f)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidCSV, err)
	}

	return records, nil
}

func (s *Service) markFailed(ctx context.Context, log *slog.Logger, name string, cause error) {
	log.ErrorContext(ctx, "failed to generate report", slog.String("err", cause.Error()))

	now := time.Now()
	err := s.uploads.UpdateOrCreateUpload(ctx, &domain.Upload{
		Name:         name,
		Status:       domain.StatusError,
		ErrorMessage: cause.Error(),
		ProcessedAt:  &now,
	})
	if err != nil {
		log.ErrorContext(ctx, "failed to mark upload as failed", slog.String("err", err.Error()))
	}
}

// clientBase strips directory components of either path style from a client
// supplied file name.
func clientBase(filename string) string {
	base := path.Base(strings.ReplaceAll(filename, `\`, "/"))
	if base == "." || base == "/" {
		return "upload.csv"
	}

	return base
}
