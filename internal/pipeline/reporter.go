package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"strings"
	"time"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type Reporter struct {
	log             *slog.Logger
	outputDir       string
	reports         <-chan *domain.ParseResult
	reportGenerator ReportGenerator
	uploadUpdater   UploadUpdater
}

func NewReporter(
	log *slog.Logger,
	outputDir string,
	reports <-chan *domain.ParseResult,
	reportGenerator ReportGenerator,
	uploadUpdater UploadUpdater,
) *Reporter {
	return &Reporter{
		log:             log,
		outputDir:       outputDir,
		reports:         reports,
		reportGenerator: reportGenerator,
		uploadUpdater:   uploadUpdater,
	}
}

func (r *Reporter) Run(ctx context.Context) error {
	for {
		select {
		case result, ok := <-r.reports:
			if !ok {
				return nil
			}

			log := r.log.With(
				slog.String("filename", result.Filename),
				slog.Int("records_count", len(result.Records)),
			)

			if result.Error != nil || len(result.Records) == 0 {
				log.DebugContext(ctx, "nothing to report, skipping")
				continue
			}

			log.InfoContext(ctx, "received parse result, generating report")

			if err := r.processResult(ctx, result); err != nil {
				log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (r *Reporter) processResult(ctx context.Context, result *domain.ParseResult) error {
	name := filepath.Base(result.Filename)
	reportName := strings.TrimSuffix(name, filepath.Ext(name)) + ".pdf"
	path := filepath.Join(r.outputDir, reportName)

	now := time.Now()
	upload := &domain.Upload{
		Name:        name,
		Status:      domain.StatusDone,
		ReportPath:  path,
		ProcessedAt: &now,
	}

	genErr := r.reportGenerator.GenerateReport(ctx, path, name, result.Records)
	if genErr != nil {
		upload.Status = domain.StatusError
		upload.ReportPath = ""
		upload.ErrorMessage = genErr.Error()
	}

	if err := r.uploadUpdater.UpdateOrCreateUpload(ctx, upload); err != nil {
		return fmt.Errorf("failed to update upload %s: %w", name, err)
	}

	if genErr != nil {
		return fmt.Errorf("upload %s: %w", name, genErr)
	}

	return nil
}
