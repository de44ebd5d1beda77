package pipeline

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type Writer struct {
	log           *slog.Logger
	parseResults  <-chan *domain.ParseResult
	reports       chan<- *domain.ParseResult
	uploadUpdater UploadUpdater
	recordsSaver  RecordsSaver
	transactor    Transactor
}

func NewWriter(
	log *slog.Logger,
	parseResults <-chan *domain.ParseResult,
	reports chan<- *domain.ParseResult,
	uploadUpdater UploadUpdater,
	recordsSaver RecordsSaver,
	transactor Transactor,
) *Writer {
	return &Writer{
		log:           log,
		parseResults:  parseResults,
		reports:       reports,
		uploadUpdater: uploadUpdater,
		recordsSaver:  recordsSaver,
		transactor:    transactor,
	}
}

func (w *Writer) Run(ctx context.Context) error {
	defer close(w.reports)

	for {
		select {
		case result, ok := <-w.parseResults:
			if !ok {
				return nil
			}

			log := w.log.With(
				slog.String("filename", result.Filename),
				slog.Int("records_count", len(result.Records)),
			)

			log.InfoContext(ctx, "received parse result")

			if err := w.processParseResult(ctx, log, result); err != nil {
				log.ErrorContext(ctx, "failed to process parse result", slog.String("err", err.Error()))
				continue
			}

			select {
			case w.reports <- result:
			case <-ctx.Done():
				return ctx.Err()
			}

		case <-ctx.Done():
			return ctx.Err()
		}
	}
}

func (w *Writer) processParseResult(ctx context.Context, log *slog.Logger, result *domain.ParseResult) error {
	switch result.Error {
	case nil:
		log.DebugContext(ctx, "saving parse result to database")

		err := w.saveResult(ctx, result)
		if err != nil {
			return fmt.Errorf("failed to save result: %w", err)
		}

		log.DebugContext(ctx, "result saved successfully")

	default:
		log.DebugContext(ctx, "processing error parse result")

		now := time.Now()
		err := w.uploadUpdater.UpdateOrCreateUpload(ctx, &domain.Upload{
			Name:         filepath.Base(result.Filename),
			Status:       domain.StatusError,
			ErrorMessage: result.Error.Error(),
			ProcessedAt:  &now,
		})
		if err != nil {
			return fmt.Errorf("failed to save parse result: %w", err)
		}
	}

	return nil
}

func (w *Writer) saveResult(ctx context.Context, result *domain.ParseResult) error {
	name := filepath.Base(result.Filename)

	return w.transactor.WithTransaction(ctx, func(ctx context.Context) error {
		err := w.recordsSaver.SaveRecords(ctx, name, result.Records...)
		if err != nil {
			return fmt.Errorf("failed to save records: %w", err)
		}

		now := time.Now()
		err = w.uploadUpdater.UpdateOrCreateUpload(ctx, &domain.Upload{
			Name:        name,
			Status:      domain.StatusDone,
			ProcessedAt: &now,
		})
		if err != nil {
			return fmt.Errorf("failed to update upload status: %w", err)
		}

		return nil
	})
}
