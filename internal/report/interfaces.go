package report

import (
	"context"

	"github.com/kurochkinivan/autobiz/internal/domain"
	"github.com/kurochkinivan/autobiz/internal/infrastructure/report_generator"
)

type Summarizer interface {
	Summarize(ctx context.Context, insights *domain.Insights) (string, error)
}

type Renderer interface {
	Render(path string, doc *report_generator.Document) error
}

type ReportGenerator interface {
	GenerateReport(ctx context.Context, outputPath, sourceFile string, records []*domain.SalesRecord) error
}

type UploadUpdater interface {
	UpdateOrCreateUpload(ctx context.Context, upload *domain.Upload) error
}

type RecordsSaver interface {
	SaveRecords(ctx context.Context, uploadName string, records ...*domain.SalesRecord) error
}

type Transactor interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
