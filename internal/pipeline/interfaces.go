package pipeline

import (
	"context"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type UploadsProvider interface {
	Uploads(ctx context.Context) ([]*domain.Upload, error)
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

type ReportGenerator interface {
	GenerateReport(ctx context.Context, outputPath, sourceFile string, records []*domain.SalesRecord) error
}
