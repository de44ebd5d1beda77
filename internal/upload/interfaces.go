package upload

import (
	"context"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type ReportClient interface {
	GenerateReport(ctx context.Context, file *domain.File) (string, error)
}

// Notifier shows transient status messages to the user.
type Notifier interface {
	Loading(msg string)
	Success(msg string)
	Error(msg string)
	Dismiss()
}
