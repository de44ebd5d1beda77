// Package report builds PDF reports from sales records and serves the
// synchronous upload flow of the HTTP API.
package report

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/kurochkinivan/autobiz/internal/analysis"
	"github.com/kurochkinivan/autobiz/internal/domain"
	"github.com/kurochkinivan/autobiz/internal/infrastructure/report_generator"
)

const DefaultTitle = "AutoBiz.AI | CSV Business Insights"

// Builder analyzes records, summarizes the insights and renders the PDF.
type Builder struct {
	log        *slog.Logger
	title      string
	summarizer Summarizer
	renderer   Renderer
	now        func() time.Time
}

func NewBuilder(log *slog.Logger, title string, summarizer Summarizer, renderer Renderer) *Builder {
	if title == "" {
		title = DefaultTitle
	}

	return &Builder{
		log:        log,
		title:      title,
		summarizer: summarizer,
		renderer:   renderer,
		now:        time.Now,
	}
}

func (b *Builder) GenerateReport(
	ctx context.Context,
	outputPath, sourceFile string,
	records []*domain.SalesRecord,
) error {
	insights := analysis.Analyze(records)

	summary, err := b.summarizer.Summarize(ctx, insights)
	if err != nil {
		b.log.WarnContext(ctx, "summarizer failed, falling back to insight lines",
			slog.String("source", sourceFile),
			slog.String("err", err.Error()),
		)
		summary = strings.Join(analysis.Lines(insights), "\n")
	}

	err = b.renderer.Render(outputPath, &report_generator.Document{
		Title:       b.title,
		Source:      sourceFile,
		GeneratedAt: b.now(),
		Summary:     summary,
		Insights:    insights,
	})
	if err != nil {
		return fmt.Errorf("failed to render report: %w", err)
	}

	b.log.DebugContext(ctx, "report rendered",
		slog.String("source", sourceFile),
		slog.String("path", outputPath),
	)

	return nil
}
