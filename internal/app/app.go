package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"time"

	"github.com/kurochkinivan/autobiz/internal/config"
	v1 "github.com/kurochkinivan/autobiz/internal/controller/http/v1"
	"github.com/kurochkinivan/autobiz/internal/domain"
	"github.com/kurochkinivan/autobiz/internal/infrastructure/report_generator"
	"github.com/kurochkinivan/autobiz/internal/infrastructure/summarizer"
	"github.com/kurochkinivan/autobiz/internal/pipeline"
	"github.com/kurochkinivan/autobiz/internal/report"
	"github.com/kurochkinivan/autobiz/internal/repository/postgresql"
	"golang.org/x/sync/errgroup"
)

const (
	filesBuffer        = 100
	parseResultsBuffer = 50
	reportsBuffer      = 100

	shutdownTimeout = 5 * time.Second
)

type assistant interface {
	report.Summarizer
	v1.Agent
}

type App struct {
	log *slog.Logger
	cfg *config.Config
}

func New(log *slog.Logger, cfg *config.Config) *App {
	return &App{
		log: log,
		cfg: cfg,
	}
}

func (a *App) Run(ctx context.Context) error {
	a.log.InfoContext(ctx, "starting app",
		slog.String("watch_dir", a.cfg.App.WatchDirectory),
		slog.String("reports_dir", a.cfg.App.ReportsDirectory),
		slog.String("uploads_dir", a.cfg.App.UploadsDirectory),
		slog.Duration("scan_interval", a.cfg.App.DirectoryScanInterval),
	)

	for _, dir := range []string{a.cfg.App.ReportsDirectory, a.cfg.App.UploadsDirectory} {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create directory %q: %w", dir, err)
		}
	}

	a.log.InfoContext(ctx, "establishing postgresql connection",
		slog.String("postgresql_host", a.cfg.PostgreSQL.Host),
		slog.String("postgresql_port", a.cfg.PostgreSQL.Port),
		slog.String("postgresql_dbname", a.cfg.PostgreSQL.DBName),
	)

	pool, err := postgresql.NewConnection(ctx, a.log, a.cfg.PostgreSQL)
	if err != nil {
		return fmt.Errorf("failed to create db connection: %w", err)
	}
	defer pool.Close()

	uploadsRepository := postgresql.NewUploadsRepository(pool)
	salesRepository := postgresql.NewSalesRepository(pool)
	txManager := postgresql.NewTxManager(pool)

	if err := uploadsRepository.ResetProcessingUploads(ctx); err != nil {
		return fmt.Errorf("failed to reset processing uploads: %w", err)
	}

	llm, err := a.assistant(ctx)
	if err != nil {
		return fmt.Errorf("failed to create llm client: %w", err)
	}

	builder := report.NewBuilder(a.log, a.cfg.App.ReportTitle, llm, report_generator.New())

	return a.startPipeline(ctx, uploadsRepository, salesRepository, txManager, builder, llm)
}

func (a *App) assistant(ctx context.Context) (assistant, error) {
	if a.cfg.LLM.APIKey == "" {
		a.log.InfoContext(ctx, "no llm api key configured, using template summaries")
		return summarizer.NewTemplate(), nil
	}

	a.log.InfoContext(ctx, "using genai summaries", slog.String("model", a.cfg.LLM.Model))

	return summarizer.NewGenAI(ctx, a.cfg.LLM.APIKey, a.cfg.LLM.Model)
}

func (a *App) startPipeline(
	ctx context.Context,
	uploadsRepo *postgresql.UploadsRepository,
	salesRepo *postgresql.SalesRepository,
	txManager *postgresql.TxManager,
	builder *report.Builder,
	llm assistant,
) error {
	files := make(chan string, filesBuffer)
	parseResults := make(chan *domain.ParseResult, parseResultsBuffer)
	reports := make(chan *domain.ParseResult, reportsBuffer)

	scanner := pipeline.NewScanner(
		a.log,
		a.cfg.App.WatchDirectory,
		a.cfg.App.DirectoryScanInterval,
		files,
		uploadsRepo,
		uploadsRepo,
	)
	parser := pipeline.NewParser(a.log, files, parseResults)
	writer := pipeline.NewWriter(a.log, parseResults, reports, uploadsRepo, salesRepo, txManager)
	reporter := pipeline.NewReporter(a.log, a.cfg.App.ReportsDirectory, reports, builder, uploadsRepo)

	service := report.NewService(
		a.log,
		a.cfg.App.UploadsDirectory,
		a.cfg.App.ReportsDirectory,
		builder,
		uploadsRepo,
		salesRepo,
		txManager,
	)
	server := v1.NewServer(a.cfg.HTTP, v1.Dependencies{
		ReportService:     service,
		Agent:             llm,
		UploadsRepository: uploadsRepo,
		ReportsDir:        a.cfg.App.ReportsDirectory,
	})

	erg, ctx := errgroup.WithContext(ctx)

	erg.Go(func() error {
		a.log.InfoContext(ctx, "scanner started")
		return scanner.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "parser started")
		return parser.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "writer started")
		return writer.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "reporter started")
		return reporter.Run(ctx)
	})

	erg.Go(func() error {
		a.log.InfoContext(ctx, "starting http server",
			slog.String("addr", net.JoinHostPort(a.cfg.HTTP.Host, a.cfg.HTTP.Port)),
		)

		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server error: %w", err)
		}

		return nil
	})

	erg.Go(func() error {
		<-ctx.Done()

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()

		return server.Shutdown(shutdownCtx)
	})

	a.log.InfoContext(ctx, "all components started")

	if err := erg.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		a.log.ErrorContext(ctx, "app stopped with error", slog.String("err", err.Error()))

		return err
	}

	a.log.InfoContext(ctx, "app stopped gracefully")

	return nil
}
