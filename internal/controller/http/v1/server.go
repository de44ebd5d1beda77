package v1

import (
	"context"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/kurochkinivan/autobiz/internal/config"
)

type Server struct {
	httpServer *http.Server
}

type Dependencies struct {
	ReportService     ReportService
	Agent             Agent
	UploadsRepository UploadsRepository
	ReportsDir        string
}

func NewServer(cfg config.HTTP, deps Dependencies) *Server {
	return &Server{
		httpServer: &http.Server{
			Addr:         net.JoinHostPort(cfg.Host, cfg.Port),
			ReadTimeout:  cfg.ReadTimeout,
			WriteTimeout: cfg.WriteTimeout,
			IdleTimeout:  cfg.IdleTimeout,
			Handler:      NewRouter(cfg, deps),
		},
	}
}

func NewRouter(cfg config.HTTP, deps Dependencies) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.StripSlashes)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: []string{"*"},
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"*"},
	}))

	reports := NewReportsHandler(deps.ReportService, deps.ReportsDir, cfg.MaxUploadSize)
	agent := NewAgentHandler(deps.Agent)
	uploads := NewUploadsHandler(deps.UploadsRepository)

	r.Post("/report", reports.GenerateReport)
	r.Post("/upload", reports.Insights)
	r.Post("/agent", agent.Ask)
	r.Get("/reports/{name}", reports.ServeReport)

	r.Route("/api/v1", func(r chi.Router) {
		r.Get("/uploads", uploads.GetUploads)
	})

	return r
}

func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}
