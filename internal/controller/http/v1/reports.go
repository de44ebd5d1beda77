package v1

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/kurochkinivan/autobiz/internal/report"
)

const (
	formFileField   = "file"
	multipartMemory = 8 << 20
)

type ReportService interface {
	GenerateReport(ctx context.Context, filename string, src io.Reader) (string, error)
	Insights(ctx context.Context, src io.Reader) ([]string, error)
}

type ReportsHandler struct {
	service       ReportService
	reportsDir    string
	maxUploadSize int64
}

func NewReportsHandler(service ReportService, reportsDir string, maxUploadSize int64) *ReportsHandler {
	return &ReportsHandler{
		service:       service,
		reportsDir:    reportsDir,
		maxUploadSize: maxUploadSize,
	}
}

type GenerateReportResponse struct {
	PDFPath string `json:"pdf_path"`
}

type InsightsResponse struct {
	Insights []string `json:"insights"`
}

func (h *ReportsHandler) GenerateReport(w http.ResponseWriter, r *http.Request) {
	file, filename, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	pdfPath, err := h.service.GenerateReport(r.Context(), filename, file)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, GenerateReportResponse{PDFPath: pdfPath})
}

func (h *ReportsHandler) Insights(w http.ResponseWriter, r *http.Request) {
	file, _, ok := h.formFile(w, r)
	if !ok {
		return
	}
	defer file.Close()

	insights, err := h.service.Insights(r.Context(), file)
	if err != nil {
		http.Error(w, err.Error(), statusFor(err))
		return
	}

	writeJSON(w, http.StatusOK, InsightsResponse{Insights: insights})
}

func (h *ReportsHandler) ServeReport(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "name")
	if name == "" || name != filepath.Base(name) || !strings.EqualFold(filepath.Ext(name), ".pdf") {
		http.NotFound(w, r)
		return
	}

	path := filepath.Join(h.reportsDir, name)
	if _, err := os.Stat(path); err != nil {
		http.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/pdf")
	http.ServeFile(w, r, path)
}

func (h *ReportsHandler) formFile(w http.ResponseWriter, r *http.Request) (io.ReadCloser, string, bool) {
	if h.maxUploadSize > 0 {
		r.Body = http.MaxBytesReader(w, r.Body, h.maxUploadSize)
	}

	if err := r.ParseMultipartForm(multipartMemory); err != nil {
		var maxErr *http.MaxBytesError
		if errors.As(err, &maxErr) {
			http.Error(w, "file too large", http.StatusRequestEntityTooLarge)
			return nil, "", false
		}

		http.Error(w, "invalid multipart form: "+err.Error(), http.StatusBadRequest)
		return nil, "", false
	}

	file, header, err := r.FormFile(formFileField)
	if err != nil {
		http.Error(w, "missing form file \""+formFileField+"\"", http.StatusBadRequest)
		return nil, "", false
	}

	return file, header.Filename, true
}

func statusFor(err error) int {
	if errors.Is(err, report.ErrInvalidCSV) {
		return http.StatusBadRequest
	}

	return http.StatusInternalServerError
}
