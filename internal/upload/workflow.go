package upload

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

const (
	MsgUploading       = "Uploading and generating report..."
	MsgNoFileSelected  = "Please select a CSV file first"
	MsgReportGenerated = "Report generated"
	MsgUploadFailed    = "Upload failed"
	MsgPreviewFailed   = "Could not read CSV preview"
)

var ErrNoFileSelected = errors.New("no file selected")

// State is a copy of the workflow state safe to hand to renderers.
type State struct {
	FileName   string
	Preview    [][]string
	ReportLink string
}

// Workflow holds the selected file, its preview and the last report link.
// Selections and submissions are numbered; a result is applied only if no
// newer selection or submission started in the meantime.
type Workflow struct {
	log      *slog.Logger
	client   ReportClient
	notifier Notifier

	mu            sync.Mutex
	file          *domain.File
	preview       [][]string
	reportLink    string
	selectionGen  uint64
	submissionGen uint64
}

func NewWorkflow(log *slog.Logger, client ReportClient, notifier Notifier) *Workflow {
	return &Workflow{
		log:      log,
		client:   client,
		notifier: notifier,
	}
}

// Select stores file as the current selection and rebuilds the preview from
// its content. A nil file leaves the state untouched. On a parse failure the
// preview is cleared while the file stays selected.
func (w *Workflow) Select(ctx context.Context, file *domain.File) error {
	if file == nil {
		return nil
	}

	w.mu.Lock()
	w.file = file
	w.selectionGen++
	gen := w.selectionGen
	w.mu.Unlock()

	log := w.log.With(slog.String("filename", file.Name))

	rows, err := parseTable(file.Data)

	w.mu.Lock()
	if gen != w.selectionGen {
		w.mu.Unlock()
		log.DebugContext(ctx, "selection superseded, dropping preview")
		return nil
	}

	if err != nil {
		w.preview = nil
		w.mu.Unlock()

		log.WarnContext(ctx, "failed to parse csv preview", slog.String("err", err.Error()))
		w.notifier.Error(MsgPreviewFailed)
		return fmt.Errorf("failed to parse %s: %w", file.Name, err)
	}

	w.preview = head(rows, PreviewRows)
	w.mu.Unlock()

	log.DebugContext(ctx, "parsed csv", slog.Int("rows_count", len(rows)), slog.Any("rows", rows))

	return nil
}

// Submit sends the selected file to the report server and returns the report
// link. Exactly one Success or Error notification follows the Loading one.
func (w *Workflow) Submit(ctx context.Context) (string, error) {
	w.mu.Lock()
	file := w.file
	if file == nil {
		w.mu.Unlock()
		w.notifier.Error(MsgNoFileSelected)
		return "", ErrNoFileSelected
	}
	w.submissionGen++
	gen := w.submissionGen
	w.mu.Unlock()

	log := w.log.With(slog.String("filename", file.Name))
	log.InfoContext(ctx, "uploading file")

	w.notifier.Loading(MsgUploading)
	link, err := w.client.GenerateReport(ctx, file)
	w.notifier.Dismiss()

	if err != nil {
		log.ErrorContext(ctx, "failed to generate report", slog.String("err", err.Error()))
		w.notifier.Error(MsgUploadFailed)
		return "", fmt.Errorf("failed to generate report: %w", err)
	}

	w.mu.Lock()
	if gen == w.submissionGen {
		w.reportLink = link
	} else {
		log.DebugContext(ctx, "submission superseded, keeping newer link")
	}
	w.mu.Unlock()

	log.InfoContext(ctx, "report generated", slog.String("link", link))
	w.notifier.Success(MsgReportGenerated)

	return link, nil
}

func (w *Workflow) State() State {
	w.mu.Lock()
	defer w.mu.Unlock()

	state := State{
		Preview:    head(w.preview, PreviewRows),
		ReportLink: w.reportLink,
	}
	if w.file != nil {
		state.FileName = w.file.Name
	}

	return state
}
