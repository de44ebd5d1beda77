package report_client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/textproto"
	"strings"
	"time"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

const (
	DefaultEndpoint = "http://localhost:8000"

	reportPath = "/report/"
	agentPath  = "/agent/"
	fileField  = "file"

	// Error bodies are cut to this size before they end up in error messages.
	maxErrorBody = 512
)

var ErrMissingPDFPath = errors.New("response has no pdf_path")

type Client struct {
	origin     string
	httpClient *http.Client
}

// New returns a client for the report server at endpoint. A zero timeout
// leaves requests bounded only by their context.
func New(endpoint string, timeout time.Duration) *Client {
	if endpoint == "" {
		endpoint = DefaultEndpoint
	}

	return &Client{
		origin:     strings.TrimRight(endpoint, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) Origin() string {
	return c.origin
}

type reportResponse struct {
	PDFPath string `json:"pdf_path"`
}

// GenerateReport uploads file as multipart form field "file" and returns the
// absolute link to the generated document.
func (c *Client) GenerateReport(ctx context.Context, file *domain.File) (string, error) {
	body, contentType, err := multipartBody(file)
	if err != nil {
		return "", fmt.Errorf("failed to build multipart body: %w", err)
	}

	var resp reportResponse
	if err := c.post(ctx, reportPath, contentType, body, &resp); err != nil {
		return "", err
	}

	if resp.PDFPath == "" {
		return "", ErrMissingPDFPath
	}

	return c.Link(resp.PDFPath), nil
}

// Link joins a server relative path to the endpoint origin.
func (c *Client) Link(path string) string {
	return c.origin + "/" + strings.TrimPrefix(path, "/")
}

type agentRequest struct {
	Message string `json:"message"`
}

type agentResponse struct {
	Reply string `json:"reply"`
}

func (c *Client) Ask(ctx context.Context, message string) (string, error) {
	data, err := json.Marshal(agentRequest{Message: message})
	if err != nil {
		return "", fmt.Errorf("failed to marshal agent request: %w", err)
	}

	var resp agentResponse
	if err := c.post(ctx, agentPath, "application/json", bytes.NewReader(data), &resp); err != nil {
		return "", err
	}

	return resp.Reply, nil
}

func (c *Client) post(ctx context.Context, path, contentType string, body io.Reader, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.origin+path, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", contentType)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request to %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		return &StatusError{Code: resp.StatusCode, Body: strings.TrimSpace(string(msg))}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response from %s: %w", path, err)
	}

	return nil
}

func multipartBody(file *domain.File) (*bytes.Buffer, string, error) {
	body := &bytes.Buffer{}
	w := multipart.NewWriter(body)

	contentType := file.ContentType
	if contentType == "" {
		contentType = "text/csv"
	}

	h := make(textproto.MIMEHeader)
	h.Set("Content-Disposition", fmt.Sprintf(`form-data; name=%q; filename=%q`, fileField, file.Name))
	h.Set("Content-Type", contentType)

	part, err := w.CreatePart(h)
	if err != nil {
		return nil, "", err
	}

	if _, err := part.Write(file.Data); err != nil {
		return nil, "", err
	}

	if err := w.Close(); err != nil {
		return nil, "", err
	}

	return body, w.FormDataContentType(), nil
}
