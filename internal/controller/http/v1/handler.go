package v1

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kurochkinivan/autobiz/internal/domain"
)

type UploadsHandler struct {
	uploadsRepository UploadsRepository
}

type UploadsRepository interface {
	UploadsPage(ctx context.Context, limit, offset uint64) ([]*domain.Upload, int, error)
}

func NewUploadsHandler(uploadsRepository UploadsRepository) *UploadsHandler {
	return &UploadsHandler{
		uploadsRepository: uploadsRepository,
	}
}

type GetUploadsResponse struct {
	Uploads    []*domain.Upload `json:"uploads"`
	Pagination Pagination       `json:"pagination"`
}

func (h *UploadsHandler) GetUploads(w http.ResponseWriter, r *http.Request) {
	page, limit, err := parsePagination(r)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	offset := (page - 1) * limit

	uploads, total, err := h.uploadsRepository.UploadsPage(r.Context(), limit, offset)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, GetUploadsResponse{
		Uploads:    uploads,
		Pagination: newPagination(page, limit, total),
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	data, err := json.Marshal(v)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	w.Write(data)
}
