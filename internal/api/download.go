package api

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"cortecaja/internal/delivery"
	"cortecaja/internal/logging"
)

type DownloadHandler struct {
	registry *delivery.Registry
}

func NewDownloadHandler(registry *delivery.Registry) *DownloadHandler {
	return &DownloadHandler{registry: registry}
}

func (h *DownloadHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	token := chi.URLParam(req, "token")
	logData.AddData("token", token)

	d, err := h.registry.Get(token)
	if errors.Is(err, delivery.ErrNotFound) {
		return writeError(w, http.StatusNotFound, "download not found or expired", fmt.Errorf("download %s: %w", token, err))
	}
	if err != nil {
		return writeError(w, http.StatusInternalServerError, "download failed", err)
	}

	logData.AddData("fileName", d.FileName)
	logData.AddData("ageMs", time.Since(d.Created).Milliseconds())
	return delivery.WriteAttachment(w, d)
}
