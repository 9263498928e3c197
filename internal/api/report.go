package api

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"cortecaja/internal/config"
	"cortecaja/internal/delivery"
	"cortecaja/internal/logging"
	"cortecaja/internal/report"
)

const maxRequestBytes = 16 << 20

// RenderRequest is the body of POST /v1/cortes/reporte.
type RenderRequest struct {
	Filter      *report.Filter `json:"filtro"`
	BranchLabel string         `json:"plantelLabel"`
	Closing     *report.Input  `json:"corte"`
}

// RenderResponse points at the rendered PDF.
type RenderResponse struct {
	Token    string `json:"token"`
	FileName string `json:"fileName"`
	URL      string `json:"url"`
	Pages    int    `json:"paginas"`
}

type ReportHandler struct {
	registry *delivery.Registry
	report   config.ReportConfig
	now      func() time.Time
}

func NewReportHandler(deps Dependencies) *ReportHandler {
	return &ReportHandler{
		registry: deps.Registry,
		report:   deps.Report,
		now:      deps.Now,
	}
}

func (h *ReportHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	var body RenderRequest
	dec := json.NewDecoder(http.MaxBytesReader(w, req.Body, maxRequestBytes))
	if err := dec.Decode(&body); err != nil {
		return writeError(w, http.StatusBadRequest, "invalid request body", fmt.Errorf("render: decode body: %w", err))
	}
	if body.Closing == nil {
		return writeError(w, http.StatusBadRequest, "missing corte", errors.New("render: missing corte"))
	}
	logData.AddData("receipts", len(body.Closing.Receipts))

	opts := report.Options{
		Filter:      body.Filter,
		BranchLabel: body.BranchLabel,
		School:      h.report.School,
		Author:      h.report.Author,
		PageSize:    h.report.PageSize,
		Margin:      h.report.Margin,
		GeneratedAt: h.now(),
	}

	endRender := logData.AddTiming("render")
	data, doc, err := report.Build(*body.Closing, opts)
	endRender()
	if err != nil {
		return writeError(w, http.StatusInternalServerError, "failed to render report", fmt.Errorf("render: %w", err))
	}

	fileName := delivery.FileName(*body.Closing, body.Filter)
	token := h.registry.Put(fileName, data)
	logData.AddData("pages", doc.PageCount())
	logData.AddData("bytes", len(data))
	logData.AddData("token", token)

	return writeJSON(w, http.StatusCreated, RenderResponse{
		Token:    token,
		FileName: fileName,
		URL:      "/v1/descargas/" + token,
		Pages:    doc.PageCount(),
	})
}
