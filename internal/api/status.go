package api

import (
	"errors"
	"net/http"

	"cortecaja/internal/logging"
)

type StatusHandler struct{}

func NewStatusHandler() StatusHandler {
	return StatusHandler{}
}

func (h StatusHandler) Handler(w http.ResponseWriter, req *http.Request, logData *logging.LogData) error {
	if req.Method != http.MethodGet {
		w.WriteHeader(http.StatusBadRequest)
		return errors.New("status: method not GET")
	}

	w.WriteHeader(http.StatusOK)
	return nil
}
