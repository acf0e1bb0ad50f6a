package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"ocrtoolkit/internal/ocr"
	"ocrtoolkit/pkg/models"
)

// Version is reported by the health endpoints.
const Version = "1.0.0"

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}

// writeError maps the pipeline error taxonomy onto HTTP statuses: caller
// input faults are 400, oversize is 413, engine failures on valid input are
// 422, anything unclassified is 500.
func writeError(w http.ResponseWriter, err error) {
	status := http.StatusInternalServerError
	code := "internal_error"

	switch {
	case errors.Is(err, ocr.ErrInvalidInput):
		status, code = http.StatusBadRequest, "invalid_input"
	case errors.Is(err, ocr.ErrUnsupportedFormat):
		status, code = http.StatusBadRequest, "unsupported_format"
	case errors.Is(err, ocr.ErrCorruptStructure):
		status, code = http.StatusBadRequest, "corrupt_structure"
	case errors.Is(err, ocr.ErrOversizedInput):
		status, code = http.StatusRequestEntityTooLarge, "oversized_input"
	case errors.Is(err, ocr.ErrProcessingFailed):
		status, code = http.StatusUnprocessableEntity, "processing_failed"
	}

	writeErrorMessage(w, status, code, err.Error())
}

func writeErrorMessage(w http.ResponseWriter, status int, code, message string) {
	writeJSON(w, status, models.ErrorResponse{
		Success:   false,
		Error:     message,
		ErrorCode: code,
		Timestamp: time.Now(),
	})
}
