package server

import (
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"ocrtoolkit/internal/logger"
	"ocrtoolkit/internal/ocr"
	"ocrtoolkit/pkg/models"
)

const serviceName = "ocr-toolkit"

type handler struct {
	extractor Extractor
	detector  LanguageDetector
}

func (h *handler) root(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, models.HealthResponse{
		Status:  "healthy",
		Service: serviceName,
		Version: Version,
	})
}

func (h *handler) health(w http.ResponseWriter, r *http.Request) {
	h.root(w, r)
}

func (h *handler) extractText(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)

	asset, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	result, err := h.extractor.Extract(r.Context(), asset)
	if err != nil {
		log.Warn().Err(err).Str("filename", asset.Filename).Msg("Extraction failed")
		writeError(w, err)
		return
	}

	log.Info().
		Str("filename", asset.Filename).
		Float64("confidence", result.Confidence).
		Float64("elapsed_s", result.ElapsedSeconds).
		Msg("Text extracted")

	writeJSON(w, http.StatusOK, models.ExtractTextResponse{
		Success:         true,
		ExtractedText:   result.Text,
		ConfidenceScore: result.Confidence,
		ProcessingTime:  result.ElapsedSeconds,
	})
}

func (h *handler) detectLanguage(w http.ResponseWriter, r *http.Request) {
	log := h.requestLogger(r)
	start := time.Now()

	asset, ok := h.readUpload(w, r)
	if !ok {
		return
	}

	// Language detection runs on the extracted text, so the full pipeline
	// executes first; its elapsed time is folded into this request's.
	result, err := h.extractor.Extract(r.Context(), asset)
	if err != nil {
		log.Warn().Err(err).Str("filename", asset.Filename).Msg("Extraction failed")
		writeError(w, err)
		return
	}

	detection := h.detector.Detect(result.Text)

	languages := make([]models.DetectedLanguage, len(detection.Languages))
	for i, lang := range detection.Languages {
		languages[i] = models.DetectedLanguage{
			Language:       lang.Name,
			LanguageCode:   lang.Code,
			Confidence:     lang.Confidence,
			TextPercentage: lang.TextPercentage,
		}
	}

	log.Info().
		Str("filename", asset.Filename).
		Str("primary_language", detection.Primary).
		Int("languages", len(languages)).
		Msg("Languages detected")

	writeJSON(w, http.StatusOK, models.DetectLanguageResponse{
		Success:           true,
		DetectedLanguages: languages,
		PrimaryLanguage:   detection.Primary,
		ProcessingTime:    time.Since(start).Seconds(),
	})
}

// readUpload pulls the multipart "file" field into an Asset. HTTP-level
// request faults (missing file, missing filename) are answered here; content
// faults are the pipeline's call.
func (h *handler) readUpload(w http.ResponseWriter, r *http.Request) (ocr.Asset, bool) {
	file, header, err := r.FormFile("file")
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid_input", "No file provided")
		return ocr.Asset{}, false
	}
	defer file.Close()

	if header.Filename == "" {
		writeErrorMessage(w, http.StatusBadRequest, "invalid_input", "File must have a filename")
		return ocr.Asset{}, false
	}

	data, err := io.ReadAll(file)
	if err != nil {
		writeErrorMessage(w, http.StatusBadRequest, "invalid_input", "Failed to read uploaded file")
		return ocr.Asset{}, false
	}

	return ocr.Asset{
		Data:        data,
		ContentType: header.Header.Get("Content-Type"),
		Filename:    header.Filename,
	}, true
}

func (h *handler) requestLogger(r *http.Request) zerolog.Logger {
	return logger.WithRequestID(middleware.GetReqID(r.Context()))
}
