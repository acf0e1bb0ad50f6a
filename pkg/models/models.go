// Package models defines the JSON wire models of the HTTP API.
package models

import "time"

// ExtractTextResponse is the response body of POST /extract-text.
type ExtractTextResponse struct {
	Success         bool    `json:"success"`
	ExtractedText   string  `json:"extracted_text"`
	ConfidenceScore float64 `json:"confidence_score"`
	ProcessingTime  float64 `json:"processing_time"`
}

// DetectedLanguage is one entry of a language detection response.
type DetectedLanguage struct {
	Language       string  `json:"language"`
	LanguageCode   string  `json:"language_code"`
	Confidence     float64 `json:"confidence"`
	TextPercentage float64 `json:"text_percentage"`
}

// DetectLanguageResponse is the response body of POST /detect-language.
type DetectLanguageResponse struct {
	Success           bool               `json:"success"`
	DetectedLanguages []DetectedLanguage `json:"detected_languages"`
	PrimaryLanguage   string             `json:"primary_language"`
	ProcessingTime    float64            `json:"processing_time"`
}

// ErrorResponse is the body of every non-2xx response.
type ErrorResponse struct {
	Success   bool      `json:"success"`
	Error     string    `json:"error"`
	ErrorCode string    `json:"error_code"`
	Timestamp time.Time `json:"timestamp"`
}

// HealthResponse is the body of GET / and GET /health.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Version string `json:"version"`
}
