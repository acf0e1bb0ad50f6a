// Package langdetect converts raw per-language probabilities from a
// statistical classifier into a ranked, renormalized percentage breakdown.
package langdetect

import (
	"sort"
	"strings"

	"github.com/rs/zerolog"

	"ocrtoolkit/internal/config"
	"ocrtoolkit/internal/logger"
)

// UnknownLanguage is the primary-language sentinel for text that produced no
// detection entries.
const UnknownLanguage = "Unknown"

// Guess is one raw classifier observation.
type Guess struct {
	Code        string  // ISO 639-1 code
	Probability float64 // raw probability in [0,1]
}

// Classifier produces raw per-language probabilities for a text. An empty
// result means the classifier could not determine any language.
type Classifier interface {
	Classify(text string) []Guess
}

// Language is one ranked detection entry.
type Language struct {
	Name           string  `json:"language"`        // display name
	Code           string  `json:"language_code"`   // ISO 639-1 code
	Confidence     float64 `json:"confidence"`      // raw classifier probability
	TextPercentage float64 `json:"text_percentage"` // renormalized share, sums to 100
}

// Result is a full detection outcome for one text.
type Result struct {
	Languages []Language `json:"detected_languages"`
	Primary   string     `json:"primary_language"`
}

// Detector wraps a classifier with display-name mapping, percentage
// renormalization, and the deterministic fallback policy.
type Detector struct {
	cfg        *config.Config
	classifier Classifier
	log        zerolog.Logger
}

// New creates a detector over the given classifier.
func New(cfg *config.Config, classifier Classifier) *Detector {
	return &Detector{
		cfg:        cfg,
		classifier: classifier,
		log:        logger.WithComponent("langdetect"),
	}
}

// Detect analyzes the text and returns the ranked language breakdown. It is
// a total function: whitespace-only input yields an empty result with the
// Unknown primary, and a classifier that cannot determine any language yields
// the configured single-entry fallback. Neither case is an error.
func (d *Detector) Detect(text string) Result {
	if strings.TrimSpace(text) == "" {
		return Result{Primary: UnknownLanguage}
	}

	guesses := d.classifier.Classify(text)
	if len(guesses) == 0 {
		d.log.Debug().Msg("Classifier returned no languages, using fallback")
		return Result{
			Languages: []Language{{
				Name:           d.cfg.FallbackLanguage,
				Code:           d.cfg.FallbackLanguageCode,
				Confidence:     d.cfg.LanguageFallbackConfidence,
				TextPercentage: 100.0,
			}},
			Primary: d.cfg.FallbackLanguage,
		}
	}

	// Stable sort keeps the classifier's own ordering for ties.
	sort.SliceStable(guesses, func(i, j int) bool {
		return guesses[i].Probability > guesses[j].Probability
	})

	var total float64
	for _, g := range guesses {
		total += g.Probability
	}

	languages := make([]Language, len(guesses))
	for i, g := range guesses {
		var pct float64
		if total > 0 {
			pct = g.Probability / total * 100
		}
		languages[i] = Language{
			Name:           displayName(g.Code),
			Code:           g.Code,
			Confidence:     g.Probability,
			TextPercentage: pct,
		}
	}

	return Result{
		Languages: languages,
		Primary:   languages[0].Name,
	}
}
