package langdetect

import (
	"strings"

	"github.com/pemistahl/lingua-go"
)

// noiseFloor filters the long tail of near-zero probabilities lingua assigns
// to implausible languages so the breakdown only reports real candidates.
const noiseFloor = 0.01

// LinguaClassifier implements Classifier using the lingua-go statistical
// language detector. Building the detector loads the language models once;
// construct it at startup and reuse it across requests (it is safe for
// concurrent use).
type LinguaClassifier struct {
	detector lingua.LanguageDetector
}

// NewLinguaClassifier builds a classifier over all languages lingua supports.
func NewLinguaClassifier() *LinguaClassifier {
	return &LinguaClassifier{
		detector: lingua.NewLanguageDetectorBuilder().
			FromAllLanguages().
			Build(),
	}
}

// Classify returns lingua's confidence values as ISO 639-1 guesses, highest
// probability first. Text lingua cannot place (digits, symbols, very short
// fragments) yields an empty slice.
func (c *LinguaClassifier) Classify(text string) []Guess {
	values := c.detector.ComputeLanguageConfidenceValues(text)

	guesses := make([]Guess, 0, len(values))
	for _, v := range values {
		if v.Value() < noiseFloor {
			continue
		}
		code := strings.ToLower(v.Language().IsoCode639_1().String())
		guesses = append(guesses, Guess{Code: code, Probability: v.Value()})
	}
	return guesses
}
