package langdetect

import (
	"math"
	"testing"

	"ocrtoolkit/internal/config"
)

type classifierFunc func(text string) []Guess

func (f classifierFunc) Classify(text string) []Guess { return f(text) }

func testConfig() *config.Config {
	return &config.Config{
		LanguageFallbackConfidence: 0.5,
		FallbackLanguage:           "English",
		FallbackLanguageCode:       "en",
	}
}

func fixed(guesses ...Guess) Classifier {
	return classifierFunc(func(string) []Guess { return guesses })
}

func TestDetectBlankText(t *testing.T) {
	called := false
	d := New(testConfig(), classifierFunc(func(string) []Guess {
		called = true
		return nil
	}))

	for _, text := range []string{"", "   ", "\n\t  \r\n"} {
		result := d.Detect(text)
		if result.Primary != UnknownLanguage {
			t.Errorf("Detect(%q).Primary = %q, want %q", text, result.Primary, UnknownLanguage)
		}
		if len(result.Languages) != 0 {
			t.Errorf("Detect(%q) returned %d languages, want 0", text, len(result.Languages))
		}
	}
	if called {
		t.Error("classifier ran on blank text")
	}
}

func TestDetectClassifierFallback(t *testing.T) {
	d := New(testConfig(), fixed())

	result := d.Detect("zx9 qq7")
	if len(result.Languages) != 1 {
		t.Fatalf("got %d languages, want 1", len(result.Languages))
	}
	lang := result.Languages[0]
	if lang.Name != "English" || lang.Code != "en" {
		t.Errorf("fallback = %s/%s, want English/en", lang.Name, lang.Code)
	}
	if lang.Confidence != 0.5 {
		t.Errorf("fallback confidence = %v, want 0.5", lang.Confidence)
	}
	if lang.TextPercentage != 100.0 {
		t.Errorf("fallback percentage = %v, want 100", lang.TextPercentage)
	}
	if result.Primary != "English" {
		t.Errorf("Primary = %q, want English", result.Primary)
	}
}

func TestDetectNormalization(t *testing.T) {
	d := New(testConfig(), fixed(
		Guess{Code: "fr", Probability: 0.2},
		Guess{Code: "en", Probability: 0.6},
		Guess{Code: "de", Probability: 0.2},
	))

	result := d.Detect("mixed language text")
	if result.Primary != "English" {
		t.Errorf("Primary = %q, want English", result.Primary)
	}
	if got := result.Languages[0].Code; got != "en" {
		t.Errorf("first entry = %q, want en", got)
	}

	var sum float64
	prev := math.Inf(1)
	for _, lang := range result.Languages {
		sum += lang.TextPercentage
		if lang.Confidence > prev {
			t.Errorf("languages not sorted by descending probability: %v", result.Languages)
		}
		prev = lang.Confidence
	}
	if math.Abs(sum-100.0) > 0.01 {
		t.Errorf("percentages sum to %v, want 100", sum)
	}
	if math.Abs(result.Languages[0].TextPercentage-60.0) > 1e-9 {
		t.Errorf("en percentage = %v, want 60", result.Languages[0].TextPercentage)
	}
}

// Probabilities that do not sum to 1 are renormalized against their own sum.
func TestDetectRenormalizesPartialSum(t *testing.T) {
	d := New(testConfig(), fixed(
		Guess{Code: "en", Probability: 0.5},
		Guess{Code: "es", Probability: 0.25},
	))

	result := d.Detect("some text")
	if math.Abs(result.Languages[0].TextPercentage-100.0/1.5) > 0.01 {
		t.Errorf("en percentage = %v", result.Languages[0].TextPercentage)
	}
	if math.Abs(result.Languages[1].TextPercentage-100.0/3) > 0.01 {
		t.Errorf("es percentage = %v", result.Languages[1].TextPercentage)
	}
}

func TestDetectTieKeepsClassifierOrder(t *testing.T) {
	d := New(testConfig(), fixed(
		Guess{Code: "fr", Probability: 0.4},
		Guess{Code: "de", Probability: 0.4},
		Guess{Code: "it", Probability: 0.2},
	))

	result := d.Detect("equally plausible")
	if result.Languages[0].Code != "fr" || result.Languages[1].Code != "de" {
		t.Errorf("tie order changed: %q, %q", result.Languages[0].Code, result.Languages[1].Code)
	}
}

func TestDetectZeroSumGuard(t *testing.T) {
	d := New(testConfig(), fixed(
		Guess{Code: "en", Probability: 0},
		Guess{Code: "fr", Probability: 0},
	))

	result := d.Detect("text")
	for _, lang := range result.Languages {
		if lang.TextPercentage != 0 {
			t.Errorf("percentage = %v, want 0 for zero-sum input", lang.TextPercentage)
		}
	}
}

func TestDetectUnknownCodeDisplayName(t *testing.T) {
	d := New(testConfig(), fixed(Guess{Code: "tl", Probability: 1.0}))

	result := d.Detect("kumusta ka")
	if got := result.Languages[0].Name; got != "Unknown (tl)" {
		t.Errorf("display name = %q, want %q", got, "Unknown (tl)")
	}
	if result.Primary != "Unknown (tl)" {
		t.Errorf("Primary = %q", result.Primary)
	}
}

func TestDisplayNames(t *testing.T) {
	tests := []struct {
		code string
		want string
	}{
		{"en", "English"},
		{"zh", "Chinese"},
		{"cy", "Welsh"},
		{"xx", "Unknown (xx)"},
	}
	for _, tt := range tests {
		if got := displayName(tt.code); got != tt.want {
			t.Errorf("displayName(%q) = %q, want %q", tt.code, got, tt.want)
		}
	}
}
