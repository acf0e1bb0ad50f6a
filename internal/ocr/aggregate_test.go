package ocr

import (
	"math"
	"testing"
)

func TestCombine(t *testing.T) {
	tests := []struct {
		name     string
		units    []Unit
		wantText string
		wantConf float64
	}{
		{
			name:     "empty sequence",
			units:    nil,
			wantText: "",
			wantConf: 0.0,
		},
		{
			name:     "single unit",
			units:    []Unit{{Text: "hello", Source: SourceRecognized, Confidence: 0.85}},
			wantText: "hello",
			wantConf: 0.85,
		},
		{
			name: "identical confidences average to themselves",
			units: []Unit{
				{Text: "page one", Source: SourceEmbeddedText, Confidence: 0.95},
				{Text: "page two", Source: SourceEmbeddedText, Confidence: 0.95},
				{Text: "page three", Source: SourceEmbeddedText, Confidence: 0.95},
			},
			wantText: "page one\npage two\npage three",
			wantConf: 0.95,
		},
		{
			name: "mixed sources",
			units: []Unit{
				{Text: "embedded", Source: SourceEmbeddedText, Confidence: 0.95},
				{Text: "recognized", Source: SourceRecognized, Confidence: 0.85},
			},
			wantText: "embedded\nrecognized",
			wantConf: 0.9,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			text, conf := Combine(tt.units)
			if text != tt.wantText {
				t.Errorf("text = %q, want %q", text, tt.wantText)
			}
			if math.Abs(conf-tt.wantConf) > 1e-9 {
				t.Errorf("confidence = %v, want %v", conf, tt.wantConf)
			}
		})
	}
}

// The mean of N identical scores must be that score to the last bit, not a
// float-drifted neighbour like 0.9499999999999998.
func TestCombineIdenticalConfidencesExact(t *testing.T) {
	units := []Unit{
		{Text: "one", Source: SourceEmbeddedText, Confidence: 0.95},
		{Text: "two", Source: SourceEmbeddedText, Confidence: 0.95},
		{Text: "three", Source: SourceEmbeddedText, Confidence: 0.95},
	}
	if _, conf := Combine(units); conf != 0.95 {
		t.Errorf("confidence = %v, want exactly 0.95", conf)
	}
}

func TestCombinePreservesOrder(t *testing.T) {
	units := []Unit{
		{Text: "c", Confidence: 0.1},
		{Text: "a", Confidence: 0.9},
		{Text: "b", Confidence: 0.5},
	}
	text, _ := Combine(units)
	if text != "c\na\nb" {
		t.Errorf("unit order not preserved: %q", text)
	}
}
