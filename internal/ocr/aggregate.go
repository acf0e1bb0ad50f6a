package ocr

import "strings"

// SourceKind says where a unit's text came from.
type SourceKind int

const (
	SourceNone SourceKind = iota
	SourceEmbeddedText
	SourceRecognized
)

// Unit is one extraction observation: a single PDF page or a whole image.
type Unit struct {
	Text       string
	Source     SourceKind
	Confidence float64
}

// Combine merges an ordered sequence of units into one text and one score.
// Texts are concatenated in order with a newline separator; the confidence is
// the arithmetic mean over the units. The mean of N identical scores is that
// score exactly, without float drift. An empty sequence yields ("", 0.0).
func Combine(units []Unit) (text string, confidence float64) {
	if len(units) == 0 {
		return "", 0.0
	}

	var b strings.Builder
	var sum float64
	identical := true
	for i, u := range units {
		if i > 0 {
			b.WriteByte('\n')
		}
		b.WriteString(u.Text)
		sum += u.Confidence
		if u.Confidence != units[0].Confidence {
			identical = false
		}
	}

	if identical {
		return b.String(), units[0].Confidence
	}
	return b.String(), sum / float64(len(units))
}
