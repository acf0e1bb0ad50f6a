package pdf

import "testing"

func TestDecodeContentStream(t *testing.T) {
	tests := []struct {
		name   string
		stream string
		want   string
	}{
		{
			name:   "single Tj",
			stream: "BT\n/F1 12 Tf\n(Hello World) Tj\nET",
			want:   "Hello World",
		},
		{
			name:   "TJ array with kerning offsets",
			stream: "BT\n[(Invo) -12 (ice) 4 ( Total)] TJ\nET",
			want:   "Invoice Total",
		},
		{
			name:   "Td positioning separates words",
			stream: "BT\n(First) Tj\n10 0 Td\n(Second) Tj\nET",
			want:   "First Second",
		},
		{
			name:   "T star starts a new line",
			stream: "BT\n(Line one) Tj\nT*\n(Line two) Tj\nET",
			want:   "Line one Line two",
		},
		{
			name:   "quote operator shows text on next line",
			stream: "BT\n(above) Tj\n(below) '\nET",
			want:   "above below",
		},
		{
			name:   "no text operators",
			stream: "q\n1 0 0 1 50 700 cm\n/Im0 Do\nQ",
			want:   "",
		},
		{
			name:   "empty stream",
			stream: "",
			want:   "",
		},
		{
			name:   "leading Td does not add a space",
			stream: "BT\n72 720 Td\n(Start) Tj\nET",
			want:   "Start",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := decodeContentStream([]byte(tt.stream)); got != tt.want {
				t.Errorf("decodeContentStream = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestUnescapeLiteral(t *testing.T) {
	tests := []struct {
		raw  string
		want string
	}{
		{`plain text`, "plain text"},
		{`tab\there`, "tab\there"},
		{`line\nbreak`, "line\nbreak"},
		{`back\\slash`, `back\slash`},
		{`escaped \( paren \)`, "escaped ( paren )"},
		{`octal\040space`, "octal space"},
		{`paren\050code\051`, "paren(code)"},
		{`short octal \7 digit`, "short octal \x07 digit"},
		{`unknown \x escape`, "unknown x escape"},
		{`trailing backslash \`, `trailing backslash \`},
	}

	for _, tt := range tests {
		if got := unescapeLiteral([]byte(tt.raw)); got != tt.want {
			t.Errorf("unescapeLiteral(%q) = %q, want %q", tt.raw, got, tt.want)
		}
	}
}

func TestCollapseWhitespace(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"already clean", "already clean"},
		{"  leading and trailing  ", "leading and trailing"},
		{"multiple   internal\t\tspaces", "multiple internal spaces"},
		{"new\n\nlines\ntoo", "new lines too"},
		{"binary\x00\x01junk", "binaryjunk"},
		{"", ""},
		{"   \t\n  ", ""},
	}

	for _, tt := range tests {
		if got := collapseWhitespace(tt.in); got != tt.want {
			t.Errorf("collapseWhitespace(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
