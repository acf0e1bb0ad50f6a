package pdf

import (
	"bytes"
	"io"
	"regexp"
	"strings"
	"unicode"

	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// literalRe matches PDF string literals in parentheses: (text here)
var literalRe = regexp.MustCompile(`\(([^)]*)\)`)

// extractPageText pulls the embedded text out of one page's content stream.
// Returns "" when the page has no decodable text operators, which the
// pipeline treats as "no embedded text, rasterize instead".
func extractPageText(ctx *model.Context, pageNr int) string {
	r, err := pdfcpu.ExtractPageContent(ctx, pageNr)
	if err != nil {
		return ""
	}
	data, err := io.ReadAll(r)
	if err != nil || len(data) == 0 {
		return ""
	}
	return decodeContentStream(data)
}

// decodeContentStream walks the content stream line by line and accumulates
// the arguments of the text-showing operators (Tj, TJ, '). Positioning
// operators (Td, TD, T*) become whitespace so words on separate lines do not
// run together.
func decodeContentStream(data []byte) string {
	var sb strings.Builder

	for _, line := range bytes.Split(data, []byte{'\n'}) {
		line = bytes.TrimSpace(line)
		if len(line) == 0 {
			continue
		}

		switch {
		case bytes.HasSuffix(line, []byte("Tj")), bytes.HasSuffix(line, []byte("TJ")):
			writeLiterals(&sb, line)

		case bytes.HasSuffix(line, []byte("'")) && bytes.Contains(line, []byte("(")):
			sb.WriteByte('\n')
			writeLiterals(&sb, line)

		case bytes.HasSuffix(line, []byte("Td")), bytes.HasSuffix(line, []byte("TD")):
			if sb.Len() > 0 {
				sb.WriteByte(' ')
			}

		case bytes.Equal(line, []byte("T*")):
			sb.WriteByte('\n')
		}
	}

	return collapseWhitespace(sb.String())
}

func writeLiterals(sb *strings.Builder, line []byte) {
	for _, m := range literalRe.FindAllSubmatch(line, -1) {
		sb.WriteString(unescapeLiteral(m[1]))
	}
}

// unescapeLiteral resolves the escape sequences PDF string literals may
// carry, including octal character codes like \040.
func unescapeLiteral(raw []byte) string {
	var sb strings.Builder
	for i := 0; i < len(raw); i++ {
		if raw[i] != '\\' || i+1 == len(raw) {
			sb.WriteByte(raw[i])
			continue
		}
		i++
		switch c := raw[i]; c {
		case 'n':
			sb.WriteByte('\n')
		case 'r':
			sb.WriteByte('\r')
		case 't':
			sb.WriteByte('\t')
		case '\\', '(', ')':
			sb.WriteByte(c)
		default:
			if c < '0' || c > '7' {
				sb.WriteByte(c)
				break
			}
			val := int(c - '0')
			for n := 0; n < 2 && i+1 < len(raw) && raw[i+1] >= '0' && raw[i+1] <= '7'; n++ {
				i++
				val = val*8 + int(raw[i]-'0')
			}
			sb.WriteByte(byte(val))
		}
	}
	return sb.String()
}

// collapseWhitespace squeezes runs of whitespace to single spaces and drops
// non-printable runes left over from binary-encoded strings.
func collapseWhitespace(text string) string {
	var sb strings.Builder
	prevSpace := false
	for _, r := range text {
		switch {
		case unicode.IsSpace(r):
			if !prevSpace && sb.Len() > 0 {
				sb.WriteByte(' ')
				prevSpace = true
			}
		case unicode.IsPrint(r):
			sb.WriteRune(r)
			prevSpace = false
		}
	}
	return strings.TrimSpace(sb.String())
}
