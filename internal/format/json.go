package format

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode/utf16"

	"github.com/ytget/yt-transcript/internal/model"
)

// formatJSON writes the entry list the way Python's json.dumps does with its
// defaults: ", " and ": " separators, ASCII-only output and floats that always
// carry a fractional part or an exponent.
func formatJSON(entries []model.TranscriptEntry) string {
	var b strings.Builder
	b.WriteByte('[')
	for i, e := range entries {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteString(`{"text": `)
		writeASCIIJSONString(&b, e.Text)
		b.WriteString(`, "start": `)
		b.WriteString(floatRepr(e.Start))
		b.WriteString(`, "duration": `)
		b.WriteString(floatRepr(e.Duration))
		b.WriteByte('}')
	}
	b.WriteByte(']')
	return b.String()
}

func writeASCIIJSONString(b *strings.Builder, s string) {
	b.WriteByte('"')
	for _, r := range s {
		switch r {
		case '"':
			b.WriteString(`\"`)
		case '\\':
			b.WriteString(`\\`)
		case '\n':
			b.WriteString(`\n`)
		case '\r':
			b.WriteString(`\r`)
		case '\t':
			b.WriteString(`\t`)
		case '\b':
			b.WriteString(`\b`)
		case '\f':
			b.WriteString(`\f`)
		default:
			switch {
			case r >= ' ' && r <= '~':
				b.WriteRune(r)
			case r > 0xFFFF:
				hi, lo := utf16.EncodeRune(r)
				fmt.Fprintf(b, `\u%04x\u%04x`, hi, lo)
			default:
				fmt.Fprintf(b, `\u%04x`, r)
			}
		}
	}
	b.WriteByte('"')
}

// floatRepr matches Python's float repr: shortest round-trip digits, scientific
// notation outside [1e-4, 1e16) and a trailing ".0" for integral values.
func floatRepr(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	}

	abs := math.Abs(f)
	if abs != 0 && (abs < 1e-4 || abs >= 1e16) {
		return strconv.FormatFloat(f, 'e', -1, 64)
	}

	s := strconv.FormatFloat(f, 'f', -1, 64)
	if !strings.ContainsRune(s, '.') {
		s += ".0"
	}
	return s
}
