package format

import (
	"fmt"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/ytget/yt-transcript/internal/model"
)

// Layout of the pretty-printed dump
const (
	prettyWidth  = 80
	prettyIndent = 2
)

// formatPretty dumps the entry list as a Python literal with sorted keys,
// laid out like pprint with indent=2 and width=80: one line when the whole
// list fits, otherwise one entry per line, and an entry that is itself too
// wide gets one key per line. A text too wide for its line is split into
// adjacent string literals.
func formatPretty(entries []model.TranscriptEntry) string {
	items := make([]string, len(entries))
	for i, e := range entries {
		items[i] = entryRepr(e)
	}

	oneLine := "[" + strings.Join(items, ", ") + "]"
	if utf8.RuneCountInString(oneLine) <= prettyWidth {
		return oneLine
	}

	pad := strings.Repeat(" ", prettyIndent)
	// Each entry is followed by "," or the closing "]"
	maxItemWidth := prettyWidth - prettyIndent - 1

	var b strings.Builder
	b.WriteString("[" + strings.Repeat(" ", prettyIndent-1))
	for i, e := range entries {
		if i > 0 {
			b.WriteString(",\n" + pad)
		}
		if utf8.RuneCountInString(items[i]) <= maxItemWidth {
			b.WriteString(items[i])
			continue
		}
		b.WriteString(entryReprWrapped(e, prettyIndent))
	}
	b.WriteString("]")
	return b.String()
}

func entryRepr(e model.TranscriptEntry) string {
	return "{'duration': " + floatRepr(e.Duration) +
		", 'start': " + floatRepr(e.Start) +
		", 'text': " + stringRepr(e.Text) + "}"
}

// entryReprWrapped puts one key per line. The text value starts after its key
// and is split further when its repr does not fit on the rest of the line.
func entryReprWrapped(e model.TranscriptEntry, indent int) string {
	inner := indent + prettyIndent
	sep := ",\n" + strings.Repeat(" ", inner)
	textKey := "'text': "
	// The closing "}" of the entry and "," or "]" after it
	const trailing = 2
	return "{" + strings.Repeat(" ", prettyIndent-1) +
		"'duration': " + floatRepr(e.Duration) + sep +
		"'start': " + floatRepr(e.Start) + sep +
		textKey + stringReprWrapped(e.Text, inner+len(textKey), trailing) + "}"
}

// stringReprWrapped renders s starting at column indent. A repr wider than the
// line is split at line breaks and then between words into adjacent literals,
// one per line. allowance is reserved after the last literal.
func stringReprWrapped(s string, indent, allowance int) string {
	rep := stringRepr(s)
	if s == "" || utf8.RuneCountInString(rep) <= prettyWidth-indent-allowance {
		return rep
	}

	maxWidth := prettyWidth - indent
	lines := splitLinesKeepEnds(s)
	var chunks []string
	for i, line := range lines {
		lastLine := i == len(lines)-1
		lineWidth := maxWidth
		if lastLine {
			lineWidth -= allowance
		}
		if utf8.RuneCountInString(stringRepr(line)) <= lineWidth {
			chunks = append(chunks, stringRepr(line))
			continue
		}

		parts := wordParts(line)
		partWidth := maxWidth
		current := ""
		for j, part := range parts {
			candidate := current + part
			if lastLine && j == len(parts)-1 {
				partWidth -= allowance
			}
			if utf8.RuneCountInString(stringRepr(candidate)) > partWidth {
				if current != "" {
					chunks = append(chunks, stringRepr(current))
				}
				current = part
			} else {
				current = candidate
			}
		}
		if current != "" {
			chunks = append(chunks, stringRepr(current))
		}
	}

	if len(chunks) == 1 {
		return rep
	}
	return strings.Join(chunks, "\n"+strings.Repeat(" ", indent))
}

// splitLinesKeepEnds splits after every line boundary Python's str.splitlines
// recognizes, keeping the boundary with its line
func splitLinesKeepEnds(s string) []string {
	var lines []string
	runes := []rune(s)
	start := 0
	for i := 0; i < len(runes); i++ {
		switch runes[i] {
		case '\r':
			if i+1 < len(runes) && runes[i+1] == '\n' {
				i++
			}
		case '\n', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		default:
			continue
		}
		lines = append(lines, string(runes[start:i+1]))
		start = i + 1
	}
	if start < len(runes) {
		lines = append(lines, string(runes[start:]))
	}
	return lines
}

// wordParts cuts s into runs of non-space followed by the spaces after them
func wordParts(s string) []string {
	var parts []string
	runes := []rune(s)
	for i := 0; i < len(runes); {
		j := i
		for j < len(runes) && !isSpace(runes[j]) {
			j++
		}
		for j < len(runes) && isSpace(runes[j]) {
			j++
		}
		parts = append(parts, string(runes[i:j]))
		i = j
	}
	return parts
}

// stringRepr quotes s like Python's repr: single quotes unless the text holds a
// single quote and no double quote, and non-printable characters escaped.
func stringRepr(s string) string {
	quote := '\''
	if strings.ContainsRune(s, '\'') && !strings.ContainsRune(s, '"') {
		quote = '"'
	}

	var b strings.Builder
	b.WriteRune(quote)
	for _, r := range s {
		switch {
		case r == quote || r == '\\':
			b.WriteRune('\\')
			b.WriteRune(r)
		case r == '\n':
			b.WriteString(`\n`)
		case r == '\r':
			b.WriteString(`\r`)
		case r == '\t':
			b.WriteString(`\t`)
		case unicode.IsPrint(r):
			b.WriteRune(r)
		case r < 0x100:
			fmt.Fprintf(&b, `\x%02x`, r)
		case r < 0x10000:
			fmt.Fprintf(&b, `\u%04x`, r)
		default:
			fmt.Fprintf(&b, `\U%08x`, r)
		}
	}
	b.WriteRune(quote)
	return b.String()
}

// isSpace matches Python's str.isspace, which also counts the ASCII
// file, group, record and unit separators
func isSpace(r rune) bool {
	return unicode.IsSpace(r) || (r >= 0x1c && r <= 0x1f)
}
