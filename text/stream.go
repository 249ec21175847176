package text

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/unicode/norm"
	"golang.org/x/text/width"
)

// StripNewlines joins the trimmed, non-empty lines of s into one string.
func StripNewlines(s string) string {
	return strings.Join(SplitLines(s), "")
}

// SplitLines returns the trimmed, non-empty lines of s.
func SplitLines(s string) []string {
	var lines []string
	for _, ln := range strings.FieldsFunc(s, isLineBreak) {
		if ln = strings.TrimSpace(ln); ln != "" {
			lines = append(lines, ln)
		}
	}
	return lines
}

func isLineBreak(r rune) bool {
	switch r {
	case '\n', '\r', '\v', '\f', 0x1c, 0x1d, 0x1e, 0x85, 0x2028, 0x2029:
		return true
	}
	return false
}

// Chunk splits s into pieces of n characters; the last piece may be
// shorter. It fails when n is not positive.
func Chunk(s string, n int) ([]string, error) {
	if n <= 0 {
		return nil, ErrInvalidChunk
	}
	chunks := make([]string, 0, (utf8.RuneCountInString(s)+n-1)/n)
	for s != "" {
		end, count := 0, 0
		for end < len(s) && count < n {
			_, size := utf8.DecodeRuneInString(s[end:])
			end += size
			count++
		}
		chunks = append(chunks, s[:end])
		s = s[end:]
	}
	return chunks, nil
}

// Prepare readies text for vertical writing: it composes characters (NFC)
// so each glyph is a single rune, and widens narrow forms such as ASCII
// letters, digits and punctuation to their full-width counterparts so they
// occupy a whole character cell.
func Prepare(s string) string {
	return width.Widen.String(norm.NFC.String(s))
}
