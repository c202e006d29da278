// Package text holds the two pure routines the deck builder is made of:
// splitting long passages into slide-sized chunks and partitioning a
// passage into plain and highlighted runs.
package text

import (
	"strings"
	"unicode/utf8"
)

// DefaultMaxLength is the largest chunk the segmenter produces before it
// starts breaking at sentence boundaries.
const DefaultMaxLength = 200

// sentence boundaries are the literal two-character delimiters; the
// punctuation mark stays with the preceding unit, the space is consumed.
var sentenceMarks = strings.NewReplacer(". ", ".|", "! ", "!|", "? ", "?|")

// Segment splits text into chunks of at most maxLength characters,
// breaking at sentence boundaries. A single sentence longer than
// maxLength is emitted oversize rather than cut mid-sentence. The
// returned chunks are trimmed of surrounding whitespace; for non-empty
// input there is always at least one chunk.
func Segment(text string, maxLength int) []string {
	if maxLength <= 0 {
		maxLength = DefaultMaxLength
	}
	if utf8.RuneCountInString(text) <= maxLength {
		return []string{text}
	}

	units := strings.Split(sentenceMarks.Replace(text), "|")

	var parts []string
	var current string
	var length int // runes in current, not bytes
	for _, unit := range units {
		n := utf8.RuneCountInString(unit)
		if length+n <= maxLength {
			current += unit
			length += n
			continue
		}
		if current != "" {
			parts = append(parts, strings.TrimSpace(current))
		}
		current, length = unit, n
	}
	if current != "" {
		parts = append(parts, strings.TrimSpace(current))
	}

	if len(parts) == 0 {
		return []string{text}
	}
	return parts
}
