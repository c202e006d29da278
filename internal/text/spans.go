package text

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Span is a contiguous byte range of a passage, tagged as highlighted or
// plain. The spans returned by ComputeSpans partition the passage with no
// gaps and no overlaps, ordered by Start.
type Span struct {
	Start       int
	End         int
	Highlighted bool
}

// ComputeSpans partitions text into plain and highlighted spans. Each
// entry of highlights is matched case-insensitively as a literal
// substring, all non-overlapping occurrences per term. Overlaps between
// matches are resolved first-match-wins: candidates are swept in start
// order and a match is dropped when it overlaps an already accepted one.
// With no highlights, or none matching, the whole text is one plain span.
func ComputeSpans(text string, highlights []string) []Span {
	if len(text) == 0 {
		return nil
	}

	type interval struct{ start, end int }

	lower, back := foldOffsets(text)
	var candidates []interval
	for _, h := range highlights {
		term := strings.ToLower(h)
		if term == "" {
			continue
		}
		for from := 0; ; {
			i := strings.Index(lower[from:], term)
			if i < 0 {
				break
			}
			start := from + i
			candidates = append(candidates, interval{start, start + len(term)})
			from = start + len(term)
		}
	}

	// Stable keeps earlier highlight terms ahead on equal starts.
	sort.SliceStable(candidates, func(i, j int) bool {
		return candidates[i].start < candidates[j].start
	})

	var accepted []interval
	lastEnd := 0
	for _, c := range candidates {
		if c.start >= lastEnd {
			accepted = append(accepted, c)
			lastEnd = c.end
		}
	}

	// Candidate offsets index the lowered string; map them back to the
	// original before building the partition.
	spans := make([]Span, 0, 2*len(accepted)+1)
	pos := 0
	for _, iv := range accepted {
		start, end := back[iv.start], back[iv.end]
		if start > pos {
			spans = append(spans, Span{Start: pos, End: start})
		}
		spans = append(spans, Span{Start: start, End: end, Highlighted: true})
		pos = end
	}
	if pos < len(text) {
		spans = append(spans, Span{Start: pos, End: len(text)})
	}
	return spans
}

// foldOffsets lowercases text and records, for every byte of the lowered
// form, the offset in text of the rune it came from. Lowercasing can
// change a rune's encoded length (İ shrinks to i, Ⱥ grows to ⱥ), so
// offsets found in the lowered string index the original only after
// mapping through this table. A trailing entry maps the lowered end to
// len(text).
func foldOffsets(text string) (string, []int) {
	var b strings.Builder
	b.Grow(len(text))
	back := make([]int, 0, len(text)+1)
	for i, r := range text {
		var buf [utf8.UTFMax]byte
		n := utf8.EncodeRune(buf[:], unicode.ToLower(r))
		b.Write(buf[:n])
		for ; n > 0; n-- {
			back = append(back, i)
		}
	}
	back = append(back, len(text))
	return b.String(), back
}
