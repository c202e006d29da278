package text

import (
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComputeSpansNoHighlights(t *testing.T) {
	got := ComputeSpans("Hello world", nil)
	assert.Equal(t, []Span{{Start: 0, End: 11}}, got)
}

func TestComputeSpansCaseInsensitive(t *testing.T) {
	got := ComputeSpans("The Lord is good", []string{"lord"})
	assert.Equal(t, []Span{
		{Start: 0, End: 4},
		{Start: 4, End: 8, Highlighted: true},
		{Start: 8, End: 16},
	}, got)
}

func TestComputeSpansOverlapFirstMatchWins(t *testing.T) {
	got := ComputeSpans("abcdef", []string{"abc", "bcd"})
	assert.Equal(t, []Span{
		{Start: 0, End: 3, Highlighted: true},
		{Start: 3, End: 6},
	}, got)
}

func TestComputeSpansAllOccurrences(t *testing.T) {
	got := ComputeSpans("go and go again", []string{"go"})
	assert.Equal(t, []Span{
		{Start: 0, End: 2, Highlighted: true},
		{Start: 2, End: 7},
		{Start: 7, End: 9, Highlighted: true},
		{Start: 9, End: 15},
	}, got)
}

func TestComputeSpansWholeTextHighlighted(t *testing.T) {
	got := ComputeSpans("mercy", []string{"MERCY"})
	assert.Equal(t, []Span{{Start: 0, End: 5, Highlighted: true}}, got)
}

func TestComputeSpansUnmatchedAndEmptyTerms(t *testing.T) {
	got := ComputeSpans("short", []string{"", "absent", "longer than the text itself"})
	assert.Equal(t, []Span{{Start: 0, End: 5}}, got)
}

func TestComputeSpansPartitionInvariant(t *testing.T) {
	texts := []string{
		"In your righteousness, rescue me and deliver me; turn your ear to me and save me.",
		"My mouth will tell of your righteous deeds, of your saving acts all day long.",
	}
	terms := []string{"righteous", "me", "deeds", "acts all"}

	for _, txt := range texts {
		spans := ComputeSpans(txt, terms)
		require.NotEmpty(t, spans)
		assert.Equal(t, 0, spans[0].Start)
		assert.Equal(t, len(txt), spans[len(spans)-1].End)
		for i := 1; i < len(spans); i++ {
			assert.Equal(t, spans[i-1].End, spans[i].Start, "gap or overlap at span %d", i)
		}
	}
}

func TestComputeSpansLengthChangingCaseFolds(t *testing.T) {
	// İ lowercases to a shorter encoding; offsets must index the
	// original string, not its lowered form.
	got := ComputeSpans("ABCİ", []string{"Cİ"})
	assert.Equal(t, []Span{
		{Start: 0, End: 2},
		{Start: 2, End: 5, Highlighted: true},
	}, got)

	// Ⱥ lowercases to a longer encoding.
	txt := "AȺB"
	got = ComputeSpans(txt, []string{"ȺB"})
	require.Equal(t, []Span{
		{Start: 0, End: 1},
		{Start: 1, End: 4, Highlighted: true},
	}, got)
	assert.Equal(t, len(txt), got[len(got)-1].End)
	for _, sp := range got {
		assert.True(t, utf8.ValidString(txt[sp.Start:sp.End]))
	}
}

func TestComputeSpansEmptyText(t *testing.T) {
	assert.Empty(t, ComputeSpans("", []string{"x"}))
}
