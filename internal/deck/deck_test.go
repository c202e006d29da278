package deck

import (
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MervinPraison/PraisonAIPPT/internal/pptx"
	"github.com/MervinPraison/PraisonAIPPT/internal/text"
	"github.com/MervinPraison/PraisonAIPPT/internal/verses"
)

func singleVerse(body, ref string, highlights ...string) *verses.Presentation {
	return &verses.Presentation{
		Title:    "Test Deck",
		Subtitle: "Sub",
		Sections: []verses.Section{{
			Name:   "Section One",
			Verses: []verses.Verse{{Reference: ref, Text: body, Highlights: highlights}},
		}},
	}
}

func TestBuildShortVerse(t *testing.T) {
	p := Build(singleVerse("A short verse.", "Ref 1:1"), Options{})
	// title + section + one verse slide
	assert.Equal(t, 3, p.SlideCount())
}

func TestBuildLongVerseSplitsIntoParts(t *testing.T) {
	long := strings.TrimSpace(strings.Repeat("This sentence is here to pad the verse out. ", 6)) // ~260 chars
	require.Greater(t, len(long), 200)

	pres := singleVerse(long, "Ref 2:2", "pad the verse")
	built := Build(pres, Options{})

	wantChunks := len(text.Segment(long, 200))
	require.GreaterOrEqual(t, wantChunks, 2)
	assert.Equal(t, 1+1+wantChunks, built.SlideCount())
}

func TestBuildCustomTitleSkipsSections(t *testing.T) {
	pres := singleVerse("A short verse.", "Ref 1:1")
	built := Build(pres, Options{CustomTitle: "Why Delay?"})
	// title + verse slide, no section divider
	assert.Equal(t, 2, built.SlideCount())
}

func TestBuildSkipsEmptySections(t *testing.T) {
	pres := &verses.Presentation{
		Title:    "T",
		Sections: []verses.Section{{Name: "Empty"}},
	}
	assert.Equal(t, 1, Build(pres, Options{}).SlideCount())
}

func TestEndToEndHighlightedRuns(t *testing.T) {
	filler := strings.TrimSpace(strings.Repeat("Filler sentence for padding purposes here. ", 5))
	long := "This opening carries one important promise for all. " + filler
	require.Greater(t, len(long), 200)

	pres := singleVerse(long, "Ref 3:3", "important")
	built := Build(pres, Options{})

	path := filepath.Join(t.TempDir(), "e2e.pptx")
	require.NoError(t, built.Save(path))

	slides, err := pptx.ExtractSlideContent(path)
	require.NoError(t, err)

	chunks := text.Segment(long, 200)
	require.GreaterOrEqual(t, len(chunks), 2)
	require.Len(t, slides, 2+len(chunks))

	// Verse slides start after title and section slides.
	for i, chunk := range chunks {
		slide, ok := slides[3+i]
		require.True(t, ok)
		require.NotEmpty(t, slide.Shapes)

		body := slide.Shapes[0]
		var rebuilt strings.Builder
		var boldTexts []string
		for _, run := range body.Runs {
			rebuilt.WriteString(run.Text)
			if run.Bold {
				boldTexts = append(boldTexts, run.Text)
			}
		}
		assert.Equal(t, chunk, rebuilt.String())

		wantSpans := text.ComputeSpans(chunk, []string{"important"})
		var wantBold []string
		for _, sp := range wantSpans {
			if sp.Highlighted {
				wantBold = append(wantBold, chunk[sp.Start:sp.End])
			}
		}
		assert.Equal(t, wantBold, boldTexts, "chunk %d", i)

		// Multi-part verses carry a part suffix on the reference shape.
		require.Len(t, slide.Shapes, 2)
		ref := slide.Shapes[1].Runs[0].Text
		assert.Contains(t, ref, "Ref 3:3")
		assert.Contains(t, ref, "(Part")
	}
}

func TestBuildRecordsAuthor(t *testing.T) {
	built := Build(singleVerse("A short verse.", "Ref 1:1"), Options{Author: "PraisonAIPPT"})
	assert.Equal(t, "PraisonAIPPT", built.Author)
}

func TestOutputName(t *testing.T) {
	pres := &verses.Presentation{Title: "God's Promises"}
	assert.Equal(t, "Gods_Promises.pptx", OutputName(pres, "", ""))
	assert.Equal(t, "Why_Delay.pptx", OutputName(pres, "Why Delay?", ""))
	assert.Equal(t, "out.pptx", OutputName(pres, "", "out"))
	assert.Equal(t, "deck.pptx", OutputName(pres, "", "deck.pptx"))
}
