package pptx

import (
	"archive/zip"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleDeck() *Presentation {
	p := New()
	p.Title = "Round Trip"

	s := p.AddSlide()
	s.AddTextBox(TextBox{
		X: Inches(1), Y: Inches(2), W: Inches(8), H: Inches(3),
		Anchor: "ctr",
		Paragraphs: []Paragraph{{
			Align: "ctr",
			Runs: []Run{
				{Text: "In your ", Size: 24, Color: "000000"},
				{Text: "righteousness", Size: 24, Bold: true, Color: "FF8C00"},
				{Text: ", rescue me & deliver me.", Size: 24, Color: "000000"},
			},
		}},
	})
	s.AddTextBox(TextBox{
		X: Inches(1), Y: Inches(5.5), W: Inches(8), H: Inches(1),
		Paragraphs: []Paragraph{{
			Align: "ctr",
			Runs:  []Run{{Text: "Psalm 71:2", Size: 18, Italic: true, Color: "646464"}},
		}},
	})

	second := p.AddSlide()
	second.AddTextBox(TextBox{
		X: Inches(1), Y: Inches(1), W: Inches(8), H: Inches(1),
		Paragraphs: []Paragraph{{Runs: []Run{{Text: "Second slide", Size: 36}}}},
	})

	return p
}

func TestWriteProducesWellFormedPackage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, sampleDeck().Save(path))

	r, err := zip.OpenReader(path)
	require.NoError(t, err)
	defer r.Close()

	names := map[string]bool{}
	for _, f := range r.File {
		names[f.Name] = true
	}
	for _, want := range []string{
		"[Content_Types].xml",
		"_rels/.rels",
		"ppt/presentation.xml",
		"ppt/_rels/presentation.xml.rels",
		"ppt/slideMasters/slideMaster1.xml",
		"ppt/slideLayouts/slideLayout1.xml",
		"ppt/theme/theme1.xml",
		"ppt/slides/slide1.xml",
		"ppt/slides/slide2.xml",
		"ppt/slides/_rels/slide1.xml.rels",
		"docProps/core.xml",
		"docProps/app.xml",
	} {
		assert.True(t, names[want], "missing package part %s", want)
	}
}

func TestRoundTripTextAndStyles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "deck.pptx")
	require.NoError(t, sampleDeck().Save(path))

	slides, err := ExtractSlideContent(path)
	require.NoError(t, err)
	require.Len(t, slides, 2)

	first := slides[1]
	require.Len(t, first.Shapes, 2)

	body := first.Shapes[0]
	require.Len(t, body.Runs, 3)
	assert.Equal(t, "In your ", body.Runs[0].Text)
	assert.False(t, body.Runs[0].Bold)
	assert.Equal(t, 24, body.Runs[0].Size)

	assert.Equal(t, "righteousness", body.Runs[1].Text)
	assert.True(t, body.Runs[1].Bold)
	assert.Equal(t, "FF8C00", body.Runs[1].Color)

	// The escaped ampersand must decode back to its literal form.
	assert.Equal(t, ", rescue me & deliver me.", body.Runs[2].Text)

	ref := first.Shapes[1]
	require.Len(t, ref.Runs, 1)
	assert.True(t, ref.Runs[0].Italic)
	assert.Equal(t, 18, ref.Runs[0].Size)

	assert.Contains(t, slides[2].Text, "Second slide")
}

func TestSlideCount(t *testing.T) {
	p := New()
	assert.Equal(t, 0, p.SlideCount())
	p.AddSlide()
	p.AddSlide()
	assert.Equal(t, 2, p.SlideCount())
}

func TestEscapeXML(t *testing.T) {
	assert.Equal(t, "a &amp; b &lt;c&gt;", escapeXML("a & b <c>"))
}
