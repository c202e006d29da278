package verses

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFullDocument(t *testing.T) {
	data := []byte(`{
		"presentation_title": "T",
		"presentation_subtitle": "S",
		"sections": [
			{"section": "One", "verses": [
				{"reference": "Ref 1:1", "text": "some text", "highlights": ["some"]}
			]}
		]
	}`)

	p, err := Parse(data, "test")
	require.NoError(t, err)
	assert.Equal(t, "T", p.Title)
	assert.Equal(t, "S", p.Subtitle)
	require.Len(t, p.Sections, 1)
	require.Len(t, p.Sections[0].Verses, 1)
	assert.Equal(t, "Ref 1:1", p.Sections[0].Verses[0].Reference)
	assert.Equal(t, []string{"some"}, p.Sections[0].Verses[0].Highlights)
}

func TestParseMissingSectionsTolerated(t *testing.T) {
	p, err := Parse([]byte(`{"presentation_title": "T"}`), "test")
	require.NoError(t, err)
	assert.NotNil(t, p.Sections)
	assert.Empty(t, p.Sections)
}

func TestParseRejectsNonObject(t *testing.T) {
	_, err := Parse([]byte(`["not", "an", "object"]`), "test")
	assert.Error(t, err)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestLoadFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "verses.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"presentation_title":"X","sections":[]}`), 0644))

	p, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "X", p.Title)
}

func TestSanitizeFilename(t *testing.T) {
	assert.Equal(t, "Gods_Promises", SanitizeFilename("God's Promises"))
	assert.Equal(t, "Why_Delay", SanitizeFilename("Why Delay?"))
	assert.Equal(t, "a-b_c", SanitizeFilename("a-b_c"))
	assert.Equal(t, "presentation", SanitizeFilename("???"))
	// A leading space survives as an underscore; only trailing ones go.
	assert.Equal(t, "_Leading", SanitizeFilename(" Leading"))
	assert.Equal(t, "Trailing", SanitizeFilename("Trailing! "))
}

func TestEmbeddedExamples(t *testing.T) {
	names := Examples()
	require.Contains(t, names, "righteousness")

	p, err := LoadExample("righteousness")
	require.NoError(t, err)
	assert.Equal(t, "Bible Verses Collection", p.Title)
	require.NotEmpty(t, p.Sections)
	assert.NotEmpty(t, p.Sections[0].Verses)

	_, err = Example("does-not-exist")
	assert.Error(t, err)
}
