package verses

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const outline = `# Evening Service

Selected readings for the week.

## Comfort

**Psalm 23:1** The **Lord** is my shepherd, I lack nothing.

**Psalm 23:4** Even though I walk through the darkest valley, I will fear no evil.

## Hope

**Romans 15:13** May the God of **hope** fill you with all **joy** and peace.
`

func TestParseMarkdownOutline(t *testing.T) {
	p, err := ParseMarkdown([]byte(outline))
	require.NoError(t, err)

	assert.Equal(t, "Evening Service", p.Title)
	assert.Equal(t, "Selected readings for the week.", p.Subtitle)
	require.Len(t, p.Sections, 2)
	assert.Equal(t, "Comfort", p.Sections[0].Name)
	require.Len(t, p.Sections[0].Verses, 2)

	v := p.Sections[0].Verses[0]
	assert.Equal(t, "Psalm 23:1", v.Reference)
	assert.Equal(t, "The Lord is my shepherd, I lack nothing.", v.Text)
	assert.Equal(t, []string{"Lord"}, v.Highlights)

	// No bold runs after the reference means no highlights.
	assert.Empty(t, p.Sections[0].Verses[1].Highlights)

	v = p.Sections[1].Verses[0]
	assert.Equal(t, []string{"hope", "joy"}, v.Highlights)
}

func TestParseMarkdownRequiresTitle(t *testing.T) {
	_, err := ParseMarkdown([]byte("just a paragraph\n"))
	assert.Error(t, err)
}

func TestParseMarkdownRequiresReference(t *testing.T) {
	_, err := ParseMarkdown([]byte("# T\n\n## S\n\nno bold reference here\n"))
	assert.Error(t, err)
}
