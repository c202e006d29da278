package watcher

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MervinPraison/PraisonAIPPT/internal/config"
	"github.com/MervinPraison/PraisonAIPPT/internal/pptx"
)

func TestIsVerseSource(t *testing.T) {
	assert.True(t, isVerseSource("verses.json"))
	assert.True(t, isVerseSource("outline.MD"))
	assert.False(t, isVerseSource("deck.pptx"))
	assert.False(t, isVerseSource("notes.txt"))
}

func TestFileChecksum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f")
	require.NoError(t, os.WriteFile(path, []byte("abc"), 0644))
	// sha256("abc")
	assert.Equal(t,
		"ba7816bf8f01cfea414140de5dae2223b00361a396177a9cb410ff61f20015ad",
		fileChecksum(path))
	assert.Empty(t, fileChecksum(filepath.Join(t.TempDir(), "missing")))
}

func TestProcessFileGeneratesDeck(t *testing.T) {
	stage := t.TempDir()
	output := t.TempDir()

	source := filepath.Join(stage, "verses.json")
	require.NoError(t, os.WriteFile(source, []byte(`{
		"presentation_title": "Watch Test",
		"sections": [
			{"section": "S", "verses": [{"reference": "R 1:1", "text": "Hello there."}]}
		]
	}`), 0644))

	cfg := &config.Config{}
	cfg.Application.Storage.Stage = stage
	cfg.Application.Storage.Output = output
	cfg.Deck.MaxChars = 200

	w := New(cfg, nil, nil, nil)
	w.processFile(source)
	assert.False(t, w.IsProcessing())

	outPath := filepath.Join(output, "Watch_Test.pptx")
	slides, err := pptx.ExtractSlideContent(outPath)
	require.NoError(t, err)
	// title + section + verse
	assert.Len(t, slides, 3)
}
