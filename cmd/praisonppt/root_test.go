package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCommandWiring(t *testing.T) {
	root := NewRootCmd()

	names := map[string]bool{}
	for _, c := range root.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"generate", "upload", "inspect", "examples", "library", "watch"} {
		assert.True(t, names[want], "missing subcommand %s", want)
	}
}

func TestGenerateFlagDefaults(t *testing.T) {
	cmd := newGenerateCmd()

	f := cmd.Flags().Lookup("verses")
	require.NotNil(t, f)
	assert.Equal(t, "verses.json", f.DefValue)

	require.NotNil(t, cmd.Flags().Lookup("upload"))
	require.NotNil(t, cmd.Flags().Lookup("max-chars"))
}

func TestRequireConfigBeforeLoad(t *testing.T) {
	activeCfg = nil
	_, err := requireConfig()
	assert.Error(t, err)
}
