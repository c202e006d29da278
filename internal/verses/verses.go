// Package verses defines the input data model for a deck and the loaders
// that produce it from JSON or Markdown sources.
package verses

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
)

// Verse is a single citation: its reference, the passage text, and the
// optional terms to emphasize on the rendered slide.
type Verse struct {
	Reference  string   `json:"reference"`
	Text       string   `json:"text"`
	Highlights []string `json:"highlights,omitempty"`
}

// Section groups verses under a named divider slide. Verse order is
// significant and preserved through to the rendered deck.
type Section struct {
	Name   string  `json:"section"`
	Verses []Verse `json:"verses"`
}

// Presentation is the root input, loaded once and never mutated.
type Presentation struct {
	Title    string    `json:"presentation_title"`
	Subtitle string    `json:"presentation_subtitle"`
	Sections []Section `json:"sections"`
}

// LoadFile reads and validates a verses JSON file. A missing "sections"
// key is tolerated by substituting an empty slice; anything else that is
// malformed is an error.
func LoadFile(path string) (*Presentation, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading verses file %s: %w", path, err)
	}
	return Parse(data, path)
}

// Parse decodes verses JSON. The name is used in error messages only.
func Parse(data []byte, name string) (*Presentation, error) {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("invalid JSON in %s: %w", name, err)
	}

	var p Presentation
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, fmt.Errorf("invalid verses structure in %s: %w", name, err)
	}

	if _, ok := raw["sections"]; !ok {
		log.Printf("Warning: no 'sections' key found in %s", name)
	}
	if p.Sections == nil {
		p.Sections = []Section{}
	}
	return &p, nil
}

// SanitizeFilename reduces a presentation title to a safe file base name:
// alphanumerics, dashes and underscores survive, spaces become underscores,
// everything else is dropped. Only trailing underscores are stripped.
func SanitizeFilename(title string) string {
	var b strings.Builder
	for _, r := range title {
		switch {
		case r >= 'a' && r <= 'z', r >= 'A' && r <= 'Z', r >= '0' && r <= '9', r == '-', r == '_':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('_')
		}
	}
	name := strings.TrimRight(b.String(), "_")
	if name == "" {
		name = "presentation"
	}
	return name
}
