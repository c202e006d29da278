package verses

import (
	"embed"
	"fmt"
	"sort"
	"strings"
)

// exampleFS carries the example decks shipped with the binary.
//
//go:embed examples/*.json
var exampleFS embed.FS

// Examples returns the names of the embedded example decks, without the
// .json extension, sorted.
func Examples() []string {
	entries, err := exampleFS.ReadDir("examples")
	if err != nil {
		return nil
	}
	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		names = append(names, strings.TrimSuffix(e.Name(), ".json"))
	}
	sort.Strings(names)
	return names
}

// Example returns the raw JSON of an embedded example deck. The .json
// extension is optional.
func Example(name string) ([]byte, error) {
	if !strings.HasSuffix(name, ".json") {
		name += ".json"
	}
	data, err := exampleFS.ReadFile("examples/" + name)
	if err != nil {
		return nil, fmt.Errorf("no embedded example %q: %w", strings.TrimSuffix(name, ".json"), err)
	}
	return data, nil
}

// LoadExample parses an embedded example deck.
func LoadExample(name string) (*Presentation, error) {
	data, err := Example(name)
	if err != nil {
		return nil, err
	}
	return Parse(data, "example:"+name)
}
