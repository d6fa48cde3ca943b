package config

import (
	"embed"
	"path"
	"slices"
	"strings"
)

//go:embed defaults/*.yaml
var defaultsFS embed.FS

// Variants returns the ids of every embedded variant, sorted.
func Variants() []string {
	entries, err := defaultsFS.ReadDir("defaults")
	if err != nil {
		return nil
	}
	ids := make([]string, 0, len(entries))
	for _, e := range entries {
		if id, ok := strings.CutSuffix(e.Name(), ".yaml"); ok {
			ids = append(ids, id)
		}
	}
	slices.Sort(ids)
	return ids
}

// GetDefaultYAML returns the embedded default YAML for a variant.
func GetDefaultYAML(variant string) []byte {
	data, err := defaultsFS.ReadFile(path.Join("defaults", variant+".yaml"))
	if err != nil {
		return nil
	}
	return data
}
