package presets

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"slices"
	"strings"
)

//go:embed configs/*.yaml
var Presets embed.FS

const presetsFolder = "configs"

// Reads the preset with the given name. The extension is optional.
// Returns the content and the file name of the preset.
func Read(name string) ([]byte, string, error) {
	fileName := name
	if path.Ext(fileName) == "" {
		fileName += ".yaml"
	}
	content, err := Presets.ReadFile(path.Join(presetsFolder, fileName))
	if err != nil {
		return nil, "", fmt.Errorf("preset '%s' not found: %w", name, err)
	}
	return content, fileName, nil
}

// Gets the names of all available presets, sorted.
func Names() ([]string, error) {
	entries, err := fs.ReadDir(Presets, presetsFolder)
	if err != nil {
		return nil, err
	}
	names := []string{}
	for _, entry := range entries {
		if !entry.IsDir() {
			names = append(names, strings.TrimSuffix(entry.Name(), path.Ext(entry.Name())))
		}
	}
	slices.Sort(names)
	return names, nil
}
