// ABOUTME: YAML theme file loading and theme resolution by name or path
// ABOUTME: Unset palette fields inherit from DefaultPalette to ensure completeness

package theme

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// LoadFile reads a YAML theme file. Missing palette fields fall back to
// DefaultPalette values; a missing name falls back to the file name.
func LoadFile(path string) (*Theme, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading theme file: %w", err)
	}
	return Parse(data, strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
}

// Parse decodes a YAML theme document.
func Parse(data []byte, fallbackName string) (*Theme, error) {
	t := Theme{Name: fallbackName, Palette: DefaultPalette()}
	if err := yaml.Unmarshal(data, &t); err != nil {
		return nil, fmt.Errorf("parsing theme file: %w", err)
	}
	if t.Name == "" {
		t.Name = fallbackName
	}
	return &t, nil
}

// Resolve returns the built-in theme called name, or loads name as a file
// path relative to dir.
func Resolve(name, dir string) (*Theme, error) {
	if name == "" {
		return Builtin("default"), nil
	}
	if t := Builtin(name); t != nil {
		return t, nil
	}
	path := name
	if !filepath.IsAbs(path) && dir != "" {
		path = filepath.Join(dir, path)
	}
	return LoadFile(path)
}
