// Package theme holds the mutable theme model: a named palette with change
// notification, JSON persistence, and a set of built-in presets.
package theme

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/jmylchreest/tincture/internal/colour"
)

// DefaultName is the name a fresh theme starts with.
const DefaultName = "My New Theme"

// Listener receives the full palette after any colour change.
type Listener func(colour.Palette)

// Theme is a named terminal colour theme. Colour mutations go through Set so
// subscribed listeners stay in sync.
type Theme struct {
	Name        string
	Description string

	mu        sync.Mutex
	colours   colour.Palette
	listeners []Listener
}

// New returns a theme populated with the default dark palette.
func New() *Theme {
	return &Theme{
		Name:    DefaultName,
		colours: colour.DefaultPalette(),
	}
}

// Subscribe registers a listener called after every palette change.
func (t *Theme) Subscribe(fn Listener) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.listeners = append(t.listeners, fn)
}

// Set updates one role and notifies listeners. The value is normalised the
// same way palette validation normalises it.
func (t *Theme) Set(role colour.Role, hex string) {
	t.mu.Lock()
	t.colours[role] = colour.Normalise(hex)
	snapshot := t.colours.Clone()
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// SetAll replaces every role present in p and notifies listeners once.
func (t *Theme) SetAll(p colour.Palette) {
	t.mu.Lock()
	for role, hex := range p {
		t.colours[role] = colour.Normalise(hex)
	}
	snapshot := t.colours.Clone()
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
}

// Colours returns a copy of the current palette.
func (t *Theme) Colours() colour.Palette {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.colours.Clone()
}

// themeFile is the on-disk JSON shape.
type themeFile struct {
	Name        string            `json:"name"`
	Description string            `json:"description"`
	Colors      map[string]string `json:"colors"`
}

// Slug returns the theme name as a filesystem-friendly token.
func (t *Theme) Slug() string {
	name := t.Name
	if name == "" {
		name = "untitled_theme"
	}
	return strings.ToLower(strings.ReplaceAll(name, " ", "_"))
}

// Save writes the theme as JSON to path, creating parent directories as
// needed.
func (t *Theme) Save(path string) error {
	t.mu.Lock()
	file := themeFile{
		Name:        t.Name,
		Description: t.Description,
		Colors:      make(map[string]string, len(t.colours)),
	}
	for role, hex := range t.colours {
		file.Colors[string(role)] = hex
	}
	t.mu.Unlock()

	data, err := json.MarshalIndent(file, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode theme: %w", err)
	}
	data = append(data, '\n')

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("failed to create theme directory: %w", err)
		}
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write theme file: %w", err)
	}
	return nil
}

// Load reads a theme JSON file into t. Fields absent from the file keep their
// current values; colours present in the file override role by role.
func (t *Theme) Load(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read theme file: %w", err)
	}

	var file themeFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse theme file %s: %w", filepath.Base(path), err)
	}

	t.mu.Lock()
	if file.Name != "" {
		t.Name = file.Name
	}
	if file.Description != "" {
		t.Description = file.Description
	}
	for role, hex := range file.Colors {
		t.colours[colour.Role(role)] = colour.Normalise(hex)
	}
	snapshot := t.colours.Clone()
	listeners := t.listeners
	t.mu.Unlock()

	for _, fn := range listeners {
		fn(snapshot)
	}
	return nil
}
