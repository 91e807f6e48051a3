// Package config reads map files: canvas settings, style overrides and the
// region definitions to draw.
package config

import (
	_ "embed"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"

	"regionmap/internal/region"
)

//go:embed sample.toml
var sampleTOML string

// Environment variables that override map file settings.
const (
	EnvMount  = "REGIONMAP_MOUNT"
	EnvWidth  = "REGIONMAP_WIDTH"
	EnvHeight = "REGIONMAP_HEIGHT"
)

// ErrUnknownKey is returned when a map file carries keys Load does not
// understand.
var ErrUnknownKey = errors.New("unknown key")

// Map is the decoded form of a map file.
type Map struct {
	Title        string
	Mount        string
	Width        int
	Height       int
	DefaultStyle region.Style
	HoverStyle   region.Style
	Regions      []region.Definition
}

// mapFile mirrors Map as written in TOML. Style values may be strings or
// numbers ("stroke-width = 1").
type mapFile struct {
	Title        string              `toml:"title"`
	Mount        string              `toml:"mount"`
	Width        int                 `toml:"width"`
	Height       int                 `toml:"height"`
	DefaultStyle map[string]any      `toml:"default_style"`
	HoverStyle   map[string]any      `toml:"hover_style"`
	Regions      []region.Definition `toml:"region"`
}

// styleFrom converts a decoded style table. Nil stays nil so the renderer
// falls back to its built-in style.
func styleFrom(table string, raw map[string]any) (region.Style, error) {
	if raw == nil {
		return nil, nil
	}
	st := make(region.Style, len(raw))
	for k, v := range raw {
		switch v := v.(type) {
		case string:
			st[k] = v
		case int64, float64, bool:
			st[k] = fmt.Sprint(v)
		default:
			return nil, fmt.Errorf("%s.%s: unsupported value %T", table, k, v)
		}
	}
	return st, nil
}

// Defaults fills unset canvas fields.
func (m *Map) Defaults() {
	if m.Mount == "" {
		m.Mount = "map"
	}
	if m.Width == 0 {
		m.Width = 700
	}
	if m.Height == 0 {
		m.Height = 700
	}
	if m.Title == "" {
		m.Title = "regionmap"
	}
}

// Validate checks canvas fields and region ids.
func (m *Map) Validate() error {
	if m.Width <= 0 || m.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", region.ErrInvalidSize, m.Width, m.Height)
	}
	for i, d := range m.Regions {
		if strings.TrimSpace(d.ID) == "" {
			return fmt.Errorf("region %d: empty id", i)
		}
	}
	return nil
}

// RendererConfig converts the map into a region.Config without callbacks.
func (m *Map) RendererConfig() region.Config {
	return region.Config{
		Mount:        m.Mount,
		Width:        m.Width,
		Height:       m.Height,
		DefaultStyle: m.DefaultStyle,
		HoverStyle:   m.HoverStyle,
	}
}

// Load reads a TOML map file.
func Load(path string) (*Map, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	m, err := Parse(string(b))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return m, nil
}

// Parse decodes TOML map data and applies defaults.
func Parse(data string) (*Map, error) {
	var f mapFile
	md, err := toml.Decode(data, &f)
	if err != nil {
		return nil, err
	}
	if undec := md.Undecoded(); len(undec) > 0 {
		keys := make([]string, len(undec))
		for i, k := range undec {
			keys[i] = k.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrUnknownKey, strings.Join(keys, ", "))
	}
	m := Map{
		Title:   f.Title,
		Mount:   f.Mount,
		Width:   f.Width,
		Height:  f.Height,
		Regions: f.Regions,
	}
	if m.DefaultStyle, err = styleFrom("default_style", f.DefaultStyle); err != nil {
		return nil, err
	}
	if m.HoverStyle, err = styleFrom("hover_style", f.HoverStyle); err != nil {
		return nil, err
	}
	m.Defaults()
	return &m, nil
}

// Sample returns the built-in demo map.
func Sample() *Map {
	m, err := Parse(sampleTOML)
	if err != nil {
		panic("config: bad sample map: " + err.Error())
	}
	return m
}

// ApplyEnv loads envFiles (missing files are ignored) and then applies the
// REGIONMAP_* variables on top of m.
func (m *Map) ApplyEnv(envFiles ...string) error {
	for _, f := range envFiles {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	if v := os.Getenv(EnvMount); v != "" {
		m.Mount = v
	}
	for _, kv := range []struct {
		name string
		dst  *int
	}{
		{EnvWidth, &m.Width},
		{EnvHeight, &m.Height},
	} {
		v := os.Getenv(kv.name)
		if v == "" {
			continue
		}
		n, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("%s: %w", kv.name, err)
		}
		*kv.dst = n
	}
	return nil
}
