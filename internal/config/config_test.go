package config

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"regionmap/internal/region"
)

func TestParse(t *testing.T) {
	m, err := Parse(`
mount = "russia"
width = 900

[hover_style]
fill = "#ff0000"

[[region]]
id = "RU-MOW"
name = "Moscow"
polygons = ["10,10L20,10L20,20L10,20"]
paths = ["M1,1L2,2"]
`)
	if err != nil {
		t.Fatalf("Parse() error: %v", err)
	}
	if m.Mount != "russia" || m.Width != 900 {
		t.Errorf("canvas = %s %d, want russia 900", m.Mount, m.Width)
	}
	if m.Height != 700 {
		t.Errorf("Height = %d, want default 700", m.Height)
	}
	if m.HoverStyle[region.AttrFill] != "#ff0000" {
		t.Errorf("hover fill = %s", m.HoverStyle[region.AttrFill])
	}
	if m.DefaultStyle != nil {
		t.Errorf("DefaultStyle = %v, want nil so the renderer falls back", m.DefaultStyle)
	}
	if len(m.Regions) != 1 {
		t.Fatalf("Regions = %d, want 1", len(m.Regions))
	}
	d := m.Regions[0]
	if d.ID != "RU-MOW" || d.Name != "Moscow" || len(d.Polygons) != 1 || len(d.Paths) != 1 {
		t.Errorf("region = %+v", d)
	}
}

func TestParseStyleValues(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		want    region.Style
		wantErr bool
	}{
		{
			name: "numeric width",
			in:   "[default_style]\nfill = \"#d8d8d8\"\nstroke-width = 1\n",
			want: region.Style{region.AttrFill: "#d8d8d8", region.AttrStrokeWidth: "1"},
		},
		{
			name: "float width",
			in:   "[default_style]\nstroke-width = 0.5\n",
			want: region.Style{region.AttrStrokeWidth: "0.5"},
		},
		{
			name:    "nested table",
			in:      "[default_style.fill]\nr = 1\n",
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, err := Parse(tt.in)
			if tt.wantErr {
				if err == nil {
					t.Errorf("Parse() accepted %q", tt.in)
				}
				return
			}
			if err != nil {
				t.Fatalf("Parse() error: %v", err)
			}
			if len(m.DefaultStyle) != len(tt.want) {
				t.Fatalf("DefaultStyle = %v, want %v", m.DefaultStyle, tt.want)
			}
			for k, v := range tt.want {
				if m.DefaultStyle[k] != v {
					t.Errorf("DefaultStyle[%s] = %q, want %q", k, m.DefaultStyle[k], v)
				}
			}
		})
	}
}

func TestParseUnknownKey(t *testing.T) {
	_, err := Parse("mount = \"m\"\ncolour = \"red\"\n")
	if !errors.Is(err, ErrUnknownKey) {
		t.Errorf("Parse() error = %v, want ErrUnknownKey", err)
	}
}

func TestParseInvalidTOML(t *testing.T) {
	if _, err := Parse("mount = "); err == nil {
		t.Error("Parse() accepted invalid TOML")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Map
		wantErr bool
	}{
		{name: "ok", m: Map{Width: 1, Height: 1, Regions: []region.Definition{{ID: "a"}}}},
		{name: "no regions", m: Map{Width: 1, Height: 1}},
		{name: "bad size", m: Map{Width: 0, Height: 1}, wantErr: true},
		{name: "blank id", m: Map{Width: 1, Height: 1, Regions: []region.Definition{{ID: " "}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestSample(t *testing.T) {
	m := Sample()
	if len(m.Regions) == 0 {
		t.Fatal("sample map has no regions")
	}
	if err := m.Validate(); err != nil {
		t.Errorf("sample Validate() error: %v", err)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "map.toml")
	if err := os.WriteFile(path, []byte("[[region]]\nid = \"a\"\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load() error: %v", err)
	}
	if len(m.Regions) != 1 || m.Mount != "map" {
		t.Errorf("Load() = %+v", m)
	}

	if _, err := Load(filepath.Join(dir, "missing.toml")); !errors.Is(err, os.ErrNotExist) {
		t.Errorf("Load(missing) error = %v, want ErrNotExist", err)
	}
}

func TestApplyEnv(t *testing.T) {
	dir := t.TempDir()
	env := filepath.Join(dir, ".env")
	if err := os.WriteFile(env, []byte("REGIONMAP_WIDTH=1024\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	t.Setenv(EnvMount, "canvas")
	t.Setenv(EnvHeight, "512")
	// registered so the value loaded from the file is reset afterwards
	t.Setenv(EnvWidth, "")
	os.Unsetenv(EnvWidth)

	m := &Map{}
	m.Defaults()
	if err := m.ApplyEnv(env, filepath.Join(dir, "missing.env")); err != nil {
		t.Fatalf("ApplyEnv() error: %v", err)
	}
	if m.Mount != "canvas" || m.Width != 1024 || m.Height != 512 {
		t.Errorf("after ApplyEnv: %s %dx%d, want canvas 1024x512", m.Mount, m.Width, m.Height)
	}
}

func TestApplyEnvBadNumber(t *testing.T) {
	t.Setenv(EnvWidth, "wide")
	m := &Map{}
	if err := m.ApplyEnv(); err == nil {
		t.Error("ApplyEnv() accepted a non-numeric width")
	}
}
