package cli

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func run(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := newRootCmd(&stdout, &stderr)
	cmd.SetArgs(append(args, "--env", filepath.Join(t.TempDir(), "none.env")))
	err := cmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeMap(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "map.toml")
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestRegionsSample(t *testing.T) {
	out, _, err := run(t, "regions")
	if err != nil {
		t.Fatalf("regions error: %v", err)
	}
	for _, want := range []string{"ID", "NW", "Archipelago"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s\n%s", want, out)
		}
	}
}

func TestExportSVG(t *testing.T) {
	path := writeMap(t, `
mount = "ru"
[[region]]
id = "A"
name = "Alpha"
polygons = ["10,10L20,10L20,20L10,20"]
`)
	out, _, err := run(t, "export", "--config", path)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	for _, want := range []string{`id="ru"`, `d="M10,10L20,10L20,20L10,20"`, `data-id="A"`} {
		if !strings.Contains(out, want) {
			t.Errorf("svg missing %s", want)
		}
	}
}

func TestExportHTMLToFile(t *testing.T) {
	dst := filepath.Join(t.TempDir(), "map.html")
	_, _, err := run(t, "export", "--html", "--title", "Demo", "-o", dst)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	b, err := os.ReadFile(dst)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if !strings.Contains(string(b), "<title>Demo</title>") {
		t.Error("html missing title")
	}
}

func TestExportReportsSkippedOutlines(t *testing.T) {
	path := writeMap(t, `
[[region]]
id = "A"
paths = ["M0,0L1,1", "not a path"]
`)
	out, logs, err := run(t, "export", "--config", path)
	if err != nil {
		t.Fatalf("export error: %v", err)
	}
	if !strings.Contains(out, `d="M0,0L1,1"`) {
		t.Error("valid outline missing from export")
	}
	if !strings.Contains(logs, "could not be drawn") {
		t.Errorf("logs missing draw warning:\n%s", logs)
	}
}

func TestLoadMapErrors(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "unknown key", body: "colour = \"red\"\n"},
		{name: "bad size", body: "width = -1\n"},
		{name: "blank id", body: "[[region]]\nid = \"\"\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, _, err := run(t, "regions", "--config", writeMap(t, tt.body)); err == nil {
				t.Error("expected an error")
			}
		})
	}

	if _, _, err := run(t, "regions", "--config", filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Error("expected an error for a missing map file")
	}
}
