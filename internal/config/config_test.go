package config

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestLoadDefaults(t *testing.T) {
	cfg, path, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if path != "" {
		t.Errorf("path = %q, want empty", path)
	}
	if cfg.Surface != Default().Surface || cfg.UI != Default().UI {
		t.Errorf("cfg = %+v, want defaults", cfg)
	}
	if cfg.LogoDuration() != 3*time.Second {
		t.Errorf("LogoDuration = %v, want 3s", cfg.LogoDuration())
	}
}

func TestLoadFormats(t *testing.T) {
	tests := []struct {
		name    string
		file    string
		content string
	}{
		{
			name: "toml",
			file: FileTOML,
			content: `
[surface]
width = 1920.0
height = 1080.0

[ui]
target_fps = 30
logo_duration_ms = 1500

[boot]
path = "games/demo.elf"
`,
		},
		{
			name: "yaml",
			file: FileYAML,
			content: `
surface:
  width: 1920.0
  height: 1080.0
ui:
  target_fps: 30
  logo_duration_ms: 1500
boot:
  path: games/demo.elf
`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			want := writeFile(t, dir, tt.file, tt.content)

			cfg, path, err := Load(dir)
			if err != nil {
				t.Fatalf("Load: %v", err)
			}
			if path != want {
				t.Errorf("path = %q, want %q", path, want)
			}
			if cfg.Surface.Width != 1920 || cfg.Surface.Height != 1080 {
				t.Errorf("surface = %+v", cfg.Surface)
			}
			if cfg.Surface.DPI != 96 {
				t.Errorf("dpi = %v, want default 96", cfg.Surface.DPI)
			}
			if cfg.UI.TargetFPS != 30 || cfg.LogoDuration() != 1500*time.Millisecond {
				t.Errorf("ui = %+v", cfg.UI)
			}
			if cfg.Boot.Path != "games/demo.elf" {
				t.Errorf("boot path = %q", cfg.Boot.Path)
			}
		})
	}
}

func TestLoadSearchOrder(t *testing.T) {
	first := t.TempDir()
	second := t.TempDir()
	writeFile(t, first, FileYAML, "ui:\n  target_fps: 24\n")
	writeFile(t, second, FileTOML, "[ui]\ntarget_fps = 120\n")

	cfg, _, err := Load(first, second)
	if err != nil {
		t.Fatal(err)
	}
	if cfg.UI.TargetFPS != 24 {
		t.Errorf("target_fps = %d, want 24 from the first directory", cfg.UI.TargetFPS)
	}

	writeFile(t, first, FileTOML, "[ui]\ntarget_fps = 48\n")
	cfg, _, _ = Load(first, second)
	if cfg.UI.TargetFPS != 48 {
		t.Errorf("target_fps = %d, want toml to win over yaml", cfg.UI.TargetFPS)
	}

	cfg, path, _ := Load("", t.TempDir(), second)
	if cfg.UI.TargetFPS != 120 || filepath.Dir(path) != second {
		t.Errorf("fallback loaded %q with fps %d", path, cfg.UI.TargetFPS)
	}
}

func TestLoadParseError(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, FileTOML, "[ui\ntarget_fps = ")

	_, _, err := Load(dir)
	if err == nil {
		t.Fatal("expected parse error")
	}
	if !strings.Contains(err.Error(), FileTOML) {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestSaveRoundTrip(t *testing.T) {
	for _, name := range []string{FileTOML, FileYAML} {
		t.Run(name, func(t *testing.T) {
			cfg := Default()
			cfg.Boot.Path = "/opt/game.elf"
			cfg.UI.Debug = true
			cfg.Resources.Fonts["mono"] = "fonts/mono.ttf"

			path := filepath.Join(t.TempDir(), name)
			if err := Save(cfg, path); err != nil {
				t.Fatalf("Save: %v", err)
			}
			got, err := LoadFile(path)
			if err != nil {
				t.Fatalf("LoadFile: %v", err)
			}
			if got.Boot != cfg.Boot || got.UI != cfg.UI || got.Surface != cfg.Surface {
				t.Errorf("round trip = %+v, want %+v", got, cfg)
			}
			if got.Resources.Fonts["mono"] != "fonts/mono.ttf" {
				t.Errorf("fonts = %v", got.Resources.Fonts)
			}
		})
	}

	if err := Save(Default(), filepath.Join(t.TempDir(), "nucleus.ini")); err == nil {
		t.Error("Save accepted an unknown extension")
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Errorf("default config invalid: %v", err)
	}

	cfg := Default()
	cfg.Surface.Width = 0
	cfg.Surface.DPI = -1
	cfg.UI.TargetFPS = 0
	err := cfg.Validate()
	if err == nil {
		t.Fatal("expected validation errors")
	}
	for _, want := range []string{"surface size", "dpi", "target_fps"} {
		if !strings.Contains(err.Error(), want) {
			t.Errorf("error %q does not mention %s", err, want)
		}
	}
}

func TestResolvePath(t *testing.T) {
	tests := []struct {
		config, p, want string
	}{
		{"/etc/nucleus/nucleus.toml", "theme.toml", "/etc/nucleus/theme.toml"},
		{"/etc/nucleus/nucleus.toml", "/abs/theme.toml", "/abs/theme.toml"},
		{"", "resources", "resources"},
		{"/etc/nucleus/nucleus.toml", "", ""},
	}
	for _, tt := range tests {
		if got := ResolvePath(tt.config, tt.p); got != filepath.FromSlash(tt.want) {
			t.Errorf("ResolvePath(%q, %q) = %q, want %q", tt.config, tt.p, got, tt.want)
		}
	}
}
