//nolint:goconst // test cases intentionally repeat strings for readability
package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/llehouerou/vplayer/internal/settings"
)

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skipf("Could not get home dir: %v", err)
	}

	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "tilde expands to home",
			input:    "~/videos/clip.mp3",
			expected: filepath.Join(home, "videos", "clip.mp3"),
		},
		{
			name:     "absolute path unchanged",
			input:    "/srv/media",
			expected: "/srv/media",
		},
		{
			name:     "url unchanged",
			input:    "https://example.com/a.mp3",
			expected: "https://example.com/a.mp3",
		},
		{
			name:     "empty string unchanged",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := expandPath(tt.input)
			if result != tt.expected {
				t.Errorf("expandPath(%q) = %q, want %q", tt.input, result, tt.expected)
			}
		})
	}
}

func TestGetConfigPaths(t *testing.T) {
	paths := getConfigPaths()

	if len(paths) != 2 {
		t.Fatalf("getConfigPaths() returned %d paths, want 2", len(paths))
	}
	if paths[1] != "config.toml" {
		t.Errorf("last config path = %q, want %q", paths[1], "config.toml")
	}
	if filepath.Base(filepath.Dir(paths[0])) != "vplayer" {
		t.Errorf("first config path = %q, want a vplayer directory", paths[0])
	}
}

func TestLoadFrom_Defaults(t *testing.T) {
	cfg, err := LoadFrom(filepath.Join(t.TempDir(), "missing.toml"))
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if cfg.Autoplay || cfg.Loop || cfg.Muted || cfg.EnableCaptions || cfg.IsModal {
		t.Errorf("boolean defaults should be false: %+v", cfg)
	}
	if cfg.Preload != "auto" {
		t.Errorf("Preload = %q, want auto", cfg.Preload)
	}
	if cfg.Speed != 1 {
		t.Errorf("Speed = %v, want 1", cfg.Speed)
	}
	if cfg.Lang != "en" {
		t.Errorf("Lang = %q, want en", cfg.Lang)
	}
	if len(cfg.Src) != 0 {
		t.Errorf("Src = %v, want empty", cfg.Src)
	}
	if len(cfg.Settings) != 2 || cfg.Settings[0].Label != settings.LabelAutoplay {
		t.Errorf("Settings = %+v, want the default schema", cfg.Settings)
	}
}

func TestLoadFrom_BasicConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	configContent := `
autoplay = true
speed = 1.5
volume = 140
lang = "fr"
preload = "bogus"
bookmark_url = "https://example.com/bookmarks"

[log]
level = "debug"

[[src]]
id = "intro"
url = "~/media/intro.mp3"
[src.info]
title = "Intro"

[[src]]
id = "talk"
url = "talk.mp3"
[[src.languages]]
language = "en"
url = "talk-en.mp3"
[[src.languages]]
language = "fr"
url = "talk-fr.mp3"
`
	if err := os.WriteFile(path, []byte(configContent), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := LoadFrom(path)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}

	if !cfg.Autoplay {
		t.Error("Autoplay = false, want true")
	}
	if cfg.Speed != 1.5 {
		t.Errorf("Speed = %v, want 1.5", cfg.Speed)
	}
	if cfg.Volume != 100 {
		t.Errorf("Volume = %v, want clamped 100", cfg.Volume)
	}
	if cfg.Preload != "auto" {
		t.Errorf("Preload = %q, want auto", cfg.Preload)
	}
	if !cfg.HasBookmark() {
		t.Error("HasBookmark() = false, want true")
	}
	if cfg.Log.Level != "debug" {
		t.Errorf("Log.Level = %q, want debug", cfg.Log.Level)
	}
	if len(cfg.Src) != 2 {
		t.Fatalf("len(Src) = %d, want 2", len(cfg.Src))
	}
	home, _ := os.UserHomeDir()
	if cfg.Src[0].URL != filepath.Join(home, "media", "intro.mp3") {
		t.Errorf("Src[0].URL = %q, want expanded path", cfg.Src[0].URL)
	}
	if cfg.Src[0].Info.Title != "Intro" {
		t.Errorf("Src[0].Info.Title = %q, want Intro", cfg.Src[0].Info.Title)
	}
	if len(cfg.Src[1].Languages) != 2 || cfg.Src[1].Languages[1].Language != "fr" {
		t.Errorf("Src[1].Languages = %+v", cfg.Src[1].Languages)
	}
}

func TestLoadFrom_LaterFileWins(t *testing.T) {
	dir := t.TempDir()
	first := filepath.Join(dir, "first.toml")
	second := filepath.Join(dir, "second.toml")
	if err := os.WriteFile(first, []byte("lang = \"de\"\nautoplay = true\n"), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(second, []byte("lang = \"it\"\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	cfg, err := LoadFrom(first, second)
	if err != nil {
		t.Fatalf("LoadFrom() error = %v", err)
	}
	if cfg.Lang != "it" {
		t.Errorf("Lang = %q, want it", cfg.Lang)
	}
	if !cfg.Autoplay {
		t.Error("Autoplay from the first file should survive")
	}
}

func TestLoadFrom_InvalidToml(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	if err := os.WriteFile(path, []byte("invalid = [[["), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	if _, err := LoadFrom(path); err == nil {
		t.Error("LoadFrom() expected error for invalid TOML, got nil")
	}
}

func TestLoad_LocalConfig(t *testing.T) {
	tmpDir := t.TempDir()
	t.Chdir(tmpDir)

	if err := os.WriteFile("config.toml", []byte(`modal_class = "lightbox"`), 0o600); err != nil {
		t.Fatalf("could not write config file: %v", err)
	}

	cfg, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}
	if cfg.ModalClass != "lightbox" {
		t.Errorf("ModalClass = %q, want lightbox", cfg.ModalClass)
	}
}

func TestSetOption(t *testing.T) {
	tests := []struct {
		label string
		value string
		ok    bool
		check func(*Config) bool
	}{
		{"autoplay", "true", true, func(c *Config) bool { return c.Autoplay }},
		{"autoplay", "maybe", false, func(c *Config) bool { return !c.Autoplay }},
		{"speed", "1.5", true, func(c *Config) bool { return c.Speed == 1.5 }},
		{"speed", "-1", false, func(c *Config) bool { return c.Speed == 1 }},
		{"lang", "fr", true, func(c *Config) bool { return c.Lang == "fr" }},
		{"quality", "hd", false, func(*Config) bool { return true }},
	}
	for _, tt := range tests {
		t.Run(tt.label+"="+tt.value, func(t *testing.T) {
			c := Default()
			if got := c.SetOption(tt.label, tt.value); got != tt.ok {
				t.Errorf("SetOption(%q, %q) = %v, want %v", tt.label, tt.value, got, tt.ok)
			}
			if !tt.check(c) {
				t.Errorf("config after SetOption(%q, %q) = %+v", tt.label, tt.value, c)
			}
		})
	}
}
