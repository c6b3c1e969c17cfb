package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/adrg/xdg"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/vplayer/internal/playlist"
	"github.com/llehouerou/vplayer/internal/settings"
)

type Config struct {
	Autoplay       bool    `koanf:"autoplay"`
	AutoplayMuted  bool    `koanf:"autoplay_muted"` // start muted when autoplaying
	Preload        string  `koanf:"preload"`        // "auto", "metadata" or "none"
	Loop           bool    `koanf:"loop"`
	Muted          bool    `koanf:"muted"`
	EnableCaptions bool    `koanf:"enable_captions"`
	CustomUI       bool    `koanf:"custom_ui"`
	Speed          float64 `koanf:"speed"`
	Volume         float64 `koanf:"volume"` // 0-100
	IsModal        bool    `koanf:"is_modal"`
	ModalClass     string  `koanf:"modal_class"`
	Lang           string  `koanf:"lang"`
	BookmarkURL    string  `koanf:"bookmark_url"` // shows the bookmark button when set
	Width          int     `koanf:"width"`
	Height         int     `koanf:"height"`
	Icons          string  `koanf:"icons"` // "nerd", "unicode", or "none"

	Log LogConfig `koanf:"log"`

	// Playlist items; files given on the command line are appended.
	Src []playlist.Item `koanf:"src"`

	// Settings menu schema (default: autoplay checkbox and speed dropdown)
	Settings settings.Schema `koanf:"settings"`
}

// LogConfig holds logging configuration.
type LogConfig struct {
	Level string `koanf:"level"` // logrus level name (default: "info")
	JSON  bool   `koanf:"json"`
	File  string `koanf:"file"` // default: $XDG_STATE_HOME/vplayer/vplayer.log
}

// Default returns the configuration used when no file sets a value.
func Default() *Config {
	return &Config{
		Preload: "auto",
		Speed:   1,
		Volume:  100,
		Lang:    "en",
		Icons:   "unicode",
		Log:     LogConfig{Level: "info"},
	}
}

// Load reads the standard config files.
func Load() (*Config, error) {
	return LoadFrom(getConfigPaths()...)
}

// LoadFrom reads the given TOML files in order; later files win. Missing
// files are skipped.
func LoadFrom(paths ...string) (*Config, error) {
	k := koanf.New(".")

	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
				return nil, err
			}
		}
	}

	cfg := Default()
	if err := k.Unmarshal("", cfg); err != nil {
		return nil, err
	}
	cfg.normalize()
	return cfg, nil
}

func (c *Config) normalize() {
	if c.Speed <= 0 {
		c.Speed = 1
	}
	c.Volume = max(0, min(100, c.Volume))
	if c.Lang == "" {
		c.Lang = "en"
	}
	switch c.Preload {
	case "auto", "metadata", "none":
	default:
		c.Preload = "auto"
	}
	if len(c.Settings) == 0 {
		c.Settings = settings.Default()
	}
	for i := range c.Src {
		c.Src[i].URL = expandPath(c.Src[i].URL)
		for j := range c.Src[i].Languages {
			c.Src[i].Languages[j].URL = expandPath(c.Src[i].Languages[j].URL)
		}
	}
	c.Log.File = expandPath(c.Log.File)
}

func getConfigPaths() []string {
	return []string{
		// 1. $XDG_CONFIG_HOME/vplayer/config.toml
		filepath.Join(xdg.ConfigHome, "vplayer", "config.toml"),
		// 2. ./config.toml (pwd, highest priority)
		"config.toml",
	}
}

func expandPath(path string) string {
	if path != "" && path[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, path[1:])
		}
	}
	return path
}

// HasBookmark returns true if a bookmark endpoint is configured.
func (c *Config) HasBookmark() bool {
	return strings.TrimSpace(c.BookmarkURL) != ""
}

// SetOption writes a settings menu value back by label. It reports false
// for labels the configuration does not carry or values that do not parse.
func (c *Config) SetOption(label, value string) bool {
	switch label {
	case settings.LabelAutoplay:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return false
		}
		c.Autoplay = b
	case settings.LabelSpeed:
		f, err := strconv.ParseFloat(value, 64)
		if err != nil || f <= 0 {
			return false
		}
		c.Speed = f
	case settings.LabelLang:
		if value == "" {
			return false
		}
		c.Lang = value
	default:
		return false
	}
	return true
}

// Live returns the values merged into the settings menu.
func (c *Config) Live(languages []string) settings.Live {
	return settings.Live{
		Autoplay:  c.Autoplay,
		Speed:     c.Speed,
		Lang:      c.Lang,
		Languages: languages,
	}
}
