package launcher

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/pelletier/go-toml/v2"
	"golang.org/x/text/language"
)

const (
	defaultTPS    = 60
	defaultWidth  = 1024
	defaultHeight = 768
)

// Config configures the platform shell an application runs in.
type Config struct {
	TPS                     int          `toml:"tps"`
	ScreenClearedEveryFrame bool         `toml:"screen_cleared_every_frame"`
	RunnableOnUnfocused     bool         `toml:"runnable_on_unfocused"`
	Locale                  language.Tag `toml:"locale"`

	// Window options are only used by desktop hosts.
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	Fullscreen bool   `toml:"fullscreen"`
}

// DefaultConfig returns the configuration used when no options are given.
func DefaultConfig() Config {
	return Config{
		TPS:                     defaultTPS,
		ScreenClearedEveryFrame: true,
		Locale:                  systemLocale(),
		Title:                   "Music Craft",
		Width:                   defaultWidth,
		Height:                  defaultHeight,
		Fullscreen:              defaultFullscreen(),
	}
}

// DefaultConfigPath returns the path of the configuration file in the user
// configuration directory, or an empty string when there is none.
func DefaultConfigPath() string {
	configDir, err := os.UserConfigDir()
	if err != nil {
		return ""
	}
	return filepath.Join(configDir, "musiccraft", "config.toml")
}

// LoadConfig reads a TOML configuration file over the defaults. A missing
// file is not an error.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	if path == "" {
		return c, nil
	}

	buf, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return c, nil
	} else if err != nil {
		return c, fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := toml.Unmarshal(buf, &c); err != nil {
		return c, fmt.Errorf("failed to parse %s: %w", path, err)
	}

	if c.TPS <= 0 {
		c.TPS = defaultTPS
	}
	if c.Width <= 0 || c.Height <= 0 {
		c.Width, c.Height = defaultWidth, defaultHeight
	}
	return c, nil
}

// Apply configures the game loop.
func (c Config) Apply() {
	ebiten.SetTPS(c.TPS)
	ebiten.SetScreenClearedEveryFrame(c.ScreenClearedEveryFrame)
	ebiten.SetRunnableOnUnfocused(c.RunnableOnUnfocused)
}

// ApplyWindow configures the desktop window.
func (c Config) ApplyWindow() {
	ebiten.SetWindowTitle(c.Title)
	ebiten.SetWindowSize(c.Width, c.Height)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetFullscreen(c.Fullscreen)
}

func systemLocale() language.Tag {
	locale, err := GetLocale()
	if err != nil {
		return language.Und
	}
	return parseLocale(locale)
}

// parseLocale parses POSIX (en_US.UTF-8) and BCP 47 (en-US) locale names.
func parseLocale(locale string) language.Tag {
	locale, _, _ = strings.Cut(strings.TrimSpace(locale), ".")
	locale, _, _ = strings.Cut(locale, "@")
	if locale == "" || locale == "C" || locale == "POSIX" {
		return language.Und
	}
	tag, err := language.Parse(strings.ReplaceAll(locale, "_", "-"))
	if err != nil {
		return language.Und
	}
	return tag
}
