package core

import (
	"errors"
	"fmt"
	"os"

	"github.com/hubastard/microgrove/engine/ui"
	"gopkg.in/yaml.v3"
)

// Config for the engine run. Every field may come from an optional YAML
// file; zero values fall back to DefaultConfig.
type Config struct {
	Title      string      `yaml:"title,omitempty"`
	Width      int         `yaml:"width,omitempty"`
	Height     int         `yaml:"height,omitempty"`
	VSync      bool        `yaml:"vsync"`
	ClearColor [4]float32  `yaml:"clear_color"` // RGBA
	FontPath   string      `yaml:"font,omitempty"`
	FontSize   float32     `yaml:"font_size,omitempty"`
	LogLevel   string      `yaml:"log_level,omitempty"`
	Style      StyleConfig `yaml:"style"`
}

// StyleConfig overrides parts of the UI theme. Nil metrics keep the
// current value. Colours are keyed by role name ("text", "windowbg", ...).
type StyleConfig struct {
	Padding       *int              `yaml:"padding,omitempty"`
	Spacing       *int              `yaml:"spacing,omitempty"`
	Indent        *int              `yaml:"indent,omitempty"`
	TitleHeight   *int              `yaml:"title_height,omitempty"`
	ScrollbarSize *int              `yaml:"scrollbar_size,omitempty"`
	ThumbSize     *int              `yaml:"thumb_size,omitempty"`
	Colors        map[string][4]int `yaml:"colors,omitempty"`
}

func DefaultConfig() Config {
	return Config{
		Title:      "microgrove",
		Width:      1280,
		Height:     720,
		VSync:      true,
		ClearColor: [4]float32{90.0 / 255, 95.0 / 255, 100.0 / 255, 1},
		FontSize:   16,
		LogLevel:   "info",
	}
}

// LoadConfig reads path over the defaults. A missing file is not an
// error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("read config %q: %w", path, err)
	}
	return ParseConfig(data)
}

// ParseConfig decodes YAML over the defaults and validates the result.
func ParseConfig(data []byte) (Config, error) {
	cfg := DefaultConfig()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("parse config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return cfg, fmt.Errorf("config: window size %dx%d must be positive", cfg.Width, cfg.Height)
	}
	if cfg.FontSize <= 0 {
		return cfg, fmt.Errorf("config: font_size %v must be positive", cfg.FontSize)
	}
	for name, c := range cfg.Style.Colors {
		if _, ok := ui.ColorByName(name); !ok {
			return cfg, fmt.Errorf("config: unknown style colour %q", name)
		}
		for _, v := range c {
			if v < 0 || v > 255 {
				return cfg, fmt.Errorf("config: style colour %q channel %d out of range", name, v)
			}
		}
	}
	return cfg, nil
}

// Apply writes the overrides into s.
func (sc StyleConfig) Apply(s *ui.Style) {
	setInt(&s.Padding, sc.Padding)
	setInt(&s.Spacing, sc.Spacing)
	setInt(&s.Indent, sc.Indent)
	setInt(&s.TitleHeight, sc.TitleHeight)
	setInt(&s.ScrollbarSize, sc.ScrollbarSize)
	setInt(&s.ThumbSize, sc.ThumbSize)
	for name, c := range sc.Colors {
		if id, ok := ui.ColorByName(name); ok {
			s.Colors[id] = ui.RGBA(uint8(c[0]), uint8(c[1]), uint8(c[2]), uint8(c[3]))
		}
	}
}

// StyleConfigFrom captures every field of s, for saving a theme edited at
// runtime.
func StyleConfigFrom(s *ui.Style) StyleConfig {
	sc := StyleConfig{
		Padding:       ptr(s.Padding),
		Spacing:       ptr(s.Spacing),
		Indent:        ptr(s.Indent),
		TitleHeight:   ptr(s.TitleHeight),
		ScrollbarSize: ptr(s.ScrollbarSize),
		ThumbSize:     ptr(s.ThumbSize),
		Colors:        make(map[string][4]int, ui.ColorMax),
	}
	for id := ui.ColorID(0); id < ui.ColorMax; id++ {
		c := s.Colors[id]
		sc.Colors[id.String()] = [4]int{int(c.R), int(c.G), int(c.B), int(c.A)}
	}
	return sc
}

// MarshalStyle encodes s as the YAML "style" section.
func MarshalStyle(s *ui.Style) ([]byte, error) {
	out, err := yaml.Marshal(StyleConfigFrom(s))
	if err != nil {
		return nil, fmt.Errorf("marshal style: %w", err)
	}
	return out, nil
}

func setInt(dst *int, v *int) {
	if v != nil {
		*dst = *v
	}
}

func ptr(v int) *int { return &v }
