// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config.go
// Summary: JSON configuration for the pager and the scrollbar engine.

package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/framegrace/texelscroll/scrollbar"
)

const configFileName = "scrollpager.json"

// Pager holds the pager application settings.
type Pager struct {
	// Style is the chroma highlighting style name.
	Style string `json:"style"`

	// TabWidth is the number of spaces a tab expands to.
	TabWidth int `json:"tab_width"`

	// TrackGlyph and ThumbGlyph are single-character scrollbar glyphs.
	TrackGlyph string `json:"track_glyph"`
	ThumbGlyph string `json:"thumb_glyph"`

	// WheelStep is how many lines one wheel notch scrolls.
	WheelStep float64 `json:"wheel_step"`
}

// Scrollbar holds the interaction engine settings. Values feed
// scrollbar.Config unchanged; invalid settings are rejected at engine
// construction, never clamped here.
type Scrollbar struct {
	ClickDelta     float64 `json:"click_delta"`
	FirstDelayMs   int     `json:"first_delay_ms"`
	RepeatDelayMs  int     `json:"repeat_delay_ms"`
	MinThumbLength float64 `json:"min_thumb_length"`
}

// Config is the full configuration file, one section per concern.
type Config struct {
	Pager     Pager     `json:"pager"`
	Scrollbar Scrollbar `json:"scrollbar"`
}

// Default returns the built-in configuration.
func Default() Config {
	sb := scrollbar.DefaultConfig()
	return Config{
		Pager: Pager{
			Style:      "catppuccin-mocha",
			TabWidth:   8,
			TrackGlyph: "│",
			ThumbGlyph: "█",
			WheelStep:  3,
		},
		// Row-scale values: a terminal track is measured in rows, not pixels.
		Scrollbar: Scrollbar{
			ClickDelta:     3,
			FirstDelayMs:   int(sb.FirstRepeatDelay / time.Millisecond),
			RepeatDelayMs:  int(sb.RepeatDelay / time.Millisecond),
			MinThumbLength: 1,
		},
	}
}

// Load reads the configuration file at path, overlaying user values on the
// defaults. A missing file yields the defaults without error.
func Load(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return cfg, fmt.Errorf("config: read %s: %w", path, err)
	}
	if err := json.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("config: parse %s: %w", path, err)
	}
	return cfg, nil
}

// DefaultPath returns the per-user configuration file location.
func DefaultPath() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("config: resolve user config dir: %w", err)
	}
	return filepath.Join(dir, "texelscroll", configFileName), nil
}

// EngineConfig converts the scrollbar section into the engine's typed
// configuration.
func (c Config) EngineConfig() scrollbar.Config {
	cfg := scrollbar.DefaultConfig()
	cfg.ClickDelta = c.Scrollbar.ClickDelta
	cfg.FirstRepeatDelay = time.Duration(c.Scrollbar.FirstDelayMs) * time.Millisecond
	cfg.RepeatDelay = time.Duration(c.Scrollbar.RepeatDelayMs) * time.Millisecond
	cfg.MinThumbLength = c.Scrollbar.MinThumbLength
	return cfg
}

// TrackGlyphRune returns the configured track glyph as a rune.
func (p Pager) TrackGlyphRune() rune { return glyph(p.TrackGlyph, '│') }

// ThumbGlyphRune returns the configured thumb glyph as a rune.
func (p Pager) ThumbGlyphRune() rune { return glyph(p.ThumbGlyph, '█') }

// glyph returns the first rune of s, or fallback when s is empty.
func glyph(s string, fallback rune) rune {
	for _, r := range s {
		return r
	}
	return fallback
}
