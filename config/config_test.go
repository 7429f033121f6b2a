// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: config/config_test.go
// Summary: Tests for configuration loading and defaults overlay.

package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"
)

// TestLoad_MissingFileYieldsDefaults tests that an absent config file is not
// an error.
func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "nope.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pager.Style != "catppuccin-mocha" {
		t.Errorf("style = %q, want default", cfg.Pager.Style)
	}
	if cfg.Scrollbar.MinThumbLength != 1 {
		t.Errorf("min thumb = %v, want 1", cfg.Scrollbar.MinThumbLength)
	}
}

// TestLoad_OverlaysUserValues tests that user values override defaults while
// omitted keys keep them.
func TestLoad_OverlaysUserValues(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollpager.json")
	data := `{"pager": {"style": "dracula"}, "scrollbar": {"click_delta": 5}}`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Pager.Style != "dracula" {
		t.Errorf("style = %q, want dracula", cfg.Pager.Style)
	}
	if cfg.Pager.TabWidth != 8 {
		t.Errorf("tab width = %d, want default 8", cfg.Pager.TabWidth)
	}
	if cfg.Scrollbar.ClickDelta != 5 {
		t.Errorf("click delta = %v, want 5", cfg.Scrollbar.ClickDelta)
	}
}

// TestLoad_InvalidJSON tests that a corrupt file surfaces an error.
func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "scrollpager.json")
	if err := os.WriteFile(path, []byte("{oops"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatal("expected parse error")
	}
}

// TestEngineConfig_Conversion tests the millisecond fields mapping onto
// durations.
func TestEngineConfig_Conversion(t *testing.T) {
	cfg := Default()
	cfg.Scrollbar.FirstDelayMs = 250
	cfg.Scrollbar.RepeatDelayMs = 40

	engineCfg := cfg.EngineConfig()
	if engineCfg.FirstRepeatDelay != 250*time.Millisecond {
		t.Errorf("first delay = %v, want 250ms", engineCfg.FirstRepeatDelay)
	}
	if engineCfg.RepeatDelay != 40*time.Millisecond {
		t.Errorf("repeat delay = %v, want 40ms", engineCfg.RepeatDelay)
	}
	if err := engineCfg.Validate(); err != nil {
		t.Errorf("converted config invalid: %v", err)
	}
}

// TestGlyphRunes tests the glyph accessors and their fallbacks.
func TestGlyphRunes(t *testing.T) {
	p := Pager{TrackGlyph: "▏", ThumbGlyph: ""}
	if got := p.TrackGlyphRune(); got != '▏' {
		t.Errorf("track glyph = %q, want ▏", got)
	}
	if got := p.ThumbGlyphRune(); got != '█' {
		t.Errorf("thumb glyph fallback = %q, want █", got)
	}
}
