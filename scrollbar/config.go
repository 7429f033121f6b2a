// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/config.go
// Summary: Construction-time configuration for the interaction engine.

package scrollbar

import (
	"fmt"
	"time"
)

// Default configuration values.
const (
	// DefaultMinThumbLength is the smallest thumb the engine will compute.
	DefaultMinThumbLength = 10.0

	// DefaultClickDelta is the track-space distance one click-repeat step moves.
	DefaultClickDelta = 20.0

	// DefaultFirstRepeatDelay is the pause after the immediate first step of a
	// track press. Longer than the subsequent delay so a plain tap does not
	// accidentally double-step.
	DefaultFirstRepeatDelay = 400 * time.Millisecond

	// DefaultRepeatDelay is the pause between subsequent auto-repeat steps.
	DefaultRepeatDelay = 100 * time.Millisecond
)

// Config holds the immutable per-engine settings. All fields are validated
// eagerly at construction; invalid values are rejected, never silently
// clamped.
type Config struct {
	// Width is the scrollbar thickness across the scroll axis.
	Width float64

	// MinThumbLength floors the auto-computed thumb length.
	MinThumbLength float64

	// ClickDelta is the track-space distance moved per click-repeat step.
	ClickDelta float64

	// FirstRepeatDelay is the delay before the second step of a track press.
	FirstRepeatDelay time.Duration

	// RepeatDelay is the delay between subsequent steps of a track press.
	RepeatDelay time.Duration

	// TrackSpacing is the cross-axis inset around the track. Must be smaller
	// than Width.
	TrackSpacing float64

	// ThumbSpacing is subtracted from the auto-computed thumb length.
	ThumbSpacing float64
}

// DefaultConfig returns the standard scrollbar ergonomics.
func DefaultConfig() Config {
	return Config{
		Width:            1,
		MinThumbLength:   DefaultMinThumbLength,
		ClickDelta:       DefaultClickDelta,
		FirstRepeatDelay: DefaultFirstRepeatDelay,
		RepeatDelay:      DefaultRepeatDelay,
	}
}

// Validate checks the configuration preconditions.
func (c Config) Validate() error {
	if c.Width <= 0 {
		return fmt.Errorf("scrollbar: width must be positive, got %v", c.Width)
	}
	if c.MinThumbLength < 0 {
		return fmt.Errorf("scrollbar: min thumb length must be non-negative, got %v", c.MinThumbLength)
	}
	if c.ClickDelta < 0 {
		return fmt.Errorf("scrollbar: click delta must be non-negative, got %v", c.ClickDelta)
	}
	if c.FirstRepeatDelay < 0 {
		return fmt.Errorf("scrollbar: first repeat delay must be non-negative, got %v", c.FirstRepeatDelay)
	}
	if c.RepeatDelay < 0 {
		return fmt.Errorf("scrollbar: repeat delay must be non-negative, got %v", c.RepeatDelay)
	}
	if c.TrackSpacing < 0 {
		return fmt.Errorf("scrollbar: track spacing must be non-negative, got %v", c.TrackSpacing)
	}
	if c.ThumbSpacing < 0 {
		return fmt.Errorf("scrollbar: thumb spacing must be non-negative, got %v", c.ThumbSpacing)
	}
	if c.TrackSpacing >= c.Width {
		return fmt.Errorf("scrollbar: track spacing %v must be smaller than width %v", c.TrackSpacing, c.Width)
	}
	return nil
}
