// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/engine.go
// Summary: Composition root owning geometry, offsets and the interaction session.

// Package scrollbar implements the interaction engine behind a desktop-style
// scrollbar: the coordinate mapping between view-space and track-space
// offsets, the thumb drag state machine, the press-and-hold click-repeat
// state machine, and the synchronization that keeps the thumb consistent
// with externally driven scroll changes.
//
// The engine is rendering-agnostic. The hosting widget reports measured
// geometry and forwards pointer gestures and scroll notifications; the
// engine computes clamped offsets, drives the view through the View
// interface, and exposes a render-ready thumb position.
//
// Gesture callbacks are expected to arrive from a single event-handling
// goroutine. The internal lock exists to serialize them against the
// click-repeat timer, which is the only asynchronous suspension point.
package scrollbar

import (
	"fmt"
	"sync"
)

// Engine is the interaction engine for one scrollbar attached to one view.
// It is the single source of truth for the thumb offset; the drag machine,
// the click repeater and the external-scroll sync all write it through the
// engine, mutually excluded by the session field.
type Engine struct {
	cfg  Config
	view View

	mu          sync.Mutex
	geom        Geometry
	thumbOffset float64
	viewOffset  float64
	sess        session
	closed      bool
}

// New creates an engine driving the given view. The configuration is
// validated eagerly; invalid settings are rejected rather than clamped.
func New(view View, cfg Config) (*Engine, error) {
	if view == nil {
		return nil, fmt.Errorf("scrollbar: view must not be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &Engine{cfg: cfg, view: view}, nil
}

// SetGeometry reports a new track length from a layout pass. The thumb
// length is recomputed proportionally to the view's overflow, floored at
// the configured minimum. The thumb position is resynchronized to the
// view's current offset so resizes keep it correct even with no scroll
// activity.
func (e *Engine) SetGeometry(trackLength float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	extent := e.view.MaxScrollExtent()
	if extent < 0 {
		extent = 0
	}
	thumb := autoThumbLength(trackLength, extent, e.cfg.ThumbSpacing, e.cfg.MinThumbLength)
	e.setGeometryLocked(Geometry{TrackLength: trackLength, ThumbLength: thumb, ViewMaxExtent: extent})
}

// SetGeometryFixedThumb reports a layout pass with a caller-fixed thumb
// length instead of the proportional computation.
func (e *Engine) SetGeometryFixedThumb(trackLength, thumbLength float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	extent := e.view.MaxScrollExtent()
	if extent < 0 {
		extent = 0
	}
	if thumbLength > trackLength {
		thumbLength = trackLength
	}
	if thumbLength < 0 {
		thumbLength = 0
	}
	e.setGeometryLocked(Geometry{TrackLength: trackLength, ThumbLength: thumbLength, ViewMaxExtent: extent})
}

func (e *Engine) setGeometryLocked(geom Geometry) {
	e.geom = geom
	// Keep the thumb inside the (possibly shrunken) track even mid-drag,
	// when the full resync below is suppressed.
	e.thumbOffset = clamp(e.thumbOffset, 0, geom.TrackMaxScroll())
	e.syncLocked()
}

// Geometry returns the engine's current measured geometry.
func (e *Engine) Geometry() Geometry {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.geom
}

// Thumb returns the render-ready thumb offset and length, already clamped.
// The rendering layer uses these purely for drawing.
func (e *Engine) Thumb() (offset, length float64) {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.thumbOffset, e.geom.ThumbLength
}

// ViewOffset returns the engine's mirror of the view's scroll position.
func (e *Engine) ViewOffset() float64 {
	e.mu.Lock()
	defer e.mu.Unlock()
	return e.viewOffset
}

// Interactive reports whether the scrollbar has anything to control. When
// false the caller should suppress rendering and ignore pointer input.
func (e *Engine) Interactive() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	return !e.closed && e.geom.Scrollable()
}

// Dragging reports whether a thumb drag is in progress.
func (e *Engine) Dragging() bool {
	e.mu.Lock()
	defer e.mu.Unlock()
	_, ok := e.sess.(*dragSession)
	return ok
}

// Config returns the engine's immutable configuration.
func (e *Engine) Config() Config {
	return e.cfg
}

// Close tears the engine down, cancelling any pending click-repeat timer so
// a late-firing step cannot act on a detached view. The engine ignores all
// events after Close.
func (e *Engine) Close() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	e.closed = true
	if e.sess != nil {
		e.sess.cancel()
		e.sess = nil
	}
}
