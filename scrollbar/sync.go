// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/sync.go
// Summary: One-way resynchronization of the thumb from external scroll changes.

package scrollbar

// View is the scrollable surface the engine controls. It is implemented by
// the hosting widget and abstracts the view's own scrolling machinery,
// enabling testability.
type View interface {
	// CurrentOffset returns the view's authoritative scroll position.
	CurrentOffset() float64

	// MaxScrollExtent returns the maximum scrollable offset. 0 means the view
	// has no overflow.
	MaxScrollExtent() float64

	// JumpTo sets the view's scroll position immediately, without animation.
	// Implementations may notify the engine back through ReportScroll; the
	// engine tolerates that re-entry.
	JumpTo(offset float64)
}

// ReportScroll tells the engine the view's position changed. Callers invoke
// it for every change regardless of cause: program-driven scroll, keyboard,
// mouse wheel, or the engine's own JumpTo calls. The engine cannot
// distinguish the cause and does not attempt to.
//
// While a drag session is active the notification is ignored for thumb
// positioning: the drag is the sole writer of the thumb, which breaks the
// feedback loop where the jump triggered by the drag would re-trigger a
// conflicting thumb recompute. The view offset it reports becomes
// authoritative again once the drag ends.
func (e *Engine) ReportScroll() {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.syncLocked()
}

// syncLocked recomputes the thumb from the view's current position. The view
// offset is read freshly from the view, not from cached state, to tolerate
// external changes. No-op while dragging or after Close.
func (e *Engine) syncLocked() {
	if e.closed {
		return
	}
	if _, dragging := e.sess.(*dragSession); dragging {
		return
	}
	if !e.geom.Scrollable() {
		// Nothing to control; park the thumb. The caller is expected to
		// suppress rendering and interactivity entirely.
		e.thumbOffset = 0
		e.viewOffset = 0
		return
	}
	e.viewOffset = clamp(e.view.CurrentOffset(), 0, e.geom.ViewMaxExtent)
	e.thumbOffset = clamp(e.geom.ViewToTrack(e.viewOffset), 0, e.geom.TrackMaxScroll())
}
