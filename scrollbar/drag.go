// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/drag.go
// Summary: Drag state machine for pointer gestures on the thumb.

package scrollbar

// BeginDrag starts a thumb drag. While the drag session exists, external
// scroll notifications do not reposition the thumb (see ReportScroll). Any
// pending click-repeat session is cancelled first; the two never coexist.
func (e *Engine) BeginDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return
	}
	if _, ok := e.sess.(*dragSession); ok {
		return
	}
	if e.sess != nil {
		e.sess.cancel()
	}
	e.sess = &dragSession{}
}

// UpdateDrag moves the thumb by delta track pixels and synchronously
// repositions the view. The view delta is mapped from the delta actually
// applied after clamping, not the raw input, so dragging past the end of the
// track cannot overshoot at the mapping stage. No-op unless a drag is in
// progress.
func (e *Engine) UpdateDrag(delta float64) {
	e.mu.Lock()
	if e.closed {
		e.mu.Unlock()
		return
	}
	if _, ok := e.sess.(*dragSession); !ok {
		e.mu.Unlock()
		return
	}
	if !e.geom.Scrollable() {
		e.mu.Unlock()
		return
	}
	newThumb := clamp(e.thumbOffset+delta, 0, e.geom.TrackMaxScroll())
	applied := newThumb - e.thumbOffset
	viewDelta := e.geom.TrackToView(applied)
	e.thumbOffset = newThumb
	e.viewOffset = clamp(e.viewOffset+viewDelta, 0, e.geom.ViewMaxExtent)
	jump := e.viewOffset
	e.mu.Unlock()

	// Jump outside the lock: the view's own change notification re-enters
	// the engine through ReportScroll.
	e.view.JumpTo(jump)
}

// EndDrag finishes the drag, clearing the session so the next external
// scroll notification resynchronizes the thumb. No further offset
// computation happens here.
func (e *Engine) EndDrag() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if _, ok := e.sess.(*dragSession); ok {
		e.sess = nil
	}
}
