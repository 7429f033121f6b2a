// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/repeat.go
// Summary: Press-and-hold auto-repeat state machine for clicks on the track.

package scrollbar

import "time"

// BeginPress starts a press-and-hold on the track at the given track-space
// position. A press below the thumb steps it downward, a press above steps
// it upward; a press landing on the thumb itself, its edges included, is
// ignored (edge presses start neither a drag nor a step).
//
// The first step is performed immediately. If the thumb has not yet reached
// the press position, the next step is scheduled after FirstRepeatDelay;
// subsequent steps reschedule themselves after RepeatDelay until the thumb
// edge crosses the press position or EndPress cancels the session.
func (e *Engine) BeginPress(pos float64) {
	e.mu.Lock()
	if e.closed || !e.geom.Scrollable() {
		e.mu.Unlock()
		return
	}
	if _, ok := e.sess.(*dragSession); ok {
		e.mu.Unlock()
		return
	}
	if e.sess != nil {
		// A previous press was never released; supersede it.
		e.sess.cancel()
		e.sess = nil
	}

	var dir Direction
	switch {
	case e.thumbOffset+e.geom.ThumbLength < pos:
		dir = DirectionDown
	case e.thumbOffset > pos:
		dir = DirectionUp
	default:
		e.mu.Unlock()
		return
	}

	s := &repeatSession{target: pos, direction: dir, first: true}
	e.sess = s
	jump, ok := e.stepLocked(s)
	e.mu.Unlock()

	if ok {
		e.view.JumpTo(jump)
	}
}

// EndPress releases the press, cancelling any pending timer and discarding
// any scheduled future step. Also used for press-cancel.
func (e *Engine) EndPress() {
	e.mu.Lock()
	defer e.mu.Unlock()
	if s, ok := e.sess.(*repeatSession); ok {
		s.cancel()
		e.sess = nil
	}
}

// repeatFire is the timer callback for one scheduled step. The session is
// validated by pointer identity under the lock: once EndPress or Close has
// detached it, a late-firing timer finds a stale session and does nothing.
func (e *Engine) repeatFire(s *repeatSession) {
	e.mu.Lock()
	if e.closed || e.sess != session(s) {
		e.mu.Unlock()
		return
	}
	jump, ok := e.stepLocked(s)
	e.mu.Unlock()

	if ok {
		e.view.JumpTo(jump)
	}
}

// stepLocked performs one repeat step: move the thumb by the configured
// click delta in the press direction, clamp, map the actually-applied delta
// to a view delta, and either schedule the next step or terminate the
// session when the thumb edge has reached the press position. Returns the
// view offset to jump to. The same logic serves the immediate first step and
// every timer-triggered step.
func (e *Engine) stepLocked(s *repeatSession) (jump float64, ok bool) {
	delta := e.cfg.ClickDelta
	if s.direction == DirectionUp {
		delta = -delta
	}
	newThumb := clamp(e.thumbOffset+delta, 0, e.geom.TrackMaxScroll())
	applied := newThumb - e.thumbOffset
	viewDelta := e.geom.TrackToView(applied)
	e.thumbOffset = newThumb
	e.viewOffset = clamp(e.viewOffset+viewDelta, 0, e.geom.ViewMaxExtent)

	wasFirst := s.first
	s.first = false

	if e.repeatDoneLocked(s) {
		e.sess = nil
	} else {
		delay := e.cfg.RepeatDelay
		if wasFirst {
			delay = e.cfg.FirstRepeatDelay
		}
		s.timer = time.AfterFunc(delay, func() { e.repeatFire(s) })
	}
	return e.viewOffset, true
}

// repeatDoneLocked evaluates the stopping condition after a step: the
// session continues only while the thumb edge nearest the press position has
// not yet crossed it.
func (e *Engine) repeatDoneLocked(s *repeatSession) bool {
	switch s.direction {
	case DirectionDown:
		return e.thumbOffset+e.geom.ThumbLength >= s.target
	default:
		return e.thumbOffset <= s.target
	}
}
