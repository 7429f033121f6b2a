// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/session.go
// Summary: Tagged interaction session making drag/click-repeat mutual exclusion structural.

package scrollbar

import "time"

// Direction is the travel direction of a click-repeat session along the track.
type Direction int

const (
	// DirectionUp steps the thumb toward track offset 0.
	DirectionUp Direction = iota
	// DirectionDown steps the thumb toward TrackMaxScroll.
	DirectionDown
)

func (d Direction) String() string {
	if d == DirectionUp {
		return "up"
	}
	return "down"
}

// session is the active interaction, if any. At most one session exists at a
// time; a dragSession and a repeatSession never coexist. Modeling this as a
// single field rather than independent booleans makes the mutual-exclusion
// invariant structural.
type session interface {
	// cancel releases any pending resource held by the session. Called with
	// the engine lock held.
	cancel()
}

// dragSession marks a pointer drag in progress on the thumb. While it exists,
// external scroll notifications must not reposition the thumb.
type dragSession struct{}

func (*dragSession) cancel() {}

// repeatSession is a press-and-hold on the track. It owns the pending
// one-shot timer for the next step; the timer callback validates the session
// by pointer identity under the engine lock, so a timer that fires after
// cancellation is a guaranteed no-op even when Stop loses the race.
type repeatSession struct {
	target    float64
	direction Direction
	first     bool
	timer     *time.Timer
}

func (s *repeatSession) cancel() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
}
