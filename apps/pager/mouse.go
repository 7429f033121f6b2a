// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/mouse.go
// Summary: Mouse gesture routing into the scrollbar engine.

package pager

import (
	"math"

	"github.com/gdamore/tcell/v2"
)

// handleMouse translates tcell mouse events into engine gestures. Wheel
// scrolling goes through the view (an external scroll to the engine);
// presses on the scrollbar column become drags when they land on a thumb row
// and track presses otherwise.
func (p *Pager) handleMouse(ev *tcell.EventMouse) {
	x, y := ev.Position()
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		p.view.ScrollBy(-p.opts.WheelStep)
		return
	case buttons&tcell.WheelDown != 0:
		p.view.ScrollBy(p.opts.WheelStep)
		return
	}

	pressed := buttons&tcell.Button1 != 0
	wasPressed := p.pressed
	p.pressed = pressed

	switch {
	case pressed && !wasPressed:
		p.beginGesture(x, y)
	case pressed && wasPressed:
		if p.engine.Dragging() && y != p.lastMouseY {
			p.engine.UpdateDrag(float64(y - p.lastMouseY))
			p.lastMouseY = y
		}
	case !pressed && wasPressed:
		p.engine.EndDrag()
		p.engine.EndPress()
	}
}

// beginGesture starts a drag or a track press for a button-down on the
// scrollbar column. Rows covered by the drawn thumb start a drag; in the
// engine's finer track space a press exactly on the thumb edge would be a
// no-op, but at cell resolution the drawn thumb is the drag handle.
func (p *Pager) beginGesture(x, y int) {
	if x != p.width-1 || y >= p.contentRows() || !p.engine.Interactive() {
		return
	}
	p.lastMouseY = y
	start, size := p.thumbRows()
	if y >= start && y < start+size {
		p.engine.BeginDrag()
		return
	}
	p.engine.BeginPress(float64(y))
}

// thumbRows converts the engine's render-ready thumb offset/length to whole
// rows, keeping the thumb at least one row tall and inside the track.
func (p *Pager) thumbRows() (start, size int) {
	offset, length := p.engine.Thumb()
	size = int(math.Round(length))
	if size < 1 {
		size = 1
	}
	rows := p.contentRows()
	if size > rows {
		size = rows
	}
	start = int(math.Round(offset))
	if start < 0 {
		start = 0
	}
	if start+size > rows {
		start = rows - size
	}
	return start, size
}
