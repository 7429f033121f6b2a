// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/view.go
// Summary: Scrollable viewport over a document, implementing scrollbar.View.

package pager

import "sync"

// docView is the pager's scrollable surface: a viewport of viewportRows over
// the document's lines, with the scroll offset measured in lines. It
// implements scrollbar.View and fires onScrolled for every position change,
// whatever the cause, so the engine's sync path sees program-driven scrolls,
// keyboard scrolls and its own jumps alike.
type docView struct {
	mu           sync.Mutex
	offset       float64
	lineCount    int
	viewportRows int
	onScrolled   func()
}

func newDocView(lineCount int) *docView {
	return &docView{lineCount: lineCount}
}

// SetOnScrolled wires the change notification. Called once during setup.
func (v *docView) SetOnScrolled(fn func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.onScrolled = fn
}

// SetViewportRows updates the viewport height after a resize, re-clamping
// the offset against the new extent.
func (v *docView) SetViewportRows(rows int) {
	v.mu.Lock()
	if rows < 0 {
		rows = 0
	}
	v.viewportRows = rows
	v.offset = clampOffset(v.offset, v.maxExtentLocked())
	v.mu.Unlock()
}

// CurrentOffset implements scrollbar.View.
func (v *docView) CurrentOffset() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.offset
}

// MaxScrollExtent implements scrollbar.View.
func (v *docView) MaxScrollExtent() float64 {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.maxExtentLocked()
}

func (v *docView) maxExtentLocked() float64 {
	extent := float64(v.lineCount - v.viewportRows)
	if extent < 0 {
		return 0
	}
	return extent
}

// JumpTo implements scrollbar.View: commit the offset and fire the scroll
// notification.
func (v *docView) JumpTo(offset float64) {
	v.mu.Lock()
	offset = clampOffset(offset, v.maxExtentLocked())
	changed := offset != v.offset
	v.offset = offset
	notify := v.onScrolled
	v.mu.Unlock()

	if changed && notify != nil {
		notify()
	}
}

// ScrollBy moves the viewport by delta lines. Keyboard and wheel scrolling
// route through here, which makes them external scrolls from the engine's
// point of view.
func (v *docView) ScrollBy(delta float64) {
	v.JumpTo(v.CurrentOffset() + delta)
}

// TopLine returns the first visible document line.
func (v *docView) TopLine() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return int(v.offset)
}

func clampOffset(offset, max float64) float64 {
	if offset < 0 {
		return 0
	}
	if offset > max {
		return max
	}
	return offset
}
