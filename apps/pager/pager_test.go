// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/pager_test.go
// Summary: Tests for geometry reporting, mouse routing and scrollbar rendering.

package pager

import (
	"fmt"
	"math"
	"testing"

	"github.com/gdamore/tcell/v2"
)

// testDocument builds a plain document with the given number of lines.
func testDocument(lines int) *Document {
	doc := &Document{Path: "/tmp/test.txt"}
	for i := 0; i < lines; i++ {
		var cells []Cell
		for _, r := range fmt.Sprintf("line %d", i) {
			cells = append(cells, Cell{Ch: r, Style: tcell.StyleDefault})
		}
		doc.Lines = append(doc.Lines, cells)
	}
	return doc
}

// newTestPager builds a pager over a 30-line document with a 80x11 screen
// geometry (10 content rows, 1 status row).
func newTestPager(t *testing.T) *Pager {
	t.Helper()
	p, err := New(testDocument(30), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	p.resize(80, 11)
	return p
}

func mouseEvent(x, y int, buttons tcell.ButtonMask) *tcell.EventMouse {
	return tcell.NewEventMouse(x, y, buttons, 0)
}

// TestPager_GeometryReporting tests that a resize feeds the viewport and the
// engine consistently: 30 lines in 10 rows gives extent 20 and an
// auto-computed thumb of 10²/(10+20) rows.
func TestPager_GeometryReporting(t *testing.T) {
	p := newTestPager(t)

	if got := p.view.MaxScrollExtent(); got != 20 {
		t.Errorf("view extent = %v, want 20", got)
	}
	_, length := p.engine.Thumb()
	if math.Abs(length-10.0/3.0) > 1e-9 {
		t.Errorf("thumb length = %v, want %v", length, 10.0/3.0)
	}
	if !p.engine.Interactive() {
		t.Error("engine not interactive with overflow present")
	}
}

// TestPager_DragOnThumb tests that pressing a thumb row and moving the
// pointer drags the view proportionally.
func TestPager_DragOnThumb(t *testing.T) {
	p := newTestPager(t)
	barX := p.width - 1

	p.handleMouse(mouseEvent(barX, 1, tcell.Button1))
	if !p.engine.Dragging() {
		t.Fatal("press on thumb row did not start a drag")
	}

	p.handleMouse(mouseEvent(barX, 4, tcell.Button1))
	p.handleMouse(mouseEvent(barX, 4, tcell.ButtonNone))

	if p.engine.Dragging() {
		t.Error("release did not end the drag")
	}
	// 3 track rows over a 20/6.67 ratio → 9 lines.
	if got := p.view.CurrentOffset(); math.Abs(got-9) > 1e-9 {
		t.Errorf("view offset = %v, want 9", got)
	}
}

// TestPager_PressOnTrack tests that pressing below the thumb performs an
// immediate click-repeat step toward the press position.
func TestPager_PressOnTrack(t *testing.T) {
	p := newTestPager(t)
	barX := p.width - 1

	p.handleMouse(mouseEvent(barX, 9, tcell.Button1))
	p.handleMouse(mouseEvent(barX, 9, tcell.ButtonNone))

	// One step of 3 track rows → 9 lines of view travel.
	if got := p.view.CurrentOffset(); math.Abs(got-9) > 1e-9 {
		t.Errorf("view offset = %v, want 9", got)
	}
	thumb, _ := p.engine.Thumb()
	if math.Abs(thumb-3) > 1e-9 {
		t.Errorf("thumb offset = %v, want 3", thumb)
	}
}

// TestPager_PressOutsideBarIgnored tests that presses in the content area
// start no gesture.
func TestPager_PressOutsideBarIgnored(t *testing.T) {
	p := newTestPager(t)

	p.handleMouse(mouseEvent(10, 5, tcell.Button1))
	p.handleMouse(mouseEvent(10, 5, tcell.ButtonNone))

	if got := p.view.CurrentOffset(); got != 0 {
		t.Errorf("view offset = %v, want 0", got)
	}
}

// TestPager_WheelScrollsView tests that wheel events scroll the view and
// the engine resynchronizes the thumb through the notification path.
func TestPager_WheelScrollsView(t *testing.T) {
	p := newTestPager(t)

	p.handleMouse(mouseEvent(40, 5, tcell.WheelDown))

	if got := p.view.CurrentOffset(); got != 3 {
		t.Errorf("view offset = %v, want 3", got)
	}
	thumb, _ := p.engine.Thumb()
	if math.Abs(thumb-1) > 1e-9 {
		t.Errorf("thumb offset = %v, want 1", thumb)
	}

	p.handleMouse(mouseEvent(40, 5, tcell.WheelUp))
	if got := p.view.CurrentOffset(); got != 0 {
		t.Errorf("view offset after wheel up = %v, want 0", got)
	}
}

// TestPager_KeyboardScrolls tests the external-scroll path via keys.
func TestPager_KeyboardScrolls(t *testing.T) {
	p := newTestPager(t)

	p.handleKey(tcell.NewEventKey(tcell.KeyPgDn, 0, 0))
	if got := p.view.CurrentOffset(); got != 10 {
		t.Errorf("view offset after PgDn = %v, want 10", got)
	}

	p.handleKey(tcell.NewEventKey(tcell.KeyEnd, 0, 0))
	if got := p.view.CurrentOffset(); got != 20 {
		t.Errorf("view offset after End = %v, want 20", got)
	}

	p.handleKey(tcell.NewEventKey(tcell.KeyHome, 0, 0))
	if got := p.view.CurrentOffset(); got != 0 {
		t.Errorf("view offset after Home = %v, want 0", got)
	}
}

// TestPager_DrawScrollbarColumn tests the rendered scrollbar cells on a
// simulation screen.
func TestPager_DrawScrollbarColumn(t *testing.T) {
	p := newTestPager(t)

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 11)
	p.screen = sim
	p.resize(80, 11)

	p.draw()

	cells, width, _ := sim.GetContents()
	barX := p.width - 1
	start, size := p.thumbRows()

	for row := 0; row < p.contentRows(); row++ {
		got := cells[row*width+barX].Runes[0]
		want := p.opts.TrackGlyph
		if row >= start && row < start+size {
			want = p.opts.ThumbGlyph
		}
		if got != want {
			t.Errorf("row %d: glyph = %q, want %q", row, got, want)
		}
	}
}

// TestPager_NoScrollbarWithoutOverflow tests that a document that fits gets
// no scrollbar column.
func TestPager_NoScrollbarWithoutOverflow(t *testing.T) {
	p, err := New(testDocument(5), DefaultOptions())
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	sim := tcell.NewSimulationScreen("UTF-8")
	if err := sim.Init(); err != nil {
		t.Fatalf("init simulation screen: %v", err)
	}
	defer sim.Fini()
	sim.SetSize(80, 11)
	p.screen = sim
	p.resize(80, 11)

	if p.engine.Interactive() {
		t.Fatal("engine interactive with no overflow")
	}

	p.draw()
	cells, width, _ := sim.GetContents()
	for row := 0; row < p.contentRows(); row++ {
		if got := cells[row*width+p.width-1].Runes[0]; got != ' ' {
			t.Errorf("row %d: scrollbar cell = %q, want blank", row, got)
		}
	}
}
