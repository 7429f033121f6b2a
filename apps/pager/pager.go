// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/pager.go
// Summary: tcell pager application hosting the scrollbar interaction engine.

package pager

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/framegrace/texelscroll/scrollbar"
)

// Options configures a Pager instance.
type Options struct {
	// Scrollbar is the interaction engine configuration.
	Scrollbar scrollbar.Config

	// TrackGlyph and ThumbGlyph are the scrollbar column characters.
	TrackGlyph rune
	ThumbGlyph rune

	// WheelStep is how many lines one wheel notch scrolls.
	WheelStep float64

	// InitialOffset is the restored scroll position, in lines.
	InitialOffset float64
}

// DefaultOptions returns the standard pager settings. The engine defaults
// are pixel-scale; a terminal track is measured in rows, so the minimum
// thumb and the click step are rescaled accordingly.
func DefaultOptions() Options {
	sb := scrollbar.DefaultConfig()
	sb.MinThumbLength = 1
	sb.ClickDelta = 3
	return Options{
		Scrollbar:  sb,
		TrackGlyph: '│',
		ThumbGlyph: '█',
		WheelStep:  3,
	}
}

// Pager displays one document with a right-hand scrollbar column. It owns
// the tcell event loop and is the engine's rendering layer: it reports
// geometry on resize, forwards pointer gestures, and draws the thumb the
// engine computes.
type Pager struct {
	doc    *Document
	view   *docView
	engine *scrollbar.Engine
	opts   Options

	screen tcell.Screen
	width  int
	height int

	// Button state tracking, as tcell reports motion and release through the
	// same event type.
	pressed    bool
	lastMouseY int

	trackStyle  tcell.Style
	thumbStyle  tcell.Style
	statusStyle tcell.Style
}

// New creates a pager for a loaded document.
func New(doc *Document, opts Options) (*Pager, error) {
	if doc == nil {
		return nil, fmt.Errorf("pager: document must not be nil")
	}
	if opts.TrackGlyph == 0 {
		opts.TrackGlyph = '│'
	}
	if opts.ThumbGlyph == 0 {
		opts.ThumbGlyph = '█'
	}
	if opts.WheelStep <= 0 {
		opts.WheelStep = 3
	}

	view := newDocView(doc.LineCount())
	engine, err := scrollbar.New(view, opts.Scrollbar)
	if err != nil {
		return nil, err
	}

	p := &Pager{
		doc:         doc,
		view:        view,
		engine:      engine,
		opts:        opts,
		trackStyle:  tcell.StyleDefault.Foreground(tcell.ColorGray),
		thumbStyle:  tcell.StyleDefault.Foreground(tcell.ColorAqua),
		statusStyle: tcell.StyleDefault.Reverse(true),
	}
	view.SetOnScrolled(p.onScrolled)
	return p, nil
}

// Offset returns the current scroll position in lines, for persistence.
func (p *Pager) Offset() float64 {
	return p.view.CurrentOffset()
}

// Run drives the event loop until the user quits. The screen must already be
// initialized; the caller finalizes it.
func (p *Pager) Run(screen tcell.Screen) error {
	p.screen = screen
	defer p.engine.Close()

	screen.EnableMouse()
	width, height := screen.Size()
	p.resize(width, height)

	if p.opts.InitialOffset > 0 {
		p.view.JumpTo(p.opts.InitialOffset)
	}

	for {
		p.draw()

		ev := screen.PollEvent()
		if ev == nil {
			return nil
		}
		switch ev := ev.(type) {
		case *tcell.EventResize:
			width, height := ev.Size()
			p.resize(width, height)
			screen.Sync()
		case *tcell.EventKey:
			if p.handleKey(ev) {
				return nil
			}
		case *tcell.EventMouse:
			p.handleMouse(ev)
		case *tcell.EventInterrupt:
			// Posted by onScrolled; the top of the loop redraws.
		}
	}
}

// resize reports the new terminal geometry to the view and the engine. The
// bottom row is the status bar; the rest is the content viewport, whose
// height is also the scrollbar track length.
func (p *Pager) resize(width, height int) {
	p.width = width
	p.height = height
	p.view.SetViewportRows(p.contentRows())
	p.engine.SetGeometry(float64(p.contentRows()))
}

func (p *Pager) contentRows() int {
	rows := p.height - 1
	if rows < 0 {
		return 0
	}
	return rows
}

// onScrolled is the view's change notification: resynchronize the engine and
// wake the event loop for a redraw. It may run on the click-repeat timer
// goroutine, so it never touches the screen directly.
func (p *Pager) onScrolled() {
	p.engine.ReportScroll()
	if p.screen != nil {
		_ = p.screen.PostEvent(tcell.NewEventInterrupt(nil))
	}
}

// handleKey processes keyboard scrolling. Returns true to quit. All keyboard
// scrolling goes through the view, reaching the engine as external scrolls.
func (p *Pager) handleKey(ev *tcell.EventKey) bool {
	rows := float64(p.contentRows())

	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return true
	case tcell.KeyUp:
		p.view.ScrollBy(-1)
	case tcell.KeyDown:
		p.view.ScrollBy(1)
	case tcell.KeyPgUp:
		p.view.ScrollBy(-rows)
	case tcell.KeyPgDn:
		p.view.ScrollBy(rows)
	case tcell.KeyHome:
		p.view.JumpTo(0)
	case tcell.KeyEnd:
		p.view.JumpTo(p.view.MaxScrollExtent())
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return true
		case ' ':
			p.view.ScrollBy(rows)
		case 'b':
			p.view.ScrollBy(-rows)
		case 'g':
			p.view.JumpTo(0)
		case 'G':
			p.view.JumpTo(p.view.MaxScrollExtent())
		}
	}
	return false
}
