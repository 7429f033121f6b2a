// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/render.go
// Summary: Cell rendering of document content, scrollbar column and status bar.

package pager

import (
	"fmt"

	"github.com/mattn/go-runewidth"
)

// draw repaints the whole screen: content on the left, scrollbar in the
// rightmost column, status bar on the bottom row.
func (p *Pager) draw() {
	if p.screen == nil || p.width <= 0 || p.height <= 0 {
		return
	}
	p.screen.Clear()

	p.drawContent()
	p.drawScrollbar()
	p.drawStatus()

	p.screen.Show()
}

// drawContent blits the visible document lines, truncating at the content
// width with wide-rune awareness.
func (p *Pager) drawContent() {
	top := p.view.TopLine()
	contentWidth := p.width - 1
	rows := p.contentRows()

	for row := 0; row < rows; row++ {
		idx := top + row
		if idx >= p.doc.LineCount() {
			break
		}
		col := 0
		for _, cell := range p.doc.Lines[idx] {
			w := runewidth.RuneWidth(cell.Ch)
			if w == 0 {
				continue
			}
			if col+w > contentWidth {
				break
			}
			p.screen.SetContent(col, row, cell.Ch, nil, cell.Style)
			col += w
		}
	}
}

// drawScrollbar renders the track and thumb in the rightmost column. A view
// with no overflow gets no scrollbar at all.
func (p *Pager) drawScrollbar() {
	if !p.engine.Interactive() {
		return
	}
	barX := p.width - 1
	start, size := p.thumbRows()

	for row := 0; row < p.contentRows(); row++ {
		if row >= start && row < start+size {
			p.screen.SetContent(barX, row, p.opts.ThumbGlyph, nil, p.thumbStyle)
		} else {
			p.screen.SetContent(barX, row, p.opts.TrackGlyph, nil, p.trackStyle)
		}
	}
}

// drawStatus renders the bottom status bar: file path, position and percent.
func (p *Pager) drawStatus() {
	row := p.height - 1
	top := p.view.TopLine()
	total := p.doc.LineCount()

	percent := 100
	if max := p.view.MaxScrollExtent(); max > 0 {
		percent = int(p.view.CurrentOffset() / max * 100)
	}
	text := fmt.Sprintf(" %s  %d/%d  %d%% ", p.doc.Path, top+1, total, percent)

	col := 0
	for _, r := range text {
		w := runewidth.RuneWidth(r)
		if w == 0 || col+w > p.width {
			break
		}
		p.screen.SetContent(col, row, r, nil, p.statusStyle)
		col += w
	}
	for col < p.width {
		p.screen.SetContent(col, row, ' ', nil, p.statusStyle)
		col++
	}
}
