// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/highlight.go
// Summary: Chroma-based syntax highlighting with enry language detection.

package pager

import (
	"log"
	"path/filepath"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/gdamore/tcell/v2"
	"github.com/go-enry/go-enry/v2"
)

// DefaultStyleName is the chroma style used when none is configured.
const DefaultStyleName = "catppuccin-mocha"

// highlightText tokenizes the whole document in one pass so the lexer sees
// full context, then splits the colored stream back into lines.
func highlightText(path, text string, styleName string) [][]Cell {
	lexer := lexerFor(path, text)
	if styleName == "" {
		styleName = DefaultStyleName
	}
	style := styles.Get(styleName)

	iterator, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.Printf("[PAGER] tokenize %s: %v, falling back to plain text", path, err)
		return plainLines(text)
	}

	var lines [][]Cell
	current := make([]Cell, 0, 80)
	for _, token := range iterator.Tokens() {
		cellStyle := tokenStyle(style, token.Type)
		for _, r := range token.Value {
			if r == '\n' {
				lines = append(lines, current)
				current = make([]Cell, 0, 80)
				continue
			}
			current = append(current, Cell{Ch: r, Style: cellStyle})
		}
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}

// lexerFor resolves a chroma lexer, preferring enry's content-aware language
// detection over a pure filename match.
func lexerFor(path, text string) chroma.Lexer {
	sample := text
	if len(sample) > 16*1024 {
		sample = sample[:16*1024]
	}
	if lang := enry.GetLanguage(filepath.Base(path), []byte(sample)); lang != "" {
		if lexer := lexers.Get(lang); lexer != nil {
			return chroma.Coalesce(lexer)
		}
	}
	if lexer := lexers.Match(filepath.Base(path)); lexer != nil {
		return chroma.Coalesce(lexer)
	}
	return lexers.Fallback
}

// tokenStyle maps a chroma token style entry to a tcell style. Only colors
// and the common attributes carry over; backgrounds stay terminal-default so
// the pager blends with the user's palette.
func tokenStyle(style *chroma.Style, tokenType chroma.TokenType) tcell.Style {
	entry := style.Get(tokenType)
	result := tcell.StyleDefault
	if entry.Colour.IsSet() {
		result = result.Foreground(tcell.NewRGBColor(
			int32(entry.Colour.Red()),
			int32(entry.Colour.Green()),
			int32(entry.Colour.Blue()),
		))
	}
	if entry.Bold == chroma.Yes {
		result = result.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		result = result.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		result = result.Underline(true)
	}
	return result
}

// plainLines splits unhighlighted text into cells with the default style.
func plainLines(text string) [][]Cell {
	var lines [][]Cell
	current := make([]Cell, 0, 80)
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, current)
			current = make([]Cell, 0, 80)
			continue
		}
		current = append(current, Cell{Ch: r, Style: tcell.StyleDefault})
	}
	if len(current) > 0 {
		lines = append(lines, current)
	}
	return lines
}
