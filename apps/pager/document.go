// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: apps/pager/document.go
// Summary: In-memory document model for the pager.

package pager

import (
	"fmt"
	"os"
	"strings"

	"github.com/gdamore/tcell/v2"
)

// Cell is one highlighted rune of document content.
type Cell struct {
	Ch    rune
	Style tcell.Style
}

// Document is a loaded file, split into highlighted lines. Immutable after
// load.
type Document struct {
	Path  string
	Lines [][]Cell
}

// LoadDocument reads and highlights a file. Tabs are expanded to tabWidth
// spaces so column arithmetic during rendering stays simple.
func LoadDocument(path string, styleName string, tabWidth int) (*Document, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("pager: read %s: %w", path, err)
	}
	if tabWidth <= 0 {
		tabWidth = 8
	}

	text := strings.ReplaceAll(string(data), "\t", strings.Repeat(" ", tabWidth))
	text = strings.ReplaceAll(text, "\r\n", "\n")

	lines := highlightText(path, text, styleName)
	return &Document{Path: path, Lines: lines}, nil
}

// LineCount returns the number of lines in the document.
func (d *Document) LineCount() int {
	return len(d.Lines)
}
