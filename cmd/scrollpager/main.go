// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: cmd/scrollpager/main.go
// Summary: Terminal file pager demonstrating the scrollbar engine.

package main

import (
	"flag"
	"log"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/term"

	"github.com/framegrace/texelscroll/apps/pager"
	"github.com/framegrace/texelscroll/config"
	"github.com/framegrace/texelscroll/internal/positions"
)

func main() {
	configPath := flag.String("config", "", "path to the configuration file")
	styleName := flag.String("style", "", "chroma highlighting style override")
	noResume := flag.Bool("no-resume", false, "ignore the saved scroll position")
	flag.Parse()

	if flag.NArg() != 1 {
		log.Fatalf("usage: scrollpager [flags] FILE")
	}
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		log.Fatalf("scrollpager: stdout is not a terminal")
	}

	path, err := filepath.Abs(flag.Arg(0))
	if err != nil {
		log.Fatalf("scrollpager: %v", err)
	}

	cfgPath := *configPath
	if cfgPath == "" {
		if cfgPath, err = config.DefaultPath(); err != nil {
			log.Fatalf("scrollpager: %v", err)
		}
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.Fatalf("scrollpager: %v", err)
	}
	style := cfg.Pager.Style
	if *styleName != "" {
		style = *styleName
	}

	doc, err := pager.LoadDocument(path, style, cfg.Pager.TabWidth)
	if err != nil {
		log.Fatalf("scrollpager: %v", err)
	}

	store := openPositions()
	if store != nil {
		defer store.Close()
	}

	opts := pager.DefaultOptions()
	opts.Scrollbar = cfg.EngineConfig()
	opts.TrackGlyph = cfg.Pager.TrackGlyphRune()
	opts.ThumbGlyph = cfg.Pager.ThumbGlyphRune()
	opts.WheelStep = cfg.Pager.WheelStep
	if store != nil && !*noResume {
		if offset, ok, err := store.Get(path); err != nil {
			log.Printf("[SCROLLPAGER] load position: %v", err)
		} else if ok {
			opts.InitialOffset = offset
		}
	}

	p, err := pager.New(doc, opts)
	if err != nil {
		log.Fatalf("scrollpager: %v", err)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		log.Fatalf("scrollpager: create screen: %v", err)
	}
	if err := screen.Init(); err != nil {
		log.Fatalf("scrollpager: init screen: %v", err)
	}

	runErr := p.Run(screen)
	screen.Fini()
	if runErr != nil {
		log.Fatalf("scrollpager: %v", runErr)
	}

	if store != nil {
		if err := store.Put(path, p.Offset()); err != nil {
			log.Printf("[SCROLLPAGER] save position: %v", err)
		}
	}
}

// openPositions opens the per-user positions store. Failures degrade to a
// pager without resume support.
func openPositions() *positions.Store {
	dir, err := os.UserCacheDir()
	if err != nil {
		log.Printf("[SCROLLPAGER] no cache dir, positions disabled: %v", err)
		return nil
	}
	store, err := positions.Open(filepath.Join(dir, "texelscroll", "positions.db"))
	if err != nil {
		log.Printf("[SCROLLPAGER] positions disabled: %v", err)
		return nil
	}
	return store
}
