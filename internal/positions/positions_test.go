// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: internal/positions/positions_test.go
// Summary: Tests for the scroll position store.

package positions

import (
	"path/filepath"
	"testing"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	store, err := Open(filepath.Join(t.TempDir(), "positions.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	return store
}

// TestStore_RoundTrip tests save and restore of an offset.
func TestStore_RoundTrip(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("/home/u/notes.md", 42.5); err != nil {
		t.Fatalf("Put: %v", err)
	}

	offset, ok, err := store.Get("/home/u/notes.md")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if !ok {
		t.Fatal("saved position not found")
	}
	if offset != 42.5 {
		t.Errorf("offset = %v, want 42.5", offset)
	}
}

// TestStore_MissingPath tests that an unknown path reports ok=false.
func TestStore_MissingPath(t *testing.T) {
	store := openTestStore(t)

	_, ok, err := store.Get("/never/seen")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if ok {
		t.Error("unknown path reported as found")
	}
}

// TestStore_PutReplaces tests that saving twice keeps the latest offset.
func TestStore_PutReplaces(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("/f", 10); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Put("/f", 99); err != nil {
		t.Fatalf("Put: %v", err)
	}

	offset, ok, err := store.Get("/f")
	if err != nil || !ok {
		t.Fatalf("Get: ok=%v err=%v", ok, err)
	}
	if offset != 99 {
		t.Errorf("offset = %v, want 99", offset)
	}
}

// TestStore_Forget tests removal of a saved position.
func TestStore_Forget(t *testing.T) {
	store := openTestStore(t)

	if err := store.Put("/f", 10); err != nil {
		t.Fatalf("Put: %v", err)
	}
	if err := store.Forget("/f"); err != nil {
		t.Fatalf("Forget: %v", err)
	}

	if _, ok, _ := store.Get("/f"); ok {
		t.Error("forgotten path still found")
	}
}
