// Copyright © 2025 Texelscroll contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: scrollbar/geometry.go
// Summary: Proportional mapping between view-space and track-space offsets.

package scrollbar

// Geometry holds the measured lengths the engine maps between. It is
// recomputed on every layout pass and treated as a value: copying it is cheap
// and mapping through it has no side effects.
type Geometry struct {
	// TrackLength is the usable length of the scrollbar track, with
	// perpendicular spacing already subtracted.
	TrackLength float64

	// ThumbLength is the rendered thumb length. Invariant: never exceeds
	// TrackLength.
	ThumbLength float64

	// ViewMaxExtent is the maximum scrollable offset of the view. Zero means
	// the view has no overflow and the scrollbar must not be interactive.
	ViewMaxExtent float64
}

// TrackMaxScroll returns the furthest track-space offset the thumb can take.
// Degenerate geometry (thumb longer than track) collapses to 0.
func (g Geometry) TrackMaxScroll() float64 {
	m := g.TrackLength - g.ThumbLength
	if m < 0 {
		return 0
	}
	return m
}

// Scrollable reports whether the view has any overflow to control.
func (g Geometry) Scrollable() bool {
	return g.ViewMaxExtent > 0
}

// ViewToTrack converts a view-space delta to a track-space delta. A full
// excursion of the view from 0 to ViewMaxExtent corresponds exactly to a full
// excursion of the thumb from 0 to TrackMaxScroll. When the view has no
// overflow the mapping is identically 0.
func (g Geometry) ViewToTrack(viewDelta float64) float64 {
	if g.ViewMaxExtent <= 0 {
		return 0
	}
	return viewDelta * g.TrackMaxScroll() / g.ViewMaxExtent
}

// TrackToView converts a track-space delta to a view-space delta. The inverse
// of ViewToTrack. When the thumb cannot move the mapping is identically 0.
func (g Geometry) TrackToView(trackDelta float64) float64 {
	m := g.TrackMaxScroll()
	if m <= 0 {
		return 0
	}
	return trackDelta * g.ViewMaxExtent / m
}

// autoThumbLength computes the proportional thumb length for a track: longer
// content yields a shorter thumb. The result is floored at minLength and
// capped at trackLength so the thumb always fits the track.
func autoThumbLength(trackLength, viewMaxExtent, spacing, minLength float64) float64 {
	length := trackLength
	if trackLength+viewMaxExtent > 0 {
		length = trackLength*trackLength/(trackLength+viewMaxExtent) - spacing
	}
	if length < minLength {
		length = minLength
	}
	if length > trackLength {
		length = trackLength
	}
	return length
}

// clamp bounds v to [lo, hi]. Every write to a thumb or view offset routes
// through here; callers must not re-implement bounds logic.
func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
