// seehuhn.de/go/girih - geometric star patterns
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

package girih

import (
	"image/color"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Line is a drawable segment of a pattern, in canvas coordinates.
type Line struct {
	Edge
	ID SegmentID

	// Color is the override color from the overlay, or nil if the default
	// color should be used.
	Color color.Color

	// Hidden is set by [EditorLines] for segments hidden by the overlay.
	// Lines returned by [Instance] are never hidden.
	Hidden bool
}

// Instance places a copy of the motif at the center of every tile.
//
// Segments hidden by the overlay are omitted.  The lines are ordered by
// tile, and for each tile in the order of m.Segments.  The overlay may be
// nil.
func Instance(m *Motif, tiles []*Polygon, ov *Overlay) []Line {
	var lines []Line
	for _, tile := range tiles {
		lines = appendLines(lines, m, tile.Center(), ov, false)
	}
	return lines
}

// EditorLines returns the segments of the motif, translated to center.
// Unlike [Instance], hidden segments are included, with Hidden set.
func EditorLines(m *Motif, center vec.Vec2, ov *Overlay) []Line {
	return appendLines(nil, m, center, ov, true)
}

func appendLines(lines []Line, m *Motif, center vec.Vec2, ov *Overlay, keepHidden bool) []Line {
	for _, s := range m.Segments {
		hidden := ov.IsHidden(s.ID)
		if hidden && !keepHidden {
			continue
		}
		l := Line{
			Edge:   Edge{A: s.A.Add(center), B: s.B.Add(center)},
			ID:     s.ID,
			Hidden: hidden,
		}
		if c, ok := ov.Color(s.ID); ok {
			l.Color = c
		}
		lines = append(lines, l)
	}
	return lines
}

// Compose computes the motif for a tiling and instances it onto all tiles.
//
// The motif is built from the first tile, so that its size and orientation
// always match the tiling.  All tiles are assumed to be translates of the
// first one.  An empty tiling gives an empty motif and no lines.
func Compose(tiles []*Polygon, params Params, ov *Overlay) (*Motif, []Line) {
	if len(tiles) == 0 {
		return &Motif{}, nil
	}
	m := NewBuilder(params.Contact, params.Angle).Build(tiles[0])
	return m, Instance(m, tiles, ov)
}

// Bounds returns the bounding box of the lines.
// If lines is empty, the zero rectangle is returned.
func Bounds(lines []Line) rect.Rect {
	if len(lines) == 0 {
		return rect.Rect{}
	}
	b := rect.Rect{LLx: lines[0].A.X, LLy: lines[0].A.Y, URx: lines[0].A.X, URy: lines[0].A.Y}
	for _, l := range lines {
		for _, p := range []vec.Vec2{l.A, l.B} {
			b.LLx = min(b.LLx, p.X)
			b.LLy = min(b.LLy, p.Y)
			b.URx = max(b.URx, p.X)
			b.URy = max(b.URy, p.Y)
		}
	}
	return b
}
