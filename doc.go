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

// Package girih constructs repeating star patterns by the polygon-in-polygon
// method.
//
// A tiling of squares or hexagons is supplied as a list of [Polygon]s.  For
// every corner of one tile, two construction rays start at the contact
// points on the adjoining edges and are rotated inward by the crossing
// angle.  The rays meet, and the resulting segments of all corners are split
// wherever they cross each other.  This gives the [Motif], a set of
// segments in the local frame of one tile, each carrying a [SegmentID].
//
// The motif is computed once and then translated onto every tile of the
// tiling by [Instance].  An [Overlay] hides or recolors individual segments
// by their ID; since all copies of the motif share the same IDs, an overlay
// entry affects every tile.
//
// The geometric functions never modify their inputs and always return
// freshly allocated results.
package girih
