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
	"math"
	"slices"

	"seehuhn.de/go/geom/vec"
)

// DefaultSplitMargin is the default value for [Builder.SplitMargin].
const DefaultSplitMargin = 0.001

// splitMergeThreshold is the distance below which two split positions on
// the same ray are considered equal.
const splitMergeThreshold = 1e-9

// Segment is one segment of a motif.
type Segment struct {
	Edge
	ID SegmentID
}

// Motif is the set of segments generated for one tile, in the local frame of
// the tile.
type Motif struct {
	// Tile is the tile polygon, centered at the origin.
	Tile *Polygon

	// Segments lists the segments ordered by construction ray and, along each
	// ray, from the contact point outwards.
	Segments []Segment
}

// Builder computes motifs.
//
// Contact and Angle may be changed between calls to Build.  Values outside
// the documented ranges are not rejected, but may lead to empty or
// self-overlapping motifs.
type Builder struct {
	// Contact is the position of the contact points along the edges
	// adjoining a corner, as a fraction of the edge length measured from
	// the corner.  Useful values are in (0, 0.5].
	Contact float64

	// Angle is the crossing angle in degrees: the rotation of each
	// construction ray from its edge towards the inside of the tile.
	// Useful values are in (0, 90).
	Angle float64

	// ParallelTolerance is passed to the ray intersection.  Rays whose
	// directions differ by less than this (in terms of the sine of the
	// angle between them) are treated as parallel.
	ParallelTolerance float64

	// SplitMargin excludes crossings near the ends of a ray from splitting
	// it.  A crossing at position s along a ray splits the ray only if
	// SplitMargin < s < 1-SplitMargin.
	SplitMargin float64
}

// NewBuilder returns a Builder for the given contact fraction and crossing
// angle (in degrees), with default tolerances.
func NewBuilder(contact, angle float64) *Builder {
	return &Builder{
		Contact:           contact,
		Angle:             angle,
		ParallelTolerance: DefaultParallelTolerance,
		SplitMargin:       DefaultSplitMargin,
	}
}

// NewMotif computes the motif for a regular tile of the given shape and edge
// length.
func NewMotif(shape Shape, size, contact, angle float64) *Motif {
	tile := RegularPolygon(shape, size)
	if tile == nil {
		return &Motif{}
	}
	return NewBuilder(contact, angle).Build(tile)
}

// Build computes the motif for the polygon p.  The polygon is first moved so
// that its center is at the origin.
func (b *Builder) Build(p *Polygon) *Motif {
	tile := p.Local()
	rays := b.construct(tile)
	m := &Motif{
		Tile:     tile,
		Segments: splitRays(rays, b.SplitMargin),
	}
	Logger().Debug("motif built",
		"corners", tile.Len(),
		"contact", b.Contact,
		"angle", b.Angle,
		"rays", len(rays),
		"segments", len(m.Segments))
	return m
}

// constructionRay is one untrimmed segment from a contact point to the
// point where it meets the other ray of the same corner.
type constructionRay struct {
	Edge
	corner, side int
}

// construct computes the construction rays for all corners of p.
func (b *Builder) construct(p *Polygon) []constructionRay {
	theta := b.Angle * math.Pi / 180

	var rays []constructionRay
	for i := range p.Len() {
		corner := p.Vertex(i)
		v1 := p.Vertex(i - 1).Sub(corner)
		v2 := p.Vertex(i + 1).Sub(corner)

		c1 := corner.Add(v1.Mul(b.Contact))
		c2 := corner.Add(v2.Mul(b.Contact))

		ang1 := math.Atan2(v1.Y, v1.X)
		ang2 := math.Atan2(v2.Y, v2.X)

		// Rotate each ray towards the other edge, so that both point into
		// the tile.  This works for either winding order.
		diff := ang2 - ang1
		for diff <= -math.Pi {
			diff += 2 * math.Pi
		}
		for diff > math.Pi {
			diff -= 2 * math.Pi
		}
		r1, r2 := ang1+theta, ang2-theta
		if diff <= 0 {
			r1, r2 = ang1-theta, ang2+theta
		}

		x, ok := intersectRays(c1, r1, c2, r2, b.ParallelTolerance)
		if !ok {
			Logger().Debug("corner rays do not meet", "corner", i)
			continue
		}
		rays = append(rays,
			constructionRay{Edge: Edge{A: c1, B: x}, corner: i, side: 0},
			constructionRay{Edge: Edge{A: c2, B: x}, corner: i, side: 1},
		)
	}
	return rays
}

// splitRays splits every ray at all interior points where it crosses another
// ray.  The number of rays is small (two per corner), so all pairs are
// compared.
func splitRays(rays []constructionRay, margin float64) []Segment {
	splits := make([][]float64, len(rays))
	for i := range rays {
		splits[i] = []float64{0, 1}
	}
	inside := func(s float64) bool {
		return s > margin && s < 1-margin
	}
	for i := range rays {
		for j := i + 1; j < len(rays); j++ {
			c, ok := IntersectSegments(rays[i].Edge, rays[j].Edge)
			if !ok {
				continue
			}
			if inside(c.S) {
				splits[i] = append(splits[i], c.S)
			}
			if inside(c.T) {
				splits[j] = append(splits[j], c.T)
			}
		}
	}

	var segments []Segment
	for i, r := range rays {
		ss := splits[i]
		slices.Sort(ss)
		// All interior splits lie in (margin, 1-margin), so compacting
		// keeps both end points 0 and 1.
		ss = slices.CompactFunc(ss, func(a, b float64) bool {
			return math.Abs(a-b) < splitMergeThreshold
		})
		for k := 1; k < len(ss); k++ {
			segments = append(segments, Segment{
				Edge: Edge{A: r.pointAt(ss[k-1]), B: r.pointAt(ss[k])},
				ID:   SegmentID{Corner: r.corner, Side: r.side, Piece: k - 1},
			})
		}
	}
	return segments
}

// pointAt is like At, but returns the end points exactly.
func (r constructionRay) pointAt(t float64) vec.Vec2 {
	switch t {
	case 0:
		return r.A
	case 1:
		return r.B
	}
	return r.At(t)
}

// Len returns the number of segments in the motif.
func (m *Motif) Len() int {
	return len(m.Segments)
}

// IDs returns the IDs of all segments, in segment order.
func (m *Motif) IDs() []SegmentID {
	ids := make([]SegmentID, len(m.Segments))
	for i, s := range m.Segments {
		ids[i] = s.ID
	}
	return ids
}

// Lookup returns the segment with the given ID.
func (m *Motif) Lookup(id SegmentID) (Segment, bool) {
	i, found := slices.BinarySearchFunc(m.Segments, id, func(s Segment, id SegmentID) int {
		return compareIDs(s.ID, id)
	})
	if !found {
		return Segment{}, false
	}
	return m.Segments[i], true
}
