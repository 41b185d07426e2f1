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
	"bytes"
	"log/slog"
	"maps"
	"math"
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/girih/testcases"
)

// forEachCase runs f for every test case, as a subtest.
func forEachCase(t *testing.T, f func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder)) {
	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			t.Run(category+"_"+tc.Name, func(t *testing.T) {
				shape := Square
				if tc.Sides == 6 {
					shape = Hexagon
				}
				tile := RegularPolygon(shape, tc.Size).Local()
				f(t, tc, tile, NewBuilder(tc.Contact, tc.Angle))
			})
		}
	}
}

func TestBoundaryScenarioSquare(t *testing.T) {
	tile := RegularPolygon(Square, 200)
	assert.Equal(t, vec.Vec2{X: -100, Y: -100}, tile.Vertex(0))

	b := NewBuilder(0.25, 60)
	rays := b.construct(tile)
	require.Len(t, rays, 8)

	m := b.Build(tile)
	assert.Greater(t, m.Len(), len(rays), "expected at least one interior split")

	split := false
	for _, s := range m.Segments {
		if s.ID.Piece > 0 {
			split = true
		}
	}
	assert.True(t, split)
}

// TestRaysPointInward checks the turn direction rule: the two rays of every
// corner must meet inside the tile.
func TestRaysPointInward(t *testing.T) {
	cases := []struct {
		shape   Shape
		size    float64
		contact float64
		angle   float64
	}{
		{Square, 200, 0.25, 60},
		{Square, 200, 0.1, 80},
		{Hexagon, 100, 0.25, 75},
		{Hexagon, 100, 0.5, 80},
	}
	for _, tc := range cases {
		tile := RegularPolygon(tc.shape, tc.size)
		rays := NewBuilder(tc.contact, tc.angle).construct(tile)
		require.Len(t, rays, 2*tile.Len(), "%s %g°", tc.shape, tc.angle)
		for _, r := range rays {
			assert.True(t, tile.Contains(r.B), "%s %g°: corner %d meets outside at %v",
				tc.shape, tc.angle, r.corner, r.B)
		}
	}
}

// TestWindingOrder checks that reversing the vertex order of the tile gives
// the same construction rays.
func TestWindingOrder(t *testing.T) {
	for _, shape := range []Shape{Square, Hexagon} {
		tile := RegularPolygon(shape, 100)
		vv := tile.Vertices()
		slices.Reverse(vv)
		reversed, err := NewPolygon(vv)
		require.NoError(t, err)

		b := NewBuilder(0.3, 70)
		fwd := b.construct(tile)
		rev := b.construct(reversed)
		require.Len(t, rev, len(fwd))

		for _, r := range fwd {
			found := slices.ContainsFunc(rev, func(q constructionRay) bool {
				return r.A.Sub(q.A).Length() < 1e-9 && r.B.Sub(q.B).Length() < 1e-9
			})
			assert.True(t, found, "%s: ray %d/%d missing", shape, r.corner, r.side)
		}
	}
}

func TestExpectedEmpty(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		m := b.Build(tile)
		if tc.Empty {
			assert.Zero(t, m.Len())
			assert.Empty(t, b.construct(tile))
		} else {
			assert.NotZero(t, m.Len())
		}
	})
}

func TestDeterminism(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		m1 := b.Build(tile)
		m2 := NewBuilder(tc.Contact, tc.Angle).Build(tile)
		assert.Equal(t, m1.Segments, m2.Segments)
	})
}

func TestCoordinatesFinite(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		for _, s := range b.Build(tile).Segments {
			for _, p := range []vec.Vec2{s.A, s.B} {
				ok := !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
					!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
				require.True(t, ok, "segment %s: %v", s.ID, p)
			}
		}
	})
}

func TestIDsUnique(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		m := b.Build(tile)
		seen := make(map[SegmentID]bool)
		for _, id := range m.IDs() {
			assert.False(t, seen[id], "duplicate ID %s", id)
			seen[id] = true

			s, ok := m.Lookup(id)
			require.True(t, ok)
			assert.Equal(t, id, s.ID)
		}
	})
}

// TestPartition checks that the segments of every ray cover the ray exactly
// once, without gaps.
func TestPartition(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		tol := 1e-9 * tc.Size
		rays := b.construct(tile)
		segs := splitRays(rays, b.SplitMargin)

		for _, r := range rays {
			var pieces []Segment
			for _, s := range segs {
				if s.ID.Corner == r.corner && s.ID.Side == r.side {
					pieces = append(pieces, s)
				}
			}
			require.NotEmpty(t, pieces)
			assert.Equal(t, r.A, pieces[0].A)
			assert.Equal(t, r.B, pieces[len(pieces)-1].B)

			total := 0.0
			for k, s := range pieces {
				assert.Equal(t, k, s.ID.Piece)
				if k > 0 {
					assert.Equal(t, pieces[k-1].B, s.A)
				}
				total += s.Length()
			}
			assert.InDelta(t, r.Length(), total, tol)
		}
	})
}

// TestSplitAtCrossings checks that two rays which cross in their interior
// are both split at the crossing point.
func TestSplitAtCrossings(t *testing.T) {
	forEachCase(t, func(t *testing.T, tc testcases.TestCase, tile *Polygon, b *Builder) {
		tol := 1e-6 * tc.Size
		rays := b.construct(tile)
		m := b.Build(tile)

		hasEndPoint := func(r constructionRay, p vec.Vec2) bool {
			for _, s := range m.Segments {
				if s.ID.Corner != r.corner || s.ID.Side != r.side {
					continue
				}
				if s.A.Sub(p).Length() < tol || s.B.Sub(p).Length() < tol {
					return true
				}
			}
			return false
		}

		for i := range rays {
			for j := i + 1; j < len(rays); j++ {
				c, ok := IntersectSegments(rays[i].Edge, rays[j].Edge)
				if !ok {
					continue
				}
				margin := b.SplitMargin
				if c.S <= margin || c.S >= 1-margin || c.T <= margin || c.T >= 1-margin {
					continue
				}
				assert.True(t, hasEndPoint(rays[i], c.Point), "ray %d not split", i)
				assert.True(t, hasEndPoint(rays[j], c.Point), "ray %d not split", j)
			}
		}
	})
}

func TestSquareAngle45IsParallel(t *testing.T) {
	m := NewMotif(Square, 200, 0.25, 45)
	assert.Zero(t, m.Len())
	require.NotNil(t, m.Tile)
	assert.Equal(t, 4, m.Tile.Len())
}

func TestIDsStableUnderSmallChanges(t *testing.T) {
	m1 := NewMotif(Hexagon, 100, 0.25, 75)
	m2 := NewMotif(Hexagon, 100, 0.26, 75.5)
	assert.Equal(t, m1.IDs(), m2.IDs())

	// the IDs do not depend on the tile size
	m3 := NewMotif(Hexagon, 37, 0.25, 75)
	assert.Equal(t, m1.IDs(), m3.IDs())
}

func TestNewMotifUnknownShape(t *testing.T) {
	m := NewMotif(Shape(3), 100, 0.25, 75)
	assert.Zero(t, m.Len())
	assert.Empty(t, m.IDs())
}

func TestBuildLogs(t *testing.T) {
	buf := &bytes.Buffer{}
	SetLogger(slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	defer SetLogger(nil)

	NewMotif(Square, 200, 0.25, 45)
	assert.Contains(t, buf.String(), "corner rays do not meet")
	assert.Contains(t, buf.String(), "motif built")
}

func TestSegmentIDString(t *testing.T) {
	id := SegmentID{Corner: 3, Side: 1, Piece: 2}
	assert.Equal(t, 7, id.Ray())
	assert.Equal(t, "7_2", id.String())

	back, err := ParseSegmentID("7_2")
	require.NoError(t, err)
	assert.Equal(t, id, back)

	for _, bad := range []string{"", "7", "a_1", "1_b", "-1_0", "1_-2"} {
		_, err := ParseSegmentID(bad)
		assert.ErrorIs(t, err, ErrBadSegmentID, bad)
	}
}

// TestBuilderWithoutTolerance uses a Builder created as a struct literal,
// so that ParallelTolerance and SplitMargin are zero.
func TestBuilderWithoutTolerance(t *testing.T) {
	for _, shape := range []Shape{Square, Hexagon} {
		angle := 45.0
		if shape == Hexagon {
			angle = 60
		}
		b := &Builder{Contact: 0.25, Angle: angle}
		m := b.Build(RegularPolygon(shape, 200))
		for _, s := range m.Segments {
			for _, p := range []vec.Vec2{s.A, s.B} {
				ok := !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
					!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
				assert.True(t, ok, "%s: segment %s: %v", shape, s.ID, p)
			}
		}
	}
}
