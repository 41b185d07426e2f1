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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"seehuhn.de/go/geom/vec"
)

func TestIntersectRays(t *testing.T) {
	x, ok := IntersectRays(vec.Vec2{X: 0, Y: 1}, 0, vec.Vec2{X: 1, Y: 0}, math.Pi/2)
	require.True(t, ok)
	assert.InDelta(t, 1, x.X, 1e-12)
	assert.InDelta(t, 1, x.Y, 1e-12)
}

func TestIntersectRaysScaleInvariant(t *testing.T) {
	for _, scale := range []float64{1e-3, 1, 1e3, 1e6} {
		p1 := vec.Vec2{X: 0, Y: scale}
		p2 := vec.Vec2{X: scale, Y: 0}
		x, ok := IntersectRays(p1, 0.1, p2, math.Pi/2)
		require.True(t, ok, "scale %g", scale)
		assert.InDelta(t, scale, x.X, 1e-9*scale)
	}
}

func TestIntersectRaysNone(t *testing.T) {
	cases := []struct {
		name string
		p1   vec.Vec2
		a1   float64
		p2   vec.Vec2
		a2   float64
	}{
		{"parallel", vec.Vec2{X: 0, Y: 0}, 0.3, vec.Vec2{X: 0, Y: 1}, 0.3},
		{"anti_parallel", vec.Vec2{X: 0, Y: 0}, 0, vec.Vec2{X: 5, Y: 1}, math.Pi},
		{"nearly_parallel", vec.Vec2{X: 0, Y: 0}, 0, vec.Vec2{X: 0, Y: 1}, 1e-7},
		{"behind_first", vec.Vec2{X: 2, Y: 1}, 0, vec.Vec2{X: 1, Y: 0}, math.Pi / 2},
		{"behind_second", vec.Vec2{X: 0, Y: 1}, 0, vec.Vec2{X: 1, Y: 2}, math.Pi / 2},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := IntersectRays(tc.p1, tc.a1, tc.p2, tc.a2)
			assert.False(t, ok)
		})
	}
}

func TestIntersectSegments(t *testing.T) {
	a := Edge{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 2, Y: 2}}
	b := Edge{A: vec.Vec2{X: 0, Y: 2}, B: vec.Vec2{X: 4, Y: -2}}
	c, ok := IntersectSegments(a, b)
	require.True(t, ok)
	assert.InDelta(t, 1, c.Point.X, 1e-12)
	assert.InDelta(t, 1, c.Point.Y, 1e-12)
	assert.InDelta(t, 0.5, c.S, 1e-12)
	assert.InDelta(t, 0.25, c.T, 1e-12)

	// touching at an end point still counts
	d := Edge{A: vec.Vec2{X: 2, Y: 2}, B: vec.Vec2{X: 3, Y: 0}}
	c, ok = IntersectSegments(a, d)
	require.True(t, ok)
	assert.InDelta(t, 1, c.S, 1e-12)
	assert.InDelta(t, 0, c.T, 1e-12)
}

func TestIntersectSegmentsNone(t *testing.T) {
	a := Edge{A: vec.Vec2{X: 0, Y: 0}, B: vec.Vec2{X: 2, Y: 0}}
	cases := []struct {
		name string
		b    Edge
	}{
		{"parallel", Edge{A: vec.Vec2{X: 0, Y: 1}, B: vec.Vec2{X: 2, Y: 1}}},
		{"collinear_overlap", Edge{A: vec.Vec2{X: 1, Y: 0}, B: vec.Vec2{X: 3, Y: 0}}},
		{"beyond_end", Edge{A: vec.Vec2{X: 3, Y: -1}, B: vec.Vec2{X: 3, Y: 1}}},
		{"short_of_line", Edge{A: vec.Vec2{X: 1, Y: 1}, B: vec.Vec2{X: 1, Y: 0.5}}},
		{"zero_length", Edge{A: vec.Vec2{X: 1, Y: 0}, B: vec.Vec2{X: 1, Y: 0}}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, ok := IntersectSegments(a, tc.b)
			assert.False(t, ok)
		})
	}
}

func TestIntersectRaysZeroTolerance(t *testing.T) {
	// exactly parallel rays never meet, even without a tolerance
	_, ok := intersectRays(vec.Vec2{X: 0, Y: 0}, 0, vec.Vec2{X: 0, Y: 1}, 0, 0)
	assert.False(t, ok)

	x, ok := intersectRays(vec.Vec2{X: 0, Y: 1}, 0, vec.Vec2{X: 1, Y: 0}, math.Pi/2, 0)
	require.True(t, ok)
	assert.InDelta(t, 1, x.X, 1e-12)
}
