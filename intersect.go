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

	"seehuhn.de/go/geom/vec"
)

// Numerical tolerances for the intersection routines.
const (
	// DefaultParallelTolerance is the smallest absolute determinant of two
	// unit direction vectors for which rays are not considered parallel.
	// Since the determinant equals the sine of the angle between the rays,
	// this threshold does not depend on the coordinate scale.
	DefaultParallelTolerance = 1e-5

	// segmentDetThreshold is the relative threshold below which two
	// segments are treated as parallel.  It is compared against the
	// determinant divided by the product of the segment lengths.
	segmentDetThreshold = 1e-12
)

// IntersectRays returns the point where the ray starting at p1 in direction
// angle1 meets the ray starting at p2 in direction angle2.  Angles are in
// radians.
//
// If the rays are (nearly) parallel, or if the crossing point lies behind
// the start of either ray, ok is false.
func IntersectRays(p1 vec.Vec2, angle1 float64, p2 vec.Vec2, angle2 float64) (x vec.Vec2, ok bool) {
	return intersectRays(p1, angle1, p2, angle2, DefaultParallelTolerance)
}

func intersectRays(p1 vec.Vec2, angle1 float64, p2 vec.Vec2, angle2 float64, tol float64) (vec.Vec2, bool) {
	d1 := vec.Vec2{X: math.Cos(angle1), Y: math.Sin(angle1)}
	d2 := vec.Vec2{X: math.Cos(angle2), Y: math.Sin(angle2)}

	// det == 0 must be rejected even for tol == 0, since t and u would be
	// infinite
	det := cross(d1, d2)
	if det == 0 || !(math.Abs(det) >= tol) {
		return vec.Vec2{}, false
	}

	// p1 + t*d1 = p2 + u*d2
	w := p2.Sub(p1)
	t := cross(w, d2) / det
	u := cross(w, d1) / det
	if t < 0 || u < 0 {
		return vec.Vec2{}, false
	}

	return p1.Add(d1.Mul(t)), true
}

// Crossing describes where two segments intersect.
type Crossing struct {
	// Point is the intersection point.
	Point vec.Vec2

	// S and T are the positions of Point along the first and second
	// segment, where 0 is the start and 1 is the end of the segment.
	S, T float64
}

// IntersectSegments returns the intersection of the segments a and b.
//
// If the segments are parallel (this includes collinear, overlapping
// segments), or if the lines through a and b cross outside of either
// segment, ok is false.
func IntersectSegments(a, b Edge) (c Crossing, ok bool) {
	da := a.B.Sub(a.A)
	db := b.B.Sub(b.A)

	det := cross(da, db)
	scale := da.Length() * db.Length()
	if scale == 0 || !(math.Abs(det) > segmentDetThreshold*scale) {
		return Crossing{}, false
	}

	w := b.A.Sub(a.A)
	s := cross(w, db) / det
	t := cross(w, da) / det
	if s < 0 || s > 1 || t < 0 || t > 1 {
		return Crossing{}, false
	}

	return Crossing{Point: a.A.Add(da.Mul(s)), S: s, T: t}, true
}
