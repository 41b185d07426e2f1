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
	"errors"
	"math"
	"slices"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// ErrTooFewVertices is returned by [NewPolygon] if fewer than three vertices
// are given.
var ErrTooFewVertices = errors.New("polygon needs at least three vertices")

// Edge is a straight line segment from A to B.
type Edge struct {
	A, B vec.Vec2
}

// Length returns the Euclidean length of the edge.
func (e Edge) Length() float64 {
	return e.B.Sub(e.A).Length()
}

// Angle returns the direction of the edge, in radians, as measured by
// math.Atan2.
func (e Edge) Angle() float64 {
	d := e.B.Sub(e.A)
	return math.Atan2(d.Y, d.X)
}

// At returns the point at fraction t along the edge.
// At(0) is A and At(1) is B.
func (e Edge) At(t float64) vec.Vec2 {
	return lerp(e.A, e.B, t)
}

func lerp(a, b vec.Vec2, t float64) vec.Vec2 {
	return a.Add(b.Sub(a).Mul(t))
}

// Polygon is a closed polygon with a fixed vertex order.
//
// The order of the vertices determines the previous and next neighbour at
// every corner.  Polygons must be created using [NewPolygon].
type Polygon struct {
	vertices []vec.Vec2
	center   vec.Vec2
}

// NewPolygon returns a polygon with the given vertices.
// The vertex slice is copied.
func NewPolygon(vertices []vec.Vec2) (*Polygon, error) {
	if len(vertices) < 3 {
		return nil, ErrTooFewVertices
	}

	var sum vec.Vec2
	for _, v := range vertices {
		sum = sum.Add(v)
	}
	return &Polygon{
		vertices: slices.Clone(vertices),
		center:   sum.Mul(1 / float64(len(vertices))),
	}, nil
}

// Len returns the number of vertices (and edges) of the polygon.
func (p *Polygon) Len() int {
	return len(p.vertices)
}

// Vertex returns vertex i.  The index wraps around, so that Vertex(-1) is
// the last vertex.
func (p *Polygon) Vertex(i int) vec.Vec2 {
	n := len(p.vertices)
	return p.vertices[((i%n)+n)%n]
}

// Vertices returns a copy of the vertex list.
func (p *Polygon) Vertices() []vec.Vec2 {
	return slices.Clone(p.vertices)
}

// Center returns the centroid of the vertices.
func (p *Polygon) Center() vec.Vec2 {
	return p.center
}

// Edge returns edge i, from vertex i to vertex i+1.
func (p *Polygon) Edge(i int) Edge {
	return Edge{A: p.Vertex(i), B: p.Vertex(i + 1)}
}

// Edges returns all edges, including the closing edge from the last vertex
// back to the first.
func (p *Polygon) Edges() []Edge {
	edges := make([]Edge, len(p.vertices))
	for i := range edges {
		edges[i] = p.Edge(i)
	}
	return edges
}

// Translate returns a copy of the polygon, shifted by d.
func (p *Polygon) Translate(d vec.Vec2) *Polygon {
	vv := make([]vec.Vec2, len(p.vertices))
	for i, v := range p.vertices {
		vv[i] = v.Add(d)
	}
	q, _ := NewPolygon(vv) // p has at least three vertices
	return q
}

// Local returns a copy of the polygon, shifted so that its center is at the
// origin.
func (p *Polygon) Local() *Polygon {
	return p.Translate(p.center.Mul(-1))
}

// Contains reports whether q lies strictly inside the polygon.
// The polygon must be convex.
func (p *Polygon) Contains(q vec.Vec2) bool {
	sign := 0
	for i := range p.vertices {
		e := p.Edge(i)
		c := cross(e.B.Sub(e.A), q.Sub(e.A))
		switch {
		case c > 0 && sign >= 0:
			sign = 1
		case c < 0 && sign <= 0:
			sign = -1
		default:
			return false
		}
	}
	return true
}

// Bounds returns the bounding box of the polygon.
func (p *Polygon) Bounds() rect.Rect {
	b := rect.Rect{
		LLx: p.vertices[0].X, LLy: p.vertices[0].Y,
		URx: p.vertices[0].X, URy: p.vertices[0].Y,
	}
	for _, v := range p.vertices[1:] {
		b.LLx = min(b.LLx, v.X)
		b.LLy = min(b.LLy, v.Y)
		b.URx = max(b.URx, v.X)
		b.URy = max(b.URy, v.Y)
	}
	return b
}

// cross returns the z-component of the cross product a×b.
func cross(a, b vec.Vec2) float64 {
	return a.X*b.Y - a.Y*b.X
}
