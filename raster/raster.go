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

// Package raster converts pattern lines and tile outlines into per-pixel
// coverage values.
//
// Coverage is the fraction of a pixel's area covered by a shape, ranging
// from 0 (outside) to 1 (inside).  Coverage values are delivered
// row by row through an emit callback, so that the caller can composite them
// in whatever color it likes.
package raster

import (
	"cmp"
	"math"
	"slices"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// EmitFunc receives the coverage values for pixels xMin, xMin+1, ... of
// row y.  The coverage slice is only valid during the call.
type EmitFunc func(y, xMin int, coverage []float32)

// edge is a line segment in device coordinates.
type edge struct {
	x0, y0 float64
	x1, y1 float64
	dxdy   float64 // (x1-x0)/(y1-y0)
}

// Rasterizer computes coverage values for filled paths and stroked lines.
// Internal buffers are reused between calls.
//
// A Rasterizer is not safe for concurrent use.
type Rasterizer struct {
	// CTM transforms from user space to device space.  Must be
	// non-singular.
	CTM matrix.Matrix

	// Clip bounds output to this device-coordinate rectangle.
	// Coordinates must be integer-aligned.
	Clip rect.Rect

	// Flatness controls the accuracy of curve and arc approximation, in
	// device pixels.  Must be positive.
	Flatness float64

	// Width is the line width for StrokeLine, in user space units.
	Width float64

	// Cap is the style used for line ends.
	Cap graphics.LineCapStyle

	// Dash specifies alternating on/off lengths in user-space units.
	// Nil means solid lines.
	Dash []float64

	// DashPhase offsets into the dash pattern, in user-space units.
	DashPhase float64

	edges   []edge
	active  []int
	cover   []float32 // signed vertical extent of edges, per pixel
	area    []float32 // cover weighted by horizontal position, per pixel
	outline path.Data

	bboxEmpty        bool
	xMinDev, xMaxDev float64
	yMinDev, yMaxDev float64
}

// NewRasterizer returns a Rasterizer with the given clip rectangle,
// an identity CTM, unit line width and round line caps.
func NewRasterizer(clip rect.Rect) *Rasterizer {
	return &Rasterizer{
		CTM:      matrix.Identity,
		Clip:     clip,
		Flatness: defaultFlatness,
		Width:    1,
		Cap:      graphics.LineCapRound,
	}
}

// FillNonZero fills the path using the nonzero winding rule.
func (r *Rasterizer) FillNonZero(p *path.Data, emit EmitFunc) {
	r.collectEdges(p)
	xMin, xMax, yMin, yMax, ok := r.deviceBounds()
	if !ok {
		return
	}
	r.scan(xMin, xMax, yMin, yMax, emit)
}

// collectEdges walks the path and builds the device-space edge list.
func (r *Rasterizer) collectEdges(p *path.Data) {
	r.edges = r.edges[:0]
	r.bboxEmpty = true

	var current, start vec.Vec2
	k := 0
	for _, cmd := range p.Cmds {
		switch cmd {
		case path.CmdMoveTo:
			if current != start {
				r.addEdge(current, start)
			}
			current = p.Coords[k]
			start = current
			k++
		case path.CmdLineTo:
			r.addEdge(current, p.Coords[k])
			current = p.Coords[k]
			k++
		case path.CmdQuadTo:
			r.flattenQuadratic(current, p.Coords[k], p.Coords[k+1])
			current = p.Coords[k+1]
			k += 2
		case path.CmdCubeTo:
			r.flattenCubic(current, p.Coords[k], p.Coords[k+1], p.Coords[k+2])
			current = p.Coords[k+2]
			k += 3
		case path.CmdClose:
			if current != start {
				r.addEdge(current, start)
			}
			current = start
		}
	}
	// Filling closes open subpaths implicitly.
	if current != start {
		r.addEdge(current, start)
	}
}

// apply maps a point from user space to device space.
func (r *Rasterizer) apply(p vec.Vec2) vec.Vec2 {
	m := r.CTM
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// deviceLength returns the larger of the device-space lengths of the user
// space vectors (d,0) and (0,d).
func (r *Rasterizer) deviceLength(d float64) float64 {
	m := r.CTM
	return max(math.Hypot(m[0]*d, m[1]*d), math.Hypot(m[2]*d, m[3]*d))
}

// addEdge adds the user space segment p0-p1 to the edge list.
func (r *Rasterizer) addEdge(p0, p1 vec.Vec2) {
	a := r.apply(p0)
	b := r.apply(p1)

	dy := b.Y - a.Y
	if math.Abs(dy) < horizontalEdgeThreshold {
		// horizontal edges do not contribute to coverage
		return
	}
	r.edges = append(r.edges, edge{
		x0: a.X, y0: a.Y,
		x1: b.X, y1: b.Y,
		dxdy: (b.X - a.X) / dy,
	})

	if r.bboxEmpty {
		r.xMinDev, r.xMaxDev = a.X, a.X
		r.yMinDev, r.yMaxDev = a.Y, a.Y
		r.bboxEmpty = false
	}
	r.xMinDev = min(r.xMinDev, a.X, b.X)
	r.xMaxDev = max(r.xMaxDev, a.X, b.X)
	r.yMinDev = min(r.yMinDev, a.Y, b.Y)
	r.yMaxDev = max(r.yMaxDev, a.Y, b.Y)
}

// flattenQuadratic approximates a quadratic Bézier curve by edges.
func (r *Rasterizer) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	e := p0.Sub(p1.Mul(2)).Add(p2).Mul(0.25)
	n := 1
	if dev := r.deviceLength(e.Length()); dev > r.Flatness {
		n = int(math.Ceil(math.Sqrt(dev / r.Flatness)))
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s).Add(p1.Mul(2 * s * t)).Add(p2.Mul(t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// flattenCubic approximates a cubic Bézier curve by edges, choosing the
// number of pieces by Wang's formula.
func (r *Rasterizer) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	d1 := p0.Sub(p1.Mul(2)).Add(p2)
	d2 := p1.Sub(p2.Mul(2)).Add(p3)
	n := 1
	if m := r.deviceLength(max(d1.Length(), d2.Length())); m > 0 {
		if f := math.Sqrt(3 * m / (4 * r.Flatness)); f > 1 {
			n = int(math.Ceil(f))
		}
	}
	prev := p0
	for i := 1; i <= n; i++ {
		t := float64(i) / float64(n)
		s := 1 - t
		pt := p0.Mul(s * s * s).
			Add(p1.Mul(3 * s * s * t)).
			Add(p2.Mul(3 * s * t * t)).
			Add(p3.Mul(t * t * t))
		r.addEdge(prev, pt)
		prev = pt
	}
}

// deviceBounds returns the pixel range covered by the edge list, clamped to
// the clip rectangle.
func (r *Rasterizer) deviceBounds() (xMin, xMax, yMin, yMax int, ok bool) {
	if len(r.edges) == 0 {
		return 0, 0, 0, 0, false
	}
	xMin = max(int(math.Floor(r.xMinDev)), int(r.Clip.LLx))
	xMax = min(int(math.Floor(r.xMaxDev))+1, int(r.Clip.URx))
	yMin = max(int(math.Floor(r.yMinDev)), int(r.Clip.LLy))
	yMax = min(int(math.Floor(r.yMaxDev))+1, int(r.Clip.URy))
	if xMin >= xMax || yMin >= yMax {
		return 0, 0, 0, 0, false
	}
	return xMin, xMax, yMin, yMax, true
}

// Coverage model:
//
// For every pixel of a scanline two values are accumulated.  Cover is the
// signed vertical extent of all edge pieces inside the pixel (positive for
// downward edges).  Area is cover, weighted by the fraction of the pixel
// to the right of the edge piece.  Integrating from left to right,
//
//	coverage[i] = sum(cover[0:i]) + area[i]
//
// gives the signed area of the shape inside each pixel; for the nonzero
// rule its absolute value is clamped to 1.

// scan processes all scanlines in [yMin, yMax) using an active edge list.
func (r *Rasterizer) scan(xMin, xMax, yMin, yMax int, emit EmitFunc) {
	width := xMax - xMin
	r.cover = slices.Grow(r.cover[:0], width)[:width]
	r.area = slices.Grow(r.area[:0], width)[:width]

	slices.SortFunc(r.edges, func(a, b edge) int {
		return cmp.Compare(min(a.y0, a.y1), min(b.y0, b.y1))
	})

	r.active = r.active[:0]
	next := 0
	for y := yMin; y < yMax; y++ {
		top := float64(y)
		bottom := float64(y + 1)

		for next < len(r.edges) && min(r.edges[next].y0, r.edges[next].y1) < bottom {
			r.active = append(r.active, next)
			next++
		}
		if len(r.active) == 0 {
			continue
		}

		clear(r.cover)
		clear(r.area)
		touched := false
		for i := 0; i < len(r.active); {
			e := &r.edges[r.active[i]]
			if max(e.y0, e.y1) <= top {
				r.active[i] = r.active[len(r.active)-1]
				r.active = r.active[:len(r.active)-1]
				continue
			}
			if r.accumulate(e, top, bottom, xMin, xMax) {
				touched = true
			}
			i++
		}
		if !touched {
			continue
		}

		integrateNonZero(r.cover, r.area)
		if row, offset := trimZeros(r.cover); row != nil {
			emit(y, xMin+offset, row)
		}
	}
}

// accumulate adds the contribution of the part of e between the scanline
// boundaries top and bottom.  Pixels left of xMin are folded into the first
// pixel, pixels right of xMax are dropped.
func (r *Rasterizer) accumulate(e *edge, top, bottom float64, xMin, xMax int) bool {
	top = max(top, min(e.y0, e.y1))
	bottom = min(bottom, max(e.y0, e.y1))
	if bottom <= top {
		return false
	}

	sign := float32(1)
	if e.y1 < e.y0 {
		sign = -1
	}

	xTop := e.x0 + e.dxdy*(top-e.y0)
	xBottom := e.x0 + e.dxdy*(bottom-e.y0)
	left := int(math.Floor(min(xTop, xBottom)))
	right := int(math.Floor(max(xTop, xBottom)))

	if left == right {
		r.addPiece(e, top, bottom, sign, left, xMin, xMax)
		return true
	}

	// The edge crosses several pixel columns: split it at the column
	// boundaries.
	dydx := 1 / e.dxdy
	for pix := left; pix <= right; pix++ {
		ya := e.y0 + dydx*(float64(pix)-e.x0)
		yb := e.y0 + dydx*(float64(pix+1)-e.x0)
		lo := max(min(ya, yb), top)
		hi := min(max(ya, yb), bottom)
		if hi > lo {
			r.addPiece(e, lo, hi, sign, pix, xMin, xMax)
		}
	}
	return true
}

// addPiece adds the part of e between lo and hi, which lies inside pixel
// column pix.
func (r *Rasterizer) addPiece(e *edge, lo, hi float64, sign float32, pix, xMin, xMax int) {
	c := sign * float32(hi-lo)
	switch {
	case pix < xMin:
		r.cover[0] += c
		r.area[0] += c
	case pix < xMax:
		xMid := e.x0 + e.dxdy*((lo+hi)/2-e.y0)
		frac := xMid - float64(pix)
		i := pix - xMin
		r.cover[i] += c
		r.area[i] += c * float32(1-frac)
	}
}

// integrateNonZero converts accumulated cover and area values into
// coverage, in place.
func integrateNonZero(cover, area []float32) {
	var acc float32
	for i := range cover {
		raw := acc + area[i]
		acc += cover[i]
		if raw < 0 {
			raw = -raw
		}
		cover[i] = min(raw, 1)
	}
}

// trimZeros returns the part of coverage between the first and last
// non-zero value, together with its offset.
func trimZeros(coverage []float32) ([]float32, int) {
	lo, hi := 0, len(coverage)
	for lo < hi && coverage[lo] == 0 {
		lo++
	}
	for hi > lo && coverage[hi-1] == 0 {
		hi--
	}
	if lo == hi {
		return nil, 0
	}
	return coverage[lo:hi], lo
}

const (
	// defaultFlatness is the default arc and curve tolerance in device
	// pixels.
	defaultFlatness = 0.25

	// horizontalEdgeThreshold is the minimum vertical extent in device
	// space for an edge to contribute to coverage.
	horizontalEdgeThreshold = 1e-10

	// zeroLengthThreshold is the length below which a line is treated as
	// a single point.
	zeroLengthThreshold = 1e-10
)
