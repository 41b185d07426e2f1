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

package raster

import (
	"math"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

// StrokeLine strokes the straight line from a to b, using Width, Cap, Dash
// and DashPhase.
//
// A zero-length line produces a dot if Cap is LineCapRound or
// LineCapSquare, and nothing otherwise.
func (r *Rasterizer) StrokeLine(a, b vec.Vec2, emit EmitFunc) {
	r.resetOutline()

	d := b.Sub(a)
	length := d.Length()
	hw := r.Width / 2
	if length < zeroLengthThreshold {
		switch r.Cap {
		case graphics.LineCapRound:
			r.addArc(a, hw, vec.Vec2{X: 1, Y: 0}, 2*math.Pi, true)
			r.outline.Close()
		case graphics.LineCapSquare:
			r.addStrokePiece(a, a, vec.Vec2{X: 1, Y: 0}, hw)
		}
	} else {
		t := d.Mul(1 / length)
		for _, on := range r.dashIntervals(length) {
			r.addStrokePiece(a.Add(t.Mul(on[0])), a.Add(t.Mul(on[1])), t, hw)
		}
	}

	r.FillNonZero(&r.outline, emit)
}

// StrokePolygon strokes the closed polygon with the given vertices, one
// edge at a time.
func (r *Rasterizer) StrokePolygon(vertices []vec.Vec2, emit EmitFunc) {
	for i, v := range vertices {
		r.StrokeLine(v, vertices[(i+1)%len(vertices)], emit)
	}
}

func (r *Rasterizer) resetOutline() {
	r.outline.Cmds = r.outline.Cmds[:0]
	r.outline.Coords = r.outline.Coords[:0]
}

// addStrokePiece adds the outline of the stroked line p-q to r.outline, as a
// closed subpath.  The unit vector t points from p to q.
func (r *Rasterizer) addStrokePiece(p, q, t vec.Vec2, hw float64) {
	n := vec.Vec2{X: -t.Y, Y: t.X}

	r.outline.MoveTo(p.Add(n.Mul(hw)))
	r.addCap(q, t, hw)
	r.addCap(p, t.Mul(-1), hw)
	r.outline.Close()
}

// addCap adds the end cap at P, where T is the unit tangent pointing away
// from the line.  The cap runs from the left side (seen in direction T) to
// the right side.
func (r *Rasterizer) addCap(P, T vec.Vec2, hw float64) {
	N := vec.Vec2{X: -T.Y, Y: T.X}

	switch r.Cap {
	case graphics.LineCapSquare:
		ext := P.Add(T.Mul(hw))
		r.outline.LineTo(ext.Add(N.Mul(hw)))
		r.outline.LineTo(ext.Sub(N.Mul(hw)))
	case graphics.LineCapRound:
		r.addArc(P, hw, N, -math.Pi, true)
	default:
		r.outline.LineTo(P.Add(N.Mul(hw)))
		r.outline.LineTo(P.Sub(N.Mul(hw)))
	}
}

// addArc appends a polygonal approximation of a circular arc to r.outline.
// The arc starts at center+radius*startDir and sweeps by the given angle
// (positive is counter-clockwise).  If the outline is empty, the arc starts a
// new subpath.
func (r *Rasterizer) addArc(center vec.Vec2, radius float64, startDir vec.Vec2, sweep float64, includeStart bool) {
	n := 1
	if devRadius := r.deviceLength(radius); devRadius > r.Flatness {
		// a chord spanning angle θ deviates from the circle by
		// radius*(1-cos(θ/2))
		step := 2 * math.Acos(1-r.Flatness/devRadius)
		if step > 0 && !math.IsNaN(step) {
			n = max(int(math.Ceil(math.Abs(sweep)/step)), 1)
		} else {
			n = max(int(math.Ceil(math.Abs(sweep)/(math.Pi/4))), 1)
		}
	}

	first := 1
	if includeStart {
		first = 0
	}
	for i := first; i <= n; i++ {
		sin, cos := math.Sincos(sweep * float64(i) / float64(n))
		dir := vec.Vec2{
			X: startDir.X*cos - startDir.Y*sin,
			Y: startDir.X*sin + startDir.Y*cos,
		}
		pt := center.Add(dir.Mul(radius))
		if len(r.outline.Cmds) == 0 || r.outline.Cmds[len(r.outline.Cmds)-1] == path.CmdClose {
			r.outline.MoveTo(pt)
		} else {
			r.outline.LineTo(pt)
		}
	}
}

// dashIntervals returns the "on" intervals of the dash pattern along a line
// of the given length.
func (r *Rasterizer) dashIntervals(length float64) [][2]float64 {
	pattern := r.Dash
	if len(pattern)%2 == 1 {
		pattern = append(pattern[:len(pattern):len(pattern)], pattern...)
	}
	total := 0.0
	for _, d := range pattern {
		total += max(d, 0)
	}
	if len(pattern) == 0 || !(total > 0) {
		return [][2]float64{{0, length}}
	}

	phase := math.Mod(r.DashPhase, total)
	if phase < 0 {
		phase += total
	}
	i := 0
	for phase >= max(pattern[i], 0) {
		phase -= max(pattern[i], 0)
		i = (i + 1) % len(pattern)
	}

	var res [][2]float64
	pos := 0.0
	remaining := pattern[i] - phase
	for pos < length {
		end := min(pos+remaining, length)
		if i%2 == 0 && end > pos {
			res = append(res, [2]float64{pos, end})
		}
		pos = end
		i = (i + 1) % len(pattern)
		remaining = max(pattern[i], 0)
	}
	return res
}
