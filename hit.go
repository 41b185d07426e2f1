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

// Distance returns the distance between the point p and the edge.
func (e Edge) Distance(p vec.Vec2) float64 {
	d := e.B.Sub(e.A)
	l2 := d.Dot(d)
	if l2 == 0 {
		return p.Sub(e.A).Length()
	}
	t := p.Sub(e.A).Dot(d) / l2
	t = math.Max(0, math.Min(1, t))
	return p.Sub(e.At(t)).Length()
}

// HitTest returns the first segment of the motif closer than tol to p.
// The point p is given in the local frame of the motif.
// If several segments qualify, it is unspecified which one is returned.
func (m *Motif) HitTest(p vec.Vec2, tol float64) (Segment, bool) {
	for _, s := range m.Segments {
		if s.Distance(p) < tol {
			return s, true
		}
	}
	return Segment{}, false
}

// HitTestLines returns the first line closer than tol to p.
// Hidden lines are included in the search, so that an editor can restore
// them.  If several lines qualify, it is unspecified which one is returned.
func HitTestLines(lines []Line, p vec.Vec2, tol float64) (Line, bool) {
	for _, l := range lines {
		if l.Distance(p) < tol {
			return l, true
		}
	}
	return Line{}, false
}
