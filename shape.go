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
	"fmt"
	"math"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// ErrUnknownShape is returned by [ParseShape] for unsupported tile shapes.
var ErrUnknownShape = errors.New("unknown tile shape")

// Shape identifies the tile shape of a tiling.
type Shape int

// These are the supported tile shapes.
const (
	Square Shape = iota
	Hexagon
)

// Sides returns the number of corners of the shape.
func (s Shape) Sides() int {
	switch s {
	case Square:
		return 4
	case Hexagon:
		return 6
	default:
		return 0
	}
}

func (s Shape) String() string {
	switch s {
	case Square:
		return "square"
	case Hexagon:
		return "hex"
	default:
		return fmt.Sprintf("Shape(%d)", int(s))
	}
}

// ParseShape converts a shape name ("square" or "hex") into a Shape.
func ParseShape(name string) (Shape, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "square":
		return Square, nil
	case "hex", "hexagon":
		return Hexagon, nil
	}
	return 0, fmt.Errorf("%q: %w", name, ErrUnknownShape)
}

// RegularPolygon returns the tile polygon of the given shape and edge length,
// centered at the origin.  Vertex order and orientation match the tilings
// generated by the grid package: squares are axis-aligned and hexagons have
// a vertex at 30°.
//
// For shapes other than Square and Hexagon, nil is returned.
func RegularPolygon(shape Shape, size float64) *Polygon {
	var vv []vec.Vec2
	switch shape {
	case Square:
		h := size / 2
		vv = []vec.Vec2{
			{X: -h, Y: -h},
			{X: h, Y: -h},
			{X: h, Y: h},
			{X: -h, Y: h},
		}
	case Hexagon:
		// For a regular hexagon the circumradius equals the edge length.
		vv = make([]vec.Vec2, 6)
		for k := range vv {
			a := (30 + 60*float64(k)) * math.Pi / 180
			vv[k] = vec.Vec2{X: size * math.Cos(a), Y: size * math.Sin(a)}
		}
	default:
		return nil
	}
	p, _ := NewPolygon(vv)
	return p
}
