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

// Package grid generates tilings of a rectangular canvas by squares or
// regular hexagons.
//
// The tilings extend beyond the canvas by one tile in every direction, so
// that the canvas is always fully covered.
package grid

import (
	"math"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/girih"
)

// Limits for [Config.Tiles].
const (
	MinTiles = 2
	MaxTiles = 36
)

// Config describes a tiling of a canvas.
type Config struct {
	Shape girih.Shape

	// Width and Height give the canvas size.
	Width, Height float64

	// Tiles is the number of tiles across the canvas width.
	Tiles int
}

// TileSize returns the edge length of the tiles, Width/Tiles, after
// limiting Tiles to the range [MinTiles, MaxTiles].
func (c Config) TileSize() float64 {
	n := min(max(c.Tiles, MinTiles), MaxTiles)
	return c.Width / float64(n)
}

// Polygons generates the tiling described by c.
func (c Config) Polygons() []*girih.Polygon {
	switch c.Shape {
	case girih.Square:
		return Square(c.Width, c.Height, c.TileSize())
	case girih.Hexagon:
		return Hex(c.Width, c.Height, c.TileSize())
	default:
		return nil
	}
}

// Square returns a tiling of the width×height canvas by axis-aligned squares
// of edge length size.  The tiles are listed column by column.
func Square(width, height, size float64) []*girih.Polygon {
	if !(size > 0) {
		return nil
	}
	cols := int(math.Ceil(width/size)) + 1
	rows := int(math.Ceil(height/size)) + 1

	xOffset := (width - float64(cols)*size) / 2
	yOffset := (height - float64(rows)*size) / 2

	tile := girih.RegularPolygon(girih.Square, size)
	var res []*girih.Polygon
	for i := -1; i < cols; i++ {
		for j := -1; j < rows; j++ {
			x := float64(i)*size + xOffset
			y := float64(j)*size + yOffset
			res = append(res, tile.Translate(vec.Vec2{X: x + size/2, Y: y + size/2}))
		}
	}
	girih.Logger().Debug("square grid", "size", size, "tiles", len(res))
	return res
}

// Hex returns a tiling of the width×height canvas by regular hexagons with
// edge length size.  The hexagons have a vertex at the top and bottom, and
// every other row is shifted by half a tile.  The tiles are listed row by
// row.
func Hex(width, height, size float64) []*girih.Polygon {
	if !(size > 0) {
		return nil
	}
	w := size * math.Sqrt(3)
	rowStep := size * 1.5

	cols := int(math.Ceil(width/w)) + 2
	rows := int(math.Ceil(height/rowStep)) + 2

	startX := (width - float64(cols)*w) / 2
	startY := (height - float64(rows)*rowStep) / 2

	tile := girih.RegularPolygon(girih.Hexagon, size)
	var res []*girih.Polygon
	for row := -1; row < rows; row++ {
		shift := 0.0
		if row%2 != 0 {
			shift = w / 2
		}
		for col := -1; col < cols; col++ {
			center := vec.Vec2{
				X: startX + float64(col)*w + shift,
				Y: startY + float64(row)*rowStep,
			}
			res = append(res, tile.Translate(center))
		}
	}
	girih.Logger().Debug("hex grid", "size", size, "tiles", len(res))
	return res
}
