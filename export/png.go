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

package export

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/pdf/graphics"

	"seehuhn.de/go/girih"
	"seehuhn.de/go/girih/raster"
)

// Image renders the lines into a new RGBA image.
func Image(lines []girih.Line, opt *Options) *image.RGBA {
	if opt == nil {
		opt = &Options{}
	}
	s := opt.scale()
	w := int(math.Ceil(opt.Width * s))
	h := int(math.Ceil(opt.Height * s))
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), image.NewUniform(opt.background()), image.Point{}, draw.Src)

	r := raster.NewRasterizer(rect.Rect{URx: float64(w), URy: float64(h)})
	r.CTM = matrix.Scale(s, s)

	if len(opt.Tiles) > 0 {
		r.Width = opt.auxWidth()
		r.Cap = graphics.LineCapSquare
		emit := compositor(img, opt.construction())
		for _, tile := range opt.Tiles {
			r.StrokePolygon(tile.Vertices(), emit)
		}
	}

	r.Width = opt.lineWidth()
	r.Cap = graphics.LineCapRound
	for _, l := range lines {
		r.StrokeLine(l.A, l.B, compositor(img, opt.lineColor(l)))
	}

	if len(opt.Ghosts) > 0 {
		r.Width = opt.auxWidth()
		r.Cap = graphics.LineCapButt
		r.Dash = opt.ghostDash()
		emit := compositor(img, girih.DefaultGhost)
		for _, l := range opt.Ghosts {
			r.StrokeLine(l.A, l.B, emit)
		}
	}

	return img
}

// PNG renders the lines and writes the image in PNG format.
func PNG(w io.Writer, lines []girih.Line, opt *Options) error {
	img := Image(lines, opt)
	if err := png.Encode(w, img); err != nil {
		return fmt.Errorf("writing PNG: %w", err)
	}
	girih.Logger().Debug("PNG written",
		"width", img.Bounds().Dx(), "height", img.Bounds().Dy(), "lines", len(lines))
	return nil
}

// compositor returns an emit function which paints c over img, using the
// coverage values as opacity.
func compositor(img *image.RGBA, c color.Color) raster.EmitFunc {
	// premultiplied, 16 bits per channel
	cr, cg, cb, ca := c.RGBA()
	src := [4]float32{float32(cr) / 0xffff, float32(cg) / 0xffff, float32(cb) / 0xffff, float32(ca) / 0xffff}

	return func(y, xMin int, coverage []float32) {
		off := img.PixOffset(xMin, y)
		for _, cov := range coverage {
			px := img.Pix[off : off+4 : off+4]
			keep := 1 - cov*src[3]
			for k := range px {
				v := float32(px[k])*keep + 255*src[k]*cov
				px[k] = uint8(min(max(v+0.5, 0), 255))
			}
			off += 4
		}
	}
}
