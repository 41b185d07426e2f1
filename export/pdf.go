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
	imgcolor "image/color"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/pdf"
	"seehuhn.de/go/pdf/document"
	"seehuhn.de/go/pdf/graphics"
	"seehuhn.de/go/pdf/graphics/color"

	"seehuhn.de/go/girih"
)

// PDF writes the lines as a single-page PDF file.  One user space unit
// corresponds to one PDF point.
func PDF(fname string, lines []girih.Line, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	paper := &pdf.Rectangle{URx: opt.Width, URy: opt.Height}
	page, err := document.CreateSinglePage(fname, paper, pdf.V1_7, nil)
	if err != nil {
		return fmt.Errorf("creating PDF: %w", err)
	}

	page.SetFillColor(deviceRGB(opt.background()))
	page.Rectangle(0, 0, opt.Width, opt.Height)
	page.Fill()

	// PDF has the origin in the bottom left corner, patterns use the top
	// left corner.
	page.Transform(matrix.Matrix{1, 0, 0, -1, 0, opt.Height})

	if len(opt.Tiles) > 0 {
		page.SetStrokeColor(deviceRGB(opt.construction()))
		page.SetLineWidth(opt.auxWidth())
		page.SetLineJoin(graphics.LineJoinMiter)
		for _, tile := range opt.Tiles {
			for i, v := range tile.Vertices() {
				if i == 0 {
					page.MoveTo(v.X, v.Y)
				} else {
					page.LineTo(v.X, v.Y)
				}
			}
			page.ClosePath()
		}
		page.Stroke()
	}

	page.SetLineWidth(opt.lineWidth())
	page.SetLineCap(graphics.LineCapRound)
	var current imgcolor.Color
	for _, l := range lines {
		c := opt.lineColor(l)
		if c != current {
			page.SetStrokeColor(deviceRGB(c))
			current = c
		}
		page.MoveTo(l.A.X, l.A.Y)
		page.LineTo(l.B.X, l.B.Y)
		page.Stroke()
	}

	if len(opt.Ghosts) > 0 {
		page.SetStrokeColor(deviceRGB(girih.DefaultGhost))
		page.SetLineWidth(opt.auxWidth())
		page.SetLineCap(graphics.LineCapButt)
		page.SetLineDash(opt.ghostDash(), 0)
		for _, l := range opt.Ghosts {
			page.MoveTo(l.A.X, l.A.Y)
			page.LineTo(l.B.X, l.B.Y)
		}
		page.Stroke()
	}

	if err := page.Close(); err != nil {
		return fmt.Errorf("writing PDF: %w", err)
	}
	girih.Logger().Debug("PDF written", "file", fname, "lines", len(lines))
	return nil
}

func deviceRGB(c imgcolor.Color) color.Color {
	r, g, b, _ := c.RGBA()
	return color.DeviceRGB{float64(r) / 0xffff, float64(g) / 0xffff, float64(b) / 0xffff}
}
