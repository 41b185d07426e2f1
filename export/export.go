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

// Package export writes star patterns as SVG, PNG or PDF files.
package export

import (
	"image/color"

	"seehuhn.de/go/girih"
)

// Options controls the appearance of exported patterns.
type Options struct {
	// Width and Height give the canvas size in user space units.
	Width, Height float64

	// Scale is the number of pixels per user space unit in PNG output.
	// Zero means 1.
	Scale float64

	// Background is the canvas color.  Nil means girih.DefaultBackground.
	Background color.Color

	// Stroke is the color of lines without override color.
	// Nil means girih.DefaultStroke.
	Stroke color.Color

	// LineWidth is the width of pattern lines.  Zero means 2.
	LineWidth float64

	// Tiles, if non-empty, are drawn as construction outlines below the
	// pattern.
	Tiles []*girih.Polygon

	// Construction is the color of the tile outlines.
	// Nil means girih.DefaultConstruction.
	Construction color.Color

	// Ghosts are drawn as thin dashed lines on top of the pattern.  This
	// is used to show hidden segments in an editor view.
	Ghosts []girih.Line

	// AuxWidth is the width of tile outlines and ghost lines.  Ghost lines
	// use a dash pattern of 5*AuxWidth on, 5*AuxWidth off.  Zero means 1.
	AuxWidth float64
}

func (o *Options) background() color.Color {
	if o.Background == nil {
		return girih.DefaultBackground
	}
	return o.Background
}

func (o *Options) construction() color.Color {
	if o.Construction == nil {
		return girih.DefaultConstruction
	}
	return o.Construction
}

func (o *Options) lineWidth() float64 {
	if o.LineWidth <= 0 {
		return 2
	}
	return o.LineWidth
}

func (o *Options) auxWidth() float64 {
	if o.AuxWidth <= 0 {
		return 1
	}
	return o.AuxWidth
}

func (o *Options) ghostDash() []float64 {
	w := o.auxWidth()
	return []float64{5 * w, 5 * w}
}

func (o *Options) scale() float64 {
	if o.Scale <= 0 {
		return 1
	}
	return o.Scale
}

// lineColor returns the color used to draw l.
func (o *Options) lineColor(l girih.Line) color.Color {
	switch {
	case l.Color != nil:
		return l.Color
	case o.Stroke != nil:
		return o.Stroke
	default:
		return girih.DefaultStroke
	}
}
