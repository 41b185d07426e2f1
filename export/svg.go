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
	"bufio"
	"fmt"
	"io"

	"seehuhn.de/go/girih"
)

// svgWriter remembers the first write error, so that the drawing code does
// not need to check every call.
type svgWriter struct {
	w   *bufio.Writer
	err error
}

func (s *svgWriter) printf(format string, a ...any) {
	if s.err != nil {
		return
	}
	_, s.err = fmt.Fprintf(s.w, format, a...)
}

// SVG writes the lines as an SVG document.
func SVG(w io.Writer, lines []girih.Line, opt *Options) error {
	if opt == nil {
		opt = &Options{}
	}
	s := &svgWriter{w: bufio.NewWriter(w)}

	s.printf("<svg xmlns=\"http://www.w3.org/2000/svg\" viewBox=\"0 0 %g %g\" width=\"%g\" height=\"%g\">\n",
		opt.Width, opt.Height, opt.Width, opt.Height)
	s.printf("  <rect width=\"100%%\" height=\"100%%\" fill=\"%s\" />\n",
		girih.FormatColor(opt.background()))

	if len(opt.Tiles) > 0 {
		s.printf("  <g fill=\"none\" stroke=\"%s\" stroke-width=\"%g\">\n",
			girih.FormatColor(opt.construction()), opt.auxWidth())
		for _, tile := range opt.Tiles {
			s.printf("    <polygon points=\"")
			for i, v := range tile.Vertices() {
				if i > 0 {
					s.printf(" ")
				}
				s.printf("%.2f,%.2f", v.X, v.Y)
			}
			s.printf("\" />\n")
		}
		s.printf("  </g>\n")
	}

	for _, l := range lines {
		s.printf("  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%g\" stroke-linecap=\"round\" data-id=\"%s\" />\n",
			l.A.X, l.A.Y, l.B.X, l.B.Y, girih.FormatColor(opt.lineColor(l)), opt.lineWidth(), l.ID)
	}

	dash := opt.ghostDash()
	for _, l := range opt.Ghosts {
		s.printf("  <line x1=\"%.2f\" y1=\"%.2f\" x2=\"%.2f\" y2=\"%.2f\" stroke=\"%s\" stroke-width=\"%g\" stroke-dasharray=\"%g %g\" data-id=\"%s\" />\n",
			l.A.X, l.A.Y, l.B.X, l.B.Y, girih.FormatColor(girih.DefaultGhost), opt.auxWidth(), dash[0], dash[1], l.ID)
	}

	s.printf("</svg>\n")
	if s.err != nil {
		return fmt.Errorf("writing SVG: %w", s.err)
	}
	if err := s.w.Flush(); err != nil {
		return fmt.Errorf("writing SVG: %w", err)
	}
	girih.Logger().Debug("SVG written", "lines", len(lines), "ghosts", len(opt.Ghosts))
	return nil
}
