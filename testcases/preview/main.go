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

// Command preview renders every test case into SVG, PNG and PDF files,
// for visual inspection.  Each motif is drawn on a single tile, with the
// tile outline and the hidden segments shown as construction lines.
package main

import (
	"bytes"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"seehuhn.de/go/geom/vec"

	"seehuhn.de/go/girih"
	"seehuhn.de/go/girih/export"
	"seehuhn.de/go/girih/testcases"
)

const outDir = "testdata/preview"

func main() {
	if err := os.MkdirAll(outDir, 0755); err != nil {
		panic(err)
	}

	for _, category := range slices.Sorted(maps.Keys(testcases.All)) {
		for _, tc := range testcases.All[category] {
			name := category + "_" + tc.Name
			if err := render(tc, filepath.Join(outDir, name)); err != nil {
				panic(fmt.Errorf("%s: %w", name, err))
			}
		}
	}
}

func render(tc testcases.TestCase, base string) error {
	shape := girih.Square
	if tc.Sides == 6 {
		shape = girih.Hexagon
	}
	ov, err := girih.NewOverlay(tc.Hidden, tc.Colors)
	if err != nil {
		return err
	}
	m := girih.NewMotif(shape, tc.Size, tc.Contact, tc.Angle)
	if orphans := ov.Prune(m); len(orphans) > 0 {
		return fmt.Errorf("unknown segments %v", orphans)
	}

	// Draw the tile with a margin of a quarter tile on every side, and
	// scale the output to 400 pixels.
	b := girih.RegularPolygon(shape, tc.Size).Bounds()
	margin := 0.25 * max(b.URx-b.LLx, b.URy-b.LLy)
	width := b.URx - b.LLx + 2*margin
	height := b.URy - b.LLy + 2*margin
	center := vec.Vec2{X: width / 2, Y: height / 2}
	tile := girih.RegularPolygon(shape, tc.Size).Translate(center)

	lines := girih.Instance(m, []*girih.Polygon{tile}, ov)
	var ghosts []girih.Line
	for _, l := range girih.EditorLines(m, center, ov) {
		if l.Hidden {
			ghosts = append(ghosts, l)
		}
	}

	opt := &export.Options{
		Width:     width,
		Height:    height,
		Scale:     400 / width,
		LineWidth: width / 200,
		AuxWidth:  width / 400,
		Tiles:     []*girih.Polygon{tile},
		Ghosts:    ghosts,
	}

	buf := &bytes.Buffer{}
	if err := export.SVG(buf, lines, opt); err != nil {
		return err
	}
	if err := os.WriteFile(base+".svg", buf.Bytes(), 0644); err != nil {
		return err
	}

	buf.Reset()
	if err := export.PNG(buf, lines, opt); err != nil {
		return err
	}
	if err := os.WriteFile(base+".png", buf.Bytes(), 0644); err != nil {
		return err
	}

	return export.PDF(base+".pdf", lines, opt)
}
