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

// Command girih draws a star pattern on a square or hexagonal tiling.
//
// The output format is chosen by the extension of the -o argument: .svg,
// .png or .pdf.  Without -o, SVG is written to standard output.
//
// Example:
//
//	girih -grid hex -tiles 6 -angle 70 -hide 0_0,2_0 -color 1_0=gold -o star.png
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"seehuhn.de/go/girih"
	"seehuhn.de/go/girih/export"
	"seehuhn.de/go/girih/grid"
)

var errUsage = errors.New("invalid argument")

func main() {
	if err := run(os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "girih:", err)
		os.Exit(1)
	}
}

func run(args []string, stdout io.Writer) error {
	fs := flag.NewFlagSet("girih", flag.ContinueOnError)
	def := girih.DefaultParams()
	gridName := fs.String("grid", def.Shape.String(), "tile shape: square or hex")
	tiles := fs.Int("tiles", 8, "number of tiles across the canvas")
	contact := fs.Float64("contact", def.Contact, "contact position along the tile edges, 0 to 0.5")
	angle := fs.Float64("angle", def.Angle, "crossing angle in degrees, 15 to 89")
	canvas := fs.String("canvas", "800x600", "canvas size as WIDTHxHEIGHT")
	hide := fs.String("hide", "", "comma-separated segment IDs to hide")
	colors := fs.String("color", "", "comma-separated ID=COLOR overrides")
	stroke := fs.String("stroke", girih.FormatColor(girih.DefaultStroke), "default line color")
	background := fs.String("background", girih.FormatColor(girih.DefaultBackground), "background color")
	construction := fs.Bool("construction", false, "draw the tile outlines")
	ghosts := fs.Bool("ghosts", false, "draw hidden segments as dashed lines")
	list := fs.Bool("list", false, "list the segments of the motif and exit")
	out := fs.String("o", "", "output file (.svg, .png or .pdf)")
	verbose := fs.Bool("v", false, "log debug messages")
	if err := fs.Parse(args); err != nil {
		return err
	}

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	girih.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
	defer girih.SetLogger(nil)

	shape, err := girih.ParseShape(*gridName)
	if err != nil {
		return err
	}
	width, height, err := parseCanvas(*canvas)
	if err != nil {
		return err
	}
	params := girih.Params{Shape: shape, Contact: *contact, Angle: *angle}.Clamped()
	cfg := grid.Config{Shape: shape, Width: width, Height: height, Tiles: *tiles}

	if *list {
		return listSegments(stdout, params.Motif(cfg.TileSize()))
	}

	ov, err := girih.NewOverlay(splitList(*hide), parseAssignments(*colors))
	if err != nil {
		return err
	}

	tilePolys := cfg.Polygons()
	m, lines := girih.Compose(tilePolys, params, ov)
	if orphans := ov.Prune(m); len(orphans) > 0 {
		girih.Logger().Warn("ignoring unknown segments", "ids", orphans)
	}

	opt := &export.Options{Width: width, Height: height}
	if opt.Stroke, err = girih.ParseColor(*stroke); err != nil {
		return err
	}
	if opt.Background, err = girih.ParseColor(*background); err != nil {
		return err
	}
	if *construction {
		opt.Tiles = tilePolys
	}
	if *ghosts {
		for _, tile := range tilePolys {
			for _, l := range girih.EditorLines(m, tile.Center(), ov) {
				if l.Hidden {
					opt.Ghosts = append(opt.Ghosts, l)
				}
			}
		}
	}

	return write(*out, stdout, lines, opt)
}

func write(fname string, stdout io.Writer, lines []girih.Line, opt *export.Options) (err error) {
	ext := strings.ToLower(filepath.Ext(fname))
	if fname == "" || fname == "-" {
		return export.SVG(stdout, lines, opt)
	}
	if ext == ".pdf" {
		return export.PDF(fname, lines, opt)
	}
	if ext != ".svg" && ext != ".png" {
		return fmt.Errorf("%q: unsupported output format: %w", fname, errUsage)
	}

	f, err := os.Create(fname)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()

	if ext == ".png" {
		return export.PNG(f, lines, opt)
	}
	return export.SVG(f, lines, opt)
}

func listSegments(w io.Writer, m *girih.Motif) error {
	for _, s := range m.Segments {
		_, err := fmt.Fprintf(w, "%-6s %8.2f %8.2f %8.2f %8.2f\n", s.ID, s.A.X, s.A.Y, s.B.X, s.B.Y)
		if err != nil {
			return err
		}
	}
	return nil
}

func parseCanvas(s string) (float64, float64, error) {
	ws, hs, ok := strings.Cut(strings.ToLower(s), "x")
	if ok {
		w, err1 := strconv.ParseFloat(ws, 64)
		h, err2 := strconv.ParseFloat(hs, 64)
		if err1 == nil && err2 == nil && w > 0 && h > 0 {
			return w, h, nil
		}
	}
	return 0, 0, fmt.Errorf("canvas %q: %w", s, errUsage)
}

func splitList(s string) []string {
	var res []string
	for _, part := range strings.Split(s, ",") {
		if part = strings.TrimSpace(part); part != "" {
			res = append(res, part)
		}
	}
	return res
}

// parseAssignments parses a list "ID=COLOR,ID=COLOR,...".  Entries without
// "=" map to the empty color name, which is rejected by the color parser.
func parseAssignments(s string) map[string]string {
	res := make(map[string]string)
	for _, part := range splitList(s) {
		id, c, _ := strings.Cut(part, "=")
		res[strings.TrimSpace(id)] = strings.TrimSpace(c)
	}
	return res
}
