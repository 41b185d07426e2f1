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
	"image/color"
	"strconv"
	"strings"

	"golang.org/x/image/colornames"
)

// ErrBadColor is returned by [ParseColor] for unrecognized colors.
var ErrBadColor = errors.New("unrecognized color")

// Default colors used when drawing patterns.
var (
	DefaultBackground   = color.RGBA{R: 0x1a, G: 0x1a, B: 0x1a, A: 0xff}
	DefaultStroke       = color.RGBA{R: 0x00, G: 0xbc, B: 0xd4, A: 0xff}
	DefaultConstruction = color.RGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}
	DefaultGhost        = color.RGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
)

// Palette lists the override colors, in the order used by
// [Overlay.CycleColor].
var Palette = []color.RGBA{
	{R: 0xff, G: 0x52, B: 0x52, A: 0xff},
	{R: 0x69, G: 0xf0, B: 0xae, A: 0xff},
	{R: 0x44, G: 0x8a, B: 0xff, A: 0xff},
	{R: 0xe0, G: 0x40, B: 0xfb, A: 0xff},
}

// ParseColor converts a color given as "#rgb", "#rrggbb" or as an SVG color
// name into an opaque RGBA value.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if hex, ok := strings.CutPrefix(s, "#"); ok {
		if len(hex) == 3 {
			hex = string([]byte{hex[0], hex[0], hex[1], hex[1], hex[2], hex[2]})
		}
		if len(hex) == 6 {
			v, err := strconv.ParseUint(hex, 16, 32)
			if err == nil {
				return color.RGBA{R: uint8(v >> 16), G: uint8(v >> 8), B: uint8(v), A: 0xff}, nil
			}
		}
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
	}
	if c, ok := colornames.Map[s]; ok {
		return c, nil
	}
	return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrBadColor)
}

// FormatColor returns c in "#rrggbb" notation.  Alpha is ignored.
func FormatColor(c color.Color) string {
	r, g, b, _ := c.RGBA()
	return fmt.Sprintf("#%02x%02x%02x", r>>8, g>>8, b>>8)
}
