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

// Package testcases lists star pattern designs used for testing and for
// visual inspection.
package testcases

// TestCase defines a single motif design.
type TestCase struct {
	Name    string  // lowercase a-z, 0-9 and _ only
	Sides   int     // 4 for squares, 6 for hexagons
	Size    float64 // tile edge length
	Contact float64 // contact fraction
	Angle   float64 // crossing angle in degrees

	// Hidden lists segment IDs in "<ray>_<piece>" notation which are hidden
	// in the design.
	Hidden []string

	// Colors maps segment IDs to override colors.
	Colors map[string]string

	// Empty is set if the construction rays are expected not to meet at
	// any corner.
	Empty bool
}
