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

package testcases

var squareCases = []TestCase{
	{
		Name:    "contact25_angle60",
		Sides:   4,
		Size:    200,
		Contact: 0.25,
		Angle:   60,
	},
	{
		Name:    "contact25_angle75",
		Sides:   4,
		Size:    200,
		Contact: 0.25,
		Angle:   75,
	},
	{
		Name:    "contact50_angle67",
		Sides:   4,
		Size:    200,
		Contact: 0.5,
		Angle:   67.5,
	},
	{
		Name:    "small_tile",
		Sides:   4,
		Size:    1,
		Contact: 0.3,
		Angle:   70,
	},
	{
		Name:    "large_tile",
		Sides:   4,
		Size:    1e5,
		Contact: 0.3,
		Angle:   70,
	},
}

var hexCases = []TestCase{
	{
		Name:    "contact25_angle75",
		Sides:   6,
		Size:    100,
		Contact: 0.25,
		Angle:   75,
	},
	{
		Name:    "contact40_angle65",
		Sides:   6,
		Size:    100,
		Contact: 0.4,
		Angle:   65,
	},
	{
		Name:    "contact50_angle80",
		Sides:   6,
		Size:    100,
		Contact: 0.5,
		Angle:   80,
	},
}

var degenerateCases = []TestCase{
	{
		// Both rays of every corner are parallel to the diagonal.
		Name:    "square_angle45",
		Sides:   4,
		Size:    200,
		Contact: 0.25,
		Angle:   45,
		Empty:   true,
	},
	{
		// The rays diverge at every corner.
		Name:    "square_angle30",
		Sides:   4,
		Size:    200,
		Contact: 0.25,
		Angle:   30,
		Empty:   true,
	},
	{
		Name:    "hex_angle60",
		Sides:   6,
		Size:    100,
		Contact: 0.25,
		Angle:   60,
		Empty:   true,
	},
	{
		Name:    "square_steep_near_corner",
		Sides:   4,
		Size:    200,
		Contact: 0.02,
		Angle:   89,
	},
	{
		Name:    "hex_steep_near_corner",
		Sides:   6,
		Size:    100,
		Contact: 0.02,
		Angle:   89,
	},
	{
		Name:    "zero_contact",
		Sides:   4,
		Size:    200,
		Contact: 0,
		Angle:   70,
	},
}

var designCases = []TestCase{
	{
		Name:    "square_star",
		Sides:   4,
		Size:    200,
		Contact: 0.25,
		Angle:   60,
		Hidden:  []string{"0_0", "2_0"},
		Colors:  map[string]string{"1_0": "#ff5252", "3_0": "#448aff"},
	},
	{
		Name:    "hex_rosette",
		Sides:   6,
		Size:    100,
		Contact: 0.25,
		Angle:   75,
		Hidden:  []string{"1_0"},
		Colors:  map[string]string{"0_0": "gold"},
	},
}
