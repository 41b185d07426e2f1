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

import "math"

// Limits applied by [Params.Clamped].
const (
	MinContact = 0.0
	MaxContact = 0.5
	MinAngle   = 15.0
	MaxAngle   = 89.0
)

// Params collects the parameters of a design.
type Params struct {
	Shape Shape

	// Contact is the contact fraction, see [Builder.Contact].
	Contact float64

	// Angle is the crossing angle in degrees, see [Builder.Angle].
	Angle float64
}

// DefaultParams returns the parameters used when nothing else is specified.
func DefaultParams() Params {
	return Params{Shape: Hexagon, Contact: 0.25, Angle: 75}
}

// Clamped returns a copy of p with Contact and Angle limited to the ranges
// offered to users.  NaN values are replaced by the defaults.
//
// The motif builder does not clamp its inputs; this is the responsibility
// of the caller.
func (p Params) Clamped() Params {
	def := DefaultParams()
	if math.IsNaN(p.Contact) {
		p.Contact = def.Contact
	}
	if math.IsNaN(p.Angle) {
		p.Angle = def.Angle
	}
	p.Contact = min(max(p.Contact, MinContact), MaxContact)
	p.Angle = min(max(p.Angle, MinAngle), MaxAngle)
	return p
}

// Motif computes the motif for a regular tile of the given edge length.
func (p Params) Motif(size float64) *Motif {
	return NewMotif(p.Shape, size, p.Contact, p.Angle)
}
