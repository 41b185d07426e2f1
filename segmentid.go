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
	"strconv"
	"strings"
)

// ErrBadSegmentID is returned by [ParseSegmentID] for malformed input.
var ErrBadSegmentID = errors.New("malformed segment ID")

// SegmentID identifies one segment of a motif.
//
// Corner and Side identify the construction ray the segment belongs to:
// every corner of the tile emits two rays, Side 0 starting on the edge
// towards the previous vertex and Side 1 on the edge towards the next
// vertex.  Piece counts the segments along the ray, starting at the contact
// point.
//
// IDs stay the same when the motif is recomputed, as long as the changed
// parameters do not change which segments cross each other.
type SegmentID struct {
	Corner int
	Side   int
	Piece  int
}

// Ray returns the number of the construction ray, 2*Corner+Side.
func (id SegmentID) Ray() int {
	return 2*id.Corner + id.Side
}

// String formats the ID as "<ray>_<piece>", for example "7_1" for the
// second piece of the Side 1 ray of corner 3.
func (id SegmentID) String() string {
	return strconv.Itoa(id.Ray()) + "_" + strconv.Itoa(id.Piece)
}

// ParseSegmentID converts the output of [SegmentID.String] back into a
// SegmentID.
func ParseSegmentID(s string) (SegmentID, error) {
	rayStr, pieceStr, found := strings.Cut(strings.TrimSpace(s), "_")
	if !found {
		return SegmentID{}, fmt.Errorf("%q: %w", s, ErrBadSegmentID)
	}
	ray, err := strconv.Atoi(rayStr)
	if err != nil || ray < 0 {
		return SegmentID{}, fmt.Errorf("%q: %w", s, ErrBadSegmentID)
	}
	piece, err := strconv.Atoi(pieceStr)
	if err != nil || piece < 0 {
		return SegmentID{}, fmt.Errorf("%q: %w", s, ErrBadSegmentID)
	}
	return SegmentID{Corner: ray / 2, Side: ray % 2, Piece: piece}, nil
}

// compareIDs orders segment IDs by ray, then by piece.
func compareIDs(a, b SegmentID) int {
	if c := a.Ray() - b.Ray(); c != 0 {
		return c
	}
	return a.Piece - b.Piece
}
