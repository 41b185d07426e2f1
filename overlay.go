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
	"fmt"
	"image/color"
	"maps"
	"slices"
)

// Overlay holds per-segment edits of a motif: hidden segments and color
// overrides.  Entries are keyed by [SegmentID] and therefore apply to all
// copies of the motif in a pattern.
//
// The zero value is an empty overlay.  A nil *Overlay can be read from, and
// then behaves like an empty overlay.
//
// Entries for IDs which do not exist in the current motif are ignored.
// Such entries can occur after parameter changes which alter the way the
// construction rays cross; see [Overlay.Prune].
type Overlay struct {
	Hidden map[SegmentID]bool
	Colors map[SegmentID]color.RGBA
}

// NewOverlay builds an overlay from segment IDs in "<ray>_<piece>" notation.
// The keys of colors are segment IDs, the values are color names as
// accepted by [ParseColor].
func NewOverlay(hidden []string, colors map[string]string) (*Overlay, error) {
	ov := &Overlay{}
	for _, s := range hidden {
		id, err := ParseSegmentID(s)
		if err != nil {
			return nil, err
		}
		ov.Hide(id)
	}
	for s, name := range colors {
		id, err := ParseSegmentID(s)
		if err != nil {
			return nil, err
		}
		c, err := ParseColor(name)
		if err != nil {
			return nil, fmt.Errorf("segment %s: %w", id, err)
		}
		ov.SetColor(id, c)
	}
	return ov, nil
}

// IsHidden reports whether the segment is hidden.
func (o *Overlay) IsHidden(id SegmentID) bool {
	return o != nil && o.Hidden[id]
}

// Color returns the override color for the segment, if any.
func (o *Overlay) Color(id SegmentID) (color.RGBA, bool) {
	if o == nil {
		return color.RGBA{}, false
	}
	c, ok := o.Colors[id]
	return c, ok
}

// Hide marks the segment as hidden.
func (o *Overlay) Hide(id SegmentID) {
	if o.Hidden == nil {
		o.Hidden = make(map[SegmentID]bool)
	}
	o.Hidden[id] = true
}

// Show removes the hidden mark from the segment.
func (o *Overlay) Show(id SegmentID) {
	delete(o.Hidden, id)
}

// Toggle switches the segment between hidden and visible.
// The return value reports whether the segment is now hidden.
func (o *Overlay) Toggle(id SegmentID) bool {
	if o.Hidden[id] {
		o.Show(id)
		return false
	}
	o.Hide(id)
	return true
}

// SetColor sets the override color for the segment.
func (o *Overlay) SetColor(id SegmentID, c color.RGBA) {
	if o.Colors == nil {
		o.Colors = make(map[SegmentID]color.RGBA)
	}
	o.Colors[id] = c
}

// ClearColor removes the override color for the segment.
func (o *Overlay) ClearColor(id SegmentID) {
	delete(o.Colors, id)
}

// CycleColor advances the segment's color through the default color and
// the entries of [Palette], in this order.  Colors not in the palette are
// followed by the default color.
// The return value reports the new override color, if any.
func (o *Overlay) CycleColor(id SegmentID) (color.RGBA, bool) {
	next := 0
	if cur, ok := o.Colors[id]; ok {
		next = slices.Index(Palette, cur) + 1
		if next == 0 {
			next = len(Palette)
		}
	}
	if next >= len(Palette) {
		o.ClearColor(id)
		return color.RGBA{}, false
	}
	o.SetColor(id, Palette[next])
	return Palette[next], true
}

// Clone returns a deep copy of the overlay.
func (o *Overlay) Clone() *Overlay {
	if o == nil {
		return &Overlay{}
	}
	return &Overlay{
		Hidden: maps.Clone(o.Hidden),
		Colors: maps.Clone(o.Colors),
	}
}

// Prune removes all entries whose ID does not occur in m, and returns the
// removed IDs in sorted order.
func (o *Overlay) Prune(m *Motif) []SegmentID {
	var orphans []SegmentID
	for id := range o.Hidden {
		if _, ok := m.Lookup(id); !ok {
			orphans = append(orphans, id)
			delete(o.Hidden, id)
		}
	}
	for id := range o.Colors {
		if _, ok := m.Lookup(id); !ok {
			if !slices.Contains(orphans, id) {
				orphans = append(orphans, id)
			}
			delete(o.Colors, id)
		}
	}
	slices.SortFunc(orphans, compareIDs)
	return orphans
}
