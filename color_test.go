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
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want color.RGBA
	}{
		{"#00bcd4", DefaultStroke},
		{"#FF5252", Palette[0]},
		{"#fff", color.RGBA{R: 255, G: 255, B: 255, A: 255}},
		{" red ", color.RGBA{R: 255, A: 255}},
		{"gold", color.RGBA{R: 0xff, G: 0xd7, B: 0x00, A: 0xff}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		require.NoError(t, err, tc.in)
		assert.Equal(t, tc.want, got, tc.in)
	}

	for _, bad := range []string{"", "#12", "#1234567", "#gggggg", "not-a-color"} {
		_, err := ParseColor(bad)
		assert.ErrorIs(t, err, ErrBadColor, bad)
	}
}

func TestFormatColor(t *testing.T) {
	assert.Equal(t, "#1a1a1a", FormatColor(DefaultBackground))
	assert.Equal(t, "#e040fb", FormatColor(Palette[3]))
}
