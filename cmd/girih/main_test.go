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

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestList(t *testing.T) {
	buf := &bytes.Buffer{}
	require.NoError(t, run([]string{"-list"}, buf))
	rows := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, rows, 12)
	assert.True(t, strings.HasPrefix(rows[0], "0_0 "))
}

func TestSVGToStdout(t *testing.T) {
	buf := &bytes.Buffer{}
	err := run([]string{"-grid", "square", "-tiles", "4", "-angle", "60", "-hide", "0_0", "-color", "1_0=gold"}, buf)
	require.NoError(t, err)
	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "<svg "))
	assert.NotContains(t, out, `data-id="0_0"`)
	assert.Contains(t, out, `stroke="#ffd700"`)
}

func TestPNGFile(t *testing.T) {
	fname := filepath.Join(t.TempDir(), "out.png")
	err := run([]string{"-canvas", "120x80", "-construction", "-ghosts", "-hide", "0_0", "-o", fname}, nil)
	require.NoError(t, err)

	f, err := os.Open(fname)
	require.NoError(t, err)
	defer f.Close()
	img, err := png.Decode(f)
	require.NoError(t, err)
	assert.Equal(t, 120, img.Bounds().Dx())
	assert.Equal(t, 80, img.Bounds().Dy())
}

func TestErrors(t *testing.T) {
	cases := [][]string{
		{"-grid", "triangle"},
		{"-canvas", "800"},
		{"-canvas", "0x10"},
		{"-hide", "abc"},
		{"-color", "1_0"},
		{"-stroke", "nope"},
		{"-o", "out.gif"},
	}
	for _, args := range cases {
		err := run(args, &bytes.Buffer{})
		assert.Error(t, err, "%v", args)
	}
}

func TestParseCanvas(t *testing.T) {
	w, h, err := parseCanvas("1024X768")
	require.NoError(t, err)
	assert.Equal(t, 1024.0, w)
	assert.Equal(t, 768.0, h)
	_, _, err = parseCanvas("x")
	assert.ErrorIs(t, err, errUsage)
}

func TestParseAssignments(t *testing.T) {
	got := parseAssignments(" 1_0 = red ,, 3_1=#fff")
	assert.Equal(t, map[string]string{"1_0": "red", "3_1": "#fff"}, got)
	assert.Empty(t, splitList(" , "))
}
