// seehuhn.de/go/fontsvg - convert font glyphs into SVG files
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

package fontsvg

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/path"
)

// PathData converts a path into the syntax of the "d" attribute of an SVG
// <path> element.  Coordinates are copied unchanged, so the result is in the
// same coordinate system as the path.
//
// Lines which are horizontal or vertical are written using the H and V
// commands, and zero-length lines are omitted.  All other segments keep
// their type: quadratic curves become Q, cubic curves become C.
func PathData(p path.Path) string {
	b := &strings.Builder{}

	var cur, start path.Point
	for cmd, pts := range p {
		switch cmd {
		case path.CmdMoveTo:
			b.WriteByte('M')
			writePoint(b, pts[0])
			cur = pts[0]
			start = cur
		case path.CmdLineTo:
			next := pts[0]
			switch {
			case next.X == cur.X && next.Y == cur.Y:
				continue
			case next.X == cur.X:
				b.WriteByte('V')
				writeNumber(b, next.Y)
			case next.Y == cur.Y:
				b.WriteByte('H')
				writeNumber(b, next.X)
			default:
				b.WriteByte('L')
				writePoint(b, next)
			}
			cur = next
		case path.CmdQuadTo:
			b.WriteByte('Q')
			writePoint(b, pts[0])
			b.WriteByte(' ')
			writePoint(b, pts[1])
			cur = pts[1]
		case path.CmdCubeTo:
			b.WriteByte('C')
			writePoint(b, pts[0])
			b.WriteByte(' ')
			writePoint(b, pts[1])
			b.WriteByte(' ')
			writePoint(b, pts[2])
			cur = pts[2]
		case path.CmdClose:
			b.WriteByte('Z')
			cur = start
		}
	}
	return b.String()
}

func writePoint(b *strings.Builder, p path.Point) {
	writeNumber(b, p.X)
	b.WriteByte(' ')
	writeNumber(b, p.Y)
}

// writeNumber writes x with at most three decimal places, dropping trailing
// zeros.
func writeNumber(b *strings.Builder, x float64) {
	x = math.Round(x*1000) / 1000
	if x == 0 {
		x = 0 // avoid "-0"
	}
	b.WriteString(strconv.FormatFloat(x, 'f', -1, 64))
}
