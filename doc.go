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

// Package fontsvg converts individual glyphs of TrueType and OpenType fonts
// into standalone SVG documents.
//
// A [Face] gives access to the glyphs of a font by Unicode code point.
// A [Style] describes the size of the SVG viewport and the placement of the
// outline inside it.  Font design space has the y-axis pointing up, SVG user
// space has the y-axis pointing down; the transformation written into each
// document flips the axis and moves the glyph origin onto the baseline.
//
// The batch conversion of whole character sets into a directory tree is
// implemented in the sub-package [seehuhn.de/go/fontsvg/batch].
package fontsvg
