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

package charset

// reserved maps the characters which cannot be used in file names on
// common file systems to replacement names.
var reserved = map[rune]string{
	'*':  "symbol_asterisk",
	'/':  "symbol_slash",
	'\\': "symbol_backslash",
	'|':  "symbol_pipe",
	':':  "symbol_colon",
	'?':  "symbol_question",
	'"':  "symbol_quote",
	'<':  "symbol_less",
	'>':  "symbol_greater",
}

// Sanitize returns the file name stem used for the character r.
// Characters which are not allowed in file names are replaced by a textual
// name, all other characters are used as they are.
func Sanitize(r rune) string {
	if name, ok := reserved[r]; ok {
		return name
	}
	return string(r)
}

// FileName returns the name of the SVG file for the character r.
func FileName(r rune) string {
	return Sanitize(r) + ".svg"
}
