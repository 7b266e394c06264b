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

// Package charset enumerates the characters which are converted to SVG,
// and decides where the output for each character is stored.
package charset

import (
	"fmt"

	"golang.org/x/text/unicode/runenames"
)

// Category is the class of a character, used to group the output files
// into directories.
type Category int

// These are the supported categories.
const (
	Uppercase Category = iota
	Lowercase
	Symbol
	CJK
	FullWidthSymbol
)

// Categories lists all categories, in the order in which they are reported.
var Categories = []Category{Uppercase, Lowercase, Symbol, CJK, FullWidthSymbol}

// Classify returns the category of a character.
//
// ASCII letters are upper- or lowercase, all other ASCII characters are
// symbols, and everything beyond ASCII is counted as CJK.
// [FullWidthSymbol] is never returned; this category is only used for the
// characters of [FullWidthSymbols].
func Classify(r rune) Category {
	switch {
	case r >= 'A' && r <= 'Z':
		return Uppercase
	case r >= 'a' && r <= 'z':
		return Lowercase
	case r >= 0 && r <= 0x7E:
		return Symbol
	default:
		return CJK
	}
}

// Dir returns the name of the directory used for the category.
func (c Category) Dir() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Symbol:
		return "symbol"
	case CJK:
		return "chinese"
	case FullWidthSymbol:
		return "fullwidth_symbol"
	default:
		return fmt.Sprintf("category%d", int(c))
	}
}

func (c Category) String() string {
	switch c {
	case Uppercase:
		return "uppercase"
	case Lowercase:
		return "lowercase"
	case Symbol:
		return "symbol"
	case CJK:
		return "CJK"
	case FullWidthSymbol:
		return "full-width symbol"
	default:
		return fmt.Sprintf("Category(%d)", int(c))
	}
}

// Describe returns a human readable description of r, for use in messages.
// The result has the form `'A' (U+0041 LATIN CAPITAL LETTER A)`.
func Describe(r rune) string {
	name := runenames.Name(r)
	if name == "" {
		return fmt.Sprintf("%q (U+%04X)", r, r)
	}
	return fmt.Sprintf("%q (U+%04X %s)", r, r, name)
}
