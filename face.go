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
	"errors"
	"fmt"

	"seehuhn.de/go/geom/path"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
)

// Face gives access to the glyphs of a TrueType or OpenType font,
// addressed by Unicode code point.
//
// A Face is read-only after construction.
type Face struct {
	font *sfnt.Font
	cmap cmap.Subtable
}

// OpenFace reads the font file with the given name.
func OpenFace(fileName string) (*Face, error) {
	font, err := sfnt.ReadFile(fileName)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	face, err := NewFace(font)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return face, nil
}

// NewFace returns a Face for an already parsed font.
// The best available character map of the font is used for all lookups.
func NewFace(font *sfnt.Font) (*Face, error) {
	if font.UnitsPerEm == 0 {
		return nil, errInvalidUnitsPerEm
	}
	switch font.Outlines.(type) {
	case *glyf.Outlines, *cff.Outlines:
		// pass
	default:
		return nil, errUnsupportedOutlines
	}

	subtable, err := font.CMapTable.GetBest()
	if err != nil {
		return nil, err
	}
	return &Face{font: font, cmap: subtable}, nil
}

// FamilyName returns the family name recorded in the font.
func (f *Face) FamilyName() string {
	return f.font.FamilyName
}

// UnitsPerEm returns the number of design units per em.
func (f *Face) UnitsPerEm() float64 {
	return float64(f.font.UnitsPerEm)
}

// Ascent returns the typographic ascent in design units.
func (f *Face) Ascent() float64 {
	return float64(f.font.Ascent)
}

// Descent returns the typographic descent in design units.
// The value is normally negative.
func (f *Face) Descent() float64 {
	return float64(f.font.Descent)
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Face) NumGlyphs() int {
	return f.font.NumGlyphs()
}

// Lookup returns the glyph used to show the code point r.
// If the font has no glyph for r, ok is false.
func (f *Face) Lookup(r rune) (gid glyph.ID, ok bool) {
	gid = f.cmap.Lookup(r)
	if gid == 0 || int(gid) >= f.NumGlyphs() {
		return 0, false
	}
	return gid, true
}

// GlyphName returns the name of a glyph, or the empty string if the font
// does not record glyph names.
func (f *Face) GlyphName(gid glyph.ID) string {
	return f.font.GlyphName(gid)
}

// Advance returns the advance width of a glyph in design units.
func (f *Face) Advance(gid glyph.ID) float64 {
	return float64(f.font.GlyphWidth(gid))
}

// Outline returns the outline of a glyph in design units, with the y-axis
// pointing up.  Every contour of the outline ends with a close command.
func (f *Face) Outline(gid glyph.ID) path.Path {
	switch o := f.font.Outlines.(type) {
	case *glyf.Outlines:
		return o.Glyphs.Path(gid)
	case *cff.Outlines:
		if int(gid) >= len(o.Glyphs) || o.Glyphs[gid] == nil {
			return emptyPath
		}
		return cffPath(o.Glyphs[gid])
	default:
		return emptyPath
	}
}

// cffPath converts the drawing operations of a CFF glyph into a path.
// CFF contours are closed implicitly, so a close command is emitted before
// every moveto which follows a drawing operation, and at the end.
func cffPath(g *cff.Glyph) path.Path {
	return func(yield func(path.Command, []path.Point) bool) {
		var buf [3]path.Point
		open := false
		for _, cmd := range g.Cmds {
			switch cmd.Op {
			case cff.OpMoveTo:
				if open {
					if !yield(path.CmdClose, nil) {
						return
					}
				}
				buf[0] = path.Point{X: cmd.Args[0], Y: cmd.Args[1]}
				if !yield(path.CmdMoveTo, buf[:1]) {
					return
				}
				open = true
			case cff.OpLineTo:
				buf[0] = path.Point{X: cmd.Args[0], Y: cmd.Args[1]}
				if !yield(path.CmdLineTo, buf[:1]) {
					return
				}
			case cff.OpCurveTo:
				buf[0] = path.Point{X: cmd.Args[0], Y: cmd.Args[1]}
				buf[1] = path.Point{X: cmd.Args[2], Y: cmd.Args[3]}
				buf[2] = path.Point{X: cmd.Args[4], Y: cmd.Args[5]}
				if !yield(path.CmdCubeTo, buf[:3]) {
					return
				}
			}
		}
		if open {
			yield(path.CmdClose, nil)
		}
	}
}

func emptyPath(yield func(path.Command, []path.Point) bool) {}

var (
	errInvalidUnitsPerEm   = errors.New("font has invalid unitsPerEm value 0")
	errUnsupportedOutlines = errors.New("font has no glyf or CFF outlines")
)
