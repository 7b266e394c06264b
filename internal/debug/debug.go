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

// Package debug provides small fonts for use in unit tests.
//
// Both fonts have 1000 units per em and contain the same glyphs:
//
//	GID 0: .notdef (blank)
//	GID 1: "A", a rectangle, advance width 600
//	GID 2: "o", a rounded outline, advance width 600
//	GID 3: "space" (blank), advance width 250
//	GID 4: "asterisk", a triangle, advance width 500
//	GID 5: "uni4E2D", two rectangles, advance width 1000
//
// The character map maps 'A', 'o', ' ', '*' and '中' to these glyphs.
package debug

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"
	"time"

	"golang.org/x/image/font/gofont/goregular"

	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyf"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/maxp"
	"seehuhn.de/go/sfnt/os2"
)

// UnitsPerEm is the size of the em square of the test fonts.
const UnitsPerEm = 1000

// Advance widths of the glyphs in the test fonts.
const (
	WidthA        = 600
	WidthO        = 600
	WidthSpace    = 250
	WidthAsterisk = 500
	WidthZhong    = 1000
)

// MakeTrueType returns a font with TrueType outlines.
func MakeTrueType() *sfnt.Font {
	pt := func(x, y funit.Int16, onCurve bool) glyf.Point {
		return glyf.Point{X: x, Y: y, OnCurve: onCurve}
	}
	simple := func(bbox funit.Rect16, contours ...glyf.Contour) *glyf.Glyph {
		unpacked := &glyf.SimpleUnpacked{Contours: contours}
		return &glyf.Glyph{Rect16: bbox, Data: unpacked.Pack()}
	}

	glyphs := glyf.Glyphs{
		nil,
		simple(funit.Rect16{LLx: 50, LLy: 0, URx: 550, URy: 700},
			glyf.Contour{
				pt(50, 0, true), pt(550, 0, true), pt(550, 700, true), pt(50, 700, true),
			}),
		simple(funit.Rect16{LLx: 50, LLy: 0, URx: 550, URy: 500},
			glyf.Contour{
				pt(300, 0, true), pt(550, 0, false),
				pt(550, 250, true), pt(550, 500, false),
				pt(300, 500, true), pt(50, 500, false),
				pt(50, 250, true), pt(50, 0, false),
			}),
		nil,
		simple(funit.Rect16{LLx: 50, LLy: 300, URx: 450, URy: 700},
			glyf.Contour{
				pt(50, 300, true), pt(450, 300, true), pt(250, 700, true),
			}),
		simple(funit.Rect16{LLx: 100, LLy: -100, URx: 900, URy: 800},
			glyf.Contour{
				pt(100, 200, true), pt(900, 200, true), pt(900, 500, true), pt(100, 500, true),
			},
			glyf.Contour{
				pt(450, -100, true), pt(550, -100, true), pt(550, 800, true), pt(450, 800, true),
			}),
	}

	info := makeInfo("Debug TrueType")
	info.Outlines = &glyf.Outlines{
		Glyphs: glyphs,
		Widths: []funit.Int16{0, WidthA, WidthO, WidthSpace, WidthAsterisk, WidthZhong},
		Names:  glyphNames,
		Maxp: &maxp.TTFInfo{
			MaxPoints:   8,
			MaxContours: 2,
			MaxZones:    2,
		},
	}
	installCMap(info)
	return info
}

// MakeCFF returns a font with CFF outlines.
func MakeCFF() *sfnt.Font {
	notdef := cff.NewGlyph(glyphNames[0], 0)

	a := cff.NewGlyph(glyphNames[1], WidthA)
	a.MoveTo(50, 0)
	a.LineTo(550, 0)
	a.LineTo(550, 700)
	a.LineTo(50, 700)

	o := cff.NewGlyph(glyphNames[2], WidthO)
	o.MoveTo(300, 0)
	o.CurveTo(438, 0, 550, 112, 550, 250)
	o.CurveTo(550, 388, 438, 500, 300, 500)
	o.CurveTo(162, 500, 50, 388, 50, 250)
	o.CurveTo(50, 112, 162, 0, 300, 0)

	space := cff.NewGlyph(glyphNames[3], WidthSpace)

	asterisk := cff.NewGlyph(glyphNames[4], WidthAsterisk)
	asterisk.MoveTo(50, 300)
	asterisk.LineTo(450, 300)
	asterisk.LineTo(250, 700)

	zhong := cff.NewGlyph(glyphNames[5], WidthZhong)
	zhong.MoveTo(100, 200)
	zhong.LineTo(900, 200)
	zhong.LineTo(900, 500)
	zhong.LineTo(100, 500)
	zhong.MoveTo(450, -100)
	zhong.LineTo(550, -100)
	zhong.LineTo(550, 800)
	zhong.LineTo(450, 800)

	encoding := make([]glyph.ID, 256)
	encoding['A'] = 1
	encoding['o'] = 2
	encoding[' '] = 3
	encoding['*'] = 4

	info := makeInfo("Debug CFF")
	info.Outlines = &cff.Outlines{
		Glyphs:  []*cff.Glyph{notdef, a, o, space, asterisk, zhong},
		Private: []*type1.PrivateDict{{BlueScale: 0.039625, BlueShift: 7, BlueFuzz: 1}},
		FDSelect: func(glyph.ID) int {
			return 0
		},
		Encoding: encoding,
	}
	installCMap(info)
	return info
}

// GoRegular returns the Go Regular font, which has TrueType outlines.
func GoRegular() *sfnt.Font {
	info, err := sfnt.Read(bytes.NewReader(goregular.TTF))
	if err != nil {
		panic(err)
	}
	return info
}

// WriteGoRegular stores the Go Regular font in a file inside a temporary
// directory and returns the file name.
func WriteGoRegular(t testing.TB, name string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), name)
	err := os.WriteFile(fileName, goregular.TTF, 0o644)
	if err != nil {
		t.Fatal(err)
	}
	return fileName
}

// WriteFont stores a font in a file inside a temporary directory and returns
// the file name.
func WriteFont(t testing.TB, info *sfnt.Font, name string) string {
	t.Helper()
	fileName := filepath.Join(t.TempDir(), name)
	fd, err := os.Create(fileName)
	if err != nil {
		t.Fatal(err)
	}
	_, err = info.Write(fd)
	if err != nil {
		fd.Close()
		t.Fatal(err)
	}
	err = fd.Close()
	if err != nil {
		t.Fatal(err)
	}
	return fileName
}

var glyphNames = []string{".notdef", "A", "o", "space", "asterisk", "uni4E2D"}

func makeInfo(familyName string) *sfnt.Font {
	now := time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)
	return &sfnt.Font{
		FamilyName: familyName,
		Weight:     os2.WeightNormal,
		Width:      os2.WidthNormal,
		IsRegular:  true,

		CreationTime:     now,
		ModificationTime: now,

		UnitsPerEm: UnitsPerEm,

		Ascent:    800,
		Descent:   -200,
		LineGap:   200,
		CapHeight: 700,
		XHeight:   500,
	}
}

func installCMap(info *sfnt.Font) {
	subtable := cmap.Format4{
		'A':    1,
		'o':    2,
		' ':    3,
		'*':    4,
		0x4E2D: 5, // 中
	}
	info.CMapTable = cmap.Table{
		{PlatformID: 3, EncodingID: 1}: subtable.Encode(0),
	}
}
