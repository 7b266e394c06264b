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
	"bytes"
	"fmt"
	"io"
	"math"
	"os"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/sfnt/glyph"
)

// Style describes how a glyph outline is placed inside the SVG viewport.
type Style struct {
	// Scale converts design units into SVG user units.
	Scale float64

	// Padding multiplies the height of the em square to obtain the
	// viewport height.  A value of 1 gives a viewport exactly one em high.
	Padding float64

	// Baseline gives the position of the baseline, as a fraction of the
	// viewport height measured from the top.
	Baseline float64

	// Attrs lists additional attributes for the group which sets the fill
	// color.  The attributes are written in the given order.
	Attrs []Attr
}

// Attr is an XML attribute.
type Attr struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// PaintLayerAttrs returns the styling attributes of an SVG paint layer, as
// written by vector drawing applications.  Each call returns a new slice.
func PaintLayerAttrs() []Attr {
	return []Attr{
		{"data-paper-data", `{"isPaintingLayer":true}`},
		{"fill-rule", "nonzero"},
		{"stroke", "none"},
		{"stroke-width", "1"},
		{"stroke-linecap", "butt"},
		{"stroke-linejoin", "miter"},
		{"stroke-miterlimit", "10"},
		{"stroke-dasharray", ""},
		{"stroke-dashoffset", "0"},
		{"style", "mix-blend-mode: normal"},
	}
}

// Validate checks that the style can be used to render glyphs.
func (s *Style) Validate() error {
	if !(s.Scale > 0) || math.IsInf(s.Scale, 0) {
		return fmt.Errorf("invalid scale %g", s.Scale)
	}
	if !(s.Padding >= 1) || math.IsInf(s.Padding, 0) {
		return fmt.Errorf("invalid padding factor %g", s.Padding)
	}
	if !(s.Baseline >= 0 && s.Baseline <= 1) {
		return fmt.Errorf("invalid baseline position %g", s.Baseline)
	}
	for _, a := range s.Attrs {
		if a.Name == "" || strings.ContainsAny(a.Name, " \t\n\"'<>=&/") {
			return fmt.Errorf("invalid attribute name %q", a.Name)
		}
	}
	return nil
}

// Viewport returns the size of the SVG viewport for a glyph with the given
// advance width, in SVG user units.
//
// The width is the scaled advance width, rounded up.  The height is the
// scaled em size, rounded down, multiplied by the padding factor.
func (s *Style) Viewport(advance, unitsPerEm float64) (width, height int) {
	width = int(ceil(advance * s.Scale))
	height = int(floor(floor(unitsPerEm*s.Scale) * s.Padding))
	return width, height
}

// Transform returns the map from font design units to SVG user units, for
// a viewport of the given height.  The y-axis is flipped and the origin of
// the glyph is moved to the baseline.
func (s *Style) Transform(height int) matrix.Matrix {
	baseline := floor(float64(height) * s.Baseline)
	return matrix.Scale(s.Scale, -s.Scale).Mul(matrix.Translate(0, baseline))
}

// Render writes an SVG document showing the glyph for r to w.
// If the font has no glyph for r, nothing is written and false is returned.
func (s *Style) Render(w io.Writer, f *Face, r rune, color string) (bool, error) {
	gid, ok := f.Lookup(r)
	if !ok {
		return false, nil
	}
	_, err := w.Write(s.Document(f, gid, color))
	if err != nil {
		return false, err
	}
	return true, nil
}

// WriteFile writes an SVG document showing the glyph for r to the file
// fileName.  An existing file is overwritten.
// If the font has no glyph for r, no file is created and false is returned.
func (s *Style) WriteFile(fileName string, f *Face, r rune, color string) (bool, error) {
	gid, ok := f.Lookup(r)
	if !ok {
		return false, nil
	}
	err := os.WriteFile(fileName, s.Document(f, gid, color), 0o644)
	if err != nil {
		return false, err
	}
	return true, nil
}

// Document returns the SVG document for the glyph gid.
// The color string is used verbatim as the value of the fill attribute.
func (s *Style) Document(f *Face, gid glyph.ID, color string) []byte {
	width, height := s.Viewport(f.Advance(gid), f.UnitsPerEm())
	M := s.Transform(height)
	d := PathData(f.Outline(gid))

	buf := &bytes.Buffer{}
	fmt.Fprintf(buf, "<svg version=\"1.1\"\n")
	fmt.Fprintf(buf, "xmlns=\"http://www.w3.org/2000/svg\"\n")
	fmt.Fprintf(buf, "xmlns:xlink=\"http://www.w3.org/1999/xlink\"\n")
	fmt.Fprintf(buf, "width=\"%d\"\n", width)
	fmt.Fprintf(buf, "height=\"%d\"\n", height)
	fmt.Fprintf(buf, "viewBox=\"0,0,%d,%d\">\n", width, height)
	fmt.Fprintf(buf, "<g transform=\"translate(%s,%s) scale(%s,%s)\">\n",
		formatExact(M[4]), formatExact(M[5]), formatExact(M[0]), formatExact(M[3]))
	fmt.Fprintf(buf, "<g fill=\"%s\"", color)
	for _, a := range s.Attrs {
		fmt.Fprintf(buf, " %s=\"%s\"", a.Name, attrEscaper.Replace(a.Value))
	}
	fmt.Fprintf(buf, ">\n")
	fmt.Fprintf(buf, "<path d=\"%s\"/>\n", d)
	fmt.Fprintf(buf, "</g></g></svg>\n")
	return buf.Bytes()
}

// formatExact formats x without rounding.  The transform must use the
// same scale factor as the viewport computation.
func formatExact(x float64) string {
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}

var attrEscaper = strings.NewReplacer(
	`&`, "&amp;",
	`"`, "&quot;",
	`<`, "&lt;",
	`>`, "&gt;",
)

// ceil and floor absorb the rounding error of the multiplication by the
// scale factor, so that for example 600*0.02 is rounded to 12, not 13.
func ceil(x float64) float64 {
	return math.Ceil(x - eps)
}

func floor(x float64) float64 {
	return math.Floor(x + eps)
}

const eps = 1e-9
