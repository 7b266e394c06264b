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
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"seehuhn.de/go/geom/matrix"

	"seehuhn.de/go/fontsvg/internal/debug"
)

var testStyle = &Style{
	Scale:    0.25,
	Padding:  1,
	Baseline: 0.75,
}

func TestViewport(t *testing.T) {
	cases := []struct {
		style         Style
		advance, upem float64
		width, height int
	}{
		{Style{Scale: 0.25, Padding: 1}, 600, 1000, 150, 250},
		{Style{Scale: 0.25, Padding: 1}, 601, 1000, 151, 250},
		{Style{Scale: 0.25, Padding: 1}, 600, 1002, 150, 250},
		{Style{Scale: 0.02, Padding: 1}, 600, 1000, 12, 20},
		{Style{Scale: 0.02, Padding: 1.5}, 600, 1000, 12, 30},
		{Style{Scale: 0.25, Padding: 1.2}, 1229, 2048, 308, 614},
		{Style{Scale: 0.25, Padding: 1}, 0, 1000, 0, 250},
	}
	for _, c := range cases {
		w, h := c.style.Viewport(c.advance, c.upem)
		if w != c.width || h != c.height {
			t.Errorf("%v, advance=%g, upem=%g: got %dx%d, want %dx%d",
				c.style, c.advance, c.upem, w, h, c.width, c.height)
		}
	}
}

func TestTransform(t *testing.T) {
	M := testStyle.Transform(250)
	want := matrix.Matrix{0.25, 0, 0, -0.25, 0, 187}
	if d := cmp.Diff(want, M); d != "" {
		t.Errorf("wrong transform (-want +got):\n%s", d)
	}

	apply := func(x, y float64) (float64, float64) {
		return M[0]*x + M[2]*y + M[4], M[1]*x + M[3]*y + M[5]
	}
	// The baseline of the glyph is placed at 3/4 of the viewport height.
	if x, y := apply(0, 0); x != 0 || y != 187 {
		t.Errorf("origin mapped to (%g, %g)", x, y)
	}
	// Points above the baseline in font space are above it in SVG space.
	if _, y := apply(0, 1000); y != 187-250 {
		t.Errorf("top of em square mapped to y=%g", y)
	}
}

func TestDocument(t *testing.T) {
	face, err := NewFace(debug.MakeCFF())
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	ok, err := testStyle.Render(buf, face, 'A', "red")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("glyph for 'A' not found")
	}

	want := `<svg version="1.1"
xmlns="http://www.w3.org/2000/svg"
xmlns:xlink="http://www.w3.org/1999/xlink"
width="150"
height="250"
viewBox="0,0,150,250">
<g transform="translate(0,187) scale(0.25,-0.25)">
<g fill="red">
<path d="M50 0H550V700H50Z"/>
</g></g></svg>
`
	if d := cmp.Diff(want, buf.String()); d != "" {
		t.Errorf("wrong SVG (-want +got):\n%s", d)
	}
}

// The scale factor in the transform must match the one used for the
// viewport, even when it has many decimal places.
func TestDocumentScale(t *testing.T) {
	face, err := NewFace(debug.MakeCFF())
	if err != nil {
		t.Fatal(err)
	}
	gid, _ := face.Lookup('A')

	cases := []struct {
		scale     float64
		viewport  string
		transform string
	}{
		{0.25, `viewBox="0,0,150,250"`, `translate(0,187) scale(0.25,-0.25)`},
		{0.0125, `viewBox="0,0,8,12"`, `translate(0,9) scale(0.0125,-0.0125)`},
		{0.0004, `viewBox="0,0,1,0"`, `translate(0,0) scale(0.0004,-0.0004)`},
	}
	for _, c := range cases {
		style := &Style{Scale: c.scale, Padding: 1, Baseline: 0.75}
		svg := string(style.Document(face, gid, "#FF0000"))
		if !strings.Contains(svg, c.viewport) {
			t.Errorf("scale %g: %q not found in\n%s", c.scale, c.viewport, svg)
		}
		if !strings.Contains(svg, c.transform) {
			t.Errorf("scale %g: %q not found in\n%s", c.scale, c.transform, svg)
		}
	}
}

func TestDocumentAttrs(t *testing.T) {
	face, err := NewFace(debug.MakeTrueType())
	if err != nil {
		t.Fatal(err)
	}
	style := *testStyle
	style.Attrs = PaintLayerAttrs()

	buf := &bytes.Buffer{}
	_, err = style.Render(buf, face, '中', "#00ff00")
	if err != nil {
		t.Fatal(err)
	}
	svg := buf.String()

	for _, want := range []string{
		`width="250"`,
		`<g fill="#00ff00" data-paper-data="{&quot;isPaintingLayer&quot;:true}" fill-rule="nonzero"`,
		`stroke-dasharray=""`,
		`style="mix-blend-mode: normal">`,
	} {
		if !strings.Contains(svg, want) {
			t.Errorf("%q not found in\n%s", want, svg)
		}
	}
	if n := strings.Count(svg, "<path "); n != 1 {
		t.Errorf("found %d path elements", n)
	}
}

func TestDocumentColor(t *testing.T) {
	face, err := NewFace(debug.MakeTrueType())
	if err != nil {
		t.Fatal(err)
	}
	gid, _ := face.Lookup('A')
	for _, color := range []string{"", "rgb(0, 0, 255)", "currentColor"} {
		svg := string(testStyle.Document(face, gid, color))
		want := "<g fill=\"" + color + "\">\n"
		if !strings.Contains(svg, want) {
			t.Errorf("%q not found in\n%s", want, svg)
		}
	}
}

func TestRenderDeterministic(t *testing.T) {
	for name, face := range testFaces(t) {
		for _, r := range []rune{'A', 'o', ' ', '*', '中'} {
			b1 := &bytes.Buffer{}
			b2 := &bytes.Buffer{}
			_, err := testStyle.Render(b1, face, r, "#FF0000")
			if err != nil {
				t.Fatal(err)
			}
			_, err = testStyle.Render(b2, face, r, "#FF0000")
			if err != nil {
				t.Fatal(err)
			}
			if b1.Len() == 0 || !bytes.Equal(b1.Bytes(), b2.Bytes()) {
				t.Errorf("%s %q: output is not reproducible", name, r)
			}
		}
	}
}

func TestRenderMissing(t *testing.T) {
	face, err := NewFace(debug.MakeTrueType())
	if err != nil {
		t.Fatal(err)
	}

	buf := &bytes.Buffer{}
	ok, err := testStyle.Render(buf, face, 'B', "#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if ok || buf.Len() > 0 {
		t.Errorf("missing glyph: ok=%t, %d bytes written", ok, buf.Len())
	}

	fileName := filepath.Join(t.TempDir(), "B.svg")
	ok, err = testStyle.WriteFile(fileName, face, 'B', "#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if ok {
		t.Error("missing glyph reported as found")
	}
	if _, err := os.Stat(fileName); !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("file for missing glyph: %v", err)
	}
}

func TestWriteFile(t *testing.T) {
	face, err := NewFace(debug.MakeTrueType())
	if err != nil {
		t.Fatal(err)
	}

	fileName := filepath.Join(t.TempDir(), "A.svg")
	err = os.WriteFile(fileName, []byte("old contents which are longer than the new ones"+
		strings.Repeat(".", 1000)), 0o644)
	if err != nil {
		t.Fatal(err)
	}

	ok, err := testStyle.WriteFile(fileName, face, 'A', "#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if !ok {
		t.Fatal("glyph for 'A' not found")
	}

	got, err := os.ReadFile(fileName)
	if err != nil {
		t.Fatal(err)
	}
	gid, _ := face.Lookup('A')
	want := testStyle.Document(face, gid, "#FF0000")
	if !bytes.Equal(got, want) {
		t.Errorf("file contents differ from Document():\n%s", got)
	}
}

func TestStyleValidate(t *testing.T) {
	good := []Style{
		{Scale: 0.25, Padding: 1, Baseline: 0.75},
		{Scale: 0.02, Padding: 1.2, Baseline: 1, Attrs: PaintLayerAttrs()},
		{Scale: 1, Padding: 1, Baseline: 0},
	}
	for _, s := range good {
		if err := s.Validate(); err != nil {
			t.Errorf("%v: %v", s, err)
		}
	}

	bad := []Style{
		{Scale: 0, Padding: 1, Baseline: 0.75},
		{Scale: -1, Padding: 1, Baseline: 0.75},
		{Scale: 0.25, Padding: 0.5, Baseline: 0.75},
		{Scale: 0.25, Padding: 1, Baseline: 1.5},
		{Scale: 0.25, Padding: 1, Baseline: -0.1},
		{Scale: 0.25, Padding: 1, Baseline: 0.75, Attrs: []Attr{{Name: "a b", Value: "x"}}},
		{Scale: 0.25, Padding: 1, Baseline: 0.75, Attrs: []Attr{{Name: "", Value: "x"}}},
	}
	for _, s := range bad {
		if err := s.Validate(); err == nil {
			t.Errorf("%v: invalid style not detected", s)
		}
	}
}
