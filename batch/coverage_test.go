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

package batch

import (
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"seehuhn.de/go/fontsvg"
	"seehuhn.de/go/fontsvg/charset"
	"seehuhn.de/go/fontsvg/internal/debug"
)

func TestCoverage(t *testing.T) {
	face, err := fontsvg.NewFace(debug.MakeCFF())
	if err != nil {
		t.Fatal(err)
	}

	p := testProfile(t, "classic")
	p.FullWidth = true
	report, err := p.Coverage(face)
	if err != nil {
		t.Fatal(err)
	}

	want := map[charset.Category]*Tally{
		charset.Uppercase:       {Found: 1, Missing: 25},
		charset.Lowercase:       {Found: 1, Missing: 25},
		charset.Symbol:          {Found: 2, Missing: 41},
		charset.CJK:             {Found: 1, Missing: 20991},
		charset.FullWidthSymbol: {Missing: len(charset.FullWidthSymbols)},
	}
	if diff := cmp.Diff(want, report.Counts); diff != "" {
		t.Errorf("wrong counts (-want +got):\n%s", diff)
	}

	buf := &strings.Builder{}
	_, err = report.WriteTo(buf)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(buf.String(), "output written") {
		t.Errorf("unexpected output root in summary:\n%s", buf.String())
	}
}
