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
	"seehuhn.de/go/fontsvg"
)

// Coverage looks up all characters of the profile in f and counts the
// glyphs which are present.  No files are written, and the Root field of
// the returned report is empty.
func (p *Profile) Coverage(f *fontsvg.Face) (*Report, error) {
	err := p.Validate()
	if err != nil {
		return nil, err
	}
	passes, err := p.passes()
	if err != nil {
		return nil, err
	}

	report := newReport("", p.categories())
	for _, ps := range passes {
		for _, r := range ps.chars {
			_, ok := f.Lookup(r)
			report.add(ps.classify(r), ok)
		}
	}
	return report, nil
}
