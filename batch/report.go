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
	"fmt"
	"io"

	"seehuhn.de/go/fontsvg/charset"
)

// Tally counts the characters of one category.
type Tally struct {
	Found   int // glyph present, SVG file written
	Missing int // no glyph in the font
}

// Attempted returns the number of characters which were looked up.
func (t Tally) Attempted() int {
	return t.Found + t.Missing
}

// Report summarises a conversion run.
type Report struct {
	// Root is the directory which contains the category directories.
	// This is empty if no files were written.
	Root string

	// Counts has one entry for every category used in the run.
	Counts map[charset.Category]*Tally
}

func newReport(root string, categories []charset.Category) *Report {
	r := &Report{
		Root:   root,
		Counts: make(map[charset.Category]*Tally, len(categories)),
	}
	for _, cat := range categories {
		r.Counts[cat] = &Tally{}
	}
	return r
}

func (r *Report) add(cat charset.Category, found bool) {
	t := r.Counts[cat]
	if t == nil {
		t = &Tally{}
		r.Counts[cat] = t
	}
	if found {
		t.Found++
	} else {
		t.Missing++
	}
}

// Get returns the tally for one category.
// Categories which were not used in the run have a zero tally.
func (r *Report) Get(cat charset.Category) Tally {
	if t := r.Counts[cat]; t != nil {
		return *t
	}
	return Tally{}
}

// Total returns the sum over all categories.
func (r *Report) Total() Tally {
	var total Tally
	for _, t := range r.Counts {
		total.Found += t.Found
		total.Missing += t.Missing
	}
	return total
}

// WriteTo writes a human readable summary of the report to w.
func (r *Report) WriteTo(w io.Writer) (int64, error) {
	var total int64
	write := func(format string, args ...any) error {
		n, err := fmt.Fprintf(w, format, args...)
		total += int64(n)
		return err
	}

	if r.Root != "" {
		err := write("output written to %s\n", r.Root)
		if err != nil {
			return total, err
		}
	}
	for _, cat := range charset.Categories {
		t, ok := r.Counts[cat]
		if !ok {
			continue
		}
		err := write("  %-17s %6d / %6d\n", cat.Dir(), t.Found, t.Attempted())
		if err != nil {
			return total, err
		}
	}
	sum := r.Total()
	err := write("  %-17s %6d / %6d\n", "total", sum.Found, sum.Attempted())
	return total, err
}
