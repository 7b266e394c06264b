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

// Package batch converts all glyphs of a font which belong to a set of
// characters into SVG files.
//
// The output for a font file "dir/name.ttf" is written into the directory
// tree "dir/name/", with one sub-directory per character category:
//
//	name/uppercase/A.svg
//	name/lowercase/a.svg
//	name/symbol/symbol_asterisk.svg
//	name/chinese/中.svg
//	name/fullwidth_symbol/，.svg
package batch

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/fontsvg"
	"seehuhn.de/go/fontsvg/charset"
)

// ErrFontNotFound is returned by [Driver.Run] if the font file does not
// exist.
var ErrFontNotFound = errors.New("font file not found")

// A Driver converts the glyphs of a font into a tree of SVG files.
type Driver struct {
	// Profile selects the characters and the SVG style.
	// If this is nil, the default profile is used.
	Profile *Profile

	// Color is the fill color of the glyphs.  The value is copied into the
	// SVG files without any checks.
	Color string

	// OutDir is the directory where the output tree is created.
	// If this is empty, the output tree is placed next to the font file.
	OutDir string

	// Log receives one message per character.
	// If this is nil, nothing is logged.
	Log logrus.FieldLogger
}

// A pass is a list of characters together with the rule which assigns
// them to categories.
type pass struct {
	chars    []rune
	classify func(rune) charset.Category
}

// Run converts the glyphs of the given font file.
//
// If the font file does not exist, an error wrapping [ErrFontNotFound] is
// returned and no directories are created.  This check comes before the
// profile is validated.  Characters which are not
// present in the font are counted and skipped.  All other problems abort
// the run; the returned report then covers the characters processed so far.
func (d *Driver) Run(fontFile string) (*Report, error) {
	_, err := os.Stat(fontFile)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrFontNotFound, fontFile)
	} else if err != nil {
		return nil, err
	}

	var profile *Profile
	if d.Profile != nil {
		profile = d.Profile.Clone()
	} else {
		profile, _ = BuiltinProfile(DefaultProfile)
	}
	err = profile.Validate()
	if err != nil {
		return nil, err
	}
	log := d.Log
	if log == nil {
		log = discardLogger()
	}

	passes, err := profile.passes()
	if err != nil {
		return nil, err
	}

	face, err := fontsvg.OpenFace(fontFile)
	if err != nil {
		return nil, err
	}
	log.WithFields(logrus.Fields{
		"font":    face.FamilyName(),
		"glyphs":  face.NumGlyphs(),
		"profile": profile.Name,
	}).Debug("font loaded")

	root := outputRoot(fontFile, d.OutDir)
	categories := profile.categories()
	report := newReport(root, categories)
	for _, cat := range categories {
		dir := filepath.Join(root, cat.Dir())
		err := os.MkdirAll(dir, 0o755)
		if err != nil {
			return nil, err
		}
		log.WithField("dir", dir).Debug("output directory created")
	}

	style := profile.Style()
	for _, p := range passes {
		for _, r := range p.chars {
			cat := p.classify(r)
			outPath := filepath.Join(root, cat.Dir(), charset.FileName(r))

			ok, err := style.WriteFile(outPath, face, r, d.Color)
			if err != nil {
				return report, err
			}

			report.add(cat, ok)
			entry := log.WithField("char", string(r))
			if ok {
				entry.WithField("path", outPath).Info("✔ " + charset.Describe(r))
			} else {
				entry.Warn("⚠ missing glyph for " + charset.Describe(r))
			}
		}
	}

	return report, nil
}

// passes returns the characters to convert, grouped into passes.
// The first pass contains the ASCII characters and the CJK characters,
// assigned to categories by their code point.  If enabled, a second pass
// contains the full-width symbols; these are then left out of the first
// pass, so that every character is converted at most once.
func (p *Profile) passes() ([]pass, error) {
	cjk, err := p.cjkChars()
	if err != nil {
		return nil, err
	}

	var main []rune
	seen := make(map[rune]bool)
	if p.FullWidth {
		// these belong to the full-width pass only
		for _, r := range charset.FullWidthSymbols {
			seen[r] = true
		}
	}
	for _, r := range append(charset.ASCII(), cjk...) {
		if seen[r] {
			continue
		}
		seen[r] = true
		main = append(main, r)
	}

	res := []pass{{chars: main, classify: charset.Classify}}
	if p.FullWidth {
		res = append(res, pass{
			chars: charset.FullWidthSymbols,
			classify: func(rune) charset.Category {
				return charset.FullWidthSymbol
			},
		})
	}
	return res, nil
}

// categories returns the categories for which output directories are
// created before the conversion starts.
func (p *Profile) categories() []charset.Category {
	res := []charset.Category{
		charset.Uppercase,
		charset.Lowercase,
		charset.Symbol,
	}
	if p.CJK != CJKNone {
		res = append(res, charset.CJK)
	}
	if p.FullWidth {
		res = append(res, charset.FullWidthSymbol)
	}
	return res
}

// outputRoot returns the root of the output tree for the given font file.
func outputRoot(fontFile, outDir string) string {
	stem := strings.TrimSuffix(fontFile, filepath.Ext(fontFile))
	if outDir == "" {
		return stem
	}
	return filepath.Join(outDir, filepath.Base(stem))
}

func discardLogger() logrus.FieldLogger {
	l := logrus.New()
	l.SetOutput(io.Discard)
	return l
}
