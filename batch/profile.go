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
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"slices"

	"golang.org/x/exp/maps"

	"seehuhn.de/go/fontsvg"
	"seehuhn.de/go/fontsvg/charset"
)

// CJKSource selects where the CJK characters of a run come from.
type CJKSource string

// These are the supported sources of CJK characters.
const (
	// CJKBlock uses the Unicode block "CJK Unified Ideographs".
	CJKBlock CJKSource = "block"

	// CJKWords uses the characters of a word list file.
	CJKWords CJKSource = "words"

	// CJKNone skips the CJK characters.
	CJKNone CJKSource = "none"
)

// A Profile describes which characters are converted and how the
// resulting SVG documents look.
type Profile struct {
	// Base, if set, names a built-in profile which provides the default
	// values for all fields.  This is only used when reading profiles
	// from JSON files.
	Base string `json:"base,omitempty"`

	Name string `json:"name"`

	Scale    float64        `json:"scale"`
	Padding  float64        `json:"padding"`
	Baseline float64        `json:"baseline"`
	Attrs    []fontsvg.Attr `json:"attrs"`

	CJK      CJKSource `json:"cjk"`
	WordList string    `json:"wordList,omitempty"`
	Encoding string    `json:"encoding,omitempty"`

	// FullWidth enables a separate pass over [charset.FullWidthSymbols].
	FullWidth bool `json:"fullWidth"`
}

// builtin contains the built-in profiles.  The entries are never handed
// out directly; see [BuiltinProfile].
var builtin = map[string]*Profile{
	"classic": {
		Name:     "classic",
		Scale:    0.25,
		Padding:  1,
		Baseline: 0.75,
		Attrs:    fontsvg.PaintLayerAttrs(),
		CJK:      CJKBlock,
	},
	"compact": {
		Name:      "compact",
		Scale:     0.02,
		Padding:   1,
		Baseline:  0.75,
		Attrs:     []fontsvg.Attr{{Name: "fill-rule", Value: "nonzero"}},
		CJK:       CJKWords,
		FullWidth: true,
	},
}

// DefaultProfile is the name of the profile used when none is specified.
const DefaultProfile = "classic"

// ProfileNames returns the names of the built-in profiles, in
// alphabetical order.
func ProfileNames() []string {
	return slices.Sorted(maps.Keys(builtin))
}

// BuiltinProfile returns a copy of the built-in profile with the given name.
// The copy can be modified by the caller.
func BuiltinProfile(name string) (*Profile, bool) {
	p, ok := builtin[name]
	if !ok {
		return nil, false
	}
	return p.Clone(), true
}

// LoadProfile returns the built-in profile with the given name, or, if
// there is no such profile, reads a profile from the JSON file of this name.
// The returned profile is a copy and can be modified by the caller.
func LoadProfile(nameOrFile string) (*Profile, error) {
	if p, ok := BuiltinProfile(nameOrFile); ok {
		return p, nil
	}

	data, err := os.ReadFile(nameOrFile)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("unknown profile %q (built-in profiles: %v)",
			nameOrFile, ProfileNames())
	} else if err != nil {
		return nil, err
	}
	p, err := ParseProfile(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", nameOrFile, err)
	}
	return p, nil
}

// ParseProfile reads a profile in JSON format.
// Fields which are not present in the JSON data are taken from the
// built-in profile named by the "base" field, or from the default profile.
func ParseProfile(data []byte) (*Profile, error) {
	var head struct {
		Base string `json:"base"`
	}
	err := json.Unmarshal(data, &head)
	if err != nil {
		return nil, err
	}
	baseName := head.Base
	if baseName == "" {
		baseName = DefaultProfile
	}
	p, ok := BuiltinProfile(baseName)
	if !ok {
		return nil, fmt.Errorf("unknown base profile %q", baseName)
	}

	p.Name = ""
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	err = dec.Decode(p)
	if err != nil {
		return nil, err
	}
	if p.Name == "" {
		p.Name = baseName
	}
	return p, nil
}

// Clone returns a deep copy of the profile.
func (p *Profile) Clone() *Profile {
	p2 := *p
	p2.Attrs = slices.Clone(p.Attrs)
	return &p2
}

// Style returns the rendering parameters of the profile.
func (p *Profile) Style() *fontsvg.Style {
	return &fontsvg.Style{
		Scale:    p.Scale,
		Padding:  p.Padding,
		Baseline: p.Baseline,
		Attrs:    p.Attrs,
	}
}

// Validate checks that the profile is usable.
func (p *Profile) Validate() error {
	err := p.Style().Validate()
	if err != nil {
		return fmt.Errorf("profile %q: %w", p.Name, err)
	}
	switch p.CJK {
	case CJKBlock, CJKNone:
		// pass
	case CJKWords:
		if p.WordList == "" {
			return fmt.Errorf("profile %q: no word list given", p.Name)
		}
		if _, err := charset.Encoding(p.Encoding); err != nil {
			return fmt.Errorf("profile %q: %w", p.Name, err)
		}
	default:
		return fmt.Errorf("profile %q: unknown CJK source %q", p.Name, p.CJK)
	}
	return nil
}

// cjkChars returns the CJK characters selected by the profile.
func (p *Profile) cjkChars() ([]rune, error) {
	switch p.CJK {
	case CJKBlock:
		return charset.CJKUnified(), nil
	case CJKWords:
		enc, err := charset.Encoding(p.Encoding)
		if err != nil {
			return nil, err
		}
		return charset.ReadWordsFile(p.WordList, enc)
	default:
		return nil, nil
	}
}
