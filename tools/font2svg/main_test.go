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

package main

import (
	"bufio"
	"strings"
	"testing"
)

func TestPrompter(t *testing.T) {
	out := &strings.Builder{}
	p := &prompter{
		r:           bufio.NewReader(strings.NewReader("fonts/a.ttf\r\n\n")),
		w:           out,
		interactive: true,
	}

	fontFile, err := p.ask("font? ")
	if err != nil {
		t.Fatal(err)
	}
	if fontFile != "fonts/a.ttf" {
		t.Errorf("got %q", fontFile)
	}
	color, err := p.ask("color? ")
	if err != nil {
		t.Fatal(err)
	}
	if color != "" {
		t.Errorf("got %q", color)
	}
	if out.String() != "font? color? " {
		t.Errorf("wrong prompts %q", out.String())
	}

	// at end of input, empty answers are returned
	color, err = p.ask("color? ")
	if err != nil || color != "" {
		t.Errorf("got %q, %v", color, err)
	}
}

// Answers are used as entered, apart from the line terminator.
func TestPrompterVerbatim(t *testing.T) {
	p := &prompter{
		r: bufio.NewReader(strings.NewReader(" rgb(0, 0, 255) \n\t\n")),
		w: &strings.Builder{},
	}
	for _, want := range []string{" rgb(0, 0, 255) ", "\t", ""} {
		got, err := p.ask("color? ")
		if err != nil {
			t.Fatal(err)
		}
		if got != want {
			t.Errorf("got %q, want %q", got, want)
		}
	}
}

func TestPrompterPiped(t *testing.T) {
	out := &strings.Builder{}
	p := &prompter{
		r: bufio.NewReader(strings.NewReader("font.otf")),
		w: out,
	}
	fontFile, err := p.ask("font? ")
	if err != nil {
		t.Fatal(err)
	}
	if fontFile != "font.otf" {
		t.Errorf("got %q", fontFile)
	}
	if out.Len() > 0 {
		t.Errorf("prompt %q shown for non-interactive input", out.String())
	}
}
