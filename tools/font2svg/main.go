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

// Font2svg writes the glyphs of a font as individual SVG files.
//
// Usage:
//
//	font2svg [flags] [font.ttf [color]]
//
// The font file name and the fill color are asked for interactively if they
// are not given on the command line.  The color is copied into the SVG
// files exactly as entered, so an empty answer gives an empty fill
// attribute.
package main

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/sirupsen/logrus"
	"golang.org/x/term"

	"seehuhn.de/go/fontsvg/batch"
)

func main() {
	profileArg := flag.String("profile", batch.DefaultProfile,
		"conversion profile ("+strings.Join(batch.ProfileNames(), ", ")+", or a JSON file)")
	wordsArg := flag.String("words", "", "take the CJK characters from this word list")
	encodingArg := flag.String("encoding", "", "text encoding of the word list (utf-8, utf-16, gbk, gb18030)")
	outDirArg := flag.String("o", "", "directory for the output tree (default: next to the font file)")
	fullWidthArg := flag.Bool("fullwidth", false, "also convert full-width punctuation and symbols")
	verboseArg := flag.Bool("v", false, "show debug messages")
	quietArg := flag.Bool("q", false, "only show missing glyphs and errors")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: %s [flags] [font.ttf [color]]\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})
	switch {
	case *verboseArg:
		log.SetLevel(logrus.DebugLevel)
	case *quietArg:
		log.SetLevel(logrus.WarnLevel)
	}

	profile, err := batch.LoadProfile(*profileArg)
	if err != nil {
		log.Fatal(err)
	}
	if *wordsArg != "" {
		profile.CJK = batch.CJKWords
		profile.WordList = *wordsArg
	}
	if *encodingArg != "" {
		profile.Encoding = *encodingArg
	}
	if *fullWidthArg {
		profile.FullWidth = true
	}

	in := &prompter{
		r:           bufio.NewReader(os.Stdin),
		w:           os.Stdout,
		interactive: term.IsTerminal(int(os.Stdin.Fd())),
	}
	fontFile := flag.Arg(0)
	if fontFile == "" {
		fontFile, err = in.ask("input the ttf file you want to convert: ")
		if err != nil {
			log.Fatal(err)
		}
	}
	color := flag.Arg(1)
	if flag.NArg() < 2 {
		color, err = in.ask("input the color you want to use: ")
		if err != nil {
			log.Fatal(err)
		}
	}

	d := &batch.Driver{
		Profile: profile,
		Color:   color,
		OutDir:  *outDirArg,
		Log:     log,
	}
	report, err := d.Run(fontFile)
	if errors.Is(err, batch.ErrFontNotFound) {
		fmt.Printf("❌ %s not found.\n", fontFile)
		return
	} else if err != nil {
		log.Fatal(err)
	}

	fmt.Println()
	_, err = report.WriteTo(os.Stdout)
	if err != nil {
		log.Fatal(err)
	}
}

// prompter reads answers to questions from standard input.
// The questions are only shown if the input comes from a terminal.
type prompter struct {
	r           *bufio.Reader
	w           io.Writer
	interactive bool
}

// ask returns the next line of input, without the line terminator.
// The answer is otherwise returned verbatim; an empty answer is valid.
func (p *prompter) ask(question string) (string, error) {
	if p.interactive {
		fmt.Fprint(p.w, question)
	}
	line, err := p.r.ReadString('\n')
	if err == io.EOF {
		err = nil
	}
	if err != nil {
		return "", err
	}
	line = strings.TrimSuffix(line, "\n")
	line = strings.TrimSuffix(line, "\r")
	return line, nil
}
