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

// Font-info shows which characters of a conversion profile are covered by
// a font, without writing any SVG files.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/fontsvg"
	"seehuhn.de/go/fontsvg/batch"
)

func main() {
	profileArg := flag.String("profile", batch.DefaultProfile,
		"conversion profile ("+strings.Join(batch.ProfileNames(), ", ")+", or a JSON file)")
	wordsArg := flag.String("words", "", "take the CJK characters from this word list")
	encodingArg := flag.String("encoding", "", "text encoding of the word list")
	fullWidthArg := flag.Bool("fullwidth", false, "include full-width punctuation and symbols")
	flag.Usage = func() {
		out := flag.CommandLine.Output()
		fmt.Fprintf(out, "usage: %s [flags] font.ttf font.otf ...\n\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{DisableTimestamp: true})

	fileNames := flag.Args()
	if len(fileNames) == 0 {
		flag.Usage()
		os.Exit(2)
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

	for _, fileName := range fileNames {
		face, err := fontsvg.OpenFace(fileName)
		if err != nil {
			log.Fatal(err)
		}

		fmt.Println(fileName)
		fmt.Println("  FamilyName:", face.FamilyName())
		fmt.Println("  Glyphs:", face.NumGlyphs())
		fmt.Println("  UnitsPerEm:", face.UnitsPerEm())
		fmt.Println("  Ascent:", face.Ascent())
		fmt.Println("  Descent:", face.Descent())

		w, h := profile.Style().Viewport(face.UnitsPerEm(), face.UnitsPerEm())
		fmt.Printf("  Viewport (1em, %s): %dx%d\n", profile.Name, w, h)

		report, err := profile.Coverage(face)
		if err != nil {
			log.Fatal(err)
		}
		_, err = report.WriteTo(os.Stdout)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Println()
	}
}
