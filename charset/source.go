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

package charset

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/text/encoding"
	"golang.org/x/text/encoding/simplifiedchinese"
	xunicode "golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
)

// Range returns the characters first, first+1, ..., last.
func Range(first, last rune) []rune {
	if last < first {
		return nil
	}
	res := make([]rune, 0, last-first+1)
	for r := first; r <= last; r++ {
		res = append(res, r)
	}
	return res
}

// ASCII returns the printable ASCII characters, U+0020 to U+007E.
func ASCII() []rune {
	return Range(0x20, 0x7E)
}

// CJKUnified returns the characters of the Unicode block
// "CJK Unified Ideographs", U+4E00 to U+9FFF.
func CJKUnified() []rune {
	return Range(0x4E00, 0x9FFF)
}

// FullWidthSymbols lists the punctuation and symbol characters which are
// used with full-width (ideographic) spacing in Chinese text.
var FullWidthSymbols = []rune{
	0xFF0C, // FULLWIDTH COMMA
	0x3002, // IDEOGRAPHIC FULL STOP
	0x3001, // IDEOGRAPHIC COMMA
	0xFF1B, // FULLWIDTH SEMICOLON
	0xFF1A, // FULLWIDTH COLON
	0xFF1F, // FULLWIDTH QUESTION MARK
	0xFF01, // FULLWIDTH EXCLAMATION MARK
	0x201C, // LEFT DOUBLE QUOTATION MARK
	0x201D, // RIGHT DOUBLE QUOTATION MARK
	0x2018, // LEFT SINGLE QUOTATION MARK
	0x2019, // RIGHT SINGLE QUOTATION MARK
	0xFF08, // FULLWIDTH LEFT PARENTHESIS
	0xFF09, // FULLWIDTH RIGHT PARENTHESIS
	0x3010, // LEFT BLACK LENTICULAR BRACKET
	0x3011, // RIGHT BLACK LENTICULAR BRACKET
	0x300A, // LEFT DOUBLE ANGLE BRACKET
	0x300B, // RIGHT DOUBLE ANGLE BRACKET
	0x3008, // LEFT ANGLE BRACKET
	0x3009, // RIGHT ANGLE BRACKET
	0x300C, // LEFT CORNER BRACKET
	0x300D, // RIGHT CORNER BRACKET
	0x300E, // LEFT WHITE CORNER BRACKET
	0x300F, // RIGHT WHITE CORNER BRACKET
	0x2014, // EM DASH
	0x2026, // HORIZONTAL ELLIPSIS
	0x00B7, // MIDDLE DOT
	0xFF5E, // FULLWIDTH TILDE
	0xFFE5, // FULLWIDTH YEN SIGN
	0xFF05, // FULLWIDTH PERCENT SIGN
	0xFF03, // FULLWIDTH NUMBER SIGN
	0xFF06, // FULLWIDTH AMPERSAND
	0xFF0A, // FULLWIDTH ASTERISK
	0xFF0B, // FULLWIDTH PLUS SIGN
	0xFF1D, // FULLWIDTH EQUALS SIGN
	0xFF0F, // FULLWIDTH SOLIDUS
	0xFF3C, // FULLWIDTH REVERSE SOLIDUS
	0xFF5C, // FULLWIDTH VERTICAL LINE
	0xFF1C, // FULLWIDTH LESS-THAN SIGN
	0xFF1E, // FULLWIDTH GREATER-THAN SIGN
	0xFF20, // FULLWIDTH COMMERCIAL AT
}

// Encoding returns the text encoding with the given name.
// Supported names are "utf-8", "utf-16", "gbk" and "gb18030";
// the empty string selects UTF-8.
func Encoding(name string) (encoding.Encoding, error) {
	switch strings.ToLower(strings.ReplaceAll(name, "_", "-")) {
	case "", "utf-8", "utf8":
		return xunicode.UTF8BOM, nil
	case "utf-16", "utf16":
		return xunicode.UTF16(xunicode.LittleEndian, xunicode.ExpectBOM), nil
	case "gbk", "cp936":
		return simplifiedchinese.GBK, nil
	case "gb18030":
		return simplifiedchinese.GB18030, nil
	default:
		return nil, fmt.Errorf("unsupported text encoding %q", name)
	}
}

// ReadWords reads the characters of a word list.
//
// The text is decoded using enc; a nil encoding means UTF-8.  White space
// and control characters are ignored, and every character is returned only
// once, in the order of first occurrence.
func ReadWords(r io.Reader, enc encoding.Encoding) ([]rune, error) {
	if enc == nil {
		enc = xunicode.UTF8BOM
	}
	br := bufio.NewReader(transform.NewReader(r, enc.NewDecoder()))

	var res []rune
	seen := make(map[rune]bool)
	for {
		c, _, err := br.ReadRune()
		if err == io.EOF {
			break
		} else if err != nil {
			return nil, err
		}
		if c == unicode.ReplacementChar || unicode.IsSpace(c) || unicode.IsControl(c) {
			continue
		}
		if seen[c] {
			continue
		}
		seen[c] = true
		res = append(res, c)
	}
	return res, nil
}

// ReadWordsFile reads the characters of the word list in the given file.
// See [ReadWords] for details.
func ReadWordsFile(fileName string, enc encoding.Encoding) ([]rune, error) {
	fd, err := os.Open(fileName)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	res, err := ReadWords(fd, enc)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fileName, err)
	}
	return res, nil
}
