// seehuhn.de/go/devicons - generate developer icon glyphs for Glyphs sources
// Copyright (C) 2025  Jochen Voss <voss@seehuhn.de>
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

package patch

import (
	"strings"

	"golang.org/x/exp/slices"
)

// GlyphOrderMarker identifies the glyphOrder entry in "fontinfo.plist".
const GlyphOrderMarker = "name = glyphOrder;"

// GlyphOrder appends the missing names to the glyphOrder list embedded in
// the text of a "fontinfo.plist" file.
//
// The list is the parenthesized block starting at the first "(" after
// GlyphOrderMarker.  The block ends at the matching ")", so nested
// parentheses inside the list are allowed.  Entries are the non-empty
// lines of the block, with surrounding white space and one trailing comma
// removed.
//
// If names are added, the block is rewritten with one entry per line,
// separated by commas.  Text outside the parentheses is not modified.
// If the marker or the matching parenthesis cannot be found, the text is
// returned unchanged with status Skipped.
func GlyphOrder(text string, names []string) (string, Result) {
	pos := strings.Index(text, GlyphOrderMarker)
	if pos < 0 {
		return text, Result{Status: Skipped}
	}
	open := strings.IndexByte(text[pos:], '(')
	if open < 0 {
		return text, Result{Status: Skipped}
	}
	start := pos + open
	end := matchingParen(text, start)
	if end < 0 {
		return text, Result{Status: Skipped}
	}

	var entries []string
	for _, line := range strings.Split(text[start+1:end], "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		entries = append(entries, strings.TrimSuffix(line, ","))
	}

	var added []string
	for _, name := range names {
		if slices.Contains(entries, name) {
			continue
		}
		entries = append(entries, name)
		added = append(added, name)
	}
	if len(added) == 0 {
		return text, Result{Status: Unchanged}
	}

	b := &strings.Builder{}
	b.WriteString(text[:start+1])
	b.WriteString("\n")
	b.WriteString(strings.Join(entries, ",\n"))
	b.WriteString("\n")
	b.WriteString(text[end:])
	return b.String(), Result{Status: Patched, Added: added}
}

// matchingParen returns the index of the ")" which closes the "(" at
// text[start], or -1 if the parentheses are unbalanced.
func matchingParen(text string, start int) int {
	depth := 0
	for i := start; i < len(text); i++ {
		switch text[i] {
		case '(':
			depth++
		case ')':
			depth--
			if depth == 0 {
				return i
			}
		}
	}
	return -1
}
