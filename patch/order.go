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

// OrderList appends the missing names to a flat list as found in
// "order.plist":
//
//	(
//	A,
//	B,
//	)
//
// The first line opens the list and all following lines, except for a
// closing ")" line, are entries.  An entry matches a name if it equals the
// name after removing one trailing comma.  Each missing name is appended as
// a new line "name,".  The closing line, if present, is moved to the end
// and the presence of a final newline is preserved.  Files with CRLF line
// endings keep them.
//
// Empty input is reported as Skipped.
func OrderList(text string, names []string) (string, Result) {
	if text == "" {
		return text, Result{Status: Skipped}
	}

	cr := ""
	if strings.Contains(text, "\r\n") {
		cr = "\r"
	}
	finalNewline := strings.HasSuffix(text, "\n")
	lines := strings.Split(strings.TrimSuffix(text, "\n"), "\n")

	var closing string
	hasClosing := false
	if n := len(lines); n > 1 && strings.TrimSpace(lines[n-1]) == ")" {
		closing = lines[n-1]
		hasClosing = true
		lines = lines[:n-1]
	}

	existing := make([]string, 0, len(lines)-1)
	for _, line := range lines[1:] {
		existing = append(existing, entryName(line))
	}

	var added []string
	for _, name := range names {
		if slices.Contains(existing, name) || slices.Contains(added, name) {
			continue
		}
		added = append(added, name)
	}
	if len(added) == 0 {
		return text, Result{Status: Unchanged}
	}

	if n := len(lines); n > 1 {
		last := strings.TrimRight(lines[n-1], "\r")
		if strings.TrimSpace(last) != "" && !strings.HasSuffix(last, ",") {
			lines[n-1] = last + "," + cr
		}
	}
	for _, name := range added {
		lines = append(lines, name+","+cr)
	}
	if hasClosing {
		lines = append(lines, closing)
	}

	out := strings.Join(lines, "\n")
	if finalNewline {
		out += "\n"
	}
	return out, Result{Status: Patched, Added: added}
}

// entryName returns the glyph name listed on one line of an order list.
func entryName(line string) string {
	return strings.TrimSuffix(strings.TrimRight(line, "\r"), ",")
}
