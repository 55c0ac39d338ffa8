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

// Package patch registers glyph names in the glyph lists of a Glyphs
// source.
//
// Two lists are supported: the flat list in "order.plist" and the
// glyphOrder list inside "fontinfo.plist".  Existing entries are never
// removed or reordered.  Missing names are appended in the order given.
// A list which already contains all names is left byte-for-byte unchanged.
package patch

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"seehuhn.de/go/devicons/internal/safewrite"
)

// Status describes the outcome of a patch operation.
type Status int

// These are the possible values of Status.
const (
	Unchanged Status = iota // all names were already present
	Patched                 // at least one name was appended
	Skipped                 // the input was not a valid list
)

func (s Status) String() string {
	switch s {
	case Unchanged:
		return "unchanged"
	case Patched:
		return "patched"
	case Skipped:
		return "skipped"
	default:
		return "Status(?)"
	}
}

// Result reports what a patch operation did.
type Result struct {
	Status Status

	// Added lists the names which were appended to the list.
	Added []string
}

// Changed reports whether the text was modified.
func (r Result) Changed() bool {
	return r.Status == Patched
}

// OrderListFile applies OrderList to the named file.
// The file is only rewritten if names were added.
func OrderListFile(fs afero.Fs, fname string, names []string) (Result, error) {
	return patchFile(fs, fname, names, OrderList)
}

// GlyphOrderFile applies GlyphOrder to the named file.
// The file is only rewritten if names were added.
func GlyphOrderFile(fs afero.Fs, fname string, names []string) (Result, error) {
	return patchFile(fs, fname, names, GlyphOrder)
}

func patchFile(fs afero.Fs, fname string, names []string, apply func(string, []string) (string, Result)) (Result, error) {
	data, err := afero.ReadFile(fs, fname)
	if err != nil {
		return Result{}, fmt.Errorf("patch %s: %w", fname, err)
	}

	out, res := apply(string(data), names)
	if !res.Changed() {
		return res, nil
	}

	perm := os.FileMode(0o644)
	if fi, err := fs.Stat(fname); err == nil {
		perm = fi.Mode().Perm()
	}
	err = safewrite.WriteFile(fs, fname, []byte(out), perm)
	if err != nil {
		return Result{}, fmt.Errorf("patch %s: %w", fname, err)
	}
	return res, nil
}
