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

// Package catalog lists the developer icons added to the font.
//
// Build returns a fresh list on every call; the package keeps no mutable
// state.
package catalog

import (
	"errors"
	"fmt"

	"golang.org/x/exp/maps"
	"golang.org/x/exp/slices"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/devicons/outline"
)

// CodePoint is an optional Unicode code point.
// The zero value means that the glyph is not mapped to a character.
type CodePoint struct {
	r     rune
	valid bool
}

// U returns the code point r.
func U(r rune) CodePoint {
	return CodePoint{r: r, valid: true}
}

// Get returns the code point and whether it is set.
func (c CodePoint) Get() (rune, bool) {
	return c.r, c.valid
}

// IsSet reports whether the code point is present.
func (c CodePoint) IsSet() bool {
	return c.valid
}

func (c CodePoint) String() string {
	if !c.valid {
		return "none"
	}
	return fmt.Sprintf("U+%04X", c.r)
}

// An Icon is a glyph to be added to the font.
type Icon struct {
	// Name is the glyph name.  It is also used as the base name of the
	// .glyph file.
	Name string

	Unicode CodePoint

	// Width is the advance width.  Zero selects the default width.
	Width funit.Int16

	// Shapes are drawn in order, later shapes on top of earlier ones.
	Shapes []outline.Shape
}

// Names returns the glyph names of the icons, in catalog order.
func Names(icons []Icon) []string {
	names := make([]string, len(icons))
	for i, icon := range icons {
		names[i] = icon.Name
	}
	return names
}

var (
	errEmptyName     = errors.New("catalog: icon without a name")
	errDuplicateName = errors.New("catalog: duplicate icon name")
)

// Check verifies that every icon has a unique, non-empty name.
//
// Code points which are used by more than one icon are returned in
// increasing order.  These are not treated as an error.
func Check(icons []Icon) ([]rune, error) {
	seen := make(map[string]bool, len(icons))
	users := make(map[rune]int)
	for _, icon := range icons {
		if icon.Name == "" {
			return nil, errEmptyName
		}
		if seen[icon.Name] {
			return nil, fmt.Errorf("%w %q", errDuplicateName, icon.Name)
		}
		seen[icon.Name] = true
		if r, ok := icon.Unicode.Get(); ok {
			users[r]++
		}
	}

	maps.DeleteFunc(users, func(_ rune, n int) bool { return n < 2 })
	if len(users) == 0 {
		return nil, nil
	}
	dups := maps.Keys(users)
	slices.Sort(dups)
	return dups, nil
}
