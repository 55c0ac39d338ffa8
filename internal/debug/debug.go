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

// Package debug provides Glyphs source packages for use in unit tests.
package debug

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/afero"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/sfnt"

	"seehuhn.de/go/devicons/internal/config"
)

// BaseGlyphNames returns the names of the first n glyphs of the Go Regular
// font, to be used as the existing glyphs of a test source.
func BaseGlyphNames(n int) []string {
	f, err := sfnt.Parse(goregular.TTF)
	if err != nil {
		panic(err)
	}
	if num := f.NumGlyphs(); n > num {
		n = num
	}

	buf := &sfnt.Buffer{}
	seen := make(map[string]bool, n)
	names := make([]string, 0, n)
	for i := 0; i < n; i++ {
		name, err := f.GlyphName(buf, sfnt.GlyphIndex(i))
		if err != nil || name == "" {
			name = fmt.Sprintf("glyph%05d", i)
		}
		if seen[name] {
			continue
		}
		seen[name] = true
		names = append(names, name)
	}
	return names
}

// MakeSource creates a minimal ".glyphspackage" in dir: an empty "glyphs"
// directory, plus "order.plist" and "fontinfo.plist" listing the given
// glyph names.
func MakeSource(fs afero.Fs, dir string, names []string) error {
	err := fs.MkdirAll(filepath.Join(dir, "glyphs"), 0o755)
	if err != nil {
		return err
	}

	err = afero.WriteFile(fs, filepath.Join(dir, "order.plist"), []byte(OrderList(names)), 0o644)
	if err != nil {
		return err
	}
	return afero.WriteFile(fs, filepath.Join(dir, "fontinfo.plist"), []byte(FontInfo(names)), 0o644)
}

// MakeSources creates a source package for every style in cfg.
// Each package contains the first 32 glyphs of Go Regular.
func MakeSources(fs afero.Fs, cfg *config.Config) error {
	names := BaseGlyphNames(32)
	for _, style := range cfg.Styles {
		err := MakeSource(fs, cfg.Dir(style), names)
		if err != nil {
			return err
		}
	}
	return nil
}

// OrderList returns the text of an "order.plist" file.
func OrderList(names []string) string {
	b := &strings.Builder{}
	b.WriteString("(\n")
	for _, name := range names {
		b.WriteString(name + ",\n")
	}
	b.WriteString(")\n")
	return b.String()
}

// FontInfo returns the text of a "fontinfo.plist" file with the given
// glyphOrder.
func FontInfo(names []string) string {
	return `{
.appVersion = "3343";
.formatVersion = 3;
customParameters = (
{
name = glyphOrder;
value = (
` + strings.Join(names, ",\n") + `
);
},
{
name = "Write lastChange";
value = 0;
}
);
date = "2025-01-01 12:00:00 +0000";
familyName = "Test Sans";
unitsPerEm = 1000;
versionMajor = 1;
versionMinor = 0;
}
`
}
