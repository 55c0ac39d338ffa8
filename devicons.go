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

// Package devicons adds developer icons to the Glyphs sources of a font.
//
// For every icon, one ".glyph" file is written into the "glyphs" directory
// of each source package, and the icon names are registered in the
// package's "order.plist" and in the glyphOrder list of its
// "fontinfo.plist".
package devicons

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"seehuhn.de/go/devicons/catalog"
	"seehuhn.de/go/devicons/glyphs"
	"seehuhn.de/go/devicons/internal/safewrite"
	"seehuhn.de/go/devicons/patch"
)

// File and directory names inside a ".glyphspackage" directory.
const (
	GlyphsDir    = "glyphs"
	OrderFile    = "order.plist"
	FontInfoFile = "fontinfo.plist"
)

// A Package is a ".glyphspackage" source directory.
type Package struct {
	Dir string

	// Masters lists the layer IDs written for every glyph.
	Masters []string
}

// GlyphFile returns the path of the file for the named glyph.
func (p *Package) GlyphFile(name string) string {
	return filepath.Join(p.Dir, GlyphsDir, name+".glyph")
}

// WriteGlyphs writes one ".glyph" file per icon, replacing existing files.
// The "glyphs" directory must already exist.
//
// Each file is replaced atomically.  If an icon cannot be formatted, the
// error is returned and no file is written for this icon; files written
// for earlier icons are kept.
func (p *Package) WriteGlyphs(fs afero.Fs, icons []catalog.Icon) error {
	dir := filepath.Join(p.Dir, GlyphsDir)
	ok, err := afero.DirExists(fs, dir)
	if err != nil {
		return err
	} else if !ok {
		return &os.PathError{Op: "write glyphs", Path: dir, Err: os.ErrNotExist}
	}

	buf := &bytes.Buffer{}
	for _, icon := range icons {
		fname := p.GlyphFile(icon.Name)
		buf.Reset()
		err := glyphs.Write(buf, icon, p.Masters)
		if err == nil {
			err = safewrite.WriteFile(fs, fname, buf.Bytes(), 0o644)
		}
		if err != nil {
			return fmt.Errorf("write %s: %w", fname, err)
		}
		logrus.WithField("file", fname).Debug("glyph written")
	}
	return nil
}

// PatchOrder registers the names in the package's "order.plist".
func (p *Package) PatchOrder(fs afero.Fs, names []string) (patch.Result, error) {
	return patch.OrderListFile(fs, filepath.Join(p.Dir, OrderFile), names)
}

// PatchGlyphOrder registers the names in the glyphOrder list of the
// package's "fontinfo.plist".
func (p *Package) PatchGlyphOrder(fs afero.Fs, names []string) (patch.Result, error) {
	return patch.GlyphOrderFile(fs, filepath.Join(p.Dir, FontInfoFile), names)
}

// StyleReport summarizes the changes made to one source package.
type StyleReport struct {
	Name       string
	Dir        string
	Glyphs     int
	Order      patch.Result
	GlyphOrder patch.Result
}

// Report summarizes the changes made by Run.
type Report struct {
	Styles []*StyleReport

	// DuplicateCodePoints lists code points used by more than one icon.
	DuplicateCodePoints []rune
}
