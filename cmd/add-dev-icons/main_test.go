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

package main

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"

	"seehuhn.de/go/devicons"
	"seehuhn.de/go/devicons/internal/config"
	"seehuhn.de/go/devicons/internal/debug"
)

func TestRunDefault(t *testing.T) {
	fs := afero.NewMemMapFs()
	cfg := config.Default()
	if err := debug.MakeSources(fs, cfg); err != nil {
		t.Fatal(err)
	}

	err := run(fs, "")
	if err != nil {
		t.Fatal(err)
	}

	for _, style := range cfg.Styles {
		pkg := &devicons.Package{Dir: cfg.Dir(style)}
		if ok, _ := afero.Exists(fs, pkg.GlyphFile("cod_symbol_parameter")); !ok {
			t.Errorf("%s: glyph file missing", style.Name)
		}
	}
}

func TestRunConfig(t *testing.T) {
	fs := afero.NewMemMapFs()
	const body = `root = "src"

[[style]]
name = "regular"
package = "Test.glyphspackage"
masters = ["m01"]
`
	if err := afero.WriteFile(fs, "devicons.toml", []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
	dir := filepath.Join("src", "Test.glyphspackage")
	if err := debug.MakeSource(fs, dir, []string{"A", "B"}); err != nil {
		t.Fatal(err)
	}

	err := run(fs, "devicons.toml")
	if err != nil {
		t.Fatal(err)
	}

	order, _ := afero.ReadFile(fs, filepath.Join(dir, devicons.OrderFile))
	want := "(\nA,\nB,\ndev_cplusplus,\n"
	if len(order) < len(want) || string(order[:len(want)]) != want {
		t.Errorf("unexpected order list %q", order)
	}
}

func TestRunMissingSources(t *testing.T) {
	err := run(afero.NewMemMapFs(), "")
	if err == nil {
		t.Error("expected an error")
	}
}
