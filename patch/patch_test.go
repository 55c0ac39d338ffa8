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
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/spf13/afero"
)

func TestOrderListFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := fs.MkdirAll("src", 0o755); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "src/order.plist", []byte("(\nA,\nB\n)\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	res, err := OrderListFile(fs, "src/order.plist", []string{"B", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed() {
		t.Errorf("got status %s, want %s", res.Status, Patched)
	}
	got, err := afero.ReadFile(fs, "src/order.plist")
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "(\nA,\nB,\nC,\n)\n" {
		t.Errorf("unexpected file content %q", got)
	}

	// A second run must not write.  On a read-only view any write fails.
	ro := afero.NewReadOnlyFs(fs)
	res, err = OrderListFile(ro, "src/order.plist", []string{"B", "C"})
	if err != nil {
		t.Fatal(err)
	}
	if res.Status != Unchanged {
		t.Errorf("got status %s, want %s", res.Status, Unchanged)
	}
}

func TestGlyphOrderFile(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "fontinfo.plist", []byte(fontInfo), 0o600); err != nil {
		t.Fatal(err)
	}

	res, err := GlyphOrderFile(fs, "fontinfo.plist", []string{"X"})
	if err != nil {
		t.Fatal(err)
	}
	if !res.Changed() {
		t.Errorf("got status %s, want %s", res.Status, Patched)
	}
	want, _ := GlyphOrder(fontInfo, []string{"X"})
	got, _ := afero.ReadFile(fs, "fontinfo.plist")
	if string(got) != want {
		t.Errorf("unexpected file content %q", got)
	}
	fi, err := fs.Stat("fontinfo.plist")
	if err != nil {
		t.Fatal(err)
	}
	if fi.Mode().Perm() != 0o600 {
		t.Errorf("permissions changed to %v", fi.Mode().Perm())
	}
}

func TestPatchFileSkipped(t *testing.T) {
	fs := afero.NewMemMapFs()
	if err := afero.WriteFile(fs, "order.plist", nil, 0o644); err != nil {
		t.Fatal(err)
	}
	if err := afero.WriteFile(fs, "fontinfo.plist", []byte("{}\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	ro := afero.NewReadOnlyFs(fs)

	res, err := OrderListFile(ro, "order.plist", []string{"A"})
	if err != nil || res.Status != Skipped {
		t.Errorf("order list: got %s, %v", res.Status, err)
	}
	res, err = GlyphOrderFile(ro, "fontinfo.plist", []string{"A"})
	if err != nil || res.Status != Skipped {
		t.Errorf("glyph order: got %s, %v", res.Status, err)
	}
}

func TestPatchFileMissing(t *testing.T) {
	fs := afero.NewMemMapFs()
	_, err := OrderListFile(fs, "missing/order.plist", []string{"A"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
	_, err = GlyphOrderFile(fs, "missing/fontinfo.plist", []string{"A"})
	if !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected a not-exist error, got %v", err)
	}
	if !strings.HasPrefix(err.Error(), "patch missing/fontinfo.plist: ") {
		t.Errorf("error %q does not name the file", err)
	}
}

func TestPatchFileWriteError(t *testing.T) {
	base := afero.NewMemMapFs()
	orig := "(\nA,\n)\n"
	err := afero.WriteFile(base, "order.plist", []byte(orig), 0o644)
	if err != nil {
		t.Fatal(err)
	}
	fs := afero.NewReadOnlyFs(base)

	_, err = OrderListFile(fs, "order.plist", []string{"B"})
	if err == nil {
		t.Fatal("write to a read-only file system succeeded")
	}
	if !strings.HasPrefix(err.Error(), "patch order.plist: ") {
		t.Errorf("error %q does not name the file", err)
	}

	data, err := afero.ReadFile(base, "order.plist")
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != orig {
		t.Errorf("file modified: %q", data)
	}
}
