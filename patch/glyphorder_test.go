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
	"testing"

	"github.com/google/go-cmp/cmp"
)

const fontInfo = `{
.appVersion = "3343";
customParameters = (
{
name = glyphOrder;
value = (
A,
B,
C
);
},
{
name = "Use Typo Metrics";
value = 1;
}
);
familyName = "Google Sans Code";
}
`

func TestGlyphOrder(t *testing.T) {
	out, res := GlyphOrder(fontInfo, []string{"B", "D", "E"})

	want := strings.Replace(fontInfo, "A,\nB,\nC\n", "A,\nB,\nC,\nD,\nE\n", 1)
	if diff := cmp.Diff(want, out); diff != "" {
		t.Errorf("output mismatch:\n%s", diff)
	}
	if res.Status != Patched {
		t.Errorf("got status %s, want %s", res.Status, Patched)
	}
	if diff := cmp.Diff([]string{"D", "E"}, res.Added); diff != "" {
		t.Errorf("added names mismatch:\n%s", diff)
	}
}

func TestGlyphOrderUnchanged(t *testing.T) {
	// white space inside the list must survive when nothing is added
	in := strings.Replace(fontInfo, "A,\nB,\nC\n", "  A,\n\n  B ,\n\tC,\n  ", 1)
	out, res := GlyphOrder(in, []string{"C", "A"})
	if res.Status != Unchanged {
		t.Errorf("got status %s, want %s", res.Status, Unchanged)
	}
	if out != in {
		t.Errorf("text modified:\n%s", cmp.Diff(in, out))
	}
}

func TestGlyphOrderOutsideUntouched(t *testing.T) {
	in := "x = (1);\nname = glyphOrder;\nvalue = (\n    A,\n    B\n    );\ny = (2);\n"
	out, res := GlyphOrder(in, []string{"C"})
	if res.Status != Patched {
		t.Fatalf("got status %s, want %s", res.Status, Patched)
	}

	start := strings.Index(in, "value = (") + len("value = (")
	end := strings.Index(in, ");\ny")
	if !strings.HasPrefix(out, in[:start]) {
		t.Error("text before the list was modified")
	}
	if !strings.HasSuffix(out, in[end:]) {
		t.Error("text after the list was modified")
	}
	if got := out[start : len(out)-len(in)+end]; got != "\nA,\nB,\nC\n" {
		t.Errorf("wrong list body %q", got)
	}
}

func TestGlyphOrderNested(t *testing.T) {
	cases := []struct {
		in, out string
	}{
		{
			in:  "name = glyphOrder;\nvalue = (\nA,\n\"a(b)c\",\nB\n);\nother = (Z);\n",
			out: "name = glyphOrder;\nvalue = (\nA,\n\"a(b)c\",\nB,\nC\n);\nother = (Z);\n",
		},
		{
			in:  "name = glyphOrder;\nvalue = (\n((x)),\n(y)\n);\n)\n",
			out: "name = glyphOrder;\nvalue = (\n((x)),\n(y),\nC\n);\n)\n",
		},
	}
	for i, c := range cases {
		out, res := GlyphOrder(c.in, []string{"C"})
		if res.Status != Patched {
			t.Errorf("%d: got status %s", i, res.Status)
		}
		if diff := cmp.Diff(c.out, out); diff != "" {
			t.Errorf("%d: output mismatch:\n%s", i, diff)
		}
	}
}

func TestGlyphOrderMalformed(t *testing.T) {
	inputs := []string{
		"",
		"{\nfamilyName = Test;\n}\n",
		"name = glyphOrder;\n",
		"name = glyphOrder;\nvalue = (\nA,\n(B\n",
		"value = (\nA\n);\nname = glyphorder;\n",
	}
	for _, in := range inputs {
		out, res := GlyphOrder(in, []string{"A", "X"})
		if res.Status != Skipped {
			t.Errorf("%q: got status %s, want %s", in, res.Status, Skipped)
		}
		if out != in {
			t.Errorf("%q: text modified", in)
		}
	}
}

func TestGlyphOrderIdempotent(t *testing.T) {
	names := []string{"dev_go", "A", "dev_json"}
	once, res := GlyphOrder(fontInfo, names)
	if res.Status != Patched {
		t.Fatalf("got status %s, want %s", res.Status, Patched)
	}
	twice, res := GlyphOrder(once, names)
	if res.Status != Unchanged || twice != once {
		t.Errorf("second run changed the text:\n%s", cmp.Diff(once, twice))
	}
}

func TestGlyphOrderEmptyList(t *testing.T) {
	in := "name = glyphOrder;\nvalue = (\n);\n"
	out, _ := GlyphOrder(in, []string{"A", "B"})
	want := "name = glyphOrder;\nvalue = (\nA,\nB\n);\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}
