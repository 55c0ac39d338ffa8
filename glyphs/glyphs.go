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

// Package glyphs writes glyph records in the text format of Glyphs
// ".glyphspackage" sources.
//
// Every master layer of a glyph receives the same shapes; only the
// layerId differs between layers.
package glyphs

import (
	"fmt"
	"io"
	"strings"

	"seehuhn.de/go/postscript/funit"

	"seehuhn.de/go/devicons/catalog"
	"seehuhn.de/go/devicons/outline"
)

// DefaultWidth is the advance width used for icons without an explicit
// width.
const DefaultWidth funit.Int16 = 1200

// RomanMasters lists the master IDs of the upright source.
var RomanMasters = []string{
	"68A78E10-2392-4B34-B44D-B6A5B48D0FD1",
	"B7DB719C-51CF-4BC3-BA18-7A6A1AAC666B",
	"50ED6B91-33B7-40F5-8C2C-B1BEC3C77CF0",
	"D010C1AA-6BDD-4F06-9849-880CC2F29E88",
}

// ItalicMasters lists the master IDs of the italic source.
var ItalicMasters = []string{
	"m006",
	"87470510-D880-4621-BF85-70AEEA552FBA",
	"90828D4A-10F7-4870-818F-40FC947ECC22",
	"00586AEE-0022-45ED-9612-7F804652F2C7",
}

// Format returns the glyph record for icon, with one layer per master.
// The result has no trailing newline.
//
// An error is returned if one of the shapes is a polygon without nodes.
func Format(icon catalog.Icon, masters []string) (string, error) {
	for i, s := range icon.Shapes {
		if err := s.Validate(); err != nil {
			return "", fmt.Errorf("glyph %q, shape %d: %w", icon.Name, i, err)
		}
	}

	width := icon.Width
	if width == 0 {
		width = DefaultWidth
	}

	shapes := formatShapes(icon.Shapes)
	layers := make([]string, len(masters))
	for i, id := range masters {
		layers[i] = formatLayer(id, shapes, width)
	}

	lines := []string{
		"{",
		"glyphname = " + icon.Name + ";",
		"layers = (",
		strings.Join(layers, ",\n"),
		");",
	}
	if r, ok := icon.Unicode.Get(); ok {
		lines = append(lines, fmt.Sprintf("unicode = %d;", r))
	}
	lines = append(lines, "}")
	return strings.Join(lines, "\n"), nil
}

// Write writes the glyph record for icon to w, followed by a newline.
// Nothing is written if the icon cannot be formatted.
func Write(w io.Writer, icon catalog.Icon, masters []string) error {
	body, err := Format(icon, masters)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, body+"\n")
	return err
}

func formatLayer(id, shapes string, width funit.Int16) string {
	return strings.Join([]string{
		"{",
		fmt.Sprintf("layerId = %q;", id),
		"shapes = (",
		shapes,
		");",
		fmt.Sprintf("width = %d;", int(width)),
		"}",
	}, "\n")
}

func formatShapes(shapes []outline.Shape) string {
	chunks := make([]string, len(shapes))
	for i, s := range shapes {
		if s.IsRef() {
			chunks[i] = "{\nref = " + s.Ref + ";\n}"
			continue
		}
		closed := 1
		if s.Open {
			closed = 0
		}
		chunks[i] = strings.Join([]string{
			"{",
			fmt.Sprintf("closed = %d;", closed),
			"nodes = (",
			formatNodes(s.Nodes),
			");",
			"}",
		}, "\n")
	}
	return strings.Join(chunks, ",\n")
}

func formatNodes(nodes []outline.Node) string {
	b := &strings.Builder{}
	for i, n := range nodes {
		if i > 0 {
			b.WriteString(",\n")
		}
		fmt.Fprintf(b, "(%d,%d,%s)", int(n.X), int(n.Y), n.Type)
	}
	return b.String()
}
