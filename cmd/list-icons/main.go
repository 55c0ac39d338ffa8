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

// List-icons shows information about the icons in the catalog.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"seehuhn.de/go/devicons/catalog"
	"seehuhn.de/go/devicons/glyphs"
	"seehuhn.de/go/devicons/outline"
)

func main() {
	flag.Parse()

	err := list(os.Stdout, catalog.Build(), flag.Args())
	if err != nil {
		logrus.Fatal(err)
	}
}

// list prints the named icons, or all icons if no names are given.
func list(w io.Writer, icons []catalog.Icon, names []string) error {
	byName := make(map[string]catalog.Icon, len(icons))
	for _, icon := range icons {
		byName[icon.Name] = icon
	}
	if len(names) == 0 {
		names = catalog.Names(icons)
	}

	for _, name := range names {
		icon, ok := byName[name]
		if !ok {
			return fmt.Errorf("unknown icon %q", name)
		}

		width := icon.Width
		if width == 0 {
			width = glyphs.DefaultWidth
		}
		nodes := 0
		for _, s := range icon.Shapes {
			nodes += len(s.Nodes)
		}
		bbox := outline.BBox(icon.Shapes)
		ext := outline.Extent(outline.Path(icon.Shapes))

		fmt.Fprintln(w, icon.Name)
		fmt.Fprintln(w, "  Unicode:", icon.Unicode)
		fmt.Fprintln(w, "  Width:", int(width))
		fmt.Fprintln(w, "  Shapes:", len(icon.Shapes))
		fmt.Fprintln(w, "  Nodes:", nodes)
		fmt.Fprintf(w, "  BBox: [%d %d %d %d]\n",
			int(bbox.LLx), int(bbox.LLy), int(bbox.URx), int(bbox.URy))
		fmt.Fprintf(w, "  Size: %gx%g\n", ext.URx-ext.LLx, ext.URy-ext.LLy)
		fmt.Fprintln(w)
	}
	return nil
}
