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

// Package outline describes glyph outlines made of straight line segments.
//
// An outline is a list of shapes.  Each shape is either a polygon, given as
// a list of nodes, or a reference to another glyph.  Later shapes are drawn
// on top of earlier ones.
package outline

import (
	"errors"

	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/postscript/funit"
)

// NodeType is the segment type of a node, as used in the "nodes" list
// of a Glyphs shape.
type NodeType byte

// Line is the only node type used by this package.
const Line NodeType = 'l'

func (t NodeType) String() string {
	return string(rune(t))
}

// A Node is a vertex of a polygon outline.
type Node struct {
	X, Y funit.Int16
	Type NodeType
}

// A Shape is one path in a glyph layer.
//
// If Ref is non-empty, the shape is a reference to the glyph with this name
// and Nodes and Open are ignored.  Otherwise the shape is a polygon which
// must have at least one node.
type Shape struct {
	Nodes []Node

	// Open is set for paths which do not return to their first node.
	// The zero value describes a closed path.
	Open bool

	Ref string
}

// ErrEmptyShape is returned by Validate for a polygon without nodes.
var ErrEmptyShape = errors.New("outline: shape has no nodes")

// Polygon returns a closed shape with line nodes at the given coordinates.
// The arguments are x0, y0, x1, y1, ...
func Polygon(xy ...funit.Int16) Shape {
	if len(xy)%2 != 0 {
		panic("outline: odd number of coordinates")
	}
	nodes := make([]Node, len(xy)/2)
	for i := range nodes {
		nodes[i] = Node{X: xy[2*i], Y: xy[2*i+1], Type: Line}
	}
	return Shape{Nodes: nodes}
}

// Reference returns a shape which refers to the glyph with the given name.
func Reference(name string) Shape {
	return Shape{Ref: name}
}

// IsRef reports whether the shape is a reference to another glyph.
func (s Shape) IsRef() bool {
	return s.Ref != ""
}

// Validate checks that a polygon shape has at least one node.
func (s Shape) Validate() error {
	if !s.IsRef() && len(s.Nodes) == 0 {
		return ErrEmptyShape
	}
	return nil
}

// BBox returns the bounding box of the nodes of the shape.
// References and empty shapes give the zero rectangle.
func (s Shape) BBox() funit.Rect16 {
	var bbox funit.Rect16
	if s.IsRef() {
		return bbox
	}
	first := true
	for _, n := range s.Nodes {
		if first || n.X < bbox.LLx {
			bbox.LLx = n.X
		}
		if first || n.X > bbox.URx {
			bbox.URx = n.X
		}
		if first || n.Y < bbox.LLy {
			bbox.LLy = n.Y
		}
		if first || n.Y > bbox.URy {
			bbox.URy = n.Y
		}
		first = false
	}
	return bbox
}

// BBox returns the smallest rectangle which contains all polygon shapes
// in the list.
func BBox(shapes []Shape) funit.Rect16 {
	var bbox funit.Rect16
	first := true
	for _, s := range shapes {
		if s.IsRef() || len(s.Nodes) == 0 {
			continue
		}
		b := s.BBox()
		if first || b.LLx < bbox.LLx {
			bbox.LLx = b.LLx
		}
		if first || b.LLy < bbox.LLy {
			bbox.LLy = b.LLy
		}
		if first || b.URx > bbox.URx {
			bbox.URx = b.URx
		}
		if first || b.URy > bbox.URy {
			bbox.URy = b.URy
		}
		first = false
	}
	return bbox
}

// Path returns the outline of the shape.  The path starts with a moveto,
// continues with one lineto per remaining node and, for closed shapes,
// ends with a closepath.  References give an empty path.
func (s Shape) Path() path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		if s.IsRef() || len(s.Nodes) == 0 {
			return
		}
		var buf [1]vec.Vec2
		for i, n := range s.Nodes {
			buf[0] = vec.Vec2{X: float64(n.X), Y: float64(n.Y)}
			cmd := path.CmdLineTo
			if i == 0 {
				cmd = path.CmdMoveTo
			}
			if !yield(cmd, buf[:]) {
				return
			}
		}
		if !s.Open {
			yield(path.CmdClose, nil)
		}
	}
}

// Path returns the concatenated outlines of all shapes.
func Path(shapes []Shape) path.Path {
	return func(yield func(path.Command, []vec.Vec2) bool) {
		for _, s := range shapes {
			for cmd, pts := range s.Path() {
				if !yield(cmd, pts) {
					return
				}
			}
		}
	}
}

// Extent returns the bounding box of a path, computed from the end points
// of all segments.  An empty path gives the zero rectangle.
func Extent(p path.Path) rect.Rect {
	var bbox rect.Rect
	first := true
	for _, pts := range p {
		for _, pt := range pts {
			if first || pt.X < bbox.LLx {
				bbox.LLx = pt.X
			}
			if first || pt.X > bbox.URx {
				bbox.URx = pt.X
			}
			if first || pt.Y < bbox.LLy {
				bbox.LLy = pt.Y
			}
			if first || pt.Y > bbox.URy {
				bbox.URy = pt.Y
			}
			first = false
		}
	}
	return bbox
}
