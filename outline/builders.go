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

package outline

import "seehuhn.de/go/postscript/funit"

// Default dimensions of the plus sign drawn by PlusShape.
const (
	DefaultArm       funit.Int16 = 150
	DefaultThickness funit.Int16 = 70
)

// PlusShape returns a closed 12-node plus sign centered at (cx, cy).
// The arms extend arm units from the center and are thickness units wide.
//
// The thickness should be even.  For odd values the arms come out one
// unit narrower than requested.
func PlusShape(cx, cy, arm, thickness funit.Int16) Shape {
	half := thickness / 2
	left := cx - arm
	right := cx + arm
	top := cy - arm
	bottom := cy + arm
	return Polygon(
		cx-half, top,
		cx+half, top,
		cx+half, cy-half,
		right, cy-half,
		right, cy+half,
		cx+half, cy+half,
		cx+half, bottom,
		cx-half, bottom,
		cx-half, cy+half,
		left, cy+half,
		left, cy-half,
		cx-half, cy-half,
	)
}

// Plus returns a plus sign of the default size centered at (cx, cy).
func Plus(cx, cy funit.Int16) Shape {
	return PlusShape(cx, cy, DefaultArm, DefaultThickness)
}

// BaseFileShapes returns the outline of a document page with a folded
// top-right corner, followed by the triangular fold flap.
func BaseFileShapes() []Shape {
	return []Shape{
		Polygon(
			220, -60,
			880, -60,
			1140, 200,
			1140, 1180,
			220, 1180,
			220, -60,
		),
		Polygon(
			880, -60,
			880, 200,
			1140, 200,
		),
	}
}

// BadgeShapes returns the outer and inner octagon of the badge which
// forms the background of the code symbol icons.
func BadgeShapes() []Shape {
	outer := Polygon(
		600, 260,
		840, 380,
		980, 640,
		840, 900,
		600, 1020,
		360, 900,
		220, 640,
		360, 380,
	)
	inner := Polygon(
		600, 440,
		760, 520,
		840, 680,
		760, 840,
		600, 920,
		440, 840,
		360, 680,
		440, 520,
	)
	return []Shape{outer, inner}
}
