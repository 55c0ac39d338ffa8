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

package catalog

import "seehuhn.de/go/devicons/outline"

// Build returns the icon catalog.
func Build() []Icon {
	return []Icon{
		{
			Name:    "dev_cplusplus",
			Unicode: U(0xE7A3),
			Shapes: file(
				outline.Polygon(320, 260, 820, 260, 820, 360, 440, 360, 440, 900, 820, 900, 820, 1000, 320, 1000),
				outline.Plus(940, 520),
				outline.Plus(940, 820),
			),
		},
		{
			Name:    "dev_cmake",
			Unicode: U(0xE794),
			Shapes: file(
				outline.Polygon(320, 1100, 1040, 1100, 600, 220),
				outline.Polygon(600, 1100, 1040, 1100, 600, 600),
				outline.Polygon(320, 1100, 600, 1100, 600, 600),
			),
		},
		{
			Name:    "dev_python",
			Unicode: U(0xE73C),
			Shapes: file(
				outline.Polygon(320, 620, 820, 620, 820, 980, 560, 980, 560, 820, 320, 820),
				outline.Polygon(320, 260, 320, 620, 580, 620, 580, 460, 820, 460, 820, 260),
				outline.Polygon(700, 720, 760, 720, 760, 780, 700, 780),
				outline.Polygon(380, 420, 440, 420, 440, 480, 380, 480),
			),
		},
		{
			Name:    "dev_go",
			Unicode: U(0xE724),
			Shapes: file(
				outline.Polygon(
					320, 260, 820, 260, 820, 460, 620, 460, 620, 560, 760, 560,
					760, 700, 440, 700, 440, 900, 820, 900, 820, 1000, 320, 1000,
				),
				outline.Polygon(860, 260, 1140, 260, 1140, 1000, 860, 1000),
				outline.Polygon(940, 360, 1060, 360, 1060, 900, 940, 900),
			),
		},
		{
			Name:    "dev_java",
			Unicode: U(0xE738),
			Shapes: file(
				outline.Polygon(340, 340, 900, 340, 840, 640, 360, 640),
				outline.Polygon(900, 400, 1060, 400, 1060, 580, 900, 580),
				outline.Polygon(320, 640, 940, 640, 940, 700, 320, 700),
				outline.Polygon(480, 760, 540, 760, 540, 1020, 480, 1020),
				outline.Polygon(680, 760, 740, 760, 740, 980, 680, 980),
			),
		},
		{
			Name:    "dev_markdown",
			Unicode: U(0xE73E),
			Shapes: file(
				outline.Polygon(300, 360, 1040, 360, 1040, 900, 300, 900),
				outline.Polygon(360, 420, 980, 420, 980, 840, 360, 840),
				outline.Polygon(400, 420, 520, 840, 640, 420, 520, 620),
				outline.Polygon(760, 540, 880, 540, 820, 660, 880, 660, 820, 780, 700, 620),
			),
		},
		{
			Name:    "dev_json",
			Unicode: U(0xE80B),
			Shapes: file(
				outline.Polygon(
					360, 400, 500, 400, 480, 520, 600, 620, 480, 720,
					500, 840, 360, 840, 320, 700, 380, 620, 320, 540,
				),
				outline.Polygon(
					1000, 400, 860, 400, 880, 520, 760, 620, 880, 720,
					860, 840, 1000, 840, 1040, 700, 980, 620, 1040, 540,
				),
			),
		},
		{
			Name:    "fa_file_text",
			Unicode: U(0xF15C),
			Shapes: file(
				outline.Polygon(320, 340, 1020, 340, 1020, 420, 320, 420),
				outline.Polygon(320, 540, 1020, 540, 1020, 620, 320, 620),
				outline.Polygon(320, 740, 920, 740, 920, 820, 320, 820),
			),
		},
		{
			Name:    "cod_symbol_method",
			Unicode: U(0xEA8C),
			Shapes: badge(
				outline.Polygon(540, 460, 660, 460, 660, 820, 540, 820),
				outline.Polygon(540, 860, 660, 860, 660, 940, 540, 940),
			),
		},
		{
			Name:    "md_function",
			Unicode: U(0xF0295),
			Shapes: badge(
				outline.Polygon(460, 420, 540, 420, 720, 880, 640, 880, 580, 720, 520, 880, 440, 880, 540, 620),
			),
		},
		{
			Name:    "cod_symbol_variable",
			Unicode: U(0xEA88),
			Shapes: badge(
				outline.Polygon(460, 520, 520, 460, 740, 680, 680, 740),
				outline.Polygon(460, 740, 520, 680, 740, 460, 680, 400),
			),
		},
		{
			Name:    "cod_symbol_class",
			Unicode: U(0xEB5B),
			Shapes: badge(
				outline.Polygon(410, 480, 790, 480, 790, 540, 410, 540),
				outline.Polygon(410, 620, 790, 620, 790, 680, 410, 680),
				outline.Polygon(410, 760, 790, 760, 790, 820, 410, 820),
			),
		},
		{
			Name:    "cod_symbol_interface",
			Unicode: U(0xEB61),
			Shapes: badge(
				outline.Polygon(440, 560, 520, 560, 520, 640, 440, 640),
				outline.Polygon(680, 560, 760, 560, 760, 640, 680, 640),
				outline.Polygon(520, 580, 680, 580, 680, 620, 520, 620),
			),
		},
		{
			Name:    "cod_symbol_property",
			Unicode: U(0xEB65),
			Shapes: badge(
				outline.Polygon(420, 600, 760, 600, 760, 680, 420, 680),
				outline.Polygon(760, 560, 880, 560, 880, 720, 760, 720),
				outline.Polygon(880, 600, 940, 600, 940, 680, 880, 680),
			),
		},
		{
			Name:    "cod_symbol_enum",
			Unicode: U(0xEA95),
			Shapes: badge(
				outline.Polygon(470, 500, 550, 500, 550, 580, 470, 580),
				outline.Polygon(470, 640, 550, 640, 550, 720, 470, 720),
				outline.Polygon(470, 780, 550, 780, 550, 860, 470, 860),
				outline.Polygon(640, 580, 820, 580, 820, 660, 640, 660),
				outline.Polygon(640, 740, 820, 740, 820, 820, 640, 820),
			),
		},
		{
			Name:    "cod_symbol_constant",
			Unicode: U(0xEB5D),
			Shapes: badge(
				outline.Polygon(500, 460, 700, 460, 760, 560, 700, 660, 500, 660, 440, 560),
				outline.Polygon(540, 600, 660, 600, 700, 660, 660, 720, 540, 720, 500, 660),
			),
		},
		{
			Name:    "cod_symbol_namespace",
			Unicode: U(0xEA8B),
			Shapes: badge(
				outline.Polygon(420, 460, 520, 460, 520, 520, 480, 520, 480, 840, 520, 840, 520, 900, 420, 900),
				outline.Polygon(780, 460, 680, 460, 680, 520, 720, 520, 720, 840, 680, 840, 680, 900, 780, 900),
			),
		},
		{
			Name:    "cod_symbol_parameter",
			Unicode: U(0xEA92),
			Shapes: badge(
				outline.Polygon(540, 520, 600, 520, 600, 580, 540, 580),
				outline.Polygon(540, 720, 600, 720, 600, 780, 540, 780),
				outline.Polygon(660, 620, 780, 620, 780, 680, 660, 680),
			),
		},
	}
}

// file draws the given shapes on top of a document page.
func file(extra ...outline.Shape) []outline.Shape {
	return append(outline.BaseFileShapes(), extra...)
}

// badge draws the given shapes on top of the symbol badge.
func badge(extra ...outline.Shape) []outline.Shape {
	return append(outline.BadgeShapes(), extra...)
}
