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

package devicons

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"seehuhn.de/go/devicons/catalog"
	"seehuhn.de/go/devicons/internal/config"
	"seehuhn.de/go/devicons/patch"
)

// Run adds the icons to all source packages listed in cfg.
//
// First the glyph files are written for all packages, then the
// "order.plist" files and finally the "fontinfo.plist" files are patched.
// Lists which cannot be parsed are skipped with a warning.  Any read or
// write error stops the run; files written up to this point are kept.
func Run(fs afero.Fs, cfg *config.Config, icons []catalog.Icon) (*Report, error) {
	dups, err := catalog.Check(icons)
	if err != nil {
		return nil, err
	}
	for _, r := range dups {
		logrus.Warnf("code point %s is used by more than one icon", catalog.U(r))
	}

	report := &Report{DuplicateCodePoints: dups}
	pkgs := make([]*Package, len(cfg.Styles))
	for i, style := range cfg.Styles {
		pkgs[i] = &Package{Dir: cfg.Dir(style), Masters: style.Masters}
		report.Styles = append(report.Styles, &StyleReport{
			Name: style.Name,
			Dir:  pkgs[i].Dir,
		})
	}

	for i, pkg := range pkgs {
		err := pkg.WriteGlyphs(fs, icons)
		if err != nil {
			return nil, err
		}
		report.Styles[i].Glyphs = len(icons)
		logrus.WithField("style", cfg.Styles[i].Name).
			Infof("wrote %d glyphs to %s", len(icons), pkg.Dir)
	}

	names := catalog.Names(icons)
	for i, pkg := range pkgs {
		res, err := pkg.PatchOrder(fs, names)
		if err != nil {
			return nil, err
		}
		report.Styles[i].Order = res
		logResult(cfg.Styles[i].Name, OrderFile, res)
	}
	for i, pkg := range pkgs {
		res, err := pkg.PatchGlyphOrder(fs, names)
		if err != nil {
			return nil, err
		}
		report.Styles[i].GlyphOrder = res
		logResult(cfg.Styles[i].Name, FontInfoFile, res)
	}

	return report, nil
}

func logResult(style, file string, res patch.Result) {
	log := logrus.WithFields(logrus.Fields{
		"style": style,
		"file":  file,
	})
	switch res.Status {
	case patch.Patched:
		log.Infof("added %d glyph names", len(res.Added))
	case patch.Skipped:
		log.Warn("no glyph list found, file left unchanged")
	default:
		log.Debug("all glyph names already present")
	}
}

func (r *StyleReport) String() string {
	return fmt.Sprintf("%s: %d glyphs, %s %s, %s %s",
		r.Name, r.Glyphs, OrderFile, r.Order.Status, FontInfoFile, r.GlyphOrder.Status)
}
