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

// Package config describes the location of the Glyphs sources which
// receive the icons.
//
// Without a configuration file, the built-in defaults are used: an upright
// and an italic package of Google Sans Code below "sources".
package config

import (
	"errors"
	"fmt"
	"path/filepath"

	"github.com/BurntSushi/toml"
	"github.com/spf13/afero"

	"seehuhn.de/go/devicons/glyphs"
)

// Config lists the source packages to update.
type Config struct {
	// Root is the directory which contains the packages.
	Root string `toml:"root"`

	Styles []Style `toml:"style"`
}

// Style describes one ".glyphspackage" directory.
type Style struct {
	Name    string   `toml:"name"`
	Package string   `toml:"package"`
	Masters []string `toml:"masters"`
}

// DefaultRoot is the source directory used when none is configured.
const DefaultRoot = "sources"

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		Root: DefaultRoot,
		Styles: []Style{
			{
				Name:    "roman",
				Package: "GoogleSansCode.glyphspackage",
				Masters: append([]string(nil), glyphs.RomanMasters...),
			},
			{
				Name:    "italic",
				Package: "GoogleSansCode-Italic.glyphspackage",
				Masters: append([]string(nil), glyphs.ItalicMasters...),
			},
		},
	}
}

// Load reads a TOML configuration file.  Settings missing from the file
// are taken from Default.
//
// Example:
//
//	root = "sources"
//
//	[[style]]
//	name = "roman"
//	package = "MyFont.glyphspackage"
//	masters = ["m01", "m02"]
func Load(fs afero.Fs, fname string) (*Config, error) {
	data, err := afero.ReadFile(fs, fname)
	if err != nil {
		return nil, err
	}

	cfg := &Config{}
	md, err := toml.Decode(string(data), cfg)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return nil, fmt.Errorf("%s: unknown key %q", fname, undecoded[0].String())
	}

	def := Default()
	if cfg.Root == "" {
		cfg.Root = def.Root
	}
	if len(cfg.Styles) == 0 {
		cfg.Styles = def.Styles
	}

	err = cfg.Validate()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", fname, err)
	}
	return cfg, nil
}

var errNoStyles = errors.New("no styles configured")

// Validate checks that every style has a unique name, a package
// directory and at least one master.
func (c *Config) Validate() error {
	if len(c.Styles) == 0 {
		return errNoStyles
	}
	seen := make(map[string]bool, len(c.Styles))
	for i, s := range c.Styles {
		switch {
		case s.Name == "":
			return fmt.Errorf("style %d: missing name", i)
		case seen[s.Name]:
			return fmt.Errorf("duplicate style %q", s.Name)
		case s.Package == "":
			return fmt.Errorf("style %q: missing package", s.Name)
		case len(s.Masters) == 0:
			return fmt.Errorf("style %q: no masters", s.Name)
		}
		seen[s.Name] = true
	}
	return nil
}

// Dir returns the path of the package directory of style s.
func (c *Config) Dir(s Style) string {
	return filepath.Join(c.Root, s.Package)
}
