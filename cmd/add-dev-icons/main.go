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

// Add-dev-icons writes the developer icon glyphs into the Glyphs sources
// below the current directory and registers them in the glyph lists.
//
// Without arguments, the upright and italic Google Sans Code packages in
// "sources" are updated.  A different layout can be given in a TOML file,
// see the -config flag.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"github.com/spf13/afero"

	"seehuhn.de/go/devicons"
	"seehuhn.de/go/devicons/catalog"
	"seehuhn.de/go/devicons/internal/config"
)

func main() {
	configFlag := flag.String("config", "", "TOML file describing the source packages")
	verboseFlag := flag.Bool("v", false, "show every file written")
	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "usage: %s [-config file.toml] [-v]\n", filepath.Base(os.Args[0]))
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 0 {
		flag.Usage()
		os.Exit(2)
	}

	if *verboseFlag {
		logrus.SetLevel(logrus.DebugLevel)
	}

	err := run(afero.NewOsFs(), *configFlag)
	if err != nil {
		logrus.Fatal(err)
	}
}

func run(fs afero.Fs, configFile string) error {
	cfg := config.Default()
	if configFile != "" {
		var err error
		cfg, err = config.Load(fs, configFile)
		if err != nil {
			return err
		}
	}

	report, err := devicons.Run(fs, cfg, catalog.Build())
	if err != nil {
		return err
	}
	for _, sr := range report.Styles {
		logrus.Debug(sr)
	}
	return nil
}
