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

// Package safewrite replaces files without leaving partial content behind.
package safewrite

import (
	"os"
	"path/filepath"

	"github.com/spf13/afero"
)

// WriteFile writes data to the named file, replacing any existing file.
// The data is first written to a temporary file in the same directory,
// which is then renamed.  On error the temporary file is removed and the
// original file, if any, is left unchanged.
func WriteFile(fs afero.Fs, name string, data []byte, perm os.FileMode) (err error) {
	dir, base := filepath.Split(name)
	if dir == "" {
		dir = "."
	}

	tmp, err := afero.TempFile(fs, dir, "."+base+".*.tmp")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer func() {
		if err != nil {
			fs.Remove(tmpName)
		}
	}()

	_, err = tmp.Write(data)
	err1 := tmp.Close()
	if err == nil {
		err = err1
	}
	if err != nil {
		return err
	}

	err = fs.Chmod(tmpName, perm)
	if err != nil {
		return err
	}
	return fs.Rename(tmpName, name)
}
