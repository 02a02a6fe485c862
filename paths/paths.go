// This file is part of GopherDMG.
//
// GopherDMG is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherDMG is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherDMG.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"os"
	"path/filepath"
)

// the name of the resource directory if it is in the current working
// directory
const localResourcePath = ".gopherdmg"

// the name of the resource directory if it is in the user's configuration
// directory
const configResourcePath = "gopherdmg"

// ResourcePath returns the path to the resource, prepended with the resource
// directory. The subPth is created if it doesn't already exist. Either
// argument can be empty.
func ResourcePath(subPth string, file string) (string, error) {
	base, err := basePath()
	if err != nil {
		return "", err
	}

	pth := filepath.Join(base, subPth)
	if _, err := os.Stat(pth); err != nil {
		if err := os.MkdirAll(pth, 0700); err != nil {
			return "", err
		}
	}

	return filepath.Join(pth, file), nil
}

func basePath() (string, error) {
	if info, err := os.Stat(localResourcePath); err == nil && info.IsDir() {
		return localResourcePath, nil
	}

	cnf, err := os.UserConfigDir()
	if err != nil {
		return "", err
	}

	return filepath.Join(cnf, configResourcePath), nil
}
