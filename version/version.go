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

package version

import (
	"fmt"
	"runtime/debug"
)

// ApplicationName is the name to use when referring to the application.
const ApplicationName = "GopherDMG"

// number is set by the linker when making a release build
//
//	go build -ldflags "-X github.com/jetsetilly/gopherdmg/version.number=v0.1.0"
var number string

var version string
var revision string

func init() {
	info, _ := debug.ReadBuildInfo()
	version, revision = fromBuildInfo(info, number)
}

// Version returns the version string, the revision string and whether this is
// a numbered release.
//
// If the version string is "unreleased" then the project has been built from
// a version controlled directory without a release number. If the version
// string is "local" then there is no version control information. This can
// happen when compiling/running with "go run ."
func Version() (string, string, bool) {
	return version, revision, number != "" && version == number
}

func fromBuildInfo(info *debug.BuildInfo, number string) (string, string) {
	var vcs bool
	var rev string
	var modified bool

	if info != nil {
		for _, s := range info.Settings {
			switch s.Key {
			case "vcs":
				vcs = true
			case "vcs.revision":
				rev = s.Value
			case "vcs.modified":
				modified = s.Value == "true"
			}
		}
	}

	if rev == "" {
		rev = "no revision information"
	} else if modified {
		rev = fmt.Sprintf("%s+dirty", rev)
	}

	switch {
	case number != "":
		return number, rev
	case vcs:
		return "unreleased", rev
	}
	return "local", rev
}
