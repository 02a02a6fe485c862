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

// Package modalflag wraps the flag package so that a program can have modes,
// each with its own set of flags.
//
// Arguments are given to NewArgs() and then parsed in layers. Each layer adds
// flags and possible sub-modes before calling Parse():
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	md.AddSubModes("RUN", "TERM", "VERSION")
//	p, err := md.Parse()
//
// If the first argument after the flags is one of the sub-modes then it is
// consumed and becomes the Mode(). Otherwise the first sub-mode is used as the
// default and the argument is left for the next layer. Sub-mode comparisons
// are case insensitive.
//
// The next layer begins with NewMode():
//
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		scale := md.AddInt("scale", 3, "window scaling")
//		p, err := md.Parse()
//		...
//		run(md.GetArg(0), *scale)
//	}
//
// A -help flag in any layer prints the flags and sub-modes for that layer to
// Output and Parse() returns ParseHelp.
package modalflag
