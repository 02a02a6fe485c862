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

// Package prefs facilitates the storage of preferential values in the
// GopherDMG system. It is a way of storing key/value pairs to disk.
//
// Preference values are declared with one of the Bool, Int or String types
// and added to a Disk instance with the Add() function. The key is used to
// identify the value in the preferences file.
//
//	var scale prefs.Int
//	dsk, _ := prefs.NewDisk(pth)
//	_ = dsk.Add("display.scale", &scale)
//	_ = dsk.Load(true)
//
// More than one Disk instance can share the same file. Saving one Disk will
// not clobber the values saved by another.
//
// Values can be overridden from the command line with a prefs string of the
// form "key::value; key::value". See PushCommandLineStack().
package prefs
