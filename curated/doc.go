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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and remember the pattern that
// was used to create them.
//
// Errors are created with Errorf(), which works like the function of the same
// name in the fmt package. The Is() function checks whether an error was
// created with a particular pattern:
//
//	err := cartridge.NewCartridge(data)
//	if curated.Is(err, cartridge.BadSize) {
//		...
//	}
//
// Has() is similar but checks the whole error chain, so it will find a pattern
// that has been wrapped by another curated error.
//
//	err := curated.Errorf("gameboy: %v", curated.Errorf(cartridge.NoHeader, n))
//	curated.Is(err, cartridge.NoHeader)  // false
//	curated.Has(err, cartridge.NoHeader) // true
//
// IsAny() returns true if the error was created by Errorf() at all. We can
// think of this as the difference between 'expected' and 'unexpected' errors.
//
// The Error() implementation normalises the chain so that it does not contain
// duplicate adjacent parts. Parts are separated by the sub-string ": ". In
// practice this means that a package can prefix every error it returns
// without worrying about whether the error has already been prefixed:
//
//	gameboy: gameboy: no cartridge
//
// is printed as
//
//	gameboy: no cartridge
//
// Sentinal errors are patterns stored as exported const strings in the
// package that produces them.
package curated
