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

// Package regression facilitates the regression testing of emulation code. By
// adding test results to a database, the tests can be rerun automatically and
// checked for consistency.
//
// The only test type is the video regression. A cartridge is run for a fixed
// number of frames and a digest of every frame produced by the LCD is stored
// in the database. The test is useful for test ROMs that draw their results
// to the screen and for the first few seconds of real games.
//
// The database is stored in the resource directory. See the paths package.
package regression
