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

// Package logger is the central log for the emulator. Only one log exists and
// it is accessed through the package level functions.
//
// Entries are tagged with the name of the area making the log request. A log
// entry that is identical to the previous entry is not added again, instead
// the repeat count of the previous entry is increased.
//
// Log requests must be accompanied by a Permission. The Allow value is always
// permitted and is the usual choice. Other implementations of Permission can
// be used to suppress logging in some contexts. For example, a speculative
// emulation that runs ahead of the main emulation should not add entries to
// the log.
package logger
