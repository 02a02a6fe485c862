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

// Package instructions defines the opcode tables of the DMG CPU. There are two
// tables: the direct table, indexed by the first byte of an instruction, and
// the prefixed table, indexed by the byte following the 0xcb prefix.
//
// The tables are built once during package initialisation and are never
// modified. Opcodes that are not used by the DMG have no entry in the direct
// table. Every entry in the prefixed table is used.
//
// Cycle counts are in machine cycles, of which there are 2^20 per second.
package instructions
