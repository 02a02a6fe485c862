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

// Package cpu emulates the Sharp LR35902 processor of the DMG.
//
// The CPU is both a bus component and a clocked component. As a bus component
// it answers for the high RAM and the two interrupt registers, IE and IF. As a
// clocked component it executes one instruction whenever the cycle reaches the
// point at which the previous instruction completed. The cycles in between are
// idle.
//
// Instruction timing is expressed in machine cycles, as listed in the
// instructions package. Instructions are executed atomically on the first
// cycle of their duration.
//
// The HALT instruction puts the CPU into an indefinite idle state. The CPU is
// woken on the first cycle for which an interrupt is both enabled and pending,
// regardless of the interrupt master enable flag.
package cpu
