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

// Package test contains helper functions to remove common boilerplate to make
// testing easier.
//
// The Expect* functions report a test error if the expectation is not met and
// return false. The Demand* functions are the same except that a failure is
// fatal to the test. Use a Demand* function when the value being tested is
// used by later parts of the test and so must be correct.
//
// It is worth describing how success and failure are interpreted because it is
// not obvious for some types. For a bool, true is success. For an error, nil
// is success. An untyped nil is considered a success because of how errors
// usually work.
//
// All functions accept optional tags which are printed before any failure
// message. Tags are useful in table driven tests to identify which entry
// failed.
//
// The CompareWriter and RingWriter types implement the io.Writer interface and
// can be used to capture output.
package test
