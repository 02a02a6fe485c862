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

package terminal

import (
	"slices"
	"testing"

	"github.com/jetsetilly/gopherdmg/test"
)

func expectKeys(t *testing.T, input string, expected ...string) {
	t.Helper()
	keys := decodeKeys([]byte(input))
	if !slices.Equal(keys, expected) {
		t.Errorf("decodeKeys(%q) = %v, expected %v", input, keys, expected)
	}
}

func TestDecodeKeys(t *testing.T) {
	expectKeys(t, "")
	expectKeys(t, "a", "A")
	expectKeys(t, "aB s", "A", "B", "Space", "S")
	expectKeys(t, "\x03", keyInterrupt)
	expectKeys(t, "\x1b[A\x1b[B\x1b[C\x1b[D", keyUp, keyDown, keyRight, keyLeft)
	expectKeys(t, "\x1bOA", keyUp)
	expectKeys(t, "\x1b[24~q", keyF12, "Q")

	// unrecognised sequences and control characters are discarded
	expectKeys(t, "\x1b[15~a", "A")
	expectKeys(t, "\x1b", []string{}...)
	expectKeys(t, "\t\r!", []string{}...)
}

func TestDecodeKeysLength(t *testing.T) {
	test.ExpectEquality(t, len(decodeKeys([]byte("\x1b[A\x1b["))), 1)
}
