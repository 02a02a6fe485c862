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

package logger_test

import (
	"fmt"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/test"
)

type deny struct{}

func (deny) AllowLogging() bool {
	return false
}

func TestLogger(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare(""))

	logger.Log(logger.Allow, "test", "this is a test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\n"))

	// clear the writer buffer before continuing, makes comparisons easier
	// to manage
	tw.Clear()

	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Write(tw)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for too many entries in a Tail() should be okay
	tw.Clear()
	logger.Tail(tw, 100)
	test.ExpectSuccess(t, tw.Compare("test: this is a test\ntest2: this is another test\n"))

	// asking for fewer entries is okay too
	tw.Clear()
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test\n"))

	// and no entries
	tw.Clear()
	logger.Tail(tw, 0)
	test.ExpectSuccess(t, tw.Compare(""))

	// repeated entries are collapsed
	tw.Clear()
	logger.Log(logger.Allow, "test2", "this is another test")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test (repeat x2)\n"))

	// denied permission creates no entry
	tw.Clear()
	logger.Log(deny{}, "denied", "should not appear")
	logger.Tail(tw, 1)
	test.ExpectSuccess(t, tw.Compare("test2: this is another test (repeat x2)\n"))
}

func TestMaximumEntries(t *testing.T) {
	logger.Clear()
	for i := 0; i < 300; i++ {
		logger.Logf(logger.Allow, "test", "entry %d", i)
	}

	tw := &test.CompareWriter{}
	logger.Write(tw)
	entries := strings.Split(strings.TrimSuffix(tw.String(), "\n"), "\n")
	test.DemandEquality(t, len(entries), 256)
	test.ExpectEquality(t, entries[0], fmt.Sprintf("test: entry %d", 300-256))
	test.ExpectEquality(t, entries[255], "test: entry 299")
}

func TestRecentAndEcho(t *testing.T) {
	logger.Clear()
	tw := &test.CompareWriter{}

	logger.Log(logger.Allow, "a", "one")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("a: one\n"))

	tw.Clear()
	logger.Log(logger.Allow, "b", "two")
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("b: two\n"))

	echo := &test.CompareWriter{}
	logger.SetEcho(echo, false)
	logger.Log(logger.Allow, "c", "three")
	logger.SetEcho(nil, false)
	logger.Log(logger.Allow, "d", "four")
	test.ExpectSuccess(t, echo.Compare("c: three\n"))

	// echoed entries are not recent
	tw.Clear()
	logger.WriteRecent(tw)
	test.ExpectSuccess(t, tw.Compare("d: four\n"))
}

func TestBoundedEcho(t *testing.T) {
	logger.Clear()

	ring, err := test.NewRingWriter(16)
	test.DemandSuccess(t, err)

	logger.SetEcho(ring, false)
	logger.Log(logger.Allow, "x", "0123456789")
	logger.Log(logger.Allow, "y", "abcdefghij")
	logger.SetEcho(nil, false)
	logger.Log(logger.Allow, "z", "not echoed")

	// only the tail of the echo is kept
	test.ExpectEquality(t, ring.String(), "9\ny: abcdefghij\n")

	// the log itself is complete
	tw := &test.CompareWriter{}
	logger.Tail(tw, 3)
	test.ExpectSuccess(t, tw.Compare("x: 0123456789\ny: abcdefghij\nz: not echoed\n"))
}
