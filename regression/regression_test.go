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

package regression_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/hardware/memory/addresses"
	"github.com/jetsetilly/gopherdmg/regression"
	"github.com/jetsetilly/gopherdmg/test"
)

// prepare a temporary resource directory and a cartridge file filled with NOP
// instructions. returns the name of the cartridge file
func prepare(t *testing.T) string {
	t.Helper()
	t.Chdir(t.TempDir())
	test.DemandSuccess(t, os.Mkdir(".gopherdmg", 0700))
	test.DemandSuccess(t, os.WriteFile("nop.gb", make([]byte, addresses.CartROMSize), 0600))
	return "nop.gb"
}

func TestNewVideoRegression(t *testing.T) {
	_, err := regression.NewVideoRegression("nop.gb", "", 0, "")
	test.ExpectFailure(t, err)

	_, err = regression.NewVideoRegression("nop.gb", "", 10, "a, b")
	test.ExpectFailure(t, err)

	reg, err := regression.NewVideoRegression("nop.gb", "", 10, "notes")
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, reg.String(), "[video] nop.gb frames=10 [notes]")
}

func TestEmptyDatabase(t *testing.T) {
	prepare(t)

	w := &strings.Builder{}
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	test.ExpectFailure(t, regression.RegressRun(w, false, nil))
}

func TestRegression(t *testing.T) {
	cart := prepare(t)

	reg, err := regression.NewVideoRegression(cart, "", 5, "")
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.DemandSuccess(t, regression.RegressAdd(w, reg))
	test.ExpectEquality(t, w.String(), "added: 000 [video] nop.gb frames=5\n")

	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "000 [video] nop.gb frames=5\nTotal: 1\n")

	w.Reset()
	test.ExpectSuccess(t, regression.RegressRun(w, false, nil))
	test.ExpectEquality(t, w.String(), "succeed: 000 [video] nop.gb frames=5\nregression tests: 1 succeed, 0 fail\n")

	// corrupt the digest in the database
	pth := filepath.Join(".gopherdmg", "regressionDB")
	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	fields := strings.Split(strings.TrimSpace(string(b)), ",")
	test.DemandEquality(t, len(fields), 7)
	test.ExpectEquality(t, len(fields[5]), 40)
	fields[5] = strings.Repeat("0", 40)
	test.DemandSuccess(t, os.WriteFile(pth, []byte(strings.Join(fields, ",")+"\n"), 0600))

	w.Reset()
	test.ExpectFailure(t, regression.RegressRun(w, true, []string{"0"}))
	test.ExpectEquality(t, w.String(), "failure: 000 [video] nop.gb frames=5\n    digest mismatch\nregression tests: 0 succeed, 1 fail\n")

	// missing cartridge is an error rather than a failure
	test.DemandSuccess(t, os.Remove(cart))
	w.Reset()
	test.ExpectFailure(t, regression.RegressRun(w, false, nil))
	test.ExpectEquality(t, w.String(), "  ERROR: 000 [video] nop.gb frames=5\nregression tests: 0 succeed, 0 fail, 1 errors\n")
}

func TestErrorShowsLog(t *testing.T) {
	cart := prepare(t)

	reg, err := regression.NewVideoRegression(cart, "", 2, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, regression.RegressAdd(&strings.Builder{}, reg))

	// replace the cartridge with one that stops at the entry point
	data := make([]byte, addresses.CartROMSize)
	data[0x0000] = 0x10
	data[addresses.HeaderEntry] = 0x10
	test.DemandSuccess(t, os.WriteFile(cart, data, 0600))

	w := &strings.Builder{}
	test.ExpectFailure(t, regression.RegressRun(w, true, nil))
	test.ExpectEquality(t, strings.HasPrefix(w.String(), "  ERROR: 000 [video] nop.gb frames=2\n    video: cpu: STOP instruction"), true)
	test.ExpectEquality(t, strings.Contains(w.String(), "gameboy: cartridge inserted"), true)

	// the log is not shown without the verbose flag
	w.Reset()
	test.ExpectFailure(t, regression.RegressRun(w, false, nil))
	test.ExpectEquality(t, strings.Contains(w.String(), "gameboy:"), false)
}

func TestDelete(t *testing.T) {
	cart := prepare(t)

	reg, err := regression.NewVideoRegression(cart, "", 1, "")
	test.DemandSuccess(t, err)
	test.DemandSuccess(t, regression.RegressAdd(&strings.Builder{}, reg))

	test.ExpectFailure(t, regression.RegressDelete(&strings.Builder{}, strings.NewReader("y"), "x"))
	test.ExpectFailure(t, regression.RegressDelete(&strings.Builder{}, strings.NewReader("y"), "1"))

	// declining the confirmation leaves the test in place
	w := &strings.Builder{}
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("n"), "0"))
	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "000 [video] nop.gb frames=1\nTotal: 1\n")

	w.Reset()
	test.ExpectSuccess(t, regression.RegressDelete(w, strings.NewReader("y"), "0"))
	test.ExpectEquality(t, strings.HasSuffix(w.String(), "deleted test #000 from regression database\n"), true)

	w.Reset()
	test.ExpectSuccess(t, regression.RegressList(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")
}
