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

package regression

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/database"
	"github.com/jetsetilly/gopherdmg/logger"
	"github.com/jetsetilly/gopherdmg/paths"
)

// the filename of the regression database in the resource directory
const regressionDBFile = "regressionDB"

// Regressor represents the generic entry in the regression database.
type Regressor interface {
	database.Entry

	// perform the regression test for the regression type. the newRegression
	// flag indicates that the test is being added to the database and that
	// the result should be recorded rather than compared
	//
	// returns true if the test succeeded. the returned string is a short
	// description of the failure, if there was one
	regress(newRegression bool) (bool, string, error)
}

// when starting a database session we need to register what entries we will
// find in the database.
func initDBSession(db *database.Session) error {
	return db.RegisterEntryType(videoEntryID, deserialiseVideoEntry)
}

func startSession(activity database.Activity) (*database.Session, error) {
	pth, err := paths.ResourcePath("", regressionDBFile)
	if err != nil {
		return nil, curated.Errorf("regression: %v", err)
	}
	return database.StartSession(pth, activity, initDBSession)
}

// RegressList displays all entries in the database.
func RegressList(output io.Writer) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		if curated.Is(err, database.NotAvailable) {
			_, err = io.WriteString(output, "database is empty\n")
			return err
		}
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	return db.List(output)
}

// RegressDelete removes a test from the regression database. The user is asked
// for confirmation using the confirmation reader.
func RegressDelete(output io.Writer, confirmation io.Reader, key string) error {
	v, err := strconv.Atoi(key)
	if err != nil {
		return curated.Errorf("regression: invalid key (%s)", key)
	}

	db, err := startSession(database.ActivityModifying)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ent, err := db.Get(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "%s\ndelete? (y/n): ", ent)

	confirm := make([]byte, 32)
	n, err := confirmation.Read(confirm)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	if n == 0 || (confirm[0] != 'y' && confirm[0] != 'Y') {
		return db.EndSession(false)
	}

	err = db.Delete(v)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "deleted test #%03d from regression database\n", v)

	return db.EndSession(true)
}

// RegressAdd runs the regression test for the first time and adds it to the
// database.
func RegressAdd(output io.Writer, reg Regressor) error {
	db, err := startSession(database.ActivityCreating)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	ok, fail, err := reg.regress(true)
	if err != nil || !ok {
		_ = db.EndSession(false)
		if err == nil {
			err = curated.Errorf(fail)
		}
		return curated.Errorf("regression: %v", err)
	}

	key, err := db.Add(reg)
	if err != nil {
		_ = db.EndSession(false)
		return curated.Errorf("regression: %v", err)
	}

	fmt.Fprintf(output, "added: %03d %s\n", key, reg)

	return db.EndSession(true)
}

// RegressRun runs the tests in the regression database. The filterKeys list
// specifies which entries to test. An empty list means that every entry
// should be tested.
//
// An error is returned if any test fails.
func RegressRun(output io.Writer, verbose bool, filterKeys []string) error {
	db, err := startSession(database.ActivityReading)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}
	defer db.EndSession(false)

	keys := make([]int, 0, len(filterKeys))
	for _, k := range filterKeys {
		v, err := strconv.Atoi(k)
		if err != nil {
			return curated.Errorf("regression: invalid key (%s)", k)
		}
		keys = append(keys, v)
	}

	var numSucceed, numFail, numError int

	onSelect := func(key int, ent database.Entry) error {
		reg, ok := ent.(Regressor)
		if !ok {
			return curated.Errorf("regression: database entry does not satisfy Regressor interface")
		}

		// the log is cleared so that only the entries for this test are shown
		// in the event of an error
		logger.Clear()

		ok, fail, err := reg.regress(false)
		switch {
		case err != nil:
			numError++
			fmt.Fprintf(output, "  ERROR: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "    %v\n", err)
				logger.Write(output)
			}
		case !ok:
			numFail++
			fmt.Fprintf(output, "failure: %03d %s\n", key, reg)
			if verbose {
				fmt.Fprintf(output, "    %s\n", fail)
			}
		default:
			numSucceed++
			fmt.Fprintf(output, "succeed: %03d %s\n", key, reg)
		}

		return nil
	}

	_, err = db.SelectKeys(onSelect, keys...)
	if err != nil {
		return curated.Errorf("regression: %v", err)
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("regression tests: %d succeed, %d fail", numSucceed, numFail))
	if numError > 0 {
		s.WriteString(fmt.Sprintf(", %d errors", numError))
	}
	fmt.Fprintln(output, s.String())

	if numFail > 0 || numError > 0 {
		return curated.Errorf("regression: tests did not succeed")
	}

	return nil
}
