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

package database_test

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jetsetilly/gopherdmg/curated"
	"github.com/jetsetilly/gopherdmg/database"
	"github.com/jetsetilly/gopherdmg/test"
)

type fooEntry struct {
	name    string
	cleaned *bool
}

func (ent *fooEntry) ID() string {
	return "foo"
}

func (ent *fooEntry) String() string {
	return fmt.Sprintf("foo %s", ent.name)
}

func (ent *fooEntry) Serialise() (database.SerialisedEntry, error) {
	return database.SerialisedEntry{ent.name}, nil
}

func (ent *fooEntry) CleanUp() error {
	if ent.cleaned != nil {
		*ent.cleaned = true
	}
	return nil
}

func deserialiseFoo(fields database.SerialisedEntry) (database.Entry, error) {
	if len(fields) != 1 {
		return nil, fmt.Errorf("wrong number of fields")
	}
	return &fooEntry{name: fields[0]}, nil
}

func initDBSession(db *database.Session) error {
	return db.RegisterEntryType("foo", deserialiseFoo)
}

func TestMissingDatabase(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	_, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	test.ExpectSuccess(t, curated.Is(err, database.NotAvailable))

	_, err = database.StartSession(pth, database.ActivityModifying, initDBSession)
	test.ExpectSuccess(t, curated.Is(err, database.NotAvailable))
}

func TestDuplicateEntryType(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	_, err := database.StartSession(pth, database.ActivityCreating, func(db *database.Session) error {
		err := db.RegisterEntryType("foo", deserialiseFoo)
		if err != nil {
			return err
		}
		return db.RegisterEntryType("foo", deserialiseFoo)
	})
	test.ExpectFailure(t, err)
}

func TestSession(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	db, err := database.StartSession(pth, database.ActivityCreating, initDBSession)
	test.DemandSuccess(t, err)

	w := &strings.Builder{}
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "database is empty\n")

	key, err := db.Add(&fooEntry{name: "alpha"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)
	key, err = db.Add(&fooEntry{name: "beta"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 1)
	test.DemandSuccess(t, db.EndSession(true))

	b, err := os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "000,foo,alpha\n001,foo,beta\n")

	// reading session
	db, err = database.StartSession(pth, database.ActivityReading, initDBSession)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, db.NumEntries(), 2)

	w.Reset()
	test.ExpectSuccess(t, db.List(w))
	test.ExpectEquality(t, w.String(), "000 foo alpha\n001 foo beta\nTotal: 2\n")

	_, err = db.Add(&fooEntry{name: "gamma"})
	test.ExpectSuccess(t, curated.Is(err, database.ReadOnly))
	test.ExpectSuccess(t, db.EndSession(true))
	test.ExpectFailure(t, db.EndSession(false))

	// deleting an entry frees the key for the next entry
	db, err = database.StartSession(pth, database.ActivityModifying, initDBSession)
	test.DemandSuccess(t, err)

	ent, err := db.Get(0)
	test.DemandSuccess(t, err)
	var cleaned bool
	ent.(*fooEntry).cleaned = &cleaned

	test.ExpectSuccess(t, db.Delete(0))
	test.ExpectEquality(t, cleaned, true)
	test.ExpectSuccess(t, curated.Is(db.Delete(0), database.KeyNotFound))

	key, err = db.Add(&fooEntry{name: "gamma"})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, key, 0)
	test.DemandSuccess(t, db.EndSession(true))

	b, err = os.ReadFile(pth)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(b), "000,foo,gamma\n001,foo,beta\n")
}

func TestSelect(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")
	test.DemandSuccess(t, os.WriteFile(pth, []byte("002,foo,c\n000,foo,a\n001,foo,b\n"), 0600))

	db, err := database.StartSession(pth, database.ActivityReading, initDBSession)
	test.DemandSuccess(t, err)
	defer db.EndSession(false)

	var names []string
	_, err = db.SelectAll(func(key int, ent database.Entry) error {
		names = append(names, ent.(*fooEntry).name)
		return nil
	})
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "abc")

	names = names[:0]
	ent, err := db.SelectKeys(func(key int, ent database.Entry) error {
		names = append(names, ent.(*fooEntry).name)
		return nil
	}, 2, 0)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, strings.Join(names, ""), "ca")
	test.ExpectEquality(t, ent.(*fooEntry).name, "a")

	_, err = db.SelectKeys(nil, 5)
	test.ExpectSuccess(t, curated.Is(err, database.KeyNotFound))
}

func TestBadDatabase(t *testing.T) {
	pth := filepath.Join(t.TempDir(), "db")

	for _, content := range []string{
		"xxx,foo,a\n",
		"000,foo,a\n000,foo,b\n",
		"000,bar,a\n",
		"000,foo,a,b\n",
		"000\n",
	} {
		test.DemandSuccess(t, os.WriteFile(pth, []byte(content), 0600))
		_, err := database.StartSession(pth, database.ActivityReading, initDBSession)
		test.ExpectFailure(t, err)
	}
}
