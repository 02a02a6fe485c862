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

package database

import (
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/jetsetilly/gopherdmg/curated"
)

// Activity is used to specify the general activity of what will be occurring
// during the database session.
type Activity int

// Valid activities: the "higher level" activities inherit the activity
// abilities of the activity levels lower down the scale.
const (
	ActivityReading Activity = iota

	// Modifying implies Reading.
	ActivityModifying

	// Creating implies Modifying (which in turn implies Reading).
	ActivityCreating
)

// Session keeps track of a database session.
type Session struct {
	dbfile   *os.File
	activity Activity

	entries map[int]Entry

	entryTypes map[string]Deserialiser
}

// StartSession starts/initialises a new DB session. The init function is
// called before the database file is read.
func StartSession(path string, activity Activity, init func(*Session) error) (*Session, error) {
	var err error

	db := &Session{
		activity:   activity,
		entries:    make(map[int]Entry),
		entryTypes: make(map[string]Deserialiser),
	}

	var flags int
	switch activity {
	case ActivityReading:
		flags = os.O_RDONLY
	case ActivityModifying:
		flags = os.O_RDWR
	case ActivityCreating:
		flags = os.O_RDWR | os.O_CREATE
	}

	db.dbfile, err = os.OpenFile(path, flags, 0600)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, curated.Errorf(NotAvailable, path)
		}
		return nil, curated.Errorf("database: %v", err)
	}

	// closing of db.dbfile requires a call to EndSession()

	err = init(db)
	if err != nil {
		_ = db.dbfile.Close()
		return nil, err
	}

	err = db.readDBFile()
	if err != nil {
		_ = db.dbfile.Close()
		return nil, err
	}

	return db, nil
}

// EndSession closes the database. Changes are only written if commitChanges
// is true and the session activity allows it.
func (db *Session) EndSession(commitChanges bool) error {
	if db.dbfile == nil {
		return curated.Errorf("database: session has already ended")
	}

	defer func() {
		db.dbfile = nil
	}()

	if commitChanges && db.activity != ActivityReading {
		if err := db.write(); err != nil {
			_ = db.dbfile.Close()
			return curated.Errorf("database: %v", err)
		}
	}

	if err := db.dbfile.Close(); err != nil {
		return curated.Errorf("database: %v", err)
	}

	return nil
}

func (db *Session) write() error {
	err := db.dbfile.Truncate(0)
	if err != nil {
		return err
	}

	_, err = db.dbfile.Seek(0, io.SeekStart)
	if err != nil {
		return err
	}

	for _, key := range db.SortedKeyList() {
		ent := db.entries[key]

		ser, err := ent.Serialise()
		if err != nil {
			return err
		}

		s := strings.Builder{}
		s.WriteString(recordHeader(key, ent.ID()))
		for _, f := range ser {
			if strings.Contains(f, fieldSep) || strings.Contains(f, entrySep) {
				return curated.Errorf("entry %03d: field contains a separator (%q)", key, f)
			}
			s.WriteString(fieldSep)
			s.WriteString(f)
		}
		s.WriteString(entrySep)

		_, err = db.dbfile.WriteString(s.String())
		if err != nil {
			return err
		}
	}

	return nil
}

func (db *Session) readDBFile() error {
	buffer, err := io.ReadAll(db.dbfile)
	if err != nil {
		return curated.Errorf("database: %v", err)
	}

	lines := strings.Split(string(buffer), entrySep)

	for i, l := range lines {
		l = strings.TrimSpace(l)
		if len(l) == 0 {
			continue
		}

		fields := strings.Split(l, fieldSep)
		if len(fields) < numLeaderFields {
			return curated.Errorf("database: invalid entry at line %d", i+1)
		}

		key, err := strconv.Atoi(fields[leaderFieldKey])
		if err != nil {
			return curated.Errorf("database: invalid key (%s) at line %d", fields[leaderFieldKey], i+1)
		}

		if _, ok := db.entries[key]; ok {
			return curated.Errorf("database: duplicate key (%d) at line %d", key, i+1)
		}

		des, ok := db.entryTypes[fields[leaderFieldID]]
		if !ok {
			return curated.Errorf("database: unrecognised entry type (%s) at line %d", fields[leaderFieldID], i+1)
		}

		ent, err := des(fields[numLeaderFields:])
		if err != nil {
			return curated.Errorf("database: line %d: %v", i+1, err)
		}

		db.entries[key] = ent
	}

	return nil
}
