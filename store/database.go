// Package store provides an in-memory stand-in for a real database, used
// by the demo suite to show teardown-style fixtures.
package store

import (
	"errors"
	"fmt"
)

var ErrDuplicateID = errors.New("user already exists")

// Database keeps an id-to-name table in memory.
type Database struct {
	data map[int]string
}

func NewDatabase() *Database {
	return &Database{data: make(map[int]string)}
}

// AddUser inserts a row. Inserting an id that is already present is
// rejected with ErrDuplicateID.
func (d *Database) AddUser(id int, name string) error {
	if _, ok := d.data[id]; ok {
		return fmt.Errorf("%w: id %d", ErrDuplicateID, id)
	}
	d.data[id] = name
	return nil
}

func (d *Database) GetUser(id int) (string, bool) {
	name, ok := d.data[id]
	return name, ok
}

func (d *Database) DeleteUser(id int) {
	delete(d.data, id)
}

// Clear drops all rows. The demo suite's fixture teardown calls it, the way
// a real database fixture would truncate tables.
func (d *Database) Clear() {
	d.data = make(map[int]string)
}

func (d *Database) Len() int {
	return len(d.data)
}
