package suites

import (
	"github.com/unitest/harness/framework"
	"github.com/unitest/harness/store"
)

// NewDatabaseSuite exercises two-phase fixtures: the db provider hands out
// a fresh Database and a teardown that clears it after the invocation.
func NewDatabaseSuite() *framework.Suite {
	s := framework.NewSuite("database")

	s.RegisterFixture("db", func() (interface{}, framework.Teardown, error) {
		db := store.NewDatabase()
		return db, func() error {
			db.Clear()
			return nil
		}, nil
	})

	withDB := framework.WithFixtures("db")
	database := func(t *framework.T) *store.Database {
		return t.Fixture("db").(*store.Database)
	}

	s.Register("test_add_user", func(t *framework.T) {
		db := database(t)
		t.RequireNoError(db.AddUser(1, "Alice"))
		name, ok := db.GetUser(1)
		t.AssertTrue(ok, "user 1 not found after add")
		t.AssertEqual("Alice", name)
	}, withDB)

	s.Register("test_add_duplicate_user", func(t *framework.T) {
		db := database(t)
		t.RequireNoError(db.AddUser(1, "Alice"))
		t.ExpectError(db.AddUser(1, "Bob"), store.ErrDuplicateID, "user already exists")
	}, withDB)

	s.Register("test_delete_user", func(t *framework.T) {
		db := database(t)
		t.RequireNoError(db.AddUser(2, "Bob"))
		db.DeleteUser(2)
		_, ok := db.GetUser(2)
		t.AssertTrue(!ok, "user 2 still present after delete")
	}, withDB)

	return s
}
