package suites

import (
	"github.com/unitest/harness/framework"
	"github.com/unitest/harness/users"
)

// NewUserSuite exercises fixture resolution: every invocation gets a fresh
// UserManager from the user_manager provider, so state added by one test is
// never visible to the next.
func NewUserSuite() *framework.Suite {
	s := framework.NewSuite("users")

	s.RegisterFixture("user_manager", func() (interface{}, framework.Teardown, error) {
		return users.NewUserManager(), nil, nil
	})

	withManager := framework.WithFixtures("user_manager")
	manager := func(t *framework.T) *users.UserManager {
		return t.Fixture("user_manager").(*users.UserManager)
	}

	s.Register("test_add_new_user", func(t *framework.T) {
		m := manager(t)
		t.RequireNoError(m.AddUser("Ilai", "ilaishimoni@gmail.com"))
	}, withManager)

	s.Register("test_get_user_email", func(t *framework.T) {
		m := manager(t)
		t.RequireNoError(m.AddUser("Ilai", "ilaishimoni@gmail.com"))
		email, err := m.GetUserEmail("Ilai")
		t.RequireNoError(err)
		t.AssertEqual("ilaishimoni@gmail.com", email)
	}, withManager)

	s.Register("test_add_existing_user", func(t *framework.T) {
		m := manager(t)
		t.RequireNoError(m.AddUser("Ilai", "ilaishimoni@gmail.com"))
		err := m.AddUser("Ilai", "ilaishimoni@gmail.com")
		t.ExpectError(err, users.ErrUserExists, "user already exists")
	}, withManager)

	s.Register("test_get_non_existing_user", func(t *framework.T) {
		m := manager(t)
		_, err := m.GetUserEmail("ilaishimoni@gmail.com")
		t.ExpectError(err, users.ErrNoSuchUser, "user does not exist")
	}, withManager)

	s.Register("test_get_multiple_users", func(t *framework.T) {
		m := manager(t)
		t.RequireNoError(m.AddUser("Ilai", "ilaishimoni@gmail.com"))
		t.RequireNoError(m.AddUser("Dan", "fatdan@gmail.com"))
		t.AssertEqual(map[string]string{
			"Ilai": "ilaishimoni@gmail.com",
			"Dan":  "fatdan@gmail.com",
		}, m.AllUsers())
	}, withManager)

	// Not a test: discovery passes over it because the name has no marker.
	s.Register("seed_demo_directory", func(t *framework.T) {
		m := manager(t)
		t.RequireNoError(m.AddUser("Demo", "demo@example.com"))
		t.Debug("seeded %d users", len(m.AllUsers()))
	}, withManager)

	return s
}
