// Package users holds the user-directory example subject exercised by the
// built-in demo suite.
package users

import (
	"errors"
	"fmt"
)

var (
	ErrUserExists = errors.New("user already exists")
	ErrNoSuchUser = errors.New("user does not exist")
)

// UserManager maps usernames to email addresses.
type UserManager struct {
	users map[string]string
}

func NewUserManager() *UserManager {
	return &UserManager{users: make(map[string]string)}
}

// AddUser registers a new user. Adding a name that is already present is
// rejected with ErrUserExists.
func (m *UserManager) AddUser(username, email string) error {
	if _, ok := m.users[username]; ok {
		return fmt.Errorf("%w: %s", ErrUserExists, username)
	}
	m.users[username] = email
	return nil
}

// GetUserEmail returns the email registered for username, or ErrNoSuchUser.
func (m *UserManager) GetUserEmail(username string) (string, error) {
	email, ok := m.users[username]
	if !ok {
		return "", fmt.Errorf("%w: %s", ErrNoSuchUser, username)
	}
	return email, nil
}

// AllUsers returns a copy of the directory.
func (m *UserManager) AllUsers() map[string]string {
	out := make(map[string]string, len(m.users))
	for name, email := range m.users {
		out[name] = email
	}
	return out
}
