package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAndGetUser(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.AddUser(1, "Alice"))

	name, ok := db.GetUser(1)
	assert.True(t, ok)
	assert.Equal(t, "Alice", name)
}

func TestAddDuplicateUser(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.AddUser(1, "Alice"))

	err := db.AddUser(1, "Bob")
	assert.ErrorIs(t, err, ErrDuplicateID)
}

func TestDeleteUser(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.AddUser(2, "Bob"))
	db.DeleteUser(2)

	_, ok := db.GetUser(2)
	assert.False(t, ok)
}

func TestClear(t *testing.T) {
	db := NewDatabase()
	require.NoError(t, db.AddUser(1, "Alice"))
	require.NoError(t, db.AddUser(2, "Bob"))
	db.Clear()
	assert.Equal(t, 0, db.Len())
}
