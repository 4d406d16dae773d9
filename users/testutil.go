package users

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRepository runs the repository contract against any backend. Backend
// packages call it from their own tests.
func TestRepository(t *testing.T, repo Repository) {
	// Unknown email
	user, err := repo.Get("ghost@paperwatch.io")
	require.NoError(t, err)
	assert.Nil(t, user, "unknown email should yield nil")

	// Insert
	alice := &User{Email: "alice@paperwatch.io", PasswordHash: "$2a$10$alice"}
	require.NoError(t, repo.Upsert(alice))

	bob := &User{
		Email:        "bob@paperwatch.io",
		PasswordHash: "$2a$10$bob",
		Topics:       []string{"3D Object Detection", "NeRF", "3D Object Detection"},
	}
	require.NoError(t, repo.Upsert(bob))

	// Get
	user, err = repo.Get(alice.Email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, *alice, *user)
	assert.Empty(t, user.Topics)

	user, err = repo.Get(bob.Email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, bob.Topics, user.Topics, "topic order and duplicates should survive the store")

	// Update
	bob.Topics = append(bob.Topics, "Gaussian Splatting")
	require.NoError(t, repo.Upsert(bob))
	user, err = repo.Get(bob.Email)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, bob.Topics, user.Topics)

	// List, ordered by email
	users, err := repo.List()
	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.Equal(t, alice.Email, users[0].Email)
	assert.Equal(t, bob.Email, users[1].Email)
}
