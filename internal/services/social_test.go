package services

import (
	"testing"

	"inkwell/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFollowIsIdempotent(t *testing.T) {
	gdb := setupTestDB(t)
	social := NewSocialService(gdb)

	alice := createTestUser(t, gdb, "alice")
	bob := createTestUser(t, gdb, "bob")

	require.NoError(t, social.Follow(alice.ID, "bob"))
	require.NoError(t, social.Follow(alice.ID, "bob"))
	require.NoError(t, social.Follow(alice.ID, "bob"))

	var count int64
	gdb.Model(&models.Follow{}).Where("user_id = ? AND author_id = ?", alice.ID, bob.ID).Count(&count)
	assert.Equal(t, int64(1), count, "repeated follows must leave a single edge")
}

func TestFollowSelfIsSilentlySkipped(t *testing.T) {
	gdb := setupTestDB(t)
	social := NewSocialService(gdb)

	alice := createTestUser(t, gdb, "alice")

	require.NoError(t, social.Follow(alice.ID, "alice"))

	var count int64
	gdb.Model(&models.Follow{}).Count(&count)
	assert.Equal(t, int64(0), count, "self-follow must not create an edge")
}

func TestFollowUnknownTarget(t *testing.T) {
	gdb := setupTestDB(t)
	social := NewSocialService(gdb)

	alice := createTestUser(t, gdb, "alice")

	err := social.Follow(alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)

	err = social.Unfollow(alice.ID, "nobody")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestUnfollowWithoutEdgeIsNoop(t *testing.T) {
	gdb := setupTestDB(t)
	social := NewSocialService(gdb)

	alice := createTestUser(t, gdb, "alice")
	createTestUser(t, gdb, "bob")

	require.NoError(t, social.Unfollow(alice.ID, "bob"))
}

func TestFollowersAndFollowing(t *testing.T) {
	gdb := setupTestDB(t)
	social := NewSocialService(gdb)

	alice := createTestUser(t, gdb, "alice")
	bob := createTestUser(t, gdb, "bob")
	carol := createTestUser(t, gdb, "carol")

	require.NoError(t, social.Follow(alice.ID, "bob"))
	require.NoError(t, social.Follow(alice.ID, "carol"))
	require.NoError(t, social.Follow(carol.ID, "bob"))

	following, err := social.FollowingOf(alice.ID)
	require.NoError(t, err)
	names := make([]string, len(following))
	for i, u := range following {
		names[i] = u.Username
	}
	assert.ElementsMatch(t, []string{"bob", "carol"}, names)

	followers, err := social.FollowersOf(bob.ID)
	require.NoError(t, err)
	names = names[:0]
	for _, u := range followers {
		names = append(names, u.Username)
	}
	assert.ElementsMatch(t, []string{"alice", "carol"}, names)

	assert.Equal(t, int64(2), social.FollowingCount(alice.ID))
	assert.Equal(t, int64(2), social.FollowerCount(bob.ID))
	assert.Equal(t, int64(0), social.FollowerCount(alice.ID))

	assert.True(t, social.IsFollowing(alice.ID, bob.ID))
	assert.False(t, social.IsFollowing(bob.ID, alice.ID))

	// Unfollow removes exactly the one edge
	require.NoError(t, social.Unfollow(alice.ID, "bob"))
	assert.False(t, social.IsFollowing(alice.ID, bob.ID))
	assert.True(t, social.IsFollowing(alice.ID, carol.ID))
}
