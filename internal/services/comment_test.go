package services

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddComment(t *testing.T) {
	gdb := setupTestDB(t)
	comments := NewCommentService(gdb)

	bob := createTestUser(t, gdb, "bob")
	carol := createTestUser(t, gdb, "carol")
	post := createTestPost(t, gdb, bob.ID, "hello", nil, time.Now())

	comment, err := comments.Add(post.ID, carol.ID, "hi bob")
	require.NoError(t, err)
	assert.Equal(t, post.ID, comment.PostID)
	assert.Equal(t, carol.ID, comment.UserID)
	assert.Equal(t, "hi bob", comment.Text)
	assert.False(t, comment.CreatedAt.IsZero())
}

func TestAddCommentToMissingPost(t *testing.T) {
	gdb := setupTestDB(t)
	comments := NewCommentService(gdb)

	carol := createTestUser(t, gdb, "carol")

	_, err := comments.Add(99999, carol.ID, "hi")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAddCommentEmptyText(t *testing.T) {
	gdb := setupTestDB(t)
	comments := NewCommentService(gdb)

	bob := createTestUser(t, gdb, "bob")
	post := createTestPost(t, gdb, bob.ID, "hello", nil, time.Now())

	_, err := comments.Add(post.ID, bob.ID, "")
	assert.ErrorIs(t, err, ErrValidation)

	_, err = comments.Add(post.ID, bob.ID, "   \n\t")
	assert.ErrorIs(t, err, ErrValidation)
}

func TestCommentsForPostOldestFirst(t *testing.T) {
	gdb := setupTestDB(t)
	comments := NewCommentService(gdb)

	bob := createTestUser(t, gdb, "bob")
	post := createTestPost(t, gdb, bob.ID, "hello", nil, time.Now())

	for _, text := range []string{"one", "two", "three"} {
		_, err := comments.Add(post.ID, bob.ID, text)
		require.NoError(t, err)
	}

	list, err := comments.ForPost(post.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	assert.Equal(t, "one", list[0].Text)
	assert.Equal(t, "three", list[2].Text)
	assert.Equal(t, "bob", list[0].User.Username)
}
