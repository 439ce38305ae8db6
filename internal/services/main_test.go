package services

import (
	"fmt"
	"os"
	"testing"
	"time"

	"inkwell/internal/db"
	"inkwell/internal/models"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// setupTestDB opens the database pointed to by TEST_DATABASE_URL, migrates
// the schema and wipes all rows. Tests that need a database are skipped when
// the variable is not set.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := os.Getenv("TEST_DATABASE_URL")
	if dsn == "" {
		t.Skip("TEST_DATABASE_URL not set, skipping database test")
	}

	gdb, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.Migrate(gdb))
	require.NoError(t, gdb.Exec(
		"TRUNCATE TABLE comments, follows, posts, groups, users RESTART IDENTITY CASCADE",
	).Error)

	return gdb
}

var testSeq int

func createTestUser(t *testing.T, gdb *gorm.DB, username string) models.User {
	t.Helper()
	user := models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "x",
	}
	require.NoError(t, gdb.Create(&user).Error)
	return user
}

func createTestGroup(t *testing.T, gdb *gorm.DB, slug string) models.Group {
	t.Helper()
	group := models.Group{Title: slug, Slug: slug}
	require.NoError(t, gdb.Create(&group).Error)
	return group
}

// createTestPost inserts a post with an explicit publication time so tests
// control the feed order.
func createTestPost(t *testing.T, gdb *gorm.DB, userID uint, text string, groupID *uint, createdAt time.Time) models.Post {
	t.Helper()
	testSeq++
	post := models.Post{
		Pid:       fmt.Sprintf("t%07d", testSeq),
		UserID:    userID,
		GroupID:   groupID,
		Text:      text,
		CreatedAt: createdAt,
	}
	require.NoError(t, gdb.Create(&post).Error)
	return post
}
