package services

import (
	"inkwell/internal/models"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// SocialService owns the follow edge set: who follows whom. It queries the
// follow table directly instead of hanging a derived relation off the User
// model, so every call spells out whose graph it is reading.
type SocialService struct {
	db *gorm.DB
}

func NewSocialService(db *gorm.DB) *SocialService {
	return &SocialService{db: db}
}

// Follow creates the (follower -> target) edge. Following yourself is
// silently skipped, and following someone twice leaves a single edge: the
// insert goes through ON CONFLICT DO NOTHING against the unique pair index,
// so even two racing requests cannot produce a duplicate.
func (s *SocialService) Follow(followerID uint, targetUsername string) error {
	var target models.User
	if err := s.db.Where("username = ?", targetUsername).First(&target).Error; err != nil {
		return ErrNotFound
	}

	if target.ID == followerID {
		// Policy, not an error: the edge is just not created
		return nil
	}

	edge := models.Follow{UserID: followerID, AuthorID: target.ID}
	return s.db.Clauses(clause.OnConflict{DoNothing: true}).Create(&edge).Error
}

// Unfollow removes the (follower -> target) edge. Removing an edge that does
// not exist is a no-op, not an error.
func (s *SocialService) Unfollow(followerID uint, targetUsername string) error {
	var target models.User
	if err := s.db.Where("username = ?", targetUsername).First(&target).Error; err != nil {
		return ErrNotFound
	}

	return s.db.Where("user_id = ? AND author_id = ?", followerID, target.ID).
		Delete(&models.Follow{}).Error
}

// FollowingOf returns the users the given user follows.
func (s *SocialService) FollowingOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN follows ON follows.author_id = users.id").
		Where("follows.user_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// FollowersOf returns the users following the given user.
func (s *SocialService) FollowersOf(userID uint) ([]models.User, error) {
	var users []models.User
	err := s.db.
		Joins("JOIN follows ON follows.user_id = users.id").
		Where("follows.author_id = ?", userID).
		Order("follows.created_at DESC").
		Find(&users).Error
	return users, err
}

// FollowingCount and FollowerCount back the counters on the profile page.
func (s *SocialService) FollowingCount(userID uint) int64 {
	var count int64
	s.db.Model(&models.Follow{}).Where("user_id = ?", userID).Count(&count)
	return count
}

func (s *SocialService) FollowerCount(userID uint) int64 {
	var count int64
	s.db.Model(&models.Follow{}).Where("author_id = ?", userID).Count(&count)
	return count
}

// IsFollowing reports whether the (follower -> author) edge exists. Used to
// decide which of the follow/unfollow buttons the profile page shows.
func (s *SocialService) IsFollowing(followerID, authorID uint) bool {
	var count int64
	s.db.Model(&models.Follow{}).
		Where("user_id = ? AND author_id = ?", followerID, authorID).
		Count(&count)
	return count > 0
}
