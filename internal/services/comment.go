package services

import (
	"strings"

	"inkwell/internal/models"

	"gorm.io/gorm"
)

// CommentService attaches comments to posts. Comments are append-only:
// there is no edit or delete path.
type CommentService struct {
	db *gorm.DB
}

func NewCommentService(db *gorm.DB) *CommentService {
	return &CommentService{db: db}
}

// Add creates a comment by the given user on the given post. Returns
// ErrNotFound when the post does not exist and ErrValidation when the text
// is empty; nothing is written in either case.
func (s *CommentService) Add(postID uint, userID uint, text string) (*models.Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, ErrValidation
	}

	var post models.Post
	if err := s.db.First(&post, postID).Error; err != nil {
		return nil, ErrNotFound
	}

	comment := models.Comment{
		PostID: post.ID,
		UserID: userID,
		Text:   text,
	}
	if err := s.db.Create(&comment).Error; err != nil {
		return nil, err
	}

	return &comment, nil
}

// ForPost returns all comments on a post, oldest first.
func (s *CommentService) ForPost(postID uint) ([]models.Comment, error) {
	var comments []models.Comment
	err := s.db.Preload("User").
		Where("post_id = ?", postID).
		Order("created_at ASC, id ASC").
		Find(&comments).Error
	return comments, err
}
