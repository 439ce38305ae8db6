package services

import (
	"strings"

	"inkwell/internal/models"
	"inkwell/internal/utils"

	"gorm.io/gorm"
)

// PostService covers the post lifecycle: publish, edit, lookup. Deletion
// only happens by cascade when the author is deleted.
type PostService struct {
	db *gorm.DB
}

func NewPostService(db *gorm.DB) *PostService {
	return &PostService{db: db}
}

// PostInput is what the publish and edit forms provide.
type PostInput struct {
	Text    string
	GroupID *uint
	Image   string // URL of an already-stored upload, may be empty
}

// Publish creates a post for the given author. Text is required; group and
// image are optional. When a group is given it must exist.
func (s *PostService) Publish(authorID uint, in PostInput) (*models.Post, error) {
	if strings.TrimSpace(in.Text) == "" {
		return nil, ErrValidation
	}

	if in.GroupID != nil {
		var group models.Group
		if err := s.db.First(&group, *in.GroupID).Error; err != nil {
			return nil, ErrNotFound
		}
	}

	post := models.Post{
		Pid:     utils.RandStringBytesMaskImpr(8),
		UserID:  authorID,
		GroupID: in.GroupID,
		Text:    in.Text,
		Image:   in.Image,
	}
	if err := s.db.Create(&post).Error; err != nil {
		return nil, err
	}

	return &post, nil
}

// Update edits a post in place. Only the author may edit; the publication
// timestamp is never touched.
func (s *PostService) Update(pid string, editorID uint, in PostInput) (*models.Post, error) {
	var post models.Post
	if err := s.db.Where("pid = ?", pid).First(&post).Error; err != nil {
		return nil, ErrNotFound
	}

	if post.UserID != editorID {
		return nil, ErrForbidden
	}

	if strings.TrimSpace(in.Text) == "" {
		return nil, ErrValidation
	}

	if in.GroupID != nil {
		var group models.Group
		if err := s.db.First(&group, *in.GroupID).Error; err != nil {
			return nil, ErrNotFound
		}
	}

	post.Text = in.Text
	post.GroupID = in.GroupID
	if in.Image != "" {
		post.Image = in.Image
	}

	if err := s.db.Save(&post).Error; err != nil {
		return nil, err
	}
	return &post, nil
}

// ByPid loads a single post with its author and group.
func (s *PostService) ByPid(pid string) (*models.Post, error) {
	var post models.Post
	err := s.db.Preload("User").Preload("Group").Where("pid = ?", pid).First(&post).Error
	if err != nil {
		return nil, ErrNotFound
	}
	return &post, nil
}
