package models

import (
	"time"
)

type Post struct {
	ID      uint   `gorm:"primaryKey" json:"id"`
	Pid     string `gorm:"uniqueIndex;size:8;not null" json:"pid"`
	UserID  uint   `gorm:"not null;index" json:"user_id"`
	User    User   `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"user"`
	GroupID *uint  `gorm:"index" json:"group_id"` // Nullable, a post may live outside any group
	Group   *Group `gorm:"constraint:OnUpdate:CASCADE,OnDelete:SET NULL;" json:"group"`
	Text    string `gorm:"type:text;not null" json:"text"`
	Image   string `json:"image"` // Opaque URL reference, optional
	// CreatedAt is the publication time and never changes after insert
	CreatedAt time.Time `gorm:"<-:create;index" json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Not a database column, filled in by the feed queries
	CommentCount int `gorm:"-" json:"comment_count"`
}
