package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type CommentModel struct {
	ID          string      `gorm:"type:uuid;primary_key" json:"id"`
	PostID      string      `gorm:"type:uuid;not null;index" json:"post_id"`
	AuthorID    string      `gorm:"type:uuid;not null;index" json:"author_id"`
	Text        string      `gorm:"type:varchar(1000);not null" json:"text"`
	Likes       StringSlice `gorm:"type:jsonb" json:"likes"`
	NumberLikes int         `gorm:"default:0" json:"number_likes"`
	CreatedAt   time.Time   `json:"created_at"`
	UpdatedAt   time.Time   `json:"updated_at"`
}

func (CommentModel) TableName() string {
	return "comments"
}

func (c *CommentModel) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
