package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Block mirrors entity.Block for jsonb storage.
type Block struct {
	ID         string   `json:"id"`
	Type       string   `json:"type"`
	Content    string   `json:"content"`
	FontSize   int      `json:"fontSize,omitempty"`
	Bold       bool     `json:"bold,omitempty"`
	Italic     bool     `json:"italic,omitempty"`
	URL        string   `json:"url,omitempty"`
	Color      string   `json:"color,omitempty"`
	Background string   `json:"background,omitempty"`
	Size       string   `json:"size,omitempty"`
	LineType   string   `json:"lineType,omitempty"`
	ListType   string   `json:"listType,omitempty"`
	ListItems  []string `json:"listItems,omitempty"`
	VideoSize  int      `json:"videoSize,omitempty"`
}

type PostModel struct {
	ID             string      `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID        string      `gorm:"type:uuid;not null;index" json:"owner_id"`
	Title          string      `gorm:"type:varchar(70);not null" json:"title"`
	Body           BlockSlice  `gorm:"type:jsonb;not null" json:"body"`
	Category       StringSlice `gorm:"type:jsonb;not null" json:"category"`
	Tags           StringSlice `gorm:"type:jsonb" json:"tags"`
	NumberViews    int         `gorm:"default:0" json:"number_views"`
	NumberLikes    int         `gorm:"default:0" json:"number_likes"`
	NumberComments int         `gorm:"default:0" json:"number_comments"`
	ReadingTime    int         `gorm:"default:0" json:"reading_time"`
	PosterURL      string      `gorm:"type:varchar(500)" json:"poster_url"`
	ImagesURL      StringSlice `gorm:"type:jsonb" json:"images_url"`
	VideosURL      StringSlice `gorm:"type:jsonb" json:"videos_url"`
	IsPublic       bool        `gorm:"default:true" json:"is_public"`
	Likes          StringSlice `gorm:"type:jsonb" json:"likes"`
	CreatedAt      time.Time   `json:"created_at"`
	UpdatedAt      time.Time   `json:"updated_at"`
}

func (PostModel) TableName() string {
	return "posts"
}

func (p *PostModel) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}
