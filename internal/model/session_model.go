package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type SessionModel struct {
	ID           string    `gorm:"type:uuid;primary_key" json:"id"`
	OwnerID      string    `gorm:"type:uuid;uniqueIndex;not null" json:"owner_id"`
	AccessToken  string    `gorm:"type:text;not null" json:"-"`
	RefreshToken string    `gorm:"type:text;not null" json:"-"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (SessionModel) TableName() string {
	return "sessions"
}

func (s *SessionModel) BeforeCreate(tx *gorm.DB) error {
	if s.ID == "" {
		s.ID = uuid.New().String()
	}
	return nil
}
