package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type UserModel struct {
	ID              string         `gorm:"type:uuid;primary_key" json:"id"`
	FirstName       string         `gorm:"type:varchar(50);not null" json:"first_name"`
	LastName        string         `gorm:"type:varchar(50);not null" json:"last_name"`
	Email           string         `gorm:"uniqueIndex;not null" json:"email"`
	Password        string         `gorm:"not null" json:"-"`
	DateBirth       time.Time      `json:"date_birth"`
	Gender          string         `gorm:"type:varchar(10);default:'other'" json:"gender"`
	Description     string         `gorm:"type:varchar(500)" json:"description"`
	Profession      string         `gorm:"type:varchar(100)" json:"profession"`
	PhoneNumber     string         `gorm:"type:varchar(20)" json:"phone_number"`
	Location        Location       `gorm:"type:jsonb" json:"location"`
	SocialNetworks  SocialNetworks `gorm:"type:jsonb" json:"social_networks"`
	Hobby           StringSlice    `gorm:"type:jsonb" json:"hobby"`
	AvatarURL       string         `gorm:"type:varchar(500)" json:"avatar_url"`
	PosterURL       string         `gorm:"type:varchar(500)" json:"poster_url"`
	ActivationToken string         `gorm:"type:varchar(64);index" json:"-"`
	IsActivated     bool           `gorm:"default:false" json:"is_activated"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

func (UserModel) TableName() string {
	return "users"
}

func (u *UserModel) BeforeCreate(tx *gorm.DB) error {
	if u.ID == "" {
		u.ID = uuid.New().String()
	}
	return nil
}
