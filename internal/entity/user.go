package entity

import "time"

type Gender string

const (
	GenderMan   Gender = "man"
	GenderWoman Gender = "woman"
	GenderOther Gender = "other"
)

type Location struct {
	Country string `json:"country,omitempty"`
	Region  string `json:"region,omitempty"`
	City    string `json:"city,omitempty"`
}

type SocialNetworks struct {
	Facebook  string `json:"facebook,omitempty"`
	Twitter   string `json:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty"`
	LinkedIn  string `json:"linkedin,omitempty"`
	YouTube   string `json:"youtube,omitempty"`
}

type User struct {
	ID              string         `json:"id"`
	FirstName       string         `json:"first_name"`
	LastName        string         `json:"last_name"`
	Email           string         `json:"email"`
	Password        string         `json:"-"`
	DateBirth       time.Time      `json:"date_birth"`
	Gender          Gender         `json:"gender"`
	Description     string         `json:"description"`
	Profession      string         `json:"profession"`
	PhoneNumber     string         `json:"phone_number"`
	Location        Location       `json:"location"`
	SocialNetworks  SocialNetworks `json:"social_networks"`
	Hobby           []string       `json:"hobby"`
	AvatarURL       string         `json:"avatar_url"`
	PosterURL       string         `json:"poster_url"`
	ActivationToken string         `json:"-"`
	IsActivated     bool           `json:"is_activated"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}
