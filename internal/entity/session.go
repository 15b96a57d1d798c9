package entity

import "time"

// Session is the single live token record per user. A new login overwrites
// the existing record; there is never more than one per owner.
type Session struct {
	ID           string    `json:"id"`
	OwnerID      string    `json:"owner"`
	AccessToken  string    `json:"access_token"`
	RefreshToken string    `json:"refresh_token"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

type TokenPair struct {
	AccessToken  string `json:"accessToken"`
	RefreshToken string `json:"refreshToken"`
}
