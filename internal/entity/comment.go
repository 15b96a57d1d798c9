package entity

import "time"

type Comment struct {
	ID          string    `json:"id"`
	PostID      string    `json:"post"`
	AuthorID    string    `json:"author"`
	Text        string    `json:"text"`
	Likes       []string  `json:"likes"`
	NumberLikes int       `json:"numberLikes"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func (c *Comment) HasLike(userID string) bool {
	for _, id := range c.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
