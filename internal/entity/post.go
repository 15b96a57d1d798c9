package entity

import "time"

// Statistics are mutated only through defined increment operations; they
// all start at zero. NumberLikes always equals the size of the likes set.
type Statistics struct {
	NumberViews    int `json:"numberViews"`
	NumberLikes    int `json:"numberLikes"`
	NumberComments int `json:"numberComments"`
	ReadingTime    int `json:"readingTime"`
}

type Post struct {
	ID         string     `json:"id"`
	OwnerID    string     `json:"owner"`
	Title      string     `json:"title"`
	Body       []Block    `json:"body"`
	Category   []string   `json:"category"`
	Tags       []string   `json:"tags"`
	Statistics Statistics `json:"statistics"`
	PosterURL  string     `json:"poster_url"`
	ImagesURL  []string   `json:"images_url"`
	VideosURL  []string   `json:"videos_url"`
	IsPublic   bool       `json:"is_public"`
	Likes      []string   `json:"likes"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

// HasLike reports membership of the user in the post's likes set.
func (p *Post) HasLike(userID string) bool {
	for _, id := range p.Likes {
		if id == userID {
			return true
		}
	}
	return false
}
