package domain

import (
	"strings"
	"time"
)

// Post represents a single published engagement record: one dish at one
// restaurant, with the counters the ranking core scores against.
// Counters are guaranteed non-negative and CreatedAt is the zero time when
// the source document carried no resolvable timestamp (see NormalizePost).
type Post struct {
	ID            string
	AuthorID      string
	Restaurant    string
	City          string
	Dish          string
	Caption       string
	Price         float64
	HasPrice      bool
	Tags          []string
	Likes         int
	CommentsCount int
	Saves         int
	VideoURL      string
	CreatedAt     time.Time
}

// Engagement returns the universal popularity unit: likes + 2*comments + 3*saves.
func (p Post) Engagement() int {
	return p.Likes + 2*p.CommentsCount + 3*p.Saves
}

// NormalizePost is the single normalization pass applied at the data-source
// boundary. Negative counters are clamped to zero and identity strings are
// trimmed so the scoring core never has to defend against malformed fields.
func NormalizePost(p Post) Post {
	if p.Likes < 0 {
		p.Likes = 0
	}
	if p.CommentsCount < 0 {
		p.CommentsCount = 0
	}
	if p.Saves < 0 {
		p.Saves = 0
	}
	if p.Price < 0 || !p.HasPrice {
		p.Price = 0
		p.HasPrice = false
	}
	p.Restaurant = strings.TrimSpace(p.Restaurant)
	p.City = strings.TrimSpace(p.City)
	p.Dish = strings.TrimSpace(p.Dish)
	return p
}
