package domain

import "time"

// Place is a derived aggregate: all posts that name the same restaurant,
// grouped by the exact restaurant string. It is never stored.
type Place struct {
	Restaurant string
	City       string
	Posts      []Post
}

// GroupPosts buckets posts into place aggregates keyed by exact restaurant
// name, preserving first-seen order of both places and their posts. Posts
// without a restaurant name are dropped.
func GroupPosts(posts []Post) []Place {
	index := make(map[string]int)
	places := make([]Place, 0)
	for _, post := range posts {
		if post.Restaurant == "" {
			continue
		}
		i, ok := index[post.Restaurant]
		if !ok {
			i = len(places)
			index[post.Restaurant] = i
			places = append(places, Place{Restaurant: post.Restaurant, City: post.City})
		}
		if places[i].City == "" && post.City != "" {
			places[i].City = post.City
		}
		places[i].Posts = append(places[i].Posts, post)
	}
	return places
}

// EarliestPost returns the oldest post with a resolvable timestamp, or nil.
func (p Place) EarliestPost() *Post {
	var earliest *Post
	for i := range p.Posts {
		if p.Posts[i].CreatedAt.IsZero() {
			continue
		}
		if earliest == nil || p.Posts[i].CreatedAt.Before(earliest.CreatedAt) {
			earliest = &p.Posts[i]
		}
	}
	return earliest
}

// PhotoURL returns the first non-empty media URL across the place's posts.
func (p Place) PhotoURL() string {
	for _, post := range p.Posts {
		if post.VideoURL != "" {
			return post.VideoURL
		}
	}
	return ""
}

// TotalSaves sums the save counters across the place's posts.
func (p Place) TotalSaves() int {
	total := 0
	for _, post := range p.Posts {
		total += post.Saves
	}
	return total
}

// TotalEngagement sums the engagement unit across the place's posts.
func (p Place) TotalEngagement() int {
	total := 0
	for _, post := range p.Posts {
		total += post.Engagement()
	}
	return total
}

// RecentPosts counts posts created within the window ending at now.
func (p Place) RecentPosts(now time.Time, window time.Duration) int {
	count := 0
	for _, post := range p.Posts {
		if post.CreatedAt.IsZero() {
			continue
		}
		if now.Sub(post.CreatedAt) <= window {
			count++
		}
	}
	return count
}
