package domain

// View types are the ranked, display-ready records handed to the presentation
// layer. Ordering is this service's contract: clients must not re-sort or
// re-filter by score.

// TrendingPostView is one post in the trending feed.
type TrendingPostView struct {
	ID            string  `json:"id"`
	AuthorID      string  `json:"authorId,omitempty"`
	Restaurant    string  `json:"restaurant"`
	City          string  `json:"city,omitempty"`
	Dish          string  `json:"dish,omitempty"`
	VideoURL      string  `json:"videoUrl,omitempty"`
	Likes         int     `json:"likes"`
	CommentsCount int     `json:"commentsCount"`
	Saves         int     `json:"saves"`
	Score         float64 `json:"score"`
	CreatedAt     string  `json:"createdAt,omitempty"`
}

// TopSpotView is one aggregated place in the top-spots feed.
type TopSpotView struct {
	Restaurant  string  `json:"restaurant"`
	City        string  `json:"city,omitempty"`
	Rating      float64 `json:"rating"`
	PostCount   int     `json:"postCount"`
	RecentPosts int     `json:"recentPosts"`
	TotalSaves  int     `json:"totalSaves"`
	PhotoURL    string  `json:"photoUrl,omitempty"`
	Score       float64 `json:"score"`
}

// NewPlaceView is one entry in the new-this-week feed.
type NewPlaceView struct {
	Restaurant    string  `json:"restaurant"`
	City          string  `json:"city,omitempty"`
	PostsThisWeek int     `json:"postsThisWeek"`
	FirstPostAt   string  `json:"firstPostAt,omitempty"`
	PhotoURL      string  `json:"photoUrl,omitempty"`
	Score         float64 `json:"score"`
}

// CategoryView is one category token ranked for the current viewer.
type CategoryView struct {
	Token           string  `json:"token"`
	PostCount       int     `json:"postCount"`
	TotalEngagement int     `json:"totalEngagement"`
	Score           float64 `json:"score"`
}

// DishView is one must-try dish for a place.
type DishView struct {
	Dish     string   `json:"dish"`
	Mentions int      `json:"mentions"`
	AvgLikes int      `json:"avgLikes"`
	AvgSaves int      `json:"avgSaves"`
	Price    *float64 `json:"price,omitempty"`
	Score    float64  `json:"score"`
}

// VibeView is one aggregated tag with its count.
type VibeView struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TimeBucketView is one histogram cell of the best-time analysis.
type TimeBucketView struct {
	Label   string `json:"label"`
	Count   int    `json:"count"`
	Percent int    `json:"percent"`
}

// BestTimesView summarizes when a place's posts are published. It is omitted
// entirely when no post carries a resolvable timestamp.
type BestTimesView struct {
	BestDay       string           `json:"bestDay"`
	BestTimeOfDay string           `json:"bestTimeOfDay"`
	Days          []TimeBucketView `json:"days"`
	TimesOfDay    []TimeBucketView `json:"timesOfDay"`
	SampleSize    int              `json:"sampleSize"`
}

// PlaceInsightsView is the full insight panel for one place.
type PlaceInsightsView struct {
	Restaurant string         `json:"restaurant"`
	City       string         `json:"city,omitempty"`
	Rating     float64        `json:"rating"`
	PostCount  int            `json:"postCount"`
	Dishes     []DishView     `json:"dishes"`
	Vibes      []VibeView     `json:"vibes"`
	BestTimes  *BestTimesView `json:"bestTimes,omitempty"`
}

// SimilarPlaceView is one similar-place recommendation.
type SimilarPlaceView struct {
	Restaurant string  `json:"restaurant"`
	City       string  `json:"city,omitempty"`
	Rating     float64 `json:"rating"`
	PostCount  int     `json:"postCount"`
	PhotoURL   string  `json:"photoUrl,omitempty"`
	Score      float64 `json:"score"`
}

// PlaceSearchView is one place hit in search results.
type PlaceSearchView struct {
	Restaurant string  `json:"restaurant"`
	City       string  `json:"city,omitempty"`
	Rating     float64 `json:"rating"`
	PostCount  int     `json:"postCount"`
	Score      float64 `json:"score"`
}

// UserSearchView is one user hit in search results.
type UserSearchView struct {
	ID          string  `json:"id"`
	Handle      string  `json:"handle"`
	DisplayName string  `json:"displayName,omitempty"`
	AvatarURL   string  `json:"avatarUrl,omitempty"`
	Followers   int     `json:"followers"`
	Score       float64 `json:"score"`
}

// PostSearchView is one post hit in search results.
type PostSearchView struct {
	ID         string  `json:"id"`
	Restaurant string  `json:"restaurant"`
	Dish       string  `json:"dish,omitempty"`
	Caption    string  `json:"caption,omitempty"`
	VideoURL   string  `json:"videoUrl,omitempty"`
	Likes      int     `json:"likes"`
	Saves      int     `json:"saves"`
	Score      float64 `json:"score"`
}

// SearchResultsView bundles the three ranked entity lists for one query.
type SearchResultsView struct {
	Places []PlaceSearchView `json:"places"`
	Users  []UserSearchView  `json:"users"`
	Posts  []PostSearchView  `json:"posts"`
}
