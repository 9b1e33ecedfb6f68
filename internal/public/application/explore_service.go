package application

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/cache"
	"github.com/bitemap/bitemap-services/api/internal/public/domain"
	"github.com/bitemap/bitemap-services/api/internal/ranking"
)

// Fetch windows and result sizes for the explore sections.
const (
	trendingWindowDays = 7
	trendingFetchLimit = 200
	trendingResultSize = 50

	topSpotsWindowDays = 30
	topSpotsFetchLimit = 500
	topSpotsResultSize = 20

	newWeekWindowDays = 7
	newWeekFetchLimit = 500
	newWeekResultSize = 20
	newWeekMinPosts   = 2

	categoriesWindowDays = 30
	categoriesFetchLimit = 500
)

// ExploreCategories is the fixed category list the viewer-aware scorer
// re-ranks. Tokens match post tags case-insensitively.
var ExploreCategories = []string{
	"tacos", "sushi", "ramen", "pizza", "burgers", "bbq",
	"brunch", "dessert", "coffee", "vegan", "seafood", "noodles",
}

// exploreQueryService implements ExploreQueryService on top of the post
// repository, the ranking core, and a shared section cache.
type exploreQueryService struct {
	posts PostRepository
	cache *cache.Cache
	now   func() time.Time
}

// NewExploreQueryService creates the explore query service. The cache is
// owned by the caller so it can be shared across requests and replaced in
// tests.
func NewExploreQueryService(posts PostRepository, c *cache.Cache) ExploreQueryService {
	return &exploreQueryService{posts: posts, cache: c, now: time.Now}
}

func (s *exploreQueryService) Trending(ctx context.Context) ([]domain.TrendingPostView, error) {
	if cached, ok := s.cache.Get("trending"); ok {
		return cached.([]domain.TrendingPostView), nil
	}

	posts, err := s.posts.Recent(ctx, trendingWindowDays, trendingFetchLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	type scored struct {
		post  domain.Post
		score float64
	}
	ranked := make([]scored, 0, len(posts))
	for _, post := range posts {
		ranked = append(ranked, scored{post: post, score: ranking.TrendingScore(post, now)})
	}
	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})
	if len(ranked) > trendingResultSize {
		ranked = ranked[:trendingResultSize]
	}

	views := make([]domain.TrendingPostView, 0, len(ranked))
	for _, entry := range ranked {
		views = append(views, buildTrendingView(entry.post, entry.score))
	}

	s.cache.Set("trending", views)
	return views, nil
}

func (s *exploreQueryService) TopSpots(ctx context.Context) ([]domain.TopSpotView, error) {
	if cached, ok := s.cache.Get("topspots"); ok {
		return cached.([]domain.TopSpotView), nil
	}

	posts, err := s.posts.Recent(ctx, topSpotsWindowDays, topSpotsFetchLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.TopSpotView, 0)
	for _, place := range domain.GroupPosts(posts) {
		rating := ranking.PlaceRating(place.Posts, now)
		stats := ranking.SpotStats{
			Rating:          rating,
			TotalPosts:      len(place.Posts),
			RecentPosts:     place.RecentPosts(now, 7*24*time.Hour),
			TotalSaves:      place.TotalSaves(),
			TotalEngagement: place.TotalEngagement(),
		}
		views = append(views, domain.TopSpotView{
			Restaurant:  place.Restaurant,
			City:        place.City,
			Rating:      rating,
			PostCount:   len(place.Posts),
			RecentPosts: stats.RecentPosts,
			TotalSaves:  stats.TotalSaves,
			PhotoURL:    place.PhotoURL(),
			Score:       ranking.SpotScore(stats),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	if len(views) > topSpotsResultSize {
		views = views[:topSpotsResultSize]
	}

	s.cache.Set("topspots", views)
	return views, nil
}

// NewThisWeek surfaces places whose earliest known post falls inside the
// 7-day window and that have gathered at least two posts in it. Posts older
// than the query window are invisible here, so "earliest known post" is a
// deliberate approximation of place age, not a verified creation date.
func (s *exploreQueryService) NewThisWeek(ctx context.Context) ([]domain.NewPlaceView, error) {
	if cached, ok := s.cache.Get("newweek"); ok {
		return cached.([]domain.NewPlaceView), nil
	}

	posts, err := s.posts.Recent(ctx, newWeekWindowDays, newWeekFetchLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.NewPlaceView, 0)
	for _, place := range domain.GroupPosts(posts) {
		if len(place.Posts) < newWeekMinPosts {
			continue
		}
		earliest := place.EarliestPost()
		if earliest == nil || now.Sub(earliest.CreatedAt) > newWeekWindowDays*24*time.Hour {
			continue
		}
		views = append(views, domain.NewPlaceView{
			Restaurant:    place.Restaurant,
			City:          place.City,
			PostsThisWeek: len(place.Posts),
			FirstPostAt:   earliest.CreatedAt.Format(time.RFC3339),
			PhotoURL:      place.PhotoURL(),
			Score:         ranking.NewPlaceScore(earliest.Engagement(), len(place.Posts)),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	if len(views) > newWeekResultSize {
		views = views[:newWeekResultSize]
	}

	s.cache.Set("newweek", views)
	return views, nil
}

func (s *exploreQueryService) Categories(ctx context.Context, viewerTastes []string) ([]domain.CategoryView, error) {
	key := "categories:" + normalizeTastes(viewerTastes)
	if cached, ok := s.cache.Get(key); ok {
		return cached.([]domain.CategoryView), nil
	}

	posts, err := s.posts.Recent(ctx, categoriesWindowDays, categoriesFetchLimit)
	if err != nil {
		return nil, err
	}

	now := s.now()
	views := make([]domain.CategoryView, 0, len(ExploreCategories))
	for _, token := range ExploreCategories {
		postCount := 0
		totalEngagement := 0
		recencySum := 0.0
		for _, post := range posts {
			if !hasTag(post, token) {
				continue
			}
			postCount++
			totalEngagement += post.Engagement()
			recencySum += ranking.RecencyFraction(post.CreatedAt, now)
		}
		avgRecency := 0.0
		if postCount > 0 {
			avgRecency = recencySum / float64(postCount)
		}
		views = append(views, domain.CategoryView{
			Token:           token,
			PostCount:       postCount,
			TotalEngagement: totalEngagement,
			Score: ranking.CategoryScore(ranking.CategoryInput{
				Token:           token,
				TotalEngagement: totalEngagement,
				AvgRecency:      avgRecency,
			}, viewerTastes),
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})

	s.cache.Set(key, views)
	return views, nil
}

func buildTrendingView(post domain.Post, score float64) domain.TrendingPostView {
	createdAt := ""
	if !post.CreatedAt.IsZero() {
		createdAt = post.CreatedAt.Format(time.RFC3339)
	}
	return domain.TrendingPostView{
		ID:            post.ID,
		AuthorID:      post.AuthorID,
		Restaurant:    post.Restaurant,
		City:          post.City,
		Dish:          post.Dish,
		VideoURL:      post.VideoURL,
		Likes:         post.Likes,
		CommentsCount: post.CommentsCount,
		Saves:         post.Saves,
		Score:         score,
		CreatedAt:     createdAt,
	}
}

func hasTag(post domain.Post, token string) bool {
	for _, tag := range post.Tags {
		if strings.EqualFold(strings.TrimSpace(tag), token) {
			return true
		}
	}
	return false
}

// normalizeTastes canonicalizes the viewer's taste tokens into a stable cache
// key segment: anonymous viewers share one entry per section.
func normalizeTastes(tastes []string) string {
	cleaned := make([]string, 0, len(tastes))
	for _, taste := range tastes {
		taste = strings.ToLower(strings.TrimSpace(taste))
		if taste != "" {
			cleaned = append(cleaned, taste)
		}
	}
	sort.Strings(cleaned)
	return strings.Join(cleaned, ",")
}
