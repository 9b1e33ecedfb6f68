package application

import (
	"context"
	"strings"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
	"github.com/bitemap/bitemap-services/api/internal/ranking"
)

const (
	placeFetchLimit   = 200
	cityFetchLimit    = 500
	similarResultSize = 10
)

// placeQueryService implements PlaceQueryService with uncached reads: place
// pages are fetched far less often than the explore sections and their post
// sets are small.
type placeQueryService struct {
	posts PostRepository
	now   func() time.Time
}

// NewPlaceQueryService creates the place query service.
func NewPlaceQueryService(posts PostRepository) PlaceQueryService {
	return &placeQueryService{posts: posts, now: time.Now}
}

func (s *placeQueryService) Insights(ctx context.Context, restaurant string) (*domain.PlaceInsightsView, error) {
	posts, err := s.posts.ForPlace(ctx, restaurant, placeFetchLimit)
	if err != nil {
		return nil, err
	}
	if len(posts) == 0 {
		return nil, nil
	}

	now := s.now()
	view := &domain.PlaceInsightsView{
		Restaurant: restaurant,
		City:       firstCity(posts),
		Rating:     ranking.PlaceRating(posts, now),
		PostCount:  len(posts),
		Dishes:     buildDishViews(ranking.RankDishes(posts, now)),
		Vibes:      buildVibeViews(ranking.AggregateVibes(posts)),
		BestTimes:  buildBestTimesView(ranking.AnalyzeBestTimes(posts)),
	}
	return view, nil
}

func (s *placeQueryService) Similar(ctx context.Context, restaurant string) ([]domain.SimilarPlaceView, error) {
	targetPosts, err := s.posts.ForPlace(ctx, restaurant, placeFetchLimit)
	if err != nil {
		return nil, err
	}
	if len(targetPosts) == 0 {
		return []domain.SimilarPlaceView{}, nil
	}

	target := domain.Place{
		Restaurant: restaurant,
		City:       firstCity(targetPosts),
		Posts:      targetPosts,
	}

	candidatePosts := []domain.Post{}
	if target.City != "" {
		candidatePosts, err = s.posts.InCity(ctx, target.City, cityFetchLimit)
		if err != nil {
			return nil, err
		}
	}

	candidates := make([]domain.Place, 0)
	for _, place := range domain.GroupPosts(candidatePosts) {
		if strings.EqualFold(place.Restaurant, restaurant) {
			continue
		}
		candidates = append(candidates, place)
	}

	now := s.now()
	ranked := ranking.SimilarPlaces(target, candidates)
	if len(ranked) > similarResultSize {
		ranked = ranked[:similarResultSize]
	}

	views := make([]domain.SimilarPlaceView, 0, len(ranked))
	for _, entry := range ranked {
		views = append(views, domain.SimilarPlaceView{
			Restaurant: entry.Place.Restaurant,
			City:       entry.Place.City,
			Rating:     ranking.PlaceRating(entry.Place.Posts, now),
			PostCount:  len(entry.Place.Posts),
			PhotoURL:   entry.Place.PhotoURL(),
			Score:      entry.Score,
		})
	}
	return views, nil
}

func firstCity(posts []domain.Post) string {
	for _, post := range posts {
		if post.City != "" {
			return post.City
		}
	}
	return ""
}

func buildDishViews(ranked []ranking.DishRank) []domain.DishView {
	views := make([]domain.DishView, 0, len(ranked))
	for _, dish := range ranked {
		view := domain.DishView{
			Dish:     dish.Dish,
			Mentions: dish.Mentions,
			AvgLikes: dish.AvgLikes,
			AvgSaves: dish.AvgSaves,
			Score:    dish.Score,
		}
		if dish.HasPrice {
			price := dish.Price
			view.Price = &price
		}
		views = append(views, view)
	}
	return views
}

func buildVibeViews(vibes []ranking.VibeCount) []domain.VibeView {
	views := make([]domain.VibeView, 0, len(vibes))
	for _, vibe := range vibes {
		views = append(views, domain.VibeView{Tag: vibe.Tag, Count: vibe.Count})
	}
	return views
}

func buildBestTimesView(best *ranking.BestTimes) *domain.BestTimesView {
	if best == nil {
		return nil
	}
	view := &domain.BestTimesView{
		BestDay:       best.BestDay,
		BestTimeOfDay: best.BestTimeOfDay,
		Days:          make([]domain.TimeBucketView, 0, len(best.Days)),
		TimesOfDay:    make([]domain.TimeBucketView, 0, len(best.TimesOfDay)),
		SampleSize:    best.ValidPostCount,
	}
	for _, bucket := range best.Days {
		view.Days = append(view.Days, domain.TimeBucketView(bucket))
	}
	for _, bucket := range best.TimesOfDay {
		view.TimesOfDay = append(view.TimesOfDay, domain.TimeBucketView(bucket))
	}
	return view
}
