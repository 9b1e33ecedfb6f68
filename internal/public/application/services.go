package application

import (
	"context"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// PostRepository is the data-source port for engagement records. The ranking
// core never issues queries itself; these are the only fetch shapes it is
// driven by. Implementations must return normalized posts (see
// domain.NormalizePost) and a possibly empty slice, never a nil-for-error mix.
type PostRepository interface {
	Recent(ctx context.Context, windowDays, limit int) ([]domain.Post, error)
	ForPlace(ctx context.Context, restaurant string, limit int) ([]domain.Post, error)
	InCity(ctx context.Context, city string, limit int) ([]domain.Post, error)
	Search(ctx context.Context, keyword string, limit int) ([]domain.Post, error)
}

// UserRepository is the read port for account search.
type UserRepository interface {
	Search(ctx context.Context, keyword string, limit int) ([]domain.User, error)
}

// ExploreQueryService serves the four explore feeds. Results are ordered by
// score descending and memoized per section for the explore TTL.
type ExploreQueryService interface {
	Trending(ctx context.Context) ([]domain.TrendingPostView, error)
	TopSpots(ctx context.Context) ([]domain.TopSpotView, error)
	NewThisWeek(ctx context.Context) ([]domain.NewPlaceView, error)
	Categories(ctx context.Context, viewerTastes []string) ([]domain.CategoryView, error)
}

// SearchQueryService serves multi-entity search, memoized per normalized
// query string for the search TTL.
type SearchQueryService interface {
	Search(ctx context.Context, query string) (domain.SearchResultsView, error)
}

// PlaceQueryService serves per-place insight and discovery reads. Insights
// returns nil (not an error) for a place with no posts.
type PlaceQueryService interface {
	Insights(ctx context.Context, restaurant string) (*domain.PlaceInsightsView, error)
	Similar(ctx context.Context, restaurant string) ([]domain.SimilarPlaceView, error)
}
