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

const (
	searchFetchLimit = 100
	searchResultSize = 20
)

// searchQueryService implements SearchQueryService: it fetches keyword
// candidates from the post and user repositories, derives place candidates by
// grouping the matching posts, and ranks all three entity lists with the
// search relevance scorer. Zero-score candidates are dropped.
type searchQueryService struct {
	posts PostRepository
	users UserRepository
	cache *cache.Cache
	now   func() time.Time
}

// NewSearchQueryService creates the search query service.
func NewSearchQueryService(posts PostRepository, users UserRepository, c *cache.Cache) SearchQueryService {
	return &searchQueryService{posts: posts, users: users, cache: c, now: time.Now}
}

func (s *searchQueryService) Search(ctx context.Context, query string) (domain.SearchResultsView, error) {
	query = strings.ToLower(strings.TrimSpace(query))
	empty := domain.SearchResultsView{
		Places: []domain.PlaceSearchView{},
		Users:  []domain.UserSearchView{},
		Posts:  []domain.PostSearchView{},
	}
	if query == "" {
		return empty, nil
	}

	key := "search:" + query
	if cached, ok := s.cache.Get(key); ok {
		return cached.(domain.SearchResultsView), nil
	}

	posts, err := s.posts.Search(ctx, query, searchFetchLimit)
	if err != nil {
		return empty, err
	}
	users, err := s.users.Search(ctx, query, searchFetchLimit)
	if err != nil {
		return empty, err
	}

	results := domain.SearchResultsView{
		Places: s.rankPlaces(query, posts),
		Users:  rankUsers(query, users),
		Posts:  rankPosts(query, posts),
	}

	s.cache.Set(key, results)
	return results, nil
}

func (s *searchQueryService) rankPlaces(query string, posts []domain.Post) []domain.PlaceSearchView {
	now := s.now()
	views := make([]domain.PlaceSearchView, 0)
	for _, place := range domain.GroupPosts(posts) {
		rating := ranking.PlaceRating(place.Posts, now)
		score := ranking.ScorePlaceResult(query, place.Restaurant, rating)
		if score == 0 {
			continue
		}
		views = append(views, domain.PlaceSearchView{
			Restaurant: place.Restaurant,
			City:       place.City,
			Rating:     rating,
			PostCount:  len(place.Posts),
			Score:      score,
		})
	}
	return sortAndTrimPlaces(views)
}

func rankUsers(query string, users []domain.User) []domain.UserSearchView {
	views := make([]domain.UserSearchView, 0)
	for _, user := range users {
		score := ranking.ScoreUserResult(query, user)
		if score == 0 {
			continue
		}
		views = append(views, domain.UserSearchView{
			ID:          user.ID,
			Handle:      user.Handle,
			DisplayName: user.DisplayName,
			AvatarURL:   user.AvatarURL,
			Followers:   user.Followers,
			Score:       score,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	if len(views) > searchResultSize {
		views = views[:searchResultSize]
	}
	return views
}

func rankPosts(query string, posts []domain.Post) []domain.PostSearchView {
	views := make([]domain.PostSearchView, 0)
	for _, post := range posts {
		score := ranking.ScorePostResult(query, post)
		if score == 0 {
			continue
		}
		views = append(views, domain.PostSearchView{
			ID:         post.ID,
			Restaurant: post.Restaurant,
			Dish:       post.Dish,
			Caption:    post.Caption,
			VideoURL:   post.VideoURL,
			Likes:      post.Likes,
			Saves:      post.Saves,
			Score:      score,
		})
	}
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	if len(views) > searchResultSize {
		views = views[:searchResultSize]
	}
	return views
}

func sortAndTrimPlaces(views []domain.PlaceSearchView) []domain.PlaceSearchView {
	sort.SliceStable(views, func(i, j int) bool {
		return views[i].Score > views[j].Score
	})
	if len(views) > searchResultSize {
		views = views[:searchResultSize]
	}
	return views
}
