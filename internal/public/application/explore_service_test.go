package application

import (
	"context"
	"testing"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/cache"
	"github.com/bitemap/bitemap-services/api/internal/public/domain"
	"github.com/bitemap/bitemap-services/api/internal/ranking"
)

var serviceTestNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

type stubPostRepo struct {
	posts       []domain.Post
	recentCalls int
	searchCalls int
}

func (s *stubPostRepo) Recent(_ context.Context, _, _ int) ([]domain.Post, error) {
	s.recentCalls++
	return s.posts, nil
}

func (s *stubPostRepo) ForPlace(_ context.Context, restaurant string, _ int) ([]domain.Post, error) {
	matched := make([]domain.Post, 0)
	for _, post := range s.posts {
		if post.Restaurant == restaurant {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

func (s *stubPostRepo) InCity(_ context.Context, city string, _ int) ([]domain.Post, error) {
	matched := make([]domain.Post, 0)
	for _, post := range s.posts {
		if post.City == city {
			matched = append(matched, post)
		}
	}
	return matched, nil
}

func (s *stubPostRepo) Search(_ context.Context, _ string, _ int) ([]domain.Post, error) {
	s.searchCalls++
	return s.posts, nil
}

func newExploreServiceForTest(repo *stubPostRepo) *exploreQueryService {
	return &exploreQueryService{
		posts: repo,
		cache: cache.NewWithClock(15*time.Minute, func() time.Time { return serviceTestNow }),
		now:   func() time.Time { return serviceTestNow },
	}
}

func TestNewThisWeekEligibility(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		// Place A: a single post two days old — excluded, needs two posts.
		{ID: "a1", Restaurant: "Solo Spot", City: "Austin", Likes: 30,
			CreatedAt: serviceTestNow.AddDate(0, 0, -2)},
		// Place B: two posts inside the window — eligible.
		{ID: "b1", Restaurant: "Fresh Opening", City: "Austin", Likes: 20, Saves: 5,
			CreatedAt: serviceTestNow.AddDate(0, 0, -3)},
		{ID: "b2", Restaurant: "Fresh Opening", City: "Austin", Likes: 10,
			CreatedAt: serviceTestNow.AddDate(0, 0, -1)},
	}}
	svc := newExploreServiceForTest(repo)

	got, err := svc.NewThisWeek(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 1 {
		t.Fatalf("expected only the two-post place, got %d entries", len(got))
	}
	if got[0].Restaurant != "Fresh Opening" {
		t.Errorf("expected Fresh Opening, got %q", got[0].Restaurant)
	}
	if got[0].PostsThisWeek != 2 {
		t.Errorf("expected 2 posts this week, got %d", got[0].PostsThisWeek)
	}
	// First post engagement: 20 likes + 3*5 saves = 35.
	want := ranking.NewPlaceScore(35, 2)
	if got[0].Score != want {
		t.Errorf("expected score %.4f, got %.4f", want, got[0].Score)
	}
}

func TestTrendingOrdersByScoreDescending(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		{ID: "cold", Restaurant: "Quiet Diner", Likes: 2,
			CreatedAt: serviceTestNow.Add(-40 * time.Hour)},
		{ID: "hot", Restaurant: "Viral Stand", Likes: 300, CommentsCount: 40, Saves: 80,
			CreatedAt: serviceTestNow.Add(-2 * time.Hour)},
	}}
	svc := newExploreServiceForTest(repo)

	got, err := svc.Trending(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 posts, got %d", len(got))
	}
	if got[0].ID != "hot" {
		t.Errorf("hot post should rank first, got %q", got[0].ID)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("scores not descending: %.3f then %.3f", got[0].Score, got[1].Score)
	}
}

func TestTrendingServedFromCache(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		{ID: "p1", Restaurant: "Taqueria El Norte", Likes: 10, CreatedAt: serviceTestNow.Add(-time.Hour)},
	}}
	svc := newExploreServiceForTest(repo)

	if _, err := svc.Trending(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Trending(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.recentCalls != 1 {
		t.Errorf("second call within TTL should hit the cache, repo called %d times", repo.recentCalls)
	}
}

func TestTopSpotsAggregatesPlaces(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		{Restaurant: "Ramen Koji", City: "Portland", Likes: 200, Saves: 50,
			CreatedAt: serviceTestNow.AddDate(0, 0, -1), VideoURL: "https://m/1.mp4"},
		{Restaurant: "Ramen Koji", City: "Portland", Likes: 150, Saves: 30,
			CreatedAt: serviceTestNow.AddDate(0, 0, -2)},
		{Restaurant: "Quiet Diner", City: "Portland", Likes: 1,
			CreatedAt: serviceTestNow.AddDate(0, 0, -20)},
	}}
	svc := newExploreServiceForTest(repo)

	got, err := svc.TopSpots(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 places, got %d", len(got))
	}
	if got[0].Restaurant != "Ramen Koji" {
		t.Errorf("expected Ramen Koji first, got %q", got[0].Restaurant)
	}
	if got[0].PostCount != 2 {
		t.Errorf("expected 2 posts aggregated, got %d", got[0].PostCount)
	}
	if got[0].PhotoURL != "https://m/1.mp4" {
		t.Errorf("expected representative photo, got %q", got[0].PhotoURL)
	}
}

func TestCategoriesTasteBoost(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		{Restaurant: "A", Tags: []string{"tacos"}, Likes: 50, CreatedAt: serviceTestNow.AddDate(0, 0, -1)},
		{Restaurant: "B", Tags: []string{"sushi"}, Likes: 50, CreatedAt: serviceTestNow.AddDate(0, 0, -1)},
	}}
	svc := newExploreServiceForTest(repo)

	got, err := svc.Categories(context.Background(), []string{"sushi"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got[0].Token != "sushi" {
		t.Errorf("viewer's taste should surface first, got %q", got[0].Token)
	}
}

func TestCategoriesCacheKeyedByTastes(t *testing.T) {
	repo := &stubPostRepo{posts: []domain.Post{
		{Restaurant: "A", Tags: []string{"tacos"}, Likes: 50, CreatedAt: serviceTestNow.AddDate(0, 0, -1)},
	}}
	svc := newExploreServiceForTest(repo)

	if _, err := svc.Categories(context.Background(), []string{"sushi"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.Categories(context.Background(), []string{"tacos"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.recentCalls != 2 {
		t.Errorf("different tastes must not share a cache entry, repo called %d times", repo.recentCalls)
	}
	if _, err := svc.Categories(context.Background(), []string{"TACOS "}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if repo.recentCalls != 2 {
		t.Errorf("equivalent tastes should share a cache entry, repo called %d times", repo.recentCalls)
	}
}
