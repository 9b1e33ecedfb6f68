package ranking

import (
	"math"
	"testing"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

var testNow = time.Date(2025, 6, 15, 12, 0, 0, 0, time.UTC)

func TestPlaceRatingEmpty(t *testing.T) {
	if got := PlaceRating(nil, testNow); got != 0 {
		t.Errorf("empty post list should rate 0, got %.1f", got)
	}
	if got := PlaceRating([]domain.Post{}, testNow); got != 0 {
		t.Errorf("empty post list should rate 0, got %.1f", got)
	}
}

func TestPlaceRatingFloor(t *testing.T) {
	// A single dead post a year old still earns the non-empty floor.
	posts := []domain.Post{
		{CreatedAt: testNow.AddDate(-1, 0, 0)},
	}
	got := PlaceRating(posts, testNow)
	if got < 1.0 || got > 5.0 {
		t.Errorf("non-empty rating must stay in [1,5], got %.1f", got)
	}
	if got != 1.0 {
		t.Errorf("zero-engagement year-old post should rate the floor 1.0, got %.1f", got)
	}
}

func TestPlaceRatingDocumentedScenario(t *testing.T) {
	// likes=10 comments=2 saves=1 → engagement 17
	// engagement 17/50*5 = 1.7, popularity log10(2)/log10(51)*5 ≈ 0.887,
	// recency ≈ 5 (age 0), save rate 3/17*5 ≈ 0.882
	// 1.7*0.4 + 0.887*0.3 + 5*0.2 + 0.882*0.1 ≈ 2.034 → 2.0
	posts := []domain.Post{
		{Likes: 10, CommentsCount: 2, Saves: 1, CreatedAt: testNow},
	}
	got := PlaceRating(posts, testNow)
	if got != 2.0 {
		t.Errorf("expected 2.0, got %.1f", got)
	}
}

func TestPlaceRatingCap(t *testing.T) {
	// Save-only posts saturate every sub-score: engagement 2400/post, the
	// save rate is the whole engagement, 60 fresh posts max out popularity
	// and recency.
	posts := make([]domain.Post, 60)
	for i := range posts {
		posts[i] = domain.Post{Saves: 800, CreatedAt: testNow}
	}
	if got := PlaceRating(posts, testNow); got != 5.0 {
		t.Errorf("saturated inputs should cap at 5.0, got %.1f", got)
	}
}

func TestPlaceRatingSaveRateDilution(t *testing.T) {
	// Heavy likes dilute the save share: saves 800 of engagement 8400 per
	// post gives a save-rate sub-score of 2400/8400*5 ≈ 1.43, so the total
	// is 0.4*5 + 0.3*5 + 0.2*5 + 0.1*1.43 ≈ 4.64 → 4.6, not the cap.
	posts := make([]domain.Post, 60)
	for i := range posts {
		posts[i] = domain.Post{Likes: 5000, CommentsCount: 500, Saves: 800, CreatedAt: testNow}
	}
	if got := PlaceRating(posts, testNow); got != 4.6 {
		t.Errorf("like-heavy posts should rate 4.6, got %.1f", got)
	}
}

func TestPlaceRatingDeterminism(t *testing.T) {
	posts := []domain.Post{
		{Likes: 12, CommentsCount: 3, Saves: 4, CreatedAt: testNow.AddDate(0, 0, -10)},
		{Likes: 40, CommentsCount: 1, Saves: 0, CreatedAt: testNow.AddDate(0, 0, -100)},
	}
	first := PlaceRating(posts, testNow)
	for i := 0; i < 5; i++ {
		if got := PlaceRating(posts, testNow); got != first {
			t.Fatalf("rating not deterministic: %.3f vs %.3f", got, first)
		}
	}
}

func TestPlaceRatingIgnoresFutureDecay(t *testing.T) {
	// A slightly future timestamp (clock skew) must not push recency above 1.
	posts := []domain.Post{
		{Likes: 10, CommentsCount: 2, Saves: 1, CreatedAt: testNow.Add(time.Hour)},
	}
	skewed := PlaceRating(posts, testNow)
	exact := PlaceRating([]domain.Post{
		{Likes: 10, CommentsCount: 2, Saves: 1, CreatedAt: testNow},
	}, testNow)
	if math.Abs(skewed-exact) > 0.05 {
		t.Errorf("clock skew changed rating: %.2f vs %.2f", skewed, exact)
	}
}
