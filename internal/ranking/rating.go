package ranking

import (
	"math"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// Rating sub-score weights. Engagement dominates; the save rate is a weak
// signal because saves already feed the engagement unit.
const (
	ratingEngagementWeight = 0.4
	ratingPopularityWeight = 0.3
	ratingRecencyWeight    = 0.2
	ratingSaveRateWeight   = 0.1
)

// PlaceRating computes the 0–5 quality score for one place from its posts.
//
// Returns exactly 0 for an empty slice. For any non-empty slice the result is
// clamped into [1.0, 5.0] and rounded to one decimal: a place with even a
// single weak post still shows a floor rating rather than a zero.
//
// Sub-scores, each normalized to [0, 5]:
//   - engagement: average engagement per post against a 50-unit ceiling
//   - popularity: log-compressed post count (10 posts ≈ 4.0, 50+ ≈ 5.0)
//   - recency:    average one-year linear decay across posts
//   - save rate:  weighted saves share of total engagement
func PlaceRating(posts []domain.Post, now time.Time) float64 {
	if len(posts) == 0 {
		return 0
	}

	totalEngagement := 0
	totalSaves := 0
	recencySum := 0.0
	for _, post := range posts {
		totalEngagement += post.Engagement()
		totalSaves += post.Saves
		recencySum += RecencyFraction(post.CreatedAt, now)
	}

	n := float64(len(posts))
	avgEngagement := float64(totalEngagement) / n

	engagementScore := math.Min(5, avgEngagement/50*5)
	popularityScore := math.Min(5, math.Log10(n+1)/math.Log10(51)*5)
	recencyScore := recencySum / n * 5
	saveRateScore := 0.0
	if totalEngagement > 0 {
		saveRateScore = math.Min(5, float64(totalSaves*3)/float64(totalEngagement)*5)
	}

	score := ratingEngagementWeight*engagementScore +
		ratingPopularityWeight*popularityScore +
		ratingRecencyWeight*recencyScore +
		ratingSaveRateWeight*saveRateScore

	if score < 1 {
		score = 1
	}
	if score > 5 {
		score = 5
	}
	return RoundTo1(score)
}
