package ranking

import (
	"math"
	"sort"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// DishRank is one must-try entry for a place, ordered by Score.
type DishRank struct {
	Dish     string
	Mentions int
	Score    float64
	AvgLikes int
	AvgSaves int
	Price    float64
	HasPrice bool
}

// RankDishes groups a place's posts by dish name and ranks the dishes.
//
// Mention volume carries half the score, log-compressed so the benefit caps
// out around 20 mentions. Posts with an empty dish name are excluded. Ties
// keep first-mention order.
func RankDishes(posts []domain.Post, now time.Time) []DishRank {
	type bucket struct {
		posts []domain.Post
	}
	index := make(map[string]int)
	order := make([]string, 0)
	buckets := make([]bucket, 0)

	for _, post := range posts {
		if post.Dish == "" {
			continue
		}
		i, ok := index[post.Dish]
		if !ok {
			i = len(buckets)
			index[post.Dish] = i
			order = append(order, post.Dish)
			buckets = append(buckets, bucket{})
		}
		buckets[i].posts = append(buckets[i].posts, post)
	}

	ranked := make([]DishRank, 0, len(buckets))
	for i, dish := range order {
		group := buckets[i].posts
		mentions := len(group)

		totalEngagement := 0
		totalLikes := 0
		totalSaves := 0
		recencySum := 0.0
		price := 0.0
		hasPrice := false
		for _, post := range group {
			totalEngagement += post.Engagement()
			totalLikes += post.Likes
			totalSaves += post.Saves
			recencySum += RecencyFraction(post.CreatedAt, now)
			if !hasPrice && post.HasPrice {
				price = post.Price
				hasPrice = true
			}
		}

		n := float64(mentions)
		mentionScore := math.Min(1, math.Log10(n+1)/math.Log10(21))
		engagementScore := math.Min(1, float64(totalEngagement)/n/100)
		recencyScore := recencySum / n

		ranked = append(ranked, DishRank{
			Dish:     dish,
			Mentions: mentions,
			Score:    0.5*mentionScore + 0.3*engagementScore + 0.2*recencyScore,
			AvgLikes: int(math.Round(float64(totalLikes) / n)),
			AvgSaves: int(math.Round(float64(totalSaves) / n)),
			Price:    price,
			HasPrice: hasPrice,
		})
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].Score > ranked[j].Score
	})
	return ranked
}
