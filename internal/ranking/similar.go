package ranking

import (
	"sort"
	"strings"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// Similarity sub-score weights. Shared visitors are the strongest signal of
// "people who like X also go to Y"; city proximity is the weakest because the
// candidate pool is usually already city-scoped.
const (
	similarVisitorWeight   = 0.4
	similarTagWeight       = 0.3
	similarPriceWeight     = 0.2
	similarProximityWeight = 0.1

	// Overlap denominators cap at 5 so small places with a handful of loyal
	// visitors can still reach full overlap.
	similarOverlapCap = 5

	// Average prices within this dollar band count as the same tier.
	similarPriceBand = 50
)

// SimilarPlace is one scored candidate with its sub-score breakdown.
type SimilarPlace struct {
	Place          domain.Place
	Score          float64
	SharedVisitors float64
	SharedTags     float64
	PriceMatch     float64
	Proximity      float64
}

// SimilarPlaces scores every candidate against the target place and returns
// them ordered by score descending (stable). Candidates with zero posts are
// skipped entirely. A place compared against itself scores exactly 1.0.
func SimilarPlaces(target domain.Place, candidates []domain.Place) []SimilarPlace {
	targetAuthors := authorSet(target.Posts)
	targetTags := tagSet(target.Posts)
	targetPrice, targetHasPrice := averagePrice(target.Posts)
	targetCity := strings.ToLower(target.City)

	results := make([]SimilarPlace, 0, len(candidates))
	for _, candidate := range candidates {
		if len(candidate.Posts) == 0 {
			continue
		}

		sharedVisitors := overlapScore(targetAuthors, authorSet(candidate.Posts))
		sharedTags := overlapScore(targetTags, tagSet(candidate.Posts))

		priceMatch := 0.5
		if targetHasPrice {
			candidatePrice, _ := averagePrice(candidate.Posts)
			diff := targetPrice - candidatePrice
			if diff < 0 {
				diff = -diff
			}
			priceMatch = 1 - diff/similarPriceBand
			if priceMatch < 0 {
				priceMatch = 0
			}
		}

		proximity := 0.0
		if targetCity != "" && candidate.City != "" && targetCity == strings.ToLower(candidate.City) {
			proximity = 1
		}

		results = append(results, SimilarPlace{
			Place:          candidate,
			SharedVisitors: sharedVisitors,
			SharedTags:     sharedTags,
			PriceMatch:     priceMatch,
			Proximity:      proximity,
			Score: similarVisitorWeight*sharedVisitors +
				similarTagWeight*sharedTags +
				similarPriceWeight*priceMatch +
				similarProximityWeight*proximity,
		})
	}

	sort.SliceStable(results, func(i, j int) bool {
		return results[i].Score > results[j].Score
	})
	return results
}

// overlapScore is the min-capped overlap used for both visitor and tag
// similarity: |a ∩ b| over min(|a|, 5), clamped to 1. Returns 0 when the
// target side is empty.
func overlapScore(target, candidate map[string]struct{}) float64 {
	if len(target) == 0 {
		return 0
	}
	shared := 0
	for key := range target {
		if _, ok := candidate[key]; ok {
			shared++
		}
	}
	den := len(target)
	if den > similarOverlapCap {
		den = similarOverlapCap
	}
	return Clamp01(float64(shared) / float64(den))
}

func authorSet(posts []domain.Post) map[string]struct{} {
	set := make(map[string]struct{})
	for _, post := range posts {
		if post.AuthorID != "" {
			set[post.AuthorID] = struct{}{}
		}
	}
	return set
}

func tagSet(posts []domain.Post) map[string]struct{} {
	set := make(map[string]struct{})
	for _, post := range posts {
		for _, tag := range post.Tags {
			tag = strings.ToLower(strings.TrimSpace(tag))
			if tag != "" {
				set[tag] = struct{}{}
			}
		}
	}
	return set
}

// averagePrice averages over posts that carry a price. The second return is
// false when no post is priced; callers treat that as an unknown tier.
func averagePrice(posts []domain.Post) (float64, bool) {
	total := 0.0
	count := 0
	for _, post := range posts {
		if post.HasPrice {
			total += post.Price
			count++
		}
	}
	if count == 0 {
		return 0, false
	}
	return total / float64(count), true
}
