package ranking

import (
	"math"
	"strings"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// TrendingScore scores a single post for the trending feed.
//
// The engagement term is engagement per hour of age — a raw density, not
// capped at 1, used purely for relative ordering. Age is floored at 0.1 hours
// so brand-new posts do not blow up the division. A 48-hour linear velocity
// boost and a unique-engager proxy (likes+comments capped at 100) round out
// the blend.
func TrendingScore(post domain.Post, now time.Time) float64 {
	hoursOld := HoursOld(post.CreatedAt, now)

	engagementScore := float64(post.Engagement()) / hoursOld
	velocityBoost := 1 - hoursOld/velocitySpan
	if velocityBoost < 0 {
		velocityBoost = 0
	}
	uniqueEngagers := math.Min(float64(post.Likes+post.CommentsCount), 100) / 100

	return engagementScore*0.5 + velocityBoost*0.3 + uniqueEngagers*0.2
}

// SpotStats are the aggregated inputs to SpotScore, derived from a place's
// posts by the explore service.
type SpotStats struct {
	Rating          float64
	TotalPosts      int
	RecentPosts     int
	TotalSaves      int
	TotalEngagement int
}

// SpotScore ranks an aggregated place for the top-spots feed. All four
// sub-signals are clamped into [0, 1]; quality (the place rating) carries
// half the weight.
func SpotScore(stats SpotStats) float64 {
	ratingScore := Clamp01(stats.Rating / 5)
	volumeScore := Clamp01(float64(stats.TotalPosts) / 100)

	totalPosts := stats.TotalPosts
	if totalPosts < 1 {
		totalPosts = 1
	}
	momentumScore := Clamp01(float64(stats.RecentPosts) / float64(totalPosts))

	saveRate := 0.0
	if stats.TotalEngagement > 0 {
		saveRate = Clamp01(float64(stats.TotalSaves*3) / float64(stats.TotalEngagement))
	}

	return ratingScore*0.5 + volumeScore*0.2 + momentumScore*0.2 + saveRate*0.1
}

// NewPlaceScore ranks a place for the new-this-week feed from its first
// post's engagement and its post volume inside the window. Eligibility
// (earliest post within 7 days, at least 2 posts in the window) is the
// caller's filter, not this function's.
func NewPlaceScore(firstPostEngagement, postsInWeek int) float64 {
	launchScore := Clamp01(float64(firstPostEngagement) / 50)
	volumeScore := Clamp01(float64(postsInWeek) / 10)
	return launchScore*0.6 + volumeScore*0.4
}

// CategoryInput is one category token with its aggregate engagement signals.
type CategoryInput struct {
	Token           string
	TotalEngagement int
	AvgRecency      float64
}

// CategoryScore re-ranks a fixed category list for one viewer. A taste match
// against the viewer's preference tokens is worth as much as the category's
// total engagement, so preferred categories surface first when engagement is
// otherwise close.
func CategoryScore(in CategoryInput, viewerTastes []string) float64 {
	tasteMatch := 0.0
	token := strings.ToLower(strings.TrimSpace(in.Token))
	for _, taste := range viewerTastes {
		if strings.ToLower(strings.TrimSpace(taste)) == token && token != "" {
			tasteMatch = 1
			break
		}
	}

	engagementScore := Clamp01(float64(in.TotalEngagement) / 500)
	recencyScore := Clamp01(in.AvgRecency)

	return tasteMatch*0.4 + engagementScore*0.4 + recencyScore*0.2
}
