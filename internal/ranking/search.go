package ranking

import (
	"math"
	"strings"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

// Match-quality tiers, classified in priority order.
const (
	matchExact        = 1.0
	matchPrefix       = 0.75
	matchWordBoundary = 0.6
	matchSubstring    = 0.3
)

// MatchScore blends how well query matches text with an entity-specific
// relevance signal and a proximity signal, both in [0, 1].
//
// Match classification (after trimming and lowercasing both strings):
// exact equality beats a prefix match beats a word-boundary substring beats a
// plain substring; no match short-circuits to 0. Exact and prefix matches
// additionally earn the full position bonus. Only a space counts as a word
// boundary: a match after punctuation ("bbq-taco") classifies as a plain
// substring.
//
// The proximity signal is always 0 in the current system — no geo distance is
// plumbed through to this layer. Known limitation, kept explicit in the
// signature rather than papered over.
func MatchScore(query, text string, relevance, proximity float64) float64 {
	query = strings.ToLower(strings.TrimSpace(query))
	text = strings.ToLower(strings.TrimSpace(text))
	if query == "" || text == "" {
		return 0
	}

	var match float64
	switch {
	case text == query:
		match = matchExact
	case strings.HasPrefix(text, query):
		match = matchPrefix
	case strings.Contains(text, " "+query):
		match = matchWordBoundary
	case strings.Contains(text, query):
		match = matchSubstring
	default:
		return 0
	}

	positionBonus := 0.0
	if match >= matchPrefix {
		positionBonus = 1
	}

	return match*0.4 + positionBonus*0.3 + Clamp01(relevance)*0.2 + Clamp01(proximity)*0.1
}

// ScorePlaceResult scores a place against a search query using its rating as
// the relevance signal.
func ScorePlaceResult(query, name string, rating float64) float64 {
	return MatchScore(query, name, rating/5, 0)
}

// ScoreUserResult scores a user by the better of their handle and display
// name, with follower count (capped at 1000) as the relevance signal.
func ScoreUserResult(query string, user domain.User) float64 {
	relevance := math.Min(1, float64(user.Followers)/1000)
	handleScore := MatchScore(query, user.Handle, relevance, 0)
	nameScore := MatchScore(query, user.DisplayName, relevance, 0)
	return math.Max(handleScore, nameScore)
}

// ScorePostResult scores a post by the best match across its dish, restaurant
// name, and caption, with engagement (capped at 100) as the relevance signal.
func ScorePostResult(query string, post domain.Post) float64 {
	relevance := math.Min(1, float64(post.Engagement())/100)
	score := MatchScore(query, post.Dish, relevance, 0)
	if s := MatchScore(query, post.Restaurant, relevance, 0); s > score {
		score = s
	}
	if s := MatchScore(query, post.Caption, relevance, 0); s > score {
		score = s
	}
	return score
}
