package ranking

import (
	"math"
	"testing"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

func TestMatchScorePriorityChain(t *testing.T) {
	exact := ScorePlaceResult("joe's", "Joe's", 0)
	prefix := ScorePlaceResult("joe's", "Joe's Diner", 0)
	wordBoundary := ScorePlaceResult("joe's", "The Old Joe's Place", 0)
	if !(exact > prefix && prefix > wordBoundary) {
		t.Errorf("expected exact > prefix > word-boundary, got %.3f, %.3f, %.3f",
			exact, prefix, wordBoundary)
	}
}

func TestMatchScoreTiers(t *testing.T) {
	cases := []struct {
		name  string
		query string
		text  string
		want  float64
	}{
		{"exact", "taco stand", "Taco Stand", 1*0.4 + 0.3},
		{"prefix", "taco", "Taco Stand", 0.75*0.4 + 0.3},
		{"word boundary", "taco", "The Taco Stand", 0.6 * 0.4},
		{"plain substring", "aco", "Taco Stand", 0.3 * 0.4},
		{"punctuation is not a boundary", "taco", "BBQ-Taco Stand", 0.3 * 0.4},
	}
	for _, tc := range cases {
		got := MatchScore(tc.query, tc.text, 0, 0)
		if math.Abs(got-tc.want) > 1e-9 {
			t.Errorf("%s: expected %.3f, got %.3f", tc.name, tc.want, got)
		}
	}
}

func TestMatchScoreNoMatch(t *testing.T) {
	if got := MatchScore("sushi", "Taco Stand", 1, 1); got != 0 {
		t.Errorf("no match must short-circuit to 0 regardless of signals, got %.3f", got)
	}
}

func TestMatchScoreEmptyInputs(t *testing.T) {
	if got := MatchScore("", "Taco Stand", 1, 0); got != 0 {
		t.Errorf("empty query should score 0, got %.3f", got)
	}
	if got := MatchScore("taco", "", 1, 0); got != 0 {
		t.Errorf("empty text should score 0, got %.3f", got)
	}
}

func TestMatchScoreRelevanceBlend(t *testing.T) {
	low := MatchScore("taco", "Taco Stand", 0, 0)
	high := MatchScore("taco", "Taco Stand", 1, 0)
	if math.Abs((high-low)-0.2) > 1e-9 {
		t.Errorf("relevance signal carries weight 0.2: low=%.3f high=%.3f", low, high)
	}
}

func TestScorePlaceResultUsesRating(t *testing.T) {
	weak := ScorePlaceResult("ramen", "Ramen Koji", 0)
	strong := ScorePlaceResult("ramen", "Ramen Koji", 5)
	if strong <= weak {
		t.Errorf("higher rating should raise the score: %.3f vs %.3f", weak, strong)
	}
}

func TestScoreUserResultBestOfHandleAndName(t *testing.T) {
	user := domain.User{Handle: "noodle_archive", DisplayName: "Ramen Review", Followers: 2000}
	got := ScoreUserResult("ramen", user)
	want := MatchScore("ramen", "Ramen Review", 1, 0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected best-of display-name match %.3f, got %.3f", want, got)
	}
}

func TestScorePostResultBestField(t *testing.T) {
	post := domain.Post{
		Dish:       "birria tacos",
		Restaurant: "Taqueria El Norte",
		Caption:    "best birria in town",
		Likes:      50,
	}
	got := ScorePostResult("birria", post)
	want := MatchScore("birria", "birria tacos", 0.5, 0)
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("expected dish prefix match %.3f, got %.3f", want, got)
	}
}

func TestScorePostResultDeterminism(t *testing.T) {
	post := domain.Post{Dish: "ramen", Restaurant: "Ramen Koji", Likes: 10}
	first := ScorePostResult("ramen", post)
	for i := 0; i < 5; i++ {
		if got := ScorePostResult("ramen", post); got != first {
			t.Fatalf("score not deterministic: %.6f vs %.6f", got, first)
		}
	}
}
