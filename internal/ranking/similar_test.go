package ranking

import (
	"math"
	"testing"

	"github.com/bitemap/bitemap-services/api/internal/public/domain"
)

func similarTestPlace(name string) domain.Place {
	return domain.Place{
		Restaurant: name,
		City:       "Austin",
		Posts: []domain.Post{
			{AuthorID: "a1", Tags: []string{"tacos", "casual"}, Price: 12, HasPrice: true, CreatedAt: testNow},
			{AuthorID: "a2", Tags: []string{"tacos", "patio"}, Price: 14, HasPrice: true, CreatedAt: testNow},
		},
	}
}

func TestSimilarPlacesSelfScoresOne(t *testing.T) {
	target := similarTestPlace("Taqueria El Norte")
	got := SimilarPlaces(target, []domain.Place{target})
	if len(got) != 1 {
		t.Fatalf("expected 1 result, got %d", len(got))
	}
	entry := got[0]
	if entry.SharedVisitors != 1 || entry.SharedTags != 1 || entry.PriceMatch != 1 || entry.Proximity != 1 {
		t.Errorf("self comparison sub-scores should all be 1, got %+v", entry)
	}
	if math.Abs(entry.Score-1.0) > 1e-9 {
		t.Errorf("self comparison should score exactly 1.0, got %.6f", entry.Score)
	}
}

func TestSimilarPlacesSkipsEmptyCandidates(t *testing.T) {
	target := similarTestPlace("Taqueria El Norte")
	got := SimilarPlaces(target, []domain.Place{
		{Restaurant: "Ghost Kitchen", City: "Austin"},
	})
	if len(got) != 0 {
		t.Errorf("zero-post candidates must be skipped, got %d results", len(got))
	}
}

func TestSimilarPlacesNeutralPriceWithoutTargetPrices(t *testing.T) {
	target := domain.Place{
		Restaurant: "Cash Only Cart",
		City:       "Austin",
		Posts:      []domain.Post{{AuthorID: "a1", CreatedAt: testNow}},
	}
	candidate := similarTestPlace("Taqueria El Norte")
	got := SimilarPlaces(target, []domain.Place{candidate})
	if got[0].PriceMatch != 0.5 {
		t.Errorf("unknown target price tier should default to 0.5, got %.2f", got[0].PriceMatch)
	}
}

func TestSimilarPlacesPriceBand(t *testing.T) {
	target := domain.Place{
		Restaurant: "Budget Bites",
		City:       "Austin",
		Posts:      []domain.Post{{AuthorID: "a1", Price: 10, HasPrice: true, CreatedAt: testNow}},
	}
	nearby := domain.Place{
		Restaurant: "Mid Range",
		City:       "Austin",
		Posts:      []domain.Post{{AuthorID: "b1", Price: 35, HasPrice: true, CreatedAt: testNow}},
	}
	farOff := domain.Place{
		Restaurant: "Tasting Menu",
		City:       "Austin",
		Posts:      []domain.Post{{AuthorID: "c1", Price: 200, HasPrice: true, CreatedAt: testNow}},
	}
	got := SimilarPlaces(target, []domain.Place{nearby, farOff})
	if math.Abs(got[0].PriceMatch-0.5) > 1e-9 {
		t.Errorf("$25 apart should score 0.5, got %.3f", got[0].PriceMatch)
	}
	if got[1].PriceMatch != 0 {
		t.Errorf("$190 apart should floor at 0, got %.3f", got[1].PriceMatch)
	}
}

func TestSimilarPlacesProximityCaseInsensitive(t *testing.T) {
	target := similarTestPlace("Taqueria El Norte")
	candidate := similarTestPlace("The Taco Stand")
	candidate.City = "AUSTIN"
	got := SimilarPlaces(target, []domain.Place{candidate})
	if got[0].Proximity != 1 {
		t.Errorf("city match should be case-insensitive, got %.1f", got[0].Proximity)
	}
}

func TestSimilarPlacesUnknownCityNoProximity(t *testing.T) {
	target := similarTestPlace("Taqueria El Norte")
	target.City = ""
	candidate := similarTestPlace("The Taco Stand")
	got := SimilarPlaces(target, []domain.Place{candidate})
	if got[0].Proximity != 0 {
		t.Errorf("unknown city should score 0 proximity, got %.1f", got[0].Proximity)
	}
}

func TestSimilarPlacesNoIdentifiedAuthors(t *testing.T) {
	target := domain.Place{
		Restaurant: "Anon Diner",
		City:       "Austin",
		Posts:      []domain.Post{{Tags: []string{"tacos"}, CreatedAt: testNow}},
	}
	candidate := similarTestPlace("Taqueria El Norte")
	got := SimilarPlaces(target, []domain.Place{candidate})
	if got[0].SharedVisitors != 0 {
		t.Errorf("no identified target authors should score 0 shared visitors, got %.2f", got[0].SharedVisitors)
	}
}

func TestSimilarPlacesOrdering(t *testing.T) {
	target := similarTestPlace("Taqueria El Norte")
	twin := similarTestPlace("The Taco Stand")
	stranger := domain.Place{
		Restaurant: "Pike Street Oysters",
		City:       "Seattle",
		Posts:      []domain.Post{{AuthorID: "z9", Tags: []string{"seafood"}, Price: 60, HasPrice: true, CreatedAt: testNow}},
	}
	got := SimilarPlaces(target, []domain.Place{stranger, twin})
	if got[0].Place.Restaurant != "The Taco Stand" {
		t.Errorf("near-identical place should rank first, got %q", got[0].Place.Restaurant)
	}
	if got[0].Score <= got[1].Score {
		t.Errorf("ordering not descending: %.3f then %.3f", got[0].Score, got[1].Score)
	}
}
