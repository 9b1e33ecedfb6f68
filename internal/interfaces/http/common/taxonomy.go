package common

import (
	"strings"

	"github.com/bitemap/bitemap-services/api/internal/public/application"
)

// The fixed explore category vocabulary lives with the explore service; this
// package only canonicalizes client input against it.
var allowedCategoryTokenSet = makeStringSet(application.ExploreCategories)

func makeStringSet(items []string) map[string]struct{} {
	set := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.TrimSpace(item)
		if item == "" {
			continue
		}
		set[item] = struct{}{}
	}
	return set
}

// CanonicalCategoryToken normalizes common aliases and singular forms into
// canonical category tokens. Unknown input is returned lowercased and
// trimmed so callers can still match it against free-form tags.
func CanonicalCategoryToken(input string) string {
	token := strings.ToLower(strings.TrimSpace(input))
	if token == "" {
		return ""
	}

	switch token {
	case "taco":
		return "tacos"
	case "burger", "hamburger", "hamburgers":
		return "burgers"
	case "barbecue", "bar-b-q", "barbeque":
		return "bbq"
	case "pizzas":
		return "pizza"
	case "desserts", "sweets":
		return "dessert"
	case "noodle":
		return "noodles"
	case "cafe", "espresso":
		return "coffee"
	case "plant-based", "vegetarian":
		return "vegan"
	case "fish":
		return "seafood"
	}

	return token
}

// IsAllowedCategoryToken reports whether token is part of the fixed explore
// vocabulary after canonicalization.
func IsAllowedCategoryToken(token string) bool {
	_, ok := allowedCategoryTokenSet[CanonicalCategoryToken(token)]
	return ok
}
