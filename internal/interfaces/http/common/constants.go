package common

const (
	// MaxSearchQueryRunes bounds the free-text search query length.
	MaxSearchQueryRunes = 120
	// MaxPlaceNameRunes bounds the restaurant-name path parameter length.
	MaxPlaceNameRunes = 200
)
