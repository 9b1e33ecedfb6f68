package public

import (
	publicdomain "github.com/bitemap/bitemap-services/api/internal/public/domain"
)

type trendingListResponse struct {
	Items []publicdomain.TrendingPostView `json:"items"`
	Total int                             `json:"total"`
}

type topSpotListResponse struct {
	Items []publicdomain.TopSpotView `json:"items"`
	Total int                        `json:"total"`
}

type newPlaceListResponse struct {
	Items []publicdomain.NewPlaceView `json:"items"`
	Total int                         `json:"total"`
}

type categoryListResponse struct {
	Items []publicdomain.CategoryView `json:"items"`
	Total int                         `json:"total"`
}

type similarListResponse struct {
	Items []publicdomain.SimilarPlaceView `json:"items"`
	Total int                             `json:"total"`
}

type searchResponse struct {
	Query   string                         `json:"query"`
	Results publicdomain.SearchResultsView `json:"results"`
}
