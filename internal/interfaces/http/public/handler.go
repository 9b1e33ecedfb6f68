package public

import (
	"log"
	"net/http"

	publicapp "github.com/bitemap/bitemap-services/api/internal/public/application"
	"github.com/go-chi/chi/v5"
)

// Handler wires public HTTP endpoints to application services.
type Handler struct {
	logger       *log.Logger
	exploreQuery publicapp.ExploreQueryService
	searchQuery  publicapp.SearchQueryService
	placeQuery   publicapp.PlaceQueryService
}

// Config defines dependencies required by Handler.
type Config struct {
	Logger       *log.Logger
	ExploreQuery publicapp.ExploreQueryService
	SearchQuery  publicapp.SearchQueryService
	PlaceQuery   publicapp.PlaceQueryService
}

// NewHandler constructs a public HTTP handler set.
func NewHandler(cfg Config) *Handler {
	return &Handler{
		logger:       cfg.Logger,
		exploreQuery: cfg.ExploreQuery,
		searchQuery:  cfg.SearchQuery,
		placeQuery:   cfg.PlaceQuery,
	}
}

// Register mounts all public routes onto the router. optionalAuth decodes a
// bearer token when one is present without rejecting anonymous requests; only
// the category feed is viewer-aware.
func (h *Handler) Register(r chi.Router, optionalAuth func(http.Handler) http.Handler) {
	r.Get("/explore/trending", h.trendingHandler())
	r.Get("/explore/top-spots", h.topSpotsHandler())
	r.Get("/explore/new-this-week", h.newThisWeekHandler())
	r.With(optionalAuth).Get("/explore/categories", h.categoriesHandler())
	r.Get("/places/{name}/insights", h.placeInsightsHandler())
	r.Get("/places/{name}/similar", h.placeSimilarHandler())
	r.Get("/search", h.searchHandler())
}
