package public

import (
	"context"
	"net/http"
	"time"

	"github.com/bitemap/bitemap-services/api/internal/interfaces/http/common"
)

func (h *Handler) trendingHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := h.exploreQuery.Trending(ctx)
		if err != nil {
			h.logger.Printf("trending fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load trending feed"})
			return
		}

		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(items) {
			items = items[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, trendingListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) topSpotsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := h.exploreQuery.TopSpots(ctx)
		if err != nil {
			h.logger.Printf("top spots fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load top spots"})
			return
		}

		if limit, ok := common.ParsePositiveInt(r.URL.Query().Get("limit"), 0); ok && limit < len(items) {
			items = items[:limit]
		}

		common.WriteJSON(h.logger, w, http.StatusOK, topSpotListResponse{Items: items, Total: len(items)})
	}
}

func (h *Handler) newThisWeekHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		items, err := h.exploreQuery.NewThisWeek(ctx)
		if err != nil {
			h.logger.Printf("new this week fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load new places"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, newPlaceListResponse{Items: items, Total: len(items)})
	}
}

// categoriesHandler ranks the fixed category list for the current viewer.
// Anonymous requests are served too; they just get no taste boost.
func (h *Handler) categoriesHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		// Tastes outside the category vocabulary cannot boost anything, so
		// they are dropped before they fragment the cache key space.
		var tastes []string
		if user, ok := common.UserFromContext(r.Context()); ok {
			for _, taste := range user.Tastes {
				token := common.CanonicalCategoryToken(taste)
				if common.IsAllowedCategoryToken(token) {
					tastes = append(tastes, token)
				}
			}
		}

		items, err := h.exploreQuery.Categories(ctx, tastes)
		if err != nil {
			h.logger.Printf("categories fetch failed: %v", err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load categories"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, categoryListResponse{Items: items, Total: len(items)})
	}
}
