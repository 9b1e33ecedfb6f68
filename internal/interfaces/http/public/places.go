package public

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/go-chi/chi/v5"

	"github.com/bitemap/bitemap-services/api/internal/interfaces/http/common"
)

func (h *Handler) placeInsightsHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		name, ok := placeNameParam(r)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid place name"})
			return
		}

		insights, err := h.placeQuery.Insights(ctx, name)
		if err != nil {
			h.logger.Printf("place insights fetch failed name=%q err=%v", name, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load place insights"})
			return
		}
		if insights == nil {
			common.WriteJSON(h.logger, w, http.StatusNotFound, map[string]string{"error": "place not found"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, insights)
	}
}

func (h *Handler) placeSimilarHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		name, ok := placeNameParam(r)
		if !ok {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "invalid place name"})
			return
		}

		items, err := h.placeQuery.Similar(ctx, name)
		if err != nil {
			h.logger.Printf("similar places fetch failed name=%q err=%v", name, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "failed to load similar places"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, similarListResponse{Items: items, Total: len(items)})
	}
}

func placeNameParam(r *http.Request) (string, bool) {
	name := strings.TrimSpace(chi.URLParam(r, "name"))
	if name == "" || utf8.RuneCountInString(name) > common.MaxPlaceNameRunes {
		return "", false
	}
	return name, true
}
