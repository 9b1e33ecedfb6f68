package public

import (
	"context"
	"net/http"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/bitemap/bitemap-services/api/internal/interfaces/http/common"
)

func (h *Handler) searchHandler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 5*time.Second)
		defer cancel()

		query := strings.TrimSpace(r.URL.Query().Get("q"))
		if query == "" {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query parameter q is required"})
			return
		}
		if utf8.RuneCountInString(query) > common.MaxSearchQueryRunes {
			common.WriteJSON(h.logger, w, http.StatusBadRequest, map[string]string{"error": "query is too long"})
			return
		}

		results, err := h.searchQuery.Search(ctx, query)
		if err != nil {
			h.logger.Printf("search failed q=%q err=%v", query, err)
			common.WriteJSON(h.logger, w, http.StatusInternalServerError, map[string]string{"error": "search failed"})
			return
		}

		common.WriteJSON(h.logger, w, http.StatusOK, searchResponse{
			Query:   strings.ToLower(query),
			Results: results,
		})
	}
}
