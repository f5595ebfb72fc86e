package api

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/HassanA01/AskAneeq/internal/analytics"
)

// AdminDeps holds dependencies for the analytics admin API.
type AdminDeps struct {
	Store *analytics.Store
	Token string
}

// NewAdminHandler builds the authenticated read-only surface over the
// analytics event store, consumed by the dashboard.
func NewAdminHandler(deps AdminDeps) http.Handler {
	r := chi.NewRouter()
	r.Use(AdminAuth(deps.Token))

	r.Get("/summary", handleSummary(deps))
	r.Get("/events", handleEvents(deps))

	return r
}

func handleSummary(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		toolCounts, err := deps.Store.ToolCounts()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "querying tool counts: %v", err)
			return
		}
		categoryCounts, err := deps.Store.CategoryCounts()
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "querying category counts: %v", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{
			"toolCounts":     toolCounts,
			"categoryCounts": categoryCounts,
		})
	}
}

func handleEvents(deps AdminDeps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		// Missing, non-numeric, or non-positive limits all fall back to the
		// store default rather than erroring.
		limit := 0
		if v := r.URL.Query().Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n > 0 {
				limit = n
			}
		}

		events, err := deps.Store.RecentEvents(limit)
		if err != nil {
			httpError(w, http.StatusInternalServerError, "api_error", "querying events: %v", err)
			return
		}

		writeJSON(w, http.StatusOK, map[string]any{"events": events})
	}
}
