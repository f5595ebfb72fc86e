package api

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	mcpserver "github.com/mark3labs/mcp-go/server"

	"github.com/HassanA01/AskAneeq/internal/analytics"
	"github.com/HassanA01/AskAneeq/internal/profile"
)

// AppDeps holds everything the HTTP surface needs.
type AppDeps struct {
	Store        *analytics.Store
	Profile      *profile.Record
	AdminToken   string
	BookingURL   string
	CORSOrigins  []string
	RateLimitMax int
	Version      string
	Log          *slog.Logger
}

// NewRouter composes the full HTTP handler: the root connector probe, the
// health check, the admin analytics API, and the MCP endpoint over the
// stateless streamable HTTP transport.
func NewRouter(deps AppDeps) http.Handler {
	started := time.Now()

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(RequestLogger(deps.Log))
	r.Use(CORS(deps.CORSOrigins))

	r.NotFound(func(w http.ResponseWriter, req *http.Request) {
		httpError(w, http.StatusNotFound, "not_found", "no such endpoint: %s", req.URL.Path)
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, req *http.Request) {
		httpError(w, http.StatusMethodNotAllowed, "method_not_allowed", "%s not allowed on %s", req.Method, req.URL.Path)
	})

	// ChatGPT fetches this when the connector is added.
	r.Get("/", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/plain")
		w.Write([]byte("AskAneeq MCP server"))
	})

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]any{
			"status":    "ok",
			"service":   "ask-aneeq",
			"version":   deps.Version,
			"uptime":    time.Since(started).Seconds(),
			"timestamp": time.Now().UTC().Format(time.RFC3339),
		})
	})

	r.Mount("/api/analytics", NewAdminHandler(AdminDeps{
		Store: deps.Store,
		Token: deps.AdminToken,
	}))

	mcpSrv := NewMCPServer(MCPDeps{
		Store:      deps.Store,
		Profile:    deps.Profile,
		BookingURL: deps.BookingURL,
		Log:        deps.Log,
	})
	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv, mcpserver.WithStateLess(true))
	r.With(RateLimit(deps.RateLimitMax)).Handle("/mcp", streamable)

	return r
}
