package api

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"golang.org/x/time/rate"
)

type ctxKey int

const requestIDKey ctxKey = 0

// RequestID assigns a fresh identifier to every request so log lines and
// error responses can be correlated. The identifier is echoed back in the
// X-Request-Id header.
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := uuid.New().String()
		w.Header().Set("X-Request-Id", id)
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

func requestIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// RequestLogger emits one line per completed request.
func RequestLogger(log *slog.Logger) func(http.Handler) http.Handler {
	if log == nil {
		log = slog.Default()
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
			start := time.Now()
			next.ServeHTTP(ww, r)
			log.Info("request completed",
				"requestId", requestIDFrom(r.Context()),
				"method", r.Method,
				"url", r.URL.Path,
				"statusCode", ww.Status(),
				"responseTimeMs", time.Since(start).Milliseconds(),
			)
		})
	}
}

// CORS applies the cross-origin policy the connector and dashboard clients
// need. With no configured origins any origin is allowed; otherwise only the
// allowlist. The Mcp-Session-Id header must stay exposed or browser-based
// MCP clients cannot resume sessions.
func CORS(origins []string) func(http.Handler) http.Handler {
	allowed := make(map[string]bool, len(origins))
	for _, o := range origins {
		allowed[o] = true
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			origin := r.Header.Get("Origin")
			switch {
			case len(allowed) == 0:
				w.Header().Set("Access-Control-Allow-Origin", "*")
			case allowed[origin]:
				w.Header().Set("Access-Control-Allow-Origin", origin)
				w.Header().Add("Vary", "Origin")
			}
			w.Header().Set("Access-Control-Allow-Methods", "POST, GET, DELETE, OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "content-type, mcp-session-id, authorization")
			w.Header().Set("Access-Control-Expose-Headers", "Mcp-Session-Id")

			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

const rateLimitWindow = 15 * time.Minute

// RateLimit enforces a per-client request budget over a 15 minute window,
// keyed by remote IP. A non-positive max disables limiting.
func RateLimit(max int) func(http.Handler) http.Handler {
	limiters := struct {
		sync.Mutex
		m map[string]*clientLimiter
	}{m: make(map[string]*clientLimiter)}

	limiterFor := func(ip string) *rate.Limiter {
		limiters.Lock()
		defer limiters.Unlock()

		if len(limiters.m) > 4096 {
			cutoff := time.Now().Add(-rateLimitWindow)
			for k, cl := range limiters.m {
				if cl.lastSeen.Before(cutoff) {
					delete(limiters.m, k)
				}
			}
		}

		cl, ok := limiters.m[ip]
		if !ok {
			cl = &clientLimiter{
				limiter: rate.NewLimiter(rate.Limit(float64(max)/rateLimitWindow.Seconds()), max),
			}
			limiters.m[ip] = cl
		}
		cl.lastSeen = time.Now()
		return cl.limiter
	}

	return func(next http.Handler) http.Handler {
		if max <= 0 {
			return next
		}
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiterFor(clientIP(r)).Allow() {
				httpError(w, http.StatusTooManyRequests, "rate_limit_error", "too many requests, please try again later")
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

type clientLimiter struct {
	limiter  *rate.Limiter
	lastSeen time.Time
}

func clientIP(r *http.Request) string {
	if fwd := r.Header.Get("X-Forwarded-For"); fwd != "" {
		if idx := strings.IndexByte(fwd, ','); idx >= 0 {
			fwd = fwd[:idx]
		}
		return strings.TrimSpace(fwd)
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}
