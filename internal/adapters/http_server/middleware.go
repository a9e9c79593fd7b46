package httpserver

import (
	"context"
	"net"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
	"golang.org/x/time/rate"

	"rentwatch/internal/adapters/observability"
	"rentwatch/internal/adapters/session"
)

func Timeout(d time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler { return http.TimeoutHandler(next, d, "timeout") }
}

// ---- status-recording ResponseWriter ----

type srw struct {
	http.ResponseWriter
	status int
	wrote  bool
}

func (w *srw) WriteHeader(code int) {
	if !w.wrote {
		w.status = code
		w.wrote = true
	}
	w.ResponseWriter.WriteHeader(code)
}

func (w *srw) Write(b []byte) (int, error) {
	if !w.wrote {
		w.WriteHeader(http.StatusOK)
	}
	return w.ResponseWriter.Write(b)
}

func (w *srw) Status() int {
	if w.status == 0 {
		return http.StatusOK
	}
	return w.status
}

// ---- Metrics middleware ----

func Metrics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		sw := &srw{ResponseWriter: w}
		next.ServeHTTP(sw, r)
		route := chi.RouteContext(r.Context()).RoutePattern()
		if route == "" {
			route = r.URL.Path
		}
		observability.ObserveHTTP(route, r.Method, sw.Status(), time.Since(start))
	})
}

// ---- Structured logging middleware ----

func Logger(l zerolog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			sw := &srw{ResponseWriter: w}
			next.ServeHTTP(sw, r)
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			l.Info().
				Str("route", route).
				Str("method", r.Method).
				Int("status", sw.Status()).
				Dur("duration", time.Since(start)).
				Str("remote", remoteIP(r)).
				Str("ua", r.UserAgent()).
				Msg("http_request")
		})
	}
}

// Picks first X-Forwarded-For IP, else X-Real-IP, else RemoteAddr host.
func remoteIP(r *http.Request) string {
	if xff := r.Header.Get("X-Forwarded-For"); xff != "" {
		parts := strings.Split(xff, ",")
		return strings.TrimSpace(parts[0])
	}
	if xrip := r.Header.Get("X-Real-IP"); xrip != "" {
		return xrip
	}
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err == nil && host != "" {
		return host
	}
	return r.RemoteAddr
}

// ---- Session middleware ----

type ctxKey int

const userKey ctxKey = 0

// RequireSession rejects requests without a live session token. The token
// travels in X-Session-Token; on success the session user lands in the
// request context.
func RequireSession(st *session.Store) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			u, ok, err := st.Lookup(r.Context(), r.Header.Get("X-Session-Token"))
			if err != nil {
				writeProblem(w, http.StatusInternalServerError, "Session Lookup Failed", "")
				return
			}
			if !ok {
				writeProblem(w, http.StatusUnauthorized, "Unauthorized", "missing or expired session token")
				return
			}
			next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), userKey, u)))
		})
	}
}

func sessionUser(r *http.Request) (session.User, bool) {
	u, ok := r.Context().Value(userKey).(session.User)
	return u, ok
}

// ---- Per-IP write rate limiting ----

// WriteLimiter hands out one token bucket per remote IP. Buckets are never
// evicted; the IP population of a single deployment is small enough that the
// map stays bounded in practice.
type WriteLimiter struct {
	mu    sync.Mutex
	perIP map[string]*rate.Limiter
	rps   rate.Limit
	burst int
}

func NewWriteLimiter(rps float64, burst int) *WriteLimiter {
	return &WriteLimiter{perIP: make(map[string]*rate.Limiter), rps: rate.Limit(rps), burst: burst}
}

func (wl *WriteLimiter) limiter(ip string) *rate.Limiter {
	wl.mu.Lock()
	defer wl.mu.Unlock()
	l, ok := wl.perIP[ip]
	if !ok {
		l = rate.NewLimiter(wl.rps, wl.burst)
		wl.perIP[ip] = l
	}
	return l
}

func (wl *WriteLimiter) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if !wl.limiter(remoteIP(r)).Allow() {
			route := chi.RouteContext(r.Context()).RoutePattern()
			if route == "" {
				route = r.URL.Path
			}
			observability.ObserveRateLimited(route)
			writeProblem(w, http.StatusTooManyRequests, "Too Many Requests", "write rate limit exceeded")
			return
		}
		next.ServeHTTP(w, r)
	})
}
