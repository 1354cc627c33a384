// Package api provides the admin HTTP API for Herald webhook management.
//
// Mount the handler under a prefix of your choice (e.g. /webhooks).
package api

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/herald-dev/herald"
)

// Handler is the root HTTP handler for the Herald admin API.
type Handler struct {
	herald *herald.Herald
	logger *slog.Logger
	mux    *http.ServeMux
}

// NewHandler creates a new admin API handler.
func NewHandler(h *herald.Herald, logger *slog.Logger) *Handler {
	if logger == nil {
		logger = slog.Default()
	}

	handler := &Handler{
		herald: h,
		logger: logger,
		mux:    http.NewServeMux(),
	}

	handler.registerRoutes()
	return handler
}

func (h *Handler) registerRoutes() {
	// Subscriptions
	h.mux.HandleFunc("POST /subscriptions", h.createSubscription)
	h.mux.HandleFunc("GET /subscriptions", h.listSubscriptions)
	h.mux.HandleFunc("GET /subscriptions/{id}", h.getSubscription)
	h.mux.HandleFunc("PUT /subscriptions/{id}", h.updateSubscription)
	h.mux.HandleFunc("DELETE /subscriptions/{id}", h.deleteSubscription)
	h.mux.HandleFunc("PATCH /subscriptions/{id}/enable", h.enableSubscription)
	h.mux.HandleFunc("PATCH /subscriptions/{id}/disable", h.disableSubscription)
	h.mux.HandleFunc("POST /subscriptions/{id}/rotate-secret", h.rotateSecret)
	h.mux.HandleFunc("POST /subscriptions/{id}/test", h.sendTestMessage)

	// Catalog
	h.mux.HandleFunc("GET /events", h.listCatalog)
	h.mux.HandleFunc("GET /events/{name}", h.getCatalogEntry)
}

// ServeHTTP implements http.Handler.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.withMiddleware(h.mux).ServeHTTP(w, r)
}

func (h *Handler) withMiddleware(next http.Handler) http.Handler {
	return h.panicRecovery(h.logging(next))
}

func (h *Handler) logging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rw := &responseWriter{ResponseWriter: w, status: http.StatusOK}
		next.ServeHTTP(rw, r)
		h.logger.Info("api request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", rw.status,
			"duration_ms", time.Since(start).Milliseconds(),
		)
	})
}

func (h *Handler) panicRecovery(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				h.logger.Error("panic recovered",
					"error", rec,
					"stack", string(debug.Stack()),
				)
				writeError(w, http.StatusInternalServerError, "internal server error")
			}
		}()
		next.ServeHTTP(w, r)
	})
}

// responseWriter wraps http.ResponseWriter to capture the status code.
type responseWriter struct {
	http.ResponseWriter
	status int
}

func (rw *responseWriter) WriteHeader(code int) {
	rw.status = code
	rw.ResponseWriter.WriteHeader(code)
}

// JSON helpers.

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v) //nolint:errcheck // best effort
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(r *http.Request, v any) error {
	defer r.Body.Close()
	return json.NewDecoder(r.Body).Decode(v)
}

// queryInt returns a query parameter as int or a default value.
func queryInt(r *http.Request, key string, defaultVal int) int {
	v := r.URL.Query().Get(key)
	if v == "" {
		return defaultVal
	}
	n, err := strconv.Atoi(v)
	if err != nil || n < 0 {
		return defaultVal
	}
	return n
}
