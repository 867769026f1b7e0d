package mockserver

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/orgball2608/story-fixtures/pkg/errors"
	"github.com/orgball2608/story-fixtures/pkg/logger"
)

func NewRouter(store *Store, log logger.Logger) http.Handler {
	h := &handler{store: store, logger: log}
	m := newMetrics()

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)
	r.Use(h.logRequests)
	r.Use(m.instrument)
	r.Use(allowAnyOrigin)

	r.Get("/healthz", h.healthz)
	r.Method(http.MethodGet, "/metrics", m.handler())
	r.Get("/{collection}", h.list)
	r.Get("/{collection}/{id}", h.get)
	r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "route not found")
	})
	r.MethodNotAllowed(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusMethodNotAllowed, "the mock API is read-only")
	})
	return r
}

type handler struct {
	store  *Store
	logger logger.Logger
}

func (h *handler) healthz(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain")
	if _, err := w.Write([]byte("ok")); err != nil {
		h.logger.Error("Failed to write response", "error", err)
	}
}

func (h *handler) list(w http.ResponseWriter, r *http.Request) {
	records, err := h.store.List(chi.URLParam(r, "collection"), r.URL.Query())
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, records)
}

func (h *handler) get(w http.ResponseWriter, r *http.Request) {
	record, err := h.store.Get(chi.URLParam(r, "collection"), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, err)
		return
	}
	writeJSON(w, http.StatusOK, record)
}

func (h *handler) fail(w http.ResponseWriter, err error) {
	if errors.IsNotFound(err) {
		writeError(w, http.StatusNotFound, errors.GetMessage(err)+" not found")
		return
	}
	h.logger.Error("Request failed", "error", err)
	writeError(w, http.StatusInternalServerError, "internal error")
}

func (h *handler) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		next.ServeHTTP(ww, r)
		h.logger.Debug("Request served",
			"method", r.Method,
			"url", r.URL.String(),
			"status", ww.Status(),
			"request_id", middleware.GetReqID(r.Context()),
		)
	})
}

func allowAnyOrigin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		next.ServeHTTP(w, r)
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": strings.TrimSpace(msg)})
}
