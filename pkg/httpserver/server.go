// Package httpserver wires the bang resolver, suggest service, and
// OpenSearch descriptor into an HTTP router, replacing the stdin/stdout IPC
// transport with chi-routed endpoints.
package httpserver

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/lmarchetti/bangserve/pkg/bangs"
	"github.com/lmarchetti/bangserve/pkg/config"
	"github.com/lmarchetti/bangserve/pkg/opensearch"
	"github.com/lmarchetti/bangserve/pkg/suggest"
)

// Server handles the bang redirect, suggestions, and OpenSearch descriptor
// endpoints.
type Server struct {
	resolver *bangs.Resolver
	suggest  *suggest.Service
	cfg      *config.Config
	router   chi.Router
}

// NewServer constructs a Server wiring its routes; call Router() to obtain
// the http.Handler or ListenAndServe() to run it directly.
func NewServer(resolver *bangs.Resolver, suggestSvc *suggest.Service, cfg *config.Config) *Server {
	s := &Server{resolver: resolver, suggest: suggestSvc, cfg: cfg}

	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(middleware.RealIP)
	r.Get("/search", s.handleSearch)
	r.Get("/api/suggest", s.handleSuggest)
	r.Get("/opensearch.xml", s.handleOpenSearch)
	s.router = r

	return s
}

// Router returns the underlying http.Handler.
func (s *Server) Router() http.Handler {
	return s.router
}

// ListenAndServe starts the HTTP server on the configured listen address.
func (s *Server) ListenAndServe() error {
	srv := &http.Server{
		Addr:         s.cfg.Server.ListenAddr,
		Handler:      s.router,
		ReadTimeout:  time.Duration(s.cfg.Server.ReadTimeoutMS) * time.Millisecond,
		WriteTimeout: time.Duration(s.cfg.Server.WriteTimeoutMS) * time.Millisecond,
	}
	log.Infof("listening on %s", s.cfg.Server.ListenAddr)
	return srv.ListenAndServe()
}

// handleSearch resolves q to a target URL and issues a redirect.
func (s *Server) handleSearch(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	target := s.resolver.Resolve(q)
	http.Redirect(w, r, target, http.StatusFound)
}

// handleSuggest implements the OpenSearch suggestions wire format:
// a two-element JSON array of [echoedQuery, suggestions].
func (s *Server) handleSuggest(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query().Get("q")
	lang := r.Header.Get("Accept-Language")

	echoed, suggestions := s.suggest.HandleSuggest(r.Context(), q, lang)

	w.Header().Set("Content-Type", "application/x-suggestions+json")
	w.Header().Set("Access-Control-Allow-Origin", "*")
	if strings.TrimSpace(q) == "" {
		w.Header().Set("Cache-Control", "no-store")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=60, stale-while-revalidate=30")
	}

	body, err := json.Marshal([2]interface{}{echoed, suggestions})
	if err != nil {
		log.Errorf("marshal suggest response: %v", err)
		sendError(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// handleOpenSearch serves the OpenSearch description document.
func (s *Server) handleOpenSearch(w http.ResponseWriter, r *http.Request) {
	origin := requestOrigin(r)
	body, err := opensearch.Describe(origin, s.cfg.OpenSearch.ShortName, s.cfg.OpenSearch.Description)
	if err != nil {
		log.Errorf("render opensearch descriptor: %v", err)
		sendError(w, "internal error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/opensearchdescription+xml")
	w.Header().Set("Cache-Control", "public, max-age=86400")
	w.WriteHeader(http.StatusOK)
	w.Write(body)
}

// requestOrigin derives scheme://host from the inbound request, honoring a
// reverse proxy's X-Forwarded-Proto header.
func requestOrigin(r *http.Request) string {
	scheme := "http"
	if r.TLS != nil {
		scheme = "https"
	}
	if fwd := r.Header.Get("X-Forwarded-Proto"); fwd != "" {
		scheme = fwd
	}
	return fmt.Sprintf("%s://%s", scheme, r.Host)
}

// errorResponse mirrors the legacy IPC error envelope for the few error
// paths that reach the HTTP boundary directly.
type errorResponse struct {
	Error  string `json:"error"`
	Status int    `json:"status"`
}

func sendError(w http.ResponseWriter, message string, status int) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message, Status: status})
}
