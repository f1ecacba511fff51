package server

import (
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/meltforce/nextblock/internal/generator"
)

// Server holds dependencies for HTTP handlers.
type Server struct {
	gen     *generator.Generator
	results *lru.Cache[uuid.UUID, *generator.Result]
	log     *slog.Logger
	apiKey  string
	router  chi.Router
}

// New creates a new Server with all routes configured. cacheSize bounds how
// many generated blocks stay available for download.
func New(gen *generator.Generator, cacheSize int, apiKey string, log *slog.Logger) (*Server, error) {
	results, err := lru.New[uuid.UUID, *generator.Result](cacheSize)
	if err != nil {
		return nil, fmt.Errorf("creating result cache: %w", err)
	}
	s := &Server{
		gen:     gen,
		results: results,
		log:     log,
		apiKey:  apiKey,
		router:  chi.NewRouter(),
	}
	s.routes()
	return s, nil
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(middleware.RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Get("/healthz", s.handleHealth)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.With(APIKeyAuth(s.apiKey)).Post("/generate", s.handleGenerate)

		r.Get("/blocks/{id}", s.handleGetBlock)
		r.Get("/blocks/{id}/download", s.handleDownloadBlock)

		r.Get("/templates", s.handleListTemplates)
		r.Get("/templates/{style}", s.handleGetTemplate)
	})
}
