package server

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/url"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/meltforce/nextblock/internal/catalog"
	"github.com/meltforce/nextblock/internal/generator"
)

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleGenerate(w http.ResponseWriter, r *http.Request) {
	var req generator.Request
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid JSON: " + err.Error()})
		return
	}

	result, err := s.gen.Generate(r.Context(), req)
	if errors.Is(err, catalog.ErrUnknownStyle) {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": err.Error()})
		return
	}
	if err != nil {
		s.log.Error("generate error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	s.results.Add(result.ID, result)

	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleGetBlock(w http.ResponseWriter, r *http.Request) {
	result, ok := s.lookupBlock(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, result)
}

func (s *Server) handleDownloadBlock(w http.ResponseWriter, r *http.Request) {
	result, ok := s.lookupBlock(w, r)
	if !ok {
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", "attachment; filename="+strconv.Quote(result.Filename))
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(result.Text))
}

// lookupBlock resolves the {id} URL param against the result cache, writing
// the error response itself when it fails.
func (s *Server) lookupBlock(w http.ResponseWriter, r *http.Request) (*generator.Result, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		writeJSON(w, http.StatusBadRequest, map[string]string{"error": "invalid block ID"})
		return nil, false
	}
	result, ok := s.results.Get(id)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "block not found"})
		return nil, false
	}
	return result, true
}

func (s *Server) handleListTemplates(w http.ResponseWriter, r *http.Request) {
	c, err := s.gen.Catalog(r.Context())
	if err != nil {
		s.log.Error("catalog error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	writeJSON(w, http.StatusOK, c.Styles())
}

func (s *Server) handleGetTemplate(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "style")
	if unescaped, err := url.PathUnescape(name); err == nil {
		name = unescaped
	}

	c, err := s.gen.Catalog(r.Context())
	if err != nil {
		s.log.Error("catalog error", "error", err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": err.Error()})
		return
	}
	tpl, ok := c.Template(name)
	if !ok {
		writeJSON(w, http.StatusNotFound, map[string]string{"error": "unknown style: " + name})
		return
	}
	writeJSON(w, http.StatusOK, tpl)
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}
