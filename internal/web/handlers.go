package web

import (
	"net/http"

	"github.com/go-chi/chi/v5"
)

// handleHealthz reports liveness plus the size of the current snapshot.
// A running service with empty collections is still healthy: that is the
// defined degrade-gracefully state when the upstream API is down.
func (s *Server) handleHealthz(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, map[string]any{
		"status":   "ok",
		"products": len(s.store.Products()),
		"regions":  len(s.store.Regions()),
		"comunas":  len(s.store.Comunas()),
	})
}

// handleProducts returns the normalized product list.
func (s *Server) handleProducts(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.store.Products())
}

// handleCatalog returns the category view of the product list.
func (s *Server) handleCatalog(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.store.Catalog())
}

// handleRegions returns all regions with their nested comunas.
func (s *Server) handleRegions(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.store.Regions())
}

// handleRegion returns a single region looked up by slug.
func (s *Server) handleRegion(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")

	region, found := s.store.FindRegionBySlug(slug)
	if !found {
		s.respondError(w, r, http.StatusNotFound, "region not found")
		return
	}
	respondJSON(w, r, http.StatusOK, region)
}

// handleRegionComunas returns the comunas of a region. An unknown slug
// yields an empty list, not an error.
func (s *Server) handleRegionComunas(w http.ResponseWriter, r *http.Request) {
	slug := chi.URLParam(r, "slug")
	respondJSON(w, r, http.StatusOK, s.store.ComunasForRegionSlug(slug))
}

// handleComunas returns all comunas flattened across regions.
func (s *Server) handleComunas(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, r, http.StatusOK, s.store.Comunas())
}
