package server

import (
	"net/http"

	"github.com/jonathan/careercraft/internal/types"
)

// handleGetCatalog returns the full catalog: version, skills, and careers.
func (s *Server) handleGetCatalog(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog)
}

// handleGetVersions returns the model version tags so clients can detect
// when scores are no longer comparable with previously stored results.
func (s *Server) handleGetVersions(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Versions())
}

func (s *Server) handleListSkills(w http.ResponseWriter, _ *http.Request) {
	s.jsonResponse(w, http.StatusOK, s.catalog.Skills)
}

func (s *Server) handleListCareers(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	if category == "" {
		s.jsonResponse(w, http.StatusOK, s.catalog.Careers)
		return
	}

	careers := make([]types.CareerDefinition, 0)
	for _, career := range s.catalog.Careers {
		if string(career.Category) == category {
			careers = append(careers, career)
		}
	}
	s.jsonResponse(w, http.StatusOK, careers)
}

func (s *Server) handleGetCareer(w http.ResponseWriter, r *http.Request) {
	name := r.PathValue("name")
	career, ok := s.catalog.Career(name)
	if !ok {
		s.errorResponse(w, http.StatusNotFound, "career not found: "+name)
		return
	}
	s.jsonResponse(w, http.StatusOK, career)
}
