package server

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/jonathan/careercraft/internal/server/middleware"
	"github.com/jonathan/careercraft/internal/session"
	"github.com/jonathan/careercraft/internal/types"
)

// createSessionResponse is returned when a session is created. The token
// authorizes every subsequent request against this session.
type createSessionResponse struct {
	Session *session.Session `json:"session"`
	Token   string           `json:"token"`
}

// handleCreateSession starts a new assessment session and issues its token.
func (s *Server) handleCreateSession(w http.ResponseWriter, _ *http.Request) {
	sess := s.store.Create()

	token, err := s.jwtService.GenerateToken(sess.ID)
	if err != nil {
		s.store.Delete(sess.ID)
		s.errorResponse(w, http.StatusInternalServerError, "failed to issue session token")
		return
	}

	s.jsonResponse(w, http.StatusCreated, createSessionResponse{Session: sess, Token: token})
}

// sessionFromRequest resolves the {id} path parameter into a live session,
// enforcing that the bearer token was issued for that same session.
func (s *Server) sessionFromRequest(r *http.Request) (*session.Session, error) {
	id, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		return nil, &ErrValidation{Field: "id", Message: "must be a valid UUID"}
	}

	tokenID, err := middleware.GetSessionID(r)
	if err != nil || tokenID != id {
		return nil, &ErrSessionMismatch{}
	}

	sess, ok := s.store.Get(id)
	if !ok {
		return nil, &ErrSessionNotFound{SessionID: id}
	}
	return sess, nil
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, sess)
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.store.Delete(sess.ID)
	w.WriteHeader(http.StatusNoContent)
}

// handleSetSkills records self-ratings. Skill names not present in the
// catalog are ignored rather than rejected; levels are clamped into [0, 100].
func (s *Server) handleSetSkills(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req struct {
		Skills map[string]int `json:"skills"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	for name, level := range req.Skills {
		if _, ok := s.catalog.Skill(name); !ok {
			continue
		}
		sess.SetSkill(name, level)
	}

	s.jsonResponse(w, http.StatusOK, sess)
}

// handleSetPractice records practice-frequency labels. Labels are stored as
// given; the scoring layer normalizes unknown ones to the neutral weight.
func (s *Server) handleSetPractice(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req struct {
		Practice map[string]string `json:"practice"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	for name, freq := range req.Practice {
		if _, ok := s.catalog.Skill(name); !ok {
			continue
		}
		sess.SetPracticeFrequency(name, freq)
	}

	s.jsonResponse(w, http.StatusOK, sess)
}

// handleSetTargets sets the user's current role, target careers, and target
// categories. Unknown career or category names are kept in the session as
// given; the engine treats them as contributing nothing.
func (s *Server) handleSetTargets(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req struct {
		CurrentRole      *string          `json:"current_role"`
		TargetCareers    []string         `json:"target_careers"`
		TargetCategories []types.Category `json:"target_categories"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}

	if req.CurrentRole != nil {
		sess.CurrentRole = *req.CurrentRole
	}
	if req.TargetCareers != nil {
		sess.TargetCareers = req.TargetCareers
	}
	if req.TargetCategories != nil {
		sess.TargetCategories = req.TargetCategories
	}

	s.jsonResponse(w, http.StatusOK, sess)
}
