package server

import (
	"encoding/json"
	"net/http"
	"strings"

	"github.com/jonathan/careercraft/internal/consult"
	"github.com/jonathan/careercraft/internal/recommend"
)

// handleConsult answers a consultation message from the rule table and
// records both turns in the session's chat history.
func (s *Server) handleConsult(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	var req struct {
		Message string `json:"message"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "invalid JSON body")
		return
	}
	if strings.TrimSpace(req.Message) == "" {
		s.errorResponse(w, http.StatusBadRequest, "message must not be empty")
		return
	}

	response := consult.Respond(req.Message, consult.Context{
		Catalog:       s.catalog,
		CurrentRole:   sess.CurrentRole,
		TargetCareers: sess.TargetCareers,
		Gaps:          recommend.MergeGaps(s.catalog, sess.Skills, sess.TargetCareers),
	})

	sess.AppendChat("user", req.Message)
	sess.AppendChat("assistant", response)

	s.jsonResponse(w, http.StatusOK, map[string]string{"response": response})
}

func (s *Server) handleGetChat(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	s.jsonResponse(w, http.StatusOK, map[string]any{"chat_history": sess.ChatHistory})
}

func (s *Server) handleClearChat(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}
	sess.ClearChat()
	w.WriteHeader(http.StatusNoContent)
}
