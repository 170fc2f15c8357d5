package server

import (
	"net/http"
	"sort"

	"github.com/jonathan/careercraft/internal/matching"
	"github.com/jonathan/careercraft/internal/recommend"
	"github.com/jonathan/careercraft/internal/scoring"
	"github.com/jonathan/careercraft/internal/types"
)

// handleMatches ranks careers in the session's target categories by weighted
// match percentage. An optional ?sort= query parameter reorders the list by
// salary, growth, or time_to_entry.
func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	categories := sess.TargetCategories
	if len(categories) == 0 {
		// No explicit selection means match against the whole catalog.
		categories = s.catalog.Categories()
	}

	matches := matching.Rank(s.catalog, sess.Skills, sess.PracticeFreq, categories)
	if key := r.URL.Query().Get("sort"); key != "" {
		matching.Resort(matches, matching.SortKey(key))
	}

	s.jsonResponse(w, http.StatusOK, map[string]any{"matches": matches})
}

// handleGaps returns the merged skill gaps across the session's target
// careers, largest gap first.
func (s *Server) handleGaps(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	merged := recommend.MergeGaps(s.catalog, sess.Skills, sess.TargetCareers)
	gaps := make([]types.GapRecord, 0, len(merged))
	for _, gap := range merged {
		gaps = append(gaps, gap)
	}
	sort.Slice(gaps, func(i, j int) bool {
		if gaps[i].Gap != gaps[j].Gap {
			return gaps[i].Gap > gaps[j].Gap
		}
		return gaps[i].Skill < gaps[j].Skill
	})

	s.jsonResponse(w, http.StatusOK, map[string]any{"gaps": gaps})
}

// handleRecommendations returns prioritized course recommendations with ROI
// estimates for the session's target careers.
func (s *Server) handleRecommendations(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	recs := recommend.Recommend(s.catalog, sess.Skills, sess.TargetCareers)
	s.jsonResponse(w, http.StatusOK, map[string]any{"recommendations": recs})
}

// readinessResponse pairs the overall report with the per-career breakdown.
type readinessResponse struct {
	types.ReadinessReport
	PerCareer map[string]float64 `json:"per_career"`
}

// handleReadiness returns the overall readiness score, its band, and the
// unweighted readiness per target career.
func (s *Server) handleReadiness(w http.ResponseWriter, r *http.Request) {
	sess, err := s.sessionFromRequest(r)
	if err != nil {
		s.errorResponse(w, HTTPStatus(err), err.Error())
		return
	}

	perCareer := make(map[string]float64)
	for _, name := range sess.TargetCareers {
		if _, ok := s.catalog.Career(name); !ok {
			continue
		}
		perCareer[name] = scoring.Readiness(s.catalog, sess.Skills, sess.PracticeFreq, name)
	}

	s.jsonResponse(w, http.StatusOK, readinessResponse{
		ReadinessReport: scoring.ReadinessReport(s.catalog, sess.Skills, sess.PracticeFreq, sess.TargetCareers),
		PerCareer:       perCareer,
	})
}
