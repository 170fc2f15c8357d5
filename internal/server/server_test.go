package server

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/session"
	"github.com/jonathan/careercraft/internal/types"
)

func newTestServer(t *testing.T) *Server {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	t.Setenv("RATE_LIMIT_ENABLED", "false")

	s, err := New(Config{
		Port:    0,
		Catalog: catalog.Default(),
		Logger:  zap.NewNop(),
	})
	require.NoError(t, err)
	return s
}

func (s *Server) do(t *testing.T, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)
	return w
}

// createSession creates a session through the API and returns it with its token.
func createSession(t *testing.T, s *Server) (*session.Session, string) {
	t.Helper()

	w := s.do(t, http.MethodPost, "/sessions", "", nil)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp createSessionResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Session, resp.Token
}

func TestHealth(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/health", "", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"status":"ok"`)
}

func TestGetCatalog(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/catalog", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var cat catalog.Catalog
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &cat))
	assert.Equal(t, catalog.DefaultVersion, cat.Version)
	assert.Len(t, cat.Skills, 8)
	assert.Len(t, cat.Careers, 28)
}

func TestGetVersions(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/catalog/versions", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var versions catalog.ModelVersions
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &versions))
	assert.Equal(t, catalog.DefaultVersion, versions.CatalogVersion)
	assert.Equal(t, "1.0", versions.PracticeWeightVersion)
}

func TestListCareers_CategoryFilter(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/catalog/careers?category=Healthcare", "", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var careers []types.CareerDefinition
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &careers))
	require.NotEmpty(t, careers)
	for _, c := range careers {
		assert.Equal(t, types.CategoryHealthcare, c.Category)
	}
}

func TestGetCareer_NotFound(t *testing.T) {
	s := newTestServer(t)

	w := s.do(t, http.MethodGet, "/catalog/careers/Astronaut", "", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestCreateSession_SeedsDefaults(t *testing.T) {
	s := newTestServer(t)

	sess, token := createSession(t, s)
	assert.NotEmpty(t, token)
	assert.Len(t, sess.Skills, 8)
	assert.Equal(t, session.DefaultRating, sess.Skills["Programming"])
}

func TestSessionEndpoints_RequireToken(t *testing.T) {
	s := newTestServer(t)
	sess, _ := createSession(t, s)

	w := s.do(t, http.MethodGet, "/sessions/"+sess.ID.String(), "", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestSessionEndpoints_RejectForeignToken(t *testing.T) {
	s := newTestServer(t)
	first, _ := createSession(t, s)
	_, otherToken := createSession(t, s)

	// A valid token for one session must not open another session.
	w := s.do(t, http.MethodGet, "/sessions/"+first.ID.String(), otherToken, nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestGetSession(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodGet, "/sessions/"+sess.ID.String(), token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var got session.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, sess.ID, got.ID)
}

func TestDeleteSession(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodDelete, "/sessions/"+sess.ID.String(), token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String(), token, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSetSkills_ClampsAndIgnoresUnknown(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/skills", token, map[string]any{
		"skills": map[string]int{
			"Programming": 140,
			"Telepathy":   90,
		},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got session.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, 100, got.Skills["Programming"], "over-range ratings clamp to 100")
	_, present := got.Skills["Telepathy"]
	assert.False(t, present, "unknown skill names are dropped, not stored")
}

func TestSetSkills_InvalidBody(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	req := httptest.NewRequest(http.MethodPut, "/sessions/"+sess.ID.String()+"/skills", bytes.NewReader([]byte("{not json")))
	req.Header.Set("Authorization", "Bearer "+token)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestSetTargets(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"current_role":      "QA Engineer",
		"target_careers":    []string{"Software Developer"},
		"target_categories": []string{"Technology"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	var got session.Session
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &got))
	assert.Equal(t, "QA Engineer", got.CurrentRole)
	assert.Equal(t, []string{"Software Developer"}, got.TargetCareers)
	assert.Equal(t, []types.Category{types.CategoryTechnology}, got.TargetCategories)
}

func TestMatches_DefaultsToAllCategories(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/matches", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []types.CareerMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Matches, 28, "no category selection matches the whole catalog")

	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].MatchPct, resp.Matches[i].MatchPct)
	}
}

func TestMatches_SortBySalary(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/matches?sort=salary", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []types.CareerMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	for i := 1; i < len(resp.Matches); i++ {
		assert.GreaterOrEqual(t, resp.Matches[i-1].MedianSalary, resp.Matches[i].MedianSalary)
	}
}

func TestMatches_CategoryFilter(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"target_categories": []string{"Education"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/matches", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Matches []types.CareerMatch `json:"matches"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Matches)
	for _, m := range resp.Matches {
		assert.Equal(t, types.CategoryEducation, m.Category)
	}
}

func TestGaps_SortedLargestFirst(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"target_careers": []string{"Software Developer"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/gaps", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Gaps []types.GapRecord `json:"gaps"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Gaps)
	// Default rating is 50 everywhere; Programming (required 95) leads.
	assert.Equal(t, "Programming", resp.Gaps[0].Skill)
	for i := 1; i < len(resp.Gaps); i++ {
		assert.GreaterOrEqual(t, resp.Gaps[i-1].Gap, resp.Gaps[i].Gap)
	}
}

func TestGaps_UnknownTargetsAreEmptyNotError(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"target_careers": []string{"Astronaut"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/gaps", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"gaps":[]`)
}

func TestRecommendations(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"target_careers": []string{"Software Developer", "Data Scientist"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/recommendations", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Recommendations []types.SkillRecommendation `json:"recommendations"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Recommendations)

	first := resp.Recommendations[0]
	assert.Equal(t, "Programming", first.Skill, "largest gap at default ratings")
	assert.NotEmpty(t, first.Courses)
	assert.Equal(t, types.PriorityHigh, first.Gap.Priority)
}

func TestReadiness(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPut, "/sessions/"+sess.ID.String()+"/targets", token, map[string]any{
		"target_careers": []string{"Software Developer"},
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/readiness", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Score     float64             `json:"score"`
		Band      types.ReadinessBand `json:"band"`
		PerCareer map[string]float64  `json:"per_career"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Greater(t, resp.Score, 0.0)
	assert.NotEmpty(t, resp.Band.Name)
	assert.Contains(t, resp.PerCareer, "Software Developer")
}

func TestConsult_AppendsChatHistory(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPost, "/sessions/"+sess.ID.String()+"/consult", token, map[string]string{
		"message": "show my skill gaps",
	})
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skill Gap Analysis")

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/chat", token, nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		ChatHistory []session.Message `json:"chat_history"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.ChatHistory, 2)
	assert.Equal(t, "user", resp.ChatHistory[0].Role)
	assert.Equal(t, "assistant", resp.ChatHistory[1].Role)
}

func TestConsult_EmptyMessageRejected(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPost, "/sessions/"+sess.ID.String()+"/consult", token, map[string]string{
		"message": "   ",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestClearChat(t *testing.T) {
	s := newTestServer(t)
	sess, token := createSession(t, s)

	w := s.do(t, http.MethodPost, "/sessions/"+sess.ID.String()+"/consult", token, map[string]string{
		"message": "hello",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = s.do(t, http.MethodDelete, "/sessions/"+sess.ID.String()+"/chat", token, nil)
	assert.Equal(t, http.StatusNoContent, w.Code)

	w = s.do(t, http.MethodGet, "/sessions/"+sess.ID.String()+"/chat", token, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"chat_history":null`)
}

func TestHTTPStatus(t *testing.T) {
	assert.Equal(t, http.StatusNotFound, HTTPStatus(&ErrSessionNotFound{}))
	assert.Equal(t, http.StatusForbidden, HTTPStatus(&ErrSessionMismatch{}))
	assert.Equal(t, http.StatusBadRequest, HTTPStatus(&ErrValidation{Field: "id", Message: "bad"}))
	assert.Equal(t, http.StatusInternalServerError, HTTPStatus(fmt.Errorf("anything else")))
}

func TestCORSPreflight(t *testing.T) {
	s := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/catalog", nil)
	w := httptest.NewRecorder()
	s.httpServer.Handler.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
