// Package session holds per-user assessment state. The engine packages never
// touch sessions directly; handlers pull the profile data out and pass it as
// plain parameters, so every engine call stays a pure function.
package session

import (
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/careercraft/internal/catalog"
	"github.com/jonathan/careercraft/internal/types"
)

// DefaultRating seeds every catalog skill when a session starts, so a user
// who skips the assessment still gets meaningful (if generic) results.
const DefaultRating = 50

// Message is one chat turn in the consultation history.
type Message struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Session is the transient state for one user: skill self-ratings, practice
// frequencies, selected targets, and consultation history. It lives only in
// process memory and is never shared between users.
type Session struct {
	ID               uuid.UUID                 `json:"id"`
	CurrentRole      string                    `json:"current_role"`
	Skills           types.SkillRatings        `json:"skills"`
	PracticeFreq     types.PracticeFrequencies `json:"practice_freq"`
	TargetCareers    []string                  `json:"target_careers"`
	TargetCategories []types.Category          `json:"target_categories"`
	ChatHistory      []Message                 `json:"chat_history"`
	CreatedAt        time.Time                 `json:"created_at"`
}

// New creates a session with every catalog skill rated DefaultRating and no
// practice frequencies set (absent entries read as "sometimes").
func New(cat *catalog.Catalog) *Session {
	skills := make(types.SkillRatings, len(cat.Skills))
	for _, name := range cat.SkillNames() {
		skills[name] = DefaultRating
	}
	return &Session{
		ID:           uuid.New(),
		Skills:       skills,
		PracticeFreq: make(types.PracticeFrequencies),
		CreatedAt:    time.Now().UTC(),
	}
}

// SetSkill records a self-rating, clamped into [0, 100].
func (s *Session) SetSkill(name string, level int) {
	if level < 0 {
		level = 0
	}
	if level > 100 {
		level = 100
	}
	s.Skills[name] = level
}

// SetPracticeFrequency records a practice-frequency label as given; the
// scoring layer normalizes and defaults it.
func (s *Session) SetPracticeFrequency(name, freq string) {
	s.PracticeFreq[name] = freq
}

// AppendChat adds a turn to the consultation history.
func (s *Session) AppendChat(role, content string) {
	s.ChatHistory = append(s.ChatHistory, Message{Role: role, Content: content})
}

// ClearChat drops the consultation history.
func (s *Session) ClearChat() {
	s.ChatHistory = nil
}
