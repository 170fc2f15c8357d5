package session

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/careercraft/internal/catalog"
)

func TestNew_SeedsAllSkillsAtDefault(t *testing.T) {
	cat := catalog.Default()
	s := New(cat)

	require.Len(t, s.Skills, len(cat.Skills))
	for _, name := range cat.SkillNames() {
		assert.Equal(t, DefaultRating, s.Skills[name])
	}
	assert.Empty(t, s.PracticeFreq)
	assert.NotZero(t, s.ID)
	assert.False(t, s.CreatedAt.IsZero())
}

func TestSetSkill_ClampsRange(t *testing.T) {
	s := New(catalog.Default())

	s.SetSkill("Programming", 120)
	assert.Equal(t, 100, s.Skills["Programming"])

	s.SetSkill("Programming", -5)
	assert.Equal(t, 0, s.Skills["Programming"])

	s.SetSkill("Programming", 73)
	assert.Equal(t, 73, s.Skills["Programming"])
}

func TestChatHistory(t *testing.T) {
	s := New(catalog.Default())

	s.AppendChat("user", "show my gaps")
	s.AppendChat("assistant", "here they are")
	require.Len(t, s.ChatHistory, 2)
	assert.Equal(t, "user", s.ChatHistory[0].Role)

	s.ClearChat()
	assert.Empty(t, s.ChatHistory)
}

func TestStore_SessionsAreIsolated(t *testing.T) {
	store := NewStore(catalog.Default())

	first := store.Create()
	second := store.Create()
	require.NotEqual(t, first.ID, second.ID)

	first.SetSkill("Programming", 90)
	assert.Equal(t, DefaultRating, second.Skills["Programming"], "mutating one session must not leak into another")

	got, ok := store.Get(first.ID)
	require.True(t, ok)
	assert.Equal(t, 90, got.Skills["Programming"])
}

func TestStore_DeleteAndLen(t *testing.T) {
	store := NewStore(catalog.Default())

	s := store.Create()
	assert.Equal(t, 1, store.Len())

	store.Delete(s.ID)
	assert.Equal(t, 0, store.Len())

	_, ok := store.Get(s.ID)
	assert.False(t, ok)

	store.Delete(s.ID) // no-op
}
