package logform

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwhite/welltrack/internal/journal"
	"github.com/mattwhite/welltrack/internal/kv"
)

var fixedNow = time.Date(2024, 1, 5, 9, 30, 0, 0, time.UTC)

func newTestModel(t *testing.T) (Model, *journal.Store) {
	t.Helper()
	repo := journal.New(kv.NewMemory(), nil)
	m := New(repo, nil)
	m.now = func() time.Time { return fixedNow }
	m.reset()
	return m, repo
}

func press(t *testing.T, m Model, msgs ...tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	var cmd tea.Cmd
	for _, msg := range msgs {
		var next tea.Model
		next, cmd = m.Update(msg)
		m = next.(Model)
	}
	return m, cmd
}

func runes(s string) tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)} }

var (
	tab   = tea.KeyMsg{Type: tea.KeyTab}
	right = tea.KeyMsg{Type: tea.KeyRight}
	left  = tea.KeyMsg{Type: tea.KeyLeft}
	save  = tea.KeyMsg{Type: tea.KeyCtrlS}
)

func TestNew_Defaults(t *testing.T) {
	m, _ := newTestModel(t)
	assert.Equal(t, "2024-01-05", m.date.Value())
	assert.Equal(t, 3, m.stress)
	assert.Equal(t, 0, m.mood)
	assert.Equal(t, fieldDate, m.focus)
}

func TestMoodAndStressKeys(t *testing.T) {
	m, _ := newTestModel(t)

	m, _ = press(t, m, tab, runes("4"))
	assert.Equal(t, 4, m.mood)
	m, _ = press(t, m, runes("9"))
	assert.Equal(t, 4, m.mood, "only 1-5 select a mood")

	m, _ = press(t, m, tab, right, right, right)
	assert.Equal(t, 5, m.stress, "stress stops at 5")
	m, _ = press(t, m, left, left, left, left, left, left)
	assert.Equal(t, 1, m.stress, "stress stops at 1")
}

func TestSubmit_SavesAndResets(t *testing.T) {
	m, repo := newTestModel(t)
	m.date.SetValue("2024-01-02")
	m.mood = 4
	m.stress = 2
	m.sleep.SetValue("7.5")
	m.notes.SetValue("  walked  ")

	m, cmd := press(t, m, save)
	require.NotNil(t, cmd)
	assert.Equal(t, "Entry saved for Jan 2!", m.message)
	assert.False(t, m.isError)

	all := repo.LoadAll()
	require.Len(t, all, 1)
	assert.Equal(t, "2024-01-02", all[0].Day())
	assert.Equal(t, 4, all[0].Mood)
	assert.Equal(t, 2, all[0].Stress)
	assert.Equal(t, 7.5, all[0].Sleep)
	assert.Equal(t, "walked", all[0].Notes)

	assert.Equal(t, "2024-01-05", m.date.Value())
	assert.Equal(t, 0, m.mood)
	assert.Equal(t, 3, m.stress)
	assert.Empty(t, m.sleep.Value())
}

func TestSubmit_DuplicateDate(t *testing.T) {
	m, repo := newTestModel(t)
	fill := func(m Model) Model {
		m.date.SetValue("2024-01-02")
		m.mood = 3
		m.sleep.SetValue("8")
		return m
	}
	m, _ = press(t, fill(m), save)
	m, _ = press(t, fill(m), save)

	assert.Equal(t, "An entry for Jan 2 already exists. Please choose a different date.", m.message)
	assert.True(t, m.isError)
	assert.Len(t, repo.LoadAll(), 1)
	assert.Equal(t, "2024-01-02", m.date.Value(), "fields are kept after a rejected save")
}

func TestSubmit_Rejections(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		mood  int
		sleep string
		want  string
	}{
		{"no mood", "2024-01-02", 0, "7", "Please select a mood before saving!"},
		{"future date", "2024-01-06", 3, "7", "Entries can't be logged for future dates."},
		{"bad date", "01/02/2024", 3, "7", "Please enter the date as YYYY-MM-DD."},
		{"no sleep", "2024-01-02", 3, "", "Please enter how many hours you slept."},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, repo := newTestModel(t)
			m.date.SetValue(tt.date)
			m.mood = tt.mood
			m.sleep.SetValue(tt.sleep)

			m, _ = press(t, m, save)
			assert.Equal(t, tt.want, m.message)
			assert.True(t, m.isError)
			assert.Empty(t, repo.LoadAll())
		})
	}
}

func TestSubmit_InfiniteSleep(t *testing.T) {
	m, repo := newTestModel(t)
	m.mood = 3
	m.sleep.SetValue("Inf")

	m, _ = press(t, m, save)
	assert.True(t, m.isError)
	assert.Contains(t, m.message, "invalid entry")
	assert.Empty(t, repo.LoadAll())
}

func TestSubmit_TodayIsAllowed(t *testing.T) {
	m, repo := newTestModel(t)
	m.mood = 5
	m.sleep.SetValue("6")
	m, _ = press(t, m, save)
	assert.Equal(t, "Entry saved for Jan 5!", m.message)
	assert.Len(t, repo.LoadAll(), 1)
}

func TestClearMessage_OnlyLatest(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, save)
	first := m.messageSeq
	m, _ = press(t, m, save)
	require.NotEmpty(t, m.message)

	m, _ = press(t, m, clearMessageMsg{seq: first})
	assert.NotEmpty(t, m.message, "a stale timer leaves the newer message alone")

	m, _ = press(t, m, clearMessageMsg{seq: m.messageSeq})
	assert.Empty(t, m.message)
}

func TestView_ShowsMessage(t *testing.T) {
	m, _ := newTestModel(t)
	m, _ = press(t, m, save)
	assert.Contains(t, m.View(), "Please select a mood before saving!")
	assert.Contains(t, m.View(), "Daily Wellness Log")
}
