package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwhite/welltrack/internal/config"
	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/journal"
	"github.com/mattwhite/welltrack/internal/kv"
	"github.com/mattwhite/welltrack/internal/reportui"
)

var fixedNow = time.Date(2024, 1, 5, 9, 0, 0, 0, time.UTC)

func newRepo() *journal.Store { return journal.New(kv.NewMemory(), nil) }

func TestRunAdd(t *testing.T) {
	repo := newRepo()
	var out bytes.Buffer
	err := runAdd(repo, []string{"-date", "2024-01-02", "-mood", "5", "-stress", "2", "-sleep", "8", "-notes", "hike"}, &out, fixedNow)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Entry saved for Jan 2!")

	all := repo.LoadAll()
	require.Len(t, all, 1)
	assert.Equal(t, "hike", all[0].Notes)
	assert.Equal(t, 2, all[0].Stress)
}

func TestRunAdd_DefaultsToToday(t *testing.T) {
	repo := newRepo()
	var out bytes.Buffer
	require.NoError(t, runAdd(repo, []string{"-mood", "3", "-sleep", "7"}, &out, fixedNow))
	all := repo.LoadAll()
	require.Len(t, all, 1)
	assert.Equal(t, "2024-01-05", all[0].Day())
	assert.Equal(t, 3, all[0].Stress)
}

func TestRunAdd_Rejections(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{"missing mood", []string{"-sleep", "7"}, "mood"},
		{"missing sleep", []string{"-mood", "3"}, "sleep"},
		{"future", []string{"-date", "2024-01-06", "-mood", "3", "-sleep", "7"}, "future"},
		{"out of range", []string{"-mood", "6", "-sleep", "7"}, "invalid entry"},
		{"infinite sleep", []string{"-mood", "3", "-sleep", "Inf"}, "invalid entry"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			var out bytes.Buffer
			err := runAdd(repo, tt.args, &out, fixedNow)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.want)
			assert.Empty(t, repo.LoadAll())
		})
	}
}

func TestRunAdd_Duplicate(t *testing.T) {
	repo := newRepo()
	var out bytes.Buffer
	args := []string{"-date", "2024-01-02", "-mood", "3", "-sleep", "7"}
	require.NoError(t, runAdd(repo, args, &out, fixedNow))
	err := runAdd(repo, args, &out, fixedNow)
	require.Error(t, err)
	assert.Equal(t, "An entry for Jan 2 already exists. Please choose a different date.", err.Error())
}

func TestRunHistory(t *testing.T) {
	repo := newRepo()
	for _, day := range []string{"2024-01-01", "2024-01-03"} {
		e, err := entry.New(day, 4, 2, 7.5, "ok")
		require.NoError(t, err)
		require.NoError(t, repo.Append(e))
	}

	var out bytes.Buffer
	require.NoError(t, runHistory(repo, nil, &out))
	assert.Contains(t, out.String(), reportui.AllRecentText)
	assert.Contains(t, out.String(), "Jan 3")
	assert.Contains(t, out.String(), "Jan 1")

	out.Reset()
	require.NoError(t, runHistory(repo, []string{"-date", "2024-01-03"}, &out))
	assert.Contains(t, out.String(), "Showing entry for Jan 3.")

	out.Reset()
	require.NoError(t, runHistory(repo, []string{"-date", "2024-01-02"}, &out))
	assert.Contains(t, out.String(), "No entry found for Jan 2.")
	assert.Contains(t, out.String(), reportui.EmptyHistoryText)

	assert.Error(t, runHistory(repo, []string{"-date", "Jan 2"}, &out))
}

func TestRunInsights_Gated(t *testing.T) {
	var out bytes.Buffer
	require.NoError(t, runInsights(newRepo(), config.Default(t.TempDir()), &out))
	assert.Contains(t, out.String(), "Insufficient data")
}

func TestWriteDefaultConfig(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	assert.True(t, firstRun(cfg))
	require.NoError(t, writeDefaultConfig(home))
	assert.False(t, firstRun(cfg))
}
