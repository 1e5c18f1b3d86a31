package report

import (
	"errors"
	"time"

	"github.com/mattwhite/welltrack/internal/entry"
)

const (
	WindowDays = 30
	MinEntries = 7
)

var ErrInsufficientData = errors.New("report: insufficient data, log at least 7 daily entries")

const (
	InsufficientSummaryText  = "Insufficient data. Log at least 7 daily entries to generate a meaningful summary and personalized advice."
	InsufficientAdvisoryText = "Keep logging your daily entries for at least one week to unlock personalized advice!"
)

// Report is everything the monthly view renders. Summary, Advice and Chart
// are nil when the 30-day window holds fewer than MinEntries entries.
type Report struct {
	GeneratedAt   time.Time
	Window        []entry.Entry
	History       []entry.Entry
	Summary       *Summary
	Advice        *Advice
	Chart         []Bar
	CurrentStreak int
	LongestStreak int
	Moods         map[int]int
}

// Sufficient reports whether the summary gate was met.
func (r *Report) Sufficient() bool {
	return r != nil && r.Summary != nil
}

// Build assembles the report from the full newest-first entry list. The
// returned report is always usable for the history table; ErrInsufficientData
// signals that summary, advice and chart were not computed.
func Build(all []entry.Entry, now time.Time) (*Report, error) {
	window := WithinLastNDays(all, WindowDays, now)
	r := &Report{
		GeneratedAt:   now,
		Window:        window,
		History:       RecentWindow(all, DefaultHistoryLimit),
		CurrentStreak: CurrentStreak(all, now),
		LongestStreak: LongestStreak(all),
		Moods:         MoodDistribution(window),
	}
	if len(window) < MinEntries {
		return r, ErrInsufficientData
	}

	s, err := Summarize(window)
	if err != nil {
		return r, err
	}
	a := Advise(s)
	r.Summary = &s
	r.Advice = &a
	r.Chart = BuildChart(window)
	return r, nil
}
