package report

import (
	"time"

	"github.com/mattwhite/welltrack/internal/entry"
)

func dayKeys(entries []entry.Entry) map[string]bool {
	m := make(map[string]bool, len(entries))
	for _, e := range entries {
		m[e.Day()] = true
	}
	return m
}

// CurrentStreak counts consecutive logged days ending today, or yesterday
// when today has no entry yet.
func CurrentStreak(entries []entry.Entry, now time.Time) int {
	if len(entries) == 0 {
		return 0
	}
	dateMap := dayKeys(entries)
	today := entry.Midday(now)
	todayKey := today.Format(entry.DayLayout)
	yesterdayKey := today.AddDate(0, 0, -1).Format(entry.DayLayout)
	if !dateMap[todayKey] && !dateMap[yesterdayKey] {
		return 0
	}

	startDate := today
	if !dateMap[todayKey] {
		startDate = today.AddDate(0, 0, -1)
	}

	streak := 0
	for d := startDate; dateMap[d.Format(entry.DayLayout)]; d = d.AddDate(0, 0, -1) {
		streak++
	}
	return streak
}

// LongestStreak is the longest run of consecutive calendar days with an
// entry. Input order does not matter.
func LongestStreak(entries []entry.Entry) int {
	if len(entries) == 0 {
		return 0
	}
	dateMap := dayKeys(entries)
	longest := 0
	for key := range dateMap {
		d, _ := time.Parse(entry.DayLayout, key)
		if dateMap[d.AddDate(0, 0, -1).Format(entry.DayLayout)] {
			continue
		}
		run := 0
		for ; dateMap[d.Format(entry.DayLayout)]; d = d.AddDate(0, 0, 1) {
			run++
		}
		if run > longest {
			longest = run
		}
	}
	return longest
}

// MoodDistribution counts entries per mood score; out-of-range scores are
// counted under 0.
func MoodDistribution(entries []entry.Entry) map[int]int {
	dist := make(map[int]int)
	for _, e := range entries {
		m := e.Mood
		if m < 1 || m > 5 {
			m = 0
		}
		dist[m]++
	}
	return dist
}
