package report

import "github.com/mattwhite/welltrack/internal/entry"

const DefaultHistoryLimit = 30

func ByExactDate(entries []entry.Entry, day string) []entry.Entry {
	out := []entry.Entry{}
	for _, e := range entries {
		if e.Day() == day {
			out = append(out, e)
		}
	}
	return out
}

// RecentWindow returns the first limit entries of a newest-first slice.
func RecentWindow(entries []entry.Entry, limit int) []entry.Entry {
	if limit <= 0 {
		limit = DefaultHistoryLimit
	}
	if len(entries) < limit {
		limit = len(entries)
	}
	out := make([]entry.Entry, limit)
	copy(out, entries[:limit])
	return out
}

// History picks the table rows: the recent window when no day is selected,
// otherwise the exact-date match.
func History(entries []entry.Entry, day string) []entry.Entry {
	if day == "" {
		return RecentWindow(entries, DefaultHistoryLimit)
	}
	return ByExactDate(entries, day)
}
