// Package report derives the monthly wellness report from the journal:
// recency windows, averages, advisory category, chart bars and the history
// table.
package report

import (
	"time"

	"github.com/mattwhite/welltrack/internal/entry"
)

// WithinLastNDays keeps entries dated strictly after now minus n days. The
// comparison is on full timestamps, so an entry exactly at the cutoff is
// dropped.
func WithinLastNDays(entries []entry.Entry, n int, now time.Time) []entry.Entry {
	cutoff := now.AddDate(0, 0, -n)
	out := make([]entry.Entry, 0, len(entries))
	for _, e := range entries {
		if e.Date.After(cutoff) {
			out = append(out, e)
		}
	}
	return out
}
