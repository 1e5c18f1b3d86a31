package report

import (
	"errors"
	"math"

	"github.com/mattwhite/welltrack/internal/entry"
)

var ErrNoEntries = errors.New("report: no entries to summarize")

// Summary holds the monthly aggregates.
type Summary struct {
	Count     int
	AvgStress float64
	AvgSleep  float64
	// MaxStress is the first entry, in input order, carrying the highest
	// stress value.
	MaxStress entry.Entry
}

func Summarize(entries []entry.Entry) (Summary, error) {
	if len(entries) == 0 {
		return Summary{}, ErrNoEntries
	}

	var totalStress, totalSleep float64
	maxEntry := entries[0]
	for _, e := range entries {
		totalStress += float64(e.Stress)
		totalSleep += e.Sleep
		if e.Stress > maxEntry.Stress {
			maxEntry = e
		}
	}

	n := float64(len(entries))
	return Summary{
		Count:     len(entries),
		AvgStress: round1(totalStress / n),
		AvgSleep:  round1(totalSleep / n),
		MaxStress: maxEntry,
	}, nil
}

func round1(x float64) float64 {
	return math.Round(x*10) / 10
}
