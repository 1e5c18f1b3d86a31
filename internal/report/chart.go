package report

import (
	"time"

	"github.com/mattwhite/welltrack/internal/entry"
)

const (
	ChartDays = 7
	MaxStress = 5.0
	MaxSleep  = 10.0
)

// Bar is one day of the stress/sleep chart. Percentages are not clamped:
// more than MaxSleep hours yields a SleepPct above 100.
type Bar struct {
	Date      time.Time
	Stress    int
	Sleep     float64
	StressPct float64
	SleepPct  float64
}

// BuildChart takes the newest ChartDays entries of a newest-first slice and
// returns them oldest to newest.
func BuildChart(entries []entry.Entry) []Bar {
	n := len(entries)
	if n > ChartDays {
		n = ChartDays
	}
	bars := make([]Bar, 0, n)
	for i := n - 1; i >= 0; i-- {
		e := entries[i]
		bars = append(bars, Bar{
			Date:      e.Date,
			Stress:    e.Stress,
			Sleep:     e.Sleep,
			StressPct: float64(e.Stress) / MaxStress * 100,
			SleepPct:  e.Sleep / MaxSleep * 100,
		})
	}
	return bars
}
