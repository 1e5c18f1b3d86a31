package entry

import (
	"fmt"
	"time"
)

var moodLabels = map[int]string{
	5: "😁 Excellent",
	4: "😊 Good",
	3: "😐 Neutral",
	2: "😞 Low",
	1: "😠 Stressed/Bad",
}

// MoodLabel maps a mood score to its display text, or N/A when the score is
// off the scale.
func MoodLabel(mood int) string {
	if l, ok := moodLabels[mood]; ok {
		return l
	}
	return "N/A"
}

func StressLabel(stress int) string {
	if stress < 1 || stress > 5 {
		return "N/A"
	}
	return fmt.Sprintf("%d/5", stress)
}

// FormatShort renders a date like "Mar 7".
func FormatShort(t time.Time) string {
	return t.UTC().Format("Jan 2")
}

// FormatDay renders a YYYY-MM-DD key like "Mar 7", falling back to the raw
// string when it doesn't parse.
func FormatDay(day string) string {
	t, err := time.Parse(DayLayout, day)
	if err != nil {
		return day
	}
	return FormatShort(t)
}
