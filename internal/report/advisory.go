package report

import "fmt"

const (
	StressThreshold = 3.5
	SleepThreshold  = 6.5
)

type Category int

const (
	Stable Category = iota
	LowSleep
	ElevatedStress
	HighRisk
)

func (c Category) String() string {
	switch c {
	case Stable:
		return "Stable"
	case LowSleep:
		return "LowSleep"
	case ElevatedStress:
		return "ElevatedStress"
	case HighRisk:
		return "HighRisk"
	default:
		return "N/A"
	}
}

// Rule maps a pair of averages to a category.
type Rule struct {
	Category Category
	Matches  func(avgStress, avgSleep float64) bool
}

// Rules are evaluated top-down; the first match wins.
var Rules = []Rule{
	{HighRisk, func(stress, sleep float64) bool { return stress >= StressThreshold && sleep < SleepThreshold }},
	{ElevatedStress, func(stress, _ float64) bool { return stress >= StressThreshold }},
	{LowSleep, func(_, sleep float64) bool { return sleep < SleepThreshold }},
	{Stable, func(_, _ float64) bool { return true }},
}

func Classify(avgStress, avgSleep float64) Category {
	for _, r := range Rules {
		if r.Matches(avgStress, avgSleep) {
			return r.Category
		}
	}
	return Stable
}

// Advice is the rendered advisory for a summary.
type Advice struct {
	Category Category
	Title    string
	Detail   string
	Action   string
}

func Advise(s Summary) Advice {
	c := Classify(s.AvgStress, s.AvgSleep)
	a := Advice{Category: c}
	switch c {
	case HighRisk:
		a.Title = "🚨 High Risk: Elevated Stress and Low Sleep"
		a.Detail = fmt.Sprintf("Your average stress (%.1f/5) is high, and average sleep (%.1f hrs) is low. This pattern indicates burnout risk.", s.AvgStress, s.AvgSleep)
		a.Action = "Focus on wind-down routines and consider a short meditation session immediately."
	case ElevatedStress:
		a.Title = "⚠️ Elevated Stress Detected"
		a.Detail = fmt.Sprintf("Your average stress (%.1f/5) is high. Identify recent triggers (workload, deadlines) and consciously schedule break time.", s.AvgStress)
		a.Action = "Review your schedule and make time for physical activity or mindfulness."
	case LowSleep:
		a.Title = "⚠️ Low Sleep Quality Detected"
		a.Detail = fmt.Sprintf("Your average sleep (%.1f hrs) is low. Lack of sleep impacts mood and health.", s.AvgSleep)
		a.Action = "Maintain a consistent sleep schedule, limit screen time before bed, and ensure a dark, cool sleeping environment."
	default:
		a.Title = "✅ Great Job! Stable Trends Detected."
		a.Detail = "Your average stress and sleep levels are within healthy ranges. Keep up your routine!"
		a.Action = "Maintain consistency and take a mindful break when you need one."
	}
	return a
}
