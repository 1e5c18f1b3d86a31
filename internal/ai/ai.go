package ai

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/anthropics/anthropic-sdk-go"
	"github.com/anthropics/anthropic-sdk-go/option"

	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/report"
)

var ErrNoAPIKey = errors.New("No API key found. Run 'welltrack onboard' to set up AI features")

// Completer sends one system+user exchange and returns the text reply.
type Completer interface {
	Complete(ctx context.Context, system, user string) (string, error)
}

// Client talks to the Anthropic Messages API.
type Client struct {
	api       anthropic.Client
	model     string
	maxTokens int64
}

func NewClient(apiKey, model string) (*Client, error) {
	if strings.TrimSpace(apiKey) == "" {
		return nil, ErrNoAPIKey
	}
	return &Client{
		api:       anthropic.NewClient(option.WithAPIKey(apiKey)),
		model:     model,
		maxTokens: 1200,
	}, nil
}

func (c *Client) Complete(ctx context.Context, system, user string) (string, error) {
	response, err := c.api.Messages.New(ctx, anthropic.MessageNewParams{
		Model:     anthropic.Model(c.model),
		MaxTokens: c.maxTokens,
		System:    []anthropic.TextBlockParam{{Text: system, Type: "text"}},
		Messages: []anthropic.MessageParam{{
			Role:    anthropic.MessageParamRoleUser,
			Content: []anthropic.ContentBlockParamUnion{{OfText: &anthropic.TextBlockParam{Text: user, Type: "text"}}},
		}},
	})
	if err != nil {
		return "", fmt.Errorf("Anthropic API error: %w", err)
	}
	if len(response.Content) == 0 {
		return "", fmt.Errorf("no response content from Anthropic")
	}
	for _, content := range response.Content {
		if content.Type == "text" && content.Text != "" {
			return content.Text, nil
		}
	}
	return "", fmt.Errorf("unexpected response format from Anthropic")
}

const systemPrompt = `You are a supportive wellness companion reviewing a person's self-reported daily log of mood, stress and sleep. You are not a clinician and must not diagnose.

Please respond in the following sections:

**📊 PATTERNS**
- Describe how stress and sleep moved over the last week
- Point out the highest-stress day and anything that stands out around it

**🌙 SLEEP & STRESS**
- Relate the averages to the advisory category the app assigned
- Note whether logging has been consistent (streaks)

**🚀 SUGGESTIONS**
- Offer 3 small, specific, achievable habits for the coming week

Keep the tone warm and honest. If anything suggests a crisis, gently recommend talking to a professional. Use short bullet points.`

// StatsSummary renders the report as plain text for the model.
func StatsSummary(r *report.Report) string {
	var b strings.Builder
	s := r.Summary
	fmt.Fprintf(&b, "Wellness Summary (last %d days, %d entries):\n", report.WindowDays, s.Count)
	fmt.Fprintf(&b, "- Average Stress: %.1f/5\n", s.AvgStress)
	fmt.Fprintf(&b, "- Average Sleep: %.1f hrs\n", s.AvgSleep)
	fmt.Fprintf(&b, "- Highest Stress Day: %s (%s)\n", entry.FormatShort(s.MaxStress.Date), entry.StressLabel(s.MaxStress.Stress))
	if r.Advice != nil {
		fmt.Fprintf(&b, "- Advisory Category: %s\n", r.Advice.Category)
	}
	fmt.Fprintf(&b, "- Current Logging Streak: %d days\n", r.CurrentStreak)
	fmt.Fprintf(&b, "- Longest Logging Streak: %d days\n", r.LongestStreak)

	if len(r.Moods) > 0 {
		var moods []int
		for m := range r.Moods {
			moods = append(moods, m)
		}
		sort.Sort(sort.Reverse(sort.IntSlice(moods)))
		b.WriteString("\nMood Distribution:\n")
		for _, m := range moods {
			fmt.Fprintf(&b, "- %s: %d\n", entry.MoodLabel(m), r.Moods[m])
		}
	}

	b.WriteString("\nLast 7 Days (oldest first):\n")
	for _, bar := range r.Chart {
		fmt.Fprintf(&b, "- %s: stress %d/5, sleep %.1f hrs\n", bar.Date.Format("Mon, Jan 2"), bar.Stress, bar.Sleep)
	}
	return b.String()
}

// NarrateReport asks the model for commentary on a sufficient report.
func NarrateReport(ctx context.Context, c Completer, r *report.Report) (string, error) {
	if !r.Sufficient() {
		return "", report.ErrInsufficientData
	}
	notes := recentNotes(r.Window, report.ChartDays)
	userPrompt := fmt.Sprintf("%s\n\nRecent Notes:\n%s\n\nPlease review my last month and give me personalized, encouraging insights.", StatsSummary(r), notes)
	return c.Complete(ctx, systemPrompt, userPrompt)
}

func recentNotes(window []entry.Entry, days int) string {
	var b strings.Builder
	for i, e := range window {
		if i >= days {
			break
		}
		if strings.TrimSpace(e.Notes) == "" {
			continue
		}
		fmt.Fprintf(&b, "=== %s ===\n%s\n", e.Date.Format("Monday, January 2, 2006"), e.Notes)
	}
	if b.Len() == 0 {
		return "(no notes)"
	}
	return b.String()
}
