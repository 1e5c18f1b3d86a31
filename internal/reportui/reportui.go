package reportui

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	"github.com/charmbracelet/bubbles/spinner"
	btable "github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	bviewport "github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mattwhite/welltrack/internal/ai"
	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/journal"
	"github.com/mattwhite/welltrack/internal/report"
)

const (
	tabSummary = iota
	tabChart
	tabHistory
	tabAI
)

const aiTimeout = 90 * time.Second

const (
	EmptyHistoryText  = "No entries found for the selected date or in recent history."
	AllRecentText     = "Showing all recent entries."
	ChartLockedText   = "The 7-day chart unlocks once the last 30 days hold at least 7 entries."
	badFilterDateText = "Please enter the date as YYYY-MM-DD."
)

type Model struct {
	repo      journal.Repository
	completer ai.Completer
	logger    *zap.SugaredLogger
	now       func() time.Time

	all     []entry.Entry
	report  *report.Report
	loading bool

	selectedTab  int
	tabs         []string
	width        int
	height       int
	sidebarWidth int

	filter        textinput.Model
	filterMessage string
	history       []entry.Entry
	historyTable  btable.Model

	aiInsights string
	aiLoading  bool
	aiError    error
	aiLoader   spinner.Model

	stressGauge progress.Model
	sleepGauge  progress.Model
	contentVP   bviewport.Model
	help        help.Model
	keys        keymap
	showHelp    bool
}

// New builds the dashboard. A nil completer leaves the AI tab showing the
// onboarding hint.
func New(repo journal.Repository, completer ai.Completer, logger *zap.SugaredLogger) Model {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}

	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Bold(true)

	fi := textinput.New()
	fi.Placeholder = entry.DayLayout
	fi.CharLimit = len(entry.DayLayout)
	fi.Width = 12
	fi.Prompt = "🔎 "

	return Model{
		repo:         repo,
		completer:    completer,
		logger:       logger,
		now:          time.Now,
		loading:      true,
		tabs:         []string{"Summary", "Chart", "History", "AI Insights"},
		sidebarWidth: 28,
		filter:       fi,
		aiLoader:     sp,
		stressGauge:  progress.New(progress.WithGradient("#FFB6C1", "#FF1493"), progress.WithoutPercentage()),
		sleepGauge:   progress.New(progress.WithGradient("#5A56E0", "#7FDBFF"), progress.WithoutPercentage()),
		contentVP:    bviewport.New(0, 0),
		help:         help.New(),
		keys:         newKeymap(),
	}
}

type reportLoadedMsg struct {
	all    []entry.Entry
	report *report.Report
}
type aiInsightsMsg struct{ insights string }
type aiInsightsErrorMsg struct{ err error }

func (m Model) Init() tea.Cmd { return m.loadReportCmd() }

func (m Model) loadReportCmd() tea.Cmd {
	repo, now := m.repo, m.now
	return func() tea.Msg {
		all := repo.LoadAll()
		r, _ := report.Build(all, now())
		return reportLoadedMsg{all: all, report: r}
	}
}

func (m Model) generateAIInsightsCmd() tea.Cmd {
	c, r := m.completer, m.report
	return func() tea.Msg {
		if c == nil {
			return aiInsightsErrorMsg{err: ai.ErrNoAPIKey}
		}
		ctx, cancel := context.WithTimeout(context.Background(), aiTimeout)
		defer cancel()
		insights, err := ai.NarrateReport(ctx, c, r)
		if err != nil {
			return aiInsightsErrorMsg{err: err}
		}
		return aiInsightsMsg{insights: insights}
	}
}

func (m Model) mainWidth() int { return m.width - m.sidebarWidth }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		w := m.mainWidth() - 24
		if w < 20 {
			w = 20
		}
		m.stressGauge.Width = w
		m.sleepGauge.Width = w
		contentHeight := m.height - 6
		if contentHeight < 5 {
			contentHeight = 5
		}
		m.contentVP.Width = m.mainWidth()
		m.contentVP.Height = contentHeight
		m.help.Width = m.mainWidth()
		m.rebuildHistoryTable()

	case reportLoadedMsg:
		m.all = msg.all
		m.report = msg.report
		m.loading = false
		m.aiInsights = ""
		m.aiError = nil
		m.applyFilter(m.filter.Value())
		m.logger.Debugw("report loaded", "entries", len(m.all), "sufficient", m.report.Sufficient())

	case aiInsightsMsg:
		m.aiInsights = msg.insights
		m.aiLoading = false

	case aiInsightsErrorMsg:
		m.aiError = msg.err
		m.aiLoading = false
		if !errors.Is(msg.err, ai.ErrNoAPIKey) && !errors.Is(msg.err, report.ErrInsufficientData) {
			m.logger.Warnw("ai insights failed", "error", msg.err)
		}

	case spinner.TickMsg:
		if m.aiLoading {
			var cmd tea.Cmd
			m.aiLoader, cmd = m.aiLoader.Update(msg)
			return m, cmd
		}

	case tea.KeyMsg:
		if m.filter.Focused() {
			return m.updateFilter(msg)
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.NextTab):
			m.selectedTab = (m.selectedTab + 1) % len(m.tabs)
			m.contentVP.GotoTop()
		case key.Matches(msg, m.keys.PrevTab):
			m.selectedTab = (m.selectedTab - 1 + len(m.tabs)) % len(m.tabs)
			m.contentVP.GotoTop()
		case key.Matches(msg, m.keys.Help):
			m.showHelp = !m.showHelp
		case key.Matches(msg, m.keys.Reload):
			m.loading = true
			return m, m.loadReportCmd()
		case key.Matches(msg, m.keys.ScrollDown):
			if m.selectedTab == tabHistory {
				m.historyTable.MoveDown(1)
			} else {
				m.contentVP.LineDown(1)
			}
		case key.Matches(msg, m.keys.ScrollUp):
			if m.selectedTab == tabHistory {
				m.historyTable.MoveUp(1)
			} else {
				m.contentVP.LineUp(1)
			}
		case key.Matches(msg, m.keys.Filter):
			if m.selectedTab == tabHistory {
				m.filter.Focus()
				return m, textinput.Blink
			}
		case key.Matches(msg, m.keys.ClearFilter):
			if m.selectedTab == tabHistory {
				m.filter.SetValue("")
				m.applyFilter("")
			}
		case key.Matches(msg, m.keys.GenerateAI):
			if m.selectedTab == tabAI && !m.aiLoading && m.report != nil {
				m.aiLoading = true
				m.aiError = nil
				m.aiInsights = ""
				return m, tea.Batch(m.aiLoader.Tick, m.generateAIInsightsCmd())
			}
		}
	}
	return m, nil
}

func (m Model) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEnter:
		m.filter.Blur()
		m.applyFilter(m.filter.Value())
		return m, nil
	case tea.KeyEsc:
		m.filter.Blur()
		m.filter.SetValue("")
		m.applyFilter("")
		return m, nil
	case tea.KeyCtrlC:
		return m, tea.Quit
	}
	var cmd tea.Cmd
	m.filter, cmd = m.filter.Update(msg)
	return m, cmd
}

// applyFilter narrows the history table to one date, or to the recent
// window when day is blank.
func (m *Model) applyFilter(day string) {
	day = strings.TrimSpace(day)
	switch {
	case day == "":
		m.history = report.History(m.all, "")
		m.filterMessage = AllRecentText
	default:
		if _, err := entry.ParseDay(day); err != nil {
			m.history = report.History(m.all, "")
			m.filterMessage = badFilterDateText
			break
		}
		m.history = report.History(m.all, day)
		if len(m.history) > 0 {
			m.filterMessage = fmt.Sprintf("Showing entry for %s.", entry.FormatDay(day))
		} else {
			m.filterMessage = fmt.Sprintf("No entry found for %s.", entry.FormatDay(day))
		}
	}
	m.rebuildHistoryTable()
}

func (m *Model) rebuildHistoryTable() {
	columns := []btable.Column{
		{Title: "Date", Width: 10},
		{Title: "Mood", Width: 16},
		{Title: "Stress", Width: 8},
		{Title: "Sleep (hrs)", Width: 12},
	}
	rows := make([]btable.Row, 0, len(m.history))
	for _, e := range m.history {
		rows = append(rows, btable.Row{
			entry.FormatShort(e.Date),
			entry.MoodLabel(e.Mood),
			entry.StressLabel(e.Stress),
			fmt.Sprintf("%g", e.Sleep),
		})
	}
	height := m.height - 12
	if height < 5 {
		height = 5
	}
	t := btable.New(btable.WithColumns(columns), btable.WithRows(rows), btable.WithFocused(true), btable.WithHeight(height))
	t.SetStyles(tableStyles())
	m.historyTable = t
}

func (m Model) View() string {
	if m.loading {
		return lipgloss.NewStyle().
			Width(m.width).
			Height(m.height).
			Align(lipgloss.Center, lipgloss.Center).
			Render("Loading...")
	}
	if m.showHelp {
		return m.renderHelpOverlay()
	}

	var body string
	switch m.selectedTab {
	case tabSummary:
		body = m.renderSummary()
	case tabChart:
		body = m.renderChart()
	case tabHistory:
		body = m.renderHistory()
	case tabAI:
		body = m.renderAIInsights()
	}

	vp := m.contentVP
	vp.SetContent(body)
	main := lipgloss.JoinVertical(lipgloss.Left, m.renderTabs(), vp.View(), m.renderFooter())
	return lipgloss.JoinHorizontal(lipgloss.Top, m.renderSidebar(), main)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888"))
	valueStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FFF"))
	mutedStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Italic(true)
	warningStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	okStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	cardStyle    = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444")).
			Padding(1, 2).
			Margin(0, 2, 1, 0)
)

func (m Model) renderTabs() string {
	var tabs []string
	tabStyle := lipgloss.NewStyle().Padding(0, 2).Margin(0, 1).Foreground(lipgloss.Color("#999"))
	activeTabStyle := tabStyle.Foreground(lipgloss.Color("#FF1493")).Bold(true).Underline(true)
	for i, tab := range m.tabs {
		if i == m.selectedTab {
			tabs = append(tabs, activeTabStyle.Render(tab))
		} else {
			tabs = append(tabs, tabStyle.Render(tab))
		}
	}
	tabBar := lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
	return lipgloss.NewStyle().Width(m.mainWidth()).Padding(1, 0).BorderBottom(true).BorderStyle(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#444")).Render(tabBar)
}

func (m Model) renderSidebar() string {
	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493")).Render("WellTrack")
	subtitle := lipgloss.NewStyle().Foreground(lipgloss.Color("#AAA")).Render("Monthly Report")
	icons := []string{"📋", "📊", "📅", "🤖"}
	var items []string
	for i, tab := range m.tabs {
		style := lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#AAA"))
		if i == m.selectedTab {
			style = style.Foreground(lipgloss.Color("#FF1493")).Bold(true)
		}
		items = append(items, style.Render(fmt.Sprintf("%s %s", icons[i], tab)))
	}
	quick := []string{
		labelStyle.Render("Quick Stats"),
		fmt.Sprintf("Entries: %d", len(m.all)),
		fmt.Sprintf("Last 30d: %d", len(m.report.Window)),
		fmt.Sprintf("Streak: %d", m.report.CurrentStreak),
		fmt.Sprintf("Longest: %d", m.report.LongestStreak),
	}
	box := lipgloss.NewStyle().
		Width(m.sidebarWidth).
		Height(m.height).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Padding(1, 2)
	return box.Render(lipgloss.JoinVertical(lipgloss.Left,
		title,
		subtitle,
		"",
		strings.Join(items, "\n"),
		"",
		strings.Join(quick, "\n"),
		"",
		lipgloss.NewStyle().Foreground(lipgloss.Color("#777")).Render("? for help"),
	))
}

func (m Model) renderSummary() string {
	var content []string
	content = append(content, titleStyle.Render("📋 Last 30 Days"))

	if !m.report.Sufficient() {
		content = append(content,
			cardStyle.Render(warningStyle.Render(report.InsufficientSummaryText)),
			titleStyle.Render("💡 Wellness Advisory"),
			cardStyle.Render(report.InsufficientAdvisoryText),
		)
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
	}

	s := m.report.Summary
	left := []string{
		labelStyle.Render("Avg Stress    ") + valueStyle.Render(fmt.Sprintf("%.1f/5", s.AvgStress)),
		labelStyle.Render("Avg Sleep     ") + valueStyle.Render(fmt.Sprintf("%.1f hrs", s.AvgSleep)),
		labelStyle.Render("Peak Stress   ") + valueStyle.Render(fmt.Sprintf("%s (%d/5)", entry.FormatShort(s.MaxStress.Date), s.MaxStress.Stress)),
		labelStyle.Render("Entries       ") + valueStyle.Render(fmt.Sprintf("%d", s.Count)),
	}
	right := []string{
		labelStyle.Render("Current Streak ") + valueStyle.Render(fmt.Sprintf("%d days", m.report.CurrentStreak)),
		labelStyle.Render("Longest Streak ") + valueStyle.Render(fmt.Sprintf("%d days", m.report.LongestStreak)),
	}
	content = append(content, lipgloss.JoinHorizontal(lipgloss.Top,
		cardStyle.Render(strings.Join(left, "\n")),
		cardStyle.Render(strings.Join(right, "\n")),
	))

	content = append(content,
		labelStyle.Render("Stress ")+m.stressGauge.ViewAs(clamp01(s.AvgStress/report.MaxStress)),
		labelStyle.Render("Sleep  ")+m.sleepGauge.ViewAs(clamp01(s.AvgSleep/report.MaxSleep)),
		"",
	)

	a := m.report.Advice
	style := okStyle
	if a.Category != report.Stable {
		style = warningStyle
	}
	advice := lipgloss.JoinVertical(lipgloss.Left,
		style.Bold(true).Render(a.Title),
		"",
		lipgloss.NewStyle().Width(m.mainWidth()-12).Render(a.Detail),
		"",
		labelStyle.Render("Action: ")+a.Action,
	)
	content = append(content, titleStyle.Render("💡 Wellness Advisory"), cardStyle.Render(advice))

	content = append(content, titleStyle.Render("🙂 Mood Mix"))
	for mood := 5; mood >= 1; mood-- {
		n := m.report.Moods[mood]
		line := fmt.Sprintf("%-20s %s %3d", entry.MoodLabel(mood), renderMiniBar(float64(n), float64(len(m.report.Window)), 20), n)
		content = append(content, line)
	}
	content = append(content, "", labelStyle.Render("Sleep, last 14 logged days  ")+renderSparkline(sleepSeries(m.report.Window, 14)))

	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
}

// chartBarWidth is the cell count that represents 100%.
const chartBarWidth = 30

func (m Model) renderChart() string {
	var content []string
	content = append(content, titleStyle.Render("📊 Stress & Sleep, Last 7 Entries"))
	if !m.report.Sufficient() {
		content = append(content, mutedStyle.Render(ChartLockedText))
		return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
	}

	stressColor := lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493"))
	sleepColor := lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF"))
	for _, b := range m.report.Chart {
		content = append(content,
			fmt.Sprintf("%-7s %s %s", entry.FormatShort(b.Date), stressColor.Render(bar(b.StressPct)), labelStyle.Render(fmt.Sprintf("stress %d/5 (%.0f%%)", b.Stress, b.StressPct))),
			fmt.Sprintf("%-7s %s %s", "", sleepColor.Render(bar(b.SleepPct)), labelStyle.Render(fmt.Sprintf("sleep %g hrs (%.0f%%)", b.Sleep, b.SleepPct))),
			"",
		)
	}
	content = append(content, stressColor.Render("█")+" stress   "+sleepColor.Render("█")+" sleep")
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
}

// bar draws pct of chartBarWidth cells. Values above 100 run past the
// nominal width.
func bar(pct float64) string {
	n := int(pct * chartBarWidth / 100)
	if n < 0 {
		n = 0
	}
	return strings.Repeat("█", n)
}

func (m Model) renderHistory() string {
	var content []string
	content = append(content, titleStyle.Render("📅 History"))
	content = append(content, labelStyle.Render("Filter by date: ")+m.filter.View())
	if m.filterMessage != "" {
		content = append(content, mutedStyle.Render(m.filterMessage))
	}
	content = append(content, "")
	if len(m.history) == 0 {
		content = append(content, mutedStyle.Render(EmptyHistoryText))
	} else {
		content = append(content, m.historyTable.View())
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
}

func (m Model) renderAIInsights() string {
	var content []string
	content = append(content, titleStyle.Render("🤖 AI-Powered Wellness Insights"))

	if m.aiLoading {
		return lipgloss.NewStyle().Padding(1, 2).Render(lipgloss.JoinVertical(lipgloss.Left,
			content[0],
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Render("🔮 Reading your month…"),
			"",
			m.aiLoader.View(),
		))
	}

	switch {
	case m.aiError != nil:
		msg := fmt.Sprintf("❌ Error generating insights: %v", m.aiError)
		if errors.Is(m.aiError, ai.ErrNoAPIKey) {
			msg += "\n\n💡 Tip: run 'welltrack onboard' or set ANTHROPIC_API_KEY"
		}
		content = append(content, warningStyle.Render(msg))
	case m.aiInsights != "":
		content = append(content, lipgloss.NewStyle().Width(m.mainWidth()-6).Render(m.aiInsights))
	case !m.report.Sufficient():
		content = append(content, mutedStyle.Render(report.InsufficientAdvisoryText))
	default:
		content = append(content,
			lipgloss.NewStyle().Foreground(lipgloss.Color("#FF1493")).Bold(true).Render("Press 'g' to generate AI insights from your monthly report"),
			"",
			mutedStyle.Render("Note: This feature requires an Anthropic API key"),
		)
	}
	return lipgloss.NewStyle().Padding(1, 2).Render(strings.Join(content, "\n"))
}

func (m Model) renderFooter() string {
	return lipgloss.NewStyle().
		Width(m.mainWidth()).
		BorderTop(true).
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(lipgloss.Color("#444")).
		Padding(0, 2).
		Render(m.help.View(m.keys))
}

func (m Model) renderHelpOverlay() string {
	h := m.help
	h.ShowAll = true
	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color("#FF1493")).
		Padding(1, 2)
	overlay := box.Render(h.View(m.keys) + "\n\nPress '?' to close")
	return lipgloss.NewStyle().Width(m.width).Height(m.height).Align(lipgloss.Center, lipgloss.Center).Render(overlay)
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

func renderMiniBar(current, max float64, width int) string {
	progress := 0.0
	if max > 0 {
		progress = clamp01(current / max)
	}
	filled := int(progress * float64(width))
	var b strings.Builder
	for i := 0; i < width; i++ {
		if i < filled {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#AA6688")).Render("▓"))
		} else {
			b.WriteString(lipgloss.NewStyle().Foreground(lipgloss.Color("#444")).Render("░"))
		}
	}
	return b.String()
}

// sleepSeries returns up to n sleep values from a newest-first slice,
// oldest first.
func sleepSeries(entries []entry.Entry, n int) []float64 {
	if len(entries) < n {
		n = len(entries)
	}
	out := make([]float64, 0, n)
	for i := n - 1; i >= 0; i-- {
		out = append(out, entries[i].Sleep)
	}
	return out
}

func renderSparkline(values []float64) string {
	if len(values) == 0 {
		return ""
	}
	blocks := []rune("▁▂▃▄▅▆▇█")
	max := 0.0
	for _, v := range values {
		if v > max {
			max = v
		}
	}
	if max == 0 {
		return strings.Repeat(string(blocks[0])+" ", len(values))
	}
	var b strings.Builder
	for _, v := range values {
		idx := int(v / max * float64(len(blocks)-1))
		if idx < 0 {
			idx = 0
		}
		b.WriteRune(blocks[idx])
		b.WriteRune(' ')
	}
	return b.String()
}

type keymap struct {
	NextTab     key.Binding
	PrevTab     key.Binding
	ScrollDown  key.Binding
	ScrollUp    key.Binding
	Filter      key.Binding
	ClearFilter key.Binding
	GenerateAI  key.Binding
	Reload      key.Binding
	Help        key.Binding
	Quit        key.Binding
}

func newKeymap() keymap {
	return keymap{
		NextTab:     key.NewBinding(key.WithKeys("tab", "right"), key.WithHelp("tab/→", "next tab")),
		PrevTab:     key.NewBinding(key.WithKeys("shift+tab", "left"), key.WithHelp("⇧tab/←", "prev tab")),
		ScrollDown:  key.NewBinding(key.WithKeys("j", "down"), key.WithHelp("j/↓", "scroll down")),
		ScrollUp:    key.NewBinding(key.WithKeys("k", "up"), key.WithHelp("k/↑", "scroll up")),
		Filter:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "filter by date (History)")),
		ClearFilter: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "clear filter (History)")),
		GenerateAI:  key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "AI insights (Insights tab)")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		Help:        key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Quit:        key.NewBinding(key.WithKeys("q", "esc", "ctrl+c"), key.WithHelp("q/esc", "quit")),
	}
}

func (k keymap) ShortHelp() []key.Binding { return []key.Binding{k.PrevTab, k.NextTab, k.Help, k.Quit} }

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.PrevTab, k.NextTab, k.ScrollUp, k.ScrollDown},
		{k.Filter, k.ClearFilter, k.GenerateAI},
		{k.Reload, k.Help, k.Quit},
	}
}

func tableStyles() btable.Styles {
	s := btable.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderBottom(true).
		Bold(true).
		BorderForeground(lipgloss.Color("#444")).
		Foreground(lipgloss.Color("#FF1493"))
	s.Selected = s.Selected.
		Foreground(lipgloss.Color("#FFF")).
		Background(lipgloss.Color("#4A1242"))
	s.Cell = s.Cell.Foreground(lipgloss.Color("#DDD"))
	return s
}
