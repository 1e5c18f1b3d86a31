package logform

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/journal"
)

// MessageTimeout is how long a status line stays on screen.
const MessageTimeout = 3 * time.Second

const defaultStress = 3

type field int

const (
	fieldDate field = iota
	fieldMood
	fieldStress
	fieldSleep
	fieldNotes
	fieldCount
)

type Model struct {
	repo   journal.Repository
	logger *zap.SugaredLogger
	now    func() time.Time

	date   textinput.Model
	sleep  textinput.Model
	notes  textinput.Model
	mood   int
	stress int
	focus  field

	message    string
	isError    bool
	messageSeq int

	help  help.Model
	keys  keymap
	width int
}

type clearMessageMsg struct{ seq int }

func clearMessageCmd(seq int) tea.Cmd {
	return tea.Tick(MessageTimeout, func(time.Time) tea.Msg {
		return clearMessageMsg{seq: seq}
	})
}

func New(repo journal.Repository, logger *zap.SugaredLogger) Model {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	m := Model{
		repo:   repo,
		logger: logger,
		now:    time.Now,
		help:   help.New(),
		keys:   newKeymap(),
	}

	m.date = textinput.New()
	m.date.Placeholder = entry.DayLayout
	m.date.CharLimit = len(entry.DayLayout)
	m.date.Width = 12

	m.sleep = textinput.New()
	m.sleep.Placeholder = "7.5"
	m.sleep.CharLimit = 5
	m.sleep.Width = 6

	m.notes = textinput.New()
	m.notes.Placeholder = "Anything worth remembering about today?"
	m.notes.CharLimit = 500
	m.notes.Width = 60

	m.reset()
	return m
}

// reset restores the defaults: today's date, no mood, stress 3, empty
// sleep and notes, focus on the date.
func (m *Model) reset() {
	m.date.SetValue(m.today())
	m.sleep.SetValue("")
	m.notes.SetValue("")
	m.mood = 0
	m.stress = defaultStress
	m.setFocus(fieldDate)
}

func (m Model) today() string {
	return m.now().Format(entry.DayLayout)
}

func (m *Model) setFocus(f field) {
	m.focus = f
	m.date.Blur()
	m.sleep.Blur()
	m.notes.Blur()
	switch f {
	case fieldDate:
		m.date.Focus()
	case fieldSleep:
		m.sleep.Focus()
	case fieldNotes:
		m.notes.Focus()
	}
}

func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case clearMessageMsg:
		if msg.seq == m.messageSeq {
			m.message = ""
			m.isError = false
		}
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			m.setFocus((m.focus + 1) % fieldCount)
			return m, nil
		case key.Matches(msg, m.keys.Prev):
			m.setFocus((m.focus - 1 + fieldCount) % fieldCount)
			return m, nil
		}

		switch m.focus {
		case fieldMood:
			if len(msg.Runes) == 1 && msg.Runes[0] >= '1' && msg.Runes[0] <= '5' {
				m.mood = int(msg.Runes[0] - '0')
			}
			return m, nil
		case fieldStress:
			switch {
			case key.Matches(msg, m.keys.Less):
				if m.stress > 1 {
					m.stress--
				}
			case key.Matches(msg, m.keys.More):
				if m.stress < 5 {
					m.stress++
				}
			}
			return m, nil
		}
	}

	var cmd tea.Cmd
	switch m.focus {
	case fieldDate:
		m.date, cmd = m.date.Update(msg)
	case fieldSleep:
		m.sleep, cmd = m.sleep.Update(msg)
	case fieldNotes:
		m.notes, cmd = m.notes.Update(msg)
	}
	return m, cmd
}

func (m Model) submit() (tea.Model, tea.Cmd) {
	day := strings.TrimSpace(m.date.Value())
	if day == "" {
		day = m.today()
	}

	if m.mood == 0 {
		return m.flash("Please select a mood before saving!", true)
	}
	date, err := entry.ParseDay(day)
	if err != nil {
		return m.flash("Please enter the date as YYYY-MM-DD.", true)
	}
	if date.Format(entry.DayLayout) > m.today() {
		return m.flash("Entries can't be logged for future dates.", true)
	}

	sleepText := strings.TrimSpace(m.sleep.Value())
	if sleepText == "" {
		return m.flash("Please enter how many hours you slept.", true)
	}
	sleep, err := strconv.ParseFloat(sleepText, 64)
	if err != nil {
		return m.flash(fmt.Sprintf("Sleep must be a number of hours, got %q.", sleepText), true)
	}

	e, err := entry.New(date.Format(entry.DayLayout), m.mood, m.stress, sleep, m.notes.Value())
	if err != nil {
		return m.flash(fmt.Sprintf("Could not save: %v", err), true)
	}

	err = m.repo.Append(e)
	switch {
	case errors.Is(err, journal.ErrDuplicateDate):
		return m.flash(fmt.Sprintf("An entry for %s already exists. Please choose a different date.", entry.FormatShort(e.Date)), true)
	case err != nil:
		m.logger.Errorw("save entry", "day", day, "error", err)
		return m.flash(fmt.Sprintf("Could not save: %v", err), true)
	}

	m.reset()
	return m.flash(fmt.Sprintf("Entry saved for %s!", entry.FormatShort(e.Date)), false)
}

func (m Model) flash(text string, isError bool) (tea.Model, tea.Cmd) {
	m.messageSeq++
	m.message = text
	m.isError = isError
	return m, clearMessageCmd(m.messageSeq)
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493")).MarginBottom(1)
	labelStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#888")).Width(10)
	activeStyle  = labelStyle.Foreground(lipgloss.Color("#FF1493")).Bold(true)
	chipStyle    = lipgloss.NewStyle().Padding(0, 1).Foreground(lipgloss.Color("#AAA"))
	selectedChip = chipStyle.Foreground(lipgloss.Color("#FFF")).Background(lipgloss.Color("#4A1242")).Bold(true)
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B")).Bold(true)
	dimStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#666666"))
)

func (m Model) label(f field, text string) string {
	if m.focus == f {
		return activeStyle.Render(text)
	}
	return labelStyle.Render(text)
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("🌿 Daily Wellness Log"))
	b.WriteString("\n\n")

	b.WriteString(m.label(fieldDate, "Date") + m.date.View() + "\n\n")

	var moods []string
	for v := 5; v >= 1; v-- {
		chip := fmt.Sprintf("%d %s", v, entry.MoodLabel(v))
		if v == m.mood {
			moods = append(moods, selectedChip.Render(chip))
		} else {
			moods = append(moods, chipStyle.Render(chip))
		}
	}
	b.WriteString(m.label(fieldMood, "Mood") + lipgloss.JoinHorizontal(lipgloss.Top, moods...) + "\n\n")

	slider := strings.Repeat("●", m.stress) + dimStyle.Render(strings.Repeat("○", 5-m.stress))
	b.WriteString(m.label(fieldStress, "Stress") + slider + "  " + entry.StressLabel(m.stress) + "\n\n")

	b.WriteString(m.label(fieldSleep, "Sleep") + m.sleep.View() + dimStyle.Render(" hrs") + "\n\n")
	b.WriteString(m.label(fieldNotes, "Notes") + m.notes.View() + "\n\n")

	if m.message != "" {
		if m.isError {
			b.WriteString(errorStyle.Render(m.message))
		} else {
			b.WriteString(successStyle.Render(m.message))
		}
		b.WriteString("\n\n")
	}

	b.WriteString(m.help.View(m.keys))
	return lipgloss.NewStyle().Padding(1, 2).Render(b.String())
}

type keymap struct {
	Next   key.Binding
	Prev   key.Binding
	Less   key.Binding
	More   key.Binding
	Mood   key.Binding
	Submit key.Binding
	Quit   key.Binding
}

func newKeymap() keymap {
	return keymap{
		Next:   key.NewBinding(key.WithKeys("tab", "down"), key.WithHelp("tab/↓", "next field")),
		Prev:   key.NewBinding(key.WithKeys("shift+tab", "up"), key.WithHelp("⇧tab/↑", "prev field")),
		Less:   key.NewBinding(key.WithKeys("left", "h"), key.WithHelp("←", "less stress")),
		More:   key.NewBinding(key.WithKeys("right", "l"), key.WithHelp("→", "more stress")),
		Mood:   key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "pick mood")),
		Submit: key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Quit:   key.NewBinding(key.WithKeys("esc", "ctrl+c"), key.WithHelp("esc", "quit")),
	}
}

func (k keymap) ShortHelp() []key.Binding {
	return []key.Binding{k.Next, k.Mood, k.Less, k.More, k.Submit, k.Quit}
}

func (k keymap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Next, k.Prev, k.Mood, k.Less, k.More}, {k.Submit, k.Quit}}
}
