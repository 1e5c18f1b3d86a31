// Package onboarding stores the Anthropic API key in config.toml, either
// through a small form or, when stdin is not a terminal, a single prompt.
package onboarding

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"

	"github.com/mattwhite/welltrack/internal/config"
)

const keyPrefix = "sk-ant-"

var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#FF1493"))
	keyStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#7FDBFF"))
	valueStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("#DDD"))
	hintStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#777")).Italic(true)
	errStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF6B6B"))
	doneStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("42")).Bold(true)
	panelStyle  = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#444")).
			Padding(0, 2)
)

// Model edits the ai.api_key setting of one welltrack home.
type Model struct {
	cfg   *config.Config
	input textinput.Model
	err   error
	saved bool
}

func NewModel(home string) Model {
	cfg, err := config.ReadFile(home)
	if err != nil {
		cfg = config.Default(home)
	}

	in := textinput.New()
	in.Prompt = "ai.api_key = "
	in.PromptStyle = keyStyle
	in.Placeholder = keyPrefix + "..."
	in.EchoMode = textinput.EchoPassword
	in.EchoCharacter = '•'
	in.CharLimit = 200
	in.Width = 48
	in.Focus()

	return Model{cfg: cfg, input: in, err: err}
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if k, ok := msg.(tea.KeyMsg); ok {
		switch k.Type {
		case tea.KeyCtrlC, tea.KeyEsc:
			return m, tea.Quit
		case tea.KeyEnter:
			value := strings.TrimSpace(m.input.Value())
			if value == "" {
				return m, nil
			}
			if m.err = SaveAPIKey(m.cfg.Home, value); m.err != nil {
				return m, nil
			}
			m.cfg.AI.APIKey = value
			m.saved = true
			return m, tea.Quit
		}
	}
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// maskKey keeps only the last four characters of a stored key visible.
func maskKey(k string) string {
	if k == "" {
		return "(not set)"
	}
	if len(k) <= 4 {
		return strings.Repeat("•", len(k))
	}
	return strings.Repeat("•", 8) + k[len(k)-4:]
}

func (m Model) setting(name, value string) string {
	return keyStyle.Render(fmt.Sprintf("%-16s", name)) + valueStyle.Render(value)
}

func (m Model) View() string {
	if m.saved {
		return doneStyle.Render(fmt.Sprintf("\n✅ ai.api_key saved to %s\n", m.cfg.Path())) +
			hintStyle.Render("Try 'welltrack insights' or the AI Insights tab in 'welltrack report'.\n\n")
	}

	current := lipgloss.JoinVertical(lipgloss.Left,
		m.setting("storage.backend", m.cfg.Storage.Backend),
		m.setting("ai.model", m.cfg.AI.Model),
		m.setting("ai.api_key", maskKey(m.cfg.AI.APIKey)),
	)

	var b strings.Builder
	b.WriteString(headerStyle.Render("🌿 WellTrack AI setup"))
	b.WriteString("\n\n")
	b.WriteString(hintStyle.Render("Settings file: " + m.cfg.Path()))
	b.WriteString("\n")
	b.WriteString(panelStyle.Render(current))
	b.WriteString("\n\n")
	b.WriteString(m.input.View())
	b.WriteString("\n")
	if v := strings.TrimSpace(m.input.Value()); v != "" && !strings.HasPrefix(v, keyPrefix) {
		b.WriteString(hintStyle.Render("Anthropic keys usually start with " + keyPrefix))
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString(errStyle.Render(fmt.Sprintf("Error: %v", m.err)))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(hintStyle.Render("enter save • esc skip • ANTHROPIC_API_KEY overrides this file"))
	return b.String()
}

// SaveAPIKey stores the key in home/config.toml, keeping the other settings.
func SaveAPIKey(home, apiKey string) error {
	cfg, err := config.ReadFile(home)
	if err != nil {
		return err
	}
	cfg.AI.APIKey = strings.TrimSpace(apiKey)
	return cfg.Save()
}

func NeedsOnboarding(cfg *config.Config) bool {
	return cfg.AI.APIKey == ""
}

// Run uses the form on a terminal and the line prompt otherwise, so piped
// input such as `echo $KEY | welltrack onboard` still works.
func Run(home string, in *os.File, out io.Writer) error {
	if IsTerminal(in) {
		return RunOnboarding(home)
	}
	return RunCLIOnboarding(home, in, out)
}

func IsTerminal(f *os.File) bool {
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

func RunOnboarding(home string) error {
	_, err := tea.NewProgram(NewModel(home)).Run()
	return err
}

// RunCLIOnboarding reads one line from in and saves it as the API key. A
// blank line skips setup.
func RunCLIOnboarding(home string, in io.Reader, out io.Writer) error {
	fmt.Fprintf(out, "WellTrack AI setup (settings file: %s)\n", config.Default(home).Path())
	fmt.Fprint(out, "ai.api_key (blank to skip): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && err != io.EOF {
		return err
	}
	key := strings.TrimSpace(line)
	if key == "" {
		fmt.Fprintln(out, "\nSkipped. Run 'welltrack onboard' or set ANTHROPIC_API_KEY later.")
		return nil
	}
	if err := SaveAPIKey(home, key); err != nil {
		return fmt.Errorf("failed to save API key: %w", err)
	}
	fmt.Fprintln(out, "\n✅ API key saved successfully!")
	return nil
}
