package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"go.uber.org/zap"

	"github.com/mattwhite/welltrack/internal/ai"
	"github.com/mattwhite/welltrack/internal/config"
	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/journal"
	"github.com/mattwhite/welltrack/internal/kv"
	"github.com/mattwhite/welltrack/internal/logform"
	"github.com/mattwhite/welltrack/internal/logging"
	"github.com/mattwhite/welltrack/internal/onboarding"
	"github.com/mattwhite/welltrack/internal/report"
	"github.com/mattwhite/welltrack/internal/reportui"
)

func printHelp() {
	fmt.Println("🌿 WellTrack - A daily mood, stress and sleep log")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  welltrack              Log today's entry")
	fmt.Println("  welltrack add          Log an entry without the form")
	fmt.Println("                         -date YYYY-MM-DD -mood 1-5 -stress 1-5 -sleep HOURS -notes TEXT")
	fmt.Println("  welltrack report       View the monthly report dashboard")
	fmt.Println("  welltrack history      Print recent entries (-date YYYY-MM-DD for one day)")
	fmt.Println()
	fmt.Println("AI Commands (requires API key):")
	fmt.Println("  welltrack insights     Get a narrative of your monthly report")
	fmt.Println("  welltrack onboard      Set up AI features (API key)")
	fmt.Println()
	fmt.Println("Other:")
	fmt.Println("  welltrack help         Show this help message")
	fmt.Println()
	fmt.Println("Settings live in ~/welltrack/config.toml (override with WELLTRACK_HOME).")
}

func fatal(err error) {
	fmt.Printf("Error: %v\n", err)
	os.Exit(1)
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		fatal(err)
	}

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "help", "--help", "-h":
			printHelp()
			return
		case "onboard":
			if err := onboarding.Run(cfg.Home, os.Stdin, os.Stdout); err != nil {
				fatal(err)
			}
			return
		}
	}

	if len(os.Args) == 1 && firstRun(cfg) && onboarding.NeedsOnboarding(cfg) && onboarding.IsTerminal(os.Stdin) {
		fmt.Println("🌿 Welcome to WellTrack!")
		fmt.Println("\nIt looks like this is your first time running WellTrack.")
		fmt.Println("Would you like to set up AI features? (You can do this later with 'welltrack onboard')")
		fmt.Print("\nPress Enter to continue or Ctrl+C to skip: ")
		fmt.Scanln()
		if err := onboarding.RunOnboarding(cfg.Home); err != nil {
			fmt.Printf("Setup error: %v\n", err)
		}
		if err := writeDefaultConfig(cfg.Home); err != nil {
			fmt.Printf("Setup error: %v\n", err)
		}
	}

	logger, err := logging.New(cfg.Log.Level, cfg.LogPath())
	if err != nil {
		logger = logging.Nop()
	}
	defer func() { _ = logger.Sync() }()

	store, err := kv.Open(cfg.Storage.Backend, cfg.DataDir(), cfg.Storage.DSN)
	if err != nil {
		logger.Errorw("open storage", "backend", cfg.Storage.Backend, "error", err)
		fatal(err)
	}
	defer store.Close()
	repo := journal.New(store, logger)

	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "add":
			if err := runAdd(repo, os.Args[2:], os.Stdout, time.Now()); err != nil {
				fatal(err)
			}
			return
		case "history":
			if err := runHistory(repo, os.Args[2:], os.Stdout); err != nil {
				fatal(err)
			}
			return
		case "report":
			p := tea.NewProgram(reportui.New(repo, newCompleter(cfg, logger), logger), tea.WithAltScreen())
			if _, err := p.Run(); err != nil {
				fatal(err)
			}
			return
		case "insights":
			if err := runInsights(repo, cfg, os.Stdout); err != nil {
				fatal(err)
			}
			return
		default:
			fmt.Printf("Unknown command: %s\n\n", os.Args[1])
			printHelp()
			os.Exit(1)
		}
	}

	p := tea.NewProgram(logform.New(repo, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fatal(err)
	}
}

func firstRun(cfg *config.Config) bool {
	_, err := os.Stat(cfg.Path())
	return os.IsNotExist(err)
}

// writeDefaultConfig leaves a config.toml behind so the welcome prompt only
// shows once, even when onboarding was skipped.
func writeDefaultConfig(home string) error {
	fileCfg, err := config.ReadFile(home)
	if err != nil {
		return err
	}
	if _, err := os.Stat(fileCfg.Path()); err == nil {
		return nil
	}
	return fileCfg.Save()
}

// newCompleter returns nil when no API key is configured; the dashboard
// then explains how to add one.
func newCompleter(cfg *config.Config, logger *zap.SugaredLogger) ai.Completer {
	c, err := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		logger.Debugw("ai disabled", "reason", err)
		return nil
	}
	return c
}

func runAdd(repo journal.Repository, args []string, out io.Writer, now time.Time) error {
	fs := flag.NewFlagSet("add", flag.ContinueOnError)
	fs.SetOutput(out)
	day := fs.String("date", now.Format(entry.DayLayout), "entry date, YYYY-MM-DD")
	mood := fs.Int("mood", 0, "mood from 1 (bad) to 5 (excellent)")
	stress := fs.Int("stress", 3, "stress from 1 to 5")
	sleep := fs.Float64("sleep", -1, "hours slept")
	notes := fs.String("notes", "", "free-form notes")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *mood == 0 {
		return errors.New("please select a mood with -mood 1..5")
	}
	if *sleep < 0 {
		return errors.New("please give the hours slept with -sleep")
	}
	e, err := entry.New(*day, *mood, *stress, *sleep, *notes)
	if err != nil {
		return err
	}
	if e.Day() > now.Format(entry.DayLayout) {
		return fmt.Errorf("%w: %s is in the future", entry.ErrInvalidEntry, e.Day())
	}

	if err := repo.Append(e); err != nil {
		if errors.Is(err, journal.ErrDuplicateDate) {
			return fmt.Errorf("An entry for %s already exists. Please choose a different date.", entry.FormatShort(e.Date))
		}
		return err
	}
	fmt.Fprintf(out, "✅ Entry saved for %s!\n", entry.FormatShort(e.Date))
	return nil
}

func runHistory(repo journal.Repository, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("history", flag.ContinueOnError)
	fs.SetOutput(out)
	day := fs.String("date", "", "show only this date, YYYY-MM-DD")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if *day != "" {
		if _, err := entry.ParseDay(*day); err != nil {
			return err
		}
	}
	entries := report.History(repo.LoadAll(), *day)

	switch {
	case *day == "":
		fmt.Fprintln(out, reportui.AllRecentText)
	case len(entries) > 0:
		fmt.Fprintf(out, "Showing entry for %s.\n", entry.FormatDay(*day))
	default:
		fmt.Fprintf(out, "No entry found for %s.\n", entry.FormatDay(*day))
	}
	if len(entries) == 0 {
		fmt.Fprintln(out, reportui.EmptyHistoryText)
		return nil
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers("Date", "Mood", "Stress", "Sleep (hrs)", "Notes")
	for _, e := range entries {
		t.Row(entry.FormatShort(e.Date), entry.MoodLabel(e.Mood), entry.StressLabel(e.Stress), fmt.Sprintf("%g", e.Sleep), e.Notes)
	}
	fmt.Fprintln(out, t.Render())
	return nil
}

func runInsights(repo journal.Repository, cfg *config.Config, out io.Writer) error {
	r, err := report.Build(repo.LoadAll(), time.Now())
	if errors.Is(err, report.ErrInsufficientData) {
		fmt.Fprintln(out, report.InsufficientSummaryText)
		return nil
	}
	if err != nil {
		return err
	}

	client, err := ai.NewClient(cfg.AI.APIKey, cfg.AI.Model)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "🔮 Reading your month...")
	ctx, cancel := context.WithTimeout(context.Background(), 90*time.Second)
	defer cancel()
	text, err := ai.NarrateReport(ctx, client, r)
	if err != nil {
		return err
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, text)
	return nil
}
