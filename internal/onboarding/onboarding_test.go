package onboarding

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mattwhite/welltrack/internal/config"
)

func TestSaveAPIKey_KeepsOtherSettings(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	cfg.Storage.Backend = "sqlite"
	require.NoError(t, cfg.Save())

	require.NoError(t, SaveAPIKey(home, " sk-ant-123 \n"))

	got, err := config.ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-123", got.AI.APIKey)
	assert.Equal(t, "sqlite", got.Storage.Backend)
	assert.False(t, NeedsOnboarding(got))
}

func TestRunCLIOnboarding(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, RunCLIOnboarding(home, strings.NewReader("sk-ant-xyz\n"), &out))
	assert.Contains(t, out.String(), "saved successfully")
	assert.Contains(t, out.String(), filepath.Join(home, config.FileName))

	cfg, err := config.ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-xyz", cfg.AI.APIKey)
}

func TestRunCLIOnboarding_Skip(t *testing.T) {
	home := t.TempDir()
	var out bytes.Buffer
	require.NoError(t, RunCLIOnboarding(home, strings.NewReader("\n"), &out))
	assert.Contains(t, out.String(), "Skipped")

	cfg, err := config.ReadFile(home)
	require.NoError(t, err)
	assert.True(t, NeedsOnboarding(cfg))
}

func TestRun_NonTerminalUsesLinePrompt(t *testing.T) {
	home := t.TempDir()
	stdin, err := os.CreateTemp(t.TempDir(), "stdin")
	require.NoError(t, err)
	defer stdin.Close()
	_, err = stdin.WriteString("sk-ant-piped\n")
	require.NoError(t, err)
	_, err = stdin.Seek(0, 0)
	require.NoError(t, err)

	var out bytes.Buffer
	require.NoError(t, Run(home, stdin, &out))
	assert.Contains(t, out.String(), "ai.api_key (blank to skip)")

	cfg, err := config.ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-piped", cfg.AI.APIKey)
}

func TestModel_ShowsCurrentSettings(t *testing.T) {
	home := t.TempDir()
	cfg := config.Default(home)
	cfg.Storage.Backend = "sqlite"
	cfg.AI.APIKey = "sk-ant-old-abcd"
	require.NoError(t, cfg.Save())

	view := NewModel(home).View()
	assert.Contains(t, view, cfg.Path())
	assert.Contains(t, view, "sqlite")
	assert.Contains(t, view, "abcd")
	assert.NotContains(t, view, "sk-ant-old")
}

func TestModel_EnterSaves(t *testing.T) {
	home := t.TempDir()
	m := NewModel(home)
	m.input.SetValue("sk-ant-typed")

	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.True(t, next.(Model).saved)
	assert.Contains(t, next.View(), "saved to")

	cfg, err := config.ReadFile(home)
	require.NoError(t, err)
	assert.Equal(t, "sk-ant-typed", cfg.AI.APIKey)
}

func TestModel_BlankEnterIgnored(t *testing.T) {
	m := NewModel(t.TempDir())
	next, cmd := m.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
	assert.False(t, next.(Model).saved)
}

func TestMaskKey(t *testing.T) {
	assert.Equal(t, "(not set)", maskKey(""))
	assert.Equal(t, "••••••••wxyz", maskKey("sk-ant-wxyz"))
	assert.Equal(t, "•••", maskKey("abc"))
}
