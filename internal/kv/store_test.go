package kv

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseStore(t *testing.T, s Store) {
	t.Helper()

	_, ok, err := s.Get("welltrack_entries")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, s.Set("welltrack_entries", []byte(`[1]`)))
	got, ok, err := s.Get("welltrack_entries")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, `[1]`, string(got))

	require.NoError(t, s.Set("welltrack_entries", []byte(`[1,2]`)))
	got, _, err = s.Get("welltrack_entries")
	require.NoError(t, err)
	assert.Equal(t, `[1,2]`, string(got))

	assert.Error(t, s.Set("../escape", []byte(`x`)))
	_, _, err = s.Get("")
	assert.Error(t, err)
}

func TestMemory(t *testing.T) {
	exerciseStore(t, NewMemory())
}

func TestMemory_CopiesValues(t *testing.T) {
	m := NewMemory()
	buf := []byte(`abc`)
	require.NoError(t, m.Set("k", buf))
	buf[0] = 'z'
	got, _, _ := m.Get("k")
	assert.Equal(t, "abc", string(got))
}

func TestFile(t *testing.T) {
	dir := t.TempDir()
	s, err := NewFile(dir)
	require.NoError(t, err)
	exerciseStore(t, s)

	_, err = os.Stat(filepath.Join(dir, "welltrack_entries.json"))
	assert.NoError(t, err)
	_, err = os.Stat(filepath.Join(dir, "welltrack_entries.json.tmp"))
	assert.True(t, os.IsNotExist(err))
}

func TestFile_EmptyDir(t *testing.T) {
	_, err := NewFile("")
	assert.Error(t, err)
}

func TestSQLite(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "welltrack.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	exerciseStore(t, s)
}

func TestSQLite_ReopenKeepsDataAndSchema(t *testing.T) {
	path := filepath.Join(t.TempDir(), "welltrack.db")
	s, err := OpenSQLite(path)
	require.NoError(t, err)
	require.NoError(t, s.Set("k", []byte(`v`)))
	require.NoError(t, s.Close())

	s, err = OpenSQLite(path)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	got, ok, err := s.Get("k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, "v", string(got))
}

func TestPostgres(t *testing.T) {
	dsn := os.Getenv("WELLTRACK_TEST_POSTGRES_DSN")
	if dsn == "" {
		t.Skip("WELLTRACK_TEST_POSTGRES_DSN not set")
	}
	s, err := OpenPostgres(dsn)
	require.NoError(t, err)
	t.Cleanup(func() { _ = s.Close() })
	_, _ = s.pool.Exec(context.Background(), `DELETE FROM welltrack_kv WHERE key = 'welltrack_entries'`)
	exerciseStore(t, s)
}

func TestOpen(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(BackendFile, dir, "")
	require.NoError(t, err)
	assert.IsType(t, &File{}, s)

	s, err = Open(BackendMemory, dir, "")
	require.NoError(t, err)
	assert.IsType(t, &Memory{}, s)

	s, err = Open(BackendSQLite, dir, "")
	require.NoError(t, err)
	assert.IsType(t, &SQLite{}, s)
	require.NoError(t, s.Close())

	_, err = Open("redis", dir, "")
	assert.Error(t, err)
}
