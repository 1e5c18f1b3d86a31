// Package journal owns the persisted list of daily entries.
package journal

import (
	"errors"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/mattwhite/welltrack/internal/entry"
	"github.com/mattwhite/welltrack/internal/kv"
)

// StorageKey is the key the entry array lives under.
const StorageKey = "welltrack_entries"

var ErrDuplicateDate = errors.New("journal: an entry for this date already exists")

// Repository is what the report and UI layers depend on.
type Repository interface {
	LoadAll() []entry.Entry
	Append(e entry.Entry) error
}

// Store is a Repository persisted as a single document in a kv.Store.
type Store struct {
	kv     kv.Store
	logger *zap.SugaredLogger
}

func New(store kv.Store, logger *zap.SugaredLogger) *Store {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Store{kv: store, logger: logger}
}

// LoadAll returns every entry, newest first. Unreadable or malformed data
// is treated as an empty journal.
func (s *Store) LoadAll() []entry.Entry {
	data, ok, err := s.kv.Get(StorageKey)
	if err != nil {
		s.logger.Warnf("journal: read %s: %v; treating as empty", StorageKey, err)
		return []entry.Entry{}
	}
	if !ok || len(data) == 0 {
		return []entry.Entry{}
	}

	entries, err := entry.Decode(data)
	if err != nil {
		s.logger.Warnf("journal: malformed %s: %v; treating as empty", StorageKey, err)
		return []entry.Entry{}
	}
	for _, e := range entries {
		if !e.InRange() {
			s.logger.Warnf("journal: entry %s has out-of-range values (mood=%d stress=%d)", e.Day(), e.Mood, e.Stress)
		}
	}
	SortNewestFirst(entries)
	return entries
}

// Append validates e, rejects a second entry for the same calendar date,
// and rewrites the whole collection.
func (s *Store) Append(e entry.Entry) error {
	if err := entry.Validate(e); err != nil {
		return err
	}

	entries := s.LoadAll()
	day := e.Day()
	for _, existing := range entries {
		if existing.Day() == day {
			return fmt.Errorf("%w: %s", ErrDuplicateDate, day)
		}
	}

	entries = append(entries, e)
	SortNewestFirst(entries)

	data, err := entry.Encode(entries)
	if err != nil {
		return fmt.Errorf("journal: encode: %w", err)
	}
	if err := s.kv.Set(StorageKey, data); err != nil {
		s.logger.Errorf("journal: save %s: %v", StorageKey, err)
		return fmt.Errorf("journal: save: %w", err)
	}
	s.logger.Infof("journal: saved entry for %s (%d total)", day, len(entries))
	return nil
}

// SortNewestFirst orders entries by date descending in place.
func SortNewestFirst(entries []entry.Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Date.After(entries[j].Date)
	})
}

var _ Repository = (*Store)(nil)
