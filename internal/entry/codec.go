package entry

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"
)

// StoredLayout is the exact date format of persisted records, e.g.
// 2024-03-07T12:00:00.000Z.
const StoredLayout = "2006-01-02T15:04:05.000Z"

type record struct {
	Date   string  `json:"date"`
	Mood   int     `json:"mood"`
	Stress int     `json:"stress"`
	Sleep  float64 `json:"sleep"`
	Notes  string  `json:"notes"`
}

func (e Entry) MarshalJSON() ([]byte, error) {
	return json.Marshal(record{
		Date:   e.Date.UTC().Format(StoredLayout),
		Mood:   e.Mood,
		Stress: e.Stress,
		Sleep:  e.Sleep,
		Notes:  e.Notes,
	})
}

func (e *Entry) UnmarshalJSON(data []byte) error {
	var r record
	if err := json.Unmarshal(data, &r); err != nil {
		return err
	}
	date, err := parseStoredDate(r.Date)
	if err != nil {
		return err
	}
	*e = Entry{
		Date:   date,
		Mood:   r.Mood,
		Stress: r.Stress,
		Sleep:  r.Sleep,
		Notes:  r.Notes,
	}
	return nil
}

func parseStoredDate(s string) (time.Time, error) {
	if s == "" {
		return time.Time{}, errors.New("entry: missing date")
	}
	if len(s) == len(DayLayout) {
		d, err := time.Parse(DayLayout, s)
		if err != nil {
			return time.Time{}, fmt.Errorf("entry: bad date %q: %w", s, err)
		}
		return Midday(d), nil
	}
	t, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("entry: bad date %q: %w", s, err)
	}
	// An offset timestamp keys on the date as written, so
	// 2024-03-07T00:30:00+05:00 stays on Mar 7.
	if _, offset := t.Zone(); offset != 0 {
		return Midday(t), nil
	}
	return t.UTC(), nil
}

// Encode serializes the collection into the persisted array layout.
func Encode(entries []Entry) ([]byte, error) {
	if entries == nil {
		entries = []Entry{}
	}
	return json.Marshal(entries)
}

// Decode parses a persisted array. Any malformed record fails the whole
// document.
func Decode(data []byte) ([]Entry, error) {
	var entries []Entry
	if err := json.Unmarshal(data, &entries); err != nil {
		return nil, fmt.Errorf("entry: decode: %w", err)
	}
	if entries == nil {
		entries = []Entry{}
	}
	return entries, nil
}
