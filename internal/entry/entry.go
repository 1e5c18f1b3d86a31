package entry

import (
	"errors"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// DayLayout is the calendar-date key used for uniqueness and lookups.
const DayLayout = "2006-01-02"

// MiddayHour pins every entry to 12:00 UTC so a calendar date never drifts
// across a timezone boundary.
const MiddayHour = 12

var ErrInvalidEntry = errors.New("entry: invalid entry")

var validate = newValidator()

// newValidator adds the "finite" tag, which rejects NaN and ±Inf.
func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Entry is one day's wellness record.
type Entry struct {
	Date   time.Time `validate:"required"`
	Mood   int       `validate:"gte=1,lte=5"`
	Stress int       `validate:"gte=1,lte=5"`
	Sleep  float64   `validate:"finite,gte=0"`
	Notes  string
}

// New builds an entry for the given YYYY-MM-DD day.
func New(day string, mood, stress int, sleep float64, notes string) (Entry, error) {
	date, err := ParseDay(day)
	if err != nil {
		return Entry{}, err
	}
	e := Entry{
		Date:   date,
		Mood:   mood,
		Stress: stress,
		Sleep:  sleep,
		Notes:  strings.TrimSpace(notes),
	}
	if err := Validate(e); err != nil {
		return Entry{}, err
	}
	return e, nil
}

// ParseDay parses a YYYY-MM-DD string into the stored midday UTC instant.
func ParseDay(day string) (time.Time, error) {
	d, err := time.Parse(DayLayout, strings.TrimSpace(day))
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: date %q: expected YYYY-MM-DD", ErrInvalidEntry, day)
	}
	return Midday(d), nil
}

// Midday returns 12:00 UTC on t's calendar date.
func Midday(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), MiddayHour, 0, 0, 0, time.UTC)
}

// Day returns the calendar-date key of the entry.
func (e Entry) Day() string {
	return e.Date.UTC().Format(DayLayout)
}

// Validate checks mood, stress and sleep ranges.
func Validate(e Entry) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidEntry, err)
	}
	return nil
}

// InRange reports whether mood and stress sit on their 1-5 scales.
func (e Entry) InRange() bool {
	return e.Mood >= 1 && e.Mood <= 5 && e.Stress >= 1 && e.Stress <= 5
}
