// Package biztime holds the time conventions of the service: storage and
// transport use UTC, calendar dates are plain YYYY-MM-DD strings, and every
// component that stamps a time takes a Clock so tests can pin it.
package biztime

import (
	"fmt"
	"strings"
	"time"
)

// DateLayout is the wire and storage format of calendar dates.
const DateLayout = "2006-01-02"

// Clock allows injecting time into use cases and repositories.
type Clock interface {
	Now() time.Time
}

type systemClock struct{}

// NewSystemClock returns a clock backed by time.Now in UTC.
func NewSystemClock() Clock {
	return systemClock{}
}

func (systemClock) Now() time.Time {
	return time.Now().UTC()
}

type fixedClock struct {
	now time.Time
}

// NewFixedClock returns a clock that always reports t.
func NewFixedClock(t time.Time) Clock {
	return fixedClock{now: t.UTC()}
}

func (f fixedClock) Now() time.Time {
	return f.now
}

// NowUTC returns current time in UTC.
func NowUTC() time.Time {
	return time.Now().UTC()
}

// ParseDate validates a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(DateLayout, strings.TrimSpace(s))
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: expected %s", s, DateLayout)
	}
	return t, nil
}

// ToMillis converts t to unix milliseconds, the persisted timestamp form.
func ToMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

// FromMillis converts persisted unix milliseconds back to a UTC time.
func FromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// Period is a trailing reporting window.
type Period string

const (
	PeriodDay   Period = "day"
	PeriodWeek  Period = "week"
	PeriodMonth Period = "month"
)

// ParsePeriod defaults to a day for an empty value.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodDay, nil
	case PeriodDay, PeriodWeek, PeriodMonth:
		return p, nil
	default:
		return "", fmt.Errorf("invalid period %q", s)
	}
}

// Since returns the start of the trailing window that ends at now.
func (p Period) Since(now time.Time) time.Time {
	switch p {
	case PeriodWeek:
		return now.AddDate(0, 0, -7)
	case PeriodMonth:
		return now.AddDate(0, -1, 0)
	default:
		return now.Add(-24 * time.Hour)
	}
}
