package dateutil

import (
	"errors"
	"strings"
	"time"

	"github.com/araddon/dateparse"
)

var ErrInvalidDate = errors.New("invalid date")

const Layout = "2006-01-02"

// ParseDate accepts ISO dates and the looser shapes browsers send ("2024/01/05",
// "2024-01-05T00:00:00Z") and truncates to a calendar date in loc.
func ParseDate(s string, loc *time.Location) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, ErrInvalidDate
	}
	if loc == nil {
		loc = time.UTC
	}
	if t, err := time.ParseInLocation(Layout, s, loc); err == nil {
		return Truncate(t), nil
	}
	t, err := dateparse.ParseIn(s, loc)
	if err != nil {
		return time.Time{}, ErrInvalidDate
	}
	return Truncate(t.In(loc)), nil
}

// Truncate drops the time of day, keeping the calendar date as UTC midnight
func Truncate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func Format(t time.Time) string {
	return t.Format(Layout)
}

func MustParse(s string) time.Time {
	t, err := time.Parse(Layout, s)
	if err != nil {
		panic(err)
	}
	return t
}
