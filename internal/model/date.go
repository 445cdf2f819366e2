package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// DateLayout is the calendar format tasks are filed under.
const DateLayout = "2006-01-02"

var ErrInvalidDate = errors.New("model: invalid calendar date")

// Today returns the local calendar date of now.
func Today(now time.Time) string {
	return now.Format(DateLayout)
}

func ParseDate(raw string) (time.Time, error) {
	tm, err := time.ParseInLocation(DateLayout, strings.TrimSpace(raw), time.Local)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, raw)
	}
	return tm, nil
}

// ShiftDate returns the calendar date days after base. Month and year
// rollover come from time.AddDate.
func ShiftDate(base string, days int) (string, error) {
	tm, err := ParseDate(base)
	if err != nil {
		return "", err
	}
	return tm.AddDate(0, 0, days).Format(DateLayout), nil
}

// DateLabel renders a stored date for display, e.g. "15 Oct 2026".
// Unparseable values are shown as stored.
func DateLabel(raw string) string {
	tm, err := ParseDate(raw)
	if err != nil {
		return raw
	}
	return tm.Format("02 Jan 2006")
}
