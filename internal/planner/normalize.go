package planner

import (
	"errors"
	"fmt"
	"math"
	"time"

	"marquee/internal/marathon"
)

// ErrInvalidDateRange indicates the requested schedule span resolves to less
// than one day.
var ErrInvalidDateRange = errors.New("invalid date range")

// defaultSpanDays is the schedule length assumed when no end date is given.
const defaultSpanDays = 7

// normalizedRange carries resolved dates plus the inclusive day count.
type normalizedRange struct {
	Start   time.Time
	End     time.Time
	NumDays int
}

// normalizeRange resolves missing preference dates and computes the schedule
// length. A missing start date defaults to the current date; a missing end
// date defaults to the start plus seven days. The day count is inclusive of
// both endpoints.
func normalizeRange(prefs marathon.Preferences, now time.Time) (normalizedRange, error) {
	var out normalizedRange

	start := now
	if prefs.StartDate != "" {
		parsed, err := time.Parse(marathon.DateFormat, prefs.StartDate)
		if err != nil {
			return out, fmt.Errorf("parse start date %q: %w", prefs.StartDate, err)
		}
		start = parsed
	}
	start = truncateToDate(start)

	end := start.AddDate(0, 0, defaultSpanDays)
	if prefs.EndDate != "" {
		parsed, err := time.Parse(marathon.DateFormat, prefs.EndDate)
		if err != nil {
			return out, fmt.Errorf("parse end date %q: %w", prefs.EndDate, err)
		}
		end = truncateToDate(parsed)
	}

	numDays := int(math.Ceil(end.Sub(start).Hours()/24)) + 1
	if numDays < 1 {
		return out, fmt.Errorf("%w: %s to %s spans %d days",
			ErrInvalidDateRange, start.Format(marathon.DateFormat), end.Format(marathon.DateFormat), numDays)
	}

	out.Start = start
	out.End = end
	out.NumDays = numDays
	return out, nil
}

func truncateToDate(t time.Time) time.Time {
	year, month, day := t.Date()
	return time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
}

// apply writes the resolved dates back onto a copy of the preferences so the
// prompt builders always see concrete values.
func (r normalizedRange) apply(prefs marathon.Preferences) marathon.Preferences {
	prefs.StartDate = r.Start.Format(marathon.DateFormat)
	prefs.EndDate = r.End.Format(marathon.DateFormat)
	return prefs
}
