package domain

import (
	"fmt"
	"time"
)

// Interval is a half-open span [Start, End): start inclusive, end exclusive,
// so a stay ending exactly when another begins does not conflict.
type Interval struct {
	Start time.Time
	End   time.Time
}

func NewInterval(start, end time.Time) (Interval, error) {
	if !start.Before(end) {
		return Interval{}, fmt.Errorf("%w: end date must be after start date", ErrValidation)
	}
	return Interval{Start: start, End: end}, nil
}

func (i Interval) Overlaps(other Interval) bool {
	return i.Start.Before(other.End) && other.Start.Before(i.End)
}

// Nights counts the wall-clock calendar nights covered by the interval.
// Check-in and check-out happen in fixed daily bands, so time of day is
// irrelevant, but the dates must be read in each timestamp's own offset.
func (i Interval) Nights() int {
	return int(wallDate(i.End).Sub(wallDate(i.Start)).Hours() / 24)
}

// wallDate anchors the local calendar date at UTC midnight so the
// subtraction stays exact across offsets and DST shifts.
func wallDate(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
