package model

import (
	"errors"
	"fmt"
	"time"
)

const (
	DateLayout      = "2006-01-02"
	TimeOfDayLayout = "15:04"
)

// Business hours are fixed for every room: Monday to Friday, 09:00 to 18:00.
const (
	BusinessDayStart TimeOfDay = 9 * 60
	BusinessDayEnd   TimeOfDay = 18 * 60
)

var (
	ErrInvalidDate      = errors.New("date must be in YYYY-MM-DD format")
	ErrInvalidTimeOfDay = errors.New("time must be in HH:MM 24-hour format")
	ErrInvalidWindow    = errors.New("start time must be before end time")
)

// TimeOfDay is a wall-clock time expressed as minutes since midnight.
type TimeOfDay int

func ParseTimeOfDay(s string) (TimeOfDay, error) {
	t, err := time.Parse(TimeOfDayLayout, s)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", ErrInvalidTimeOfDay, s)
	}
	return TimeOfDay(t.Hour()*60 + t.Minute()), nil
}

func (t TimeOfDay) String() string {
	return fmt.Sprintf("%02d:%02d", int(t)/60, int(t)%60)
}

// ParseDate parses a calendar date and returns it as midnight UTC.
func ParseDate(s string) (time.Time, error) {
	d, err := time.Parse(DateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q", ErrInvalidDate, s)
	}
	return d, nil
}

// TimeWindow is the half-open interval [Start, End) on a single calendar day.
type TimeWindow struct {
	Date  time.Time
	Start TimeOfDay
	End   TimeOfDay
}

func NewTimeWindow(date time.Time, start, end TimeOfDay) (TimeWindow, error) {
	if start >= end {
		return TimeWindow{}, fmt.Errorf("%w: %s-%s", ErrInvalidWindow, start, end)
	}
	y, m, d := date.Date()
	return TimeWindow{
		Date:  time.Date(y, m, d, 0, 0, 0, 0, time.UTC),
		Start: start,
		End:   end,
	}, nil
}

// ParseTimeWindow builds a window from the wire representation of a booking.
func ParseTimeWindow(date, start, end string) (TimeWindow, error) {
	d, err := ParseDate(date)
	if err != nil {
		return TimeWindow{}, err
	}
	s, err := ParseTimeOfDay(start)
	if err != nil {
		return TimeWindow{}, err
	}
	e, err := ParseTimeOfDay(end)
	if err != nil {
		return TimeWindow{}, err
	}
	return NewTimeWindow(d, s, e)
}

func (w TimeWindow) SameDate(other TimeWindow) bool {
	return w.Date.Equal(other.Date)
}

// Overlaps reports whether both windows share a date and intersect.
// Back-to-back windows (one ends when the other starts) do not overlap.
func (w TimeWindow) Overlaps(other TimeWindow) bool {
	if !w.SameDate(other) {
		return false
	}
	return !(w.End <= other.Start || w.Start >= other.End)
}

func (w TimeWindow) WithinBusinessHours() bool {
	switch w.Date.Weekday() {
	case time.Saturday, time.Sunday:
		return false
	}
	return w.Start >= BusinessDayStart && w.End <= BusinessDayEnd
}

func (w TimeWindow) DateString() string {
	return w.Date.Format(DateLayout)
}

func (w TimeWindow) StartTimestamp() string {
	return w.DateString() + "T" + w.Start.String()
}

func (w TimeWindow) EndTimestamp() string {
	return w.DateString() + "T" + w.End.String()
}

func (w TimeWindow) String() string {
	return fmt.Sprintf("%s %s-%s", w.DateString(), w.Start, w.End)
}
