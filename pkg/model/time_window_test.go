package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustWindow(t *testing.T, date, start, end string) TimeWindow {
	t.Helper()
	w, err := ParseTimeWindow(date, start, end)
	require.NoError(t, err)
	return w
}

func TestParseTimeOfDay(t *testing.T) {
	tests := []struct {
		in      string
		want    TimeOfDay
		wantErr bool
	}{
		{in: "09:00", want: 540},
		{in: "18:00", want: 1080},
		{in: "00:00", want: 0},
		{in: "23:59", want: 1439},
		{in: "24:00", wantErr: true},
		{in: "9-00", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimeOfDay(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidTimeOfDay)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.in, got.String())
		})
	}
}

func TestNewTimeWindow_RejectsEmptyAndInverted(t *testing.T) {
	_, err := ParseTimeWindow("2024-01-08", "10:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = ParseTimeWindow("2024-01-08", "11:00", "10:00")
	assert.ErrorIs(t, err, ErrInvalidWindow)

	_, err = ParseTimeWindow("08.01.2024", "10:00", "11:00")
	assert.ErrorIs(t, err, ErrInvalidDate)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a    [3]string
		b    [3]string
		want bool
	}{
		{
			name: "identical windows",
			a:    [3]string{"2024-01-08", "10:00", "11:00"},
			b:    [3]string{"2024-01-08", "10:00", "11:00"},
			want: true,
		},
		{
			name: "partial overlap",
			a:    [3]string{"2024-01-08", "10:00", "11:00"},
			b:    [3]string{"2024-01-08", "10:30", "11:30"},
			want: true,
		},
		{
			name: "containment",
			a:    [3]string{"2024-01-08", "09:00", "17:00"},
			b:    [3]string{"2024-01-08", "12:00", "12:30"},
			want: true,
		},
		{
			name: "back to back",
			a:    [3]string{"2024-01-08", "09:00", "10:00"},
			b:    [3]string{"2024-01-08", "10:00", "11:00"},
			want: false,
		},
		{
			name: "same times on different dates",
			a:    [3]string{"2024-01-08", "10:00", "11:00"},
			b:    [3]string{"2024-01-09", "10:00", "11:00"},
			want: false,
		},
		{
			name: "disjoint same day",
			a:    [3]string{"2024-01-08", "09:00", "09:30"},
			b:    [3]string{"2024-01-08", "14:00", "15:00"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := mustWindow(t, tt.a[0], tt.a[1], tt.a[2])
			b := mustWindow(t, tt.b[0], tt.b[1], tt.b[2])
			assert.Equal(t, tt.want, a.Overlaps(b))
			assert.Equal(t, tt.want, b.Overlaps(a), "overlap must be symmetric")
		})
	}
}

func TestOverlaps_DifferentDatesNeverOverlap(t *testing.T) {
	times := [][2]string{{"09:00", "18:00"}, {"00:00", "23:59"}, {"10:00", "10:01"}}
	for _, x := range times {
		for _, y := range times {
			a := mustWindow(t, "2024-03-01", x[0], x[1])
			b := mustWindow(t, "2024-03-02", y[0], y[1])
			assert.False(t, a.Overlaps(b), "%s vs %s", a, b)
		}
	}
}

func TestWithinBusinessHours(t *testing.T) {
	tests := []struct {
		name  string
		date  string
		start string
		end   string
		want  bool
	}{
		{name: "full friday", date: "2024-01-12", start: "09:00", end: "18:00", want: true},
		{name: "monday morning", date: "2024-01-08", start: "10:00", end: "11:00", want: true},
		{name: "starts before nine", date: "2024-01-12", start: "08:59", end: "10:00", want: false},
		{name: "ends after six", date: "2024-01-12", start: "17:00", end: "18:01", want: false},
		{name: "saturday", date: "2024-01-13", start: "10:00", end: "11:00", want: false},
		{name: "sunday", date: "2024-01-14", start: "10:00", end: "11:00", want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := mustWindow(t, tt.date, tt.start, tt.end)
			assert.Equal(t, tt.want, w.WithinBusinessHours())
		})
	}
}

func TestTimestamps(t *testing.T) {
	w := mustWindow(t, "2024-01-08", "09:30", "11:00")
	assert.Equal(t, "2024-01-08T09:30", w.StartTimestamp())
	assert.Equal(t, "2024-01-08T11:00", w.EndTimestamp())
}

func TestNewEvent(t *testing.T) {
	s := &Session{
		ID:      "abc",
		Type:    "Fire safety",
		Room:    "A",
		Trainer: "Kovalenko",
		Date:    "2024-01-08",
		Start:   "10:00",
		End:     "11:00",
	}

	ev := NewEvent(s)
	assert.Equal(t, "Fire safety", ev.Title)
	assert.Equal(t, "2024-01-08T10:00", ev.Start)
	assert.Equal(t, "2024-01-08T11:00", ev.End)
	assert.Equal(t, "A", ev.ExtendedProps.Room)
	assert.NotNil(t, ev.ExtendedProps.Participants)
	assert.Empty(t, ev.ExtendedProps.Participants)
}
