package validator

import (
	"slices"

	bookingserrors "trainbook/internal/bookings/errors"
	"trainbook/pkg/model"
)

// Candidate is the part of a booking that takes part in conflict detection.
type Candidate struct {
	Window         model.TimeWindow
	Room           string
	ParticipantIDs []string
}

// CheckConflicts decides whether candidate can join existing. It returns nil or
// the first violated constraint as a *ConflictError. Trainers are not checked.
// Stores drop sessions with unreadable windows before they get here; any left
// are ignored.
func CheckConflicts(candidate Candidate, existing []*model.Session) error {
	if !candidate.Window.WithinBusinessHours() {
		return bookingserrors.NewOutOfHours()
	}

	date := candidate.Window.DateString()
	for _, s := range existing {
		if s.Date != date {
			continue
		}
		window, err := s.Window()
		if err != nil {
			continue
		}
		if !window.Overlaps(candidate.Window) {
			continue
		}
		if s.Room == candidate.Room {
			return bookingserrors.NewRoomConflict()
		}
		for _, id := range candidate.ParticipantIDs {
			if slices.Contains(s.ParticipantIDs, id) {
				return bookingserrors.NewParticipantConflict(id)
			}
		}
	}

	return nil
}
