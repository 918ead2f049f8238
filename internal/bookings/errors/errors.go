package errors

import (
	"errors"
	"fmt"
)

var (
	ErrMalformedInput = errors.New("malformed input")

	ErrOutOfHours = errors.New("session is outside business hours")

	ErrRoomConflict = errors.New("room is already booked for an overlapping session")

	ErrParticipantConflict = errors.New("participant is already booked for an overlapping session")

	ErrStore = errors.New("schedule store failure")

	ErrLockTimeout = errors.New("timed out waiting for the schedule lock")
)

type ConflictKind int

const (
	OutOfHours ConflictKind = iota + 1
	RoomConflict
	ParticipantConflict
)

func (k ConflictKind) String() string {
	switch k {
	case OutOfHours:
		return "out_of_hours"
	case RoomConflict:
		return "room_conflict"
	case ParticipantConflict:
		return "participant_conflict"
	default:
		return "unknown"
	}
}

// ConflictError is the first constraint a candidate booking violated.
type ConflictError struct {
	Kind          ConflictKind
	ParticipantID string
}

func (e *ConflictError) Error() string {
	switch e.Kind {
	case OutOfHours:
		return "Invalid time/day"
	case RoomConflict:
		return "Room conflict"
	case ParticipantConflict:
		return fmt.Sprintf("Participant %s busy", e.ParticipantID)
	default:
		return "Scheduling conflict"
	}
}

func (e *ConflictError) Is(target error) bool {
	switch target {
	case ErrOutOfHours:
		return e.Kind == OutOfHours
	case ErrRoomConflict:
		return e.Kind == RoomConflict
	case ErrParticipantConflict:
		return e.Kind == ParticipantConflict
	}
	return false
}

func NewOutOfHours() *ConflictError {
	return &ConflictError{Kind: OutOfHours}
}

func NewRoomConflict() *ConflictError {
	return &ConflictError{Kind: RoomConflict}
}

func NewParticipantConflict(participantID string) *ConflictError {
	return &ConflictError{Kind: ParticipantConflict, ParticipantID: participantID}
}
