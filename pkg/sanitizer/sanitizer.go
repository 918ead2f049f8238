package sanitizer

import (
	"strings"

	"trainbook/pkg/model"
)

// SanitizeCandidate normalizes the free-text fields of a booking request in place.
// Participants are left raw; SplitIDs handles them.
func SanitizeCandidate(c *model.CandidateBooking) {
	if c == nil {
		return
	}
	c.Type = NormalizeSessionType(c.Type)
	c.Room = NormalizeRoom(c.Room)
	c.Trainer = NormalizeTrainer(c.Trainer)
	c.Date = strings.TrimSpace(c.Date)
	c.Start = strings.TrimSpace(c.Start)
	c.End = strings.TrimSpace(c.End)
}
