package model

import "time"

type Session struct {
	ID               string    `json:"id" bson:"_id"`
	Type             string    `json:"type" bson:"type"`
	Room             string    `json:"room" bson:"room"`
	Trainer          string    `json:"trainer" bson:"trainer"`
	Date             string    `json:"date" bson:"date"`
	Start            string    `json:"start" bson:"start"`
	End              string    `json:"end" bson:"end"`
	ParticipantIDs   []string  `json:"participant_ids" bson:"participant_ids"`
	ParticipantNames []string  `json:"participant_names" bson:"participant_names"`
	CreatedAt        time.Time `json:"created_at" bson:"created_at"`
}

// Window parses the stored date and times. Stores only hand out sessions whose
// window parses, so an error here means the record was written by something else.
func (s *Session) Window() (TimeWindow, error) {
	return ParseTimeWindow(s.Date, s.Start, s.End)
}

// CandidateBooking is the unvalidated booking request as clients send it.
// Participants is the ';'-delimited ID list kept for compatibility with the form UI.
type CandidateBooking struct {
	Type         string `json:"type" validate:"required,max=200"`
	Room         string `json:"room" validate:"required,max=200"`
	Trainer      string `json:"trainer" validate:"required,max=200"`
	Date         string `json:"date" validate:"required,civil_date"`
	Start        string `json:"start" validate:"required,clock_time"`
	End          string `json:"end" validate:"required,clock_time"`
	Participants string `json:"participants" validate:"max=20000"`
}
