package model

// Event is the calendar projection of a Session.
type Event struct {
	ID            string       `json:"id"`
	Title         string       `json:"title"`
	Start         string       `json:"start"`
	End           string       `json:"end"`
	ExtendedProps EventDetails `json:"extendedProps"`
}

type EventDetails struct {
	Participants []string `json:"participants"`
	Room         string   `json:"room"`
	Trainer      string   `json:"trainer"`
}

func NewEvent(s *Session) *Event {
	names := s.ParticipantNames
	if names == nil {
		names = []string{}
	}
	return &Event{
		ID:    s.ID,
		Title: s.Type,
		Start: s.Date + "T" + s.Start,
		End:   s.Date + "T" + s.End,
		ExtendedProps: EventDetails{
			Participants: names,
			Room:         s.Room,
			Trainer:      s.Trainer,
		},
	}
}
