package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	bookingserrors "trainbook/internal/bookings/errors"
	"trainbook/internal/bookings/publisher"
	"trainbook/internal/bookings/repository"
	"trainbook/internal/bookings/validator"
	apperrors "trainbook/pkg/errors"
	"trainbook/pkg/logger"
	"trainbook/pkg/model"
	"trainbook/pkg/sanitizer"

	"github.com/google/uuid"
)

const (
	malformedInputPrefix = "Malformed input: "

	// DefaultPublishTimeout bounds one event publication, retries included.
	DefaultPublishTimeout = 10 * time.Second
)

type BookingService interface {
	Book(ctx context.Context, candidate *model.CandidateBooking) (*model.Session, error)
	Events(ctx context.Context) ([]*model.Event, error)
	// Drain waits for event publications started by Book.
	Drain(ctx context.Context) error
}

type bookingService struct {
	store     repository.ScheduleStore
	roster    repository.ParticipantLookup
	locker    repository.SessionLocker
	publisher publisher.SessionPublisher
	validator *validator.BookingValidator
	log       *logger.Logger
	now       func() time.Time
	newID     func() string

	publishTimeout time.Duration
	publishing     sync.WaitGroup
}

func NewBookingService(
	store repository.ScheduleStore,
	roster repository.ParticipantLookup,
	locker repository.SessionLocker,
	publisher publisher.SessionPublisher,
	validator *validator.BookingValidator,
	log *logger.Logger,
) BookingService {
	return &bookingService{
		store:     store,
		roster:    roster,
		locker:    locker,
		publisher: publisher,
		validator: validator,
		log:       log,
		now:       time.Now,
		newID:     uuid.NewString,

		publishTimeout: DefaultPublishTimeout,
	}
}

func (s *bookingService) Book(ctx context.Context, candidate *model.CandidateBooking) (*model.Session, error) {
	if candidate == nil {
		return nil, apperrors.InvalidInput(malformedInputPrefix + "empty booking")
	}

	sanitizer.SanitizeCandidate(candidate)
	window, err := s.validate(candidate)
	if err != nil {
		return nil, err
	}
	ids := sanitizer.SplitIDs(candidate.Participants)

	session, err := s.bookLocked(ctx, candidate, window, ids)
	if err != nil {
		return nil, err
	}

	s.log.Info("Session booked",
		"id", session.ID,
		"type", session.Type,
		"room", session.Room,
		"trainer", session.Trainer,
		"window", window.String(),
		"participants", len(session.ParticipantIDs),
	)

	s.publishBooked(ctx, session)

	return session, nil
}

// publishBooked sends the event in the background. The session is already
// stored, so the request neither waits for the broker nor cancels the send.
func (s *bookingService) publishBooked(ctx context.Context, session *model.Session) {
	event := *session
	s.publishing.Add(1)
	go func() {
		defer s.publishing.Done()

		ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.publishTimeout)
		defer cancel()

		if err := s.publisher.PublishBooked(ctx, &event); err != nil {
			s.log.Warn("Failed to publish booked session", "id", event.ID, "error", err)
		}
	}()
}

func (s *bookingService) Drain(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.publishing.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("pending session events not published: %w", ctx.Err())
	}
}

// bookLocked runs the read, check and append steps under the schedule lock.
func (s *bookingService) bookLocked(ctx context.Context, candidate *model.CandidateBooking, window model.TimeWindow, ids []string) (*model.Session, error) {
	release, err := s.locker.Acquire(ctx)
	if err != nil {
		if errors.Is(err, bookingserrors.ErrLockTimeout) {
			s.log.Warn("Timed out waiting for schedule lock", "error", err)
			return nil, apperrors.Timeout("Schedule is busy, please try again")
		}
		s.log.Error("Failed to acquire schedule lock", "error", err)
		return nil, apperrors.Internal("Failed to lock schedule", err)
	}
	defer release()

	existing, err := s.store.AllSessions(ctx)
	if err != nil {
		s.log.Error("Failed to read schedule", "error", err)
		return nil, apperrors.Internal("Failed to read schedule", err)
	}

	conflict := validator.CheckConflicts(validator.Candidate{
		Window:         window,
		Room:           candidate.Room,
		ParticipantIDs: ids,
	}, existing)
	if conflict != nil {
		s.log.Warn("Booking rejected",
			"reason", conflict.Error(),
			"room", candidate.Room,
			"window", window.String(),
		)
		return nil, apperrors.SchedulingConflict(conflict.Error(), conflict)
	}

	names, err := s.roster.ResolveAll(ctx, ids)
	if err != nil {
		s.log.Error("Failed to resolve participants", "error", err)
		return nil, apperrors.Internal("Failed to resolve participants", err)
	}

	session := &model.Session{
		ID:               s.newID(),
		Type:             candidate.Type,
		Room:             candidate.Room,
		Trainer:          candidate.Trainer,
		Date:             window.DateString(),
		Start:            window.Start.String(),
		End:              window.End.String(),
		ParticipantIDs:   ids,
		ParticipantNames: names,
		CreatedAt:        s.now().UTC().Truncate(time.Millisecond),
	}

	if err := s.store.Append(ctx, session); err != nil {
		s.log.Error("Failed to store session", "error", err)
		return nil, apperrors.Internal("Failed to save session", fmt.Errorf("%w: %w", bookingserrors.ErrStore, err))
	}

	return session, nil
}

// validate checks field formats and returns the parsed window. Every failure
// is a MalformedInput.
func (s *bookingService) validate(candidate *model.CandidateBooking) (model.TimeWindow, error) {
	if err := s.validator.Validate(candidate); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return model.TimeWindow{}, malformed(validationErrs.Messages(), validationErrs.Details(), err)
		}
		return model.TimeWindow{}, malformed(err.Error(), nil, err)
	}

	window, err := model.ParseTimeWindow(candidate.Date, candidate.Start, candidate.End)
	if err != nil {
		return model.TimeWindow{}, malformed(err.Error(), nil, err)
	}
	return window, nil
}

func malformed(detail string, details map[string]any, err error) error {
	appErr := apperrors.Validation(malformedInputPrefix+detail, details)
	appErr.Err = fmt.Errorf("%w: %w", bookingserrors.ErrMalformedInput, err)
	return appErr
}

func (s *bookingService) Events(ctx context.Context) ([]*model.Event, error) {
	sessions, err := s.store.AllSessions(ctx)
	if err != nil {
		s.log.Error("Failed to read schedule", "error", err)
		return nil, apperrors.Internal("Failed to read schedule", err)
	}

	events := make([]*model.Event, 0, len(sessions))
	for _, session := range sessions {
		events = append(events, model.NewEvent(session))
	}
	return events, nil
}
