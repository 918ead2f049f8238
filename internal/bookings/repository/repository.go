package repository

import (
	"context"
	"time"

	"trainbook/pkg/logger"
	"trainbook/pkg/model"

	"go.mongodb.org/mongo-driver/mongo"
)

const (
	SessionsCollectionName     = "Sessions"
	ParticipantsCollectionName = "Participants"
	SessionLocksCollectionName = "Session_locks"
)

// ScheduleStore holds the booked sessions in insertion order.
type ScheduleStore interface {
	// AllSessions returns a fresh snapshot; callers may keep or modify it.
	AllSessions(ctx context.Context) ([]*model.Session, error)
	// Append stores s as the last session. Either the whole session is stored or nothing is.
	Append(ctx context.Context, s *model.Session) error
}

// ParticipantLookup resolves roster IDs to full names.
type ParticipantLookup interface {
	Resolve(ctx context.Context, id string) (fullName string, ok bool, err error)
	// ResolveAll returns the names of the known ids, in order. Unknown ids are skipped.
	ResolveAll(ctx context.Context, ids []string) ([]string, error)
}

// resolveNames keeps the order of ids and drops those missing from names.
func resolveNames(ids []string, names map[string]string) []string {
	resolved := make([]string, 0, len(ids))
	for _, id := range ids {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		}
	}
	return resolved
}

// readableSessions drops sessions whose window does not parse, logging each
// one. Conflict checks cannot compare against them.
func readableSessions(log *logger.Logger, sessions []*model.Session) []*model.Session {
	readable := sessions[:0]
	for _, s := range sessions {
		if _, err := s.Window(); err != nil {
			log.Warn("Skipping unreadable session",
				"id", s.ID,
				"date", s.Date,
				"start", s.Start,
				"end", s.End,
				"error", err,
			)
			continue
		}
		readable = append(readable, s)
	}
	return readable
}

// withTimeout bounds ctx by timeout unless it already has an earlier deadline.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if _, ok := ctx.(mongo.SessionContext); ok {
		return ctx, func() {}
	}

	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}

	return context.WithTimeout(ctx, timeout)
}
