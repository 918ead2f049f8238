package repository

import (
	"context"
	"fmt"
	"time"

	bookingserrors "trainbook/internal/bookings/errors"
	"trainbook/pkg/logger"
	"trainbook/pkg/model"

	"github.com/google/uuid"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	ScheduleLockID          = "schedule"
	DefaultLockPollInterval = 50 * time.Millisecond
)

// SessionLocker serialises the read-check-append section of a booking.
type SessionLocker interface {
	// Acquire blocks until the lock is held or ctx is done. The returned
	// release func must be called exactly once.
	Acquire(ctx context.Context) (release func(), err error)
}

type mutexLocker struct {
	sem chan struct{}
}

// NewMutexLocker serialises bookings within this process.
func NewMutexLocker() SessionLocker {
	return &mutexLocker{sem: make(chan struct{}, 1)}
}

func (l *mutexLocker) Acquire(ctx context.Context) (func(), error) {
	select {
	case l.sem <- struct{}{}:
		return func() { <-l.sem }, nil
	case <-ctx.Done():
		return nil, fmt.Errorf("%w: %w", bookingserrors.ErrLockTimeout, ctx.Err())
	}
}

type mongoLocker struct {
	repo         SessionLockRepository
	ttl          time.Duration
	pollInterval time.Duration
	log          *logger.Logger
	now          func() time.Time
}

// NewMongoLocker serialises bookings across replicas through an advisory lock
// document. A holder that dies keeps the lock for at most ttl.
func NewMongoLocker(repo SessionLockRepository, ttl time.Duration, log *logger.Logger) SessionLocker {
	return &mongoLocker{
		repo:         repo,
		ttl:          ttl,
		pollInterval: DefaultLockPollInterval,
		log:          log,
		now:          time.Now,
	}
}

func (l *mongoLocker) Acquire(ctx context.Context) (func(), error) {
	owner := uuid.NewString()

	ticker := time.NewTicker(l.pollInterval)
	defer ticker.Stop()

	for {
		now := l.now().UTC()
		lock := &model.SessionLock{
			ID:        ScheduleLockID,
			Owner:     owner,
			ExpiresAt: now.Add(l.ttl),
		}

		err := l.repo.Create(ctx, lock)
		if err == nil {
			return l.releaser(owner), nil
		}
		if !mongo.IsDuplicateKeyError(err) {
			return nil, fmt.Errorf("failed to acquire schedule lock: %w", err)
		}

		if err := l.repo.DeleteExpired(ctx, ScheduleLockID, now); err != nil {
			l.log.Warn("Failed to clear expired schedule lock", "error", err)
		}

		select {
		case <-ticker.C:
		case <-ctx.Done():
			return nil, fmt.Errorf("%w: %w", bookingserrors.ErrLockTimeout, ctx.Err())
		}
	}
}

func (l *mongoLocker) releaser(owner string) func() {
	return func() {
		ctx, cancel := context.WithTimeout(context.Background(), l.ttl)
		defer cancel()

		if err := l.repo.Delete(ctx, ScheduleLockID, owner); err != nil {
			l.log.Warn("Failed to release schedule lock",
				"lock_id", ScheduleLockID,
				"owner", owner,
				"error", err,
			)
		}
	}
}

type chainLocker struct {
	lockers []SessionLocker
}

// NewChainLocker acquires lockers in order and releases them in reverse.
func NewChainLocker(lockers ...SessionLocker) SessionLocker {
	return &chainLocker{lockers: lockers}
}

func (c *chainLocker) Acquire(ctx context.Context) (func(), error) {
	releases := make([]func(), 0, len(c.lockers))
	releaseAll := func() {
		for i := len(releases) - 1; i >= 0; i-- {
			releases[i]()
		}
	}

	for _, l := range c.lockers {
		release, err := l.Acquire(ctx)
		if err != nil {
			releaseAll()
			return nil, err
		}
		releases = append(releases, release)
	}

	return releaseAll, nil
}
