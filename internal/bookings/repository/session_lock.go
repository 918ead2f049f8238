package repository

import (
	"context"
	"time"

	"trainbook/pkg/config"
	"trainbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// SessionLockRepository stores advisory lock documents.
type SessionLockRepository interface {
	// Create returns a duplicate key error if the lock is already held.
	Create(ctx context.Context, lock *model.SessionLock) error
	Delete(ctx context.Context, lockID, owner string) error
	DeleteExpired(ctx context.Context, lockID string, now time.Time) error
}

type mongoSessionLockRepository struct {
	collection *mongo.Collection
}

func NewSessionLockRepository(cfg *config.Config) SessionLockRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoSessionLockRepository{
		collection: db.Collection(SessionLocksCollectionName),
	}
}

func (r *mongoSessionLockRepository) Create(ctx context.Context, lock *model.SessionLock) error {
	lock.CreatedAt = time.Now().UTC()
	_, err := r.collection.InsertOne(ctx, lock)
	return err
}

// Delete removes the lock only while owner still holds it.
func (r *mongoSessionLockRepository) Delete(ctx context.Context, lockID, owner string) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{"_id": lockID, "owner": owner})
	return err
}

// DeleteExpired clears a lock whose holder died without releasing it. The TTL
// index does the same, but only once a minute.
func (r *mongoSessionLockRepository) DeleteExpired(ctx context.Context, lockID string, now time.Time) error {
	_, err := r.collection.DeleteOne(ctx, bson.M{
		"_id":        lockID,
		"expires_at": bson.M{"$lte": now},
	})
	return err
}
