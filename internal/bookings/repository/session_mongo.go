package repository

import (
	"context"
	"fmt"

	"trainbook/pkg/config"
	"trainbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type mongoSessionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoSessionRepository(cfg *config.Config) ScheduleStore {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoSessionRepository{
		cfg:        cfg,
		collection: db.Collection(SessionsCollectionName),
	}
}

func (r *mongoSessionRepository) AllSessions(ctx context.Context) ([]*model.Session, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "created_at", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find sessions: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	sessions := []*model.Session{}
	if err := cursor.All(ctx, &sessions); err != nil {
		return nil, fmt.Errorf("failed to decode sessions: %w", err)
	}

	return readableSessions(r.cfg.Log, sessions), nil
}

func (r *mongoSessionRepository) Append(ctx context.Context, s *model.Session) error {
	ctx, cancel := withTimeout(ctx, r.cfg.WriteTimeout)
	defer cancel()

	if _, err := r.collection.InsertOne(ctx, s); err != nil {
		return fmt.Errorf("failed to insert session: %w", err)
	}
	return nil
}
