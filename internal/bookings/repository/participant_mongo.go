package repository

import (
	"context"
	"errors"
	"fmt"

	"trainbook/pkg/config"
	"trainbook/pkg/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

type mongoParticipantRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoParticipantRepository(cfg *config.Config) ParticipantLookup {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoParticipantRepository{
		cfg:        cfg,
		collection: db.Collection(ParticipantsCollectionName),
	}
}

func (r *mongoParticipantRepository) Resolve(ctx context.Context, id string) (string, bool, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	var participant model.Participant
	err := r.collection.FindOne(ctx, bson.M{"_id": id}).Decode(&participant)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return "", false, nil
		}
		return "", false, fmt.Errorf("failed to find participant: %w", err)
	}

	return participant.FullName, true, nil
}

func (r *mongoParticipantRepository) ResolveAll(ctx context.Context, ids []string) ([]string, error) {
	if len(ids) == 0 {
		return []string{}, nil
	}

	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	cursor, err := r.collection.Find(ctx, bson.M{"_id": bson.M{"$in": ids}})
	if err != nil {
		return nil, fmt.Errorf("failed to find participants: %w", err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var participants []model.Participant
	if err := cursor.All(ctx, &participants); err != nil {
		return nil, fmt.Errorf("failed to decode participants: %w", err)
	}

	names := make(map[string]string, len(participants))
	for _, p := range participants {
		names[p.ID] = p.FullName
	}

	return resolveNames(ids, names), nil
}
