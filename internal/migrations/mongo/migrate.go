package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingsrepository "trainbook/internal/bookings/repository"
	catalogrepository "trainbook/internal/catalog/repository"
	"trainbook/internal/migrations/mongo/validators"
)

var (
	SessionsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "room", Value: 1}}},
		{Keys: bson.D{{Key: "date", Value: 1}, {Key: "participant_ids", Value: 1}}},
		{Keys: bson.D{{Key: "created_at", Value: 1}, {Key: "_id", Value: 1}}},
	}

	ParticipantsIndexes = []mongo.IndexModel{
		{Keys: bson.D{{Key: "full_name", Value: 1}}},
	}

	OptionsIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "category", Value: 1}, {Key: "position", Value: 1}},
			Options: options.Index().SetUnique(true),
		},
	}

	SessionLocksIndexes = []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "expires_at", Value: 1}},
			Options: options.Index().SetExpireAfterSeconds(0),
		},
	}
)

type CollectionDefinition struct {
	Indexes   []mongo.IndexModel
	Validator bson.M
}

func Collections() map[string]CollectionDefinition {
	return map[string]CollectionDefinition{
		bookingsrepository.SessionsCollectionName: {
			Indexes:   SessionsIndexes,
			Validator: validators.SessionValidator,
		},
		bookingsrepository.ParticipantsCollectionName: {
			Indexes:   ParticipantsIndexes,
			Validator: validators.ParticipantValidator,
		},
		catalogrepository.OptionsCollectionName: {
			Indexes:   OptionsIndexes,
			Validator: validators.OptionValidator,
		},
		bookingsrepository.SessionLocksCollectionName: {
			Indexes:   SessionLocksIndexes,
			Validator: validators.SessionLockValidator,
		},
	}
}

func RunMigration(ctx context.Context, client *mongo.Client, dbName string) error {
	db := client.Database(dbName)
	fmt.Printf("🚀 Running trainbook Mongo migrations on database: %s\n", dbName)

	for name, def := range Collections() {
		if err := ensureCollection(ctx, db, name, def.Validator); err != nil {
			return fmt.Errorf("failed to ensure collection %s: %w", name, err)
		}
		if err := ensureIndexes(ctx, db, name, def.Indexes); err != nil {
			return fmt.Errorf("failed to ensure indexes for %s: %w", name, err)
		}
	}

	fmt.Println("✅ All migrations applied successfully.")
	return nil
}

func ensureCollection(ctx context.Context, db *mongo.Database, name string, validator bson.M) error {
	existing, err := db.ListCollectionNames(ctx, bson.D{{Key: "name", Value: name}})
	if err != nil {
		return err
	}

	if len(existing) == 0 {
		fmt.Printf("🆕 Creating collection: %s\n", name)
		opts := options.CreateCollection().SetValidator(validator)
		if err := db.CreateCollection(ctx, name, opts); err != nil {
			return fmt.Errorf("failed creating %s: %w", name, err)
		}
	} else {
		fmt.Printf("ℹ️ Collection %s already exists, updating validator if needed\n", name)
		command := bson.D{
			{Key: "collMod", Value: name},
			{Key: "validator", Value: validator},
		}
		if err := db.RunCommand(ctx, command).Err(); err != nil {
			fmt.Printf("⚠️ Warning: failed updating validator for %s: %v\n", name, err)
		}
	}

	return nil
}

func ensureIndexes(ctx context.Context, db *mongo.Database, name string, models []mongo.IndexModel) error {
	if len(models) == 0 {
		return nil
	}
	coll := db.Collection(name)
	_, err := coll.Indexes().CreateMany(ctx, models)
	if err != nil {
		return err
	}
	fmt.Printf("📚 Ensured indexes for %s\n", name)
	return nil
}
