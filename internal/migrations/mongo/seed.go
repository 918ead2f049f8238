package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	bookingsrepository "trainbook/internal/bookings/repository"
	catalogrepository "trainbook/internal/catalog/repository"
	"trainbook/pkg/model"
	"trainbook/pkg/workbook"
)

// SeedFromWorkbook copies the option lists and the participant roster of a
// calendar workbook into the database. Each option category is replaced as a
// whole; participants are upserted by ID. Sessions are not copied.
func SeedFromWorkbook(ctx context.Context, client *mongo.Client, dbName string, wb *workbook.Workbook) error {
	db := client.Database(dbName)
	fmt.Printf("🌱 Seeding %s from workbook %s\n", dbName, wb.Path())

	optionRepo := catalogrepository.NewWorkbookOptionRepository(wb)
	for _, category := range model.OptionCategories {
		values, err := optionRepo.ListValues(ctx, category)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", category, err)
		}
		if err := replaceOptions(ctx, db.Collection(catalogrepository.OptionsCollectionName), category, values); err != nil {
			return err
		}
		fmt.Printf("📋 Seeded %d %s\n", len(values), category)
	}

	participants, err := bookingsrepository.WorkbookRoster(wb)
	if err != nil {
		return err
	}
	if err := upsertParticipants(ctx, db.Collection(bookingsrepository.ParticipantsCollectionName), participants); err != nil {
		return err
	}
	fmt.Printf("👥 Seeded %d participants\n", len(participants))

	return nil
}

func replaceOptions(ctx context.Context, coll *mongo.Collection, category model.OptionCategory, values []string) error {
	if _, err := coll.DeleteMany(ctx, bson.M{"category": category}); err != nil {
		return fmt.Errorf("failed to clear %s: %w", category, err)
	}
	if len(values) == 0 {
		return nil
	}

	docs := make([]any, 0, len(values))
	for i, v := range values {
		docs = append(docs, model.Option{Category: category, Value: v, Position: i})
	}
	if _, err := coll.InsertMany(ctx, docs); err != nil {
		return fmt.Errorf("failed to insert %s: %w", category, err)
	}
	return nil
}

func upsertParticipants(ctx context.Context, coll *mongo.Collection, participants []model.Participant) error {
	if len(participants) == 0 {
		return nil
	}

	writes := make([]mongo.WriteModel, 0, len(participants))
	for _, p := range participants {
		writes = append(writes, mongo.NewReplaceOneModel().
			SetFilter(bson.M{"_id": p.ID}).
			SetReplacement(p).
			SetUpsert(true))
	}

	if _, err := coll.BulkWrite(ctx, writes, options.BulkWrite().SetOrdered(false)); err != nil {
		return fmt.Errorf("failed to upsert participants: %w", err)
	}
	return nil
}
