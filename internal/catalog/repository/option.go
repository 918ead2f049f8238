package repository

import (
	"context"
	"fmt"
	"time"

	"trainbook/pkg/config"
	"trainbook/pkg/model"
	"trainbook/pkg/sanitizer"
	"trainbook/pkg/workbook"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const OptionsCollectionName = "Options"

// OptionRepository lists the drop-down values of a category in display order.
type OptionRepository interface {
	ListValues(ctx context.Context, category model.OptionCategory) ([]string, error)
}

type mongoOptionRepository struct {
	cfg        *config.Config
	collection *mongo.Collection
}

func NewMongoOptionRepository(cfg *config.Config) OptionRepository {
	db := cfg.Client.Mongo.Client.Database(cfg.MongoDatabaseName)
	return &mongoOptionRepository{
		cfg:        cfg,
		collection: db.Collection(OptionsCollectionName),
	}
}

func (r *mongoOptionRepository) ListValues(ctx context.Context, category model.OptionCategory) ([]string, error) {
	ctx, cancel := withTimeout(ctx, r.cfg.ReadTimeout)
	defer cancel()

	opts := options.Find().SetSort(bson.D{
		{Key: "position", Value: 1},
		{Key: "_id", Value: 1},
	})

	cursor, err := r.collection.Find(ctx, bson.M{"category": category}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to find %s options: %w", category, err)
	}
	defer func() { _ = cursor.Close(ctx) }()

	var found []model.Option
	if err := cursor.All(ctx, &found); err != nil {
		return nil, fmt.Errorf("failed to decode %s options: %w", category, err)
	}

	values := make([]string, 0, len(found))
	for _, o := range found {
		values = append(values, o.Value)
	}
	return sanitizer.CompactValues(values), nil
}

var optionSheets = map[model.OptionCategory]string{
	model.OptionTypes:    workbook.SheetTypes,
	model.OptionTrainers: workbook.SheetTrainers,
	model.OptionRooms:    workbook.SheetRooms,
}

// OptionSheet returns the workbook sheet holding category.
func OptionSheet(category model.OptionCategory) (string, bool) {
	sheet, ok := optionSheets[category]
	return sheet, ok
}

type workbookOptionRepository struct {
	wb *workbook.Workbook
}

// NewWorkbookOptionRepository reads the first column of each option sheet.
// The first row is a header.
func NewWorkbookOptionRepository(wb *workbook.Workbook) OptionRepository {
	return &workbookOptionRepository{wb: wb}
}

func (r *workbookOptionRepository) ListValues(ctx context.Context, category model.OptionCategory) ([]string, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	sheet, ok := OptionSheet(category)
	if !ok {
		return nil, fmt.Errorf("no sheet for option category %q", category)
	}

	values, err := r.wb.Column(sheet, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s options: %w", category, err)
	}
	if len(values) > 0 {
		values = values[1:]
	}
	return sanitizer.CompactValues(values), nil
}

func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	deadline, hasDeadline := ctx.Deadline()
	if hasDeadline && time.Until(deadline) < timeout {
		return context.WithDeadline(ctx, deadline)
	}
	return context.WithTimeout(ctx, timeout)
}
