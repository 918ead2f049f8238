package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	mongoMigration "trainbook/internal/migrations/mongo"
	"trainbook/pkg/config"
	"trainbook/pkg/workbook"
)

const JobName = "mongo-migration"

func main() {
	seed := flag.Bool("seed", false, "copy option lists and participants from WORKBOOK_PATH into mongo")
	flag.Parse()

	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()
	cfg := config.Load(JobName)
	cfg.SetMongo()
	cfg.Log.Info("Starting Mongo migration job", "database", cfg.MongoDatabaseName, "seed", *seed)
	defer cfg.GracefulShutdown()
	migrateMongo(ctx, cfg)
	if *seed {
		seedMongo(ctx, cfg)
	}
	fmt.Println("Migration completed successfully.")
}

func migrateMongo(ctx context.Context, cfg *config.Config) {
	if err := mongoMigration.RunMigration(ctx, cfg.Client.Mongo.Client, cfg.MongoDatabaseName); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
}

func seedMongo(ctx context.Context, cfg *config.Config) {
	wb, err := workbook.Open(cfg.WorkbookPath)
	if err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
	if err := mongoMigration.SeedFromWorkbook(ctx, cfg.Client.Mongo.Client, cfg.MongoDatabaseName, wb); err != nil {
		log.Fatalf("Seed failed: %v", err)
	}
}
