package main

import (
	"context"
	"time"

	mongoMigration "hoteldash/internal/migrations/mongo"
	"hoteldash/internal/reservations/repository"
	"hoteldash/pkg/config"
	dbmongo "hoteldash/pkg/db/mongo"
)

const JobName = "hoteldash-migrate"

func main() {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	cfg := config.Load(JobName)
	if err := cfg.SetMongo(); err != nil {
		cfg.Log.Fatal("Failed to connect to MongoDB", "error", err)
	}
	defer func() {
		if err := cfg.Client.GracefulShutdown(context.Background()); err != nil {
			cfg.Log.Error("Failed to close MongoDB connection", "error", err)
		}
	}()

	cfg.Log.Info("Starting Mongo migration job")
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	if err := mongoMigration.RunMigration(ctx, db, cfg.MongoCollection, cfg.Log); err != nil {
		cfg.Log.Fatal("Migration failed", "error", err)
	}

	if cfg.MigrateImportCSV {
		importCSV(ctx, cfg)
	}
	cfg.Log.Info("Migration completed successfully")
}

func importCSV(ctx context.Context, cfg *config.Config) {
	loader := repository.NewCSVLoader(cfg.DataPath)
	records, err := loader.Load(ctx)
	if err != nil {
		cfg.Log.Fatal("Failed to read reservations for import", "source", loader.Source(), "error", err)
	}

	coll := cfg.Client.Mongo.Database(cfg.MongoDatabaseName).Collection(cfg.MongoCollection)
	tm := dbmongo.NewTransactionManager(cfg.Client.Mongo)
	if _, err := mongoMigration.ImportReservations(ctx, tm, coll, records, cfg.Log); err != nil {
		cfg.Log.Fatal("Import failed", "collection", cfg.MongoCollection, "error", err)
	}
}
