package repository

import (
	"context"
	"fmt"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	reservationerrors "hoteldash/internal/reservations/errors"
	"hoteldash/pkg/config"
	apperrors "hoteldash/pkg/errors"
	"hoteldash/pkg/model"
)

type MongoLoader struct {
	collection *mongo.Collection
	source     string
}

func NewMongoLoader(cfg *config.Config) *MongoLoader {
	db := cfg.Client.Mongo.Database(cfg.MongoDatabaseName)
	return &MongoLoader{
		collection: db.Collection(cfg.MongoCollection),
		source:     fmt.Sprintf("mongodb collection %s.%s", cfg.MongoDatabaseName, cfg.MongoCollection),
	}
}

func (l *MongoLoader) Source() string {
	return l.source
}

// Load reads the whole collection in natural order, which for a collection
// seeded by cmd/migrate matches the order of the source CSV.
func (l *MongoLoader) Load(ctx context.Context) ([]model.Reservation, error) {
	opts := options.Find().SetSort(bson.D{{Key: "$natural", Value: 1}})
	cursor, err := l.collection.Find(ctx, bson.D{}, opts)
	if err != nil {
		return nil, apperrors.DataUnavailable(l.source, err)
	}
	defer cursor.Close(ctx)

	records := []model.Reservation{}
	for cursor.Next(ctx) {
		if missing := missingFields(cursor.Current); len(missing) > 0 {
			return nil, apperrors.DataUnavailable(l.source,
				fmt.Errorf("%w: document %d lacks %s", reservationerrors.ErrMissingColumns, len(records), strings.Join(missing, ", ")))
		}

		var r model.Reservation
		if err := cursor.Decode(&r); err != nil {
			return nil, apperrors.DataUnavailable(l.source, fmt.Errorf("decode document %d: %w", len(records), err))
		}
		records = append(records, r)
	}
	if err := cursor.Err(); err != nil {
		return nil, apperrors.DataUnavailable(l.source, err)
	}
	return records, nil
}

func missingFields(doc bson.Raw) []string {
	var missing []string
	for _, col := range model.RequiredColumns {
		if _, err := doc.LookupErr(col); err != nil {
			missing = append(missing, col)
		}
	}
	return missing
}
