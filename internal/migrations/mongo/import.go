package mongo

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	dbmongo "hoteldash/pkg/db/mongo"
	"hoteldash/pkg/logger"
	"hoteldash/pkg/model"
)

const importBatchSize = 1000

// ImportReservations replaces the contents of the collection with records.
// Documents are inserted in order so a natural-order read returns them as
// they appeared in the source file. The swap happens inside one transaction,
// which needs a replica set.
func ImportReservations(
	ctx context.Context,
	tm dbmongo.TransactionManager,
	coll *mongo.Collection,
	records []model.Reservation,
	log *logger.Logger,
) (int, error) {
	inserted := 0
	err := tm.ExecuteTransaction(ctx, func(sessCtx mongo.SessionContext) error {
		inserted = 0

		deleted, err := coll.DeleteMany(sessCtx, bson.D{})
		if err != nil {
			return fmt.Errorf("clear %s: %w", coll.Name(), err)
		}
		log.Debug("Cleared collection", "collection", coll.Name(), "deleted", deleted.DeletedCount)

		opts := options.InsertMany().SetOrdered(true)
		for start := 0; start < len(records); start += importBatchSize {
			end := min(start+importBatchSize, len(records))

			docs := make([]any, 0, end-start)
			for i := start; i < end; i++ {
				docs = append(docs, records[i])
			}
			if _, err := coll.InsertMany(sessCtx, docs, opts); err != nil {
				return fmt.Errorf("insert rows %d-%d: %w", start, end-1, err)
			}
			inserted = end
		}
		return nil
	})
	if err != nil {
		return 0, err
	}

	log.Info("Imported reservations", "collection", coll.Name(), "rows", inserted)
	return inserted, nil
}
