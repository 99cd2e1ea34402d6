package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/util"
)

func BackfillOptionPrice(db *mongo.Database) error {
	ctx := context.Background()
	result, err := db.Collection(util.OptionCollection).UpdateMany(
		ctx,
		bson.M{"price": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"price": util.DefaultOptionPrice}},
	)
	if err != nil {
		return err
	}
	log.Printf("Migration applied: %d options priced\n", result.ModifiedCount)
	return nil
}
