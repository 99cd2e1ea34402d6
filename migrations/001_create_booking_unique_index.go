package migrations

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors-portal-server/util"
)

// CreateBookingUniqueIndex enforces one booking per patient per treatment per
// date at the storage layer. The duplicate check in BookingService stays for
// its observable rejection message; the index closes the concurrent window
// behind it.
func CreateBookingUniqueIndex(db *mongo.Database) error {
	ctx := context.Background()
	_, err := db.Collection(util.BookingCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{
			{Key: "appointmentDate", Value: 1},
			{Key: "treatment", Value: 1},
			{Key: "email", Value: 1},
		},
		Options: options.Index().SetUnique(true),
	})
	if err != nil {
		return err
	}
	log.Println("Migration applied: unique booking index")
	return nil
}
