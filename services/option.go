package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"doctors-portal-server/models"
	"doctors-portal-server/util"
)

type OptionService struct {
	options  collection
	bookings collection
}

func NewOptionService(db *mongo.Database) *OptionService {
	return &OptionService{
		options:  db.Collection(util.OptionCollection),
		bookings: db.Collection(util.BookingCollection),
	}
}

/*
* Fetch every option and the date's bookings
* Subtract booked slots in application code
* Full option documents come back, id included
 */
func (s *OptionService) AvailableOptions(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	cursor, err := s.options.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Error fetching appointment options:", err)
		return nil, err
	}
	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, err
	}

	bookingCursor, err := s.bookings.Find(ctx, bson.M{"appointmentDate": date})
	if err != nil {
		log.Println("Error fetching bookings for date:", err)
		return nil, err
	}
	var booked []models.Booking
	if err := bookingCursor.All(ctx, &booked); err != nil {
		return nil, err
	}

	return ReduceSlots(opts, booked), nil
}

/*
* Same availability computed inside the database
* Projects name, price and slots only
 */
func (s *OptionService) AvailableOptionsPipeline(ctx context.Context, date string) ([]models.AppointmentOption, error) {
	cursor, err := s.options.Aggregate(ctx, availabilityPipeline(date))
	if err != nil {
		log.Println("Error running availability pipeline:", err)
		return nil, err
	}
	var opts []models.AppointmentOption
	if err := cursor.All(ctx, &opts); err != nil {
		return nil, err
	}
	return opts, nil
}

func (s *OptionService) Specialties(ctx context.Context) ([]models.Specialty, error) {
	cursor, err := s.options.Find(ctx, bson.M{},
		options.Find().SetProjection(bson.M{"name": 1}))
	if err != nil {
		log.Println("Error fetching specialties:", err)
		return nil, err
	}
	var specialties []models.Specialty
	if err := cursor.All(ctx, &specialties); err != nil {
		return nil, err
	}
	return specialties, nil
}

// SetDefaultPrice bulk-sets the default price on every option. Administrative
// in intent; also run by the daily reconciliation job for options missing a
// price.
func (s *OptionService) SetDefaultPrice(ctx context.Context) (int64, error) {
	result, err := s.options.UpdateMany(ctx,
		bson.M{},
		bson.M{"$set": bson.M{"price": util.DefaultOptionPrice}},
		options.Update().SetUpsert(true))
	if err != nil {
		log.Println("Error setting default price:", err)
		return 0, err
	}
	return result.ModifiedCount, nil
}

// BackfillMissingPrices is the narrower variant used by the scheduler: only
// options without a price field are touched.
func (s *OptionService) BackfillMissingPrices(ctx context.Context) (int64, error) {
	result, err := s.options.UpdateMany(ctx,
		bson.M{"price": bson.M{"$exists": false}},
		bson.M{"$set": bson.M{"price": util.DefaultOptionPrice}})
	if err != nil {
		log.Println("Error backfilling prices:", err)
		return 0, err
	}
	return result.ModifiedCount, nil
}

// Seed inserts the default treatment catalog when the collection is empty.
func (s *OptionService) Seed(ctx context.Context, catalog []models.AppointmentOption) error {
	count, err := s.options.CountDocuments(ctx, bson.M{})
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	for _, option := range catalog {
		if _, err := s.options.InsertOne(ctx, option); err != nil {
			return err
		}
	}
	log.Printf("Seeded %d appointment options\n", len(catalog))
	return nil
}
