package services

import (
	"context"
	"fmt"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/models"
	"doctors-portal-server/util"
)

type BookingService struct {
	bookings collection
}

func NewBookingService(db *mongo.Database) *BookingService {
	return &BookingService{bookings: db.Collection(util.BookingCollection)}
}

func duplicateBookingMessage(date string) string {
	return fmt.Sprintf("You have a booking on %s", date)
}

/*
* One booking per patient per treatment per date
* A duplicate is a business rejection, not an error
* The check-then-insert window is closed by the unique index; a duplicate-key
* error on insert maps to the same rejection shape
 */
func (s *BookingService) Create(ctx context.Context, booking models.Booking) (*models.BookingResult, error) {
	filter := bson.M{
		"appointmentDate": booking.AppointmentDate,
		"treatment":       booking.Treatment,
		"email":           booking.Email,
	}

	var existing models.Booking
	err := s.bookings.FindOne(ctx, filter).Decode(&existing)
	if err == nil {
		return &models.BookingResult{
			Acknowledged: false,
			Message:      duplicateBookingMessage(booking.AppointmentDate),
		}, nil
	}
	if err != mongo.ErrNoDocuments {
		log.Println("Error checking for existing booking:", err)
		return nil, err
	}

	result, err := s.bookings.InsertOne(ctx, booking)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			return &models.BookingResult{
				Acknowledged: false,
				Message:      duplicateBookingMessage(booking.AppointmentDate),
			}, nil
		}
		log.Println("Error inserting booking:", err)
		return nil, err
	}

	res := &models.BookingResult{Acknowledged: true}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		res.InsertedID = id
	}
	return res, nil
}

func (s *BookingService) ByEmail(ctx context.Context, email string) ([]models.Booking, error) {
	cursor, err := s.bookings.Find(ctx, bson.M{"email": email})
	if err != nil {
		log.Println("Error fetching bookings by email:", err)
		return nil, err
	}
	var bookings []models.Booking
	if err := cursor.All(ctx, &bookings); err != nil {
		return nil, err
	}
	return bookings, nil
}

func (s *BookingService) ByID(ctx context.Context, id string) (*models.Booking, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, ErrNotFound
	}
	var booking models.Booking
	err = s.bookings.FindOne(ctx, bson.M{"_id": oid}).Decode(&booking)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error fetching booking by id:", err)
		return nil, err
	}
	return &booking, nil
}
