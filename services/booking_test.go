package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/models"
)

func testBooking() models.Booking {
	return models.Booking{
		AppointmentDate: "May 14, 2022",
		Treatment:       "Oral Surgery",
		Patient:         "Jane Doe",
		Slot:            "8am",
		Email:           "jane@example.com",
	}
}

func TestBookingService_CreateInsertsWhenNoDuplicate(t *testing.T) {
	inserted := 0
	id := primitive.NewObjectID()
	svc := &BookingService{bookings: &fakeCollection{
		FindOneFunc: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			f := filter.(bson.M)
			assert.Equal(t, "May 14, 2022", f["appointmentDate"])
			assert.Equal(t, "Oral Surgery", f["treatment"])
			assert.Equal(t, "jane@example.com", f["email"])
			return noDocuments()
		},
		InsertOneFunc: func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
			inserted++
			return &mongo.InsertOneResult{InsertedID: id}, nil
		},
	}}

	result, err := svc.Create(context.Background(), testBooking())

	require.NoError(t, err)
	assert.True(t, result.Acknowledged)
	assert.Equal(t, id, result.InsertedID)
	assert.Equal(t, 1, inserted)
}

func TestBookingService_CreateRejectsDuplicate(t *testing.T) {
	inserted := 0
	svc := &BookingService{bookings: &fakeCollection{
		FindOneFunc: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			return mongo.NewSingleResultFromDocument(testBooking(), nil, nil)
		},
		InsertOneFunc: func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
			inserted++
			return &mongo.InsertOneResult{}, nil
		},
	}}

	result, err := svc.Create(context.Background(), testBooking())

	require.NoError(t, err, "a duplicate is a rejection, not an error")
	assert.False(t, result.Acknowledged)
	assert.Equal(t, "You have a booking on May 14, 2022", result.Message)
	assert.Equal(t, 0, inserted, "nothing may be written for a duplicate")
}

func TestBookingService_CreateMapsDuplicateKeyToRejection(t *testing.T) {
	// Two concurrent submissions can both pass the read check; the unique
	// index turns the loser's insert into a duplicate-key error, which must
	// surface as the same rejection shape.
	dupErr := mongo.WriteException{WriteErrors: []mongo.WriteError{{Code: 11000}}}
	svc := &BookingService{bookings: &fakeCollection{
		FindOneFunc: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			return noDocuments()
		},
		InsertOneFunc: func(ctx context.Context, document interface{}) (*mongo.InsertOneResult, error) {
			return nil, dupErr
		},
	}}

	result, err := svc.Create(context.Background(), testBooking())

	require.NoError(t, err)
	assert.False(t, result.Acknowledged)
	assert.Equal(t, "You have a booking on May 14, 2022", result.Message)
}

func TestBookingService_CreatePropagatesLookupFailure(t *testing.T) {
	boom := errors.New("connection reset")
	svc := &BookingService{bookings: &fakeCollection{
		FindOneFunc: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			return mongo.NewSingleResultFromDocument(struct{}{}, boom, nil)
		},
	}}

	_, err := svc.Create(context.Background(), testBooking())
	assert.Error(t, err)
}

func TestBookingService_ByEmail(t *testing.T) {
	svc := &BookingService{bookings: &fakeCollection{
		FindFunc: func(ctx context.Context, filter interface{}) (*mongo.Cursor, error) {
			assert.Equal(t, bson.M{"email": "jane@example.com"}, filter)
			return docsToCursor(testBooking()), nil
		},
	}}

	bookings, err := svc.ByEmail(context.Background(), "jane@example.com")

	require.NoError(t, err)
	require.Len(t, bookings, 1)
	assert.Equal(t, "Oral Surgery", bookings[0].Treatment)
}

func TestBookingService_ByIDNotFound(t *testing.T) {
	svc := &BookingService{bookings: &fakeCollection{
		FindOneFunc: func(ctx context.Context, filter interface{}) *mongo.SingleResult {
			return noDocuments()
		},
	}}

	_, err := svc.ByID(context.Background(), primitive.NewObjectID().Hex())
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestBookingService_ByIDRejectsBadHex(t *testing.T) {
	svc := &BookingService{bookings: &fakeCollection{}}

	_, err := svc.ByID(context.Background(), "not-an-object-id")
	assert.ErrorIs(t, err, ErrNotFound)
}
