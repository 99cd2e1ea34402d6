package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Booking is a patient's claim on one slot of one treatment on one date.
// AppointmentDate is the opaque date string the client booked with; slot
// availability compares it byte for byte.
type Booking struct {
	ID              primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	AppointmentDate string             `json:"appointmentDate" bson:"appointmentDate"`
	Treatment       string             `json:"treatment" bson:"treatment"`
	Patient         string             `json:"patient" bson:"patient"`
	Slot            string             `json:"slot" bson:"slot"`
	Email           string             `json:"email" bson:"email"`
	Phone           string             `json:"phone,omitempty" bson:"phone,omitempty"`
	Price           float64            `json:"price,omitempty" bson:"price,omitempty"`
}

// BookingResult is the outcome of a create attempt. A duplicate booking is a
// business rejection, not an error: Acknowledged is false and Message explains.
type BookingResult struct {
	Acknowledged bool               `json:"acknowledged"`
	Message      string             `json:"message,omitempty"`
	InsertedID   primitive.ObjectID `json:"insertedId,omitempty"`
}
