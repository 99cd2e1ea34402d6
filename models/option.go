package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// AppointmentOption is one bookable treatment category with its slot list.
type AppointmentOption struct {
	ID    primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name  string             `json:"name" bson:"name"`
	Price float64            `json:"price,omitempty" bson:"price,omitempty"`
	Slots []string           `json:"slots" bson:"slots"`
}

// Specialty is the name-only projection of an appointment option.
type Specialty struct {
	Name string `json:"name" bson:"name"`
}
