package services

import (
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/models"
	"doctors-portal-server/util"
)

/*
* Slot availability for one date
* An option's remaining slots are its configured slots minus the slots of
* that date's bookings whose treatment matches the option name
 */

// ReduceSlots subtracts booked slots from every option, preserving the
// original slot order. The bookings passed in must already be filtered to
// the target date.
func ReduceSlots(options []models.AppointmentOption, bookings []models.Booking) []models.AppointmentOption {
	for i, option := range options {
		booked := make(map[string]bool)
		for _, b := range bookings {
			if b.Treatment == option.Name {
				booked[b.Slot] = true
			}
		}
		remaining := make([]string, 0, len(option.Slots))
		for _, slot := range option.Slots {
			if !booked[slot] {
				remaining = append(remaining, slot)
			}
		}
		options[i].Slots = remaining
	}
	return options
}

// availabilityPipeline is the database-side equivalent of ReduceSlots: join
// each option to its same-date bookings by treatment name, collect the booked
// slot values and set-subtract them. Only name, price and slots survive the
// projection.
func availabilityPipeline(date string) mongo.Pipeline {
	return mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.M{
			"from":         util.BookingCollection,
			"localField":   "name",
			"foreignField": "treatment",
			"pipeline": bson.A{
				bson.M{"$match": bson.M{
					"$expr": bson.M{"$eq": bson.A{"$appointmentDate", date}},
				}},
			},
			"as": "booked",
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"name":  1,
			"price": 1,
			"slots": 1,
			"booked": bson.M{"$map": bson.M{
				"input": "$booked",
				"as":    "book",
				"in":    "$$book.slot",
			}},
		}}},
		bson.D{{Key: "$project", Value: bson.M{
			"name":  1,
			"price": 1,
			"slots": bson.M{"$setDifference": bson.A{"$slots", "$booked"}},
		}}},
	}
}
