package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type User struct {
	ID       primitive.ObjectID `json:"_id,omitempty" bson:"_id,omitempty"`
	Name     string             `json:"name" bson:"name"`
	Email    string             `json:"email" bson:"email"`
	Role     string             `json:"role,omitempty" bson:"role,omitempty"`
	Password string             `json:"password,omitempty" bson:"password,omitempty"`
}
