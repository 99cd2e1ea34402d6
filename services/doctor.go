package services

import (
	"context"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"doctors-portal-server/models"
	"doctors-portal-server/util"
)

type DoctorService struct {
	doctors collection
}

func NewDoctorService(db *mongo.Database) *DoctorService {
	return &DoctorService{doctors: db.Collection(util.DoctorCollection)}
}

func (s *DoctorService) Create(ctx context.Context, doctor models.Doctor) (*models.Doctor, error) {
	result, err := s.doctors.InsertOne(ctx, doctor)
	if err != nil {
		log.Println("Error creating doctor:", err)
		return nil, err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		doctor.ID = id
	}
	return &doctor, nil
}

func (s *DoctorService) All(ctx context.Context) ([]models.Doctor, error) {
	cursor, err := s.doctors.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Error fetching doctors:", err)
		return nil, err
	}
	var doctors []models.Doctor
	if err := cursor.All(ctx, &doctors); err != nil {
		return nil, err
	}
	return doctors, nil
}

func (s *DoctorService) Delete(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.doctors.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		log.Println("Error deleting doctor:", err)
		return err
	}
	if result.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}
