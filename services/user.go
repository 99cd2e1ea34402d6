package services

import (
	"context"
	"errors"
	"log"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	"doctors-portal-server/models"
	"doctors-portal-server/util"
)

var ErrInvalidCredentials = errors.New("invalid email or password")

type UserService struct {
	users collection
}

func NewUserService(db *mongo.Database) *UserService {
	return &UserService{users: db.Collection(util.UserCollection)}
}

/*
* Hash the password when signup supplies one
* Insert the user document
 */
func (s *UserService) Create(ctx context.Context, user models.User) (*models.User, error) {
	if user.Email == "" {
		return nil, errors.New(util.EMAIL_NOT_PROVIDED)
	}
	if user.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Println("Error hashing password:", err)
			return nil, err
		}
		user.Password = string(hash)
	}
	result, err := s.users.InsertOne(ctx, user)
	if err != nil {
		log.Println("Error creating user:", err)
		return nil, err
	}
	if id, ok := result.InsertedID.(primitive.ObjectID); ok {
		user.ID = id
	}
	user.Password = ""
	return &user, nil
}

func (s *UserService) All(ctx context.Context) ([]models.User, error) {
	cursor, err := s.users.Find(ctx, bson.M{})
	if err != nil {
		log.Println("Error fetching users:", err)
		return nil, err
	}
	var users []models.User
	if err := cursor.All(ctx, &users); err != nil {
		return nil, err
	}
	for i := range users {
		users[i].Password = ""
	}
	return users, nil
}

func (s *UserService) ByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	err := s.users.FindOne(ctx, bson.M{"email": email}).Decode(&user)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		log.Println("Error fetching user by email:", err)
		return nil, err
	}
	return &user, nil
}

// MakeAdmin elevates the user with the given id. Only reachable behind the
// admin gate.
func (s *UserService) MakeAdmin(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return ErrNotFound
	}
	result, err := s.users.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"role": util.AdminRole}})
	if err != nil {
		log.Println("Error elevating user to admin:", err)
		return err
	}
	if result.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

// IsAdmin reports whether the email belongs to an admin user. An unknown
// email is simply not an admin.
func (s *UserService) IsAdmin(ctx context.Context, email string) (bool, error) {
	user, err := s.ByEmail(ctx, email)
	if err == ErrNotFound {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	return user.Role == util.AdminRole, nil
}

// Login verifies the stored bcrypt hash for the email. Users created without
// a password cannot log in this way and fall back to the /jwt flow.
func (s *UserService) Login(ctx context.Context, email, password string) (*models.User, error) {
	user, err := s.ByEmail(ctx, email)
	if err == ErrNotFound {
		return nil, ErrInvalidCredentials
	}
	if err != nil {
		return nil, err
	}
	if user.Password == "" {
		return nil, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}
	user.Password = ""
	return user, nil
}
