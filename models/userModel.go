package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	User_id        string             `bson:"user_id" json:"user_id"`
	Name           *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Email          *string            `bson:"email" json:"email" validate:"required,email"`
	Password       *string            `bson:"password" json:"password,omitempty" validate:"required,min=6"`
	Address        *string            `bson:"address" json:"address"`
	Role           string             `bson:"role" json:"role"`
	Favorite_items []string           `bson:"favorite_items" json:"favorite_items"`
	Token          *string            `bson:"token" json:"token,omitempty"`
	Refresh_token  *string            `bson:"refresh_token" json:"refresh_token,omitempty"`
	Created_at     time.Time          `bson:"created_at" json:"created_at"`
	Updated_at     time.Time          `bson:"updated_at" json:"updated_at"`
}
