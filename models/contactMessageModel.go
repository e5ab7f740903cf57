package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type ContactMessage struct {
	ID         primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Message_id string             `bson:"message_id" json:"message_id"`
	First_name string             `bson:"first_name" json:"first_name" validate:"required,min=1,max=100"`
	Last_name  string             `bson:"last_name" json:"last_name" validate:"max=100"`
	Email      string             `bson:"email" json:"email" validate:"required,email"`
	Phone      string             `bson:"phone" json:"phone" validate:"max=20"`
	Subject    string             `bson:"subject" json:"subject" validate:"required,min=2,max=200"`
	Message    string             `bson:"message" json:"message" validate:"required,min=2,max=5000"`
	Created_at time.Time          `bson:"created_at" json:"created_at"`
}
