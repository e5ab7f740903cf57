package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Feedback struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Feedback_id string             `bson:"feedback_id" json:"feedback_id"`
	User_id     string             `bson:"user_id" json:"user_id"`
	Rating      int                `bson:"rating" json:"rating" validate:"required,gte=1,lte=5"`
	Message     string             `bson:"message" json:"message" validate:"max=2000"`
	Created_at  time.Time          `bson:"created_at" json:"created_at"`
}
