package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type MenuItem struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Menu_item_id string             `bson:"menu_item_id" json:"menu_item_id"`
	Name         *string            `bson:"name" json:"name" validate:"required,min=2,max=100"`
	Category     *string            `bson:"category" json:"category" validate:"required,oneof=classic-fruit-bowls assorted-fruit-bowls smoothie-bowls cold-press-juices fruit-shakes wellness-shots sorbets smoothies"`
	Price        *float64           `bson:"price" json:"price" validate:"required,gte=0"`
	Description  *string            `bson:"description" json:"description"`
	Image_url    *string            `bson:"image_url" json:"image_url"`
	Is_available *bool              `bson:"is_available" json:"is_available"`
	Created_at   time.Time          `bson:"created_at" json:"created_at"`
	Updated_at   time.Time          `bson:"updated_at" json:"updated_at"`
}
