package models

import (
	"errors"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const (
	StatusPending   = "pending"
	StatusPreparing = "preparing"
	StatusReady     = "ready"
	StatusCompleted = "completed"
)

var validOrderStatuses = map[string]bool{
	StatusPending:   true,
	StatusPreparing: true,
	StatusReady:     true,
	StatusCompleted: true,
}

// ValidOrderStatus reports whether s is one of the four workflow states.
func ValidOrderStatus(s string) bool {
	return validOrderStatuses[s]
}

var ErrEmptyCart = errors.New("cart is empty")

type OrderItem struct {
	Menu_item_id string  `bson:"menu_item_id" json:"menu_item_id"`
	Name         string  `bson:"name" json:"name"`
	Price        float64 `bson:"price" json:"price"`
	Quantity     int     `bson:"quantity" json:"quantity"`
}

type Order struct {
	ID              primitive.ObjectID `bson:"_id,omitempty" json:"-"`
	Order_id        string             `bson:"order_id" json:"order_id"`
	User_id         string             `bson:"user_id" json:"user_id"`
	User_name       string             `bson:"user_name" json:"user_name"`
	User_address    string             `bson:"user_address" json:"user_address"`
	Items           []OrderItem        `bson:"items" json:"items"`
	Total_amount    float64            `bson:"total_amount" json:"total_amount"`
	Status          string             `bson:"status" json:"status"`
	Idempotency_key string             `bson:"idempotency_key,omitempty" json:"idempotency_key,omitempty"`
	Created_at      time.Time          `bson:"created_at" json:"created_at"`
	Updated_at      time.Time          `bson:"updated_at" json:"updated_at"`
}

// NewOrderFromCart freezes the given cart lines into a pending order.
// The line items and total are copies taken at submission time; later
// catalog price edits never touch an order that has been created.
func NewOrderFromCart(userID, userName, userAddress string, lines []CartLine) (Order, error) {
	if len(lines) == 0 {
		return Order{}, ErrEmptyCart
	}

	items := make([]OrderItem, 0, len(lines))
	var total float64
	for _, line := range lines {
		item := OrderItem{
			Menu_item_id: line.MenuItem.Menu_item_id,
			Quantity:     line.Quantity,
		}
		if line.MenuItem.Name != nil {
			item.Name = *line.MenuItem.Name
		}
		if line.MenuItem.Price != nil {
			item.Price = *line.MenuItem.Price
		}
		items = append(items, item)
		total += item.Price * float64(item.Quantity)
	}

	now := time.Now()
	id := primitive.NewObjectID()
	return Order{
		ID:           id,
		Order_id:     id.Hex(),
		User_id:      userID,
		User_name:    userName,
		User_address: userAddress,
		Items:        items,
		Total_amount: total,
		Status:       StatusPending,
		Created_at:   now,
		Updated_at:   now,
	}, nil
}
