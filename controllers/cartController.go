package controller

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/cart"
	middleware "github.com/MRAMACHANDRAMOORTHI/everbowl/middlewares"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/realtime"
)

// CartController serves the session cart and checkout. The cart store
// and hub are injected from main; the controller holds no global state
// of its own.
type CartController struct {
	Store *cart.Store
	Hub   *realtime.Hub
}

func NewCartController(store *cart.Store, hub *realtime.Hub) *CartController {
	return &CartController{Store: store, Hub: hub}
}

func (cc *CartController) writeCart(w http.ResponseWriter, c *cart.Cart, message string) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": message,
		"data": map[string]interface{}{
			"lines":        c.Lines(),
			"total_amount": c.TotalAmount(),
		},
	})
}

// GetCart returns the session's current lines and total
func (cc *CartController) GetCart(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := middleware.GetUserFromContext(r)
	cc.writeCart(w, cc.Store.Cart(uid), "Cart retrieved successfully")
}

// AddToCart puts a catalog item in the cart, incrementing the line if
// one already exists for the item
func (cc *CartController) AddToCart(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	var body struct {
		Menu_item_id string `json:"menu_item_id"`
		Quantity     int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if body.Quantity == 0 {
		body.Quantity = 1
	}
	if body.Menu_item_id == "" {
		http.Error(w, `{"success": false, "message": "menu_item_id is required"}`, http.StatusBadRequest)
		return
	}

	var menuItem models.MenuItem
	err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": body.Menu_item_id}).Decode(&menuItem)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu item"}`, http.StatusInternalServerError)
		return
	}

	if menuItem.Is_available == nil || !*menuItem.Is_available {
		http.Error(w, `{"success": false, "message": "Menu item is not available"}`, http.StatusBadRequest)
		return
	}

	c := cc.Store.Cart(uid)
	if err := c.Add(menuItem, body.Quantity); err != nil {
		http.Error(w, `{"success": false, "message": "`+err.Error()+`"}`, http.StatusBadRequest)
		return
	}

	cc.writeCart(w, c, "Item added to cart")
}

// UpdateCartItem sets a line's quantity; zero or less removes the line
func (cc *CartController) UpdateCartItem(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := middleware.GetUserFromContext(r)

	var body struct {
		Menu_item_id string `json:"menu_item_id"`
		Quantity     int    `json:"quantity"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}
	if body.Menu_item_id == "" {
		http.Error(w, `{"success": false, "message": "menu_item_id is required"}`, http.StatusBadRequest)
		return
	}

	c := cc.Store.Cart(uid)
	c.UpdateQuantity(body.Menu_item_id, body.Quantity)
	cc.writeCart(w, c, "Cart updated")
}

// RemoveCartItem deletes a line; removing an absent line is a no-op
func (cc *CartController) RemoveCartItem(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := middleware.GetUserFromContext(r)
	menuItemId := mux.Vars(r)["menu_item_id"]

	c := cc.Store.Cart(uid)
	c.Remove(menuItemId)
	cc.writeCart(w, c, "Item removed from cart")
}

// ClearCart empties the session's cart
func (cc *CartController) ClearCart(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := middleware.GetUserFromContext(r)

	c := cc.Store.Cart(uid)
	c.Clear()
	cc.writeCart(w, c, "Cart cleared")
}

// Checkout freezes the cart into a pending order. The cart is cleared
// only after the order write is acknowledged; on any failure the cart is
// left intact so the user can retry. An optional Idempotency-Key header
// makes retries safe against double submission.
func (cc *CartController) Checkout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	c := cc.Store.Cart(uid)
	if c.Empty() {
		http.Error(w, `{"success": false, "message": "Cart is empty"}`, http.StatusBadRequest)
		return
	}

	idempotencyKey := r.Header.Get("Idempotency-Key")
	if idempotencyKey != "" {
		if _, err := uuid.Parse(idempotencyKey); err != nil {
			http.Error(w, `{"success": false, "message": "Idempotency-Key must be a UUID"}`, http.StatusBadRequest)
			return
		}

		var existing models.Order
		err := orderCollection.FindOne(ctx, bson.M{"user_id": uid, "idempotency_key": idempotencyKey}).Decode(&existing)
		if err == nil {
			// Replay of an already-confirmed submission
			c.Clear()
			cc.Store.Drop(uid)
			w.Header().Set("Content-Type", "application/json")
			json.NewEncoder(w).Encode(map[string]interface{}{
				"success": true,
				"message": "Order already placed",
				"data":    existing,
			})
			return
		} else if !errors.Is(err, mongo.ErrNoDocuments) {
			http.Error(w, `{"success": false, "message": "Error checking previous submissions"}`, http.StatusInternalServerError)
			return
		}
	}

	// Snapshot name and address from the profile at submission time
	var profile models.User
	if err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&profile); err != nil {
		http.Error(w, `{"success": false, "message": "User profile not found"}`, http.StatusUnauthorized)
		return
	}

	userName := "Guest"
	if profile.Name != nil && *profile.Name != "" {
		userName = *profile.Name
	}
	userAddress := "Not provided"
	if profile.Address != nil && *profile.Address != "" {
		userAddress = *profile.Address
	}

	order, err := models.NewOrderFromCart(uid, userName, userAddress, c.Lines())
	if err != nil {
		http.Error(w, `{"success": false, "message": "Cart is empty"}`, http.StatusBadRequest)
		return
	}
	order.Idempotency_key = idempotencyKey

	if _, err := orderCollection.InsertOne(ctx, order); err != nil {
		// A concurrent submission with the same key won the insert; treat
		// this one as a replay and answer with the stored order.
		if idempotencyKey != "" && mongo.IsDuplicateKeyError(err) {
			var existing models.Order
			if findErr := orderCollection.FindOne(ctx, bson.M{"user_id": uid, "idempotency_key": idempotencyKey}).Decode(&existing); findErr == nil {
				c.Clear()
				cc.Store.Drop(uid)
				w.Header().Set("Content-Type", "application/json")
				json.NewEncoder(w).Encode(map[string]interface{}{
					"success": true,
					"message": "Order already placed",
					"data":    existing,
				})
				return
			}
		}
		// The cart is deliberately left intact here so the user can retry
		http.Error(w, `{"success": false, "message": "Order creation failed"}`, http.StatusInternalServerError)
		return
	}

	c.Clear()
	cc.Store.Drop(uid)
	cc.Hub.Publish(order)

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order placed successfully",
		"data":    order,
	})
}
