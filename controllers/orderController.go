package controller

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/MRAMACHANDRAMOORTHI/everbowl/config"
	middleware "github.com/MRAMACHANDRAMOORTHI/everbowl/middlewares"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/realtime"
)

var orderCollection *mongo.Collection = database.OpenCollection(database.Client, "orders")

// EnsureOrderIndexes creates the unique index that backs checkout
// idempotency keys. With it, two concurrent submissions carrying the
// same key cannot both insert; the loser gets a duplicate-key error and
// is answered with the already-created order.
func EnsureOrderIndexes(ctx context.Context) error {
	_, err := orderCollection.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "user_id", Value: 1}, {Key: "idempotency_key", Value: 1}},
		Options: options.Index().
			SetUnique(true).
			SetPartialFilterExpression(bson.M{"idempotency_key": bson.M{"$exists": true}}),
	})
	return err
}

// OrderController serves order history, the admin status workflow and
// the live order streams.
type OrderController struct {
	Hub *realtime.Hub
}

func NewOrderController(hub *realtime.Hub) *OrderController {
	return &OrderController{Hub: hub}
}

// GetOrders lists every order for the admin panel, newest first
func (oc *OrderController) GetOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	// Parse pagination parameters
	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	countFilter := bson.M{}
	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	if status := r.URL.Query().Get("status"); status != "" {
		if !models.ValidOrderStatus(status) {
			http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
			return
		}
		countFilter["status"] = status
		matchStage = bson.D{{Key: "$match", Value: bson.D{{Key: "status", Value: status}}}}
	}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err = cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, countFilter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetMyOrders is the customer's order history, newest first
func (oc *OrderController) GetMyOrders(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	matchStage := bson.D{{Key: "$match", Value: bson.D{{Key: "user_id", Value: uid}}}}
	sortStage := bson.D{{Key: "$sort", Value: bson.D{{Key: "created_at", Value: -1}}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}

	cursor, err := orderCollection.Aggregate(ctx, mongo.Pipeline{matchStage, sortStage, skipStage, limitStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	orders := []models.Order{}
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding orders data"}`, http.StatusInternalServerError)
		return
	}

	totalOrders, err := orderCollection.CountDocuments(ctx, bson.M{"user_id": uid})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total order count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Orders retrieved successfully",
		"data":    orders,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_orders":     totalOrders,
			"total_pages":      (totalOrders + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// GetOrderById returns one order; customers can only read their own
func (oc *OrderController) GetOrderById(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]
	if orderId == "" {
		http.Error(w, `{"success": false, "message": "Invalid order ID"}`, http.StatusBadRequest)
		return
	}

	_, _, uid, role := middleware.GetUserFromContext(r)

	var order models.Order
	err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order)
	if errors.Is(err, mongo.ErrNoDocuments) {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	} else if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving order"}`, http.StatusInternalServerError)
		return
	}

	if role != models.RoleAdmin && order.User_id != uid {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order retrieved successfully",
		"data":    order,
	})
}

// UpdateOrderStatus moves an order through the workflow. Any of the four
// statuses may be set at any time; there is no forced sequential
// progression. The new snapshot is fanned out to live observers.
func (oc *OrderController) UpdateOrderStatus(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	orderId := mux.Vars(r)["order_id"]

	var requestBody struct {
		Status string `json:"status"`
	}
	if err := json.NewDecoder(r.Body).Decode(&requestBody); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if !models.ValidOrderStatus(requestBody.Status) {
		http.Error(w, `{"success": false, "message": "Invalid order status"}`, http.StatusBadRequest)
		return
	}

	// Status is the only mutable field on an order; items, total and the
	// profile snapshot stay frozen.
	update := bson.M{
		"$set": bson.M{
			"status":     requestBody.Status,
			"updated_at": time.Now(),
		},
	}

	result, err := orderCollection.UpdateOne(ctx, bson.M{"order_id": orderId}, update)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update order status"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Order not found"}`, http.StatusNotFound)
		return
	}

	var order models.Order
	if err := orderCollection.FindOne(ctx, bson.M{"order_id": orderId}).Decode(&order); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated order"}`, http.StatusInternalServerError)
		return
	}

	oc.Hub.Publish(order)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Order status updated successfully",
		"data":    order,
	})
}

// StreamMyOrders pushes the authenticated user's order snapshots over
// server-sent events until the client disconnects
func (oc *OrderController) StreamMyOrders(w http.ResponseWriter, r *http.Request) {
	_, _, uid, _ := middleware.GetUserFromContext(r)
	oc.stream(w, r, uid)
}

// StreamAllOrders is the admin view: every order event
func (oc *OrderController) StreamAllOrders(w http.ResponseWriter, r *http.Request) {
	oc.stream(w, r, "")
}

func (oc *OrderController) stream(w http.ResponseWriter, r *http.Request, userID string) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		http.Error(w, `{"success": false, "message": "Streaming is not supported"}`, http.StatusInternalServerError)
		return
	}

	sub := oc.Hub.Subscribe(userID)
	defer sub.Cancel()

	w.Header().Set("Content-Type", "text/event-stream")
	w.Header().Set("Cache-Control", "no-cache")
	w.Header().Set("Connection", "keep-alive")
	flusher.Flush()

	for {
		select {
		case <-r.Context().Done():
			return
		case order, ok := <-sub.C:
			if !ok {
				return
			}
			payload, err := json.Marshal(order)
			if err != nil {
				continue
			}
			fmt.Fprintf(w, "data: %s\n\n", payload)
			flusher.Flush()
		}
	}
}
