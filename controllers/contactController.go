package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	database "github.com/MRAMACHANDRAMOORTHI/everbowl/config"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

var contactCollection *mongo.Collection = database.OpenCollection(database.Client, "contact_messages")

// SubmitContactMessage stores a message from the public contact form
func SubmitContactMessage(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var message models.ContactMessage
	if err := json.NewDecoder(r.Body).Decode(&message); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(message); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Name, email, subject and message are required"}`, http.StatusBadRequest)
		return
	}

	message.ID = primitive.NewObjectID()
	message.Message_id = message.ID.Hex()
	message.Created_at = time.Now()

	if _, err := contactCollection.InsertOne(ctx, message); err != nil {
		http.Error(w, `{"success": false, "message": "Message submission failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Message sent successfully",
		"data":    message,
	})
}

// GetContactMessages lists messages for the admin panel, newest first
func GetContactMessages(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := contactCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving messages"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	messages := []models.ContactMessage{}
	if err := cursor.All(ctx, &messages); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding message data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Messages retrieved successfully",
		"data":    messages,
	})
}
