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
	middleware "github.com/MRAMACHANDRAMOORTHI/everbowl/middlewares"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

var feedbackCollection *mongo.Collection = database.OpenCollection(database.Client, "feedback")

// SubmitFeedback stores a rating and message from the authenticated user
func SubmitFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(feedback); validationErr != nil {
		http.Error(w, `{"success": false, "message": "A rating between 1 and 5 is required"}`, http.StatusBadRequest)
		return
	}

	feedback.ID = primitive.NewObjectID()
	feedback.Feedback_id = feedback.ID.Hex()
	feedback.User_id = uid
	feedback.Created_at = time.Now()

	if _, err := feedbackCollection.InsertOne(ctx, feedback); err != nil {
		http.Error(w, `{"success": false, "message": "Feedback submission failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Feedback submitted successfully",
		"data":    feedback,
	})
}

// GetFeedback lists feedback for the admin panel, newest first, with the
// submitting user's name joined in
func GetFeedback(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	opts := options.Find().SetSort(bson.D{{Key: "created_at", Value: -1}})
	cursor, err := feedbackCollection.Find(ctx, bson.M{}, opts)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving feedback"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var allFeedback []models.Feedback
	if err := cursor.All(ctx, &allFeedback); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding feedback data"}`, http.StatusInternalServerError)
		return
	}

	type feedbackWithUser struct {
		models.Feedback
		User_name string `json:"user_name"`
	}

	data := make([]feedbackWithUser, 0, len(allFeedback))
	for _, fb := range allFeedback {
		entry := feedbackWithUser{Feedback: fb, User_name: "Unknown"}
		var user models.User
		if err := userCollection.FindOne(ctx, bson.M{"user_id": fb.User_id}).Decode(&user); err == nil && user.Name != nil {
			entry.User_name = *user.Name
		}
		data = append(data, entry)
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Feedback retrieved successfully",
		"data":    data,
	})
}
