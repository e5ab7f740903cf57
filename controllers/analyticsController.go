package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/analytics"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

// GetAnalyticsSummary computes the admin dashboard figures for a year,
// optionally narrowed to one month. Orders are fetched for the whole
// year so the monthly series stays complete whatever the month filter.
func GetAnalyticsSummary(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	year, err := strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil || year < 2000 {
		year = time.Now().Year()
	}

	var month time.Month
	if m := r.URL.Query().Get("month"); m != "" {
		parsed, err := strconv.Atoi(m)
		if err != nil || parsed < 1 || parsed > 12 {
			http.Error(w, `{"success": false, "message": "month must be between 1 and 12"}`, http.StatusBadRequest)
			return
		}
		month = time.Month(parsed)
	}

	yearStart := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
	yearEnd := yearStart.AddDate(1, 0, 0)

	cursor, err := orderCollection.Find(ctx, bson.M{
		"created_at": bson.M{"$gte": yearStart, "$lt": yearEnd},
	})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving orders"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	var orders []models.Order
	if err := cursor.All(ctx, &orders); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding order data"}`, http.StatusInternalServerError)
		return
	}

	totalUsers, err := userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving user count"}`, http.StatusInternalServerError)
		return
	}

	summary := analytics.Summarize(orders, totalUsers, year, month)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Analytics retrieved successfully",
		"data":    summary,
	})
}
