package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"
	"time"

	"github.com/go-playground/validator"
	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	database "github.com/MRAMACHANDRAMOORTHI/everbowl/config"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

var menuItemCollection *mongo.Collection = database.OpenCollection(database.Client, "menu_items")
var validate = validator.New()

// GetAvailableMenuItems lists the storefront catalog: available items only
func GetAvailableMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	filter := bson.M{"is_available": true}
	if category := r.URL.Query().Get("category"); category != "" {
		filter["category"] = category
	}

	cursor, err := menuItemCollection.Find(ctx, filter)
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}
	defer cursor.Close(ctx)

	menuItems := []models.MenuItem{}
	if err = cursor.All(ctx, &menuItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu data"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    menuItems,
	})
}

// GetMenuItem returns a single catalog entry
func GetMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	menuItemId := mux.Vars(r)["menu_item_id"]

	var menuItem models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": menuItemId}).Decode(&menuItem); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item retrieved successfully",
		"data":    menuItem,
	})
}

// GetAllMenuItems is the admin listing: every item, paginated
func GetAllMenuItems(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	recordPerPage, err := strconv.Atoi(r.URL.Query().Get("recordPerPage"))
	if err != nil || recordPerPage < 1 {
		recordPerPage = 10
	}

	page, err := strconv.Atoi(r.URL.Query().Get("page"))
	if err != nil || page < 1 {
		page = 1
	}

	startIndex := (page - 1) * recordPerPage

	totalItems, err := menuItemCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total menu item count"}`, http.StatusInternalServerError)
		return
	}

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "menu_item_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "category", Value: 1},
			{Key: "price", Value: 1},
			{Key: "description", Value: 1},
			{Key: "image_url", Value: 1},
			{Key: "is_available", Value: 1},
			{Key: "created_at", Value: 1},
			{Key: "updated_at", Value: 1},
		}},
	}

	result, err := menuItemCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving menu items"}`, http.StatusInternalServerError)
		return
	}

	var allItems []bson.M
	if err = result.All(ctx, &allItems); err != nil {
		http.Error(w, `{"success": false, "message": "Error decoding menu data"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Menu items retrieved successfully",
		"data":    allItems,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_items":      totalItems,
			"total_pages":      (totalItems + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

// CreateMenuItem adds a new dish to the catalog
func CreateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var menuItem models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&menuItem); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(menuItem); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Name, category and a non-negative price are required"}`, http.StatusBadRequest)
		return
	}

	if menuItem.Is_available == nil {
		available := true
		menuItem.Is_available = &available
	}

	menuItem.Created_at = time.Now()
	menuItem.Updated_at = time.Now()
	menuItem.ID = primitive.NewObjectID()
	menuItem.Menu_item_id = menuItem.ID.Hex()

	if _, insertErr := menuItemCollection.InsertOne(ctx, menuItem); insertErr != nil {
		http.Error(w, `{"success": false, "message": "Menu item was not created"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item created successfully",
		"data":    menuItem,
	})
}

// UpdateMenuItem changes catalog fields in place. Historical orders are
// unaffected; their line items are frozen copies.
func UpdateMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	menuItemId := mux.Vars(r)["menu_item_id"]

	var menuItem models.MenuItem
	if err := json.NewDecoder(r.Body).Decode(&menuItem); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}
	if menuItem.Name != nil {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *menuItem.Name})
	}
	if menuItem.Category != nil {
		updateObj = append(updateObj, bson.E{Key: "category", Value: *menuItem.Category})
	}
	if menuItem.Price != nil {
		if *menuItem.Price < 0 {
			http.Error(w, `{"success": false, "message": "Price must be non-negative"}`, http.StatusBadRequest)
			return
		}
		updateObj = append(updateObj, bson.E{Key: "price", Value: *menuItem.Price})
	}
	if menuItem.Description != nil {
		updateObj = append(updateObj, bson.E{Key: "description", Value: *menuItem.Description})
	}
	if menuItem.Image_url != nil {
		updateObj = append(updateObj, bson.E{Key: "image_url", Value: *menuItem.Image_url})
	}
	if menuItem.Is_available != nil {
		updateObj = append(updateObj, bson.E{Key: "is_available", Value: *menuItem.Is_available})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := menuItemCollection.UpdateOne(ctx, bson.M{"menu_item_id": menuItemId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	var updatedItem models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": menuItemId}).Decode(&updatedItem); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated menu item"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item updated successfully",
		"data":    updatedItem,
	})
}

// ToggleAvailability flips an item between sold-out and available
func ToggleAvailability(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	menuItemId := mux.Vars(r)["menu_item_id"]

	var menuItem models.MenuItem
	if err := menuItemCollection.FindOne(ctx, bson.M{"menu_item_id": menuItemId}).Decode(&menuItem); err != nil {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	available := true
	if menuItem.Is_available != nil {
		available = !*menuItem.Is_available
	}

	update := bson.M{"$set": bson.M{
		"is_available": available,
		"updated_at":   time.Now(),
	}}
	if _, err := menuItemCollection.UpdateOne(ctx, bson.M{"menu_item_id": menuItemId}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to update availability"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Availability updated successfully",
		"data": map[string]interface{}{
			"menu_item_id": menuItemId,
			"is_available": available,
		},
	})
}

// DeleteMenuItem removes an item from the catalog
func DeleteMenuItem(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	menuItemId := mux.Vars(r)["menu_item_id"]

	result, err := menuItemCollection.DeleteOne(ctx, bson.M{"menu_item_id": menuItemId})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Menu item deletion failed"}`, http.StatusInternalServerError)
		return
	}
	if result.DeletedCount == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Menu item deleted successfully",
	})
}
