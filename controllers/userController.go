package controller

import (
	"context"
	"encoding/json"
	"log"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"golang.org/x/crypto/bcrypt"

	database "github.com/MRAMACHANDRAMOORTHI/everbowl/config"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/helper"
	middleware "github.com/MRAMACHANDRAMOORTHI/everbowl/middlewares"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/models"
)

var userCollection *mongo.Collection = database.OpenCollection(database.Client, "users")

func SignUp(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if validationErr := validate.Struct(user); validationErr != nil {
		http.Error(w, `{"success": false, "message": "Name, email and a password of at least 6 characters are required"}`, http.StatusBadRequest)
		return
	}

	count, err := userCollection.CountDocuments(ctx, bson.M{"email": user.Email})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error checking email"}`, http.StatusInternalServerError)
		return
	}
	if count > 0 {
		http.Error(w, `{"success": false, "message": "Email already exists"}`, http.StatusConflict)
		return
	}

	password := HashPassword(*user.Password)
	user.Password = &password

	// The role flag is never writable through the API; admins are seeded
	// directly in the database.
	user.Role = models.RoleUser
	if user.Favorite_items == nil {
		user.Favorite_items = []string{}
	}

	user.Created_at = time.Now()
	user.Updated_at = time.Now()
	user.ID = primitive.NewObjectID()
	user.User_id = user.ID.Hex()

	token, refreshToken, _ := helper.GenerateAllTokens(*user.Email, *user.Name, user.User_id, user.Role)
	user.Token = &token
	user.Refresh_token = &refreshToken

	_, insertErr := userCollection.InsertOne(ctx, user)
	if insertErr != nil {
		http.Error(w, `{"success": false, "message": "User creation failed"}`, http.StatusInternalServerError)
		return
	}

	user.Password = nil

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "User created successfully",
		"data":    user,
	})
}

func Login(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	var user models.User
	var foundUser models.User

	if err := json.NewDecoder(r.Body).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	if user.Email == nil || user.Password == nil {
		http.Error(w, `{"success": false, "message": "Email and password are required"}`, http.StatusBadRequest)
		return
	}

	err := userCollection.FindOne(ctx, bson.M{"email": user.Email}).Decode(&foundUser)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusUnauthorized)
		return
	}

	passwordIsValid, msg := VerifyPassword(*user.Password, *foundUser.Password)
	if !passwordIsValid {
		http.Error(w, `{"success": false, "message": "`+msg+`"}`, http.StatusUnauthorized)
		return
	}

	token, refreshToken, _ := helper.GenerateAllTokens(*foundUser.Email, *foundUser.Name, foundUser.User_id, foundUser.Role)
	UpdateAllTokens(token, refreshToken, foundUser.User_id)

	// Create a response struct excluding the password
	responseUser := struct {
		Email        string `json:"email"`
		Name         string `json:"name"`
		UserID       string `json:"user_id"`
		Role         string `json:"role"`
		Token        string `json:"token"`
		RefreshToken string `json:"refresh_token"`
	}{
		Email:        *foundUser.Email,
		Name:         *foundUser.Name,
		UserID:       foundUser.User_id,
		Role:         foundUser.Role,
		Token:        token,
		RefreshToken: refreshToken,
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(responseUser)
}

func Logout(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	update := bson.M{"$set": bson.M{
		"token":         "",
		"refresh_token": "",
		"updated_at":    time.Now(),
	}}

	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Logout failed"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Logged out successfully",
	})
}

// GetUsers lists users for the admin dashboard with pagination
func GetUsers(w http.ResponseWriter, r *http.Request) {
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

	matchStage := bson.D{{Key: "$match", Value: bson.D{}}}
	skipStage := bson.D{{Key: "$skip", Value: startIndex}}
	limitStage := bson.D{{Key: "$limit", Value: int64(recordPerPage)}}
	projectStage := bson.D{
		{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "user_id", Value: 1},
			{Key: "name", Value: 1},
			{Key: "email", Value: 1},
			{Key: "address", Value: 1},
			{Key: "role", Value: 1},
			{Key: "favorite_items", Value: 1},
			{Key: "created_at", Value: 1},
		}},
	}

	result, err := userCollection.Aggregate(ctx, mongo.Pipeline{matchStage, skipStage, limitStage, projectStage})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error occurred while listing users"}`, http.StatusInternalServerError)
		return
	}

	var allUsers []bson.M
	if err = result.All(ctx, &allUsers); err != nil {
		log.Fatal(err)
	}

	totalUsers, err := userCollection.CountDocuments(ctx, bson.M{})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving total user count"}`, http.StatusInternalServerError)
		return
	}

	response := map[string]interface{}{
		"success": true,
		"message": "Users retrieved successfully",
		"data":    allUsers,
		"pagination": map[string]interface{}{
			"current_page":     page,
			"records_per_page": recordPerPage,
			"total_users":      totalUsers,
			"total_pages":      (totalUsers + int64(recordPerPage) - 1) / int64(recordPerPage),
		},
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(response)
}

func GetUser(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	params := mux.Vars(r)
	userId := params["user_id"]

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": userId}).Decode(&user)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "User retrieved successfully",
		"data":    user,
	})
}

// GetProfile returns the authenticated user's own profile
func GetProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	var user models.User
	err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&user)
	if err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	user.Password = nil
	user.Token = nil
	user.Refresh_token = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Profile retrieved successfully",
		"data":    user,
	})
}

// UpdateProfile changes the name and delivery address of the
// authenticated user. Orders placed before the change keep the snapshot
// taken at submission time.
func UpdateProfile(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	var body struct {
		Name    *string `json:"name"`
		Address *string `json:"address"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, `{"success": false, "message": "Invalid request body"}`, http.StatusBadRequest)
		return
	}

	updateObj := bson.D{}
	if body.Name != nil && *body.Name != "" {
		updateObj = append(updateObj, bson.E{Key: "name", Value: *body.Name})
	}
	if body.Address != nil {
		updateObj = append(updateObj, bson.E{Key: "address", Value: *body.Address})
	}

	if len(updateObj) == 0 {
		http.Error(w, `{"success": false, "message": "No fields to update"}`, http.StatusBadRequest)
		return
	}
	updateObj = append(updateObj, bson.E{Key: "updated_at", Value: time.Now()})

	result, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		http.Error(w, `{"success": false, "message": "Profile update failed"}`, http.StatusInternalServerError)
		return
	}
	if result.MatchedCount == 0 {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	var updatedUser models.User
	if err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&updatedUser); err != nil {
		http.Error(w, `{"success": false, "message": "Error retrieving updated profile"}`, http.StatusInternalServerError)
		return
	}
	updatedUser.Password = nil
	updatedUser.Token = nil
	updatedUser.Refresh_token = nil

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Profile updated successfully",
		"data":    updatedUser,
	})
}

// AddFavorite marks a menu item as one of the user's favorites
func AddFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)
	menuItemId := mux.Vars(r)["menu_item_id"]

	count, err := menuItemCollection.CountDocuments(ctx, bson.M{"menu_item_id": menuItemId})
	if err != nil || count == 0 {
		http.Error(w, `{"success": false, "message": "Menu item not found"}`, http.StatusNotFound)
		return
	}

	update := bson.M{
		"$addToSet": bson.M{"favorite_items": menuItemId},
		"$set":      bson.M{"updated_at": time.Now()},
	}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to add favorite"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Favorite added successfully",
	})
}

// RemoveFavorite unmarks a menu item; no-op if it was never a favorite
func RemoveFavorite(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)
	menuItemId := mux.Vars(r)["menu_item_id"]

	update := bson.M{
		"$pull": bson.M{"favorite_items": menuItemId},
		"$set":  bson.M{"updated_at": time.Now()},
	}
	if _, err := userCollection.UpdateOne(ctx, bson.M{"user_id": uid}, update); err != nil {
		http.Error(w, `{"success": false, "message": "Failed to remove favorite"}`, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Favorite removed successfully",
	})
}

// GetFavorites returns the menu items the user has marked as favorites
func GetFavorites(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	_, _, uid, _ := middleware.GetUserFromContext(r)

	var user models.User
	if err := userCollection.FindOne(ctx, bson.M{"user_id": uid}).Decode(&user); err != nil {
		http.Error(w, `{"success": false, "message": "User not found"}`, http.StatusNotFound)
		return
	}

	items := []models.MenuItem{}
	if len(user.Favorite_items) > 0 {
		cursor, err := menuItemCollection.Find(ctx, bson.M{"menu_item_id": bson.M{"$in": user.Favorite_items}})
		if err != nil {
			http.Error(w, `{"success": false, "message": "Error retrieving favorites"}`, http.StatusInternalServerError)
			return
		}
		defer cursor.Close(ctx)
		if err := cursor.All(ctx, &items); err != nil {
			http.Error(w, `{"success": false, "message": "Error decoding favorites"}`, http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(map[string]interface{}{
		"success": true,
		"message": "Favorites retrieved successfully",
		"data":    items,
	})
}

// UpdateAllTokens stores freshly issued tokens on the user document
func UpdateAllTokens(signedToken, signedRefreshToken, userId string) {
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Second)
	defer cancel()

	updateObj := bson.D{
		{Key: "token", Value: signedToken},
		{Key: "refresh_token", Value: signedRefreshToken},
		{Key: "updated_at", Value: time.Now()},
	}

	_, err := userCollection.UpdateOne(ctx, bson.M{"user_id": userId}, bson.D{{Key: "$set", Value: updateObj}})
	if err != nil {
		log.Panic(err)
	}
}

func HashPassword(password string) string {
	bytes, err := bcrypt.GenerateFromPassword([]byte(password), 14)
	if err != nil {
		log.Panic(err)
	}
	return string(bytes)
}

func VerifyPassword(userPassword string, providedPassword string) (bool, string) {
	if err := bcrypt.CompareHashAndPassword([]byte(providedPassword), []byte(userPassword)); err != nil {
		return false, "Incorrect password"
	}
	return true, ""
}
