package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"time"

	"github.com/MRAMACHANDRAMOORTHI/everbowl/cart"
	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"
	middleware "github.com/MRAMACHANDRAMOORTHI/everbowl/middlewares"
	"github.com/MRAMACHANDRAMOORTHI/everbowl/realtime"
	routes "github.com/MRAMACHANDRAMOORTHI/everbowl/routes"
	"github.com/joho/godotenv"

	"github.com/gorilla/mux"
)

// LoadEnv loads environment variables from the .env file
func LoadEnv() {
	err := godotenv.Load()
	if err != nil {
		log.Fatal("Error loading .env file")
	}
}

func main() {
	// Load environment variables
	LoadEnv()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}

	cartStore := cart.NewStore()
	hub := realtime.NewHub()

	// Optional cross-instance fan-out of order events
	if redisAddr := os.Getenv("REDIS_ADDR"); redisAddr != "" {
		bridge, err := realtime.AttachRedisBridge(context.Background(), hub, redisAddr)
		if err != nil {
			log.Fatalf("Redis bridge setup failed: %v", err)
		}
		defer bridge.Close()
		log.Printf("Order events bridged through Redis at %s", redisAddr)
	}

	cartController := controller.NewCartController(cartStore, hub)
	orderController := controller.NewOrderController(hub)

	indexCtx, cancelIndex := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelIndex()
	if err := controller.EnsureOrderIndexes(indexCtx); err != nil {
		log.Fatalf("Order index setup failed: %v", err)
	}

	router := mux.NewRouter()

	// Public Routes (No Authentication)
	routes.PublicUserRoutes(router)
	routes.PublicMenuRoutes(router)
	routes.PublicContactRoutes(router)

	// Apply Authentication Middleware to Protected Routes
	securedRoutes := router.PathPrefix("/").Subrouter()
	securedRoutes.Use(middleware.Authentication)
	routes.UserProtectedRoutes(securedRoutes)
	routes.CartProtectedRoutes(securedRoutes, cartController)
	routes.OrderProtectedRoutes(securedRoutes, orderController)
	routes.FeedbackProtectedRoutes(securedRoutes)

	// Admin-only back-office routes
	adminRoutes := securedRoutes.PathPrefix("/admin").Subrouter()
	adminRoutes.Use(middleware.AdminOnly)
	routes.UserAdminRoutes(adminRoutes)
	routes.MenuAdminRoutes(adminRoutes)
	routes.OrderAdminRoutes(adminRoutes, orderController)
	routes.FeedbackAdminRoutes(adminRoutes)
	routes.ContactAdminRoutes(adminRoutes)
	routes.AnalyticsAdminRoutes(adminRoutes)

	log.Printf("Server running on port %s", port)
	http.ListenAndServe(":"+port, router)
}
