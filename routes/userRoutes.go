package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func PublicUserRoutes(router *mux.Router) {
	router.HandleFunc("/users/signup", controller.SignUp).Methods(http.MethodPost)
	router.HandleFunc("/users/login", controller.Login).Methods(http.MethodPost)
}

func UserProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/users/logout", controller.Logout).Methods(http.MethodPost)
	router.HandleFunc("/users/me", controller.GetProfile).Methods(http.MethodGet)
	router.HandleFunc("/users/me", controller.UpdateProfile).Methods(http.MethodPatch)

	router.HandleFunc("/users/favorites", controller.GetFavorites).Methods(http.MethodGet)
	router.HandleFunc("/users/favorites/{menu_item_id}", controller.AddFavorite).Methods(http.MethodPost)
	router.HandleFunc("/users/favorites/{menu_item_id}", controller.RemoveFavorite).Methods(http.MethodDelete)
}

func UserAdminRoutes(router *mux.Router) {
	router.HandleFunc("/users", controller.GetUsers).Methods(http.MethodGet)
	router.HandleFunc("/users/{user_id}", controller.GetUser).Methods(http.MethodGet)
}
