package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func PublicMenuRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.GetAvailableMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu/{menu_item_id}", controller.GetMenuItem).Methods(http.MethodGet)
}

func MenuAdminRoutes(router *mux.Router) {
	router.HandleFunc("/menu", controller.GetAllMenuItems).Methods(http.MethodGet)
	router.HandleFunc("/menu", controller.CreateMenuItem).Methods(http.MethodPost)
	router.HandleFunc("/menu/{menu_item_id}", controller.UpdateMenuItem).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{menu_item_id}/availability", controller.ToggleAvailability).Methods(http.MethodPatch)
	router.HandleFunc("/menu/{menu_item_id}", controller.DeleteMenuItem).Methods(http.MethodDelete)
}
