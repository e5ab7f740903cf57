package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func PublicContactRoutes(router *mux.Router) {
	router.HandleFunc("/contact", controller.SubmitContactMessage).Methods(http.MethodPost)
}

func ContactAdminRoutes(router *mux.Router) {
	router.HandleFunc("/contact-messages", controller.GetContactMessages).Methods(http.MethodGet)
}
