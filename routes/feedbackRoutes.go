package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func FeedbackProtectedRoutes(router *mux.Router) {
	router.HandleFunc("/feedback", controller.SubmitFeedback).Methods(http.MethodPost)
}

func FeedbackAdminRoutes(router *mux.Router) {
	router.HandleFunc("/feedback", controller.GetFeedback).Methods(http.MethodGet)
}
