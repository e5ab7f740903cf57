package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func AnalyticsAdminRoutes(router *mux.Router) {
	router.HandleFunc("/analytics", controller.GetAnalyticsSummary).Methods(http.MethodGet)
}
