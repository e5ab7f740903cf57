package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func OrderProtectedRoutes(router *mux.Router, oc *controller.OrderController) {

	router.HandleFunc("/orders/my", oc.GetMyOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/my/stream", oc.StreamMyOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}", oc.GetOrderById).Methods(http.MethodGet)
}

func OrderAdminRoutes(router *mux.Router, oc *controller.OrderController) {

	router.HandleFunc("/orders", oc.GetOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/stream", oc.StreamAllOrders).Methods(http.MethodGet)
	router.HandleFunc("/orders/{order_id}/status", oc.UpdateOrderStatus).Methods(http.MethodPatch)
}
