package routes

import (
	"net/http"

	controller "github.com/MRAMACHANDRAMOORTHI/everbowl/controllers"

	"github.com/gorilla/mux"
)

func CartProtectedRoutes(router *mux.Router, cc *controller.CartController) {

	router.HandleFunc("/cart", cc.GetCart).Methods(http.MethodGet)
	router.HandleFunc("/cart", cc.ClearCart).Methods(http.MethodDelete)
	router.HandleFunc("/cart/items", cc.AddToCart).Methods(http.MethodPost)
	router.HandleFunc("/cart/items", cc.UpdateCartItem).Methods(http.MethodPatch)
	router.HandleFunc("/cart/items/{menu_item_id}", cc.RemoveCartItem).Methods(http.MethodDelete)
	router.HandleFunc("/cart/checkout", cc.Checkout).Methods(http.MethodPost)
}
