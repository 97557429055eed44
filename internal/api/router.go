package api

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/example/ec-commerce/internal/api/middleware"
)

func NewRouter(handlers *Handlers) http.Handler {
	r := mux.NewRouter()

	r.HandleFunc("/products", handlers.CreateProduct).Methods(http.MethodPost)
	r.HandleFunc("/products", handlers.ListProducts).Methods(http.MethodGet)

	r.HandleFunc("/orders", handlers.PlaceOrder).Methods(http.MethodPost)
	r.HandleFunc("/orders/{userID}", handlers.ListUserOrders).Methods(http.MethodGet)

	return middleware.RequestLog(r)
}
