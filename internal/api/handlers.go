package api

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/example/ec-commerce/internal/command"
	"github.com/example/ec-commerce/internal/infrastructure/store"
	"github.com/example/ec-commerce/internal/query"
)

const (
	defaultLimit  = 10
	defaultOffset = 0
)

type Handlers struct {
	cmdHandler   *command.Handler
	queryHandler *query.Handler
}

func NewHandlers(cmdHandler *command.Handler, queryHandler *query.Handler) *Handlers {
	return &Handlers{
		cmdHandler:   cmdHandler,
		queryHandler: queryHandler,
	}
}

// Product Handlers

func (h *Handlers) CreateProduct(w http.ResponseWriter, r *http.Request) {
	var cmd command.CreateProduct
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.cmdHandler.CreateProduct(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *Handlers) ListProducts(w http.ResponseWriter, r *http.Request) {
	filter := store.ProductFilter{
		Name: r.URL.Query().Get("name"),
		Size: r.URL.Query().Get("size"),
	}
	limit, offset, err := pageWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.queryHandler.ListProducts(r.Context(), filter, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// Order Handlers

func (h *Handlers) PlaceOrder(w http.ResponseWriter, r *http.Request) {
	var cmd command.PlaceOrder
	if err := json.NewDecoder(r.Body).Decode(&cmd); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	id, err := h.cmdHandler.PlaceOrder(r.Context(), cmd)
	if err != nil {
		writeError(w, err)
		return
	}

	respondJSON(w, http.StatusCreated, map[string]string{"id": id.Hex()})
}

func (h *Handlers) ListUserOrders(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["userID"]
	limit, offset, err := pageWindow(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	orders, err := h.queryHandler.ListUserOrders(r.Context(), userID, limit, offset)
	if err != nil {
		writeError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, orders)
}

// Helper functions

func respondJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(data)
}

func pageWindow(r *http.Request) (limit, offset int, err error) {
	limit, err = queryInt(r, "limit", defaultLimit)
	if err != nil {
		return 0, 0, err
	}
	offset, err = queryInt(r, "offset", defaultOffset)
	if err != nil {
		return 0, 0, err
	}
	return limit, offset, nil
}

func queryInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 0 {
		return 0, &badParamError{name: name, value: raw}
	}
	return n, nil
}

type badParamError struct {
	name  string
	value string
}

func (e *badParamError) Error() string {
	return "invalid " + e.name + ": " + e.value
}
