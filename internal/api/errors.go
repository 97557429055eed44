package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/sirupsen/logrus"

	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/domain/order"
	"github.com/example/ec-commerce/internal/query"
)

// writeError maps domain failures onto HTTP statuses. Anything not in the
// taxonomy is treated as a store failure and reported as unavailable; the
// underlying cause is logged, not leaked.
func writeError(w http.ResponseWriter, err error) {
	var (
		malformed    *order.MalformedProductIDError
		notFound     *order.ProductsNotFoundError
		insufficient *order.InsufficientStockError
		aborted      *order.PlacementAbortedError
		missing      *query.MissingProductError
		duplicate    *catalog.DuplicateSizeError
	)

	switch {
	case errors.As(err, &malformed):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &notFound):
		respondError(w, http.StatusNotFound, err.Error())
	case errors.As(err, &insufficient):
		respondError(w, http.StatusConflict, err.Error())
	case errors.As(err, &duplicate),
		errors.Is(err, catalog.ErrInvalidName),
		errors.Is(err, catalog.ErrInvalidPrice),
		errors.Is(err, catalog.ErrNegativeQuantity),
		errors.Is(err, order.ErrEmptyOrder),
		errors.Is(err, order.ErrMissingUser),
		errors.Is(err, order.ErrInvalidQuantity):
		respondError(w, http.StatusBadRequest, err.Error())
	case errors.As(err, &missing):
		respondError(w, http.StatusInternalServerError, err.Error())
	case errors.As(err, &aborted):
		logrus.WithError(err).Error("order placement aborted")
		respondError(w, http.StatusServiceUnavailable, "order placement aborted, no changes were applied")
	default:
		logrus.WithError(err).Error("store failure")
		respondError(w, http.StatusServiceUnavailable, "store unavailable")
	}
}

func respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(map[string]string{"error": message})
}
