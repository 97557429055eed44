package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/example/ec-commerce/internal/command"
	"github.com/example/ec-commerce/internal/domain/catalog"
	"github.com/example/ec-commerce/internal/infrastructure/store/mocks"
	"github.com/example/ec-commerce/internal/query"
)

func newTestServer() (http.Handler, *mocks.MockCatalogStore, *mocks.MockOrderStore) {
	catalogStore := mocks.NewMockCatalogStore()
	orderStore := mocks.NewMockOrderStore()
	cmdHandler := command.NewHandler(catalogStore, orderStore, mocks.NewMockTxRunner(), nil)
	queryHandler := query.NewHandler(catalogStore, orderStore)
	return NewRouter(NewHandlers(cmdHandler, queryHandler)), catalogStore, orderStore
}

func doJSON(t *testing.T, router http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

// ============================================
// Product Endpoint Tests
// ============================================

func TestCreateProduct_Created(t *testing.T) {
	router, catalogStore, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/products",
		`{"name":"T-Shirt","price":19.99,"sizes":[{"size":"S","quantity":5}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	body := decodeBody(t, rec)
	id, err := primitive.ObjectIDFromHex(body["id"].(string))
	require.NoError(t, err)
	_, ok := catalogStore.Get(id)
	assert.True(t, ok)
}

func TestCreateProduct_ValidationFailures(t *testing.T) {
	router, _, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/products", `{"name":"","price":10}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/products", `{"name":"X","price":0}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodPost, "/products",
		`{"name":"X","price":10,"sizes":[{"size":"S","quantity":1},{"size":"S","quantity":2}]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "duplicate size")
}

func TestListProducts_DefaultsAndFilter(t *testing.T) {
	router, catalogStore, _ := newTestServer()
	catalogStore.Seed(catalog.Product{Name: "Blue Shirt", Price: 10})
	catalogStore.Seed(catalog.Product{Name: "Red Hat", Price: 20})

	rec := doJSON(t, router, http.MethodGet, "/products?name=shirt", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	page := body["page"].(map[string]any)
	assert.Equal(t, 10.0, page["next"])
	assert.Equal(t, 1.0, page["limit"])
	assert.Equal(t, -1.0, page["previous"])
}

func TestListProducts_BadPageParams(t *testing.T) {
	router, _, _ := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/products?limit=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/products?offset=-1", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

// ============================================
// Order Endpoint Tests
// ============================================

func TestPlaceOrder_Created(t *testing.T) {
	router, catalogStore, orderStore := newTestServer()
	p := catalogStore.Seed(catalog.Product{Name: "Shirt", Price: 10,
		Sizes: []catalog.SizeVariant{{Size: "S", Quantity: 5}}})

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"`+p.ID.Hex()+`","qty":2}]}`)

	assert.Equal(t, http.StatusCreated, rec.Code)
	assert.Len(t, orderStore.All(), 1)
	stored, _ := catalogStore.Get(p.ID)
	assert.Equal(t, 3, stored.TotalStock())
}

func TestPlaceOrder_MalformedID(t *testing.T) {
	router, _, _ := newTestServer()

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"nope","qty":1}]}`)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "invalid product id")
}

func TestPlaceOrder_ProductsNotFound(t *testing.T) {
	router, _, _ := newTestServer()
	ghost := primitive.NewObjectID().Hex()

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"`+ghost+`","qty":1}]}`)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], ghost)
}

func TestPlaceOrder_InsufficientStock(t *testing.T) {
	router, catalogStore, _ := newTestServer()
	p := catalogStore.Seed(catalog.Product{Name: "Shirt", Price: 10,
		Sizes: []catalog.SizeVariant{{Size: "S", Quantity: 1}}})

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"`+p.ID.Hex()+`","qty":3}]}`)

	assert.Equal(t, http.StatusConflict, rec.Code)
	assert.Contains(t, decodeBody(t, rec)["error"], "not enough stock for product 'Shirt'")
}

func TestPlaceOrder_StoreFailure(t *testing.T) {
	router, catalogStore, _ := newTestServer()
	catalogStore.FindErr = assert.AnError
	ghost := primitive.NewObjectID().Hex()

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"`+ghost+`","qty":1}]}`)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "store unavailable", decodeBody(t, rec)["error"])
}

func TestListUserOrders_EnrichedResponse(t *testing.T) {
	router, catalogStore, _ := newTestServer()
	p := catalogStore.Seed(catalog.Product{Name: "Shirt", Price: 10,
		Sizes: []catalog.SizeVariant{{Size: "S", Quantity: 5}}})

	rec := doJSON(t, router, http.MethodPost, "/orders",
		`{"userId":"u1","items":[{"productId":"`+p.ID.Hex()+`","qty":2}]}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, router, http.MethodGet, "/orders/u1", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	data := body["data"].([]any)
	require.Len(t, data, 1)
	enriched := data[0].(map[string]any)
	assert.Equal(t, 20.0, enriched["total"])
	items := enriched["items"].([]any)
	require.Len(t, items, 1)
	details := items[0].(map[string]any)["productDetails"].(map[string]any)
	assert.Equal(t, "Shirt", details["name"])
	assert.Equal(t, p.ID.Hex(), details["id"])
}

func TestListUserOrders_EmptyPage(t *testing.T) {
	router, _, _ := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/orders/nobody", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	body := decodeBody(t, rec)
	assert.Empty(t, body["data"])
	page := body["page"].(map[string]any)
	assert.Equal(t, 10.0, page["next"])
	assert.Equal(t, 0.0, page["limit"])
	assert.Equal(t, -1.0, page["previous"])
}

func TestRequestIDHeaderIsSet(t *testing.T) {
	router, _, _ := newTestServer()

	rec := doJSON(t, router, http.MethodGet, "/products", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, rec.Header().Get("X-Request-ID"))
}
