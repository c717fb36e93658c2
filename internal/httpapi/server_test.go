package httpapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/khoward/bookshop/internal/catalog"
	"github.com/khoward/bookshop/internal/member"
	"github.com/khoward/bookshop/internal/ordering"
	"github.com/khoward/bookshop/internal/storage"
)

func setupServer(t *testing.T) *Server {
	store, err := storage.NewSQLiteStorage(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = store.Close() })

	return NewServer(
		member.NewService(store, nil),
		catalog.NewService(store, nil),
		ordering.NewService(store, nil),
		nil, nil,
	)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}

// seedViaAPI registers a member and a book, returning their IDs.
func seedViaAPI(t *testing.T, srv *Server, stock int) (memberID, itemID int64) {
	t.Helper()

	rec := doJSON(t, srv, http.MethodPost, "/api/members", map[string]any{
		"name": "member1",
		"address": map[string]string{
			"city": "Seoul", "street": "Riverside", "zipcode": "123-123",
		},
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var mResp map[string]int64
	decodeBody(t, rec, &mResp)

	rec = doJSON(t, srv, http.MethodPost, "/api/items", map[string]any{
		"name": "JPA", "author": "kim", "price": 10000, "stock_quantity": stock,
	})
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	var iResp map[string]int64
	decodeBody(t, rec, &iResp)

	return mResp["member_id"], iResp["item_id"]
}

func placeOrder(t *testing.T, srv *Server, memberID, itemID int64, count int) *httptest.ResponseRecorder {
	t.Helper()
	return doJSON(t, srv, http.MethodPost, "/api/orders", map[string]any{
		"member_id": memberID, "item_id": itemID, "count": count,
	})
}

func TestCreateMember_Duplicate(t *testing.T) {
	srv := setupServer(t)
	body := map[string]any{"name": "dup", "address": map[string]string{"city": "c", "street": "s", "zipcode": "z"}}

	rec := doJSON(t, srv, http.MethodPost, "/api/members", body)
	assert.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, "/api/members", body)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPlaceOrder(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 2)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())

	var resp map[string]int64
	decodeBody(t, rec, &resp)
	orderID := resp["order_id"]
	require.Greater(t, orderID, int64(0))

	rec = doJSON(t, srv, http.MethodGet, fmt.Sprintf("/api/orders/%d", orderID), nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var order orderPayload
	decodeBody(t, rec, &order)
	assert.Equal(t, "ORDER", order.Status)
	assert.Equal(t, int64(20000), order.TotalPrice)
	assert.NotEmpty(t, order.ReferenceNo)
}

func TestPlaceOrder_NotEnoughStock(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 11)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestPlaceOrder_UnknownMember(t *testing.T) {
	srv := setupServer(t)
	_, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, 9999, itemID, 1)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestPlaceOrder_InvalidCount(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 0)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCancelOrder(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 2)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	orderID := resp["order_id"]

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", orderID), nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// Second cancel conflicts
	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", orderID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestCancelOrder_AfterDeliveryComplete(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 1)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]int64
	decodeBody(t, rec, &resp)
	orderID := resp["order_id"]

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/orders/%d/delivery/complete", orderID), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", orderID), nil)
	assert.Equal(t, http.StatusConflict, rec.Code)
}

func TestListOrders_StatusFilter(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 1)
	require.Equal(t, http.StatusCreated, rec.Code)
	rec = placeOrder(t, srv, memberID, itemID, 1)
	require.Equal(t, http.StatusCreated, rec.Code)
	var resp map[string]int64
	decodeBody(t, rec, &resp)

	rec = doJSON(t, srv, http.MethodPost, fmt.Sprintf("/api/orders/%d/cancel", resp["order_id"]), nil)
	require.Equal(t, http.StatusNoContent, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/orders?status=ORDER", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var orders []orderPayload
	decodeBody(t, rec, &orders)
	assert.Len(t, orders, 1)

	rec = doJSON(t, srv, http.MethodGet, "/api/orders?status=BOGUS", nil)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestOrderSummaries(t *testing.T) {
	srv := setupServer(t)
	memberID, itemID := seedViaAPI(t, srv, 10)

	rec := placeOrder(t, srv, memberID, itemID, 2)
	require.Equal(t, http.StatusCreated, rec.Code)

	rec = doJSON(t, srv, http.MethodGet, "/api/orders/simple", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []orderSummaryPayload
	decodeBody(t, rec, &summaries)
	require.Len(t, summaries, 1)
	assert.Equal(t, "member1", summaries[0].MemberName)
	assert.Equal(t, "ORDER", summaries[0].Status)
	assert.Equal(t, "Seoul", summaries[0].Address.City)
}

func TestHealthz(t *testing.T) {
	srv := setupServer(t)
	rec := doJSON(t, srv, http.MethodGet, "/healthz", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}
