package httpapi

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/types"
)

type addressPayload struct {
	City    string `json:"city"`
	Street  string `json:"street"`
	Zipcode string `json:"zipcode"`
}

func (a addressPayload) toAddress() types.Address {
	return types.Address{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

func fromAddress(a types.Address) addressPayload {
	return addressPayload{City: a.City, Street: a.Street, Zipcode: a.Zipcode}
}

// Members

type createMemberRequest struct {
	Name    string         `json:"name"`
	Address addressPayload `json:"address"`
}

func (s *Server) handleCreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	id, err := s.members.Register(r.Context(), req.Name, req.Address.toAddress())
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"member_id": id})
}

type memberPayload struct {
	ID      int64          `json:"id"`
	Name    string         `json:"name"`
	Address addressPayload `json:"address"`
}

func (s *Server) handleListMembers(w http.ResponseWriter, r *http.Request) {
	members, err := s.members.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]memberPayload, 0, len(members))
	for _, m := range members {
		out = append(out, memberPayload{ID: m.ID, Name: m.Name, Address: fromAddress(m.Address)})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// Items

type createItemRequest struct {
	Name          string `json:"name"`
	Author        string `json:"author"`
	ISBN          string `json:"isbn"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
}

func (s *Server) handleCreateItem(w http.ResponseWriter, r *http.Request) {
	var req createItemRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	id, err := s.catalog.AddBook(r.Context(), req.Name, req.Author, req.ISBN, req.Price, req.StockQuantity)
	if err != nil {
		s.writeError(w, err)
		return
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"item_id": id})
}

type itemPayload struct {
	ID            int64  `json:"id"`
	Kind          string `json:"kind"`
	Name          string `json:"name"`
	Author        string `json:"author,omitempty"`
	ISBN          string `json:"isbn,omitempty"`
	Price         int64  `json:"price"`
	StockQuantity int    `json:"stock_quantity"`
}

func (s *Server) handleListItems(w http.ResponseWriter, r *http.Request) {
	items, err := s.catalog.List(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]itemPayload, 0, len(items))
	for _, it := range items {
		out = append(out, itemPayload{
			ID: it.ID, Kind: it.Kind, Name: it.Name, Author: it.Author,
			ISBN: it.ISBN, Price: it.Price, StockQuantity: it.StockQuantity,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

// Orders

type placeOrderRequest struct {
	MemberID int64 `json:"member_id"`
	ItemID   int64 `json:"item_id"`
	Count    int   `json:"count"`
}

func (s *Server) handlePlaceOrder(w http.ResponseWriter, r *http.Request) {
	var req placeOrderRequest
	if err := decodeJSON(r, &req); err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid request body"})
		return
	}

	id, err := s.orders.PlaceOrder(r.Context(), req.MemberID, req.ItemID, req.Count)
	if err != nil {
		if s.metrics != nil && (errors.Is(err, types.ErrNotEnoughStock) || errors.Is(err, types.ErrInvalidCount)) {
			s.metrics.OrdersRejected.Inc()
		}
		s.writeError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.OrdersPlaced.Inc()
	}
	s.writeJSON(w, http.StatusCreated, map[string]int64{"order_id": id})
}

func orderIDFromPath(r *http.Request) (int64, error) {
	return strconv.ParseInt(r.PathValue("id"), 10, 64)
}

func (s *Server) handleCancelOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromPath(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	if err := s.orders.CancelOrder(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	if s.metrics != nil {
		s.metrics.OrdersCancelled.Inc()
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleCompleteDelivery(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromPath(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	if err := s.orders.CompleteDelivery(r.Context(), id); err != nil {
		s.writeError(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

type orderPayload struct {
	ID          int64     `json:"id"`
	ReferenceNo string    `json:"reference_no"`
	MemberID    int64     `json:"member_id"`
	DeliveryID  int64     `json:"delivery_id"`
	Status      string    `json:"status"`
	OrderDate   time.Time `json:"order_date"`
	TotalPrice  int64     `json:"total_price"`
}

func (s *Server) handleGetOrder(w http.ResponseWriter, r *http.Request) {
	id, err := orderIDFromPath(r)
	if err != nil {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid order id"})
		return
	}

	order, err := s.orders.GetOrder(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}
	total, err := s.orders.TotalPrice(r.Context(), id)
	if err != nil {
		s.writeError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, orderPayload{
		ID:          order.ID,
		ReferenceNo: order.ReferenceNo,
		MemberID:    order.MemberID,
		DeliveryID:  order.DeliveryID,
		Status:      string(order.Status),
		OrderDate:   order.OrderDate,
		TotalPrice:  total,
	})
}

func (s *Server) handleListOrders(w http.ResponseWriter, r *http.Request) {
	search := storage.OrderSearch{
		MemberName: r.URL.Query().Get("member"),
		Status:     types.OrderStatus(r.URL.Query().Get("status")),
	}
	if search.Status != "" && !search.Status.Valid() {
		s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid status filter"})
		return
	}
	if limit := r.URL.Query().Get("limit"); limit != "" {
		n, err := strconv.Atoi(limit)
		if err != nil || n < 0 {
			s.writeJSON(w, http.StatusBadRequest, errorResponse{Error: "invalid limit"})
			return
		}
		search.Limit = n
	}

	orders, err := s.orders.ListOrders(r.Context(), search)
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]orderPayload, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderPayload{
			ID:          o.ID,
			ReferenceNo: o.ReferenceNo,
			MemberID:    o.MemberID,
			DeliveryID:  o.DeliveryID,
			Status:      string(o.Status),
			OrderDate:   o.OrderDate,
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}

type orderSummaryPayload struct {
	OrderID    int64          `json:"order_id"`
	MemberName string         `json:"member_name"`
	OrderDate  time.Time      `json:"order_date"`
	Status     string         `json:"status"`
	Address    addressPayload `json:"address"`
}

func (s *Server) handleOrderSummaries(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.orders.ListOrderSummaries(r.Context())
	if err != nil {
		s.writeError(w, err)
		return
	}

	out := make([]orderSummaryPayload, 0, len(summaries))
	for _, sum := range summaries {
		out = append(out, orderSummaryPayload{
			OrderID:    sum.OrderID,
			MemberName: sum.MemberName,
			OrderDate:  sum.OrderDate,
			Status:     string(sum.Status),
			Address:    fromAddress(sum.Address),
		})
	}
	s.writeJSON(w, http.StatusOK, out)
}
