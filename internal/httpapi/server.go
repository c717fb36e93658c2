package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"go.uber.org/zap"

	"github.com/khoward/bookshop/internal/catalog"
	"github.com/khoward/bookshop/internal/member"
	"github.com/khoward/bookshop/internal/ordering"
	"github.com/khoward/bookshop/internal/storage"
	"github.com/khoward/bookshop/pkg/metrics"
	"github.com/khoward/bookshop/pkg/types"
)

// Server routes HTTP requests to the bookshop services.
type Server struct {
	members *member.Service
	catalog *catalog.Service
	orders  *ordering.Service
	logger  *zap.Logger
	metrics *metrics.ServerMetrics
	mux     *http.ServeMux
}

// NewServer wires the services into an HTTP handler. metrics may be nil
// when instrumentation isn't wanted (tests).
func NewServer(members *member.Service, cat *catalog.Service, orders *ordering.Service, logger *zap.Logger, m *metrics.ServerMetrics) *Server {
	if logger == nil {
		logger = zap.NewNop()
	}
	s := &Server{
		members: members,
		catalog: cat,
		orders:  orders,
		logger:  logger,
		metrics: m,
		mux:     http.NewServeMux(),
	}
	s.routes()
	return s
}

func (s *Server) routes() {
	s.mux.Handle("POST /api/members", s.instrument("create_member", s.handleCreateMember))
	s.mux.Handle("GET /api/members", s.instrument("list_members", s.handleListMembers))
	s.mux.Handle("POST /api/items", s.instrument("create_item", s.handleCreateItem))
	s.mux.Handle("GET /api/items", s.instrument("list_items", s.handleListItems))
	s.mux.Handle("POST /api/orders", s.instrument("place_order", s.handlePlaceOrder))
	s.mux.Handle("GET /api/orders", s.instrument("list_orders", s.handleListOrders))
	s.mux.Handle("GET /api/orders/simple", s.instrument("order_summaries", s.handleOrderSummaries))
	s.mux.Handle("GET /api/orders/{id}", s.instrument("get_order", s.handleGetOrder))
	s.mux.Handle("POST /api/orders/{id}/cancel", s.instrument("cancel_order", s.handleCancelOrder))
	s.mux.Handle("POST /api/orders/{id}/delivery/complete", s.instrument("complete_delivery", s.handleCompleteDelivery))
	s.mux.HandleFunc("GET /healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	s.mux.Handle("GET /metrics", metrics.Handler())
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mux.ServeHTTP(w, r)
}

// statusRecorder captures the response status for logging and metrics.
type statusRecorder struct {
	http.ResponseWriter
	status int
}

func (r *statusRecorder) WriteHeader(status int) {
	r.status = status
	r.ResponseWriter.WriteHeader(status)
}

func (s *Server) instrument(name string, h http.HandlerFunc) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()
		rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}
		h(rec, r)
		elapsed := time.Since(start)

		s.logger.Debug("request handled",
			zap.String("handler", name),
			zap.Int("status", rec.status),
			zap.Duration("elapsed", elapsed))
		if s.metrics != nil {
			s.metrics.Requests.WithLabelValues(name, http.StatusText(rec.status)).Inc()
			s.metrics.LatencyMS.WithLabelValues(name).Observe(float64(elapsed.Milliseconds()))
		}
	})
}

// writeJSON encodes v as the response body with the given status.
func (s *Server) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if v != nil {
		if err := json.NewEncoder(w).Encode(v); err != nil {
			s.logger.Warn("response encode failed", zap.Error(err))
		}
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

// writeError maps domain errors to HTTP status codes: not-found lookups to
// 404, business-rule conflicts (stock, invalid transitions, duplicates) to
// 409, bad input to 400, everything else to 500.
func (s *Server) writeError(w http.ResponseWriter, err error) {
	var status int
	switch {
	case errors.Is(err, storage.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, storage.ErrAlreadyExists),
		errors.Is(err, types.ErrNotEnoughStock),
		errors.Is(err, types.ErrOrderAlreadyCancelled),
		errors.Is(err, types.ErrDeliveryCompleted):
		status = http.StatusConflict
	case errors.Is(err, types.ErrInvalidCount),
		errors.Is(err, types.ErrInvalidPrice),
		errors.Is(err, types.ErrInvalidStock),
		errors.Is(err, types.ErrEmptyName):
		status = http.StatusBadRequest
	default:
		status = http.StatusInternalServerError
		s.logger.Error("request failed", zap.Error(err))
	}
	s.writeJSON(w, status, errorResponse{Error: err.Error()})
}

// decodeJSON decodes the request body into v.
func decodeJSON(r *http.Request, v any) error {
	dec := json.NewDecoder(r.Body)
	dec.DisallowUnknownFields()
	return dec.Decode(v)
}
