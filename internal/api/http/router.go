package http

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"roknsound-backend/internal/config"
	"roknsound-backend/internal/service"
)

// Handler bundles the services exposed over HTTP.
type Handler struct {
	equipment service.EquipmentService
	customers service.CustomerService
	rentals   service.RentalService
	payments  service.PaymentService
}

func NewHandler(
	equipment service.EquipmentService,
	customers service.CustomerService,
	rentals service.RentalService,
	payments service.PaymentService,
) *Handler {
	return &Handler{
		equipment: equipment,
		customers: customers,
		rentals:   rentals,
		payments:  payments,
	}
}

// NewRouter builds the API router with logging, rate limiting and GET
// caching applied to all /api/v1 routes.
func NewRouter(h *Handler, httpCfg config.HTTPConfig) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	r.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(rateLimitMiddleware(httpCfg.RateLimitPerSecond, httpCfg.RateLimitBurst))
	api.Use(cacheMiddleware(time.Duration(httpCfg.CacheTTLSeconds) * time.Second))

	// Equipment registry.
	api.HandleFunc("/equipment", h.createEquipment).Methods(http.MethodPost)
	api.HandleFunc("/equipment", h.listEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}", h.getEquipment).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}/status", h.setEquipmentStatus).Methods(http.MethodPatch)
	api.HandleFunc("/equipment/{id:[0-9]+}/availability", h.getAvailability).Methods(http.MethodGet)
	api.HandleFunc("/equipment/{id:[0-9]+}/maintenance", h.recordMaintenance).Methods(http.MethodPost)
	api.HandleFunc("/equipment/{id:[0-9]+}/maintenance", h.listMaintenance).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.listCategories).Methods(http.MethodGet)
	api.HandleFunc("/categories", h.createCategory).Methods(http.MethodPost)

	// Customers.
	api.HandleFunc("/customers", h.createCustomer).Methods(http.MethodPost)
	api.HandleFunc("/customers", h.listCustomers).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}", h.getCustomer).Methods(http.MethodGet)
	api.HandleFunc("/customers/{id:[0-9]+}/rentals", h.listCustomerRentals).Methods(http.MethodGet)

	// Rental lifecycle.
	api.HandleFunc("/rentals", h.createRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals", h.listRentals).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}", h.getRental).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/items", h.addRentalItem).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/items/{itemID:[0-9]+}", h.removeRentalItem).Methods(http.MethodDelete)
	api.HandleFunc("/rentals/{id:[0-9]+}/sign", h.signContract).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/cancel", h.cancelRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/extend", h.extendRental).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/return", h.returnItems).Methods(http.MethodPost)

	// Payments.
	api.HandleFunc("/rentals/{id:[0-9]+}/payments", h.recordPayment).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id:[0-9]+}/payments", h.listPayments).Methods(http.MethodGet)
	api.HandleFunc("/rentals/{id:[0-9]+}/payments/summary", h.paymentSummary).Methods(http.MethodGet)

	return r
}

// pathID parses a numeric path variable.
func pathID(r *http.Request, name string) (int32, bool) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 32)
	if err != nil || id <= 0 {
		return 0, false
	}
	return int32(id), true
}

// pagination reads page/page_size query parameters with sane defaults.
func pagination(r *http.Request) (page, pageSize int32) {
	page, pageSize = 1, 20
	if v, err := strconv.ParseInt(r.URL.Query().Get("page"), 10, 32); err == nil && v > 0 {
		page = int32(v)
	}
	if v, err := strconv.ParseInt(r.URL.Query().Get("page_size"), 10, 32); err == nil && v > 0 && v <= 100 {
		pageSize = int32(v)
	}
	return page, pageSize
}
