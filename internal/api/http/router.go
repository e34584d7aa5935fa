// Package http exposes the REST surface. Every tenant-scoped route lives
// under /api/v1/{tenant}/ and passes through token validation plus tenant
// resolution before reaching a handler.
package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"aris-backend/internal/security"
	"aris-backend/internal/service"
)

type RouterDeps struct {
	Tokens    security.TokenManager
	Tenants   service.TenantService
	Auth      service.AuthService
	Equipment service.EquipmentService
	Customers service.CustomerService
	Rentals   service.RentalService
}

func NewRouter(deps RouterDeps) *mux.Router {
	r := mux.NewRouter()
	r.Use(loggingMiddleware)

	authHandler := NewAuthHandler(deps.Auth, deps.Tenants)
	equipmentHandler := NewEquipmentHandler(deps.Equipment)
	customerHandler := NewCustomerHandler(deps.Customers)
	rentalHandler := NewRentalHandler(deps.Rentals)

	api := r.PathPrefix("/api/v1").Subrouter()

	// Public routes.
	api.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	}).Methods(http.MethodGet)
	api.HandleFunc("/tenants", authHandler.Tenants).Methods(http.MethodGet)
	api.HandleFunc("/auth/{tenant}/login", authHandler.Login).Methods(http.MethodPost)
	api.HandleFunc("/auth/refresh", authHandler.Refresh).Methods(http.MethodPost)

	// Authenticated, tenant-agnostic.
	me := api.PathPrefix("/auth").Subrouter()
	me.Use(authMiddleware(deps.Tokens))
	me.HandleFunc("/me", authHandler.Me).Methods(http.MethodGet)

	// Tenant-scoped routes.
	tenant := api.PathPrefix("/{tenant}").Subrouter()
	tenant.Use(authMiddleware(deps.Tokens), tenantMiddleware(deps.Tenants))

	tenant.HandleFunc("/equipment", equipmentHandler.List).Methods(http.MethodGet)
	tenant.HandleFunc("/equipment", equipmentHandler.Create).Methods(http.MethodPost)
	tenant.HandleFunc("/equipment/export", equipmentHandler.Export).Methods(http.MethodGet)
	tenant.HandleFunc("/equipment/kpis", equipmentHandler.KPIs).Methods(http.MethodGet)
	tenant.HandleFunc("/equipment/bulk", equipmentHandler.Bulk).Methods(http.MethodPost)
	tenant.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Get).Methods(http.MethodGet)
	tenant.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Update).Methods(http.MethodPut)
	tenant.HandleFunc("/equipment/{id:[0-9]+}", equipmentHandler.Delete).Methods(http.MethodDelete)

	tenant.HandleFunc("/customers", customerHandler.List).Methods(http.MethodGet)
	tenant.HandleFunc("/customers", customerHandler.Create).Methods(http.MethodPost)
	tenant.HandleFunc("/customers/export", customerHandler.Export).Methods(http.MethodGet)
	tenant.HandleFunc("/customers/kpis", customerHandler.KPIs).Methods(http.MethodGet)
	tenant.HandleFunc("/customers/bulk", customerHandler.Bulk).Methods(http.MethodPost)
	tenant.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Get).Methods(http.MethodGet)
	tenant.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Update).Methods(http.MethodPut)
	tenant.HandleFunc("/customers/{id:[0-9]+}", customerHandler.Delete).Methods(http.MethodDelete)
	tenant.HandleFunc("/customers/{id:[0-9]+}/deactivate", customerHandler.Deactivate).Methods(http.MethodPost)
	tenant.HandleFunc("/customers/{id:[0-9]+}/rentals", customerHandler.Rentals).Methods(http.MethodGet)

	tenant.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	tenant.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	tenant.HandleFunc("/rentals/export", rentalHandler.Export).Methods(http.MethodGet)
	tenant.HandleFunc("/rentals/kpis", rentalHandler.KPIs).Methods(http.MethodGet)
	tenant.HandleFunc("/rentals/{id:[0-9]+}", rentalHandler.Get).Methods(http.MethodGet)
	tenant.HandleFunc("/rentals/{id:[0-9]+}/return", rentalHandler.Return).Methods(http.MethodPost)
	tenant.HandleFunc("/rentals/{id:[0-9]+}/extend", rentalHandler.Extend).Methods(http.MethodPost)
	tenant.HandleFunc("/rentals/{id:[0-9]+}/payment", rentalHandler.UpdatePayment).Methods(http.MethodPost)
	tenant.HandleFunc("/rentals/{id:[0-9]+}/invoice", rentalHandler.GenerateInvoice).Methods(http.MethodPost)

	return r
}
