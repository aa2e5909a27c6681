package http

import (
	"net/http"

	"github.com/gorilla/mux"
)

// Handlers bundles everything the router mounts.
type Handlers struct {
	Auth      *AuthHandler
	Job       *JobHandler
	Payment   *PaymentHandler
	Billing   *BillingHandler
	Customer  *CustomerHandler
	Car       *CarHandler
	Garage    *GarageHandler
	Dashboard *DashboardHandler
}

// NewRouter wires all routes under /api/v1. Everything except login requires
// a bearer token.
func NewRouter(h Handlers, auth *AuthMiddleware) *mux.Router {
	r := mux.NewRouter()
	r.Use(RequestID, RequestLogger)

	api := r.PathPrefix("/api/v1").Subrouter()
	api.HandleFunc("/login", h.Auth.Login).Methods(http.MethodPost)

	protected := api.NewRoute().Subrouter()
	protected.Use(auth.Require)

	// Jobs
	protected.HandleFunc("/jobs", h.Job.Create).Methods(http.MethodPost)
	protected.HandleFunc("/jobs", h.Job.List).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/{id:[0-9]+}", h.Job.Get).Methods(http.MethodGet)
	protected.HandleFunc("/jobs/{id:[0-9]+}", h.Job.Update).Methods(http.MethodPut)
	protected.HandleFunc("/jobs/{id:[0-9]+}", h.Job.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/jobs/{id:[0-9]+}/complete", h.Job.Complete).Methods(http.MethodPost)

	// Payments
	protected.HandleFunc("/jobs/{id:[0-9]+}/payment", h.Payment.Process).Methods(http.MethodPost)
	protected.HandleFunc("/jobs/{id:[0-9]+}/payment/verify", h.Payment.Verify).Methods(http.MethodGet)

	// Billing aggregates
	protected.HandleFunc("/customers/{id:[0-9]+}/average-cost", h.Billing.AverageCost).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{regNo}/service-days", h.Billing.ServiceDays).Methods(http.MethodGet)

	// Customers
	protected.HandleFunc("/customers", h.Customer.Create).Methods(http.MethodPost)
	protected.HandleFunc("/customers", h.Customer.List).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", h.Customer.Get).Methods(http.MethodGet)
	protected.HandleFunc("/customers/{id:[0-9]+}", h.Customer.Update).Methods(http.MethodPut)
	protected.HandleFunc("/customers/{id:[0-9]+}", h.Customer.Delete).Methods(http.MethodDelete)
	protected.HandleFunc("/customers/{id:[0-9]+}/cars", h.Customer.Cars).Methods(http.MethodGet)

	// Cars
	protected.HandleFunc("/cars", h.Car.Create).Methods(http.MethodPost)
	protected.HandleFunc("/cars", h.Car.List).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{regNo}", h.Car.Get).Methods(http.MethodGet)
	protected.HandleFunc("/cars/{regNo}", h.Car.Update).Methods(http.MethodPut)
	protected.HandleFunc("/cars/{regNo}", h.Car.Delete).Methods(http.MethodDelete)

	// Garages
	protected.HandleFunc("/garages", h.Garage.Create).Methods(http.MethodPost)
	protected.HandleFunc("/garages", h.Garage.List).Methods(http.MethodGet)
	protected.HandleFunc("/garages/{id:[0-9]+}", h.Garage.Get).Methods(http.MethodGet)
	protected.HandleFunc("/garages/{id:[0-9]+}", h.Garage.Update).Methods(http.MethodPut)
	protected.HandleFunc("/garages/{id:[0-9]+}", h.Garage.Delete).Methods(http.MethodDelete)

	// Dashboard and audit trail
	protected.HandleFunc("/dashboard", h.Dashboard.Summary).Methods(http.MethodGet)
	protected.HandleFunc("/activity/recent", h.Dashboard.RecentActivity).Methods(http.MethodGet)

	return r
}
