package http

import (
	"fmt"
	"net/http"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/service"
)

type CustomerHandler struct {
	customerSvc service.CustomerService
	carSvc      service.CarService
}

func NewCustomerHandler(customerSvc service.CustomerService, carSvc service.CarService) *CustomerHandler {
	return &CustomerHandler{customerSvc: customerSvc, carSvc: carSvc}
}

type customerRequest struct {
	Forename string `json:"forename" validate:"required"`
	Surname  string `json:"surname" validate:"required"`
	Address  string `json:"address"`
	PostCode string `json:"post_code" validate:"omitempty,postcode_iso3166_alpha2=GB"`
	PhoneNo  string `json:"phone_no" validate:"omitempty,e164|numeric"`
}

func (h *CustomerHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req customerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer := &domain.Customer{
		Forename: req.Forename,
		Surname:  req.Surname,
		Address:  req.Address,
		PostCode: req.PostCode,
		PhoneNo:  req.PhoneNo,
	}
	if _, err := h.customerSvc.Create(r.Context(), ActorFrom(r.Context()), customer); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, customer)
}

func (h *CustomerHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	customer, err := h.customerSvc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) List(w http.ResponseWriter, r *http.Request) {
	customers, err := h.customerSvc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, customers)
}

// Cars lists the cars owned by one customer.
func (h *CustomerHandler) Cars(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	cars, err := h.carSvc.FindByCustomer(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CustomerHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req customerRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	customer := &domain.Customer{
		ID:       id,
		Forename: req.Forename,
		Surname:  req.Surname,
		Address:  req.Address,
		PostCode: req.PostCode,
		PhoneNo:  req.PhoneNo,
	}
	updated, err := h.customerSvc.Update(r.Context(), ActorFrom(r.Context()), customer)
	if err != nil {
		writeError(w, err)
		return
	}
	if !updated {
		writeError(w, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, customer)
}

func (h *CustomerHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := h.customerSvc.Delete(r.Context(), ActorFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, fmt.Errorf("%w: customer %d", domain.ErrNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
