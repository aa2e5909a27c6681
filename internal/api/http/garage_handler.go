package http

import (
	"fmt"
	"net/http"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/service"
)

type GarageHandler struct {
	garageSvc service.GarageService
}

func NewGarageHandler(garageSvc service.GarageService) *GarageHandler {
	return &GarageHandler{garageSvc: garageSvc}
}

type garageRequest struct {
	Name     string `json:"name" validate:"required"`
	Address  string `json:"address"`
	Town     string `json:"town"`
	PostCode string `json:"post_code" validate:"omitempty,postcode_iso3166_alpha2=GB"`
	PhoneNo  string `json:"phone_no" validate:"omitempty,e164|numeric"`
}

func (h *GarageHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req garageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	garage := &domain.Garage{
		Name:     req.Name,
		Address:  req.Address,
		Town:     req.Town,
		PostCode: req.PostCode,
		PhoneNo:  req.PhoneNo,
	}
	if _, err := h.garageSvc.Create(r.Context(), ActorFrom(r.Context()), garage); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, garage)
}

func (h *GarageHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	garage, err := h.garageSvc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, garage)
}

func (h *GarageHandler) List(w http.ResponseWriter, r *http.Request) {
	garages, err := h.garageSvc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, garages)
}

func (h *GarageHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req garageRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	garage := &domain.Garage{
		ID:       id,
		Name:     req.Name,
		Address:  req.Address,
		Town:     req.Town,
		PostCode: req.PostCode,
		PhoneNo:  req.PhoneNo,
	}
	updated, err := h.garageSvc.Update(r.Context(), ActorFrom(r.Context()), garage)
	if err != nil {
		writeError(w, err)
		return
	}
	if !updated {
		writeError(w, fmt.Errorf("%w: garage %d", domain.ErrNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, garage)
}

func (h *GarageHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := h.garageSvc.Delete(r.Context(), ActorFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, fmt.Errorf("%w: garage %d", domain.ErrNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
