package http

import (
	"fmt"
	"net/http"

	"github.com/gorilla/mux"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/service"
)

type CarHandler struct {
	carSvc service.CarService
}

func NewCarHandler(carSvc service.CarService) *CarHandler {
	return &CarHandler{carSvc: carSvc}
}

type carRequest struct {
	RegNo      string `json:"reg_no" validate:"required"`
	Make       string `json:"make" validate:"required"`
	Model      string `json:"model"`
	Year       int    `json:"year" validate:"required"`
	CustomerID int64  `json:"customer_id" validate:"required,gt=0"`
}

func (h *CarHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req carRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	car := &domain.Car{
		RegNo:      req.RegNo,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		CustomerID: req.CustomerID,
	}
	if err := h.carSvc.Create(r.Context(), ActorFrom(r.Context()), car); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, car)
}

func (h *CarHandler) Get(w http.ResponseWriter, r *http.Request) {
	regNo := mux.Vars(r)["regNo"]
	car, err := h.carSvc.FindByRegNo(r.Context(), regNo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) List(w http.ResponseWriter, r *http.Request) {
	cars, err := h.carSvc.FindAll(r.Context())
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, cars)
}

func (h *CarHandler) Update(w http.ResponseWriter, r *http.Request) {
	regNo := mux.Vars(r)["regNo"]

	var req carRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	car := &domain.Car{
		RegNo:      regNo,
		Make:       req.Make,
		Model:      req.Model,
		Year:       req.Year,
		CustomerID: req.CustomerID,
	}
	updated, err := h.carSvc.Update(r.Context(), ActorFrom(r.Context()), car)
	if err != nil {
		writeError(w, err)
		return
	}
	if !updated {
		writeError(w, fmt.Errorf("%w: car %s", domain.ErrNotFound, regNo))
		return
	}
	writeJSON(w, http.StatusOK, car)
}

func (h *CarHandler) Delete(w http.ResponseWriter, r *http.Request) {
	regNo := mux.Vars(r)["regNo"]
	deleted, err := h.carSvc.Delete(r.Context(), ActorFrom(r.Context()), regNo)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, fmt.Errorf("%w: car %s", domain.ErrNotFound, regNo))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
