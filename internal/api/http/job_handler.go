package http

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/service"
)

type JobHandler struct {
	jobSvc service.JobService
}

func NewJobHandler(jobSvc service.JobService) *JobHandler {
	return &JobHandler{jobSvc: jobSvc}
}

type jobRequest struct {
	GarageID int64      `json:"garage_id" validate:"required,gt=0"`
	RegNo    string     `json:"reg_no" validate:"required"`
	DateIn   time.Time  `json:"date_in" validate:"required"`
	DateOut  *time.Time `json:"date_out,omitempty"`
	Cost     *float64   `json:"cost,omitempty"`
}

type completeJobRequest struct {
	CompletedAt *time.Time `json:"completed_at,omitempty"`
}

func (h *JobHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req jobRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	job := &domain.Job{
		GarageID: req.GarageID,
		RegNo:    req.RegNo,
		DateIn:   req.DateIn,
		DateOut:  req.DateOut,
		Cost:     req.Cost,
	}
	if _, err := h.jobSvc.Create(r.Context(), ActorFrom(r.Context()), job); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, job)
}

func (h *JobHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	job, err := h.jobSvc.FindByID(r.Context(), id)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// List returns all jobs, or the jobs of one car or one garage when the
// reg_no or garage_id query parameter is present.
func (h *JobHandler) List(w http.ResponseWriter, r *http.Request) {
	var (
		jobs []domain.Job
		err  error
	)
	switch {
	case r.URL.Query().Get("reg_no") != "":
		jobs, err = h.jobSvc.FindByCar(r.Context(), r.URL.Query().Get("reg_no"))
	case r.URL.Query().Get("garage_id") != "":
		var garageID int64
		garageID, err = strconv.ParseInt(r.URL.Query().Get("garage_id"), 10, 64)
		if err != nil {
			writeError(w, fmt.Errorf("%w: invalid garage_id", domain.ErrValidation))
			return
		}
		jobs, err = h.jobSvc.FindByGarage(r.Context(), garageID)
	default:
		jobs, err = h.jobSvc.FindAll(r.Context())
	}
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, jobs)
}

func (h *JobHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req jobRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	job := &domain.Job{
		ID:       id,
		GarageID: req.GarageID,
		RegNo:    req.RegNo,
		DateIn:   req.DateIn,
		DateOut:  req.DateOut,
		Cost:     req.Cost,
	}
	updated, err := h.jobSvc.Update(r.Context(), ActorFrom(r.Context()), job)
	if err != nil {
		writeError(w, err)
		return
	}
	if !updated {
		writeError(w, fmt.Errorf("%w: job %d", domain.ErrNotFound, id))
		return
	}
	writeJSON(w, http.StatusOK, job)
}

// Complete closes an open job. Without a completed_at in the body the
// current time is used.
func (h *JobHandler) Complete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req completeJobRequest
	if r.ContentLength > 0 {
		if err := decodeAndValidate(r, &req); err != nil {
			writeError(w, err)
			return
		}
	}
	completedAt := time.Now()
	if req.CompletedAt != nil {
		completedAt = *req.CompletedAt
	}

	job, err := h.jobSvc.Complete(r.Context(), ActorFrom(r.Context()), id, completedAt)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, job)
}

func (h *JobHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}
	deleted, err := h.jobSvc.Delete(r.Context(), ActorFrom(r.Context()), id)
	if err != nil {
		writeError(w, err)
		return
	}
	if !deleted {
		writeError(w, fmt.Errorf("%w: job %d", domain.ErrNotFound, id))
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pathID parses a numeric mux path variable.
func pathID(r *http.Request, name string) (int64, error) {
	raw := mux.Vars(r)[name]
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%w: invalid %s %q", domain.ErrValidation, name, raw)
	}
	return id, nil
}
