package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"carservice-backend/internal/service"
)

type BillingHandler struct {
	billingSvc service.BillingService
}

func NewBillingHandler(billingSvc service.BillingService) *BillingHandler {
	return &BillingHandler{billingSvc: billingSvc}
}

type averageCostResponse struct {
	CustomerID  int64   `json:"customer_id"`
	AverageCost float64 `json:"average_cost"`
}

type serviceDaysResponse struct {
	RegNo            string `json:"reg_no"`
	TotalServiceDays int64  `json:"total_service_days"`
}

func (h *BillingHandler) AverageCost(w http.ResponseWriter, r *http.Request) {
	customerID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	avg, err := h.billingSvc.AverageServiceCost(r.Context(), customerID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, averageCostResponse{CustomerID: customerID, AverageCost: avg})
}

func (h *BillingHandler) ServiceDays(w http.ResponseWriter, r *http.Request) {
	regNo := mux.Vars(r)["regNo"]

	days, err := h.billingSvc.TotalServiceDays(r.Context(), regNo)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, serviceDaysResponse{RegNo: regNo, TotalServiceDays: days})
}
