package http

import (
	"net/http"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/service"
)

type PaymentHandler struct {
	paymentSvc service.PaymentService
}

func NewPaymentHandler(paymentSvc service.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentSvc: paymentSvc}
}

type processPaymentRequest struct {
	PaymentMethod domain.PaymentMethod `json:"payment_method" validate:"required"`
}

type verifyPaymentResponse struct {
	JobID int64 `json:"job_id"`
	Paid  bool  `json:"paid"`
}

// Process settles a completed job. A second call for the same job returns
// a conflict and leaves the original payment untouched.
func (h *PaymentHandler) Process(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	var req processPaymentRequest
	if err := decodeAndValidate(r, &req); err != nil {
		writeError(w, err)
		return
	}

	payment, err := h.paymentSvc.ProcessPayment(r.Context(), ActorFrom(r.Context()), jobID, req.PaymentMethod)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, payment)
}

func (h *PaymentHandler) Verify(w http.ResponseWriter, r *http.Request) {
	jobID, err := pathID(r, "id")
	if err != nil {
		writeError(w, err)
		return
	}

	paid, err := h.paymentSvc.VerifyPayment(r.Context(), jobID)
	if err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, verifyPaymentResponse{JobID: jobID, Paid: paid})
}
