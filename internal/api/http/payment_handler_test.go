package http

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carservice-backend/internal/domain"
)

type MockPaymentService struct {
	mock.Mock
}

func (m *MockPaymentService) ProcessPayment(ctx context.Context, actor string, jobID int64, method domain.PaymentMethod) (*domain.Payment, error) {
	args := m.Called(ctx, actor, jobID, method)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}

func (m *MockPaymentService) VerifyPayment(ctx context.Context, jobID int64) (bool, error) {
	args := m.Called(ctx, jobID)
	return args.Bool(0), args.Error(1)
}

func TestPaymentHandler_Process(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	svc.On("ProcessPayment", mock.Anything, "system", int64(5), domain.PaymentMethodCard).
		Return(&domain.Payment{
			ID:            1,
			JobID:         5,
			Amount:        250.50,
			PaymentDate:   time.Now(),
			PaymentMethod: domain.PaymentMethodCard,
			PaymentStatus: domain.PaymentStatusPaid,
		}, nil)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/5/payment",
		bytes.NewBufferString(`{"payment_method":"CARD"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	assert.Equal(t, http.StatusCreated, rec.Code)
	svc.AssertExpectations(t)
}

func TestPaymentHandler_Process_AlreadyPaid(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	svc.On("ProcessPayment", mock.Anything, "system", int64(5), domain.PaymentMethodCash).
		Return(nil, domain.ErrConflict)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/5/payment",
		bytes.NewBufferString(`{"payment_method":"CASH"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	require.NotNil(t, env.Error)
	assert.Equal(t, "CONFLICT", env.Error.Code)
}

func TestPaymentHandler_Process_IncompleteJob(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	svc.On("ProcessPayment", mock.Anything, "system", int64(5), domain.PaymentMethodCash).
		Return(nil, domain.ErrInvalidState)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/5/payment",
		bytes.NewBufferString(`{"payment_method":"CASH"}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	assert.Equal(t, http.StatusConflict, rec.Code)
	env := decodeEnvelope(t, rec.Body)
	require.NotNil(t, env.Error)
	assert.Equal(t, "INVALID_STATE", env.Error.Code)
}

func TestPaymentHandler_Process_MissingMethod(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/5/payment", bytes.NewBufferString(`{}`))
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	handler.Process(rec, req)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	svc.AssertNotCalled(t, "ProcessPayment", mock.Anything, mock.Anything, mock.Anything, mock.Anything)
}

func TestPaymentHandler_Verify(t *testing.T) {
	svc := new(MockPaymentService)
	handler := NewPaymentHandler(svc)

	svc.On("VerifyPayment", mock.Anything, int64(5)).Return(true, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/v1/jobs/5/payment/verify", nil)
	req = mux.SetURLVars(req, map[string]string{"id": "5"})
	rec := httptest.NewRecorder()

	handler.Verify(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"paid":true`)
}
