package service

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"carservice-backend/internal/domain"
)

func TestPaymentService_ProcessPayment(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	activityRepo := new(MockActivityRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, NewActivityService(activityRepo, 20))

	jobRepo.On("GetByID", mock.Anything, int64(5)).Return(completedJob(5, 250.50), nil)
	paymentRepo.On("GetByJob", mock.Anything, int64(5)).Return(nil, nil)
	paymentRepo.On("Insert", mock.Anything, mock.MatchedBy(func(p *domain.Payment) bool {
		return p.JobID == 5 &&
			p.Amount == 250.50 &&
			p.PaymentMethod == domain.PaymentMethodCard &&
			p.PaymentStatus == domain.PaymentStatusPaid
	})).Return(int64(1), nil)
	activityRepo.On("Insert", mock.Anything, mock.MatchedBy(func(a *domain.Activity) bool {
		return a.Type == domain.ActivityTypePayment && a.ActorID == "mike"
	})).Return(int64(1), nil)

	payment, err := svc.ProcessPayment(context.Background(), "mike", 5, domain.PaymentMethodCard)

	require.NoError(t, err)
	assert.Equal(t, 250.50, payment.Amount)
	assert.Equal(t, domain.PaymentStatusPaid, payment.PaymentStatus)
	paymentRepo.AssertExpectations(t)
	activityRepo.AssertExpectations(t)
}

func TestPaymentService_ProcessPayment_UnpricedJobSettlesAtZero(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	job := openJob(6)
	out := job.DateIn.Add(24 * time.Hour)
	job.DateOut = &out
	jobRepo.On("GetByID", mock.Anything, int64(6)).Return(job, nil)
	paymentRepo.On("GetByJob", mock.Anything, int64(6)).Return(nil, nil)
	paymentRepo.On("Insert", mock.Anything, mock.Anything).Return(int64(2), nil)

	payment, err := svc.ProcessPayment(context.Background(), "mike", 6, domain.PaymentMethodCash)

	require.NoError(t, err)
	assert.Equal(t, 0.0, payment.Amount)
}

func TestPaymentService_ProcessPayment_IncompleteJob(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	jobRepo.On("GetByID", mock.Anything, int64(5)).Return(openJob(5), nil)

	_, err := svc.ProcessPayment(context.Background(), "mike", 5, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrInvalidState)
	paymentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessPayment_AlreadyPaid(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	jobRepo.On("GetByID", mock.Anything, int64(5)).Return(completedJob(5, 100), nil)
	paymentRepo.On("GetByJob", mock.Anything, int64(5)).Return(&domain.Payment{
		ID:            1,
		JobID:         5,
		PaymentStatus: domain.PaymentStatusPaid,
	}, nil)

	_, err := svc.ProcessPayment(context.Background(), "mike", 5, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrConflict)
	paymentRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessPayment_UnknownMethod(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	_, err := svc.ProcessPayment(context.Background(), "mike", 5, domain.PaymentMethod("CHEQUE"))

	assert.ErrorIs(t, err, domain.ErrValidation)
	jobRepo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestPaymentService_ProcessPayment_JobNotFound(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	jobRepo.On("GetByID", mock.Anything, int64(99)).Return(nil, domain.ErrNotFound)

	_, err := svc.ProcessPayment(context.Background(), "mike", 99, domain.PaymentMethodCash)

	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// fakePaymentStore behaves like the payments table: reads and writes are
// individually consistent, and a second insert for the same job fails on
// the unique constraint.
type fakePaymentStore struct {
	mu       sync.Mutex
	payments map[int64]*domain.Payment
	nextID   int64
}

func newFakePaymentStore() *fakePaymentStore {
	return &fakePaymentStore{payments: make(map[int64]*domain.Payment), nextID: 1}
}

func (f *fakePaymentStore) Insert(_ context.Context, payment *domain.Payment) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.payments[payment.JobID]; ok {
		return 0, fmt.Errorf("%w: payment already exists for job %d", domain.ErrConflict, payment.JobID)
	}
	payment.ID = f.nextID
	f.nextID++
	f.payments[payment.JobID] = payment
	return payment.ID, nil
}

func (f *fakePaymentStore) GetByJob(_ context.Context, jobID int64) (*domain.Payment, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if p, ok := f.payments[jobID]; ok {
		cp := *p
		return &cp, nil
	}
	return nil, nil
}

func (f *fakePaymentStore) UpdateStatus(_ context.Context, paymentID int64, status domain.PaymentStatus) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, p := range f.payments {
		if p.ID == paymentID {
			p.PaymentStatus = status
			return true, nil
		}
	}
	return false, nil
}

func TestPaymentService_ProcessPayment_ConcurrentSettlement(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := newFakePaymentStore()
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	jobRepo.On("GetByID", mock.Anything, int64(5)).Return(completedJob(5, 80), nil)

	const attempts = 8
	errs := make([]error, attempts)
	var wg sync.WaitGroup
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.ProcessPayment(context.Background(), "mike", 5, domain.PaymentMethodCash)
		}(i)
	}
	wg.Wait()

	var succeeded, conflicted int
	for _, err := range errs {
		switch {
		case err == nil:
			succeeded++
		case assert.ErrorIs(t, err, domain.ErrConflict):
			conflicted++
		}
	}
	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, conflicted)

	paid, err := svc.VerifyPayment(context.Background(), 5)
	require.NoError(t, err)
	assert.True(t, paid)
}

func TestPaymentService_VerifyPayment_NoPayment(t *testing.T) {
	jobRepo := new(MockJobRepo)
	paymentRepo := new(MockPaymentRepo)
	svc := NewPaymentService(paymentRepo, jobRepo, noopActivityService{})

	paymentRepo.On("GetByJob", mock.Anything, int64(5)).Return(nil, nil)

	paid, err := svc.VerifyPayment(context.Background(), 5)

	require.NoError(t, err)
	assert.False(t, paid)
}
