package service

import (
	"context"
	"time"

	"github.com/stretchr/testify/mock"

	"carservice-backend/internal/domain"
)

// MockJobRepo
type MockJobRepo struct {
	mock.Mock
}

func (m *MockJobRepo) Insert(ctx context.Context, job *domain.Job) (int64, error) {
	args := m.Called(ctx, job)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) GetByID(ctx context.Context, id int64) (*domain.Job, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Job), args.Error(1)
}
func (m *MockJobRepo) FindAll(ctx context.Context) ([]domain.Job, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FindByCar(ctx context.Context, regNo string) ([]domain.Job, error) {
	args := m.Called(ctx, regNo)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FindByGarage(ctx context.Context, garageID int64) ([]domain.Job, error) {
	args := m.Called(ctx, garageID)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) FindOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Job, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).([]domain.Job), args.Error(1)
}
func (m *MockJobRepo) Update(ctx context.Context, job *domain.Job) (bool, error) {
	args := m.Called(ctx, job)
	return args.Bool(0), args.Error(1)
}
func (m *MockJobRepo) Delete(ctx context.Context, id int64) (bool, error) {
	args := m.Called(ctx, id)
	return args.Bool(0), args.Error(1)
}
func (m *MockJobRepo) Count(ctx context.Context) (int64, error) {
	args := m.Called(ctx)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockJobRepo) AverageCostByCustomer(ctx context.Context, customerID int64) (float64, error) {
	args := m.Called(ctx, customerID)
	return args.Get(0).(float64), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Insert(ctx context.Context, payment *domain.Payment) (int64, error) {
	args := m.Called(ctx, payment)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockPaymentRepo) GetByJob(ctx context.Context, jobID int64) (*domain.Payment, error) {
	args := m.Called(ctx, jobID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) UpdateStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus) (bool, error) {
	args := m.Called(ctx, paymentID, status)
	return args.Bool(0), args.Error(1)
}

// MockActivityRepo
type MockActivityRepo struct {
	mock.Mock
}

func (m *MockActivityRepo) Insert(ctx context.Context, activity *domain.Activity) (int64, error) {
	args := m.Called(ctx, activity)
	return args.Get(0).(int64), args.Error(1)
}
func (m *MockActivityRepo) FindRecent(ctx context.Context, limit int) ([]domain.Activity, error) {
	args := m.Called(ctx, limit)
	return args.Get(0).([]domain.Activity), args.Error(1)
}
func (m *MockActivityRepo) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error) {
	args := m.Called(ctx, cutoff)
	return args.Get(0).(int64), args.Error(1)
}

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) GetByUsername(ctx context.Context, username string) (*domain.User, error) {
	args := m.Called(ctx, username)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

// noopActivityService discards audit records; tests that assert on audit use
// a real activityService over a MockActivityRepo instead.
type noopActivityService struct{}

func (noopActivityService) Record(context.Context, domain.ActivityType, domain.ActivityAction, string, string) {
}
func (noopActivityService) Recent(context.Context) ([]domain.Activity, error) {
	return nil, nil
}
func (noopActivityService) PurgeOlderThan(context.Context, time.Time) (int64, error) {
	return 0, nil
}
