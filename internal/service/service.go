package service

import (
	"context"
	"time"

	"carservice-backend/internal/domain"
)

// JobService guards the job lifecycle: every persist is validated, and the
// open-to-completed transition happens only through Complete.
type JobService interface {
	FindByID(ctx context.Context, id int64) (*domain.Job, error)
	FindAll(ctx context.Context) ([]domain.Job, error)
	FindByCar(ctx context.Context, regNo string) ([]domain.Job, error)
	FindByGarage(ctx context.Context, garageID int64) ([]domain.Job, error)
	Create(ctx context.Context, actor string, job *domain.Job) (int64, error)
	Update(ctx context.Context, actor string, job *domain.Job) (bool, error)
	Complete(ctx context.Context, actor string, jobID int64, completedAt time.Time) (*domain.Job, error)
	Delete(ctx context.Context, actor string, jobID int64) (bool, error)
}

// PaymentService enforces at-most-one settlement per completed job.
type PaymentService interface {
	ProcessPayment(ctx context.Context, actor string, jobID int64, method domain.PaymentMethod) (*domain.Payment, error)
	VerifyPayment(ctx context.Context, jobID int64) (bool, error)
}

// BillingService computes derived statistics from historical job records.
type BillingService interface {
	AverageServiceCost(ctx context.Context, customerID int64) (float64, error)
	TotalServiceDays(ctx context.Context, regNo string) (int64, error)
}

// ActivityService appends audit entries. Record never returns an error:
// a failed audit write must not abort the business operation it describes.
type ActivityService interface {
	Record(ctx context.Context, typ domain.ActivityType, action domain.ActivityAction, description, actor string)
	Recent(ctx context.Context) ([]domain.Activity, error)
	PurgeOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type AuthService interface {
	Login(ctx context.Context, username, password string) (string, *domain.User, error)
}

type CustomerService interface {
	FindByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Create(ctx context.Context, actor string, customer *domain.Customer) (int64, error)
	Update(ctx context.Context, actor string, customer *domain.Customer) (bool, error)
	Delete(ctx context.Context, actor string, id int64) (bool, error)
}

type CarService interface {
	FindByRegNo(ctx context.Context, regNo string) (*domain.Car, error)
	FindAll(ctx context.Context) ([]domain.Car, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]domain.Car, error)
	Create(ctx context.Context, actor string, car *domain.Car) error
	Update(ctx context.Context, actor string, car *domain.Car) (bool, error)
	Delete(ctx context.Context, actor string, regNo string) (bool, error)
}

type GarageService interface {
	FindByID(ctx context.Context, id int64) (*domain.Garage, error)
	FindAll(ctx context.Context) ([]domain.Garage, error)
	Create(ctx context.Context, actor string, garage *domain.Garage) (int64, error)
	Update(ctx context.Context, actor string, garage *domain.Garage) (bool, error)
	Delete(ctx context.Context, actor string, id int64) (bool, error)
}

// DashboardSummary holds the record counts and recent activity shown on the
// landing screen.
type DashboardSummary struct {
	Customers      int64             `json:"customers"`
	Cars           int64             `json:"cars"`
	Garages        int64             `json:"garages"`
	Jobs           int64             `json:"jobs"`
	RecentActivity []domain.Activity `json:"recent_activity"`
}

type DashboardService interface {
	Summary(ctx context.Context) (*DashboardSummary, error)
}
