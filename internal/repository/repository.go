package repository

import (
	"context"
	"time"

	"carservice-backend/internal/domain"
)

type JobRepository interface {
	Insert(ctx context.Context, job *domain.Job) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Job, error)
	FindAll(ctx context.Context) ([]domain.Job, error)
	FindByCar(ctx context.Context, regNo string) ([]domain.Job, error)
	FindByGarage(ctx context.Context, garageID int64) ([]domain.Job, error)
	FindOpenSince(ctx context.Context, cutoff time.Time) ([]domain.Job, error)
	Update(ctx context.Context, job *domain.Job) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)

	// AverageCostByCustomer averages cost over the customer's completed,
	// priced jobs. Returns 0 when no job qualifies.
	AverageCostByCustomer(ctx context.Context, customerID int64) (float64, error)
}

type PaymentRepository interface {
	Insert(ctx context.Context, payment *domain.Payment) (int64, error)
	GetByJob(ctx context.Context, jobID int64) (*domain.Payment, error)
	UpdateStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus) (bool, error)
}

type CustomerRepository interface {
	Insert(ctx context.Context, customer *domain.Customer) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Customer, error)
	FindAll(ctx context.Context) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type CarRepository interface {
	Insert(ctx context.Context, car *domain.Car) error
	GetByRegNo(ctx context.Context, regNo string) (*domain.Car, error)
	FindAll(ctx context.Context) ([]domain.Car, error)
	FindByCustomer(ctx context.Context, customerID int64) ([]domain.Car, error)
	Update(ctx context.Context, car *domain.Car) (bool, error)
	Delete(ctx context.Context, regNo string) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type GarageRepository interface {
	Insert(ctx context.Context, garage *domain.Garage) (int64, error)
	GetByID(ctx context.Context, id int64) (*domain.Garage, error)
	FindAll(ctx context.Context) ([]domain.Garage, error)
	Update(ctx context.Context, garage *domain.Garage) (bool, error)
	Delete(ctx context.Context, id int64) (bool, error)
	Count(ctx context.Context) (int64, error)
}

type ActivityRepository interface {
	Insert(ctx context.Context, activity *domain.Activity) (int64, error)
	FindRecent(ctx context.Context, limit int) ([]domain.Activity, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int64, error)
}

type UserRepository interface {
	GetByUsername(ctx context.Context, username string) (*domain.User, error)
}
