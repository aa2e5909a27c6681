package postgres

import (
	"database/sql"
	"errors"
	"fmt"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"

	"github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.JobRepository
	repository.PaymentRepository
	repository.CustomerRepository
	repository.CarRepository
	repository.GarageRepository
	repository.ActivityRepository
	repository.UserRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		JobRepository:      NewJobRepository(db),
		PaymentRepository:  NewPaymentRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		CarRepository:      NewCarRepository(db),
		GarageRepository:   NewGarageRepository(db),
		ActivityRepository: NewActivityRepository(db),
		UserRepository:     NewUserRepository(db),
	}
}

// uniqueViolation is the Postgres error code for a broken unique constraint.
const uniqueViolation = "23505"

// storeErr translates a database error into the domain error taxonomy.
func storeErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%w: %s", domain.ErrNotFound, op)
	}
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return fmt.Errorf("%w: %s: %v", domain.ErrConflict, op, err)
	}
	return fmt.Errorf("%w: %s: %v", domain.ErrStore, op, err)
}
