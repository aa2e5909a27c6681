package postgres

import (
	"context"
	"database/sql"
	"errors"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

// Insert relies on the UNIQUE (job_id) index; a second settlement attempt for
// the same job comes back as domain.ErrConflict.
func (r *paymentRepository) Insert(ctx context.Context, p *domain.Payment) (int64, error) {
	query := `INSERT INTO payments (job_id, amount, payment_date, payment_method, payment_status)
	          VALUES ($1, $2, $3, $4, $5) RETURNING id`
	err := r.db.QueryRowContext(ctx, query, p.JobID, p.Amount, p.PaymentDate, p.PaymentMethod, p.PaymentStatus).Scan(&p.ID)
	if err != nil {
		return 0, storeErr("insert payment", err)
	}
	return p.ID, nil
}

// GetByJob returns (nil, nil) when the job has no payment; absence is a
// normal result, not an error.
func (r *paymentRepository) GetByJob(ctx context.Context, jobID int64) (*domain.Payment, error) {
	p := &domain.Payment{}
	query := `SELECT id, job_id, amount, payment_date, payment_method, payment_status FROM payments WHERE job_id = $1`
	err := r.db.QueryRowContext(ctx, query, jobID).Scan(&p.ID, &p.JobID, &p.Amount, &p.PaymentDate, &p.PaymentMethod, &p.PaymentStatus)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, storeErr("get payment by job", err)
	}
	return p, nil
}

func (r *paymentRepository) UpdateStatus(ctx context.Context, paymentID int64, status domain.PaymentStatus) (bool, error) {
	res, err := r.db.ExecContext(ctx, `UPDATE payments SET payment_status = $1 WHERE id = $2`, status, paymentID)
	if err != nil {
		return false, storeErr("update payment status", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, storeErr("update payment status", err)
	}
	return n > 0, nil
}
