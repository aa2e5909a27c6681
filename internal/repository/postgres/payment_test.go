package postgres

import (
	"context"
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"carservice-backend/internal/domain"
)

var paymentColumns = []string{"id", "job_id", "amount", "payment_date", "payment_method", "payment_status"}

func TestPaymentRepository_Insert(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	payment := &domain.Payment{
		JobID:         5,
		Amount:        250.50,
		PaymentDate:   time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC),
		PaymentMethod: domain.PaymentMethodCard,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	mock.ExpectQuery(`INSERT INTO payments`).
		WithArgs(payment.JobID, payment.Amount, payment.PaymentDate, string(payment.PaymentMethod), string(payment.PaymentStatus)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(int64(1)))

	id, err := repo.Insert(context.Background(), payment)

	require.NoError(t, err)
	assert.Equal(t, int64(1), id)
}

func TestPaymentRepository_Insert_DuplicateJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`INSERT INTO payments`).
		WillReturnError(&pq.Error{Code: "23505", Constraint: "payments_job_id_key"})

	_, err := repo.Insert(context.Background(), &domain.Payment{
		JobID:         5,
		PaymentDate:   time.Now(),
		PaymentMethod: domain.PaymentMethodCash,
		PaymentStatus: domain.PaymentStatusPaid,
	})

	assert.ErrorIs(t, err, domain.ErrConflict)
}

func TestPaymentRepository_GetByJob(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	paidAt := time.Date(2024, 1, 15, 12, 0, 0, 0, time.UTC)
	mock.ExpectQuery(`SELECT id, job_id, amount, payment_date, payment_method, payment_status FROM payments`).
		WithArgs(int64(5)).
		WillReturnRows(sqlmock.NewRows(paymentColumns).
			AddRow(int64(1), int64(5), 250.50, paidAt, "CARD", "PAID"))

	payment, err := repo.GetByJob(context.Background(), 5)

	require.NoError(t, err)
	require.NotNil(t, payment)
	assert.Equal(t, domain.PaymentMethodCard, payment.PaymentMethod)
	assert.Equal(t, domain.PaymentStatusPaid, payment.PaymentStatus)
}

func TestPaymentRepository_GetByJob_NonePresent(t *testing.T) {
	db, mock := newMockDB(t)
	repo := NewPaymentRepository(db)

	mock.ExpectQuery(`SELECT id, job_id, amount, payment_date, payment_method, payment_status FROM payments`).
		WithArgs(int64(5)).
		WillReturnError(sql.ErrNoRows)

	payment, err := repo.GetByJob(context.Background(), 5)

	require.NoError(t, err)
	assert.Nil(t, payment)
}
