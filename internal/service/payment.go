package service

import (
	"context"
	"fmt"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
	"carservice-backend/internal/utils"
)

type paymentService struct {
	paymentRepo repository.PaymentRepository
	jobRepo     repository.JobRepository
	activitySvc ActivityService
	settleLocks *utils.KeyMutex
}

func NewPaymentService(paymentRepo repository.PaymentRepository, jobRepo repository.JobRepository, activitySvc ActivityService) PaymentService {
	return &paymentService{
		paymentRepo: paymentRepo,
		jobRepo:     jobRepo,
		activitySvc: activitySvc,
		settleLocks: utils.NewKeyMutex(),
	}
}

// ProcessPayment settles a completed job exactly once. The per-job lock
// serializes concurrent attempts in this process; the UNIQUE (job_id) index
// on payments is the backstop across processes.
func (s *paymentService) ProcessPayment(ctx context.Context, actor string, jobID int64, method domain.PaymentMethod) (*domain.Payment, error) {
	if !domain.ValidPaymentMethod(method) {
		return nil, fmt.Errorf("%w: unknown payment method %q", domain.ErrValidation, method)
	}

	s.settleLocks.Lock(jobID)
	defer s.settleLocks.Unlock(jobID)

	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if !job.Completed() {
		return nil, fmt.Errorf("%w: cannot process payment for incomplete job", domain.ErrInvalidState)
	}

	existing, err := s.paymentRepo.GetByJob(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if existing != nil && existing.PaymentStatus == domain.PaymentStatusPaid {
		return nil, fmt.Errorf("%w: payment already processed for job %d", domain.ErrConflict, jobID)
	}

	var amount float64
	if job.Cost != nil {
		amount = *job.Cost
	}
	payment := &domain.Payment{
		JobID:         jobID,
		Amount:        amount,
		PaymentDate:   time.Now(),
		PaymentMethod: method,
		PaymentStatus: domain.PaymentStatusPaid,
	}
	if _, err := s.paymentRepo.Insert(ctx, payment); err != nil {
		return nil, err
	}

	s.activitySvc.Record(ctx, domain.ActivityTypePayment, domain.ActivityActionCreate,
		fmt.Sprintf("Payment of %.2f recorded for job %d", payment.Amount, jobID), actor)
	return payment, nil
}

// VerifyPayment reports whether the job has a PAID payment. A missing
// payment is a normal false result, not an error.
func (s *paymentService) VerifyPayment(ctx context.Context, jobID int64) (bool, error) {
	payment, err := s.paymentRepo.GetByJob(ctx, jobID)
	if err != nil {
		return false, err
	}
	return payment != nil && payment.PaymentStatus == domain.PaymentStatusPaid, nil
}
