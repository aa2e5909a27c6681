package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
	"carservice-backend/internal/utils"
)

type billingService struct {
	jobRepo repository.JobRepository
}

func NewBillingService(jobRepo repository.JobRepository) BillingService {
	return &billingService{jobRepo: jobRepo}
}

// AverageServiceCost averages cost over the customer's completed, priced
// jobs. With no qualifying jobs the result is 0, not an error.
func (s *billingService) AverageServiceCost(ctx context.Context, customerID int64) (float64, error) {
	if customerID <= 0 {
		return 0, fmt.Errorf("%w: customer ID is required", domain.ErrValidation)
	}
	return s.jobRepo.AverageCostByCustomer(ctx, customerID)
}

// TotalServiceDays sums the inclusive day count of every job for the car.
// Open jobs count up to the current time. Overlapping jobs each contribute
// their own full span; intervals are not merged.
func (s *billingService) TotalServiceDays(ctx context.Context, regNo string) (int64, error) {
	if strings.TrimSpace(regNo) == "" {
		return 0, fmt.Errorf("%w: registration number cannot be empty", domain.ErrValidation)
	}

	jobs, err := s.jobRepo.FindByCar(ctx, regNo)
	if err != nil {
		return 0, err
	}

	now := time.Now()
	var total int64
	for _, job := range jobs {
		out := now
		if job.DateOut != nil {
			out = *job.DateOut
		}
		total += utils.ServiceDays(job.DateIn, out)
	}
	return total, nil
}
