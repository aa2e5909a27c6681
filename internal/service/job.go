package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type jobService struct {
	jobRepo     repository.JobRepository
	activitySvc ActivityService
}

func NewJobService(jobRepo repository.JobRepository, activitySvc ActivityService) JobService {
	return &jobService{
		jobRepo:     jobRepo,
		activitySvc: activitySvc,
	}
}

func (s *jobService) FindByID(ctx context.Context, id int64) (*domain.Job, error) {
	return s.jobRepo.GetByID(ctx, id)
}

func (s *jobService) FindAll(ctx context.Context) ([]domain.Job, error) {
	return s.jobRepo.FindAll(ctx)
}

func (s *jobService) FindByCar(ctx context.Context, regNo string) ([]domain.Job, error) {
	return s.jobRepo.FindByCar(ctx, regNo)
}

func (s *jobService) FindByGarage(ctx context.Context, garageID int64) ([]domain.Job, error) {
	return s.jobRepo.FindByGarage(ctx, garageID)
}

func (s *jobService) Create(ctx context.Context, actor string, job *domain.Job) (int64, error) {
	if err := s.validate(job); err != nil {
		return 0, err
	}
	id, err := s.jobRepo.Insert(ctx, job)
	if err != nil {
		return 0, err
	}
	s.activitySvc.Record(ctx, domain.ActivityTypeJob, domain.ActivityActionCreate,
		fmt.Sprintf("New job created for car: %s", job.RegNo), actor)
	return id, nil
}

func (s *jobService) Update(ctx context.Context, actor string, job *domain.Job) (bool, error) {
	if err := s.validate(job); err != nil {
		return false, err
	}
	updated, err := s.jobRepo.Update(ctx, job)
	if err != nil {
		return false, err
	}
	if updated {
		s.activitySvc.Record(ctx, domain.ActivityTypeJob, domain.ActivityActionUpdate,
			fmt.Sprintf("Job updated for car: %s", job.RegNo), actor)
	}
	return updated, nil
}

// Complete is the only sanctioned way to close a job. It fails without side
// effects when the job is already completed or when completedAt would break
// the date invariants.
func (s *jobService) Complete(ctx context.Context, actor string, jobID int64, completedAt time.Time) (*domain.Job, error) {
	job, err := s.jobRepo.GetByID(ctx, jobID)
	if err != nil {
		return nil, err
	}
	if job.Completed() {
		return nil, fmt.Errorf("%w: job %d is already completed", domain.ErrInvalidState, jobID)
	}

	out := completedAt
	job.DateOut = &out
	if _, err := s.Update(ctx, actor, job); err != nil {
		return nil, err
	}
	return job, nil
}

func (s *jobService) Delete(ctx context.Context, actor string, jobID int64) (bool, error) {
	deleted, err := s.jobRepo.Delete(ctx, jobID)
	if err != nil {
		return false, err
	}
	if deleted {
		s.activitySvc.Record(ctx, domain.ActivityTypeJob, domain.ActivityActionDelete,
			fmt.Sprintf("Job deleted with ID: %d", jobID), actor)
	}
	return deleted, nil
}

// validate enforces the job invariants before every persist.
func (s *jobService) validate(job *domain.Job) error {
	if job.DateIn.IsZero() {
		return fmt.Errorf("%w: job date in cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(job.RegNo) == "" {
		return fmt.Errorf("%w: job registration number cannot be empty", domain.ErrValidation)
	}
	if job.DateOut != nil && job.DateOut.Before(job.DateIn) {
		return fmt.Errorf("%w: job date out cannot be before date in", domain.ErrValidation)
	}
	if job.Cost != nil && *job.Cost < 0 {
		return fmt.Errorf("%w: job cost cannot be negative", domain.ErrValidation)
	}
	if job.DateIn.After(time.Now()) {
		return fmt.Errorf("%w: job date in cannot be in the future", domain.ErrValidation)
	}
	return nil
}
