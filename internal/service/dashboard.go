package service

import (
	"context"

	"carservice-backend/internal/repository"
)

type dashboardService struct {
	customerRepo repository.CustomerRepository
	carRepo      repository.CarRepository
	garageRepo   repository.GarageRepository
	jobRepo      repository.JobRepository
	activitySvc  ActivityService
}

func NewDashboardService(
	customerRepo repository.CustomerRepository,
	carRepo repository.CarRepository,
	garageRepo repository.GarageRepository,
	jobRepo repository.JobRepository,
	activitySvc ActivityService,
) DashboardService {
	return &dashboardService{
		customerRepo: customerRepo,
		carRepo:      carRepo,
		garageRepo:   garageRepo,
		jobRepo:      jobRepo,
		activitySvc:  activitySvc,
	}
}

func (s *dashboardService) Summary(ctx context.Context) (*DashboardSummary, error) {
	summary := &DashboardSummary{}

	var err error
	if summary.Customers, err = s.customerRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Cars, err = s.carRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Garages, err = s.garageRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.Jobs, err = s.jobRepo.Count(ctx); err != nil {
		return nil, err
	}
	if summary.RecentActivity, err = s.activitySvc.Recent(ctx); err != nil {
		return nil, err
	}
	return summary, nil
}
