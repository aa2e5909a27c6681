package service

import (
	"context"
	"fmt"
	"strings"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type garageService struct {
	garageRepo  repository.GarageRepository
	activitySvc ActivityService
}

func NewGarageService(garageRepo repository.GarageRepository, activitySvc ActivityService) GarageService {
	return &garageService{
		garageRepo:  garageRepo,
		activitySvc: activitySvc,
	}
}

func (s *garageService) FindByID(ctx context.Context, id int64) (*domain.Garage, error) {
	return s.garageRepo.GetByID(ctx, id)
}

func (s *garageService) FindAll(ctx context.Context) ([]domain.Garage, error) {
	return s.garageRepo.FindAll(ctx)
}

func (s *garageService) Create(ctx context.Context, actor string, garage *domain.Garage) (int64, error) {
	if err := s.validate(garage); err != nil {
		return 0, err
	}
	id, err := s.garageRepo.Insert(ctx, garage)
	if err != nil {
		return 0, err
	}
	s.activitySvc.Record(ctx, domain.ActivityTypeGarage, domain.ActivityActionCreate,
		fmt.Sprintf("New garage created: %s", garage.Name), actor)
	return id, nil
}

func (s *garageService) Update(ctx context.Context, actor string, garage *domain.Garage) (bool, error) {
	if err := s.validate(garage); err != nil {
		return false, err
	}
	updated, err := s.garageRepo.Update(ctx, garage)
	if err != nil {
		return false, err
	}
	if updated {
		s.activitySvc.Record(ctx, domain.ActivityTypeGarage, domain.ActivityActionUpdate,
			fmt.Sprintf("Garage updated: %s", garage.Name), actor)
	}
	return updated, nil
}

func (s *garageService) Delete(ctx context.Context, actor string, id int64) (bool, error) {
	deleted, err := s.garageRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.activitySvc.Record(ctx, domain.ActivityTypeGarage, domain.ActivityActionDelete,
			fmt.Sprintf("Garage deleted with ID: %d", id), actor)
	}
	return deleted, nil
}

func (s *garageService) validate(garage *domain.Garage) error {
	if strings.TrimSpace(garage.Name) == "" {
		return fmt.Errorf("%w: garage name cannot be empty", domain.ErrValidation)
	}
	return nil
}
