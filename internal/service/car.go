package service

import (
	"context"
	"fmt"
	"regexp"
	"strings"
	"time"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

// UK registration plate, current (AA11 AAA) or older suffixed format.
var regNoPattern = regexp.MustCompile(`^[A-Z]{2}\d{2}\s?[A-Z]{3}(\s?[A-Z])?$`)

type carService struct {
	carRepo     repository.CarRepository
	activitySvc ActivityService
}

func NewCarService(carRepo repository.CarRepository, activitySvc ActivityService) CarService {
	return &carService{
		carRepo:     carRepo,
		activitySvc: activitySvc,
	}
}

func (s *carService) FindByRegNo(ctx context.Context, regNo string) (*domain.Car, error) {
	return s.carRepo.GetByRegNo(ctx, regNo)
}

func (s *carService) FindAll(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.FindAll(ctx)
}

func (s *carService) FindByCustomer(ctx context.Context, customerID int64) ([]domain.Car, error) {
	return s.carRepo.FindByCustomer(ctx, customerID)
}

func (s *carService) Create(ctx context.Context, actor string, car *domain.Car) error {
	if err := s.validate(car); err != nil {
		return err
	}
	if err := s.carRepo.Insert(ctx, car); err != nil {
		return err
	}
	s.activitySvc.Record(ctx, domain.ActivityTypeCar, domain.ActivityActionCreate,
		fmt.Sprintf("New car registered: %s", car.RegNo), actor)
	return nil
}

func (s *carService) Update(ctx context.Context, actor string, car *domain.Car) (bool, error) {
	if err := s.validate(car); err != nil {
		return false, err
	}
	updated, err := s.carRepo.Update(ctx, car)
	if err != nil {
		return false, err
	}
	if updated {
		s.activitySvc.Record(ctx, domain.ActivityTypeCar, domain.ActivityActionUpdate,
			fmt.Sprintf("Car updated: %s", car.RegNo), actor)
	}
	return updated, nil
}

func (s *carService) Delete(ctx context.Context, actor string, regNo string) (bool, error) {
	deleted, err := s.carRepo.Delete(ctx, regNo)
	if err != nil {
		return false, err
	}
	if deleted {
		s.activitySvc.Record(ctx, domain.ActivityTypeCar, domain.ActivityActionDelete,
			fmt.Sprintf("Car deleted: %s", regNo), actor)
	}
	return deleted, nil
}

func (s *carService) validate(car *domain.Car) error {
	if !regNoPattern.MatchString(strings.ToUpper(strings.TrimSpace(car.RegNo))) {
		return fmt.Errorf("%w: invalid registration number %q", domain.ErrValidation, car.RegNo)
	}
	if strings.TrimSpace(car.Make) == "" {
		return fmt.Errorf("%w: car make cannot be empty", domain.ErrValidation)
	}
	if car.Year < 1900 || car.Year > time.Now().Year()+1 {
		return fmt.Errorf("%w: car year %d is out of range", domain.ErrValidation, car.Year)
	}
	if car.CustomerID <= 0 {
		return fmt.Errorf("%w: car must belong to a customer", domain.ErrValidation)
	}
	return nil
}
