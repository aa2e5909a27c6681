package service

import (
	"context"
	"fmt"
	"strings"

	"carservice-backend/internal/domain"
	"carservice-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
	activitySvc  ActivityService
}

func NewCustomerService(customerRepo repository.CustomerRepository, activitySvc ActivityService) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		activitySvc:  activitySvc,
	}
}

func (s *customerService) FindByID(ctx context.Context, id int64) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) FindAll(ctx context.Context) ([]domain.Customer, error) {
	return s.customerRepo.FindAll(ctx)
}

func (s *customerService) Create(ctx context.Context, actor string, customer *domain.Customer) (int64, error) {
	if err := s.validate(customer); err != nil {
		return 0, err
	}
	id, err := s.customerRepo.Insert(ctx, customer)
	if err != nil {
		return 0, err
	}
	s.activitySvc.Record(ctx, domain.ActivityTypeCustomer, domain.ActivityActionCreate,
		fmt.Sprintf("New customer created: %s %s", customer.Forename, customer.Surname), actor)
	return id, nil
}

func (s *customerService) Update(ctx context.Context, actor string, customer *domain.Customer) (bool, error) {
	if err := s.validate(customer); err != nil {
		return false, err
	}
	updated, err := s.customerRepo.Update(ctx, customer)
	if err != nil {
		return false, err
	}
	if updated {
		s.activitySvc.Record(ctx, domain.ActivityTypeCustomer, domain.ActivityActionUpdate,
			fmt.Sprintf("Customer updated: %s %s", customer.Forename, customer.Surname), actor)
	}
	return updated, nil
}

func (s *customerService) Delete(ctx context.Context, actor string, id int64) (bool, error) {
	deleted, err := s.customerRepo.Delete(ctx, id)
	if err != nil {
		return false, err
	}
	if deleted {
		s.activitySvc.Record(ctx, domain.ActivityTypeCustomer, domain.ActivityActionDelete,
			fmt.Sprintf("Customer deleted with ID: %d", id), actor)
	}
	return deleted, nil
}

func (s *customerService) validate(customer *domain.Customer) error {
	if strings.TrimSpace(customer.Forename) == "" {
		return fmt.Errorf("%w: customer forename cannot be empty", domain.ErrValidation)
	}
	if strings.TrimSpace(customer.Surname) == "" {
		return fmt.Errorf("%w: customer surname cannot be empty", domain.ErrValidation)
	}
	return nil
}
