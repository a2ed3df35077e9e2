package service

import (
	"context"
	"fmt"

	"roknsound-backend/internal/domain"
	"roknsound-backend/internal/repository"
)

type customerService struct {
	customerRepo repository.CustomerRepository
}

func NewCustomerService(customerRepo repository.CustomerRepository) CustomerService {
	return &customerService{customerRepo: customerRepo}
}

func (s *customerService) CreateCustomer(ctx context.Context, c *domain.Customer) error {
	if c.FirstName == "" || c.LastName == "" {
		return fmt.Errorf("customer name is required")
	}
	if c.Email == "" {
		return fmt.Errorf("customer email is required")
	}
	return s.customerRepo.Create(ctx, c)
}

func (s *customerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	return s.customerRepo.GetByID(ctx, id)
}

func (s *customerService) ListCustomers(ctx context.Context, page, pageSize int32) ([]domain.Customer, int32, error) {
	return s.customerRepo.List(ctx, page, pageSize)
}
