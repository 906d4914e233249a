// services/customer_service.go
package services

import (
	"time"

	"billing-backend/apperr"
	"billing-backend/models"
	"billing-backend/repository"
)

// CustomerInput defines the expected JSON structure for creating or
// updating a customer
type CustomerInput struct {
	AccountNumber    string     `json:"accountNumber" binding:"required"`
	Name             string     `json:"name" binding:"required"`
	Address          string     `json:"address"`
	Telephone        string     `json:"telephone"`
	RegistrationDate *time.Time `json:"registrationDate"`
	Status           string     `json:"status" binding:"omitempty,oneof=ACTIVE INACTIVE"`
}

type CustomerService interface {
	Create(input CustomerInput) (*models.Customer, error)
	Get(id uint) (*models.Customer, error)
	List() ([]models.Customer, error)
	Update(id uint, input CustomerInput) (*models.Customer, error)
	Delete(id uint) error
}

type customerService struct {
	customers repository.CustomerRepository
}

func NewCustomerService(customers repository.CustomerRepository) CustomerService {
	return &customerService{customers: customers}
}

func (s *customerService) Create(input CustomerInput) (*models.Customer, error) {
	exists, err := s.customers.ExistsByAccountNumber(input.AccountNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.DuplicateKey("account number already exists: %s", input.AccountNumber)
	}

	status := input.Status
	if status == "" {
		status = models.CustomerActive
	}

	customer := &models.Customer{
		AccountNumber:    input.AccountNumber,
		Name:             input.Name,
		Address:          input.Address,
		Telephone:        input.Telephone,
		RegistrationDate: input.RegistrationDate,
		Status:           status,
	}
	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Get(id uint) (*models.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFound("customer not found: %d", id)
	}
	return customer, nil
}

func (s *customerService) List() ([]models.Customer, error) {
	return s.customers.FindAll()
}

func (s *customerService) Update(id uint, input CustomerInput) (*models.Customer, error) {
	customer, err := s.customers.FindByID(id)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperr.NotFound("customer not found: %d", id)
	}

	customer.AccountNumber = input.AccountNumber
	customer.Name = input.Name
	customer.Address = input.Address
	customer.Telephone = input.Telephone
	customer.RegistrationDate = input.RegistrationDate
	if input.Status != "" {
		customer.Status = input.Status
	}

	if err := s.customers.Save(customer); err != nil {
		return nil, err
	}
	return customer, nil
}

func (s *customerService) Delete(id uint) error {
	deleted, err := s.customers.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("customer not found: %d", id)
	}
	return nil
}
