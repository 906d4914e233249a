// services/item_service.go
package services

import (
	"billing-backend/apperr"
	"billing-backend/models"
	"billing-backend/repository"
)

// ItemInput defines the expected JSON structure for creating or updating an item
type ItemInput struct {
	Name          string  `json:"name" binding:"required"`
	Description   string  `json:"description"`
	Price         float64 `json:"price" binding:"required,min=0"`
	StockQuantity int     `json:"stockQuantity" binding:"min=0"`
}

type ItemService interface {
	Create(input ItemInput) (*models.Item, error)
	Get(id uint) (*models.Item, error)
	List() ([]models.Item, error)
	Update(id uint, input ItemInput) (*models.Item, error)
	Delete(id uint) error
}

type itemService struct {
	items repository.ItemRepository
}

func NewItemService(items repository.ItemRepository) ItemService {
	return &itemService{items: items}
}

func (s *itemService) Create(input ItemInput) (*models.Item, error) {
	item := &models.Item{
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		StockQuantity: input.StockQuantity,
	}
	if err := s.items.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Get(id uint) (*models.Item, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item not found: %d", id)
	}
	return item, nil
}

func (s *itemService) List() ([]models.Item, error) {
	return s.items.FindAll()
}

func (s *itemService) Update(id uint, input ItemInput) (*models.Item, error) {
	item, err := s.items.FindByID(id)
	if err != nil {
		return nil, err
	}
	if item == nil {
		return nil, apperr.NotFound("item not found: %d", id)
	}

	item.Name = input.Name
	item.Description = input.Description
	item.Price = input.Price
	item.StockQuantity = input.StockQuantity

	if err := s.items.Save(item); err != nil {
		return nil, err
	}
	return item, nil
}

func (s *itemService) Delete(id uint) error {
	deleted, err := s.items.Delete(id)
	if err != nil {
		return err
	}
	if !deleted {
		return apperr.NotFound("item not found: %d", id)
	}
	return nil
}
