// repository/item.go
package repository

import (
	"errors"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"billing-backend/models"
)

type ItemRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) ItemRepository

	FindByID(id uint) (*models.Item, error)
	// FindByIDForUpdate takes a row lock on the item so concurrent bill
	// creations cannot oversell stock. Only meaningful inside a transaction.
	FindByIDForUpdate(id uint) (*models.Item, error)
	FindAll() ([]models.Item, error)
	Save(item *models.Item) error
	Delete(id uint) (bool, error)
}

type itemRepository struct {
	db *gorm.DB
}

func NewItemRepository(db *gorm.DB) ItemRepository {
	return &itemRepository{db: db}
}

func (r *itemRepository) WithTx(tx *gorm.DB) ItemRepository {
	return &itemRepository{db: tx}
}

func (r *itemRepository) FindByID(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindByIDForUpdate(id uint) (*models.Item, error) {
	var item models.Item
	if err := r.db.Clauses(clause.Locking{Strength: "UPDATE"}).
		First(&item, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &item, nil
}

func (r *itemRepository) FindAll() ([]models.Item, error) {
	var items []models.Item
	if err := r.db.Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *itemRepository) Save(item *models.Item) error {
	return r.db.Save(item).Error
}

func (r *itemRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Item{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
