// repository/customer.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"billing-backend/models"
)

type CustomerRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) CustomerRepository

	FindByID(id uint) (*models.Customer, error)
	FindAll() ([]models.Customer, error)
	ExistsByAccountNumber(accountNumber string) (bool, error)
	Save(customer *models.Customer) error
	Delete(id uint) (bool, error)
}

type customerRepository struct {
	db *gorm.DB
}

func NewCustomerRepository(db *gorm.DB) CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) WithTx(tx *gorm.DB) CustomerRepository {
	return &customerRepository{db: tx}
}

func (r *customerRepository) FindByID(id uint) (*models.Customer, error) {
	var customer models.Customer
	if err := r.db.First(&customer, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &customer, nil
}

func (r *customerRepository) FindAll() ([]models.Customer, error) {
	var customers []models.Customer
	if err := r.db.Find(&customers).Error; err != nil {
		return nil, err
	}
	return customers, nil
}

func (r *customerRepository) ExistsByAccountNumber(accountNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Customer{}).
		Where("account_number = ?", accountNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *customerRepository) Save(customer *models.Customer) error {
	return r.db.Save(customer).Error
}

func (r *customerRepository) Delete(id uint) (bool, error) {
	result := r.db.Delete(&models.Customer{}, id)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}
