// repository/bill.go
package repository

import (
	"errors"

	"gorm.io/gorm"

	"billing-backend/models"
)

type BillRepository interface {
	// WithTx returns a repository bound to the given transaction.
	WithTx(tx *gorm.DB) BillRepository

	ExistsByNumber(billNumber string) (bool, error)
	FindByID(id uint) (*models.Bill, error)
	FindAll() ([]models.Bill, error)
	FindByCustomerID(customerID uint) ([]models.Bill, error)
	Save(bill *models.Bill) error
}

type billRepository struct {
	db *gorm.DB
}

func NewBillRepository(db *gorm.DB) BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) WithTx(tx *gorm.DB) BillRepository {
	return &billRepository{db: tx}
}

func (r *billRepository) ExistsByNumber(billNumber string) (bool, error) {
	var count int64
	if err := r.db.Model(&models.Bill{}).
		Where("bill_number = ?", billNumber).
		Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func (r *billRepository) FindByID(id uint) (*models.Bill, error) {
	var bill models.Bill
	if err := r.db.Preload("Items").First(&bill, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &bill, nil
}

func (r *billRepository) FindAll() ([]models.Bill, error) {
	var bills []models.Bill
	if err := r.db.Preload("Items").Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) FindByCustomerID(customerID uint) ([]models.Bill, error) {
	var bills []models.Bill
	if err := r.db.Preload("Items").
		Where("customer_id = ?", customerID).
		Find(&bills).Error; err != nil {
		return nil, err
	}
	return bills, nil
}

func (r *billRepository) Save(bill *models.Bill) error {
	return r.db.Save(bill).Error
}
