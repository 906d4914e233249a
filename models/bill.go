package models

import "time"

const (
	PaymentPending = "PENDING"
	PaymentPaid    = "PAID"
)

type Bill struct {
	ID         uint      `gorm:"primaryKey" json:"id"`
	BillNumber string    `gorm:"uniqueIndex;not null" json:"billNumber"`
	CustomerID uint      `gorm:"index;not null" json:"customerId"`
	BillDate   time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"billDate"`

	TaxAmount   float64 `gorm:"type:decimal(10,2);not null" json:"taxAmount"`
	TotalAmount float64 `gorm:"type:decimal(10,2);not null" json:"totalAmount"`

	PaymentStatus string `gorm:"type:varchar(20);not null;default:'PENDING'" json:"paymentStatus"`

	Items []BillItem `gorm:"foreignKey:BillID" json:"items"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type BillItem struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	BillID uint `gorm:"index;not null" json:"billId"`
	ItemID uint `gorm:"index;not null" json:"itemId"`

	// Name and unit price are captured at billing time so historical bills
	// are immune to later catalog changes.
	ItemName   string  `gorm:"not null" json:"itemName"`
	Quantity   int     `gorm:"not null" json:"quantity"`
	UnitPrice  float64 `gorm:"type:decimal(10,2);not null" json:"unitPrice"`
	TotalPrice float64 `gorm:"type:decimal(10,2);not null" json:"totalPrice"`
}
