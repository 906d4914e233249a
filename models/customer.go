package models

import "time"

const (
	CustomerActive   = "ACTIVE"
	CustomerInactive = "INACTIVE"
)

type Customer struct {
	ID            uint   `gorm:"primaryKey" json:"id"`
	AccountNumber string `gorm:"uniqueIndex;not null" json:"accountNumber"`
	Name          string `gorm:"not null" json:"name"`
	Address       string `json:"address"`
	Telephone     string `json:"telephone"`

	RegistrationDate *time.Time `json:"registrationDate,omitempty"`
	Status           string     `gorm:"type:varchar(20);default:'ACTIVE'" json:"status"`

	Bills []Bill `gorm:"foreignKey:CustomerID" json:"-"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
