package models

import (
	"time"

	"gorm.io/gorm"

	"billing-backend/utils"
)

const (
	RoleAdmin   = "ADMIN"
	RoleCashier = "CASHIER"
)

type User struct {
	ID       uint   `gorm:"primaryKey" json:"id"`
	Username string `gorm:"uniqueIndex;not null" json:"username"`
	Password string `gorm:"not null" json:"-"`
	Role     string `gorm:"type:varchar(20);not null;default:'CASHIER'" json:"role"`
	IsActive bool   `gorm:"default:true" json:"isActive"`

	LastLogin *time.Time `json:"lastLogin,omitempty"`
	CreatedAt time.Time  `json:"createdAt"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Hash the password before the row is first written.
func (u *User) BeforeCreate(tx *gorm.DB) (err error) {
	hashed, err := utils.HashPassword(u.Password)
	if err != nil {
		return err
	}
	u.Password = hashed
	return
}
