// models/reminder_log.go
package models

import "time"

type ReminderLog struct {
	ID         uint   `gorm:"primaryKey" json:"id"`
	BillID     uint   `gorm:"index;not null" json:"billId"`
	CustomerID uint   `gorm:"index;not null" json:"customerId"`
	Message    string `gorm:"type:text" json:"message"`

	Status       string `gorm:"type:varchar(20)" json:"status"` // sent, failed
	ErrorMessage string `gorm:"type:text" json:"errorMessage,omitempty"`
	Channel      string `gorm:"type:varchar(20)" json:"channel"`

	SentAt    time.Time `json:"sentAt"`
	CreatedAt time.Time `json:"createdAt"`
}
