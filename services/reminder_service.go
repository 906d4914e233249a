// services/reminder_service.go
package services

import (
	"fmt"
	"log"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
	"gorm.io/gorm"

	"billing-backend/models"
	"billing-backend/utils"
)

// ReminderService texts customers about bills that have stayed PENDING past
// the configured number of days. Failures are logged, never fatal.
type ReminderService struct {
	db     *gorm.DB
	client *twilio.RestClient

	overdueAfterDays int
	resendAfterDays  int
}

func NewReminderService(db *gorm.DB, overdueAfterDays, resendAfterDays int) *ReminderService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")

	return &ReminderService{
		db: db,
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		overdueAfterDays: overdueAfterDays,
		resendAfterDays:  resendAfterDays,
	}
}

func (s *ReminderService) StartScheduler() {
	c := cron.New()

	// Run every day at 9 AM
	c.AddFunc("0 9 * * *", s.SendPaymentReminders)

	c.Start()
	log.Println("Payment reminder scheduler started")
}

func (s *ReminderService) SendPaymentReminders() {
	log.Println("Starting payment reminder processing...")

	bills, err := s.overdueBills()
	if err != nil {
		log.Printf("Failed to fetch overdue bills: %v", err)
		return
	}

	for i := range bills {
		s.remind(&bills[i])
	}

	log.Println("Payment reminder processing completed")
}

func (s *ReminderService) overdueBills() ([]models.Bill, error) {
	cutoff := utils.BeginningOfDay(time.Now().AddDate(0, 0, -s.overdueAfterDays))

	var bills []models.Bill
	err := s.db.
		Where("payment_status = ? AND bill_date < ?", models.PaymentPending, cutoff).
		Find(&bills).Error
	return bills, err
}

func (s *ReminderService) remind(bill *models.Bill) {
	// Skip bills reminded recently.
	since := time.Now().AddDate(0, 0, -s.resendAfterDays)
	var recent int64
	if err := s.db.Model(&models.ReminderLog{}).
		Where("bill_id = ? AND status = ? AND sent_at > ?", bill.ID, "sent", since).
		Count(&recent).Error; err != nil {
		log.Printf("Bill %d: failed to check reminder history: %v", bill.ID, err)
		return
	}
	if recent > 0 {
		return
	}

	var customer models.Customer
	if err := s.db.First(&customer, bill.CustomerID).Error; err != nil {
		log.Printf("Bill %d: failed to load customer %d: %v", bill.ID, bill.CustomerID, err)
		return
	}

	if !utils.ValidatePhone(customer.Telephone) {
		log.Printf("Bill %d: customer %d has no usable telephone number", bill.ID, customer.ID)
		return
	}

	overdueDays := utils.DaysBetween(bill.BillDate, time.Now())
	message := fmt.Sprintf(
		"Dear %s, bill %s of %.2f is unpaid for %d days. Please settle it at your earliest convenience.",
		customer.Name, bill.BillNumber, bill.TotalAmount, overdueDays)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo(customer.Telephone)
	params.SetFrom(os.Getenv("TWILIO_PHONE_NUMBER"))
	params.SetBody(message)

	status := "sent"
	errorMsg := ""

	resp, err := s.client.Api.CreateMessage(params)
	if err != nil {
		log.Printf("Failed to send reminder for bill %d to %s: %v", bill.ID, customer.Telephone, err)
		status = "failed"
		errorMsg = err.Error()
	} else if resp.Sid != nil {
		log.Printf("Reminder sent for bill %d, SID: %s", bill.ID, *resp.Sid)
	} else {
		log.Printf("Reminder sent for bill %d, but no SID returned", bill.ID)
	}

	reminderLog := models.ReminderLog{
		BillID:       bill.ID,
		CustomerID:   customer.ID,
		Message:      message,
		Status:       status,
		ErrorMessage: errorMsg,
		Channel:      "sms",
		SentAt:       time.Now(),
	}

	if err := s.db.Create(&reminderLog).Error; err != nil {
		log.Printf("Failed to log reminder for bill %d: %v", bill.ID, err)
	}
}
