package config

import (
	"os"
	"strconv"
)

// Settings holds the process-wide knobs read from the environment once at
// startup and threaded into service constructors.
type Settings struct {
	TaxPercent float64

	// Payment reminders
	ReminderOverdueDays int
	ReminderResendDays  int
}

func LoadSettings() Settings {
	return Settings{
		TaxPercent:          envFloat("TAX_PERCENT", 10.0),
		ReminderOverdueDays: envInt("REMINDER_OVERDUE_DAYS", 14),
		ReminderResendDays:  envInt("REMINDER_RESEND_DAYS", 7),
	}
}

func envFloat(key string, fallback float64) float64 {
	if env := os.Getenv(key); env != "" {
		if v, err := strconv.ParseFloat(env, 64); err == nil {
			return v
		}
	}
	return fallback
}

func envInt(key string, fallback int) int {
	if env := os.Getenv(key); env != "" {
		if v, err := strconv.Atoi(env); err == nil {
			return v
		}
	}
	return fallback
}
