package main

import (
	"fmt"
	"log"
	"os"

	"billing-backend/config"
	"billing-backend/models"
	"billing-backend/repository"
	"billing-backend/routes"
	"billing-backend/services"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func init() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	}
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.User{},
		&models.Customer{},
		&models.Item{},
		&models.Bill{},
		&models.BillItem{},
		&models.ReminderLog{},
	)
}

func main() {
	settings := config.LoadSettings()

	users := repository.NewUserRepository(config.DB)
	customers := repository.NewCustomerRepository(config.DB)
	items := repository.NewItemRepository(config.DB)
	bills := repository.NewBillRepository(config.DB)
	tx := repository.NewTxManager(config.DB)

	authService := services.NewAuthService(users)
	customerService := services.NewCustomerService(customers)
	itemService := services.NewItemService(items)
	billingService := services.NewBillingService(tx, bills, customers, items, settings.TaxPercent)

	seedAdminUser(users)

	reminders := services.NewReminderService(config.DB, settings.ReminderOverdueDays, settings.ReminderResendDays)
	reminders.StartScheduler()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	r := routes.SetupRouter(routes.NewControllers(authService, customerService, itemService, billingService))
	printRoutes(r)
	r.Run(":" + port)
}

// seedAdminUser guarantees a login exists on a fresh database.
func seedAdminUser(users repository.UserRepository) {
	username := os.Getenv("ADMIN_USERNAME")
	password := os.Getenv("ADMIN_PASSWORD")
	if username == "" || password == "" {
		return
	}

	existing, err := users.FindByUsername(username)
	if err != nil {
		log.Printf("Failed to look up admin user: %v", err)
		return
	}
	if existing != nil {
		return
	}

	admin := &models.User{
		Username: username,
		Password: password,
		Role:     models.RoleAdmin,
		IsActive: true,
	}
	if err := users.Save(admin); err != nil {
		log.Printf("Failed to seed admin user: %v", err)
		return
	}
	log.Printf("Seeded admin user %q", username)
}

func printRoutes(r *gin.Engine) {
	routes := r.Routes()
	for _, route := range routes {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
