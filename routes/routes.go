package routes

import (
	"billing-backend/config"
	"billing-backend/controllers"
	"billing-backend/services"
	"billing-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// Controllers bundles everything the router needs.
type Controllers struct {
	Auth      *controllers.AuthController
	Customers *controllers.CustomerController
	Items     *controllers.ItemController
	Bills     *controllers.BillController
}

func NewControllers(
	auth services.AuthService,
	customers services.CustomerService,
	items services.ItemService,
	billing services.BillingService,
) Controllers {
	return Controllers{
		Auth:      controllers.NewAuthController(auth),
		Customers: controllers.NewCustomerController(customers),
		Items:     controllers.NewItemController(items),
		Bills:     controllers.NewBillController(billing),
	}
}

func SetupRouter(ctl Controllers) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "X-Request-Id"},
		AllowCredentials: true,
	}))

	r.Use(config.PerformanceLogger())

	r.GET("/api/health", controllers.Health)

	auth := r.Group("/api/auth")
	{
		auth.POST("/register", ctl.Auth.Register)
		auth.POST("/login", ctl.Auth.Login)

		auth.Use(utils.AuthMiddleware())
		auth.GET("/me", ctl.Auth.Me)
	}

	api := r.Group("/api")
	api.Use(utils.AuthMiddleware())
	{
		// Customer routes
		customers := api.Group("/customers")
		{
			customers.POST("", ctl.Customers.CreateCustomer)
			customers.GET("", ctl.Customers.GetCustomers)
			customers.GET("/:id", ctl.Customers.GetCustomer)
			customers.PUT("/:id", ctl.Customers.UpdateCustomer)
			customers.DELETE("/:id", ctl.Customers.DeleteCustomer)
		}

		// Item catalog routes
		items := api.Group("/items")
		{
			items.POST("", ctl.Items.CreateItem)
			items.GET("", ctl.Items.GetItems)
			items.GET("/:id", ctl.Items.GetItem)
			items.PUT("/:id", ctl.Items.UpdateItem)
			items.DELETE("/:id", ctl.Items.DeleteItem)
		}

		// Bill routes
		bills := api.Group("/bills")
		{
			bills.POST("", ctl.Bills.CreateBill)
			bills.GET("", ctl.Bills.GetBills)
			bills.GET("/:id", ctl.Bills.GetBill)
			bills.POST("/:id/pay", ctl.Bills.MarkPaid)
		}
	}

	return r
}
