// controllers/customer.go
package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"billing-backend/services"
	"billing-backend/utils"
)

type CustomerController struct {
	Customers services.CustomerService
}

func NewCustomerController(customers services.CustomerService) *CustomerController {
	return &CustomerController{Customers: customers}
}

// CreateCustomer creates a new customer account
func (ctl *CustomerController) CreateCustomer(c *gin.Context) {
	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Telephone != "" && !utils.ValidatePhone(input.Telephone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid telephone number format")
		return
	}

	customer, err := ctl.Customers.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, customer)
}

// GetCustomers retrieves all customers
func (ctl *CustomerController) GetCustomers(c *gin.Context) {
	customers, err := ctl.Customers.List()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customers)
}

// GetCustomer retrieves a specific customer by ID
func (ctl *CustomerController) GetCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	customer, err := ctl.Customers.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// UpdateCustomer updates an existing customer
func (ctl *CustomerController) UpdateCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	var input services.CustomerInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	if input.Telephone != "" && !utils.ValidatePhone(input.Telephone) {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid telephone number format")
		return
	}

	customer, err := ctl.Customers.Update(id, input)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, customer)
}

// DeleteCustomer deletes a customer
func (ctl *CustomerController) DeleteCustomer(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	if err := ctl.Customers.Delete(id); err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Customer deleted successfully"})
}
