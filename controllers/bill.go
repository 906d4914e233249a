// controllers/bill.go
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"billing-backend/services"
	"billing-backend/utils"
)

type BillController struct {
	Billing services.BillingService
}

func NewBillController(billing services.BillingService) *BillController {
	return &BillController{Billing: billing}
}

// CreateBill creates a new bill, charging each line and reducing item stock
func (ctl *BillController) CreateBill(c *gin.Context) {
	var input services.CreateBillInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	bill, err := ctl.Billing.Create(input)
	if err != nil {
		respondServiceError(c, err)
		return
	}

	c.JSON(http.StatusCreated, bill)
}

// GetBills retrieves all bills, or a customer's bills when ?customerId= is given
func (ctl *BillController) GetBills(c *gin.Context) {
	if raw := c.Query("customerId"); raw != "" {
		customerID, err := strconv.ParseUint(raw, 10, 32)
		if err != nil {
			utils.RespondWithError(c, http.StatusBadRequest, "Invalid customer ID format")
			return
		}
		bills, err := ctl.Billing.ListByCustomer(uint(customerID))
		if err != nil {
			respondServiceError(c, err)
			return
		}
		c.JSON(http.StatusOK, bills)
		return
	}

	bills, err := ctl.Billing.ListAll()
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bills)
}

// GetBill retrieves a specific bill by ID
func (ctl *BillController) GetBill(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bill, err := ctl.Billing.Get(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

// MarkPaid settles a bill; repeating the call on a paid bill is a no-op
func (ctl *BillController) MarkPaid(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}

	bill, err := ctl.Billing.MarkPaid(id)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, bill)
}

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid ID format")
		return 0, false
	}
	return uint(id), true
}
