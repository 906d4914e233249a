// services/billing_service.go
package services

import (
	"time"

	"gorm.io/gorm"

	"billing-backend/apperr"
	"billing-backend/models"
	"billing-backend/repository"
)

// BillItemInput is one line of a bill-creation request. Price overrides the
// item's catalog price when present.
type BillItemInput struct {
	ItemID   uint     `json:"itemId" binding:"required"`
	Quantity int      `json:"quantity" binding:"required,min=1"`
	Price    *float64 `json:"price" binding:"omitempty,min=0"`
}

// CreateBillInput defines the expected JSON structure for creating a bill
type CreateBillInput struct {
	CustomerID uint            `json:"customerId" binding:"required"`
	BillNumber string          `json:"billNumber" binding:"required"`
	BillDate   *time.Time      `json:"billDate"`
	Items      []BillItemInput `json:"items" binding:"required,min=1,dive"`
}

type BillItemResponse struct {
	ItemID    uint    `json:"itemId"`
	ItemName  string  `json:"itemName"`
	Quantity  int     `json:"quantity"`
	UnitPrice float64 `json:"unitPrice"`
	LineTotal float64 `json:"lineTotal"`
}

// BillResponse is the projection returned for every bill operation, with
// customer and item names denormalized for display.
type BillResponse struct {
	BillID        uint               `json:"billId"`
	BillNumber    string             `json:"billNumber"`
	CustomerID    uint               `json:"customerId"`
	CustomerName  string             `json:"customerName"`
	BillDate      time.Time          `json:"billDate"`
	TaxAmount     float64            `json:"taxAmount"`
	TotalAmount   float64            `json:"totalAmount"`
	PaymentStatus string             `json:"paymentStatus"`
	Items         []BillItemResponse `json:"items"`
}

type BillingService interface {
	Create(input CreateBillInput) (*BillResponse, error)
	Get(id uint) (*BillResponse, error)
	ListAll() ([]BillResponse, error)
	ListByCustomer(customerID uint) ([]BillResponse, error)
	MarkPaid(id uint) (*BillResponse, error)
}

type billingService struct {
	tx         repository.TxManager
	bills      repository.BillRepository
	customers  repository.CustomerRepository
	items      repository.ItemRepository
	taxPercent float64
}

func NewBillingService(
	tx repository.TxManager,
	bills repository.BillRepository,
	customers repository.CustomerRepository,
	items repository.ItemRepository,
	taxPercent float64,
) BillingService {
	return &billingService{
		tx:         tx,
		bills:      bills,
		customers:  customers,
		items:      items,
		taxPercent: taxPercent,
	}
}

// Create validates the request, charges each line at its effective price,
// decrements stock and persists the bill. Everything after the duplicate
// check runs in one transaction: a failing line rolls back all stock
// mutations from earlier lines.
func (s *billingService) Create(input CreateBillInput) (*BillResponse, error) {
	exists, err := s.bills.ExistsByNumber(input.BillNumber)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, apperr.DuplicateKey("bill number already exists: %s", input.BillNumber)
	}

	billDate := time.Now()
	if input.BillDate != nil {
		billDate = *input.BillDate
	}

	var response *BillResponse
	err = s.tx.Transaction(func(tx *gorm.DB) error {
		customers := s.customers.WithTx(tx)
		items := s.items.WithTx(tx)
		bills := s.bills.WithTx(tx)

		customer, err := customers.FindByID(input.CustomerID)
		if err != nil {
			return err
		}
		if customer == nil {
			return apperr.NotFound("customer not found: %d", input.CustomerID)
		}

		var billItems []models.BillItem
		var net float64

		for _, line := range input.Items {
			item, err := items.FindByIDForUpdate(line.ItemID)
			if err != nil {
				return err
			}
			if item == nil {
				return apperr.NotFound("item not found: %d", line.ItemID)
			}

			unitPrice := item.Price
			if line.Price != nil {
				unitPrice = *line.Price
			}

			if item.StockQuantity < line.Quantity {
				return apperr.InsufficientStock(
					"item %q (id %d): requested %d, available %d",
					item.Name, item.ID, line.Quantity, item.StockQuantity)
			}

			item.StockQuantity -= line.Quantity
			if err := items.Save(item); err != nil {
				return err
			}

			lineTotal := unitPrice * float64(line.Quantity)
			net += lineTotal

			billItems = append(billItems, models.BillItem{
				ItemID:     item.ID,
				ItemName:   item.Name,
				Quantity:   line.Quantity,
				UnitPrice:  unitPrice,
				TotalPrice: lineTotal,
			})
		}

		tax := net * s.taxPercent / 100
		total := net + tax

		bill := &models.Bill{
			BillNumber:    input.BillNumber,
			CustomerID:    customer.ID,
			BillDate:      billDate,
			TaxAmount:     tax,
			TotalAmount:   total,
			PaymentStatus: models.PaymentPending,
			Items:         billItems,
		}
		if err := bills.Save(bill); err != nil {
			return err
		}

		response = toBillResponse(bill, customer.Name)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return response, nil
}

func (s *billingService) Get(id uint) (*BillResponse, error) {
	bill, err := s.bills.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperr.NotFound("bill not found: %d", id)
	}

	name, err := s.customerName(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill, name), nil
}

func (s *billingService) ListAll() ([]BillResponse, error) {
	bills, err := s.bills.FindAll()
	if err != nil {
		return nil, err
	}
	return s.toBillResponses(bills)
}

func (s *billingService) ListByCustomer(customerID uint) ([]BillResponse, error) {
	bills, err := s.bills.FindByCustomerID(customerID)
	if err != nil {
		return nil, err
	}
	return s.toBillResponses(bills)
}

// MarkPaid transitions the bill to PAID. Re-applying PAID to an already
// settled bill is a no-op, not an error.
func (s *billingService) MarkPaid(id uint) (*BillResponse, error) {
	bill, err := s.bills.FindByID(id)
	if err != nil {
		return nil, err
	}
	if bill == nil {
		return nil, apperr.NotFound("bill not found: %d", id)
	}

	bill.PaymentStatus = models.PaymentPaid
	if err := s.bills.Save(bill); err != nil {
		return nil, err
	}

	name, err := s.customerName(bill.CustomerID)
	if err != nil {
		return nil, err
	}
	return toBillResponse(bill, name), nil
}

func (s *billingService) customerName(customerID uint) (string, error) {
	customer, err := s.customers.FindByID(customerID)
	if err != nil {
		return "", err
	}
	if customer == nil {
		return "", nil
	}
	return customer.Name, nil
}

func (s *billingService) toBillResponses(bills []models.Bill) ([]BillResponse, error) {
	names := make(map[uint]string)
	responses := make([]BillResponse, 0, len(bills))
	for i := range bills {
		bill := &bills[i]
		name, ok := names[bill.CustomerID]
		if !ok {
			var err error
			name, err = s.customerName(bill.CustomerID)
			if err != nil {
				return nil, err
			}
			names[bill.CustomerID] = name
		}
		responses = append(responses, *toBillResponse(bill, name))
	}
	return responses, nil
}

func toBillResponse(bill *models.Bill, customerName string) *BillResponse {
	items := make([]BillItemResponse, 0, len(bill.Items))
	for _, it := range bill.Items {
		items = append(items, BillItemResponse{
			ItemID:    it.ItemID,
			ItemName:  it.ItemName,
			Quantity:  it.Quantity,
			UnitPrice: it.UnitPrice,
			LineTotal: it.TotalPrice,
		})
	}
	return &BillResponse{
		BillID:        bill.ID,
		BillNumber:    bill.BillNumber,
		CustomerID:    bill.CustomerID,
		CustomerName:  customerName,
		BillDate:      bill.BillDate,
		TaxAmount:     bill.TaxAmount,
		TotalAmount:   bill.TotalAmount,
		PaymentStatus: bill.PaymentStatus,
		Items:         items,
	}
}
