package services

import (
	"gorm.io/gorm"

	"billing-backend/models"
	"billing-backend/repository"
)

// Hand-written repository fakes with call counters, so tests can verify
// which collaborators a workflow touched.

type fakeTxManager struct {
	calls int
}

func (f *fakeTxManager) Transaction(fn func(tx *gorm.DB) error) error {
	f.calls++
	return fn(nil)
}

type fakeBillRepo struct {
	bills       map[uint]*models.Bill
	nextID      uint
	existsCalls int
	saveCalls   int
}

func newFakeBillRepo() *fakeBillRepo {
	return &fakeBillRepo{bills: make(map[uint]*models.Bill)}
}

func (f *fakeBillRepo) WithTx(tx *gorm.DB) repository.BillRepository { return f }

func (f *fakeBillRepo) ExistsByNumber(billNumber string) (bool, error) {
	f.existsCalls++
	for _, b := range f.bills {
		if b.BillNumber == billNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeBillRepo) FindByID(id uint) (*models.Bill, error) {
	return f.bills[id], nil
}

func (f *fakeBillRepo) FindAll() ([]models.Bill, error) {
	out := make([]models.Bill, 0, len(f.bills))
	for id := uint(1); id <= f.nextID; id++ {
		if b, ok := f.bills[id]; ok {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBillRepo) FindByCustomerID(customerID uint) ([]models.Bill, error) {
	var out []models.Bill
	for id := uint(1); id <= f.nextID; id++ {
		if b, ok := f.bills[id]; ok && b.CustomerID == customerID {
			out = append(out, *b)
		}
	}
	return out, nil
}

func (f *fakeBillRepo) Save(bill *models.Bill) error {
	f.saveCalls++
	if bill.ID == 0 {
		f.nextID++
		bill.ID = f.nextID
	} else if bill.ID > f.nextID {
		f.nextID = bill.ID
	}
	f.bills[bill.ID] = bill
	return nil
}

type fakeCustomerRepo struct {
	customers map[uint]*models.Customer
	findCalls int
	saveCalls int
}

func newFakeCustomerRepo(customers ...*models.Customer) *fakeCustomerRepo {
	f := &fakeCustomerRepo{customers: make(map[uint]*models.Customer)}
	for _, c := range customers {
		f.customers[c.ID] = c
	}
	return f
}

func (f *fakeCustomerRepo) WithTx(tx *gorm.DB) repository.CustomerRepository { return f }

func (f *fakeCustomerRepo) FindByID(id uint) (*models.Customer, error) {
	f.findCalls++
	return f.customers[id], nil
}

func (f *fakeCustomerRepo) FindAll() ([]models.Customer, error) {
	out := make([]models.Customer, 0, len(f.customers))
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, nil
}

func (f *fakeCustomerRepo) ExistsByAccountNumber(accountNumber string) (bool, error) {
	for _, c := range f.customers {
		if c.AccountNumber == accountNumber {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCustomerRepo) Save(customer *models.Customer) error {
	f.saveCalls++
	if customer.ID == 0 {
		customer.ID = uint(len(f.customers) + 1)
	}
	f.customers[customer.ID] = customer
	return nil
}

func (f *fakeCustomerRepo) Delete(id uint) (bool, error) {
	if _, ok := f.customers[id]; !ok {
		return false, nil
	}
	delete(f.customers, id)
	return true, nil
}

type fakeUserRepo struct {
	users     map[string]*models.User
	saveCalls int
}

func newFakeUserRepo(users ...*models.User) *fakeUserRepo {
	f := &fakeUserRepo{users: make(map[string]*models.User)}
	for _, u := range users {
		f.users[u.Username] = u
	}
	return f
}

func (f *fakeUserRepo) FindByUsername(username string) (*models.User, error) {
	return f.users[username], nil
}

func (f *fakeUserRepo) Save(user *models.User) error {
	f.saveCalls++
	if user.ID == 0 {
		user.ID = uint(len(f.users) + 1)
	}
	f.users[user.Username] = user
	return nil
}

func (f *fakeUserRepo) UpdateLastLogin(user *models.User) error {
	return nil
}

type fakeItemRepo struct {
	items     map[uint]*models.Item
	findCalls int
	saveCalls int
}

func newFakeItemRepo(items ...*models.Item) *fakeItemRepo {
	f := &fakeItemRepo{items: make(map[uint]*models.Item)}
	for _, it := range items {
		f.items[it.ID] = it
	}
	return f
}

func (f *fakeItemRepo) WithTx(tx *gorm.DB) repository.ItemRepository { return f }

func (f *fakeItemRepo) FindByID(id uint) (*models.Item, error) {
	f.findCalls++
	return f.items[id], nil
}

func (f *fakeItemRepo) FindByIDForUpdate(id uint) (*models.Item, error) {
	f.findCalls++
	return f.items[id], nil
}

func (f *fakeItemRepo) FindAll() ([]models.Item, error) {
	out := make([]models.Item, 0, len(f.items))
	for _, it := range f.items {
		out = append(out, *it)
	}
	return out, nil
}

func (f *fakeItemRepo) Save(item *models.Item) error {
	f.saveCalls++
	if item.ID == 0 {
		item.ID = uint(len(f.items) + 1)
	}
	f.items[item.ID] = item
	return nil
}

func (f *fakeItemRepo) Delete(id uint) (bool, error) {
	if _, ok := f.items[id]; !ok {
		return false, nil
	}
	delete(f.items, id)
	return true, nil
}
