package commands_test

import (
	"context"
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/domain/model/reference"
	"purchasing/internal/core/domain/services"
	"purchasing/internal/core/ports"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"
)

type MockPurchaseOrderRepository struct{ mock.Mock }

func (m *MockPurchaseOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) ReplaceItems(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	args := m.Called(ctx, po)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	args := m.Called(ctx, id)
	po, _ := args.Get(0).(*purchaseorder.PurchaseOrder)
	return po, args.Error(1)
}

func (m *MockPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockPurchaseOrderRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	args := m.Called(ctx, prefix)
	return args.String(0), args.Error(1)
}

type MockSupplierRepository struct{ mock.Mock }

func (m *MockSupplierRepository) Get(ctx context.Context, id kernel.UUID) (reference.Supplier, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(reference.Supplier), args.Error(1)
}

type MockProductRepository struct{ mock.Mock }

func (m *MockProductRepository) FindByIDs(ctx context.Context, ids []kernel.UUID) ([]reference.Product, error) {
	args := m.Called(ctx, ids)
	products, _ := args.Get(0).([]reference.Product)
	return products, args.Error(1)
}

type MockUserRepository struct{ mock.Mock }

func (m *MockUserRepository) Get(ctx context.Context, id kernel.UUID) (reference.User, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(reference.User), args.Error(1)
}

func (m *MockUserRepository) First(ctx context.Context) (reference.User, error) {
	args := m.Called(ctx)
	return args.Get(0).(reference.User), args.Error(1)
}

type MockUoW struct{ mock.Mock }

func (m *MockUoW) Begin(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Commit(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) Rollback(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func (m *MockUoW) PurchaseOrderRepository() ports.PurchaseOrderRepository {
	args := m.Called()
	return args.Get(0).(ports.PurchaseOrderRepository)
}

func (m *MockUoW) SupplierRepository() ports.SupplierRepository {
	args := m.Called()
	return args.Get(0).(ports.SupplierRepository)
}

func (m *MockUoW) ProductRepository() ports.ProductRepository {
	args := m.Called()
	return args.Get(0).(ports.ProductRepository)
}

func (m *MockUoW) UserRepository() ports.UserRepository {
	args := m.Called()
	return args.Get(0).(ports.UserRepository)
}

type MockUoWFactory struct{ mock.Mock }

func (m *MockUoWFactory) Create() commands.UoW {
	args := m.Called()
	return args.Get(0).(commands.UoW)
}

// repos bundles the repositories a MockUoW hands out.
type repos struct {
	orders    *MockPurchaseOrderRepository
	suppliers *MockSupplierRepository
	products  *MockProductRepository
	users     *MockUserRepository
}

func newRepos() repos {
	return repos{
		orders:    new(MockPurchaseOrderRepository),
		suppliers: new(MockSupplierRepository),
		products:  new(MockProductRepository),
		users:     new(MockUserRepository),
	}
}

// newUoW returns a unit of work that hands out r for any number of calls.
func newUoW(r repos) *MockUoW {
	uow := new(MockUoW)
	uow.On("PurchaseOrderRepository").Return(r.orders).Maybe()
	uow.On("SupplierRepository").Return(r.suppliers).Maybe()
	uow.On("ProductRepository").Return(r.products).Maybe()
	uow.On("UserRepository").Return(r.users).Maybe()
	return uow
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func ptr[T any](v T) *T {
	return &v
}

func calculator() services.TotalsCalculator {
	calc, err := services.NewTotalsCalculator(services.DefaultVATRate)
	if err != nil {
		panic(err)
	}
	return calc
}

func bangkok() *time.Location {
	return time.FixedZone("ICT", 7*60*60)
}

// existingOrder builds a stored-looking order with two standard lines.
func existingOrder(supplierID, userID kernel.UUID, status purchaseorder.Status) *purchaseorder.PurchaseOrder {
	first, err := purchaseorder.NewStandardItem(kernel.NewUUID(), "Bolt", dec("2"), dec("100"))
	if err != nil {
		panic(err)
	}
	second, err := purchaseorder.NewStandardItem(kernel.NewUUID(), "Nut", dec("1"), dec("50"))
	if err != nil {
		panic(err)
	}

	issue := time.Date(2026, time.February, 19, 0, 0, 0, 0, time.UTC)
	po, err := purchaseorder.Restore(purchaseorder.Snapshot{
		ID:             kernel.NewUUID(),
		Number:         "PO25690219-P004",
		Status:         status.String(),
		SupplierID:     supplierID,
		UserID:         userID,
		IssueDate:      issue,
		DeliveryDate:   issue.AddDate(0, 0, 7),
		Subtotal:       dec("250"),
		DiscountAmount: dec("5"),
		VATAmount:      dec("17.15"),
		ShippingCost:   dec("20"),
		GrandTotal:     dec("282.15"),
		Notes:          "original",
		CreatedAt:      issue,
		Items:          []*purchaseorder.LineItem{first, second},
	})
	if err != nil {
		panic(err)
	}
	return po
}
