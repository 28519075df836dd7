package queries_test

import (
	"context"
	"testing"
	"time"

	postgres_adapter "purchasing/internal/adapters/out/postgres"
	"purchasing/internal/adapters/out/postgres/purchaseorderrepo"
	"purchasing/internal/adapters/out/postgres/referencerepo"
	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/domain/services"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

type noopTracker struct{}

func (noopTracker) TrackAggregate(kernel.UUID, any) {}

// fixture is a small catalogue: two suppliers, one product, one user.
type fixture struct {
	db        *gorm.DB
	repo      *purchaseorderrepo.GormPurchaseOrderRepository
	thaiFoods kernel.UUID
	spices    kernel.UUID
	rice      kernel.UUID
	user      kernel.UUID
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	ctx := context.Background()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{TranslateError: true})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, postgres_adapter.Migrate(ctx, db))

	f := &fixture{
		db:   db,
		repo: purchaseorderrepo.NewGormPurchaseOrderRepository(db, noopTracker{}),
	}
	f.thaiFoods = f.seed(t, &referencerepo.SupplierDTO{ID: uuid.New(), CompanyName: "Thai Foods Co., Ltd."})
	f.spices = f.seed(t, &referencerepo.SupplierDTO{ID: uuid.New(), CompanyName: "Siam Spices"})
	f.rice = f.seed(t, &referencerepo.ProductDTO{ID: uuid.New(), Name: "Jasmine rice 5kg", SKU: "RICE-5", Unit: "bag"})
	f.user = f.seed(t, &referencerepo.UserDTO{ID: uuid.New(), Name: "Somchai Jaidee"})
	return f
}

func (f *fixture) seed(t *testing.T, dto any) kernel.UUID {
	t.Helper()
	require.NoError(t, f.db.Create(dto).Error)

	var raw uuid.UUID
	switch d := dto.(type) {
	case *referencerepo.SupplierDTO:
		raw = d.ID
	case *referencerepo.ProductDTO:
		raw = d.ID
	case *referencerepo.UserDTO:
		raw = d.ID
	}
	id, err := kernel.UUIDFromBytes(raw[:])
	require.NoError(t, err)
	return id
}

// addOrder stores an order for supplier with a catalogue line and a free-text line.
func (f *fixture) addOrder(t *testing.T, number string, supplier kernel.UUID, createdAt time.Time) *purchaseorder.PurchaseOrder {
	t.Helper()

	calc, err := services.NewTotalsCalculator(services.DefaultVATRate)
	require.NoError(t, err)

	rice, err := purchaseorder.NewStandardItem(f.rice, "Jasmine rice 5kg", decimal.NewFromInt(2), decimal.NewFromInt(100))
	require.NoError(t, err)
	subject, err := purchaseorder.NamedSubject("Pallet wrap")
	require.NoError(t, err)
	wrap, err := purchaseorder.NewManualItem(subject, decimal.NewFromInt(1), decimal.NewFromInt(50))
	require.NoError(t, err)

	n, err := purchaseorder.ParseNumber(number)
	require.NoError(t, err)

	issue := time.Date(2026, 2, 19, 0, 0, 0, 0, time.UTC)
	po, err := purchaseorder.NewPurchaseOrder(n, purchaseorder.Header{
		SupplierID:   supplier,
		UserID:       f.user,
		IssueDate:    issue,
		DeliveryDate: issue.AddDate(0, 0, 7),
		ShippingCost: decimal.NewFromInt(20),
		Notes:        "deliver to warehouse B",
	}, []*purchaseorder.LineItem{rice, wrap}, calc, createdAt)
	require.NoError(t, err)

	require.NoError(t, f.repo.Add(context.Background(), po))
	return po
}
