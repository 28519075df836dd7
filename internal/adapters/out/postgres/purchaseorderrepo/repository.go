package purchaseorderrepo

import (
	"context"
	"errors"
	"fmt"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/core/ports"
	"purchasing/internal/pkg/errs"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const uniqueViolation = "23505"

// GormPurchaseOrderRepository implements ports.PurchaseOrderRepository using GORM.
type GormPurchaseOrderRepository struct {
	db      *gorm.DB
	tracker aggregateTracker
}

type aggregateTracker interface {
	TrackAggregate(id kernel.UUID, aggregate any)
}

var _ ports.PurchaseOrderRepository = (*GormPurchaseOrderRepository)(nil)

func NewGormPurchaseOrderRepository(db *gorm.DB, tracker aggregateTracker) *GormPurchaseOrderRepository {
	return &GormPurchaseOrderRepository{
		db:      db,
		tracker: tracker,
	}
}

// Add inserts the header row together with its line items.
func (r *GormPurchaseOrderRepository) Add(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}

	dto := fromDomain(po)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		if isDuplicateNumber(err) {
			return fmt.Errorf("%w: %s", ports.ErrDuplicatePONumber, dto.PONumber)
		}
		return err
	}

	r.tracker.TrackAggregate(po.ID(), po)
	return nil
}

// Update rewrites the mutable header columns. The order number and creation
// time are never touched.
func (r *GormPurchaseOrderRepository) Update(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}

	dto := fromDomain(po)
	result := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("id = ?", dto.ID).
		Updates(map[string]any{
			"status":          dto.Status,
			"supplier_id":     dto.SupplierID,
			"user_id":         dto.UserID,
			"issue_date":      dto.IssueDate,
			"delivery_date":   dto.DeliveryDate,
			"subtotal":        dto.Subtotal,
			"discount_amount": dto.DiscountAmount,
			"vat_amount":      dto.VATAmount,
			"shipping_cost":   dto.ShippingCost,
			"grand_total":     dto.GrandTotal,
			"notes":           dto.Notes,
		})
	if result.Error != nil {
		return result.Error
	}

	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchaseOrder", po.ID().String())
	}

	r.tracker.TrackAggregate(po.ID(), po)
	return nil
}

// ReplaceItems swaps the stored item set for the aggregate's current one.
func (r *GormPurchaseOrderRepository) ReplaceItems(ctx context.Context, po *purchaseorder.PurchaseOrder) error {
	if err := po.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("po_id = ?", po.ID().Bytes()).Delete(&PurchaseOrderItemDTO{}).Error; err != nil {
		return err
	}

	items := itemsFromDomain(po)
	if len(items) == 0 {
		return nil
	}
	if err := db.Create(&items).Error; err != nil {
		return err
	}

	r.tracker.TrackAggregate(po.ID(), po)
	return nil
}

// Get loads an order with its items in entry order.
func (r *GormPurchaseOrderRepository) Get(ctx context.Context, id kernel.UUID) (*purchaseorder.PurchaseOrder, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}

	var dto PurchaseOrderDTO
	err := r.db.WithContext(ctx).
		Preload("Items", func(db *gorm.DB) *gorm.DB {
			return db.Order("position ASC")
		}).
		First(&dto, "id = ?", id.Bytes()).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NewObjectNotFoundError("purchaseOrder", id.String())
		}
		return nil, err
	}

	return toDomain(dto)
}

// Delete removes the items first, then the header.
func (r *GormPurchaseOrderRepository) Delete(ctx context.Context, id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	db := r.db.WithContext(ctx)
	if err := db.Where("po_id = ?", id.Bytes()).Delete(&PurchaseOrderItemDTO{}).Error; err != nil {
		return err
	}

	result := db.Where("id = ?", id.Bytes()).Delete(&PurchaseOrderDTO{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return errs.NewObjectNotFoundError("purchaseOrder", id.String())
	}

	return nil
}

// LastNumberWithPrefix returns the highest order number sharing prefix.
// Numbers are fixed width, so lexicographic order is numeric order.
func (r *GormPurchaseOrderRepository) LastNumberWithPrefix(ctx context.Context, prefix string) (string, error) {
	var numbers []string
	err := r.db.WithContext(ctx).
		Model(&PurchaseOrderDTO{}).
		Where("po_number LIKE ?", prefix+"%").
		Order("po_number DESC").
		Limit(1).
		Pluck("po_number", &numbers).Error
	if err != nil {
		return "", err
	}

	if len(numbers) == 0 {
		return "", nil
	}
	return numbers[0], nil
}

func isDuplicateNumber(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == uniqueViolation && pgErr.ConstraintName == PONumberConstraint
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
