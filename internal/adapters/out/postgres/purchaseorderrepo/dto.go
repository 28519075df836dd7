// Package purchaseorderrepo persists purchase order aggregates: one header row
// in purchase_orders and one row per line item in purchase_order_items.
package purchaseorderrepo

import (
	"sort"
	"time"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PONumberConstraint is the unique index that serialises number allocation.
const PONumberConstraint = "uq_purchase_orders_po_number"

// PurchaseOrderDTO is the header row of a purchase order.
type PurchaseOrderDTO struct {
	ID             uuid.UUID       `gorm:"type:uuid;primaryKey"`
	PONumber       string          `gorm:"column:po_number;size:32;not null;uniqueIndex:uq_purchase_orders_po_number"`
	Status         string          `gorm:"size:16;not null;index"`
	SupplierID     uuid.UUID       `gorm:"type:uuid;not null;index"`
	UserID         uuid.UUID       `gorm:"type:uuid;not null"`
	IssueDate      time.Time       `gorm:"not null"`
	DeliveryDate   time.Time       `gorm:"not null"`
	Subtotal       decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	DiscountAmount decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	VATAmount      decimal.Decimal `gorm:"column:vat_amount;type:decimal(18,8);not null"`
	ShippingCost   decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	GrandTotal     decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	Notes          string          `gorm:"type:text"`
	CreatedAt      time.Time       `gorm:"not null;index"`

	Items []PurchaseOrderItemDTO `gorm:"foreignKey:POID;constraint:OnDelete:CASCADE"`
}

func (PurchaseOrderDTO) TableName() string {
	return "purchase_orders"
}

// PurchaseOrderItemDTO is one line item row. Position keeps entry order.
type PurchaseOrderItemDTO struct {
	ID         uuid.UUID       `gorm:"type:uuid;primaryKey"`
	POID       uuid.UUID       `gorm:"column:po_id;type:uuid;not null;index"`
	Position   int             `gorm:"not null"`
	ProductID  *uuid.UUID      `gorm:"type:uuid;index"`
	ItemName   string          `gorm:"size:255"`
	ItemType   string          `gorm:"size:16;not null"`
	Quantity   decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	UnitPrice  decimal.Decimal `gorm:"type:decimal(18,8);not null"`
	TotalPrice decimal.Decimal `gorm:"type:decimal(18,8);not null"`
}

func (PurchaseOrderItemDTO) TableName() string {
	return "purchase_order_items"
}

func fromDomain(po *purchaseorder.PurchaseOrder) PurchaseOrderDTO {
	return PurchaseOrderDTO{
		ID:             po.ID().Bytes(),
		PONumber:       po.Number().String(),
		Status:         po.Status().String(),
		SupplierID:     po.SupplierID().Bytes(),
		UserID:         po.UserID().Bytes(),
		IssueDate:      po.IssueDate().UTC(),
		DeliveryDate:   po.DeliveryDate().UTC(),
		Subtotal:       po.Subtotal(),
		DiscountAmount: po.DiscountAmount(),
		VATAmount:      po.VATAmount(),
		ShippingCost:   po.ShippingCost(),
		GrandTotal:     po.GrandTotal(),
		Notes:          po.Notes(),
		CreatedAt:      po.CreatedAt().UTC(),
		Items:          itemsFromDomain(po),
	}
}

func itemsFromDomain(po *purchaseorder.PurchaseOrder) []PurchaseOrderItemDTO {
	items := po.Items()
	dtos := make([]PurchaseOrderItemDTO, 0, len(items))
	for i, item := range items {
		var productID *uuid.UUID
		if id := item.ProductID(); id != nil {
			raw := id.Bytes()
			productID = &raw
		}

		dtos = append(dtos, PurchaseOrderItemDTO{
			ID:         item.ID().Bytes(),
			POID:       po.ID().Bytes(),
			Position:   i,
			ProductID:  productID,
			ItemName:   item.ItemName(),
			ItemType:   item.ItemType().String(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}
	return dtos
}

func toDomain(dto PurchaseOrderDTO) (*purchaseorder.PurchaseOrder, error) {
	id, err := kernel.UUIDFromBytes(dto.ID[:])
	if err != nil {
		return nil, err
	}
	supplierID, err := kernel.UUIDFromBytes(dto.SupplierID[:])
	if err != nil {
		return nil, err
	}
	userID, err := kernel.UUIDFromBytes(dto.UserID[:])
	if err != nil {
		return nil, err
	}

	rows := make([]PurchaseOrderItemDTO, len(dto.Items))
	copy(rows, dto.Items)
	sort.SliceStable(rows, func(i, j int) bool { return rows[i].Position < rows[j].Position })

	items := make([]*purchaseorder.LineItem, 0, len(rows))
	for _, row := range rows {
		item, itemErr := itemToDomain(row)
		if itemErr != nil {
			return nil, itemErr
		}
		items = append(items, item)
	}

	return purchaseorder.Restore(purchaseorder.Snapshot{
		ID:             id,
		Number:         dto.PONumber,
		Status:         dto.Status,
		SupplierID:     supplierID,
		UserID:         userID,
		IssueDate:      dto.IssueDate,
		DeliveryDate:   dto.DeliveryDate,
		Subtotal:       dto.Subtotal,
		DiscountAmount: dto.DiscountAmount,
		VATAmount:      dto.VATAmount,
		ShippingCost:   dto.ShippingCost,
		GrandTotal:     dto.GrandTotal,
		Notes:          dto.Notes,
		CreatedAt:      dto.CreatedAt,
		Items:          items,
	})
}

func itemToDomain(row PurchaseOrderItemDTO) (*purchaseorder.LineItem, error) {
	id, err := kernel.UUIDFromBytes(row.ID[:])
	if err != nil {
		return nil, err
	}

	var productID *kernel.UUID
	if row.ProductID != nil {
		pID, productErr := kernel.UUIDFromBytes((*row.ProductID)[:])
		if productErr != nil {
			return nil, productErr
		}
		productID = &pID
	}

	return purchaseorder.RestoreLineItem(purchaseorder.LineItemSnapshot{
		ID:         id,
		ItemType:   purchaseorder.ItemType(row.ItemType),
		ProductID:  productID,
		ItemName:   row.ItemName,
		Quantity:   row.Quantity,
		UnitPrice:  row.UnitPrice,
		TotalPrice: row.TotalPrice,
	})
}
