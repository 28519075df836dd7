package queries

import (
	"context"
	"database/sql"
	"errors"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"
	"purchasing/internal/pkg/errs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GetPurchaseOrderQueryHandler loads a single hydrated purchase order.
//
// Example:
//
//	handler := NewGetPurchaseOrderQueryHandler(db)
//	query, _ := NewGetPurchaseOrderQuery(id)
//
//	po, err := handler.Handle(ctx, query)
//	if errors.Is(err, errs.ErrObjectNotFound) {
//	    // 404
//	}
type GetPurchaseOrderQueryHandler struct {
	db *gorm.DB
}

func NewGetPurchaseOrderQueryHandler(db *gorm.DB) GetPurchaseOrderQueryHandler {
	return GetPurchaseOrderQueryHandler{db: db}
}

// Handle returns errs.ObjectNotFoundError when the order does not exist.
func (h GetPurchaseOrderQueryHandler) Handle(
	ctx context.Context,
	query GetPurchaseOrderQuery,
) (GetPurchaseOrderQueryResponse, error) {
	if err := query.Validate(); err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	db := h.db.WithContext(ctx)

	resp, err := h.header(db, query.PurchaseOrderID())
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	resp.Items, err = h.items(db, query.PurchaseOrderID())
	if err != nil {
		return GetPurchaseOrderQueryResponse{}, err
	}

	return resp, nil
}

func (h GetPurchaseOrderQueryHandler) header(db *gorm.DB, id kernel.UUID) (GetPurchaseOrderQueryResponse, error) {
	var resp GetPurchaseOrderQueryResponse

	row := db.Raw(`
		SELECT
			po.id,
			po.po_number,
			po.status,
			po.supplier_id,
			s.company_name,
			po.user_id,
			u.name,
			po.issue_date,
			po.delivery_date,
			po.subtotal,
			po.discount_amount,
			po.vat_amount,
			po.shipping_cost,
			po.grand_total,
			po.notes,
			po.created_at
		FROM purchase_orders po
		LEFT JOIN suppliers s ON s.id = po.supplier_id
		LEFT JOIN users u ON u.id = po.user_id
		WHERE po.id = ?
	`, id.Bytes()).Row()

	var (
		poID, supplierID, userID uuid.UUID
		status                   string
		supplierName, userName   sql.NullString
		notes                    sql.NullString
	)
	err := row.Scan(
		&poID,
		&resp.PONumber,
		&status,
		&supplierID,
		&supplierName,
		&userID,
		&userName,
		&resp.IssueDate,
		&resp.DeliveryDate,
		&resp.Subtotal,
		&resp.DiscountAmount,
		&resp.VATAmount,
		&resp.ShippingCost,
		&resp.GrandTotal,
		&notes,
		&resp.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return resp, errs.NewObjectNotFoundError("purchaseOrder", id.String())
		}
		return resp, err
	}

	if resp.ID, err = kernel.UUIDFromBytes(poID[:]); err != nil {
		return resp, err
	}
	if resp.Status, err = purchaseorder.ParseStatus(status); err != nil {
		return resp, err
	}
	if resp.Supplier.ID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
		return resp, err
	}
	if resp.User.ID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
		return resp, err
	}
	resp.Supplier.Name = supplierName.String
	resp.User.Name = userName.String
	resp.Notes = notes.String

	return resp, nil
}

func (h GetPurchaseOrderQueryHandler) items(db *gorm.DB, id kernel.UUID) ([]LineItemView, error) {
	rows, err := db.Raw(`
		SELECT
			i.id,
			i.item_type,
			i.product_id,
			p.name,
			p.sku,
			p.unit,
			i.item_name,
			i.quantity,
			i.unit_price,
			i.total_price
		FROM purchase_order_items i
		LEFT JOIN products p ON p.id = i.product_id
		WHERE i.po_id = ?
		ORDER BY i.position
	`, id.Bytes()).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]LineItemView, 0)
	for rows.Next() {
		var (
			item                          LineItemView
			itemID                        uuid.UUID
			itemType                      string
			productID                     uuid.NullUUID
			productName, productSKU, unit sql.NullString
			itemName                      sql.NullString
		)

		err = rows.Scan(
			&itemID,
			&itemType,
			&productID,
			&productName,
			&productSKU,
			&unit,
			&itemName,
			&item.Quantity,
			&item.UnitPrice,
			&item.TotalPrice,
		)
		if err != nil {
			return nil, err
		}

		if item.ID, err = kernel.UUIDFromBytes(itemID[:]); err != nil {
			return nil, err
		}
		if item.ItemType, err = purchaseorder.ParseItemType(itemType); err != nil {
			return nil, err
		}
		if productID.Valid {
			pID, idErr := kernel.UUIDFromBytes(productID.UUID[:])
			if idErr != nil {
				return nil, idErr
			}
			item.Product = &ProductRef{
				ID:   pID,
				Name: productName.String,
				SKU:  productSKU.String,
				Unit: unit.String,
			}
		}
		item.ItemName = itemName.String

		items = append(items, item)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
