package queries

import (
	"context"
	"database/sql"
	"strings"

	"purchasing/internal/core/domain/model/kernel"
	"purchasing/internal/core/domain/model/purchaseorder"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// ListPurchaseOrdersQueryHandler lists purchase order summaries.
type ListPurchaseOrdersQueryHandler struct {
	db *gorm.DB
}

func NewListPurchaseOrdersQueryHandler(db *gorm.DB) ListPurchaseOrdersQueryHandler {
	return ListPurchaseOrdersQueryHandler{db: db}
}

// Handle returns matching orders, newest first. An empty result is an empty
// slice, never nil.
func (h ListPurchaseOrdersQueryHandler) Handle(
	ctx context.Context,
	query ListPurchaseOrdersQuery,
) ([]PurchaseOrderSummary, error) {
	if err := query.Validate(); err != nil {
		return nil, err
	}

	var (
		conditions []string
		args       []any
	)
	if status := query.Status(); status != nil {
		conditions = append(conditions, "po.status = ?")
		args = append(args, status.String())
	}
	if supplierID := query.SupplierID(); supplierID != nil {
		conditions = append(conditions, "po.supplier_id = ?")
		args = append(args, supplierID.Bytes())
	}
	if search := query.Search(); search != "" {
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		conditions = append(conditions,
			`(LOWER(po.po_number) LIKE ? ESCAPE '\' OR LOWER(s.company_name) LIKE ? ESCAPE '\')`)
		args = append(args, pattern, pattern)
	}

	where := ""
	if len(conditions) > 0 {
		where = "WHERE " + strings.Join(conditions, " AND ")
	}

	rows, err := h.db.WithContext(ctx).Raw(`
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
			po.grand_total,
			(SELECT COUNT(*) FROM purchase_order_items i WHERE i.po_id = po.id),
			po.created_at
		FROM purchase_orders po
		LEFT JOIN suppliers s ON s.id = po.supplier_id
		LEFT JOIN users u ON u.id = po.user_id
		`+where+`
		ORDER BY po.created_at DESC, po.po_number DESC
	`, args...).Rows()
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]PurchaseOrderSummary, 0)
	for rows.Next() {
		var (
			summary                  PurchaseOrderSummary
			poID, supplierID, userID uuid.UUID
			status                   string
			supplierName, userName   sql.NullString
			itemCount                int64
		)

		err = rows.Scan(
			&poID,
			&summary.PONumber,
			&status,
			&supplierID,
			&supplierName,
			&userID,
			&userName,
			&summary.IssueDate,
			&summary.DeliveryDate,
			&summary.GrandTotal,
			&itemCount,
			&summary.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if summary.ID, err = kernel.UUIDFromBytes(poID[:]); err != nil {
			return nil, err
		}
		if summary.Status, err = purchaseorder.ParseStatus(status); err != nil {
			return nil, err
		}
		if summary.Supplier.ID, err = kernel.UUIDFromBytes(supplierID[:]); err != nil {
			return nil, err
		}
		if summary.User.ID, err = kernel.UUIDFromBytes(userID[:]); err != nil {
			return nil, err
		}
		summary.Supplier.Name = supplierName.String
		summary.User.Name = userName.String
		summary.ItemCount = int(itemCount)

		summaries = append(summaries, summary)
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}

	return summaries, nil
}
