package http

import (
	"time"

	"purchasing/internal/core/application/usecases/commands"
	"purchasing/internal/core/application/usecases/queries"

	"github.com/shopspring/decimal"
)

// Amounts are decimal.Decimal, which encodes as a JSON string and keeps
// every digit.

type SupplierResponse struct {
	ID          string `json:"id"`
	CompanyName string `json:"companyName"`
}

type UserResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type ProductResponse struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	SKU  string `json:"sku,omitempty"`
	Unit string `json:"unit,omitempty"`
}

type LineItemResponse struct {
	ID         string           `json:"id"`
	ItemType   string           `json:"itemType"`
	Product    *ProductResponse `json:"product"`
	ItemName   string           `json:"itemName"`
	Quantity   decimal.Decimal  `json:"quantity"`
	UnitPrice  decimal.Decimal  `json:"unitPrice"`
	TotalPrice decimal.Decimal  `json:"totalPrice"`
}

type PurchaseOrderResponse struct {
	ID             string             `json:"id"`
	PONumber       string             `json:"poNumber"`
	Status         string             `json:"status"`
	Supplier       SupplierResponse   `json:"supplier"`
	User           UserResponse       `json:"user"`
	IssueDate      string             `json:"issueDate"`
	DeliveryDate   string             `json:"deliveryDate"`
	Subtotal       decimal.Decimal    `json:"subtotal"`
	DiscountAmount decimal.Decimal    `json:"discountAmount"`
	VATAmount      decimal.Decimal    `json:"vatAmount"`
	ShippingCost   decimal.Decimal    `json:"shippingCost"`
	GrandTotal     decimal.Decimal    `json:"grandTotal"`
	Notes          string             `json:"notes"`
	CreatedAt      time.Time          `json:"createdAt"`
	Items          []LineItemResponse `json:"items"`
}

type PurchaseOrderSummaryResponse struct {
	ID           string           `json:"id"`
	PONumber     string           `json:"poNumber"`
	Status       string           `json:"status"`
	Supplier     SupplierResponse `json:"supplier"`
	User         UserResponse     `json:"user"`
	IssueDate    string           `json:"issueDate"`
	DeliveryDate string           `json:"deliveryDate"`
	GrandTotal   decimal.Decimal  `json:"grandTotal"`
	ItemCount    int              `json:"itemCount"`
	CreatedAt    time.Time        `json:"createdAt"`
}

type DeleteResponse struct {
	Success bool `json:"success"`
}

func detailsResponse(d commands.PurchaseOrderDetails) PurchaseOrderResponse {
	po := d.Order

	items := make([]LineItemResponse, 0, len(po.Items()))
	for _, item := range po.Items() {
		var product *ProductResponse
		if id := item.ProductID(); id != nil {
			product = &ProductResponse{ID: id.String()}
			if p, ok := d.Products[*id]; ok {
				product.Name = p.Name
				product.Unit = p.Unit
			}
		}
		items = append(items, LineItemResponse{
			ID:         item.ID().String(),
			ItemType:   item.ItemType().String(),
			Product:    product,
			ItemName:   item.ItemName(),
			Quantity:   item.Quantity(),
			UnitPrice:  item.UnitPrice(),
			TotalPrice: item.TotalPrice(),
		})
	}

	return PurchaseOrderResponse{
		ID:             po.ID().String(),
		PONumber:       po.Number().String(),
		Status:         po.Status().String(),
		Supplier:       SupplierResponse{ID: d.Supplier.ID.String(), CompanyName: d.Supplier.Name},
		User:           UserResponse{ID: d.User.ID.String(), Name: d.User.Name},
		IssueDate:      formatDate(po.IssueDate()),
		DeliveryDate:   formatDate(po.DeliveryDate()),
		Subtotal:       po.Subtotal(),
		DiscountAmount: po.DiscountAmount(),
		VATAmount:      po.VATAmount(),
		ShippingCost:   po.ShippingCost(),
		GrandTotal:     po.GrandTotal(),
		Notes:          po.Notes(),
		CreatedAt:      po.CreatedAt(),
		Items:          items,
	}
}

func queryResponse(r queries.GetPurchaseOrderQueryResponse) PurchaseOrderResponse {
	items := make([]LineItemResponse, 0, len(r.Items))
	for _, item := range r.Items {
		var product *ProductResponse
		if item.Product != nil {
			product = &ProductResponse{
				ID:   item.Product.ID.String(),
				Name: item.Product.Name,
				SKU:  item.Product.SKU,
				Unit: item.Product.Unit,
			}
		}
		items = append(items, LineItemResponse{
			ID:         item.ID.String(),
			ItemType:   item.ItemType.String(),
			Product:    product,
			ItemName:   item.ItemName,
			Quantity:   item.Quantity,
			UnitPrice:  item.UnitPrice,
			TotalPrice: item.TotalPrice,
		})
	}

	return PurchaseOrderResponse{
		ID:             r.ID.String(),
		PONumber:       r.PONumber,
		Status:         r.Status.String(),
		Supplier:       SupplierResponse{ID: r.Supplier.ID.String(), CompanyName: r.Supplier.Name},
		User:           UserResponse{ID: r.User.ID.String(), Name: r.User.Name},
		IssueDate:      formatDate(r.IssueDate),
		DeliveryDate:   formatDate(r.DeliveryDate),
		Subtotal:       r.Subtotal,
		DiscountAmount: r.DiscountAmount,
		VATAmount:      r.VATAmount,
		ShippingCost:   r.ShippingCost,
		GrandTotal:     r.GrandTotal,
		Notes:          r.Notes,
		CreatedAt:      r.CreatedAt,
		Items:          items,
	}
}

func summariesResponse(rows []queries.PurchaseOrderSummary) []PurchaseOrderSummaryResponse {
	out := make([]PurchaseOrderSummaryResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, PurchaseOrderSummaryResponse{
			ID:           r.ID.String(),
			PONumber:     r.PONumber,
			Status:       r.Status.String(),
			Supplier:     SupplierResponse{ID: r.Supplier.ID.String(), CompanyName: r.Supplier.Name},
			User:         UserResponse{ID: r.User.ID.String(), Name: r.User.Name},
			IssueDate:    formatDate(r.IssueDate),
			DeliveryDate: formatDate(r.DeliveryDate),
			GrandTotal:   r.GrandTotal,
			ItemCount:    r.ItemCount,
			CreatedAt:    r.CreatedAt,
		})
	}
	return out
}

func formatDate(t time.Time) string {
	if t.IsZero() {
		return ""
	}
	return t.UTC().Format(dateLayout)
}
