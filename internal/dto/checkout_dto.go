package dto

import "github.com/shopspring/decimal"

// ─── Request DTOs ────────────────────────────────────────────────────────────

type CheckoutRequest struct {
	Phone  string          `json:"phone"  validate:"required,min=10,max=16"`
	Sales  string          `json:"sales"` // sales-contact key, empty = store line
	Name   string          `json:"name"`
	Note   string          `json:"note"`
	Fields []CheckoutField `json:"fields" validate:"dive"`
	Items  []CheckoutItem  `json:"items"  validate:"required,min=1,dive"`
}

type CheckoutItem struct {
	ID      string          `json:"id"`
	Title   string          `json:"title"   validate:"required"`
	Price   decimal.Decimal `json:"price"`
	Count   int64           `json:"count"   validate:"min=1"`
	Options string          `json:"options"`
}

// CheckoutField is a shopper's answer to one of the tenant's custom fields.
type CheckoutField struct {
	Title string `json:"title"`
	Value string `json:"value"`
}

// ─── Response DTOs ───────────────────────────────────────────────────────────

type CheckoutResponse struct {
	OrderID string          `json:"orderId"`
	Link    string          `json:"link"`
	Total   decimal.Decimal `json:"total"`
}
