package dto

import "github.com/xupateste/ctlg-tros/internal/model"

// StorefrontResponse is the public payload a generated store renders from:
// the tenant's branding plus its full (fetch-casted) catalog.
type StorefrontResponse struct {
	Tenant   model.Tenant    `json:"tenant"`
	Products []model.Product `json:"products"`
}
