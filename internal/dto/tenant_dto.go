package dto

// TenantIntakeRequest is the signup payload for a new store. Phones may
// arrive as JSON numbers or strings; the coercion schema normalizes them.
type TenantIntakeRequest struct {
	BusinessName  string `json:"businessName"`
	StoreName     string `json:"storeName"`
	StorePhone    any    `json:"storePhone"`
	PersonalPhone any    `json:"personalPhone"`
	Country       string `json:"country"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	AcceptCheck   bool   `json:"acceptCheck"`
}

type TenantIntakeResponse struct {
	Success bool `json:"success"`
}
