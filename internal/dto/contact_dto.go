package dto

// ContactTouchRequest identifies a shopper interaction by phone number.
// Touches are reconciled asynchronously, so the endpoint acknowledges before
// the contact book is updated.
type ContactTouchRequest struct {
	Phone       string `json:"phone" validate:"required,min=10,max=16"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Location    string `json:"location"`
	Sales       string `json:"sales"`
}

// Touch converts the request into the raw touch the reconciliation protocol
// consumes.
func (r ContactTouchRequest) Touch() map[string]any {
	return map[string]any{
		"phone":       r.Phone,
		"name":        r.Name,
		"description": r.Description,
		"location":    r.Location,
		"sales":       r.Sales,
	}
}
