// Package apierror defines the JSON error envelope for the API. Handlers
// answer storefront and dashboard clients alike through it, so store errors
// and other internals never leak into a response body. The tenant signup
// endpoint is the one exception: its form consumes plain-text errors.
package apierror

// APIError is the canonical error envelope for all 4xx/5xx JSON responses.
type APIError struct {
	Detail string `json:"detail"`
}

func New(msg string) *APIError {
	return &APIError{Detail: msg}
}

// ValidationError carries per-field failures from request binding.
type ValidationError struct {
	Detail string            `json:"detail"`
	Fields map[string]string `json:"fields"`
}

func NewValidation(fields map[string]string) *ValidationError {
	return &ValidationError{Detail: "Error de validacion", Fields: fields}
}
