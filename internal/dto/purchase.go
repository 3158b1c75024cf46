package dto

import "github.com/shopspring/decimal"

// ValidatePurchaseRequest is the payload for the eligibility check endpoint.
type ValidatePurchaseRequest struct {
	PurchaseValue decimal.Decimal `json:"purchaseValue"`
}

// ValidatePurchaseResponse reports the outcome of an eligibility check. Rule
// failures are data, not errors: the endpoint answers 200 either way.
type ValidatePurchaseResponse struct {
	Valid    bool                `json:"valid"`
	Failures map[string][]string `json:"failures,omitempty"`
}
