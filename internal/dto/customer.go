package dto

// CustomerResponse represents a customer with their order history.
type CustomerResponse struct {
	ID     int64           `json:"id"`
	Name   string          `json:"name"`
	Orders []OrderResponse `json:"orders"`
}
