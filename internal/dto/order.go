package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// OrderResponse represents an order as exposed via transport layers.
type OrderResponse struct {
	ID         int64           `json:"id"`
	Value      decimal.Decimal `json:"value"`
	CustomerID int64           `json:"customerId"`
	OrderDate  time.Time       `json:"orderDate"`
}

// PlaceOrderRequest is the payload accepted by the order placement endpoint.
type PlaceOrderRequest struct {
	PaymentMethod string          `json:"paymentMethod"`
	PaymentValue  decimal.Decimal `json:"paymentValue"`
	CustomerID    int64           `json:"customerId"`
}
