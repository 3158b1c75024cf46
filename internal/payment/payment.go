package payment

import (
	"context"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// Strategy processes a payment for one named method.
type Strategy interface {
	Method() string
	Process(ctx context.Context, amount decimal.Decimal, customerID int64) error
}

// Pix handles instant bank transfers.
type Pix struct {
	logger *zap.Logger
}

// NewPix constructs the pix strategy.
func NewPix(logger *zap.Logger) *Pix {
	return &Pix{logger: logger}
}

// Method identifies the strategy.
func (*Pix) Method() string { return "pix" }

// Process settles the payment. The gateway call is stubbed out.
func (p *Pix) Process(ctx context.Context, amount decimal.Decimal, customerID int64) error {
	p.logger.Info("pix payment processed",
		zap.String("amount", amount.StringFixed(2)),
		zap.Int64("customer_id", customerID),
	)
	return nil
}

// CreditCard handles card payments.
type CreditCard struct {
	logger *zap.Logger
}

// NewCreditCard constructs the credit card strategy.
func NewCreditCard(logger *zap.Logger) *CreditCard {
	return &CreditCard{logger: logger}
}

// Method identifies the strategy.
func (*CreditCard) Method() string { return "creditcard" }

// Process settles the payment. The gateway call is stubbed out.
func (c *CreditCard) Process(ctx context.Context, amount decimal.Decimal, customerID int64) error {
	c.logger.Info("credit card payment processed",
		zap.String("amount", amount.StringFixed(2)),
		zap.Int64("customer_id", customerID),
	)
	return nil
}

// Paypal handles PayPal payments.
type Paypal struct {
	logger *zap.Logger
}

// NewPaypal constructs the paypal strategy.
func NewPaypal(logger *zap.Logger) *Paypal {
	return &Paypal{logger: logger}
}

// Method identifies the strategy.
func (*Paypal) Method() string { return "paypal" }

// Process settles the payment. The gateway call is stubbed out.
func (p *Paypal) Process(ctx context.Context, amount decimal.Decimal, customerID int64) error {
	p.logger.Info("paypal payment processed",
		zap.String("amount", amount.StringFixed(2)),
		zap.Int64("customer_id", customerID),
	)
	return nil
}
