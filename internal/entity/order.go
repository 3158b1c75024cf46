package entity

import (
	"time"

	"github.com/shopspring/decimal"
	"github.com/uptrace/bun"
)

// Order represents a committed purchase. Orders are append-only: they are
// written once by the placement flow and never mutated afterwards.
type Order struct {
	bun.BaseModel `bun:"table:orders"`

	ID         int64           `bun:",pk,autoincrement"`
	Value      decimal.Decimal `bun:"value,notnull,type:numeric(18,2)"`
	CustomerID int64           `bun:"customer_id,notnull"`
	OrderDate  time.Time       `bun:"order_date,nullzero,notnull,default:CURRENT_TIMESTAMP"`

	Customer *Customer `bun:"rel:belongs-to,join:customer_id=id"`
}
