package entity

import "github.com/uptrace/bun"

// Customer is a registered buyer. Rows are created by the registration flow
// and never deleted, so order foreign keys stay resolvable.
type Customer struct {
	bun.BaseModel `bun:"table:customers"`

	ID     int64   `bun:",pk,autoincrement"`
	Name   string  `bun:"name,notnull"`
	Orders []Order `bun:"rel:has-many,join:id=customer_id"`
}
