package entity

import "github.com/uptrace/bun"

// Product is a catalog item.
type Product struct {
	bun.BaseModel `bun:"table:products"`

	ID   int64  `bun:",pk,autoincrement"`
	Name string `bun:"name,notnull"`
}
