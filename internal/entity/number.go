package entity

import "github.com/uptrace/bun"

// AllocatedNumber records one integer claimed by the allocator. The unique
// index on value is what makes allocation collision-safe; rows are never
// updated or removed.
type AllocatedNumber struct {
	bun.BaseModel `bun:"table:numbers"`

	ID    int64 `bun:",pk,autoincrement"`
	Value int   `bun:"value,notnull"`
}
