package inventory

import "context"

type Repository interface {
	Save(ctx context.Context, item *Item) error
	// Update persists the item with an optimistic concurrency check on the
	// version column.
	Update(ctx context.Context, item *Item) error
	Delete(ctx context.Context, itemID uint) error
	FindByID(ctx context.Context, itemID uint) (*Item, error)
	FindByName(ctx context.Context, name string) (*Item, error)
	List(ctx context.Context, filter Filter) ([]*Item, int64, error)
}

type Filter struct {
	Category *string
	// LowStock limits the listing to items at or below their reorder
	// threshold.
	LowStock bool
	Page     int
	Limit    int
}
