// Package inventory holds the consumable stock ledger. Quantities are
// decremented when tickets record materials used and never go negative.
package inventory

import (
	"fmt"
	"time"

	"propflow/internal/shared/biztime"
)

// Item is one consumable stock line, matched by unique name.
type Item struct {
	id            uint
	name          string
	category      string
	quantity      int
	unit          string
	minQuantity   int
	cost          float64
	supplier      string
	location      string
	version       int
	loadedVersion int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewItem(
	name string,
	category string,
	quantity int,
	unit string,
	minQuantity int,
	cost float64,
	supplier string,
	location string,
) (*Item, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if quantity < 0 {
		return nil, fmt.Errorf("quantity cannot be negative")
	}
	if minQuantity < 0 {
		return nil, fmt.Errorf("minimum quantity cannot be negative")
	}
	if cost < 0 {
		return nil, fmt.Errorf("cost cannot be negative")
	}

	now := biztime.NowUTC()
	return &Item{
		name:        name,
		category:    category,
		quantity:    quantity,
		unit:        unit,
		minQuantity: minQuantity,
		cost:        cost,
		supplier:    supplier,
		location:    location,
		version:     1,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructItem(
	id uint,
	name string,
	category string,
	quantity int,
	unit string,
	minQuantity int,
	cost float64,
	supplier string,
	location string,
	version int,
	createdAt, updatedAt time.Time,
) (*Item, error) {
	if id == 0 {
		return nil, fmt.Errorf("item ID cannot be zero")
	}
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}

	return &Item{
		id:            id,
		name:          name,
		category:      category,
		quantity:      quantity,
		unit:          unit,
		minQuantity:   minQuantity,
		cost:          cost,
		supplier:      supplier,
		location:      location,
		version:       version,
		loadedVersion: version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (i *Item) ID() uint {
	return i.id
}

func (i *Item) Name() string {
	return i.name
}

func (i *Item) Category() string {
	return i.category
}

func (i *Item) Quantity() int {
	return i.quantity
}

func (i *Item) Unit() string {
	return i.unit
}

func (i *Item) MinQuantity() int {
	return i.minQuantity
}

func (i *Item) Cost() float64 {
	return i.cost
}

func (i *Item) Supplier() string {
	return i.supplier
}

func (i *Item) Location() string {
	return i.location
}

func (i *Item) Version() int {
	return i.version
}

// LoadedVersion is the version of the row this aggregate was reconstructed
// from, used for the optimistic concurrency check on update.
func (i *Item) LoadedVersion() int {
	return i.loadedVersion
}

func (i *Item) CreatedAt() time.Time {
	return i.createdAt
}

func (i *Item) UpdatedAt() time.Time {
	return i.updatedAt
}

func (i *Item) SetID(id uint) error {
	if i.id != 0 {
		return fmt.Errorf("item ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("item ID cannot be zero")
	}
	i.id = id
	return nil
}

// Consume decrements quantity by the requested amount, clamped at zero, and
// returns the amount actually deducted.
func (i *Item) Consume(requested int) int {
	if requested <= 0 {
		return 0
	}

	consumed := requested
	if consumed > i.quantity {
		consumed = i.quantity
	}
	i.quantity -= consumed
	i.touch()
	return consumed
}

// Restock increases quantity.
func (i *Item) Restock(amount int) error {
	if amount <= 0 {
		return fmt.Errorf("restock amount must be positive")
	}
	i.quantity += amount
	i.touch()
	return nil
}

// IsBelowReorderThreshold reports whether the stock has reached the reorder
// level.
func (i *Item) IsBelowReorderThreshold() bool {
	return i.quantity <= i.minQuantity
}

// UpdateDetails applies an item update. Nil pointers leave fields untouched.
func (i *Item) UpdateDetails(
	category *string,
	quantity *int,
	unit *string,
	minQuantity *int,
	cost *float64,
	supplier *string,
	location *string,
) error {
	if quantity != nil {
		if *quantity < 0 {
			return fmt.Errorf("quantity cannot be negative")
		}
		i.quantity = *quantity
	}
	if minQuantity != nil {
		if *minQuantity < 0 {
			return fmt.Errorf("minimum quantity cannot be negative")
		}
		i.minQuantity = *minQuantity
	}
	if cost != nil {
		if *cost < 0 {
			return fmt.Errorf("cost cannot be negative")
		}
		i.cost = *cost
	}
	if category != nil {
		i.category = *category
	}
	if unit != nil {
		i.unit = *unit
	}
	if supplier != nil {
		i.supplier = *supplier
	}
	if location != nil {
		i.location = *location
	}

	i.touch()
	return nil
}

func (i *Item) touch() {
	i.updatedAt = biztime.NowUTC()
	i.version++
}
