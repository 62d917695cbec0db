package dto

import (
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/shared/mapper"
)

type ItemDTO struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Category    string    `json:"category,omitempty"`
	Quantity    int       `json:"quantity"`
	Unit        string    `json:"unit,omitempty"`
	MinQuantity int       `json:"min_quantity"`
	Cost        float64   `json:"cost"`
	Supplier    string    `json:"supplier,omitempty"`
	Location    string    `json:"location,omitempty"`
	LowStock    bool      `json:"low_stock"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func ToItemDTO(item *inventory.Item) *ItemDTO {
	if item == nil {
		return nil
	}

	return &ItemDTO{
		ID:          item.ID(),
		Name:        item.Name(),
		Category:    item.Category(),
		Quantity:    item.Quantity(),
		Unit:        item.Unit(),
		MinQuantity: item.MinQuantity(),
		Cost:        item.Cost(),
		Supplier:    item.Supplier(),
		Location:    item.Location(),
		LowStock:    item.IsBelowReorderThreshold(),
		CreatedAt:   item.CreatedAt(),
		UpdatedAt:   item.UpdatedAt(),
	}
}

func ToItemDTOs(items []*inventory.Item) []ItemDTO {
	return mapper.MapSlice(items, func(item *inventory.Item) ItemDTO {
		return *ToItemDTO(item)
	})
}
