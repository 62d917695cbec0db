package mappers

import (
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/infrastructure/persistence/models"
)

// InventoryMapper handles the conversion between inventory items and persistence models.
type InventoryMapper interface {
	ToModel(item *inventory.Item) *models.InventoryItemModel
	ToDomain(model *models.InventoryItemModel) (*inventory.Item, error)
}

type InventoryMapperImpl struct{}

func NewInventoryMapper() InventoryMapper {
	return &InventoryMapperImpl{}
}

func (m *InventoryMapperImpl) ToModel(item *inventory.Item) *models.InventoryItemModel {
	return &models.InventoryItemModel{
		ID:          item.ID(),
		Name:        item.Name(),
		Category:    item.Category(),
		Quantity:    item.Quantity(),
		Unit:        item.Unit(),
		MinQuantity: item.MinQuantity(),
		Cost:        item.Cost(),
		Supplier:    item.Supplier(),
		Location:    item.Location(),
		Version:     item.Version(),
		CreatedAt:   item.CreatedAt().UnixMilli(),
		UpdatedAt:   item.UpdatedAt().UnixMilli(),
	}
}

func (m *InventoryMapperImpl) ToDomain(model *models.InventoryItemModel) (*inventory.Item, error) {
	return inventory.ReconstructItem(
		model.ID,
		model.Name,
		model.Category,
		model.Quantity,
		model.Unit,
		model.MinQuantity,
		model.Cost,
		model.Supplier,
		model.Location,
		model.Version,
		inventoryConvertMillisToTime(model.CreatedAt),
		inventoryConvertMillisToTime(model.UpdatedAt),
	)
}

func inventoryConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
