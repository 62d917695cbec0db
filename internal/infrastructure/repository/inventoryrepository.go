package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"propflow/internal/domain/inventory"
	"propflow/internal/infrastructure/persistence/mappers"
	"propflow/internal/infrastructure/persistence/models"
	db "propflow/internal/shared/db"
	"propflow/internal/shared/errors"
)

type InventoryRepository struct {
	db     *gorm.DB
	mapper mappers.InventoryMapper
}

func NewInventoryRepository(db *gorm.DB) *InventoryRepository {
	return &InventoryRepository{
		db:     db,
		mapper: mappers.NewInventoryMapper(),
	}
}

func (r *InventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("an item with this name already exists")
		}
		return fmt.Errorf("failed to save inventory item: %w", err)
	}

	if err := item.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *InventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	model := r.mapper.ToModel(item)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.InventoryItemModel{}).
		Where("id = ? AND version = ?", model.ID, item.LoadedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		if errors.IsDuplicateError(result.Error) {
			return errors.NewConflictError("an item with this name already exists")
		}
		return fmt.Errorf("failed to update inventory item: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.InventoryItemModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update inventory item: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("inventory item not found")
		}
		return errors.NewConflictError("inventory item was modified concurrently")
	}

	return nil
}

func (r *InventoryRepository) Delete(ctx context.Context, itemID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.InventoryItemModel{}, itemID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete inventory item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("inventory item not found")
	}
	return nil
}

func (r *InventoryRepository) FindByID(ctx context.Context, itemID uint) (*inventory.Item, error) {
	var model models.InventoryItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inventory item not found")
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InventoryRepository) FindByName(ctx context.Context, name string) (*inventory.Item, error) {
	var model models.InventoryItemModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("name = ?", name).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("inventory item not found")
		}
		return nil, fmt.Errorf("failed to find inventory item: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *InventoryRepository) List(
	ctx context.Context,
	filter inventory.Filter,
) ([]*inventory.Item, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.InventoryItemModel{})

	if filter.Category != nil {
		query = query.Where("category = ?", *filter.Category)
	}
	if filter.LowStock {
		query = query.Where("quantity <= min_quantity")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count inventory items: %w", err)
	}

	query = query.Order("name ASC")

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var itemModels []models.InventoryItemModel
	if err := query.Find(&itemModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list inventory items: %w", err)
	}

	items := make([]*inventory.Item, len(itemModels))
	for i, model := range itemModels {
		item, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		items[i] = item
	}

	return items, total, nil
}
