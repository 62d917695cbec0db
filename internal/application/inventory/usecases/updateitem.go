package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type UpdateItemCommand struct {
	Actor       authorization.Actor
	ItemID      uint
	Category    *string
	Quantity    *int
	Unit        *string
	MinQuantity *int
	Cost        *float64
	Supplier    *string
	Location    *string
	// RestockAmount adds to the current quantity instead of replacing it.
	RestockAmount *int
}

type UpdateItemResult struct {
	ItemID    uint      `json:"item_id"`
	Quantity  int       `json:"quantity"`
	LowStock  bool      `json:"low_stock"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewUpdateItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *UpdateItemUseCase {
	return &UpdateItemUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

func (uc *UpdateItemUseCase) Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error) {
	uc.logger.Infow("executing update item use case", "item_id", cmd.ItemID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage inventory")
	}
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}
	if cmd.Quantity != nil && cmd.RestockAmount != nil {
		return nil, errors.NewValidationError("quantity and restock amount cannot both be set")
	}

	item, err := uc.inventoryRepo.FindByID(ctx, cmd.ItemID)
	if err != nil {
		return nil, err
	}

	if err := item.UpdateDetails(cmd.Category, cmd.Quantity, cmd.Unit, cmd.MinQuantity, cmd.Cost, cmd.Supplier, cmd.Location); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}
	if cmd.RestockAmount != nil {
		if err := item.Restock(*cmd.RestockAmount); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if err := uc.inventoryRepo.Update(ctx, item); err != nil {
		uc.logger.Errorw("failed to update item", "error", err, "item_id", cmd.ItemID)
		return nil, err
	}

	return &UpdateItemResult{
		ItemID:    item.ID(),
		Quantity:  item.Quantity(),
		LowStock:  item.IsBelowReorderThreshold(),
		UpdatedAt: item.UpdatedAt(),
	}, nil
}
