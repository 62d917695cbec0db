package usecases

import (
	"context"

	"propflow/internal/domain/inventory"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type DeleteItemCommand struct {
	Actor  authorization.Actor
	ItemID uint
}

type DeleteItemResult struct {
	ItemID uint `json:"item_id"`
}

type DeleteItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewDeleteItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *DeleteItemUseCase {
	return &DeleteItemUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

// Execute removes the item from the ledger. Ticket material records keep the
// item name, so history survives the deletion.
func (uc *DeleteItemUseCase) Execute(ctx context.Context, cmd DeleteItemCommand) (*DeleteItemResult, error) {
	uc.logger.Infow("executing delete item use case", "item_id", cmd.ItemID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage inventory")
	}
	if cmd.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	if _, err := uc.inventoryRepo.FindByID(ctx, cmd.ItemID); err != nil {
		return nil, err
	}

	if err := uc.inventoryRepo.Delete(ctx, cmd.ItemID); err != nil {
		uc.logger.Errorw("failed to delete item", "error", err, "item_id", cmd.ItemID)
		return nil, err
	}

	return &DeleteItemResult{ItemID: cmd.ItemID}, nil
}
