// Package usecases holds the inventory ledger operations. Mutations are
// admin-only; maintenance staff can read the ledger to check stock before a
// visit.
package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type CreateItemCommand struct {
	Actor       authorization.Actor
	Name        string
	Category    string
	Quantity    int
	Unit        string
	MinQuantity int
	Cost        float64
	Supplier    string
	Location    string
}

type CreateItemResult struct {
	ItemID    uint      `json:"item_id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewCreateItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *CreateItemUseCase {
	return &CreateItemUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

func (uc *CreateItemUseCase) Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error) {
	uc.logger.Infow("executing create item use case", "name", cmd.Name)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage inventory")
	}

	name := sanitize.Text(cmd.Name)
	if name == "" {
		return nil, errors.NewValidationError("name is required")
	}

	// Names are the join key from ticket material records; enforce
	// uniqueness up front for a friendlier error than the DB constraint.
	if _, err := uc.inventoryRepo.FindByName(ctx, name); err == nil {
		return nil, errors.NewConflictError("an item with this name already exists")
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	item, err := inventory.NewItem(
		name,
		sanitize.Text(cmd.Category),
		cmd.Quantity,
		sanitize.Text(cmd.Unit),
		cmd.MinQuantity,
		cmd.Cost,
		sanitize.Text(cmd.Supplier),
		sanitize.Text(cmd.Location),
	)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.inventoryRepo.Save(ctx, item); err != nil {
		uc.logger.Errorw("failed to save item", "error", err, "name", name)
		return nil, err
	}

	uc.logger.Infow("inventory item created", "item_id", item.ID(), "name", item.Name())

	return &CreateItemResult{
		ItemID:    item.ID(),
		Name:      item.Name(),
		CreatedAt: item.CreatedAt(),
	}, nil
}
