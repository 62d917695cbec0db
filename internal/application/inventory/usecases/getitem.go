package usecases

import (
	"context"

	"propflow/internal/application/inventory/dto"
	"propflow/internal/domain/inventory"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/constants"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

// canReadInventory allows admins and maintenance staff to browse the ledger.
func canReadInventory(actor authorization.Actor) bool {
	return actor.IsAdmin() || actor.IsMaintenance()
}

type GetItemQuery struct {
	Actor  authorization.Actor
	ItemID uint
}

type GetItemUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewGetItemUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *GetItemUseCase {
	return &GetItemUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

func (uc *GetItemUseCase) Execute(ctx context.Context, query GetItemQuery) (*dto.ItemDTO, error) {
	if !canReadInventory(query.Actor) {
		return nil, errors.NewForbiddenError("you do not have access to the inventory ledger")
	}
	if query.ItemID == 0 {
		return nil, errors.NewValidationError("item ID is required")
	}

	item, err := uc.inventoryRepo.FindByID(ctx, query.ItemID)
	if err != nil {
		return nil, err
	}

	return dto.ToItemDTO(item), nil
}

type ListItemsQuery struct {
	Actor    authorization.Actor
	Category string
	// LowStock limits the listing to items at or below their reorder
	// threshold.
	LowStock bool
	Page     int
	Limit    int
}

type ListItemsResult struct {
	Items []dto.ItemDTO `json:"items"`
	Total int64         `json:"total"`
	Page  int           `json:"page"`
	Limit int           `json:"limit"`
}

type ListItemsUseCase struct {
	inventoryRepo inventory.Repository
	logger        logger.Interface
}

func NewListItemsUseCase(inventoryRepo inventory.Repository, logger logger.Interface) *ListItemsUseCase {
	return &ListItemsUseCase{inventoryRepo: inventoryRepo, logger: logger}
}

func (uc *ListItemsUseCase) Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error) {
	if !canReadInventory(query.Actor) {
		return nil, errors.NewForbiddenError("you do not have access to the inventory ledger")
	}

	filter := inventory.Filter{
		LowStock: query.LowStock,
		Page:     query.Page,
		Limit:    query.Limit,
	}
	if query.Category != "" {
		category := query.Category
		filter.Category = &category
	}
	if filter.Page < 1 {
		filter.Page = constants.DefaultPage
	}
	if filter.Limit < 1 {
		filter.Limit = constants.DefaultPageSize
	}
	if filter.Limit > constants.MaxPageSize {
		filter.Limit = constants.MaxPageSize
	}

	items, total, err := uc.inventoryRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list inventory", "error", err)
		return nil, err
	}

	return &ListItemsResult{
		Items: dto.ToItemDTOs(items),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
