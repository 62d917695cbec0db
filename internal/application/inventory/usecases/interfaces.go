package usecases

import (
	"context"

	"propflow/internal/application/inventory/dto"
)

type CreateItemExecutor interface {
	Execute(ctx context.Context, cmd CreateItemCommand) (*CreateItemResult, error)
}

type GetItemExecutor interface {
	Execute(ctx context.Context, query GetItemQuery) (*dto.ItemDTO, error)
}

type ListItemsExecutor interface {
	Execute(ctx context.Context, query ListItemsQuery) (*ListItemsResult, error)
}

type UpdateItemExecutor interface {
	Execute(ctx context.Context, cmd UpdateItemCommand) (*UpdateItemResult, error)
}

type DeleteItemExecutor interface {
	Execute(ctx context.Context, cmd DeleteItemCommand) (*DeleteItemResult, error)
}
