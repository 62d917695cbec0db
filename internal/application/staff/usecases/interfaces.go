package usecases

import (
	"context"

	"propflow/internal/application/staff/dto"
)

type CreateStaffExecutor interface {
	Execute(ctx context.Context, cmd CreateStaffCommand) (*CreateStaffResult, error)
}

type GetStaffExecutor interface {
	Execute(ctx context.Context, query GetStaffQuery) (*dto.StaffDTO, error)
}

type ListStaffExecutor interface {
	Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error)
}

type UpdateStaffExecutor interface {
	Execute(ctx context.Context, cmd UpdateStaffCommand) (*UpdateStaffResult, error)
}

type DeleteStaffExecutor interface {
	Execute(ctx context.Context, cmd DeleteStaffCommand) (*DeleteStaffResult, error)
}
