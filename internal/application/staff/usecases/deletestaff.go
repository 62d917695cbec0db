package usecases

import (
	"context"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type DeleteStaffCommand struct {
	Actor   authorization.Actor
	StaffID uint
}

type DeleteStaffResult struct {
	StaffID uint `json:"staff_id"`
}

type DeleteStaffUseCase struct {
	staffRepo  staff.Repository
	ticketRepo ticket.Repository
	logger     logger.Interface
}

func NewDeleteStaffUseCase(
	staffRepo staff.Repository,
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteStaffUseCase {
	return &DeleteStaffUseCase{
		staffRepo:  staffRepo,
		ticketRepo: ticketRepo,
		logger:     logger,
	}
}

// Execute removes a staff record. Deletion is blocked while any ticket,
// completed and cancelled ones included, still references the member as
// assignee; deactivate instead to retire a member with history.
func (uc *DeleteStaffUseCase) Execute(ctx context.Context, cmd DeleteStaffCommand) (*DeleteStaffResult, error) {
	uc.logger.Infow("executing delete staff use case", "staff_id", cmd.StaffID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage staff")
	}
	if cmd.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	if _, err := uc.staffRepo.FindByID(ctx, cmd.StaffID); err != nil {
		return nil, err
	}

	referencing, err := uc.ticketRepo.CountAssignedToStaff(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}
	if referencing > 0 {
		return nil, errors.NewConflictError("staff member is still referenced by tickets")
	}

	if err := uc.staffRepo.Delete(ctx, cmd.StaffID); err != nil {
		uc.logger.Errorw("failed to delete staff", "error", err, "staff_id", cmd.StaffID)
		return nil, err
	}

	uc.logger.Infow("staff deleted", "staff_id", cmd.StaffID)

	return &DeleteStaffResult{StaffID: cmd.StaffID}, nil
}
