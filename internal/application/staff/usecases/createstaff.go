// Package usecases holds the staff management operations. All of them are
// admin-only; the route layer enforces the role as well, but every command
// carries the actor so the rule holds without the HTTP stack.
package usecases

import (
	"context"
	"time"

	"propflow/internal/application/staff/dto"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/user"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type CreateStaffCommand struct {
	Actor        authorization.Actor
	UserID       uint
	PropertyIDs  []uint
	Specialties  []string
	Availability map[string]bool
	WorkStart    string
	WorkEnd      string
}

type CreateStaffResult struct {
	StaffID   uint      `json:"staff_id"`
	UserID    uint      `json:"user_id"`
	CreatedAt time.Time `json:"created_at"`
}

type CreateStaffUseCase struct {
	staffRepo staff.Repository
	userRepo  user.Repository
	logger    logger.Interface
}

func NewCreateStaffUseCase(
	staffRepo staff.Repository,
	userRepo user.Repository,
	logger logger.Interface,
) *CreateStaffUseCase {
	return &CreateStaffUseCase{
		staffRepo: staffRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

// Execute registers a maintenance staff record for an existing user with the
// maintenance role.
func (uc *CreateStaffUseCase) Execute(ctx context.Context, cmd CreateStaffCommand) (*CreateStaffResult, error) {
	uc.logger.Infow("executing create staff use case", "user_id", cmd.UserID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage staff")
	}
	if cmd.UserID == 0 {
		return nil, errors.NewValidationError("user ID is required")
	}

	u, err := uc.userRepo.FindByID(ctx, cmd.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("user not found")
		}
		return nil, err
	}
	if !u.Role().IsMaintenance() {
		return nil, errors.NewValidationError("user does not have the maintenance role")
	}

	if _, err := uc.staffRepo.FindByUserID(ctx, cmd.UserID); err == nil {
		return nil, errors.NewConflictError("staff record already exists for this user")
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	availability, ok := dto.ParseAvailability(cmd.Availability)
	if !ok {
		return nil, errors.NewValidationError("availability contains an unknown weekday")
	}

	s, err := staff.NewStaff(cmd.UserID, cmd.PropertyIDs, cmd.Specialties, availability, cmd.WorkStart, cmd.WorkEnd)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.staffRepo.Save(ctx, s); err != nil {
		uc.logger.Errorw("failed to save staff", "error", err, "user_id", cmd.UserID)
		return nil, err
	}

	uc.logger.Infow("staff created", "staff_id", s.ID(), "user_id", cmd.UserID)

	return &CreateStaffResult{
		StaffID:   s.ID(),
		UserID:    s.UserID(),
		CreatedAt: s.CreatedAt(),
	}, nil
}
