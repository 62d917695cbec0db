package usecases

import (
	"context"
	"time"

	"propflow/internal/application/staff/dto"
	"propflow/internal/domain/staff"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type UpdateStaffCommand struct {
	Actor        authorization.Actor
	StaffID      uint
	PropertyIDs  []uint
	Specialties  []string
	Availability map[string]bool
	WorkStart    *string
	WorkEnd      *string
	Active       *bool
}

type UpdateStaffResult struct {
	StaffID   uint      `json:"staff_id"`
	Active    bool      `json:"active"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewUpdateStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *UpdateStaffUseCase {
	return &UpdateStaffUseCase{staffRepo: staffRepo, logger: logger}
}

// Execute updates coverage, specialties, availability, working hours or the
// active flag. Nil fields are left untouched; deactivation does not unassign
// open tickets.
func (uc *UpdateStaffUseCase) Execute(ctx context.Context, cmd UpdateStaffCommand) (*UpdateStaffResult, error) {
	uc.logger.Infow("executing update staff use case", "staff_id", cmd.StaffID)

	if !cmd.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can manage staff")
	}
	if cmd.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	s, err := uc.staffRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		return nil, err
	}

	if cmd.PropertyIDs != nil {
		s.SetPropertyCoverage(cmd.PropertyIDs)
	}
	if cmd.Specialties != nil {
		s.SetSpecialties(cmd.Specialties)
	}
	if cmd.Availability != nil {
		availability, ok := dto.ParseAvailability(cmd.Availability)
		if !ok {
			return nil, errors.NewValidationError("availability contains an unknown weekday")
		}
		s.SetAvailability(availability)
	}
	if cmd.WorkStart != nil || cmd.WorkEnd != nil {
		start := s.WorkStart()
		end := s.WorkEnd()
		if cmd.WorkStart != nil {
			start = *cmd.WorkStart
		}
		if cmd.WorkEnd != nil {
			end = *cmd.WorkEnd
		}
		if err := s.SetWorkingHours(start, end); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}
	if cmd.Active != nil {
		if *cmd.Active {
			s.Activate()
		} else {
			s.Deactivate()
		}
	}

	if err := uc.staffRepo.Update(ctx, s); err != nil {
		uc.logger.Errorw("failed to update staff", "error", err, "staff_id", cmd.StaffID)
		return nil, err
	}

	return &UpdateStaffResult{
		StaffID:   s.ID(),
		Active:    s.IsActive(),
		UpdatedAt: s.UpdatedAt(),
	}, nil
}
