package usecases

import (
	"context"

	"propflow/internal/application/staff/dto"
	"propflow/internal/domain/staff"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/constants"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type GetStaffQuery struct {
	Actor   authorization.Actor
	StaffID uint
}

type GetStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewGetStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *GetStaffUseCase {
	return &GetStaffUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *GetStaffUseCase) Execute(ctx context.Context, query GetStaffQuery) (*dto.StaffDTO, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can view staff records")
	}
	if query.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	s, err := uc.staffRepo.FindByID(ctx, query.StaffID)
	if err != nil {
		return nil, err
	}

	return dto.ToStaffDTO(s), nil
}

type ListStaffQuery struct {
	Actor      authorization.Actor
	PropertyID uint
	Active     *bool
	Page       int
	Limit      int
}

type ListStaffResult struct {
	Staff []dto.StaffDTO `json:"staff"`
	Total int64          `json:"total"`
	Page  int            `json:"page"`
	Limit int            `json:"limit"`
}

type ListStaffUseCase struct {
	staffRepo staff.Repository
	logger    logger.Interface
}

func NewListStaffUseCase(staffRepo staff.Repository, logger logger.Interface) *ListStaffUseCase {
	return &ListStaffUseCase{staffRepo: staffRepo, logger: logger}
}

func (uc *ListStaffUseCase) Execute(ctx context.Context, query ListStaffQuery) (*ListStaffResult, error) {
	if !query.Actor.IsAdmin() {
		return nil, errors.NewForbiddenError("only admins can list staff records")
	}

	filter := staff.Filter{
		Active: query.Active,
		Page:   query.Page,
		Limit:  query.Limit,
	}
	if query.PropertyID != 0 {
		propertyID := query.PropertyID
		filter.PropertyID = &propertyID
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

	members, total, err := uc.staffRepo.List(ctx, filter)
	if err != nil {
		uc.logger.Errorw("failed to list staff", "error", err)
		return nil, err
	}

	return &ListStaffResult{
		Staff: dto.ToStaffDTOs(members),
		Total: total,
		Page:  filter.Page,
		Limit: filter.Limit,
	}, nil
}
