package usecases

import (
	"context"

	"propflow/internal/application/ticket/dto"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/constants"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type ListTicketsQuery struct {
	Actor      authorization.Actor
	Status     string
	Priority   string
	Category   string
	PropertyID uint
	Page       int
	Limit      int
}

type ListTicketsResult struct {
	Tickets []dto.TicketListItemDTO `json:"tickets"`
	Total   int64                   `json:"total"`
	Page    int                     `json:"page"`
	Limit   int                     `json:"limit"`
}

type ListTicketsUseCase struct {
	ticketRepo ticket.Repository
	scopes     scopeResolver
	logger     logger.Interface
}

func NewListTicketsUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	logger logger.Interface,
) *ListTicketsUseCase {
	return &ListTicketsUseCase{
		ticketRepo: ticketRepo,
		scopes:     newScopeResolver(staffRepo, tenancyRepo),
		logger:     logger,
	}
}

// Execute lists tickets visible to the actor. Admins see everything;
// maintenance staff see tickets on covered properties that are unassigned or
// theirs; tenants see their own. Results come back urgency first, newest
// first.
func (uc *ListTicketsUseCase) Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error) {
	filter, err := uc.buildFilter(ctx, query)
	if err != nil {
		return nil, err
	}

	tickets, total, err := uc.ticketRepo.List(ctx, *filter)
	if err != nil {
		uc.logger.Errorw("failed to list tickets", "error", err)
		return nil, err
	}

	return &ListTicketsResult{
		Tickets: dto.ToTicketListItemDTOs(tickets),
		Total:   total,
		Page:    filter.Page,
		Limit:   filter.Limit,
	}, nil
}

func (uc *ListTicketsUseCase) buildFilter(ctx context.Context, query ListTicketsQuery) (*ticket.Filter, error) {
	filter := &ticket.Filter{
		Page:  query.Page,
		Limit: query.Limit,
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

	if query.Status != "" {
		status, err := vo.NewTicketStatus(query.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Status = &status
	}
	if query.Priority != "" {
		priority, err := vo.NewPriority(query.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Priority = &priority
	}
	if query.Category != "" {
		category, err := vo.NewCategory(query.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		filter.Category = &category
	}
	if query.PropertyID != 0 {
		propertyID := query.PropertyID
		filter.PropertyID = &propertyID
	}

	scope, err := uc.scopes.resolve(ctx, query.Actor)
	if err != nil {
		return nil, err
	}

	switch {
	case query.Actor.IsAdmin():
		// unrestricted
	case query.Actor.IsMaintenance():
		if scope.Staff == nil {
			return nil, errors.NewForbiddenError("no staff record for this user")
		}
		filter.StaffScope = &ticket.StaffScope{
			StaffID:     scope.Staff.ID(),
			PropertyIDs: scope.Staff.PropertyIDs(),
		}
	case query.Actor.IsTenant():
		if scope.TenantID == 0 {
			return nil, errors.NewForbiddenError("no active residency for this user")
		}
		tenantID := scope.TenantID
		filter.TenantID = &tenantID
	default:
		return nil, errors.NewForbiddenError("unknown role")
	}

	return filter, nil
}
