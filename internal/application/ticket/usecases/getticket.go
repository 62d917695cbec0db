package usecases

import (
	"context"

	"propflow/internal/application/ticket/dto"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type GetTicketQuery struct {
	Actor    authorization.Actor
	TicketID uint
}

type GetTicketUseCase struct {
	ticketRepo  ticket.Repository
	staffRepo   staff.Repository
	tenancyRepo tenancy.Repository
	scopes      scopeResolver
	gate        ticket.AccessGate
	logger      logger.Interface
}

func NewGetTicketUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	logger logger.Interface,
) *GetTicketUseCase {
	return &GetTicketUseCase{
		ticketRepo:  ticketRepo,
		staffRepo:   staffRepo,
		tenancyRepo: tenancyRepo,
		scopes:      newScopeResolver(staffRepo, tenancyRepo),
		gate:        ticket.NewAccessGate(),
		logger:      logger,
	}
}

// Execute loads the ticket and composes the detail view: the aggregate, its
// note log and the resolved tenant, unit, property and assigned staff.
func (uc *GetTicketUseCase) Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error) {
	if query.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, query.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, query.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanView(query.Actor, scope, t) {
		return nil, errors.NewForbiddenError("you do not have access to this ticket")
	}

	notes, err := uc.ticketRepo.FindNotesByTicketID(ctx, t.ID())
	if err != nil {
		uc.logger.Errorw("failed to load ticket notes", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	// References are resolved best-effort; a missing row degrades the view
	// instead of failing the request.
	tenant, err := uc.tenancyRepo.FindTenantByID(ctx, t.TenantID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	unit, err := uc.tenancyRepo.FindUnitByID(ctx, t.UnitID())
	if err != nil && !errors.IsNotFoundError(err) {
		return nil, err
	}
	var property *tenancy.Property
	if unit != nil {
		property, err = uc.tenancyRepo.FindPropertyByID(ctx, unit.PropertyID())
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
	}
	var assignee *staff.Staff
	if t.AssignedStaffID() != nil {
		assignee, err = uc.staffRepo.FindByID(ctx, *t.AssignedStaffID())
		if err != nil && !errors.IsNotFoundError(err) {
			return nil, err
		}
	}

	return dto.ToTicketDetailDTO(t, notes, tenant, unit, property, assignee), nil
}
