package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type CreateTicketCommand struct {
	Actor              authorization.Actor
	Category           string
	Priority           string
	Title              string
	Description        string
	AccessInstructions string
	Images             []string
}

type CreateTicketResult struct {
	TicketID   uint      `json:"ticket_id"`
	Status     string    `json:"status"`
	PropertyID uint      `json:"property_id"`
	UnitID     uint      `json:"unit_id"`
	CreatedAt  time.Time `json:"created_at"`
}

type CreateTicketUseCase struct {
	ticketRepo  ticket.Repository
	tenancyRepo tenancy.Repository
	gate        ticket.AccessGate
	logger      logger.Interface
}

func NewCreateTicketUseCase(
	ticketRepo ticket.Repository,
	tenancyRepo tenancy.Repository,
	logger logger.Interface,
) *CreateTicketUseCase {
	return &CreateTicketUseCase{
		ticketRepo:  ticketRepo,
		tenancyRepo: tenancyRepo,
		gate:        ticket.NewAccessGate(),
		logger:      logger,
	}
}

// Execute creates a ticket for the acting tenant. The unit and property are
// resolved from the tenant's active residency, never taken from the request.
func (uc *CreateTicketUseCase) Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error) {
	uc.logger.Infow("executing create ticket use case", "user_id", cmd.Actor.UserID, "title", cmd.Title)

	if !uc.gate.CanCreate(cmd.Actor) {
		return nil, errors.NewForbiddenError("only tenants can create maintenance tickets")
	}

	if err := uc.validateCommand(cmd); err != nil {
		uc.logger.Errorw("invalid create ticket command", "error", err)
		return nil, err
	}

	tenant, err := uc.tenancyRepo.FindActiveTenantByUserID(ctx, cmd.Actor.UserID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewForbiddenError("no active residency for this user")
		}
		uc.logger.Errorw("failed to resolve tenancy", "error", err, "user_id", cmd.Actor.UserID)
		return nil, err
	}

	unit, err := uc.tenancyRepo.FindUnitByID(ctx, tenant.UnitID())
	if err != nil {
		uc.logger.Errorw("failed to resolve unit", "error", err, "unit_id", tenant.UnitID())
		return nil, errors.NewInternalError("failed to resolve the tenant's unit")
	}

	newTicket, err := ticket.NewTicket(
		vo.Category(cmd.Category),
		vo.Priority(cmd.Priority),
		sanitize.Text(cmd.Title),
		sanitize.Text(cmd.Description),
		sanitize.Text(cmd.AccessInstructions),
		sanitize.TextSlice(cmd.Images),
		tenant.ID(),
		unit.ID(),
		unit.PropertyID(),
	)
	if err != nil {
		uc.logger.Errorw("failed to create ticket entity", "error", err)
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Save(ctx, newTicket); err != nil {
		uc.logger.Errorw("failed to save ticket", "error", err)
		return nil, err
	}

	uc.logger.Infow("ticket created successfully", "ticket_id", newTicket.ID(), "tenant_id", tenant.ID())

	return &CreateTicketResult{
		TicketID:   newTicket.ID(),
		Status:     newTicket.Status().String(),
		PropertyID: newTicket.PropertyID(),
		UnitID:     newTicket.UnitID(),
		CreatedAt:  newTicket.CreatedAt(),
	}, nil
}

func (uc *CreateTicketUseCase) validateCommand(cmd CreateTicketCommand) error {
	if len(cmd.Title) == 0 {
		return errors.NewValidationError("title is required")
	}
	if len(cmd.Title) > 200 {
		return errors.NewValidationError("title exceeds maximum length of 200 characters")
	}
	if len(cmd.Description) == 0 {
		return errors.NewValidationError("description is required")
	}
	if len(cmd.Description) > 5000 {
		return errors.NewValidationError("description exceeds maximum length of 5000 characters")
	}

	if !vo.Category(cmd.Category).IsValid() {
		return errors.NewValidationError("invalid category")
	}
	if !vo.Priority(cmd.Priority).IsValid() {
		return errors.NewValidationError("invalid priority")
	}

	return nil
}
