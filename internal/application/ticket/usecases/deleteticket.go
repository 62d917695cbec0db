package usecases

import (
	"context"

	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type DeleteTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
}

type DeleteTicketResult struct {
	TicketID uint `json:"ticket_id"`
}

type DeleteTicketUseCase struct {
	ticketRepo ticket.Repository
	gate       ticket.AccessGate
	logger     logger.Interface
}

func NewDeleteTicketUseCase(
	ticketRepo ticket.Repository,
	logger logger.Interface,
) *DeleteTicketUseCase {
	return &DeleteTicketUseCase{
		ticketRepo: ticketRepo,
		gate:       ticket.NewAccessGate(),
		logger:     logger,
	}
}

// Execute removes the ticket and its note log. Admin only.
func (uc *DeleteTicketUseCase) Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error) {
	uc.logger.Infow("executing delete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	if !uc.gate.CanDelete(cmd.Actor) {
		return nil, errors.NewForbiddenError("only admins can delete tickets")
	}

	if _, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID); err != nil {
		return nil, err
	}

	if err := uc.ticketRepo.Delete(ctx, cmd.TicketID); err != nil {
		uc.logger.Errorw("failed to delete ticket", "error", err, "ticket_id", cmd.TicketID)
		return nil, err
	}

	uc.logger.Infow("ticket deleted", "ticket_id", cmd.TicketID)

	return &DeleteTicketResult{TicketID: cmd.TicketID}, nil
}
