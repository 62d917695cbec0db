package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type CancelTicketCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Reason   string
}

type CancelTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type CancelTicketUseCase struct {
	ticketRepo ticket.Repository
	gate       ticket.AccessGate
	tx         Transactor
	logger     logger.Interface
}

func NewCancelTicketUseCase(
	ticketRepo ticket.Repository,
	tx Transactor,
	logger logger.Interface,
) *CancelTicketUseCase {
	return &CancelTicketUseCase{
		ticketRepo: ticketRepo,
		gate:       ticket.NewAccessGate(),
		tx:         tx,
		logger:     logger,
	}
}

// Execute cancels the ticket. Admin only; inventory already consumed on the
// ticket is not restocked.
func (uc *CancelTicketUseCase) Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error) {
	uc.logger.Infow("executing cancel ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	reason := sanitize.Text(cmd.Reason)
	if reason == "" {
		return nil, errors.NewValidationError("cancel reason is required")
	}

	if !uc.gate.CanCancel(cmd.Actor) {
		return nil, errors.NewForbiddenError("only admins can cancel tickets")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := t.Cancel(reason); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	note, err := ticket.NewNote(t.ID(), cmd.Actor.UserID, cmd.Actor.Role, "Cancelled: "+reason)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := t.AppendNote(note); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.ticketRepo.SaveNote(txCtx, note)
	})
	if err != nil {
		uc.logger.Errorw("failed to cancel ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket cancelled", "ticket_id", t.ID(), "reason", reason)

	return &CancelTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}
