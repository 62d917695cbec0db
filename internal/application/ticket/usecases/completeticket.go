package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/inventory"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type CompleteTicketCommand struct {
	Actor            authorization.Actor
	TicketID         uint
	Materials        []MaterialInput
	TimeSpentMinutes *int
	Note             string
}

type CompleteTicketResult struct {
	TicketID      uint      `json:"ticket_id"`
	Status        string    `json:"status"`
	CompletedDate time.Time `json:"completed_date"`
}

type CompleteTicketUseCase struct {
	ticketRepo    ticket.Repository
	inventoryRepo inventory.Repository
	scopes        scopeResolver
	gate          ticket.AccessGate
	tx            Transactor
	logger        logger.Interface
}

func NewCompleteTicketUseCase(
	ticketRepo ticket.Repository,
	inventoryRepo inventory.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	tx Transactor,
	logger logger.Interface,
) *CompleteTicketUseCase {
	return &CompleteTicketUseCase{
		ticketRepo:    ticketRepo,
		inventoryRepo: inventoryRepo,
		scopes:        newScopeResolver(staffRepo, tenancyRepo),
		gate:          ticket.NewAccessGate(),
		tx:            tx,
		logger:        logger,
	}
}

// Execute finishes the ticket, recording any final materials and time spent.
// Material quantities submitted here decrement the inventory the same way the
// record-materials path does. A caller-supplied note replaces the default
// completion note text.
func (uc *CompleteTicketUseCase) Execute(ctx context.Context, cmd CompleteTicketCommand) (*CompleteTicketResult, error) {
	uc.logger.Infow("executing complete ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	var materials []ticket.MaterialUsage
	if len(cmd.Materials) > 0 {
		normalized, err := normalizeMaterials(cmd.Materials)
		if err != nil {
			return nil, err
		}
		materials = normalized
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanComplete(cmd.Actor, scope, t) {
		return nil, errors.NewForbiddenError("only admins or the assigned staff member can complete this ticket")
	}

	if err := t.Complete(materials, cmd.TimeSpentMinutes); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	noteText := sanitize.Text(cmd.Note)
	if noteText == "" {
		noteText = "Ticket completed"
	}
	note, err := ticket.NewNote(t.ID(), cmd.Actor.UserID, cmd.Actor.Role, noteText)
	if err != nil {
		return nil, errors.NewInternalError(err.Error())
	}
	if err := t.AppendNote(note); err != nil {
		return nil, errors.NewInternalError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if len(materials) > 0 {
			if err := consumeInventory(txCtx, uc.inventoryRepo, uc.logger, materials); err != nil {
				return err
			}
		}
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.ticketRepo.SaveNote(txCtx, note)
	})
	if err != nil {
		uc.logger.Errorw("failed to complete ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket completed", "ticket_id", t.ID())

	return &CompleteTicketResult{
		TicketID:      t.ID(),
		Status:        t.Status().String(),
		CompletedDate: *t.CompletedDate(),
	}, nil
}
