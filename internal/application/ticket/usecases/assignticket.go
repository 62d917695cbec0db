package usecases

import (
	"context"
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type AssignTicketCommand struct {
	Actor         authorization.Actor
	TicketID      uint
	StaffID       uint
	ScheduledDate *time.Time
}

type AssignTicketResult struct {
	TicketID      uint       `json:"ticket_id"`
	StaffID       uint       `json:"staff_id"`
	Status        string     `json:"status"`
	ScheduledDate *time.Time `json:"scheduled_date"`
	UpdatedAt     time.Time  `json:"updated_at"`
}

type AssignTicketUseCase struct {
	ticketRepo ticket.Repository
	staffRepo  staff.Repository
	scopes     scopeResolver
	resolver   ticket.AssignmentResolver
	tx         Transactor
	logger     logger.Interface
}

func NewAssignTicketUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	tx Transactor,
	logger logger.Interface,
) *AssignTicketUseCase {
	return &AssignTicketUseCase{
		ticketRepo: ticketRepo,
		staffRepo:  staffRepo,
		scopes:     newScopeResolver(staffRepo, tenancyRepo),
		resolver:   ticket.NewAssignmentResolver(),
		tx:         tx,
		logger:     logger,
	}
}

// Execute assigns the ticket to a staff member. Admins assign anyone;
// maintenance staff may only claim a ticket for themselves, and only when it
// is unassigned on a property they cover. All paths go through the
// assignment resolver so the eligibility rules cannot be bypassed.
func (uc *AssignTicketUseCase) Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error) {
	uc.logger.Infow("executing assign ticket use case",
		"ticket_id", cmd.TicketID,
		"staff_id", cmd.StaffID,
		"assigned_by", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if cmd.StaffID == 0 {
		return nil, errors.NewValidationError("staff ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	if err := uc.authorize(ctx, cmd, t); err != nil {
		return nil, err
	}

	assignee, err := uc.staffRepo.FindByID(ctx, cmd.StaffID)
	if err != nil {
		if errors.IsNotFoundError(err) {
			return nil, errors.NewNotFoundError("staff member not found")
		}
		return nil, err
	}

	note, err := uc.resolver.Resolve(t, assignee, cmd.ScheduledDate, cmd.Actor)
	if err != nil {
		uc.logger.Warnw("assignment rejected", "error", err, "ticket_id", t.ID(), "staff_id", cmd.StaffID)
		return nil, errors.NewInvalidAssignmentError(err.Error())
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		return uc.ticketRepo.SaveNote(txCtx, note)
	})
	if err != nil {
		uc.logger.Errorw("failed to persist assignment", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket assigned successfully", "ticket_id", t.ID(), "staff_id", cmd.StaffID)

	return &AssignTicketResult{
		TicketID:      t.ID(),
		StaffID:       cmd.StaffID,
		Status:        t.Status().String(),
		ScheduledDate: t.ScheduledDate(),
		UpdatedAt:     t.UpdatedAt(),
	}, nil
}

func (uc *AssignTicketUseCase) authorize(ctx context.Context, cmd AssignTicketCommand, t *ticket.Ticket) error {
	if cmd.Actor.IsAdmin() {
		return nil
	}

	if !cmd.Actor.IsMaintenance() {
		return errors.NewForbiddenError("only admins and maintenance staff can assign tickets")
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return err
	}
	if scope.Staff == nil {
		return errors.NewForbiddenError("no staff record for this user")
	}
	if scope.Staff.ID() != cmd.StaffID {
		return errors.NewForbiddenError("maintenance staff can only claim tickets for themselves")
	}
	if assigned := t.AssignedStaffID(); assigned != nil && *assigned != scope.Staff.ID() {
		return errors.NewForbiddenError("ticket is already assigned to another staff member")
	}
	return nil
}
