package usecases

import (
	"context"
	"fmt"
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/sanitize"
)

type UpdateTicketCommand struct {
	Actor              authorization.Actor
	TicketID           uint
	Category           *string
	Priority           *string
	Title              *string
	Description        *string
	AccessInstructions *string
	Status             *string
	AssignedStaffID    *uint
	ScheduledDate      *time.Time
	TimeSpentMinutes   *int
}

type UpdateTicketResult struct {
	TicketID  uint      `json:"ticket_id"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updated_at"`
}

type UpdateTicketUseCase struct {
	ticketRepo ticket.Repository
	staffRepo  staff.Repository
	scopes     scopeResolver
	resolver   ticket.AssignmentResolver
	gate       ticket.AccessGate
	tx         Transactor
	logger     logger.Interface
}

func NewUpdateTicketUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	tx Transactor,
	logger logger.Interface,
) *UpdateTicketUseCase {
	return &UpdateTicketUseCase{
		ticketRepo: ticketRepo,
		staffRepo:  staffRepo,
		scopes:     newScopeResolver(staffRepo, tenancyRepo),
		resolver:   ticket.NewAssignmentResolver(),
		gate:       ticket.NewAccessGate(),
		tx:         tx,
		logger:     logger,
	}
}

// Execute applies a general update: detail fields, a status transition, a
// schedule change, time spent, or a re-assignment. Re-assignment goes through
// the same resolver as the dedicated assign path.
func (uc *UpdateTicketUseCase) Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error) {
	uc.logger.Infow("executing update ticket use case", "ticket_id", cmd.TicketID, "user_id", cmd.Actor.UserID)

	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanUpdate(cmd.Actor, scope, t) {
		return nil, errors.NewForbiddenError("you cannot update this ticket")
	}

	notes, err := uc.applyChanges(ctx, t, cmd)
	if err != nil {
		return nil, err
	}

	err = uc.tx.RunInTransaction(ctx, func(txCtx context.Context) error {
		if err := uc.ticketRepo.Update(txCtx, t); err != nil {
			return err
		}
		for _, note := range notes {
			if err := uc.ticketRepo.SaveNote(txCtx, note); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		uc.logger.Errorw("failed to update ticket", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	uc.logger.Infow("ticket updated successfully", "ticket_id", t.ID(), "status", t.Status().String())

	return &UpdateTicketResult{
		TicketID:  t.ID(),
		Status:    t.Status().String(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func (uc *UpdateTicketUseCase) applyChanges(ctx context.Context, t *ticket.Ticket, cmd UpdateTicketCommand) ([]*ticket.Note, error) {
	var notes []*ticket.Note

	var category *vo.Category
	if cmd.Category != nil {
		c, err := vo.NewCategory(*cmd.Category)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		category = &c
	}
	var priority *vo.Priority
	if cmd.Priority != nil {
		p, err := vo.NewPriority(*cmd.Priority)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		priority = &p
	}

	title := cmd.Title
	if title != nil {
		clean := sanitize.Text(*title)
		title = &clean
	}
	description := cmd.Description
	if description != nil {
		clean := sanitize.Text(*description)
		description = &clean
	}
	accessInstructions := cmd.AccessInstructions
	if accessInstructions != nil {
		clean := sanitize.Text(*accessInstructions)
		accessInstructions = &clean
	}

	if category != nil || priority != nil || title != nil || description != nil || accessInstructions != nil {
		if err := t.UpdateDetails(category, priority, title, description, accessInstructions); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	if cmd.AssignedStaffID != nil {
		assignee, err := uc.staffRepo.FindByID(ctx, *cmd.AssignedStaffID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return nil, errors.NewNotFoundError("staff member not found")
			}
			return nil, err
		}
		note, err := uc.resolver.Resolve(t, assignee, cmd.ScheduledDate, cmd.Actor)
		if err != nil {
			return nil, errors.NewInvalidAssignmentError(err.Error())
		}
		notes = append(notes, note)
	} else if cmd.ScheduledDate != nil {
		t.SetScheduledDate(cmd.ScheduledDate)
	}

	if cmd.Status != nil {
		newStatus, err := vo.NewTicketStatus(*cmd.Status)
		if err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		previous := t.Status()
		if err := t.ChangeStatus(newStatus); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
		if previous != t.Status() {
			text := fmt.Sprintf("Status changed from %s to %s", previous, t.Status())
			note, err := ticket.NewNote(t.ID(), cmd.Actor.UserID, cmd.Actor.Role, text)
			if err != nil {
				return nil, errors.NewInternalError(err.Error())
			}
			if err := t.AppendNote(note); err != nil {
				return nil, errors.NewInternalError(err.Error())
			}
			notes = append(notes, note)
		}
	}

	if cmd.TimeSpentMinutes != nil {
		if err := t.SetTimeSpent(*cmd.TimeSpentMinutes); err != nil {
			return nil, errors.NewValidationError(err.Error())
		}
	}

	return notes, nil
}
