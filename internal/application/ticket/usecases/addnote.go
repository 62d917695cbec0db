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
	"propflow/internal/shared/sanitize"
)

type AddNoteCommand struct {
	Actor    authorization.Actor
	TicketID uint
	Text     string
}

type AddNoteResult struct {
	NoteID    uint      `json:"note_id"`
	TicketID  uint      `json:"ticket_id"`
	CreatedAt time.Time `json:"created_at"`
}

type AddNoteUseCase struct {
	ticketRepo ticket.Repository
	scopes     scopeResolver
	gate       ticket.AccessGate
	logger     logger.Interface
}

func NewAddNoteUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	logger logger.Interface,
) *AddNoteUseCase {
	return &AddNoteUseCase{
		ticketRepo: ticketRepo,
		scopes:     newScopeResolver(staffRepo, tenancyRepo),
		gate:       ticket.NewAccessGate(),
		logger:     logger,
	}
}

func (uc *AddNoteUseCase) Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}

	text := sanitize.Text(cmd.Text)
	if text == "" {
		return nil, errors.NewValidationError("note text cannot be empty")
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanAddNote(cmd.Actor, scope, t) {
		return nil, errors.NewForbiddenError("you cannot comment on this ticket")
	}

	note, err := ticket.NewNote(t.ID(), cmd.Actor.UserID, cmd.Actor.Role, text)
	if err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.SaveNote(ctx, note); err != nil {
		uc.logger.Errorw("failed to save note", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &AddNoteResult{
		NoteID:    note.ID(),
		TicketID:  t.ID(),
		CreatedAt: note.CreatedAt(),
	}, nil
}
