package usecases

import (
	"context"
	"net/url"
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type AddImageCommand struct {
	Actor    authorization.Actor
	TicketID uint
	ImageURL string
}

type AddImageResult struct {
	TicketID  uint      `json:"ticket_id"`
	Images    []string  `json:"images"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AddImageUseCase struct {
	ticketRepo ticket.Repository
	scopes     scopeResolver
	gate       ticket.AccessGate
	logger     logger.Interface
}

func NewAddImageUseCase(
	ticketRepo ticket.Repository,
	staffRepo staff.Repository,
	tenancyRepo tenancy.Repository,
	logger logger.Interface,
) *AddImageUseCase {
	return &AddImageUseCase{
		ticketRepo: ticketRepo,
		scopes:     newScopeResolver(staffRepo, tenancyRepo),
		gate:       ticket.NewAccessGate(),
		logger:     logger,
	}
}

// Execute appends an image URL. Only the reporting tenant can attach images.
func (uc *AddImageUseCase) Execute(ctx context.Context, cmd AddImageCommand) (*AddImageResult, error) {
	if cmd.TicketID == 0 {
		return nil, errors.NewValidationError("ticket ID is required")
	}
	if err := validateImageURL(cmd.ImageURL); err != nil {
		return nil, err
	}

	t, err := uc.ticketRepo.FindByID(ctx, cmd.TicketID)
	if err != nil {
		return nil, err
	}

	scope, err := uc.scopes.resolve(ctx, cmd.Actor)
	if err != nil {
		return nil, err
	}
	if !uc.gate.CanAddImage(cmd.Actor, scope, t) {
		return nil, errors.NewForbiddenError("only the reporting tenant can attach images")
	}

	if err := t.AddImage(cmd.ImageURL); err != nil {
		return nil, errors.NewValidationError(err.Error())
	}

	if err := uc.ticketRepo.Update(ctx, t); err != nil {
		uc.logger.Errorw("failed to save image", "error", err, "ticket_id", t.ID())
		return nil, err
	}

	return &AddImageResult{
		TicketID:  t.ID(),
		Images:    t.Images(),
		UpdatedAt: t.UpdatedAt(),
	}, nil
}

func validateImageURL(raw string) error {
	if raw == "" {
		return errors.NewValidationError("image URL is required")
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return errors.NewValidationError("image URL must be a valid http or https URL")
	}
	return nil
}
