package usecases

import (
	"context"

	"propflow/internal/application/ticket/dto"
)

type CreateTicketExecutor interface {
	Execute(ctx context.Context, cmd CreateTicketCommand) (*CreateTicketResult, error)
}

type GetTicketExecutor interface {
	Execute(ctx context.Context, query GetTicketQuery) (*dto.TicketDetailDTO, error)
}

type ListTicketsExecutor interface {
	Execute(ctx context.Context, query ListTicketsQuery) (*ListTicketsResult, error)
}

type UpdateTicketExecutor interface {
	Execute(ctx context.Context, cmd UpdateTicketCommand) (*UpdateTicketResult, error)
}

type AssignTicketExecutor interface {
	Execute(ctx context.Context, cmd AssignTicketCommand) (*AssignTicketResult, error)
}

type AddNoteExecutor interface {
	Execute(ctx context.Context, cmd AddNoteCommand) (*AddNoteResult, error)
}

type AddImageExecutor interface {
	Execute(ctx context.Context, cmd AddImageCommand) (*AddImageResult, error)
}

type RecordMaterialsExecutor interface {
	Execute(ctx context.Context, cmd RecordMaterialsCommand) (*RecordMaterialsResult, error)
}

type CompleteTicketExecutor interface {
	Execute(ctx context.Context, cmd CompleteTicketCommand) (*CompleteTicketResult, error)
}

type CancelTicketExecutor interface {
	Execute(ctx context.Context, cmd CancelTicketCommand) (*CancelTicketResult, error)
}

type DeleteTicketExecutor interface {
	Execute(ctx context.Context, cmd DeleteTicketCommand) (*DeleteTicketResult, error)
}
