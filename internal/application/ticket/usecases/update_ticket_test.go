package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/errors"
)

func newUpdateUseCase(ticketRepo *mockTicketRepository, staffRepo *mockStaffRepository) *UpdateTicketUseCase {
	return NewUpdateTicketUseCase(ticketRepo, staffRepo, &mockTenancyRepository{}, &mockTransactor{}, newTestLogger())
}

func TestUpdateTicket_DetailFields(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	var updated *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			updated = t
			return nil
		},
	}

	uc := newUpdateUseCase(ticketRepo, &mockStaffRepository{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    adminActor,
		TicketID: 1,
		Priority: strPtr("emergency"),
		Title:    strPtr("Burst pipe"),
	})
	require.NoError(t, err)
	require.NotNil(t, updated)

	assert.Equal(t, vo.PriorityEmergency, updated.Priority())
	assert.Equal(t, "Burst pipe", updated.Title())
	assert.Equal(t, "pending", result.Status)
}

func TestUpdateTicket_StatusTransition(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(7))
	var savedNotes []*ticket.Note
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		SaveNoteFunc: func(ctx context.Context, note *ticket.Note) error {
			savedNotes = append(savedNotes, note)
			return nil
		},
	}

	uc := newUpdateUseCase(ticketRepo, &mockStaffRepository{})

	result, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    adminActor,
		TicketID: 1,
		Status:   strPtr("in_progress"),
	})
	require.NoError(t, err)
	assert.Equal(t, "in_progress", result.Status)
	require.Len(t, savedNotes, 1)
	assert.Contains(t, savedNotes[0].Text(), "Status changed from assigned to in_progress")
}

func TestUpdateTicket_InvalidTransition(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newUpdateUseCase(ticketRepo, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    adminActor,
		TicketID: 1,
		Status:   strPtr("in_progress"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}

func TestUpdateTicket_ReassignmentGoesThroughResolver(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(7))
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	staffRepo := &mockStaffRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*staff.Staff, error) {
			return makeStaff(t, id, []uint{99}, true), nil
		},
	}

	uc := newUpdateUseCase(ticketRepo, staffRepo)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:           adminActor,
		TicketID:        1,
		AssignedStaffID: uintPtr(9),
	})
	require.Error(t, err)
	assert.True(t, errors.IsInvalidAssignmentError(err), "coverage check must apply on the update path too")
}

func TestUpdateTicket_TenantForbidden(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newUpdateUseCase(ticketRepo, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    tenantActor,
		TicketID: 1,
		Title:    strPtr("new title"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestUpdateTicket_MaintenanceOutOfScopeForbidden(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(8))
	self := makeStaff(t, 7, []uint{30}, true)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	staffRepo := &mockStaffRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*staff.Staff, error) { return self, nil },
	}

	uc := newUpdateUseCase(ticketRepo, staffRepo)

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    maintenanceActor,
		TicketID: 1,
		Title:    strPtr("new title"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err), "ticket assigned to another staff member")
}

func TestUpdateTicket_VersionConflictSurfaces(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		UpdateFunc: func(ctx context.Context, t *ticket.Ticket) error {
			return errors.NewConflictError("ticket was modified concurrently")
		},
	}

	uc := newUpdateUseCase(ticketRepo, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), UpdateTicketCommand{
		Actor:    adminActor,
		TicketID: 1,
		Title:    strPtr("new title"),
	})
	require.Error(t, err)
	assert.True(t, errors.IsConflictError(err))
}
