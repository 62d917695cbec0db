package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/domain/inventory"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/errors"
)

func newCompleteUseCase(ticketRepo *mockTicketRepository, inventoryRepo *mockInventoryRepository, staffRepo *mockStaffRepository) *CompleteTicketUseCase {
	return NewCompleteTicketUseCase(ticketRepo, inventoryRepo, staffRepo, &mockTenancyRepository{}, &mockTransactor{}, newTestLogger())
}

func TestCompleteTicket_AssignedStaffCompletes(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusInProgress, uintPtr(7))
	self := makeStaff(t, 7, []uint{30}, true)
	pipe := makeItem(t, 1, "PVC pipe", 5)

	var savedNote *ticket.Note
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		SaveNoteFunc: func(ctx context.Context, note *ticket.Note) error {
			savedNote = note
			return nil
		},
	}
	inventoryRepo := &mockInventoryRepository{
		FindByNameFunc: func(ctx context.Context, name string) (*inventory.Item, error) { return pipe, nil },
	}
	staffRepo := &mockStaffRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*staff.Staff, error) { return self, nil },
	}

	uc := newCompleteUseCase(ticketRepo, inventoryRepo, staffRepo)

	result, err := uc.Execute(context.Background(), CompleteTicketCommand{
		Actor:            maintenanceActor,
		TicketID:         1,
		Materials:        []MaterialInput{{ItemName: "PVC pipe", Quantity: 2}},
		TimeSpentMinutes: intPtr(120),
	})
	require.NoError(t, err)

	assert.Equal(t, "completed", result.Status)
	assert.False(t, result.CompletedDate.IsZero())
	assert.Equal(t, 3, pipe.Quantity(), "completion materials decrement inventory")
	require.NotNil(t, tk.TimeSpentMinutes())
	assert.Equal(t, 120, *tk.TimeSpentMinutes())
	require.NotNil(t, savedNote)
	assert.Contains(t, savedNote.Text(), "completed")
}

func TestCompleteTicket_CustomNoteReplacesDefault(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusInProgress, uintPtr(7))
	var savedNote *ticket.Note
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		SaveNoteFunc: func(ctx context.Context, note *ticket.Note) error {
			savedNote = note
			return nil
		},
	}

	uc := newCompleteUseCase(ticketRepo, &mockInventoryRepository{}, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), CompleteTicketCommand{
		Actor:    adminActor,
		TicketID: 1,
		Note:     "Replaced the washer and checked the shutoff valve",
	})
	require.NoError(t, err)
	require.NotNil(t, savedNote)
	assert.Equal(t, "Replaced the washer and checked the shutoff valve", savedNote.Text())
}

func TestCompleteTicket_AdminCompletes(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(7))
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newCompleteUseCase(ticketRepo, &mockInventoryRepository{}, &mockStaffRepository{})

	result, err := uc.Execute(context.Background(), CompleteTicketCommand{Actor: adminActor, TicketID: 1})
	require.NoError(t, err)
	assert.Equal(t, "completed", result.Status)
}

func TestCompleteTicket_UnassignedStaffForbidden(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(8))
	self := makeStaff(t, 7, []uint{30}, true)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	staffRepo := &mockStaffRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*staff.Staff, error) { return self, nil },
	}

	uc := newCompleteUseCase(ticketRepo, &mockInventoryRepository{}, staffRepo)

	_, err := uc.Execute(context.Background(), CompleteTicketCommand{Actor: maintenanceActor, TicketID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCompleteTicket_TenantForbidden(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusInProgress, uintPtr(7))
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newCompleteUseCase(ticketRepo, &mockInventoryRepository{}, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), CompleteTicketCommand{Actor: tenantActor, TicketID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCompleteTicket_PendingRejected(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := newCompleteUseCase(ticketRepo, &mockInventoryRepository{}, &mockStaffRepository{})

	_, err := uc.Execute(context.Background(), CompleteTicketCommand{Actor: adminActor, TicketID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsValidationError(err))
}
