package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/errors"
)

func TestListTickets_AdminUnscoped(t *testing.T) {
	var captured ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return []*ticket.Ticket{makeTicket(t, 1, vo.StatusPending, nil)}, 1, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	result, err := uc.Execute(context.Background(), ListTicketsQuery{
		Actor:    adminActor,
		Status:   "pending",
		Priority: "normal",
	})
	require.NoError(t, err)

	assert.Nil(t, captured.TenantID)
	assert.Nil(t, captured.StaffScope)
	require.NotNil(t, captured.Status)
	assert.Equal(t, vo.StatusPending, *captured.Status)
	require.NotNil(t, captured.Priority)
	assert.Equal(t, vo.PriorityNormal, *captured.Priority)
	assert.Equal(t, int64(1), result.Total)
	require.Len(t, result.Tickets, 1)
}

func TestListTickets_MaintenanceScoped(t *testing.T) {
	var captured ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	staffRepo := &mockStaffRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*staff.Staff, error) {
			return makeStaff(t, 7, []uint{30, 31}, true), nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, staffRepo, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: maintenanceActor})
	require.NoError(t, err)

	require.NotNil(t, captured.StaffScope)
	assert.Equal(t, uint(7), captured.StaffScope.StaffID)
	assert.Equal(t, []uint{30, 31}, captured.StaffScope.PropertyIDs)
}

func TestListTickets_MaintenanceWithoutStaffRecord(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: maintenanceActor})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestListTickets_TenantScoped(t *testing.T) {
	var captured ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}
	tenancyRepo := &mockTenancyRepository{
		FindActiveTenantByUserIDFunc: func(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
			return makeTenant(userID), nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockStaffRepository{}, tenancyRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: tenantActor})
	require.NoError(t, err)

	require.NotNil(t, captured.TenantID)
	assert.Equal(t, uint(10), *captured.TenantID)
}

func TestListTickets_InvalidFilterValues(t *testing.T) {
	uc := NewListTicketsUseCase(&mockTicketRepository{}, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	for _, query := range []ListTicketsQuery{
		{Actor: adminActor, Status: "paused"},
		{Actor: adminActor, Priority: "asap"},
		{Actor: adminActor, Category: "gardening"},
	} {
		_, err := uc.Execute(context.Background(), query)
		require.Error(t, err)
		assert.True(t, errors.IsValidationError(err))
	}
}

func TestListTickets_PaginationDefaultsAndCap(t *testing.T) {
	var captured ticket.Filter
	ticketRepo := &mockTicketRepository{
		ListFunc: func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
			captured = filter
			return nil, 0, nil
		},
	}

	uc := NewListTicketsUseCase(ticketRepo, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), ListTicketsQuery{Actor: adminActor})
	require.NoError(t, err)
	assert.Equal(t, 1, captured.Page)
	assert.Equal(t, 20, captured.Limit)

	_, err = uc.Execute(context.Background(), ListTicketsQuery{Actor: adminActor, Page: 3, Limit: 500})
	require.NoError(t, err)
	assert.Equal(t, 3, captured.Page)
	assert.Equal(t, 100, captured.Limit)
}
