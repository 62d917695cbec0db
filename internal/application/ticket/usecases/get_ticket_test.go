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
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
)

func TestGetTicket_ComposesDetailView(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(7))
	note, err := ticket.NewNote(1, 5, authorization.RoleTenant, "Please hurry")
	require.NoError(t, err)

	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
		FindNotesByTicketIDFunc: func(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
			return []*ticket.Note{note}, nil
		},
	}
	tenancyRepo := &mockTenancyRepository{
		FindTenantByIDFunc: func(ctx context.Context, tenantID uint) (*tenancy.Tenant, error) {
			return makeTenant(5), nil
		},
		FindUnitByIDFunc: func(ctx context.Context, unitID uint) (*tenancy.Unit, error) {
			return makeUnit(), nil
		},
		FindPropertyByIDFunc: func(ctx context.Context, propertyID uint) (*tenancy.Property, error) {
			return makeProperty(), nil
		},
	}
	staffRepo := &mockStaffRepository{
		FindByIDFunc: func(ctx context.Context, staffID uint) (*staff.Staff, error) {
			return makeStaff(t, staffID, []uint{30}, true), nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, staffRepo, tenancyRepo, newTestLogger())

	detail, err := uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 1})
	require.NoError(t, err)
	require.NotNil(t, detail)

	assert.Equal(t, uint(1), detail.ID)
	assert.Equal(t, uint(5), detail.TenantUserID)
	assert.Equal(t, "4B", detail.UnitNumber)
	assert.Equal(t, "Maple Court", detail.PropertyName)
	require.NotNil(t, detail.AssignedStaff)
	assert.Equal(t, uint(7), detail.AssignedStaff.StaffID)
	assert.Equal(t, []uint{30}, detail.AssignedStaff.PropertyIDs)
	assert.True(t, detail.AssignedStaff.Active)
	require.Len(t, detail.Notes, 1)
	assert.Equal(t, "Please hurry", detail.Notes[0].Text)
}

func TestGetTicket_MissingReferencesDegradeView(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusAssigned, uintPtr(7))
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}

	uc := NewGetTicketUseCase(ticketRepo, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	detail, err := uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 1})
	require.NoError(t, err, "missing tenant, unit or staff rows must not fail the request")
	assert.Empty(t, detail.UnitNumber)
	assert.Zero(t, detail.TenantUserID)
	assert.Nil(t, detail.AssignedStaff)
	assert.Equal(t, uint(20), detail.UnitID)
}

func TestGetTicket_TenantSeesOwnOnly(t *testing.T) {
	tk := makeTicket(t, 1, vo.StatusPending, nil)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return tk, nil },
	}
	owner := &mockTenancyRepository{
		FindActiveTenantByUserIDFunc: func(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
			return makeTenant(userID), nil
		},
	}
	stranger := &mockTenancyRepository{
		FindActiveTenantByUserIDFunc: func(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
			return tenancy.ReconstructTenant(11, userID, 21, "active", tk.CreatedAt(), nil), nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, &mockStaffRepository{}, owner, newTestLogger())
	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: tenantActor, TicketID: 1})
	require.NoError(t, err)

	uc = NewGetTicketUseCase(ticketRepo, &mockStaffRepository{}, stranger, newTestLogger())
	_, err = uc.Execute(context.Background(), GetTicketQuery{Actor: tenantActor, TicketID: 1})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicket_MaintenanceScope(t *testing.T) {
	other := uint(8)
	assignedToOther := makeTicket(t, 1, vo.StatusAssigned, &other)
	ticketRepo := &mockTicketRepository{
		FindByIDFunc: func(ctx context.Context, id uint) (*ticket.Ticket, error) { return assignedToOther, nil },
	}
	staffRepo := &mockStaffRepository{
		FindByUserIDFunc: func(ctx context.Context, userID uint) (*staff.Staff, error) {
			return makeStaff(t, 7, []uint{30}, true), nil
		},
	}

	uc := NewGetTicketUseCase(ticketRepo, staffRepo, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: maintenanceActor, TicketID: 1})
	require.Error(t, err, "ticket assigned to another staff member is out of scope")
	assert.True(t, errors.IsForbiddenError(err))
}

func TestGetTicket_NotFound(t *testing.T) {
	uc := NewGetTicketUseCase(&mockTicketRepository{}, &mockStaffRepository{}, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), GetTicketQuery{Actor: adminActor, TicketID: 99})
	require.Error(t, err)
	assert.True(t, errors.IsNotFoundError(err))
}
