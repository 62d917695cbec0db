package usecases

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/errors"
)

func TestCreateTicket_Success(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			require.NoError(t, tk.SetID(42))
			saved = tk
			return nil
		},
	}
	tenancyRepo := &mockTenancyRepository{
		FindActiveTenantByUserIDFunc: func(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
			assert.Equal(t, tenantActor.UserID, userID)
			return makeTenant(userID), nil
		},
		FindUnitByIDFunc: func(ctx context.Context, unitID uint) (*tenancy.Unit, error) {
			assert.Equal(t, uint(20), unitID)
			return makeUnit(), nil
		},
	}

	uc := NewCreateTicketUseCase(ticketRepo, tenancyRepo, newTestLogger())

	result, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       tenantActor,
		Category:    "plumbing",
		Priority:    "urgent",
		Title:       "Leaking faucet",
		Description: "Kitchen faucet drips constantly",
		Images:      []string{"https://img/leak.jpg"},
	})
	require.NoError(t, err)
	require.NotNil(t, result)

	assert.Equal(t, uint(42), result.TicketID)
	assert.Equal(t, "pending", result.Status)
	assert.Equal(t, uint(30), result.PropertyID, "property must come from the residency, not the request")
	assert.Equal(t, uint(20), result.UnitID)

	require.NotNil(t, saved)
	assert.Equal(t, uint(10), saved.TenantID())
}

func TestCreateTicket_NonTenantForbidden(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTenancyRepository{}, newTestLogger())

	for _, actor := range []struct {
		name  string
		actor CreateTicketCommand
	}{
		{"admin", CreateTicketCommand{Actor: adminActor}},
		{"maintenance", CreateTicketCommand{Actor: maintenanceActor}},
	} {
		t.Run(actor.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), actor.actor)
			require.Error(t, err)
			assert.True(t, errors.IsForbiddenError(err))
		})
	}
}

func TestCreateTicket_NoActiveResidency(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTenancyRepository{}, newTestLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       tenantActor,
		Category:    "plumbing",
		Priority:    "normal",
		Title:       "Title",
		Description: "Description",
	})
	require.Error(t, err)
	assert.True(t, errors.IsForbiddenError(err))
}

func TestCreateTicket_ValidationFailures(t *testing.T) {
	uc := NewCreateTicketUseCase(&mockTicketRepository{}, &mockTenancyRepository{}, newTestLogger())

	tests := []struct {
		name string
		cmd  CreateTicketCommand
	}{
		{"empty title", CreateTicketCommand{Actor: tenantActor, Category: "plumbing", Priority: "normal", Description: "d"}},
		{"empty description", CreateTicketCommand{Actor: tenantActor, Category: "plumbing", Priority: "normal", Title: "t"}},
		{"bad category", CreateTicketCommand{Actor: tenantActor, Category: "gardening", Priority: "normal", Title: "t", Description: "d"}},
		{"bad priority", CreateTicketCommand{Actor: tenantActor, Category: "plumbing", Priority: "asap", Title: "t", Description: "d"}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := uc.Execute(context.Background(), tc.cmd)
			require.Error(t, err)
			assert.True(t, errors.IsValidationError(err))
		})
	}
}

func TestCreateTicket_SanitizesFreeText(t *testing.T) {
	var saved *ticket.Ticket
	ticketRepo := &mockTicketRepository{
		SaveFunc: func(ctx context.Context, tk *ticket.Ticket) error {
			saved = tk
			return tk.SetID(1)
		},
	}
	tenancyRepo := &mockTenancyRepository{
		FindActiveTenantByUserIDFunc: func(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
			return makeTenant(userID), nil
		},
		FindUnitByIDFunc: func(ctx context.Context, unitID uint) (*tenancy.Unit, error) {
			return makeUnit(), nil
		},
	}
	uc := NewCreateTicketUseCase(ticketRepo, tenancyRepo, newTestLogger())

	_, err := uc.Execute(context.Background(), CreateTicketCommand{
		Actor:       tenantActor,
		Category:    "plumbing",
		Priority:    "normal",
		Title:       "  Broken sink <script>alert(1)</script>  ",
		Description: "details",
	})
	require.NoError(t, err)
	require.NotNil(t, saved)
	assert.NotContains(t, saved.Title(), "<script>")
}
