package usecases

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
)

var (
	adminActor       = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	maintenanceActor = authorization.Actor{UserID: 2, Role: authorization.RoleMaintenance}
	tenantActor      = authorization.Actor{UserID: 3, Role: authorization.RoleTenant}
)

// makeStaff builds a persisted-style staff record.
func makeStaff(t *testing.T, id uint, propertyIDs []uint, active bool) *staff.Staff {
	t.Helper()
	now := time.Now().UTC()
	s, err := staff.ReconstructStaff(id, maintenanceActor.UserID, propertyIDs, nil, nil, "", "", active, 1, now, now)
	require.NoError(t, err)
	return s
}

// makeTicket builds a persisted-style ticket on property 30, unit 20,
// reported by tenant 10.
func makeTicket(t *testing.T, id uint, status vo.TicketStatus, assignedStaffID *uint) *ticket.Ticket {
	t.Helper()
	now := time.Now().UTC()
	var completed *time.Time
	if status.IsCompleted() {
		completed = &now
	}
	tk, err := ticket.ReconstructTicket(
		id, vo.CategoryPlumbing, vo.PriorityNormal, status,
		"Leaking faucet", "Kitchen faucet drips constantly", "",
		nil, nil, nil, nil, completed,
		10, 20, 30, assignedStaffID, 1, now, now,
	)
	require.NoError(t, err)
	return tk
}

func makeTenant(userID uint) *tenancy.Tenant {
	return tenancy.ReconstructTenant(10, userID, 20, "active", time.Now().UTC().AddDate(-1, 0, 0), nil)
}

func makeUnit() *tenancy.Unit {
	return tenancy.ReconstructUnit(20, 30, "4B")
}

func makeProperty() *tenancy.Property {
	return tenancy.ReconstructProperty(30, "Maple Court", "12 Maple St")
}

func uintPtr(v uint) *uint {
	return &v
}

func strPtr(v string) *string {
	return &v
}

func intPtr(v int) *int {
	return &v
}
