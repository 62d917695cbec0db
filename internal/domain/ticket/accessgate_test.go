package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
)

var (
	adminActor       = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}
	maintenanceActor = authorization.Actor{UserID: 2, Role: authorization.RoleMaintenance}
	tenantActor      = authorization.Actor{UserID: 3, Role: authorization.RoleTenant}
)

// gateTicket builds a ticket on property 30 reported by tenant 10, optionally
// assigned.
func gateTicket(t *testing.T, assignedStaffID *uint) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	status := vo.StatusPending
	if assignedStaffID != nil {
		status = vo.StatusAssigned
	}
	tk, err := ReconstructTicket(
		1, vo.CategoryPlumbing, vo.PriorityNormal, status,
		"t", "d", "", nil, nil, nil, nil, nil,
		10, 20, 30, assignedStaffID, 1, now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestAccessGate_Admin_Unrestricted(t *testing.T) {
	gate := NewAccessGate()
	tk := gateTicket(t, nil)
	scope := ActorScope{}

	assert.True(t, gate.CanView(adminActor, scope, tk))
	assert.True(t, gate.CanUpdate(adminActor, scope, tk))
	assert.True(t, gate.CanAddNote(adminActor, scope, tk))
	assert.True(t, gate.CanRecordMaterials(adminActor, scope, tk))
	assert.True(t, gate.CanComplete(adminActor, scope, tk))
	assert.True(t, gate.CanCancel(adminActor))
	assert.True(t, gate.CanDelete(adminActor))
}

func TestAccessGate_Maintenance_CoverageAndAssignment(t *testing.T) {
	gate := NewAccessGate()
	covering := ActorScope{Staff: newTestStaff(t, 7, []uint{30}, true)}
	elsewhere := ActorScope{Staff: newTestStaff(t, 7, []uint{99}, true)}

	unassigned := gateTicket(t, nil)
	assert.True(t, gate.CanView(maintenanceActor, covering, unassigned), "unassigned ticket on covered property")
	assert.False(t, gate.CanView(maintenanceActor, elsewhere, unassigned), "property not covered")

	self := uint(7)
	assignedToSelf := gateTicket(t, &self)
	assert.True(t, gate.CanView(maintenanceActor, covering, assignedToSelf))
	assert.True(t, gate.CanUpdate(maintenanceActor, covering, assignedToSelf))
	assert.True(t, gate.CanRecordMaterials(maintenanceActor, covering, assignedToSelf))
	assert.True(t, gate.CanComplete(maintenanceActor, covering, assignedToSelf))

	other := uint(8)
	assignedToOther := gateTicket(t, &other)
	assert.False(t, gate.CanView(maintenanceActor, covering, assignedToOther), "assigned to someone else")
	assert.False(t, gate.CanComplete(maintenanceActor, covering, assignedToOther))
}

func TestAccessGate_Maintenance_NoDestructiveAccess(t *testing.T) {
	gate := NewAccessGate()
	assert.False(t, gate.CanCancel(maintenanceActor))
	assert.False(t, gate.CanDelete(maintenanceActor))
	assert.False(t, gate.CanCreate(maintenanceActor))
}

func TestAccessGate_Maintenance_MissingStaffRecord(t *testing.T) {
	gate := NewAccessGate()
	tk := gateTicket(t, nil)
	assert.False(t, gate.CanView(maintenanceActor, ActorScope{}, tk))
}

func TestAccessGate_Tenant_OwnTicketsOnly(t *testing.T) {
	gate := NewAccessGate()
	tk := gateTicket(t, nil)

	owner := ActorScope{TenantID: 10}
	stranger := ActorScope{TenantID: 11}

	assert.True(t, gate.CanView(tenantActor, owner, tk))
	assert.True(t, gate.CanAddNote(tenantActor, owner, tk))
	assert.True(t, gate.CanAddImage(tenantActor, owner, tk))
	assert.True(t, gate.CanCreate(tenantActor))

	assert.False(t, gate.CanView(tenantActor, stranger, tk))
	assert.False(t, gate.CanAddImage(tenantActor, stranger, tk))

	assert.False(t, gate.CanUpdate(tenantActor, owner, tk))
	assert.False(t, gate.CanRecordMaterials(tenantActor, owner, tk))
	assert.False(t, gate.CanComplete(tenantActor, owner, tk))
	assert.False(t, gate.CanCancel(tenantActor))
	assert.False(t, gate.CanDelete(tenantActor))
}

func TestAccessGate_AddImage_TenantOnly(t *testing.T) {
	gate := NewAccessGate()
	tk := gateTicket(t, nil)

	assert.False(t, gate.CanAddImage(adminActor, ActorScope{}, tk))
	assert.False(t, gate.CanAddImage(maintenanceActor, ActorScope{Staff: newTestStaff(t, 7, []uint{30}, true)}, tk))
}
