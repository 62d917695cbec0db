package ticket

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"propflow/internal/domain/staff"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
)

var assigningAdmin = authorization.Actor{UserID: 1, Role: authorization.RoleAdmin}

func newTestStaff(t *testing.T, id uint, propertyIDs []uint, active bool) *staff.Staff {
	t.Helper()
	now := time.Now().UTC()
	s, err := staff.ReconstructStaff(id, id+100, propertyIDs, nil, nil, "", "", active, 1, now, now)
	require.NoError(t, err)
	return s
}

func TestAssignmentResolver_CanAssign(t *testing.T) {
	resolver := NewAssignmentResolver()

	active := newTestStaff(t, 7, []uint{30, 31}, true)
	inactive := newTestStaff(t, 8, []uint{30}, false)

	assert.True(t, resolver.CanAssign(active, 30))
	assert.False(t, resolver.CanAssign(active, 99), "uncovered property")
	assert.False(t, resolver.CanAssign(inactive, 30), "inactive staff")
	assert.False(t, resolver.CanAssign(nil, 30))
}

func TestAssignmentResolver_Resolve(t *testing.T) {
	resolver := NewAssignmentResolver()
	tk := reconstructedTicket(t, vo.StatusPending)
	s := newTestStaff(t, 7, []uint{30}, true)

	sched := time.Date(2026, 9, 2, 9, 0, 0, 0, time.UTC)
	note, err := resolver.Resolve(tk, s, &sched, assigningAdmin)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusAssigned, tk.Status())
	require.NotNil(t, tk.AssignedStaffID())
	assert.Equal(t, uint(7), *tk.AssignedStaffID())

	require.NotNil(t, note, "assignment must produce an audit note")
	assert.Equal(t, tk.ID(), note.TicketID())
	assert.Equal(t, uint(1), note.AuthorID())
	assert.Contains(t, note.Text(), "Assigned to staff 7")
	assert.Contains(t, note.Text(), "scheduled for")
	require.Len(t, tk.Notes(), 1)
}

func TestAssignmentResolver_Resolve_NoSchedule(t *testing.T) {
	resolver := NewAssignmentResolver()
	tk := reconstructedTicket(t, vo.StatusPending)
	s := newTestStaff(t, 7, []uint{30}, true)

	note, err := resolver.Resolve(tk, s, nil, assigningAdmin)
	require.NoError(t, err)
	assert.NotContains(t, note.Text(), "scheduled")
	assert.Nil(t, tk.ScheduledDate())
}

func TestAssignmentResolver_Resolve_UncoveredProperty(t *testing.T) {
	resolver := NewAssignmentResolver()
	tk := reconstructedTicket(t, vo.StatusPending)
	s := newTestStaff(t, 7, []uint{99}, true)

	note, err := resolver.Resolve(tk, s, nil, assigningAdmin)
	require.Error(t, err)
	assert.Nil(t, note)
	assert.Contains(t, err.Error(), "does not cover property")
	assert.Equal(t, vo.StatusPending, tk.Status(), "failed resolution must not mutate the ticket")
}

func TestAssignmentResolver_Resolve_InactiveStaff(t *testing.T) {
	resolver := NewAssignmentResolver()
	tk := reconstructedTicket(t, vo.StatusPending)
	s := newTestStaff(t, 7, []uint{30}, false)

	_, err := resolver.Resolve(tk, s, nil, assigningAdmin)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not active")
}

func TestAssignmentResolver_Resolve_TerminalTicket(t *testing.T) {
	resolver := NewAssignmentResolver()
	tk := reconstructedTicket(t, vo.StatusCancelled)
	s := newTestStaff(t, 7, []uint{30}, true)

	_, err := resolver.Resolve(tk, s, nil, assigningAdmin)
	require.Error(t, err)
}
