package ticket

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/shared/authorization"
)

// newValidTicket creates a ticket with sensible defaults for testing.
func newValidTicket(t *testing.T) *Ticket {
	t.Helper()
	tk, err := NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "Leaking faucet", "Kitchen faucet drips constantly", "", nil, 10, 20, 30)
	require.NoError(t, err)
	return tk
}

// reconstructedTicket builds a persisted-style ticket in the given status.
func reconstructedTicket(t *testing.T, status vo.TicketStatus) *Ticket {
	t.Helper()
	now := time.Now().UTC()
	var assignee *uint
	if !status.IsPending() && !status.IsCancelled() {
		id := uint(7)
		assignee = &id
	}
	var completed *time.Time
	if status.IsCompleted() {
		completed = &now
	}
	tk, err := ReconstructTicket(
		1,
		vo.CategoryElectrical, vo.PriorityUrgent, status,
		"Persisted ticket", "desc", "",
		nil, nil,
		nil, // timeSpentMinutes
		nil, // scheduledDate
		completed,
		10, 20, 30,
		assignee,
		1,
		now, now,
	)
	require.NoError(t, err)
	return tk
}

func TestNewTicket_ValidInput(t *testing.T) {
	tests := []struct {
		name  string
		cat   vo.Category
		pri   vo.Priority
		title string
		desc  string
	}{
		{
			name: "plumbing normal",
			cat:  vo.CategoryPlumbing, pri: vo.PriorityNormal,
			title: "Leaking faucet", desc: "Drips under the sink",
		},
		{
			name: "hvac emergency",
			cat:  vo.CategoryHVAC, pri: vo.PriorityEmergency,
			title: "No heat", desc: "Heating out in winter",
		},
		{
			name: "boundary title length 200",
			cat:  vo.CategoryOther, pri: vo.PriorityLow,
			title: strings.Repeat("a", 200), desc: "desc",
		},
		{
			name: "boundary description length 5000",
			cat:  vo.CategoryAppliance, pri: vo.PriorityUrgent,
			title: "Title", desc: strings.Repeat("d", 5000),
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			tk, err := NewTicket(tc.cat, tc.pri, tc.title, tc.desc, "gate code 1234", []string{"https://img/1.jpg"}, 10, 20, 30)
			require.NoError(t, err)
			require.NotNil(t, tk)

			assert.Equal(t, tc.cat, tk.Category())
			assert.Equal(t, tc.pri, tk.Priority())
			assert.Equal(t, tc.title, tk.Title())
			assert.Equal(t, tc.desc, tk.Description())
			assert.Equal(t, vo.StatusPending, tk.Status(), "new ticket must start pending")
			assert.Equal(t, uint(10), tk.TenantID())
			assert.Equal(t, uint(20), tk.UnitID())
			assert.Equal(t, uint(30), tk.PropertyID())
			assert.Equal(t, 1, tk.Version())
			assert.Nil(t, tk.AssignedStaffID())
			assert.Nil(t, tk.ScheduledDate())
			assert.Nil(t, tk.CompletedDate())
			assert.Nil(t, tk.TimeSpentMinutes())
			assert.Empty(t, tk.MaterialsUsed())
			assert.Empty(t, tk.Notes())
			assert.False(t, tk.CreatedAt().IsZero())
		})
	}
}

func TestNewTicket_EmptyTitle(t *testing.T) {
	tk, err := NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "", "desc", "", nil, 10, 20, 30)
	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Contains(t, err.Error(), "title is required")
}

func TestNewTicket_TitleTooLong(t *testing.T) {
	tk, err := NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, strings.Repeat("x", 201), "desc", "", nil, 10, 20, 30)
	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Contains(t, err.Error(), "title exceeds maximum length")
}

func TestNewTicket_EmptyDescription(t *testing.T) {
	tk, err := NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "Title", "", "", nil, 10, 20, 30)
	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Contains(t, err.Error(), "description is required")
}

func TestNewTicket_InvalidCategory(t *testing.T) {
	tk, err := NewTicket(vo.Category("gardening"), vo.PriorityNormal, "Title", "desc", "", nil, 10, 20, 30)
	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Contains(t, err.Error(), "invalid category")
}

func TestNewTicket_InvalidPriority(t *testing.T) {
	tk, err := NewTicket(vo.CategoryPlumbing, vo.Priority("asap"), "Title", "desc", "", nil, 10, 20, 30)
	require.Error(t, err)
	assert.Nil(t, tk)
	assert.Contains(t, err.Error(), "invalid priority")
}

func TestNewTicket_MissingResidencyReferences(t *testing.T) {
	_, err := NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "Title", "desc", "", nil, 0, 20, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tenant ID is required")

	_, err = NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "Title", "desc", "", nil, 10, 0, 30)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unit ID is required")

	_, err = NewTicket(vo.CategoryPlumbing, vo.PriorityNormal, "Title", "desc", "", nil, 10, 20, 0)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "property ID is required")
}

func TestTicket_Assign_FromPending(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.SetID(1))

	sched := time.Date(2026, 9, 1, 14, 0, 0, 0, time.UTC)
	err := tk.Assign(7, &sched)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusAssigned, tk.Status())
	require.NotNil(t, tk.AssignedStaffID())
	assert.Equal(t, uint(7), *tk.AssignedStaffID())
	require.NotNil(t, tk.ScheduledDate())
	assert.Equal(t, sched, *tk.ScheduledDate())
	assert.Equal(t, 2, tk.Version())
}

func TestTicket_Assign_ReassignmentKeepsStatus(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)

	err := tk.Assign(9, nil)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusInProgress, tk.Status(), "reassignment must not regress the lifecycle")
	require.NotNil(t, tk.AssignedStaffID())
	assert.Equal(t, uint(9), *tk.AssignedStaffID())
}

func TestTicket_Assign_TerminalRejected(t *testing.T) {
	for _, status := range []vo.TicketStatus{vo.StatusCompleted, vo.StatusCancelled} {
		tk := reconstructedTicket(t, status)
		err := tk.Assign(7, nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot assign")
	}
}

func TestTicket_Assign_ZeroStaffID(t *testing.T) {
	tk := newValidTicket(t)
	err := tk.Assign(0, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "staff ID cannot be zero")
}

func TestTicket_ChangeStatus_ValidTransitions(t *testing.T) {
	tests := []struct {
		from vo.TicketStatus
		to   vo.TicketStatus
	}{
		{vo.StatusAssigned, vo.StatusInProgress},
		{vo.StatusAssigned, vo.StatusWaitingForParts},
		{vo.StatusInProgress, vo.StatusWaitingForParts},
		{vo.StatusWaitingForParts, vo.StatusInProgress},
		{vo.StatusInProgress, vo.StatusCompleted},
	}

	for _, tc := range tests {
		t.Run(string(tc.from)+"_to_"+string(tc.to), func(t *testing.T) {
			tk := reconstructedTicket(t, tc.from)
			err := tk.ChangeStatus(tc.to)
			require.NoError(t, err)
			assert.Equal(t, tc.to, tk.Status())
		})
	}
}

func TestTicket_ChangeStatus_InvalidTransition(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusCompleted)
	err := tk.ChangeStatus(vo.StatusInProgress)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot transition")
}

func TestTicket_ChangeStatus_SameStatusNoop(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)
	version := tk.Version()
	err := tk.ChangeStatus(vo.StatusInProgress)
	require.NoError(t, err)
	assert.Equal(t, version, tk.Version())
}

func TestTicket_ChangeStatus_CompletionStampsDate(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)
	require.Nil(t, tk.CompletedDate())

	err := tk.ChangeStatus(vo.StatusCompleted)
	require.NoError(t, err)
	require.NotNil(t, tk.CompletedDate())
	assert.NoError(t, tk.Validate())
}

func TestTicket_Complete(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)

	minutes := 90
	materials := []MaterialUsage{{ItemName: "PVC pipe", Quantity: 2}}
	err := tk.Complete(materials, &minutes)
	require.NoError(t, err)

	assert.Equal(t, vo.StatusCompleted, tk.Status())
	require.NotNil(t, tk.CompletedDate())
	require.NotNil(t, tk.TimeSpentMinutes())
	assert.Equal(t, 90, *tk.TimeSpentMinutes())
	assert.Equal(t, materials, tk.MaterialsUsed())
}

func TestTicket_Complete_AlreadyCompleted(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusCompleted)
	err := tk.Complete(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already completed")
}

func TestTicket_Complete_FromPendingRejected(t *testing.T) {
	tk := newValidTicket(t)
	err := tk.Complete(nil, nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "cannot complete")
}

func TestTicket_Cancel(t *testing.T) {
	for _, status := range []vo.TicketStatus{
		vo.StatusPending, vo.StatusAssigned, vo.StatusInProgress, vo.StatusWaitingForParts,
	} {
		t.Run(string(status), func(t *testing.T) {
			var tk *Ticket
			if status.IsPending() {
				tk = newValidTicket(t)
			} else {
				tk = reconstructedTicket(t, status)
			}
			err := tk.Cancel("tenant resolved it themselves")
			require.NoError(t, err)
			assert.Equal(t, vo.StatusCancelled, tk.Status())
		})
	}
}

func TestTicket_Cancel_RequiresReason(t *testing.T) {
	tk := newValidTicket(t)
	err := tk.Cancel("")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reason is required")
}

func TestTicket_Cancel_TerminalRejected(t *testing.T) {
	for _, status := range []vo.TicketStatus{vo.StatusCompleted, vo.StatusCancelled} {
		tk := reconstructedTicket(t, status)
		err := tk.Cancel("reason")
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot cancel")
	}
}

func TestTicket_AppendNote(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusAssigned)

	note, err := NewNote(tk.ID(), 5, authorization.RoleTenant, "Please come after 5pm")
	require.NoError(t, err)
	require.NoError(t, tk.AppendNote(note))

	notes := tk.Notes()
	require.Len(t, notes, 1)
	assert.Equal(t, "Please come after 5pm", notes[0].Text())
}

func TestTicket_AppendNote_TicketIDMismatch(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusAssigned)

	note, err := NewNote(999, 5, authorization.RoleTenant, "text")
	require.NoError(t, err)
	err = tk.AppendNote(note)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "mismatch")
}

func TestTicket_AddImage(t *testing.T) {
	tk := newValidTicket(t)
	require.NoError(t, tk.AddImage("https://img/leak.jpg"))
	assert.Equal(t, []string{"https://img/leak.jpg"}, tk.Images())

	err := tk.AddImage("")
	require.Error(t, err)
}

func TestTicket_SetMaterialsUsed_ReplacesWholesale(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)

	tk.SetMaterialsUsed([]MaterialUsage{{ItemName: "Washer", Quantity: 4}})
	tk.SetMaterialsUsed([]MaterialUsage{{ItemName: "PVC pipe", Quantity: 1}})

	materials := tk.MaterialsUsed()
	require.Len(t, materials, 1, "last recording must win")
	assert.Equal(t, "PVC pipe", materials[0].ItemName)
}

func TestTicket_SetTimeSpent(t *testing.T) {
	tk := reconstructedTicket(t, vo.StatusInProgress)
	require.NoError(t, tk.SetTimeSpent(45))
	require.NotNil(t, tk.TimeSpentMinutes())
	assert.Equal(t, 45, *tk.TimeSpentMinutes())

	err := tk.SetTimeSpent(-1)
	require.Error(t, err)
}

func TestTicket_UpdateDetails_PartialUpdate(t *testing.T) {
	tk := newValidTicket(t)
	originalTitle := tk.Title()

	pri := vo.PriorityEmergency
	desc := "Water is now pooling on the floor"
	require.NoError(t, tk.UpdateDetails(nil, &pri, nil, &desc, nil))

	assert.Equal(t, originalTitle, tk.Title())
	assert.Equal(t, vo.PriorityEmergency, tk.Priority())
	assert.Equal(t, desc, tk.Description())
}

func TestTicket_UpdateDetails_InvalidValues(t *testing.T) {
	tk := newValidTicket(t)

	badCat := vo.Category("nope")
	require.Error(t, tk.UpdateDetails(&badCat, nil, nil, nil, nil))

	empty := ""
	require.Error(t, tk.UpdateDetails(nil, nil, &empty, nil, nil))
}

func TestTicket_Validate_CompletedDateInvariant(t *testing.T) {
	now := time.Now().UTC()
	id := uint(7)

	// completed without a date is invalid
	tk, err := ReconstructTicket(
		1, vo.CategoryPlumbing, vo.PriorityNormal, vo.StatusCompleted,
		"t", "d", "", nil, nil, nil, nil, nil,
		10, 20, 30, &id, 1, now, now,
	)
	require.NoError(t, err)
	require.Error(t, tk.Validate())

	// pending with an assignee is invalid
	tk, err = ReconstructTicket(
		1, vo.CategoryPlumbing, vo.PriorityNormal, vo.StatusPending,
		"t", "d", "", nil, nil, nil, nil, nil,
		10, 20, 30, &id, 1, now, now,
	)
	require.NoError(t, err)
	require.Error(t, tk.Validate())
}
