package ticket

import (
	"fmt"
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/biztime"
)

// AssignmentResolver decides whether a staff member may take a ticket and
// applies the assignment side effects. Both the dedicated assign endpoint and
// the general update path route re-assignments through here, so the coverage
// check cannot be bypassed.
type AssignmentResolver struct{}

func NewAssignmentResolver() AssignmentResolver {
	return AssignmentResolver{}
}

// CanAssign reports whether the staff member is eligible for tickets on the
// given property: active and covering that property.
func (AssignmentResolver) CanAssign(s *staff.Staff, propertyID uint) bool {
	if s == nil {
		return false
	}
	return s.IsActive() && s.CoversProperty(propertyID)
}

// Resolve performs the eligibility check, mutates the ticket's assignment and
// appends the audit note. The returned note must be persisted alongside the
// ticket. The error message is surfaced to callers as an invalid assignment.
func (r AssignmentResolver) Resolve(
	t *Ticket,
	s *staff.Staff,
	scheduledDate *time.Time,
	assignedBy authorization.Actor,
) (*Note, error) {
	if t == nil {
		return nil, fmt.Errorf("ticket is required")
	}
	if s == nil {
		return nil, fmt.Errorf("staff is required")
	}

	if !s.IsActive() {
		return nil, fmt.Errorf("staff %d is not active", s.ID())
	}
	if !s.CoversProperty(t.PropertyID()) {
		return nil, fmt.Errorf("staff %d does not cover property %d", s.ID(), t.PropertyID())
	}

	if err := t.Assign(s.ID(), scheduledDate); err != nil {
		return nil, err
	}

	text := fmt.Sprintf("Assigned to staff %d", s.ID())
	if scheduledDate != nil {
		text = fmt.Sprintf("%s, scheduled for %s", text, biztime.FormatRFC3339(*scheduledDate))
	}

	note, err := NewNote(t.ID(), assignedBy.UserID, assignedBy.Role, text)
	if err != nil {
		return nil, err
	}
	if err := t.AppendNote(note); err != nil {
		return nil, err
	}

	return note, nil
}
