package ticket

import (
	"context"

	vo "propflow/internal/domain/ticket/valueobjects"
)

type Repository interface {
	Save(ctx context.Context, t *Ticket) error
	// Update persists the aggregate with an optimistic concurrency check on
	// the version column; a stale version surfaces as a conflict.
	Update(ctx context.Context, t *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	FindByID(ctx context.Context, ticketID uint) (*Ticket, error)
	List(ctx context.Context, filter Filter) ([]*Ticket, int64, error)
	// CountAssignedToStaff counts all tickets referencing the staff member as
	// assignee, whatever their status.
	CountAssignedToStaff(ctx context.Context, staffID uint) (int64, error)

	SaveNote(ctx context.Context, note *Note) error
	FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*Note, error)
}

// Filter narrows ticket listings. Scope fields implement the role-based list
// restriction: TenantID limits to a reporter, StaffScope limits to tickets
// unassigned or assigned to that staff member within the given properties.
type Filter struct {
	Status     *vo.TicketStatus
	Priority   *vo.Priority
	Category   *vo.Category
	PropertyID *uint
	TenantID   *uint
	StaffScope *StaffScope
	Page       int
	Limit      int
}

// StaffScope restricts a listing to a maintenance staff member's view.
type StaffScope struct {
	StaffID     uint
	PropertyIDs []uint
}
