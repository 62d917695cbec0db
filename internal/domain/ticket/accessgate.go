package ticket

import (
	"propflow/internal/domain/staff"
	"propflow/internal/shared/authorization"
)

// ActorScope carries the records needed to evaluate role-scoped access:
// the staff record for maintenance actors and the tenant record id for
// tenant actors. Admin actors need neither.
type ActorScope struct {
	Staff    *staff.Staff
	TenantID uint
}

// AccessGate evaluates role-based access to individual tickets. A deny is
// surfaced to callers as Forbidden, never downgraded to a partial view.
//
// Rules:
//   - admin: unrestricted
//   - maintenance: tickets unassigned or assigned to self, within covered
//     properties; no delete or cancel
//   - tenant: only tickets they reported; no assign, complete or delete
type AccessGate struct{}

func NewAccessGate() AccessGate {
	return AccessGate{}
}

// CanView reports whether the actor may read the ticket.
func (AccessGate) CanView(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsMaintenance():
		return maintenanceInScope(scope.Staff, t)
	case actor.IsTenant():
		return scope.TenantID != 0 && t.TenantID() == scope.TenantID
	default:
		return false
	}
}

// CanUpdate reports whether the actor may apply a general field update.
func (AccessGate) CanUpdate(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	switch {
	case actor.IsAdmin():
		return true
	case actor.IsMaintenance():
		return maintenanceInScope(scope.Staff, t)
	default:
		return false
	}
}

// CanAddNote mirrors view access: anyone who can see the ticket may comment.
func (g AccessGate) CanAddNote(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	return g.CanView(actor, scope, t)
}

// CanAddImage restricts image uploads to the reporting tenant.
func (AccessGate) CanAddImage(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	return actor.IsTenant() && scope.TenantID != 0 && t.TenantID() == scope.TenantID
}

// CanRecordMaterials allows admins and in-scope maintenance staff to record
// consumed inventory.
func (g AccessGate) CanRecordMaterials(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	return g.CanUpdate(actor, scope, t)
}

// CanComplete allows admins, or the maintenance staff member currently
// assigned to the ticket.
func (AccessGate) CanComplete(actor authorization.Actor, scope ActorScope, t *Ticket) bool {
	if actor.IsAdmin() {
		return true
	}
	if !actor.IsMaintenance() || scope.Staff == nil {
		return false
	}
	assigned := t.AssignedStaffID()
	return assigned != nil && *assigned == scope.Staff.ID()
}

// CanCancel is admin-only.
func (AccessGate) CanCancel(actor authorization.Actor) bool {
	return actor.IsAdmin()
}

// CanDelete is admin-only.
func (AccessGate) CanDelete(actor authorization.Actor) bool {
	return actor.IsAdmin()
}

// CanCreate restricts ticket creation to tenants.
func (AccessGate) CanCreate(actor authorization.Actor) bool {
	return actor.IsTenant()
}

// maintenanceInScope checks the coverage and assignment constraints for a
// maintenance actor: the ticket's property must be covered, and the ticket
// must be unassigned or assigned to this staff member.
func maintenanceInScope(s *staff.Staff, t *Ticket) bool {
	if s == nil {
		return false
	}
	if !s.CoversProperty(t.PropertyID()) {
		return false
	}
	assigned := t.AssignedStaffID()
	return assigned == nil || *assigned == s.ID()
}
