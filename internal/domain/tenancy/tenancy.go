// Package tenancy exposes the read side of the residency data the ticket
// workflow depends on: who lives where. Tickets reference tenants, units and
// properties by id; this package never mutates them.
package tenancy

import "time"

// Tenant is an active or ended residency of a user in a unit.
type Tenant struct {
	id        uint
	userID    uint
	unitID    uint
	status    string
	startDate time.Time
	endDate   *time.Time
}

func ReconstructTenant(id, userID, unitID uint, status string, startDate time.Time, endDate *time.Time) *Tenant {
	return &Tenant{
		id:        id,
		userID:    userID,
		unitID:    unitID,
		status:    status,
		startDate: startDate,
		endDate:   endDate,
	}
}

func (t *Tenant) ID() uint {
	return t.id
}

func (t *Tenant) UserID() uint {
	return t.userID
}

func (t *Tenant) UnitID() uint {
	return t.unitID
}

func (t *Tenant) Status() string {
	return t.status
}

func (t *Tenant) StartDate() time.Time {
	return t.startDate
}

func (t *Tenant) EndDate() *time.Time {
	return t.endDate
}

// Unit is a rentable unit within a property.
type Unit struct {
	id         uint
	propertyID uint
	unitNumber string
}

func ReconstructUnit(id, propertyID uint, unitNumber string) *Unit {
	return &Unit{id: id, propertyID: propertyID, unitNumber: unitNumber}
}

func (u *Unit) ID() uint {
	return u.id
}

func (u *Unit) PropertyID() uint {
	return u.propertyID
}

func (u *Unit) UnitNumber() string {
	return u.unitNumber
}

// Property is a managed building.
type Property struct {
	id      uint
	name    string
	address string
}

func ReconstructProperty(id uint, name, address string) *Property {
	return &Property{id: id, name: name, address: address}
}

func (p *Property) ID() uint {
	return p.id
}

func (p *Property) Name() string {
	return p.name
}

func (p *Property) Address() string {
	return p.address
}
