// Package staff holds the maintenance staff aggregate. A staff record wraps
// a user with role "maintenance" and carries the operational attributes used
// by ticket assignment: property coverage, specialties, weekly availability
// and working hours.
package staff

import (
	"fmt"
	"time"

	"propflow/internal/shared/biztime"
)

// Availability marks the weekdays a staff member can be scheduled on.
// Keys are time.Weekday values.
type Availability map[time.Weekday]bool

// Staff is the maintenance staff aggregate root.
type Staff struct {
	id            uint
	userID        uint
	propertyIDs   []uint
	specialties   []string
	availability  Availability
	workStart     string
	workEnd       string
	active        bool
	version       int
	loadedVersion int
	createdAt     time.Time
	updatedAt     time.Time
}

func NewStaff(
	userID uint,
	propertyIDs []uint,
	specialties []string,
	availability Availability,
	workStart, workEnd string,
) (*Staff, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if err := validateWorkingHours(workStart, workEnd); err != nil {
		return nil, err
	}

	if propertyIDs == nil {
		propertyIDs = []uint{}
	}
	if specialties == nil {
		specialties = []string{}
	}
	if availability == nil {
		availability = Availability{}
	}

	now := biztime.NowUTC()
	return &Staff{
		userID:       userID,
		propertyIDs:  propertyIDs,
		specialties:  specialties,
		availability: availability,
		workStart:    workStart,
		workEnd:      workEnd,
		active:       true,
		version:      1,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructStaff(
	id uint,
	userID uint,
	propertyIDs []uint,
	specialties []string,
	availability Availability,
	workStart, workEnd string,
	active bool,
	version int,
	createdAt, updatedAt time.Time,
) (*Staff, error) {
	if id == 0 {
		return nil, fmt.Errorf("staff ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	if propertyIDs == nil {
		propertyIDs = []uint{}
	}
	if specialties == nil {
		specialties = []string{}
	}
	if availability == nil {
		availability = Availability{}
	}

	return &Staff{
		id:            id,
		userID:        userID,
		propertyIDs:   propertyIDs,
		specialties:   specialties,
		availability:  availability,
		workStart:     workStart,
		workEnd:       workEnd,
		active:        active,
		version:       version,
		loadedVersion: version,
		createdAt:     createdAt,
		updatedAt:     updatedAt,
	}, nil
}

func (s *Staff) ID() uint {
	return s.id
}

func (s *Staff) UserID() uint {
	return s.userID
}

func (s *Staff) PropertyIDs() []uint {
	ids := make([]uint, len(s.propertyIDs))
	copy(ids, s.propertyIDs)
	return ids
}

func (s *Staff) Specialties() []string {
	specialties := make([]string, len(s.specialties))
	copy(specialties, s.specialties)
	return specialties
}

func (s *Staff) AvailabilityByDay() Availability {
	availability := make(Availability, len(s.availability))
	for day, available := range s.availability {
		availability[day] = available
	}
	return availability
}

func (s *Staff) WorkStart() string {
	return s.workStart
}

func (s *Staff) WorkEnd() string {
	return s.workEnd
}

func (s *Staff) IsActive() bool {
	return s.active
}

func (s *Staff) Version() int {
	return s.version
}

// LoadedVersion is the version of the row this aggregate was reconstructed
// from, used for the optimistic concurrency check on update.
func (s *Staff) LoadedVersion() int {
	return s.loadedVersion
}

func (s *Staff) CreatedAt() time.Time {
	return s.createdAt
}

func (s *Staff) UpdatedAt() time.Time {
	return s.updatedAt
}

func (s *Staff) SetID(id uint) error {
	if s.id != 0 {
		return fmt.Errorf("staff ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("staff ID cannot be zero")
	}
	s.id = id
	return nil
}

// CoversProperty reports whether the staff member services the property.
func (s *Staff) CoversProperty(propertyID uint) bool {
	for _, id := range s.propertyIDs {
		if id == propertyID {
			return true
		}
	}
	return false
}

// SetPropertyCoverage replaces the covered property set.
func (s *Staff) SetPropertyCoverage(propertyIDs []uint) {
	if propertyIDs == nil {
		propertyIDs = []uint{}
	}
	s.propertyIDs = propertyIDs
	s.touch()
}

// SetSpecialties replaces the specialty tags.
func (s *Staff) SetSpecialties(specialties []string) {
	if specialties == nil {
		specialties = []string{}
	}
	s.specialties = specialties
	s.touch()
}

// SetAvailability replaces the weekly availability map.
func (s *Staff) SetAvailability(availability Availability) {
	if availability == nil {
		availability = Availability{}
	}
	s.availability = availability
	s.touch()
}

// SetWorkingHours updates the daily working window.
func (s *Staff) SetWorkingHours(start, end string) error {
	if err := validateWorkingHours(start, end); err != nil {
		return err
	}
	s.workStart = start
	s.workEnd = end
	s.touch()
	return nil
}

// Activate marks the staff member as assignable.
func (s *Staff) Activate() {
	s.active = true
	s.touch()
}

// Deactivate removes the staff member from the assignable pool. Existing
// assignments are untouched.
func (s *Staff) Deactivate() {
	s.active = false
	s.touch()
}

func (s *Staff) touch() {
	s.updatedAt = biztime.NowUTC()
	s.version++
}

func validateWorkingHours(start, end string) error {
	if (start == "") != (end == "") {
		return fmt.Errorf("working hours require both start and end")
	}
	if start == "" {
		return nil
	}
	startT, err := time.Parse("15:04", start)
	if err != nil {
		return fmt.Errorf("invalid working hours start %q", start)
	}
	endT, err := time.Parse("15:04", end)
	if err != nil {
		return fmt.Errorf("invalid working hours end %q", end)
	}
	if !endT.After(startT) {
		return fmt.Errorf("working hours end must be after start")
	}
	return nil
}
