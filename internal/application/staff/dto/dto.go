package dto

import (
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/shared/mapper"
)

type StaffDTO struct {
	ID           uint            `json:"id"`
	UserID       uint            `json:"user_id"`
	PropertyIDs  []uint          `json:"property_ids"`
	Specialties  []string        `json:"specialties"`
	Availability map[string]bool `json:"availability"`
	WorkStart    string          `json:"work_start,omitempty"`
	WorkEnd      string          `json:"work_end,omitempty"`
	Active       bool            `json:"active"`
	CreatedAt    time.Time       `json:"created_at"`
	UpdatedAt    time.Time       `json:"updated_at"`
}

func ToStaffDTO(s *staff.Staff) *StaffDTO {
	if s == nil {
		return nil
	}

	availability := make(map[string]bool, len(s.AvailabilityByDay()))
	for day, available := range s.AvailabilityByDay() {
		availability[day.String()] = available
	}

	return &StaffDTO{
		ID:           s.ID(),
		UserID:       s.UserID(),
		PropertyIDs:  s.PropertyIDs(),
		Specialties:  s.Specialties(),
		Availability: availability,
		WorkStart:    s.WorkStart(),
		WorkEnd:      s.WorkEnd(),
		Active:       s.IsActive(),
		CreatedAt:    s.CreatedAt(),
		UpdatedAt:    s.UpdatedAt(),
	}
}

func ToStaffDTOs(members []*staff.Staff) []StaffDTO {
	return mapper.MapSlice(members, func(s *staff.Staff) StaffDTO {
		return *ToStaffDTO(s)
	})
}

// ParseAvailability converts weekday names to the domain availability map.
// Unknown day names are rejected by the caller via the ok flag.
func ParseAvailability(in map[string]bool) (staff.Availability, bool) {
	if in == nil {
		return nil, true
	}

	days := map[string]time.Weekday{
		"Sunday":    time.Sunday,
		"Monday":    time.Monday,
		"Tuesday":   time.Tuesday,
		"Wednesday": time.Wednesday,
		"Thursday":  time.Thursday,
		"Friday":    time.Friday,
		"Saturday":  time.Saturday,
	}

	availability := make(staff.Availability, len(in))
	for name, available := range in {
		day, ok := days[name]
		if !ok {
			return nil, false
		}
		availability[day] = available
	}
	return availability, true
}
