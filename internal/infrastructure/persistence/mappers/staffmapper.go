package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/infrastructure/persistence/models"
)

// StaffMapper handles the conversion between Staff domain entities and persistence models.
type StaffMapper interface {
	ToModel(s *staff.Staff) *models.StaffModel
	ToDomain(model *models.StaffModel) (*staff.Staff, error)
}

type StaffMapperImpl struct{}

func NewStaffMapper() StaffMapper {
	return &StaffMapperImpl{}
}

func (m *StaffMapperImpl) ToModel(s *staff.Staff) *models.StaffModel {
	model := &models.StaffModel{
		ID:        s.ID(),
		UserID:    s.UserID(),
		WorkStart: s.WorkStart(),
		WorkEnd:   s.WorkEnd(),
		Active:    s.IsActive(),
		Version:   s.Version(),
		CreatedAt: s.CreatedAt().UnixMilli(),
		UpdatedAt: s.UpdatedAt().UnixMilli(),
	}

	if len(s.PropertyIDs()) > 0 {
		idsJSON, _ := json.Marshal(s.PropertyIDs())
		model.PropertyIDs = string(idsJSON)
	}

	if len(s.Specialties()) > 0 {
		specialtiesJSON, _ := json.Marshal(s.Specialties())
		model.Specialties = string(specialtiesJSON)
	}

	if len(s.AvailabilityByDay()) > 0 {
		availabilityJSON, _ := json.Marshal(s.AvailabilityByDay())
		model.Availability = string(availabilityJSON)
	}

	return model
}

func (m *StaffMapperImpl) ToDomain(model *models.StaffModel) (*staff.Staff, error) {
	var propertyIDs []uint
	if model.PropertyIDs != "" {
		if err := json.Unmarshal([]byte(model.PropertyIDs), &propertyIDs); err != nil {
			return nil, fmt.Errorf("failed to unmarshal staff property IDs (id=%d): %w", model.ID, err)
		}
	}

	var specialties []string
	if model.Specialties != "" {
		if err := json.Unmarshal([]byte(model.Specialties), &specialties); err != nil {
			return nil, fmt.Errorf("failed to unmarshal staff specialties (id=%d): %w", model.ID, err)
		}
	}

	var availability staff.Availability
	if model.Availability != "" {
		if err := json.Unmarshal([]byte(model.Availability), &availability); err != nil {
			return nil, fmt.Errorf("failed to unmarshal staff availability (id=%d): %w", model.ID, err)
		}
	}

	return staff.ReconstructStaff(
		model.ID,
		model.UserID,
		propertyIDs,
		specialties,
		availability,
		model.WorkStart,
		model.WorkEnd,
		model.Active,
		model.Version,
		staffConvertMillisToTime(model.CreatedAt),
		staffConvertMillisToTime(model.UpdatedAt),
	)
}

func staffConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
