package mappers

import (
	"encoding/json"
	"fmt"
	"time"

	"propflow/internal/domain/ticket"
	vo "propflow/internal/domain/ticket/valueobjects"
	"propflow/internal/infrastructure/persistence/models"
	"propflow/internal/shared/authorization"
)

// TicketMapper handles the conversion between Ticket domain entities and persistence models.
type TicketMapper interface {
	// ToModel converts a ticket domain entity to a persistence model.
	ToModel(t *ticket.Ticket) *models.TicketModel

	// ToDomain converts a ticket persistence model to a domain entity.
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)

	// NoteToModel converts a note domain entity to a persistence model.
	NoteToModel(n *ticket.Note) *models.TicketNoteModel

	// NoteToDomain converts a note persistence model to a domain entity.
	NoteToDomain(model *models.TicketNoteModel) (*ticket.Note, error)
}

// TicketMapperImpl is the concrete implementation of TicketMapper.
type TicketMapperImpl struct{}

// NewTicketMapper creates a new TicketMapper.
func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

// ToModel converts a ticket domain entity to a persistence model.
func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	model := &models.TicketModel{
		ID:                 t.ID(),
		Category:           t.Category().String(),
		Title:              t.Title(),
		Description:        t.Description(),
		Priority:           t.Priority().String(),
		PriorityRank:       t.Priority().Rank(),
		Status:             t.Status().String(),
		AccessInstructions: t.AccessInstructions(),
		TimeSpentMinutes:   t.TimeSpentMinutes(),
		TenantID:           t.TenantID(),
		UnitID:             t.UnitID(),
		PropertyID:         t.PropertyID(),
		AssignedStaffID:    t.AssignedStaffID(),
		Version:            t.Version(),
		CreatedAt:          t.CreatedAt().UnixMilli(),
		UpdatedAt:          t.UpdatedAt().UnixMilli(),
	}

	if len(t.Images()) > 0 {
		imagesJSON, _ := json.Marshal(t.Images())
		model.Images = string(imagesJSON)
	}

	if len(t.MaterialsUsed()) > 0 {
		materialsJSON, _ := json.Marshal(t.MaterialsUsed())
		model.MaterialsUsed = string(materialsJSON)
	}

	if t.ScheduledDate() != nil {
		scheduled := t.ScheduledDate().UnixMilli()
		model.ScheduledDate = &scheduled
	}

	if t.CompletedDate() != nil {
		completed := t.CompletedDate().UnixMilli()
		model.CompletedDate = &completed
	}

	return model
}

// ToDomain converts a ticket persistence model to a domain entity.
// This method only converts the ticket fields. Notes must be loaded separately by the repository.
func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	category, _ := vo.NewCategory(model.Category)
	priority, _ := vo.NewPriority(model.Priority)
	status, _ := vo.NewTicketStatus(model.Status)

	var images []string
	if model.Images != "" {
		if err := json.Unmarshal([]byte(model.Images), &images); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket images (id=%d): %w", model.ID, err)
		}
	}

	var materials []ticket.MaterialUsage
	if model.MaterialsUsed != "" {
		if err := json.Unmarshal([]byte(model.MaterialsUsed), &materials); err != nil {
			return nil, fmt.Errorf("failed to unmarshal ticket materials (id=%d): %w", model.ID, err)
		}
	}

	createdAt := ticketConvertMillisToTime(model.CreatedAt)
	updatedAt := ticketConvertMillisToTime(model.UpdatedAt)

	var scheduledDate, completedDate *time.Time
	if model.ScheduledDate != nil {
		t := ticketConvertMillisToTime(*model.ScheduledDate)
		scheduledDate = &t
	}
	if model.CompletedDate != nil {
		t := ticketConvertMillisToTime(*model.CompletedDate)
		completedDate = &t
	}

	return ticket.ReconstructTicket(
		model.ID,
		category,
		priority,
		status,
		model.Title,
		model.Description,
		model.AccessInstructions,
		images,
		materials,
		model.TimeSpentMinutes,
		scheduledDate,
		completedDate,
		model.TenantID,
		model.UnitID,
		model.PropertyID,
		model.AssignedStaffID,
		model.Version,
		createdAt,
		updatedAt,
	)
}

// NoteToModel converts a note domain entity to a persistence model.
func (m *TicketMapperImpl) NoteToModel(n *ticket.Note) *models.TicketNoteModel {
	return &models.TicketNoteModel{
		ID:         n.ID(),
		TicketID:   n.TicketID(),
		AuthorID:   n.AuthorID(),
		AuthorRole: n.AuthorRole().String(),
		Text:       n.Text(),
		CreatedAt:  n.CreatedAt().UnixMilli(),
	}
}

// NoteToDomain converts a note persistence model to a domain entity.
func (m *TicketMapperImpl) NoteToDomain(model *models.TicketNoteModel) (*ticket.Note, error) {
	return ticket.ReconstructNote(
		model.ID,
		model.TicketID,
		model.AuthorID,
		authorization.UserRole(model.AuthorRole),
		model.Text,
		ticketConvertMillisToTime(model.CreatedAt),
	)
}

func ticketConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
