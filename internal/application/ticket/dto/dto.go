package dto

import (
	"time"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/mapper"
)

type MaterialUsageDTO struct {
	ItemName string `json:"item_name"`
	Quantity int    `json:"quantity"`
}

type NoteDTO struct {
	ID         uint      `json:"id"`
	AuthorID   uint      `json:"author_id"`
	AuthorRole string    `json:"author_role"`
	Text       string    `json:"text"`
	CreatedAt  time.Time `json:"created_at"`
}

type TicketDTO struct {
	ID                 uint               `json:"id"`
	Category           string             `json:"category"`
	Priority           string             `json:"priority"`
	Status             string             `json:"status"`
	Title              string             `json:"title"`
	Description        string             `json:"description"`
	AccessInstructions string             `json:"access_instructions,omitempty"`
	Images             []string           `json:"images"`
	MaterialsUsed      []MaterialUsageDTO `json:"materials_used"`
	TimeSpentMinutes   *int               `json:"time_spent_minutes"`
	ScheduledDate      *time.Time         `json:"scheduled_date"`
	CompletedDate      *time.Time         `json:"completed_date"`
	TenantID           uint               `json:"tenant_id"`
	UnitID             uint               `json:"unit_id"`
	PropertyID         uint               `json:"property_id"`
	AssignedStaffID    *uint              `json:"assigned_staff_id"`
	Notes              []NoteDTO          `json:"notes"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`
}

// StaffSummaryDTO is the read-side view of the assigned staff member.
type StaffSummaryDTO struct {
	StaffID     uint     `json:"staff_id"`
	UserID      uint     `json:"user_id"`
	PropertyIDs []uint   `json:"property_ids"`
	Specialties []string `json:"specialties,omitempty"`
	Active      bool     `json:"active"`
}

// TicketDetailDTO is the composed detail view: the ticket plus the resolved
// tenant, unit, property and assigned staff references.
type TicketDetailDTO struct {
	TicketDTO
	TenantUserID    uint             `json:"tenant_user_id,omitempty"`
	UnitNumber      string           `json:"unit_number,omitempty"`
	PropertyName    string           `json:"property_name,omitempty"`
	PropertyAddress string           `json:"property_address,omitempty"`
	AssignedStaff   *StaffSummaryDTO `json:"assigned_staff,omitempty"`
}

type TicketListItemDTO struct {
	ID              uint    `json:"id"`
	Title           string  `json:"title"`
	Status          string  `json:"status"`
	Priority        string  `json:"priority"`
	Category        string  `json:"category"`
	TenantID        uint    `json:"tenant_id"`
	UnitID          uint    `json:"unit_id"`
	PropertyID      uint    `json:"property_id"`
	AssignedStaffID *uint   `json:"assigned_staff_id"`
	ScheduledDate   *string `json:"scheduled_date"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

func ToTicketDTO(t *ticket.Ticket, notes []*ticket.Note) *TicketDTO {
	if t == nil {
		return nil
	}

	materials := make([]MaterialUsageDTO, 0, len(t.MaterialsUsed()))
	for _, m := range t.MaterialsUsed() {
		materials = append(materials, MaterialUsageDTO{ItemName: m.ItemName, Quantity: m.Quantity})
	}

	noteDTOs := make([]NoteDTO, 0, len(notes))
	for _, n := range notes {
		noteDTOs = append(noteDTOs, ToNoteDTO(n))
	}

	return &TicketDTO{
		ID:                 t.ID(),
		Category:           t.Category().String(),
		Priority:           t.Priority().String(),
		Status:             t.Status().String(),
		Title:              t.Title(),
		Description:        t.Description(),
		AccessInstructions: t.AccessInstructions(),
		Images:             t.Images(),
		MaterialsUsed:      materials,
		TimeSpentMinutes:   t.TimeSpentMinutes(),
		ScheduledDate:      t.ScheduledDate(),
		CompletedDate:      t.CompletedDate(),
		TenantID:           t.TenantID(),
		UnitID:             t.UnitID(),
		PropertyID:         t.PropertyID(),
		AssignedStaffID:    t.AssignedStaffID(),
		Notes:              noteDTOs,
		CreatedAt:          t.CreatedAt(),
		UpdatedAt:          t.UpdatedAt(),
	}
}

func ToNoteDTO(n *ticket.Note) NoteDTO {
	return NoteDTO{
		ID:         n.ID(),
		AuthorID:   n.AuthorID(),
		AuthorRole: n.AuthorRole().String(),
		Text:       n.Text(),
		CreatedAt:  n.CreatedAt(),
	}
}

// ToTicketDetailDTO composes the ticket with its resolved tenant, unit,
// property and assigned staff. Any reference may be nil when the read side
// cannot resolve it; the ticket's own fields are still returned.
func ToTicketDetailDTO(
	t *ticket.Ticket,
	notes []*ticket.Note,
	tenant *tenancy.Tenant,
	unit *tenancy.Unit,
	property *tenancy.Property,
	assignee *staff.Staff,
) *TicketDetailDTO {
	base := ToTicketDTO(t, notes)
	if base == nil {
		return nil
	}

	detail := &TicketDetailDTO{TicketDTO: *base}
	if tenant != nil {
		detail.TenantUserID = tenant.UserID()
	}
	if unit != nil {
		detail.UnitNumber = unit.UnitNumber()
	}
	if property != nil {
		detail.PropertyName = property.Name()
		detail.PropertyAddress = property.Address()
	}
	if assignee != nil {
		detail.AssignedStaff = &StaffSummaryDTO{
			StaffID:     assignee.ID(),
			UserID:      assignee.UserID(),
			PropertyIDs: assignee.PropertyIDs(),
			Specialties: assignee.Specialties(),
			Active:      assignee.IsActive(),
		}
	}
	return detail
}

func ToTicketListItemDTO(t *ticket.Ticket) TicketListItemDTO {
	item := TicketListItemDTO{
		ID:              t.ID(),
		Title:           t.Title(),
		Status:          t.Status().String(),
		Priority:        t.Priority().String(),
		Category:        t.Category().String(),
		TenantID:        t.TenantID(),
		UnitID:          t.UnitID(),
		PropertyID:      t.PropertyID(),
		AssignedStaffID: t.AssignedStaffID(),
		CreatedAt:       t.CreatedAt().Format(time.RFC3339),
		UpdatedAt:       t.UpdatedAt().Format(time.RFC3339),
	}

	if t.ScheduledDate() != nil {
		scheduled := t.ScheduledDate().Format(time.RFC3339)
		item.ScheduledDate = &scheduled
	}

	return item
}

func ToTicketListItemDTOs(tickets []*ticket.Ticket) []TicketListItemDTO {
	return mapper.MapSlice(tickets, ToTicketListItemDTO)
}
