package ticket

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/ticket/usecases"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/biztime"
	"propflow/internal/shared/errors"
)

type CreateTicketRequest struct {
	Category           string   `json:"category" binding:"required,ticket_category"`
	Title              string   `json:"title" binding:"required,max=200"`
	Description        string   `json:"description" binding:"required,max=5000"`
	Priority           string   `json:"priority" binding:"required,ticket_priority"`
	AccessInstructions string   `json:"access_instructions" binding:"max=2000"`
	Images             []string `json:"images,omitempty" binding:"omitempty,dive,url,max=500"`
}

func (r *CreateTicketRequest) ToCommand(actor authorization.Actor) usecases.CreateTicketCommand {
	return usecases.CreateTicketCommand{
		Actor:              actor,
		Category:           r.Category,
		Priority:           r.Priority,
		Title:              r.Title,
		Description:        r.Description,
		AccessInstructions: r.AccessInstructions,
		Images:             r.Images,
	}
}

type UpdateTicketRequest struct {
	Category           *string `json:"category" binding:"omitempty,ticket_category"`
	Priority           *string `json:"priority" binding:"omitempty,ticket_priority"`
	Title              *string `json:"title" binding:"omitempty,max=200"`
	Description        *string `json:"description" binding:"omitempty,max=5000"`
	AccessInstructions *string `json:"access_instructions" binding:"omitempty,max=2000"`
	Status             *string `json:"status" binding:"omitempty,ticket_status"`
	AssignedStaffID    *uint   `json:"assigned_staff_id"`
	ScheduledDate      *string `json:"scheduled_date"`
	TimeSpentMinutes   *int    `json:"time_spent_minutes" binding:"omitempty,gte=0"`
}

func (r *UpdateTicketRequest) ToCommand(actor authorization.Actor, ticketID uint) (usecases.UpdateTicketCommand, error) {
	cmd := usecases.UpdateTicketCommand{
		Actor:              actor,
		TicketID:           ticketID,
		Category:           r.Category,
		Priority:           r.Priority,
		Title:              r.Title,
		Description:        r.Description,
		AccessInstructions: r.AccessInstructions,
		Status:             r.Status,
		AssignedStaffID:    r.AssignedStaffID,
		TimeSpentMinutes:   r.TimeSpentMinutes,
	}

	if r.ScheduledDate != nil {
		scheduled, err := parseScheduledDate(*r.ScheduledDate)
		if err != nil {
			return cmd, err
		}
		cmd.ScheduledDate = &scheduled
	}
	return cmd, nil
}

type AssignTicketRequest struct {
	StaffID       uint    `json:"staff_id" binding:"required"`
	ScheduledDate *string `json:"scheduled_date"`
}

type AddNoteRequest struct {
	Text string `json:"text" binding:"required,max=10000"`
}

type AddImageRequest struct {
	URL string `json:"url" binding:"required,url,max=500"`
}

type MaterialEntry struct {
	Name     string `json:"name" binding:"required,max=200"`
	Quantity int    `json:"quantity" binding:"required,gt=0"`
}

type RecordMaterialsRequest struct {
	Materials        []MaterialEntry `json:"materials" binding:"required,dive"`
	TimeSpentMinutes *int            `json:"time_spent_minutes" binding:"omitempty,gte=0"`
}

type CompleteTicketRequest struct {
	Materials        []MaterialEntry `json:"materials,omitempty" binding:"omitempty,dive"`
	TimeSpentMinutes *int            `json:"time_spent_minutes" binding:"omitempty,gte=0"`
	Note             string          `json:"note" binding:"omitempty,max=10000"`
}

type CancelTicketRequest struct {
	Reason string `json:"reason" binding:"required,max=500"`
}

func toMaterialInputs(entries []MaterialEntry) []usecases.MaterialInput {
	if len(entries) == 0 {
		return nil
	}
	materials := make([]usecases.MaterialInput, 0, len(entries))
	for _, e := range entries {
		materials = append(materials, usecases.MaterialInput{
			ItemName: e.Name,
			Quantity: e.Quantity,
		})
	}
	return materials
}

type ListTicketsRequest struct {
	Page       int
	Limit      int
	Status     string
	Priority   string
	Category   string
	PropertyID uint
}

func (r *ListTicketsRequest) ToQuery(actor authorization.Actor) usecases.ListTicketsQuery {
	return usecases.ListTicketsQuery{
		Actor:      actor,
		Status:     r.Status,
		Priority:   r.Priority,
		Category:   r.Category,
		PropertyID: r.PropertyID,
		Page:       r.Page,
		Limit:      r.Limit,
	}
}

func parseListTicketsRequest(c *gin.Context) (*ListTicketsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	req := &ListTicketsRequest{
		Page:     page,
		Limit:    limit,
		Status:   c.Query("status"),
		Priority: c.Query("priority"),
		Category: c.Query("category"),
	}

	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := strconv.ParseUint(propertyIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid property_id")
		}
		req.PropertyID = uint(propertyID)
	}

	return req, nil
}

// parseScheduledDate accepts a bare date or a full RFC3339 timestamp.
func parseScheduledDate(value string) (time.Time, error) {
	if t, err := biztime.ParseDateUTC(value); err == nil {
		return t, nil
	}
	t, err := time.Parse(time.RFC3339, value)
	if err != nil {
		return time.Time{}, errors.NewValidationError("invalid scheduled_date, expected YYYY-MM-DD or RFC3339")
	}
	return biztime.ToUTC(t), nil
}
