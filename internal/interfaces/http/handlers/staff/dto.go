package staff

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/staff/usecases"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
)

type CreateStaffRequest struct {
	UserID       uint            `json:"user_id" binding:"required"`
	PropertyIDs  []uint          `json:"property_ids" binding:"required,min=1"`
	Specialties  []string        `json:"specialties,omitempty" binding:"omitempty,dive,max=100"`
	Availability map[string]bool `json:"availability,omitempty"`
	WorkStart    string          `json:"work_start,omitempty"`
	WorkEnd      string          `json:"work_end,omitempty"`
}

func (r *CreateStaffRequest) ToCommand(actor authorization.Actor) usecases.CreateStaffCommand {
	return usecases.CreateStaffCommand{
		Actor:        actor,
		UserID:       r.UserID,
		PropertyIDs:  r.PropertyIDs,
		Specialties:  r.Specialties,
		Availability: r.Availability,
		WorkStart:    r.WorkStart,
		WorkEnd:      r.WorkEnd,
	}
}

type UpdateStaffRequest struct {
	PropertyIDs  []uint          `json:"property_ids,omitempty" binding:"omitempty,min=1"`
	Specialties  []string        `json:"specialties,omitempty" binding:"omitempty,dive,max=100"`
	Availability map[string]bool `json:"availability,omitempty"`
	WorkStart    *string         `json:"work_start"`
	WorkEnd      *string         `json:"work_end"`
	Active       *bool           `json:"active"`
}

func (r *UpdateStaffRequest) ToCommand(actor authorization.Actor, staffID uint) usecases.UpdateStaffCommand {
	return usecases.UpdateStaffCommand{
		Actor:        actor,
		StaffID:      staffID,
		PropertyIDs:  r.PropertyIDs,
		Specialties:  r.Specialties,
		Availability: r.Availability,
		WorkStart:    r.WorkStart,
		WorkEnd:      r.WorkEnd,
		Active:       r.Active,
	}
}

type ListStaffRequest struct {
	Page       int
	Limit      int
	PropertyID uint
	Active     *bool
}

func (r *ListStaffRequest) ToQuery(actor authorization.Actor) usecases.ListStaffQuery {
	return usecases.ListStaffQuery{
		Actor:      actor,
		PropertyID: r.PropertyID,
		Active:     r.Active,
		Page:       r.Page,
		Limit:      r.Limit,
	}
}

func parseListStaffRequest(c *gin.Context) (*ListStaffRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	req := &ListStaffRequest{
		Page:  page,
		Limit: limit,
	}

	if propertyIDStr := c.Query("property_id"); propertyIDStr != "" {
		propertyID, err := strconv.ParseUint(propertyIDStr, 10, 32)
		if err != nil {
			return nil, errors.NewValidationError("invalid property_id")
		}
		req.PropertyID = uint(propertyID)
	}

	if activeStr := c.Query("active"); activeStr != "" {
		active, err := strconv.ParseBool(activeStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid active flag")
		}
		req.Active = &active
	}

	return req, nil
}
