package ticket

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/ticket/usecases"
	"propflow/internal/interfaces/http/handlers/common"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/utils"
)

type TicketHandler struct {
	createTicketUC    usecases.CreateTicketExecutor
	getTicketUC       usecases.GetTicketExecutor
	listTicketsUC     usecases.ListTicketsExecutor
	updateTicketUC    usecases.UpdateTicketExecutor
	assignTicketUC    usecases.AssignTicketExecutor
	addNoteUC         usecases.AddNoteExecutor
	addImageUC        usecases.AddImageExecutor
	recordMaterialsUC usecases.RecordMaterialsExecutor
	completeTicketUC  usecases.CompleteTicketExecutor
	cancelTicketUC    usecases.CancelTicketExecutor
	deleteTicketUC    usecases.DeleteTicketExecutor
	logger            logger.Interface
}

func NewTicketHandler(
	createTicketUC usecases.CreateTicketExecutor,
	getTicketUC usecases.GetTicketExecutor,
	listTicketsUC usecases.ListTicketsExecutor,
	updateTicketUC usecases.UpdateTicketExecutor,
	assignTicketUC usecases.AssignTicketExecutor,
	addNoteUC usecases.AddNoteExecutor,
	addImageUC usecases.AddImageExecutor,
	recordMaterialsUC usecases.RecordMaterialsExecutor,
	completeTicketUC usecases.CompleteTicketExecutor,
	cancelTicketUC usecases.CancelTicketExecutor,
	deleteTicketUC usecases.DeleteTicketExecutor,
	log logger.Interface,
) *TicketHandler {
	return &TicketHandler{
		createTicketUC:    createTicketUC,
		getTicketUC:       getTicketUC,
		listTicketsUC:     listTicketsUC,
		updateTicketUC:    updateTicketUC,
		assignTicketUC:    assignTicketUC,
		addNoteUC:         addNoteUC,
		addImageUC:        addImageUC,
		recordMaterialsUC: recordMaterialsUC,
		completeTicketUC:  completeTicketUC,
		cancelTicketUC:    cancelTicketUC,
		deleteTicketUC:    deleteTicketUC,
		logger:            log,
	}
}

// CreateTicket handles POST /tickets
func (h *TicketHandler) CreateTicket(c *gin.Context) {
	var req CreateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.createTicketUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Ticket created successfully")
}

// GetTicket handles GET /tickets/:id
func (h *TicketHandler) GetTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetTicketQuery{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
	}

	result, err := h.getTicketUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListTickets handles GET /tickets
func (h *TicketHandler) ListTickets(c *gin.Context) {
	req, err := parseListTicketsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.listTicketsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Tickets, result.Total, result.Page, result.Limit)
}

// UpdateTicket handles PUT /tickets/:id
func (h *TicketHandler) UpdateTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update ticket", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd, err := req.ToCommand(common.ActorFromContext(c), ticketID)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.updateTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket updated successfully", result)
}

// AssignTicket handles POST /tickets/:id/assign
func (h *TicketHandler) AssignTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AssignTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AssignTicketCommand{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
		StaffID:  req.StaffID,
	}
	if req.ScheduledDate != nil {
		scheduled, err := parseScheduledDate(*req.ScheduledDate)
		if err != nil {
			utils.ErrorResponseWithError(c, err)
			return
		}
		cmd.ScheduledDate = &scheduled
	}

	result, err := h.assignTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket assigned successfully", result)
}

// AddNote handles POST /tickets/:id/notes
func (h *TicketHandler) AddNote(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AddNoteCommand{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
		Text:     req.Text,
	}

	result, err := h.addNoteUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Note added successfully")
}

// AddImage handles POST /tickets/:id/images
func (h *TicketHandler) AddImage(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req AddImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.AddImageCommand{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
		ImageURL: req.URL,
	}

	result, err := h.addImageUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Image added successfully")
}

// RecordMaterials handles POST /tickets/:id/materials
func (h *TicketHandler) RecordMaterials(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req RecordMaterialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.RecordMaterialsCommand{
		Actor:            common.ActorFromContext(c),
		TicketID:         ticketID,
		Materials:        toMaterialInputs(req.Materials),
		TimeSpentMinutes: req.TimeSpentMinutes,
	}

	result, err := h.recordMaterialsUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Materials recorded successfully", result)
}

// CompleteTicket handles POST /tickets/:id/complete
func (h *TicketHandler) CompleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CompleteTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CompleteTicketCommand{
		Actor:            common.ActorFromContext(c),
		TicketID:         ticketID,
		Materials:        toMaterialInputs(req.Materials),
		TimeSpentMinutes: req.TimeSpentMinutes,
		Note:             req.Note,
	}

	result, err := h.completeTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket completed successfully", result)
}

// CancelTicket handles POST /tickets/:id/cancel
func (h *TicketHandler) CancelTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req CancelTicketRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	cmd := usecases.CancelTicketCommand{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
		Reason:   req.Reason,
	}

	result, err := h.cancelTicketUC.Execute(c.Request.Context(), cmd)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Ticket cancelled successfully", result)
}

// DeleteTicket handles DELETE /tickets/:id
func (h *TicketHandler) DeleteTicket(c *gin.Context) {
	ticketID, err := parseTicketID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteTicketCommand{
		Actor:    common.ActorFromContext(c),
		TicketID: ticketID,
	}

	if _, err := h.deleteTicketUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseTicketID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid ticket ID")
	}
	return uint(id), nil
}
