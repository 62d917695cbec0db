package staff

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/staff/usecases"
	"propflow/internal/interfaces/http/handlers/common"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/utils"
)

type StaffHandler struct {
	createStaffUC usecases.CreateStaffExecutor
	getStaffUC    usecases.GetStaffExecutor
	listStaffUC   usecases.ListStaffExecutor
	updateStaffUC usecases.UpdateStaffExecutor
	deleteStaffUC usecases.DeleteStaffExecutor
	logger        logger.Interface
}

func NewStaffHandler(
	createStaffUC usecases.CreateStaffExecutor,
	getStaffUC usecases.GetStaffExecutor,
	listStaffUC usecases.ListStaffExecutor,
	updateStaffUC usecases.UpdateStaffExecutor,
	deleteStaffUC usecases.DeleteStaffExecutor,
	log logger.Interface,
) *StaffHandler {
	return &StaffHandler{
		createStaffUC: createStaffUC,
		getStaffUC:    getStaffUC,
		listStaffUC:   listStaffUC,
		updateStaffUC: updateStaffUC,
		deleteStaffUC: deleteStaffUC,
		logger:        log,
	}
}

// CreateStaff handles POST /staff
func (h *StaffHandler) CreateStaff(c *gin.Context) {
	var req CreateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create staff", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.createStaffUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Staff record created successfully")
}

// GetStaff handles GET /staff/:id
func (h *StaffHandler) GetStaff(c *gin.Context) {
	staffID, err := parseStaffID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetStaffQuery{
		Actor:   common.ActorFromContext(c),
		StaffID: staffID,
	}

	result, err := h.getStaffUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListStaff handles GET /staff
func (h *StaffHandler) ListStaff(c *gin.Context) {
	req, err := parseListStaffRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.listStaffUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Staff, result.Total, result.Page, result.Limit)
}

// UpdateStaff handles PUT /staff/:id
func (h *StaffHandler) UpdateStaff(c *gin.Context) {
	staffID, err := parseStaffID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update staff", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateStaffUC.Execute(c.Request.Context(), req.ToCommand(common.ActorFromContext(c), staffID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Staff record updated successfully", result)
}

// DeleteStaff handles DELETE /staff/:id
func (h *StaffHandler) DeleteStaff(c *gin.Context) {
	staffID, err := parseStaffID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteStaffCommand{
		Actor:   common.ActorFromContext(c),
		StaffID: staffID,
	}

	if _, err := h.deleteStaffUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseStaffID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid staff ID")
	}
	return uint(id), nil
}
