package inventory

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/inventory/usecases"
	"propflow/internal/interfaces/http/handlers/common"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
	"propflow/internal/shared/utils"
)

type InventoryHandler struct {
	createItemUC usecases.CreateItemExecutor
	getItemUC    usecases.GetItemExecutor
	listItemsUC  usecases.ListItemsExecutor
	updateItemUC usecases.UpdateItemExecutor
	deleteItemUC usecases.DeleteItemExecutor
	logger       logger.Interface
}

func NewInventoryHandler(
	createItemUC usecases.CreateItemExecutor,
	getItemUC usecases.GetItemExecutor,
	listItemsUC usecases.ListItemsExecutor,
	updateItemUC usecases.UpdateItemExecutor,
	deleteItemUC usecases.DeleteItemExecutor,
	log logger.Interface,
) *InventoryHandler {
	return &InventoryHandler{
		createItemUC: createItemUC,
		getItemUC:    getItemUC,
		listItemsUC:  listItemsUC,
		updateItemUC: updateItemUC,
		deleteItemUC: deleteItemUC,
		logger:       log,
	}
}

// CreateItem handles POST /inventory
func (h *InventoryHandler) CreateItem(c *gin.Context) {
	var req CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for create inventory item", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.createItemUC.Execute(c.Request.Context(), req.ToCommand(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.CreatedResponse(c, result, "Inventory item created successfully")
}

// GetItem handles GET /inventory/:id
func (h *InventoryHandler) GetItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	query := usecases.GetItemQuery{
		Actor:  common.ActorFromContext(c),
		ItemID: itemID,
	}

	result, err := h.getItemUC.Execute(c.Request.Context(), query)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "", result)
}

// ListItems handles GET /inventory
func (h *InventoryHandler) ListItems(c *gin.Context) {
	req, err := parseListItemsRequest(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	actor := common.ActorFromContext(c)
	result, err := h.listItemsUC.Execute(c.Request.Context(), req.ToQuery(actor))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.ListSuccessResponse(c, result.Items, result.Total, result.Page, result.Limit)
}

// UpdateItem handles PUT /inventory/:id
func (h *InventoryHandler) UpdateItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	var req UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for update inventory item", "error", err)
		utils.ErrorResponse(c, http.StatusBadRequest, "invalid request body")
		return
	}

	result, err := h.updateItemUC.Execute(c.Request.Context(), req.ToCommand(common.ActorFromContext(c), itemID))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Inventory item updated successfully", result)
}

// DeleteItem handles DELETE /inventory/:id
func (h *InventoryHandler) DeleteItem(c *gin.Context) {
	itemID, err := parseItemID(c)
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	cmd := usecases.DeleteItemCommand{
		Actor:  common.ActorFromContext(c),
		ItemID: itemID,
	}

	if _, err := h.deleteItemUC.Execute(c.Request.Context(), cmd); err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.NoContentResponse(c)
}

func parseItemID(c *gin.Context) (uint, error) {
	idStr := c.Param("id")
	id, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError("invalid inventory item ID")
	}
	return uint(id), nil
}
