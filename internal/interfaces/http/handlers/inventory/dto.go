package inventory

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"propflow/internal/application/inventory/usecases"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
)

type CreateItemRequest struct {
	Name        string  `json:"name" binding:"required,max=200"`
	Category    string  `json:"category" binding:"required,max=100"`
	Quantity    int     `json:"quantity" binding:"gte=0"`
	Unit        string  `json:"unit" binding:"required,max=50"`
	MinQuantity int     `json:"min_quantity" binding:"gte=0"`
	Cost        float64 `json:"cost" binding:"gte=0"`
	Supplier    string  `json:"supplier,omitempty" binding:"max=200"`
	Location    string  `json:"location,omitempty" binding:"max=200"`
}

func (r *CreateItemRequest) ToCommand(actor authorization.Actor) usecases.CreateItemCommand {
	return usecases.CreateItemCommand{
		Actor:       actor,
		Name:        r.Name,
		Category:    r.Category,
		Quantity:    r.Quantity,
		Unit:        r.Unit,
		MinQuantity: r.MinQuantity,
		Cost:        r.Cost,
		Supplier:    r.Supplier,
		Location:    r.Location,
	}
}

type UpdateItemRequest struct {
	Category    *string  `json:"category" binding:"omitempty,max=100"`
	Quantity    *int     `json:"quantity" binding:"omitempty,gte=0"`
	Unit        *string  `json:"unit" binding:"omitempty,max=50"`
	MinQuantity *int     `json:"min_quantity" binding:"omitempty,gte=0"`
	Cost        *float64 `json:"cost" binding:"omitempty,gte=0"`
	Supplier    *string  `json:"supplier" binding:"omitempty,max=200"`
	Location    *string  `json:"location" binding:"omitempty,max=200"`
	// RestockAmount adds to the current quantity instead of replacing it.
	RestockAmount *int `json:"restock_amount" binding:"omitempty,gt=0"`
}

func (r *UpdateItemRequest) ToCommand(actor authorization.Actor, itemID uint) usecases.UpdateItemCommand {
	return usecases.UpdateItemCommand{
		Actor:         actor,
		ItemID:        itemID,
		Category:      r.Category,
		Quantity:      r.Quantity,
		Unit:          r.Unit,
		MinQuantity:   r.MinQuantity,
		Cost:          r.Cost,
		Supplier:      r.Supplier,
		Location:      r.Location,
		RestockAmount: r.RestockAmount,
	}
}

type ListItemsRequest struct {
	Page     int
	Limit    int
	Category string
	LowStock bool
}

func (r *ListItemsRequest) ToQuery(actor authorization.Actor) usecases.ListItemsQuery {
	return usecases.ListItemsQuery{
		Actor:    actor,
		Category: r.Category,
		LowStock: r.LowStock,
		Page:     r.Page,
		Limit:    r.Limit,
	}
}

func parseListItemsRequest(c *gin.Context) (*ListItemsRequest, error) {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page < 1 {
		page = 1
	}

	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	if limit < 1 || limit > 100 {
		limit = 20
	}

	req := &ListItemsRequest{
		Page:     page,
		Limit:    limit,
		Category: c.Query("category"),
	}

	if lowStockStr := c.Query("low_stock"); lowStockStr != "" {
		lowStock, err := strconv.ParseBool(lowStockStr)
		if err != nil {
			return nil, errors.NewValidationError("invalid low_stock flag")
		}
		req.LowStock = lowStock
	}

	return req, nil
}
