package inventory

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	inventorydto "propflow/internal/application/inventory/dto"
	"propflow/internal/application/inventory/usecases"
	"propflow/internal/interfaces/http/handlers/testutil"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
)

type mockCreateItemUC struct {
	result  *usecases.CreateItemResult
	err     error
	lastCmd usecases.CreateItemCommand
}

func (m *mockCreateItemUC) Execute(_ context.Context, cmd usecases.CreateItemCommand) (*usecases.CreateItemResult, error) {
	m.lastCmd = cmd
	return m.result, m.err
}

type mockGetItemUC struct {
	result *inventorydto.ItemDTO
	err    error
}

func (m *mockGetItemUC) Execute(_ context.Context, _ usecases.GetItemQuery) (*inventorydto.ItemDTO, error) {
	return m.result, m.err
}

type mockListItemsUC struct {
	result    *usecases.ListItemsResult
	err       error
	lastQuery usecases.ListItemsQuery
}

func (m *mockListItemsUC) Execute(_ context.Context, query usecases.ListItemsQuery) (*usecases.ListItemsResult, error) {
	m.lastQuery = query
	return m.result, m.err
}

type mockUpdateItemUC struct {
	result *usecases.UpdateItemResult
	err    error
}

func (m *mockUpdateItemUC) Execute(_ context.Context, _ usecases.UpdateItemCommand) (*usecases.UpdateItemResult, error) {
	return m.result, m.err
}

type mockDeleteItemUC struct {
	result *usecases.DeleteItemResult
	err    error
}

func (m *mockDeleteItemUC) Execute(_ context.Context, _ usecases.DeleteItemCommand) (*usecases.DeleteItemResult, error) {
	return m.result, m.err
}

type testDeps struct {
	createItemUC usecases.CreateItemExecutor
	getItemUC    usecases.GetItemExecutor
	listItemsUC  usecases.ListItemsExecutor
	updateItemUC usecases.UpdateItemExecutor
	deleteItemUC usecases.DeleteItemExecutor
}

func newTestInventoryHandler(deps testDeps) *InventoryHandler {
	return NewInventoryHandler(
		deps.createItemUC,
		deps.getItemUC,
		deps.listItemsUC,
		deps.updateItemUC,
		deps.deleteItemUC,
		testutil.NewMockLogger(),
	)
}

func TestInventoryHandler_CreateItem_Success(t *testing.T) {
	mockUC := &mockCreateItemUC{
		result: &usecases.CreateItemResult{ItemID: 3, Name: "PVC pipe", CreatedAt: time.Now().UTC()},
	}
	handler := newTestInventoryHandler(testDeps{createItemUC: mockUC})

	reqBody := CreateItemRequest{
		Name:        "PVC pipe",
		Category:    "plumbing",
		Quantity:    40,
		Unit:        "piece",
		MinQuantity: 10,
		Cost:        3.5,
	}
	c, w := testutil.NewTestContext(http.MethodPost, "/inventory", reqBody)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.CreateItem(c)

	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, "PVC pipe", mockUC.lastCmd.Name)
	assert.Equal(t, 40, mockUC.lastCmd.Quantity)
}

func TestInventoryHandler_CreateItem_DuplicateName(t *testing.T) {
	mockUC := &mockCreateItemUC{err: errors.NewConflictError("an item with this name already exists")}
	handler := newTestInventoryHandler(testDeps{createItemUC: mockUC})

	reqBody := CreateItemRequest{Name: "PVC pipe", Category: "plumbing", Unit: "piece"}
	c, w := testutil.NewTestContext(http.MethodPost, "/inventory", reqBody)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)

	handler.CreateItem(c)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestInventoryHandler_ListItems_LowStockFilter(t *testing.T) {
	mockUC := &mockListItemsUC{
		result: &usecases.ListItemsResult{Items: []inventorydto.ItemDTO{}, Page: 1, Limit: 20},
	}
	handler := newTestInventoryHandler(testDeps{listItemsUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodGet, "/inventory", nil)
	testutil.SetAuthContext(c, 3, authorization.RoleMaintenance)
	testutil.SetQueryParams(c, map[string]string{"low_stock": "true"})

	handler.ListItems(c)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.True(t, mockUC.lastQuery.LowStock)
}

func TestInventoryHandler_UpdateItem_RestockConflictsWithQuantity(t *testing.T) {
	mockUC := &mockUpdateItemUC{err: errors.NewValidationError("quantity and restock amount cannot both be set")}
	handler := newTestInventoryHandler(testDeps{updateItemUC: mockUC})

	quantity := 5
	restock := 10
	reqBody := UpdateItemRequest{Quantity: &quantity, RestockAmount: &restock}
	c, w := testutil.NewTestContext(http.MethodPut, "/inventory/3", reqBody)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "3")

	handler.UpdateItem(c)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInventoryHandler_DeleteItem_Success(t *testing.T) {
	mockUC := &mockDeleteItemUC{result: &usecases.DeleteItemResult{ItemID: 3}}
	handler := newTestInventoryHandler(testDeps{deleteItemUC: mockUC})

	c, w := testutil.NewTestContext(http.MethodDelete, "/inventory/3", nil)
	testutil.SetAuthContext(c, 1, authorization.RoleAdmin)
	testutil.SetURLParam(c, "id", "3")

	handler.DeleteItem(c)
	c.Writer.WriteHeaderNow()

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.Bytes())
}
