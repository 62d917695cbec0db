package usecases

import (
	"context"

	"propflow/internal/domain/inventory"
	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

type mockTicketRepository struct {
	SaveFunc                 func(ctx context.Context, t *ticket.Ticket) error
	UpdateFunc               func(ctx context.Context, t *ticket.Ticket) error
	DeleteFunc               func(ctx context.Context, ticketID uint) error
	FindByIDFunc             func(ctx context.Context, ticketID uint) (*ticket.Ticket, error)
	ListFunc                 func(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error)
	CountAssignedToStaffFunc func(ctx context.Context, staffID uint) (int64, error)
	SaveNoteFunc             func(ctx context.Context, note *ticket.Note) error
	FindNotesByTicketIDFunc  func(ctx context.Context, ticketID uint) ([]*ticket.Note, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, t)
	}
	return nil
}

func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, ticketID)
	}
	return nil
}

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, ticketID)
	}
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

func (m *mockTicketRepository) CountAssignedToStaff(ctx context.Context, staffID uint) (int64, error) {
	if m.CountAssignedToStaffFunc != nil {
		return m.CountAssignedToStaffFunc(ctx, staffID)
	}
	return 0, nil
}

func (m *mockTicketRepository) SaveNote(ctx context.Context, note *ticket.Note) error {
	if m.SaveNoteFunc != nil {
		return m.SaveNoteFunc(ctx, note)
	}
	return nil
}

func (m *mockTicketRepository) FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	if m.FindNotesByTicketIDFunc != nil {
		return m.FindNotesByTicketIDFunc(ctx, ticketID)
	}
	return nil, nil
}

type mockStaffRepository struct {
	SaveFunc         func(ctx context.Context, s *staff.Staff) error
	UpdateFunc       func(ctx context.Context, s *staff.Staff) error
	DeleteFunc       func(ctx context.Context, staffID uint) error
	FindByIDFunc     func(ctx context.Context, staffID uint) (*staff.Staff, error)
	FindByUserIDFunc func(ctx context.Context, userID uint) (*staff.Staff, error)
	ListFunc         func(ctx context.Context, filter staff.Filter) ([]*staff.Staff, int64, error)
}

func (m *mockStaffRepository) Save(ctx context.Context, s *staff.Staff) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, s)
	}
	return nil
}

func (m *mockStaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, s)
	}
	return nil
}

func (m *mockStaffRepository) Delete(ctx context.Context, staffID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, staffID)
	}
	return nil
}

func (m *mockStaffRepository) FindByID(ctx context.Context, staffID uint) (*staff.Staff, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, staffID)
	}
	return nil, errors.NewNotFoundError("staff not found")
}

func (m *mockStaffRepository) FindByUserID(ctx context.Context, userID uint) (*staff.Staff, error) {
	if m.FindByUserIDFunc != nil {
		return m.FindByUserIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("staff not found")
}

func (m *mockStaffRepository) List(ctx context.Context, filter staff.Filter) ([]*staff.Staff, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockTenancyRepository struct {
	FindActiveTenantByUserIDFunc func(ctx context.Context, userID uint) (*tenancy.Tenant, error)
	FindTenantByIDFunc           func(ctx context.Context, tenantID uint) (*tenancy.Tenant, error)
	FindUnitByIDFunc             func(ctx context.Context, unitID uint) (*tenancy.Unit, error)
	FindPropertyByIDFunc         func(ctx context.Context, propertyID uint) (*tenancy.Property, error)
}

func (m *mockTenancyRepository) FindActiveTenantByUserID(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
	if m.FindActiveTenantByUserIDFunc != nil {
		return m.FindActiveTenantByUserIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("no active tenancy")
}

func (m *mockTenancyRepository) FindTenantByID(ctx context.Context, tenantID uint) (*tenancy.Tenant, error) {
	if m.FindTenantByIDFunc != nil {
		return m.FindTenantByIDFunc(ctx, tenantID)
	}
	return nil, errors.NewNotFoundError("tenant not found")
}

func (m *mockTenancyRepository) FindUnitByID(ctx context.Context, unitID uint) (*tenancy.Unit, error) {
	if m.FindUnitByIDFunc != nil {
		return m.FindUnitByIDFunc(ctx, unitID)
	}
	return nil, errors.NewNotFoundError("unit not found")
}

func (m *mockTenancyRepository) FindPropertyByID(ctx context.Context, propertyID uint) (*tenancy.Property, error) {
	if m.FindPropertyByIDFunc != nil {
		return m.FindPropertyByIDFunc(ctx, propertyID)
	}
	return nil, errors.NewNotFoundError("property not found")
}

type mockInventoryRepository struct {
	SaveFunc       func(ctx context.Context, item *inventory.Item) error
	UpdateFunc     func(ctx context.Context, item *inventory.Item) error
	DeleteFunc     func(ctx context.Context, itemID uint) error
	FindByIDFunc   func(ctx context.Context, itemID uint) (*inventory.Item, error)
	FindByNameFunc func(ctx context.Context, name string) (*inventory.Item, error)
	ListFunc       func(ctx context.Context, filter inventory.Filter) ([]*inventory.Item, int64, error)
}

func (m *mockInventoryRepository) Save(ctx context.Context, item *inventory.Item) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, item)
	}
	return nil
}

func (m *mockInventoryRepository) Update(ctx context.Context, item *inventory.Item) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, item)
	}
	return nil
}

func (m *mockInventoryRepository) Delete(ctx context.Context, itemID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, itemID)
	}
	return nil
}

func (m *mockInventoryRepository) FindByID(ctx context.Context, itemID uint) (*inventory.Item, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, itemID)
	}
	return nil, errors.NewNotFoundError("item not found")
}

func (m *mockInventoryRepository) FindByName(ctx context.Context, name string) (*inventory.Item, error) {
	if m.FindByNameFunc != nil {
		return m.FindByNameFunc(ctx, name)
	}
	return nil, errors.NewNotFoundError("item not found")
}

func (m *mockInventoryRepository) List(ctx context.Context, filter inventory.Filter) ([]*inventory.Item, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

// mockTransactor runs the function inline without a database.
type mockTransactor struct {
	RunInTransactionFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTransactor) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunInTransactionFunc != nil {
		return m.RunInTransactionFunc(ctx, fn)
	}
	return fn(ctx)
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
