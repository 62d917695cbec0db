package usecases

import (
	"context"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/ticket"
	"propflow/internal/domain/user"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

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

type mockUserRepository struct {
	SaveFunc        func(ctx context.Context, u *user.User) error
	FindByIDFunc    func(ctx context.Context, userID uint) (*user.User, error)
	FindByEmailFunc func(ctx context.Context, email string) (*user.User, error)
}

func (m *mockUserRepository) Save(ctx context.Context, u *user.User) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, u)
	}
	return nil
}

func (m *mockUserRepository) FindByID(ctx context.Context, userID uint) (*user.User, error) {
	if m.FindByIDFunc != nil {
		return m.FindByIDFunc(ctx, userID)
	}
	return nil, errors.NewNotFoundError("user not found")
}

func (m *mockUserRepository) FindByEmail(ctx context.Context, email string) (*user.User, error) {
	if m.FindByEmailFunc != nil {
		return m.FindByEmailFunc(ctx, email)
	}
	return nil, errors.NewNotFoundError("user not found")
}

// mockTicketRepository only implements the members the staff use cases touch;
// the rest satisfy the interface with zero values.
type mockTicketRepository struct {
	CountAssignedToStaffFunc func(ctx context.Context, staffID uint) (int64, error)
}

func (m *mockTicketRepository) Save(ctx context.Context, t *ticket.Ticket) error   { return nil }
func (m *mockTicketRepository) Update(ctx context.Context, t *ticket.Ticket) error { return nil }
func (m *mockTicketRepository) Delete(ctx context.Context, ticketID uint) error    { return nil }

func (m *mockTicketRepository) FindByID(ctx context.Context, ticketID uint) (*ticket.Ticket, error) {
	return nil, errors.NewNotFoundError("ticket not found")
}

func (m *mockTicketRepository) List(ctx context.Context, filter ticket.Filter) ([]*ticket.Ticket, int64, error) {
	return nil, 0, nil
}

func (m *mockTicketRepository) CountAssignedToStaff(ctx context.Context, staffID uint) (int64, error) {
	if m.CountAssignedToStaffFunc != nil {
		return m.CountAssignedToStaffFunc(ctx, staffID)
	}
	return 0, nil
}

func (m *mockTicketRepository) SaveNote(ctx context.Context, note *ticket.Note) error { return nil }

func (m *mockTicketRepository) FindNotesByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Note, error) {
	return nil, nil
}

func newTestLogger() logger.Interface {
	return logger.NewLogger()
}
