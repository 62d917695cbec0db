package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"propflow/internal/domain/ticket"
	"propflow/internal/infrastructure/persistence/mappers"
	"propflow/internal/infrastructure/persistence/models"
	db "propflow/internal/shared/db"
	"propflow/internal/shared/errors"
)

type TicketRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewTicketRepository(db *gorm.DB) *TicketRepository {
	return &TicketRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *TicketRepository) Save(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save ticket: %w", err)
	}

	if err := t.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

// Update persists the aggregate guarded by the version the caller loaded.
// A concurrent writer bumps the stored version first, the WHERE clause then
// matches nothing and the caller gets a conflict.
func (r *TicketRepository) Update(ctx context.Context, t *ticket.Ticket) error {
	model := r.mapper.ToModel(t)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.TicketModel{}).
		Where("id = ? AND version = ?", model.ID, t.LoadedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update ticket: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.TicketModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update ticket: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("ticket not found")
		}
		return errors.NewConflictError("ticket was modified concurrently")
	}

	return nil
}

func (r *TicketRepository) FindByID(ctx context.Context, id uint) (*ticket.Ticket, error) {
	var model models.TicketModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		First(&model, id).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("ticket not found")
		}
		return nil, fmt.Errorf("failed to find ticket: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *TicketRepository) Delete(ctx context.Context, id uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	// Notes go with the ticket; they carry no meaning without it.
	if err := tx.Where("ticket_id = ?", id).Delete(&models.TicketNoteModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete ticket notes: %w", err)
	}

	result := tx.Delete(&models.TicketModel{}, id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete ticket: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("ticket not found")
	}
	return nil
}

func (r *TicketRepository) List(
	ctx context.Context,
	filter ticket.Filter,
) ([]*ticket.Ticket, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.TicketModel{})

	if filter.Status != nil {
		query = query.Where("status = ?", filter.Status.String())
	}
	if filter.Priority != nil {
		query = query.Where("priority = ?", filter.Priority.String())
	}
	if filter.Category != nil {
		query = query.Where("category = ?", filter.Category.String())
	}
	if filter.PropertyID != nil {
		query = query.Where("property_id = ?", *filter.PropertyID)
	}
	if filter.TenantID != nil {
		query = query.Where("tenant_id = ?", *filter.TenantID)
	}
	if filter.StaffScope != nil {
		scope := filter.StaffScope
		if len(scope.PropertyIDs) == 0 {
			// No coverage means no visible tickets.
			query = query.Where("1 = 0")
		} else {
			query = query.
				Where("property_id IN ?", scope.PropertyIDs).
				Where("(assigned_staff_id IS NULL OR assigned_staff_id = ?)", scope.StaffID)
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count tickets: %w", err)
	}

	// Most urgent first, newest first within the same urgency.
	query = query.Order("priority_rank DESC, created_at DESC")

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var ticketModels []models.TicketModel
	if err := query.Find(&ticketModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list tickets: %w", err)
	}

	tickets := make([]*ticket.Ticket, len(ticketModels))
	for i, model := range ticketModels {
		t, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		tickets[i] = t
	}

	return tickets, total, nil
}

// CountAssignedToStaff counts every ticket referencing the staff member as
// assignee. Terminal tickets count too; deleting the staff row would leave
// their assigned_staff_id dangling.
func (r *TicketRepository) CountAssignedToStaff(ctx context.Context, staffID uint) (int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var count int64
	err := tx.
		Model(&models.TicketModel{}).
		Where("assigned_staff_id = ?", staffID).
		Count(&count).Error
	if err != nil {
		return 0, fmt.Errorf("failed to count assigned tickets: %w", err)
	}

	return count, nil
}

func (r *TicketRepository) SaveNote(ctx context.Context, n *ticket.Note) error {
	model := r.mapper.NoteToModel(n)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save note: %w", err)
	}

	if err := n.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *TicketRepository) FindNotesByTicketID(
	ctx context.Context,
	ticketID uint,
) ([]*ticket.Note, error) {
	var noteModels []models.TicketNoteModel

	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&noteModels).Error; err != nil {
		return nil, fmt.Errorf("failed to find notes: %w", err)
	}

	notes := make([]*ticket.Note, len(noteModels))
	for i, model := range noteModels {
		n, err := r.mapper.NoteToDomain(&model)
		if err != nil {
			return nil, err
		}
		notes[i] = n
	}

	return notes, nil
}
