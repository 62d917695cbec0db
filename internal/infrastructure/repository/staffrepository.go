package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"propflow/internal/domain/staff"
	"propflow/internal/infrastructure/persistence/mappers"
	"propflow/internal/infrastructure/persistence/models"
	db "propflow/internal/shared/db"
	"propflow/internal/shared/errors"
)

type StaffRepository struct {
	db     *gorm.DB
	mapper mappers.StaffMapper
}

func NewStaffRepository(db *gorm.DB) *StaffRepository {
	return &StaffRepository{
		db:     db,
		mapper: mappers.NewStaffMapper(),
	}
}

func (r *StaffRepository) Save(ctx context.Context, s *staff.Staff) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		if errors.IsDuplicateError(err) {
			return errors.NewConflictError("staff record already exists for this user")
		}
		return fmt.Errorf("failed to save staff: %w", err)
	}

	if err := s.SetID(model.ID); err != nil {
		return err
	}

	return nil
}

func (r *StaffRepository) Update(ctx context.Context, s *staff.Staff) error {
	model := r.mapper.ToModel(s)
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.
		Model(&models.StaffModel{}).
		Where("id = ? AND version = ?", model.ID, s.LoadedVersion()).
		Select("*").
		Omit("id", "created_at").
		Updates(model)

	if result.Error != nil {
		return fmt.Errorf("failed to update staff: %w", result.Error)
	}

	if result.RowsAffected == 0 {
		var count int64
		if err := tx.Model(&models.StaffModel{}).Where("id = ?", model.ID).Count(&count).Error; err != nil {
			return fmt.Errorf("failed to update staff: %w", err)
		}
		if count == 0 {
			return errors.NewNotFoundError("staff not found")
		}
		return errors.NewConflictError("staff record was modified concurrently")
	}

	return nil
}

func (r *StaffRepository) Delete(ctx context.Context, staffID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)

	result := tx.Delete(&models.StaffModel{}, staffID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete staff: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.NewNotFoundError("staff not found")
	}
	return nil
}

func (r *StaffRepository) FindByID(ctx context.Context, staffID uint) (*staff.Staff, error) {
	var model models.StaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, staffID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff not found")
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StaffRepository) FindByUserID(ctx context.Context, userID uint) (*staff.Staff, error) {
	var model models.StaffModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ?", userID).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("staff not found")
		}
		return nil, fmt.Errorf("failed to find staff: %w", err)
	}

	return r.mapper.ToDomain(&model)
}

func (r *StaffRepository) List(
	ctx context.Context,
	filter staff.Filter,
) ([]*staff.Staff, int64, error) {
	tx := db.GetTxFromContext(ctx, r.db)
	query := tx.Model(&models.StaffModel{})

	if filter.Active != nil {
		query = query.Where("active = ?", *filter.Active)
	}
	if filter.PropertyID != nil {
		// Property coverage is a JSON array column; the LIKE match is a
		// coarse prefilter, the exact check happens below after mapping.
		query = query.Where("property_ids LIKE ?", fmt.Sprintf("%%%d%%", *filter.PropertyID))
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to count staff: %w", err)
	}

	query = query.Order("created_at ASC")

	if filter.Limit > 0 {
		offset := (filter.Page - 1) * filter.Limit
		query = query.Limit(filter.Limit).Offset(offset)
	}

	var staffModels []models.StaffModel
	if err := query.Find(&staffModels).Error; err != nil {
		return nil, 0, fmt.Errorf("failed to list staff: %w", err)
	}

	members := make([]*staff.Staff, 0, len(staffModels))
	for _, model := range staffModels {
		s, err := r.mapper.ToDomain(&model)
		if err != nil {
			return nil, 0, err
		}
		if filter.PropertyID != nil && !s.CoversProperty(*filter.PropertyID) {
			total--
			continue
		}
		members = append(members, s)
	}

	return members, total, nil
}
