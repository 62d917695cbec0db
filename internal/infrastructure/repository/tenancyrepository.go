package repository

import (
	"context"
	"fmt"

	"gorm.io/gorm"

	"propflow/internal/domain/tenancy"
	"propflow/internal/infrastructure/persistence/mappers"
	"propflow/internal/infrastructure/persistence/models"
	"propflow/internal/shared/constants"
	db "propflow/internal/shared/db"
	"propflow/internal/shared/errors"
)

// TenancyRepository reads residency data. The ticket workflow composes unit
// and property details into ticket views but never mutates these tables.
type TenancyRepository struct {
	db     *gorm.DB
	mapper mappers.TenancyMapper
}

func NewTenancyRepository(db *gorm.DB) *TenancyRepository {
	return &TenancyRepository{
		db:     db,
		mapper: mappers.NewTenancyMapper(),
	}
}

func (r *TenancyRepository) FindActiveTenantByUserID(ctx context.Context, userID uint) (*tenancy.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.
		Where("user_id = ? AND status = ?", userID, constants.TenantStatusActive).
		First(&model).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("no active residency for user")
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	return r.mapper.TenantToDomain(&model), nil
}

func (r *TenancyRepository) FindTenantByID(ctx context.Context, tenantID uint) (*tenancy.Tenant, error) {
	var model models.TenantModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, tenantID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("tenant not found")
		}
		return nil, fmt.Errorf("failed to find tenant: %w", err)
	}

	return r.mapper.TenantToDomain(&model), nil
}

func (r *TenancyRepository) FindUnitByID(ctx context.Context, unitID uint) (*tenancy.Unit, error) {
	var model models.UnitModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, unitID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("unit not found")
		}
		return nil, fmt.Errorf("failed to find unit: %w", err)
	}

	return r.mapper.UnitToDomain(&model), nil
}

func (r *TenancyRepository) FindPropertyByID(ctx context.Context, propertyID uint) (*tenancy.Property, error) {
	var model models.PropertyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, propertyID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.NewNotFoundError("property not found")
		}
		return nil, fmt.Errorf("failed to find property: %w", err)
	}

	return r.mapper.PropertyToDomain(&model), nil
}
