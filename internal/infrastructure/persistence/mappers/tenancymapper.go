package mappers

import (
	"time"

	"propflow/internal/domain/tenancy"
	"propflow/internal/infrastructure/persistence/models"
)

// TenancyMapper converts residency persistence models into their read-side
// domain views. The ticket workflow never writes these rows.
type TenancyMapper interface {
	TenantToDomain(model *models.TenantModel) *tenancy.Tenant
	UnitToDomain(model *models.UnitModel) *tenancy.Unit
	PropertyToDomain(model *models.PropertyModel) *tenancy.Property
}

type TenancyMapperImpl struct{}

func NewTenancyMapper() TenancyMapper {
	return &TenancyMapperImpl{}
}

func (m *TenancyMapperImpl) TenantToDomain(model *models.TenantModel) *tenancy.Tenant {
	var endDate *time.Time
	if model.EndDate != nil {
		t := tenancyConvertMillisToTime(*model.EndDate)
		endDate = &t
	}

	return tenancy.ReconstructTenant(
		model.ID,
		model.UserID,
		model.UnitID,
		model.Status,
		tenancyConvertMillisToTime(model.StartDate),
		endDate,
	)
}

func (m *TenancyMapperImpl) UnitToDomain(model *models.UnitModel) *tenancy.Unit {
	return tenancy.ReconstructUnit(model.ID, model.PropertyID, model.UnitNumber)
}

func (m *TenancyMapperImpl) PropertyToDomain(model *models.PropertyModel) *tenancy.Property {
	return tenancy.ReconstructProperty(model.ID, model.Name, model.Address)
}

func tenancyConvertMillisToTime(millis int64) time.Time {
	return time.Unix(0, millis*int64(time.Millisecond))
}
