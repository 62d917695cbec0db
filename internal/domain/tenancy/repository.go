package tenancy

import "context"

// Repository is read-only. Residency data is owned by another part of the
// platform; the ticket workflow only resolves references.
type Repository interface {
	FindActiveTenantByUserID(ctx context.Context, userID uint) (*Tenant, error)
	FindTenantByID(ctx context.Context, tenantID uint) (*Tenant, error)
	FindUnitByID(ctx context.Context, unitID uint) (*Unit, error)
	FindPropertyByID(ctx context.Context, propertyID uint) (*Property, error)
}
