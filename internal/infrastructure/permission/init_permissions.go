package permission

import (
	"fmt"

	"github.com/casbin/casbin/v2"

	"propflow/internal/shared/logger"
)

// InitTicketPermissions seeds the route-level policy matrix for the
// maintenance ticket workflow. The matrix mirrors the access gate's role
// rules; per-record ownership and coverage checks stay in the domain.
func InitTicketPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		// Admin permissions - everything except creating tickets (tenants
		// report their own issues) and uploading images to them
		{"admin", "ticket", "read"},
		{"admin", "ticket", "update"},
		{"admin", "ticket", "assign"},
		{"admin", "ticket", "note"},
		{"admin", "ticket", "materials"},
		{"admin", "ticket", "complete"},
		{"admin", "ticket", "cancel"},
		{"admin", "ticket", "delete"},

		// Maintenance permissions - work the queue
		{"maintenance", "ticket", "read"},
		{"maintenance", "ticket", "update"},
		{"maintenance", "ticket", "assign"},
		{"maintenance", "ticket", "note"},
		{"maintenance", "ticket", "materials"},
		{"maintenance", "ticket", "complete"},

		// Tenant permissions - report and follow own tickets
		{"tenant", "ticket", "create"},
		{"tenant", "ticket", "read"},
		{"tenant", "ticket", "note"},
		{"tenant", "ticket", "image"},
	}

	return addPolicies(enforcer, log, "ticket", policies)
}

// InitStaffPermissions seeds staff roster management policies.
func InitStaffPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		{"admin", "staff", "create"},
		{"admin", "staff", "read"},
		{"admin", "staff", "update"},
		{"admin", "staff", "delete"},
	}

	return addPolicies(enforcer, log, "staff", policies)
}

// InitInventoryPermissions seeds inventory ledger policies. Maintenance staff
// browse stock; only admins manage it.
func InitInventoryPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	policies := [][]string{
		{"admin", "inventory", "create"},
		{"admin", "inventory", "read"},
		{"admin", "inventory", "update"},
		{"admin", "inventory", "delete"},

		{"maintenance", "inventory", "read"},
	}

	return addPolicies(enforcer, log, "inventory", policies)
}

// InitAllPermissions initializes all permission policies
func InitAllPermissions(enforcer *casbin.Enforcer, log logger.Interface) error {
	if err := InitTicketPermissions(enforcer, log); err != nil {
		return err
	}

	if err := InitStaffPermissions(enforcer, log); err != nil {
		return err
	}

	if err := InitInventoryPermissions(enforcer, log); err != nil {
		return err
	}

	log.Info("all permissions initialized successfully")
	return nil
}

func addPolicies(enforcer *casbin.Enforcer, log logger.Interface, domain string, policies [][]string) error {
	for _, policy := range policies {
		_, err := enforcer.AddPolicy(policy)
		if err != nil {
			log.Errorw("failed to add permission policy",
				"error", err,
				"role", policy[0],
				"resource", policy[1],
				"action", policy[2])
			return fmt.Errorf("failed to add policy [%s, %s, %s]: %w",
				policy[0], policy[1], policy[2], err)
		}
	}

	if err := enforcer.SavePolicy(); err != nil {
		log.Errorw("failed to save permissions", "error", err, "domain", domain)
		return fmt.Errorf("failed to save %s permissions: %w", domain, err)
	}

	log.Infow("permissions initialized successfully", "domain", domain)
	return nil
}
