package usecases

import (
	"context"

	"propflow/internal/domain/staff"
	"propflow/internal/domain/tenancy"
	"propflow/internal/domain/ticket"
	"propflow/internal/shared/authorization"
	"propflow/internal/shared/errors"
)

// Transactor runs a function within a database transaction. Satisfied by
// db.TransactionManager.
type Transactor interface {
	RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}

// scopeResolver loads the records the access gate needs to evaluate a
// role-scoped actor: the staff record for maintenance users, the active
// tenancy for tenant users.
type scopeResolver struct {
	staffRepo   staff.Repository
	tenancyRepo tenancy.Repository
}

func newScopeResolver(staffRepo staff.Repository, tenancyRepo tenancy.Repository) scopeResolver {
	return scopeResolver{staffRepo: staffRepo, tenancyRepo: tenancyRepo}
}

// resolve builds the actor's scope. A missing staff record or tenancy yields
// an empty scope, which the gate denies; lookup failures other than not-found
// are surfaced.
func (r scopeResolver) resolve(ctx context.Context, actor authorization.Actor) (ticket.ActorScope, error) {
	switch {
	case actor.IsMaintenance():
		s, err := r.staffRepo.FindByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return ticket.ActorScope{}, nil
			}
			return ticket.ActorScope{}, err
		}
		return ticket.ActorScope{Staff: s}, nil

	case actor.IsTenant():
		tenant, err := r.tenancyRepo.FindActiveTenantByUserID(ctx, actor.UserID)
		if err != nil {
			if errors.IsNotFoundError(err) {
				return ticket.ActorScope{}, nil
			}
			return ticket.ActorScope{}, err
		}
		return ticket.ActorScope{TenantID: tenant.ID()}, nil

	default:
		return ticket.ActorScope{}, nil
	}
}
