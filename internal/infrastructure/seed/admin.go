// Package seed bootstraps required records at server start.
package seed

import (
	"context"
	"fmt"

	"propflow/internal/domain/user"
	"propflow/internal/infrastructure/auth"
	"propflow/internal/shared/authorization"
	sharedConfig "propflow/internal/shared/config"
	"propflow/internal/shared/errors"
	"propflow/internal/shared/logger"
)

// EnsureAdmin creates the configured admin account if it does not exist yet.
// A blank seed config disables the bootstrap.
func EnsureAdmin(
	ctx context.Context,
	userRepo user.Repository,
	hasher *auth.BcryptPasswordHasher,
	cfg sharedConfig.AdminSeedConfig,
	log logger.Interface,
) error {
	if cfg.Email == "" {
		log.Debug("admin seed not configured, skipping bootstrap")
		return nil
	}
	if cfg.Password == "" {
		return fmt.Errorf("admin seed requires a password")
	}

	existing, err := userRepo.FindByEmail(ctx, cfg.Email)
	if err != nil && !errors.IsNotFoundError(err) {
		return fmt.Errorf("failed to look up admin account: %w", err)
	}
	if existing != nil {
		log.Debugw("admin account already exists", "email", cfg.Email)
		return nil
	}

	hash, err := hasher.Hash(cfg.Password)
	if err != nil {
		return fmt.Errorf("failed to hash admin password: %w", err)
	}

	admin, err := user.NewUser(cfg.Email, cfg.Name, hash, authorization.RoleAdmin)
	if err != nil {
		return fmt.Errorf("invalid admin seed: %w", err)
	}

	if err := userRepo.Save(ctx, admin); err != nil {
		return fmt.Errorf("failed to create admin account: %w", err)
	}

	log.Infow("admin account created", "email", admin.Email(), "user_id", admin.ID())
	return nil
}
