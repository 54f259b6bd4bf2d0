package impl

import (
	"context"
	"log/slog"
	"strings"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/lifecycle"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// BootstrapParams holds dependencies for startup provisioning, injected by Fx.
type BootstrapParams struct {
	fx.In

	UserRepo repository.UserRepository
	Hasher   service.PasswordHasher
	Config   *config.Config
	Logger   *slog.Logger
}

// SeedAdminUser provisions the configured bootstrap admin account. A fresh
// deployment has no user rows at all, so without a seed nobody can ever pass
// the admin gate. An existing account under the seed email is promoted to
// admin instead of duplicated; a seeded admin that already exists is left
// untouched, so the operation is safe to run on every start.
func SeedAdminUser(params BootstrapParams) error {
	if params.Config.Auth == nil || params.Config.Auth.AdminSeed == nil {
		params.Logger.Info("No admin seed configured, skipping provisioning")

		return nil
	}

	seed := params.Config.Auth.AdminSeed
	email := strings.ToLower(strings.TrimSpace(seed.Email))
	if email == "" || seed.Password == "" {
		return errors.New("admin seed requires both email and password")
	}

	ctx, cancel := context.WithTimeout(context.Background(), lifecycle.DefaultTimeout)
	defer cancel()

	user, err := params.UserRepo.FindByEmail(ctx, email)
	if errors.Is(err, repository.ErrUserNotFound) {
		hash, hashErr := params.Hasher.Hash(seed.Password)
		if hashErr != nil {
			return errors.Wrap(hashErr, "failed to hash admin seed password")
		}

		user = &entity.User{
			ID:           uuid.New(),
			Email:        email,
			Name:         seed.Name,
			PasswordHash: hash,
			Role:         entity.RoleAdmin,
		}
		if createErr := params.UserRepo.Create(ctx, user); createErr != nil {
			return errors.Wrap(createErr, "failed to create admin seed account")
		}

		params.Logger.Info("Seeded admin account", slog.String("email", email))

		return nil
	}
	if err != nil {
		return errors.Wrap(err, "failed to look up admin seed account")
	}

	if user.Role == entity.RoleAdmin {
		return nil
	}

	user.Role = entity.RoleAdmin
	if err := params.UserRepo.Update(ctx, user); err != nil {
		return errors.Wrap(err, "failed to promote admin seed account")
	}

	params.Logger.Info("Promoted existing account to admin", slog.String("email", email))

	return nil
}
