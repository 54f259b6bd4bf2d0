// Package impl contains the implementation of the application's business logic.
package impl

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"log/slog"
	"time"

	"campus/config"
	deliverycontext "campus/internal/delivery/context"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/domain/repository"
	"campus/internal/domain/service"
	"campus/internal/usecase"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const sessionIDBytes = 32

// authService implements the AuthUsecase interface.
type authService struct {
	txManager   repository.TransactionManager
	userRepo    repository.UserRepository
	sessionRepo repository.SessionRepository
	hasher      service.PasswordHasher
	sessionTTL  time.Duration
	logger      *slog.Logger
}

// AuthServiceParams holds dependencies for authService, injected by Fx.
type AuthServiceParams struct {
	fx.In

	TxManager   repository.TransactionManager
	UserRepo    repository.UserRepository
	SessionRepo repository.SessionRepository
	Hasher      service.PasswordHasher
	Config      *config.Config
	Logger      *slog.Logger
}

// NewAuthService is the constructor for authService.
func NewAuthService(params AuthServiceParams) usecase.AuthUsecase {
	return &authService{
		txManager:   params.TxManager,
		userRepo:    params.UserRepo,
		sessionRepo: params.SessionRepo,
		hasher:      params.Hasher,
		sessionTTL:  params.Config.Session.TTL,
		logger:      params.Logger,
	}
}

func (srv *authService) log(ctx context.Context) *slog.Logger {
	return deliverycontext.GetLoggerOrDefault(ctx, srv.logger)
}

// Login verifies credentials and issues a fresh session. Lookup misses and
// password mismatches collapse into the same invalid-credentials error so the
// response does not reveal which accounts exist.
func (srv *authService) Login(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	var out *usecase.LoginOutput
	err := srv.txManager.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		user, err := repoFactory.UserRepo().FindByEmail(ctx, input.Email)
		if errors.Is(err, repository.ErrUserNotFound) {
			return domainerrors.ErrInvalidCredentials
		}
		if err != nil {
			return errors.Wrap(err, "failed to look up user for login")
		}

		if !srv.hasher.Check(input.Password, user.PasswordHash) {
			return domainerrors.ErrInvalidCredentials
		}

		sessionID, err := generateSessionID()
		if err != nil {
			return errors.Wrap(err, "failed to generate session id")
		}

		identity := entity.IdentityOf(user)
		payload := entity.SessionPayload{Identity: identity, IssuedAt: time.Now()}
		if err := repoFactory.SessionRepo().Set(ctx, sessionID, payload, srv.sessionTTL); err != nil {
			return errors.Wrap(err, "failed to persist session")
		}

		out = &usecase.LoginOutput{SessionID: sessionID, Identity: &identity}

		return nil
	})
	if err != nil {
		return nil, err
	}

	srv.log(ctx).Info("User logged in", slog.String("userID", out.Identity.UserID.String()))

	return out, nil
}

// AdminLogin issues a session the same way Login does, then requires the
// admin role. A non-admin account's session is destroyed before the
// authorization error is returned.
func (srv *authService) AdminLogin(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error) {
	out, err := srv.Login(ctx, input)
	if err != nil {
		return nil, err
	}

	if out.Identity.Role != entity.RoleAdmin {
		if destroyErr := srv.sessionRepo.Destroy(ctx, out.SessionID); destroyErr != nil {
			srv.log(ctx).Error("Failed to destroy non-admin session after admin login",
				slog.String("userID", out.Identity.UserID.String()), slog.Any("error", destroyErr))
		}

		return nil, domainerrors.ErrForbidden.WrapMessage("admin access required")
	}

	return out, nil
}

// Logout destroys the session. An absent session is already logged out.
func (srv *authService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := srv.sessionRepo.Destroy(ctx, sessionID); err != nil {
		return errors.Wrap(err, "failed to destroy session")
	}

	return nil
}

// Authenticate resolves a session to its current identity. The user row is
// re-read on every call: a session naming a deleted user resolves to
// anonymous, and the role always comes from the authoritative record rather
// than the snapshot stored at login time.
func (srv *authService) Authenticate(ctx context.Context, sessionID string) (*entity.Identity, error) {
	if sessionID == "" {
		return nil, nil
	}

	session, err := srv.sessionRepo.Get(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(err, "failed to read session")
	}
	if session == nil {
		return nil, nil
	}

	user, err := srv.userRepo.FindByID(ctx, session.Payload.Identity.UserID)
	if errors.Is(err, repository.ErrUserNotFound) {
		if destroyErr := srv.sessionRepo.Destroy(ctx, sessionID); destroyErr != nil {
			srv.log(ctx).Warn("Failed to destroy session of deleted user", slog.Any("error", destroyErr))
		}

		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to revalidate session user")
	}

	identity := entity.IdentityOf(user)

	return &identity, nil
}

// CurrentUser returns the identity behind the session or an authentication
// error when the session cannot be resolved.
func (srv *authService) CurrentUser(ctx context.Context, sessionID string) (*entity.Identity, error) {
	identity, err := srv.Authenticate(ctx, sessionID)
	if err != nil {
		return nil, errors.Wrap(domainerrors.ErrSessionUnavailable, err.Error())
	}
	if identity == nil {
		return nil, domainerrors.ErrAuthenticationRequired
	}

	return identity, nil
}

// generateSessionID returns a fresh 256-bit random identifier.
func generateSessionID() (string, error) {
	buf := make([]byte, sessionIDBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", errors.Wrap(err, "failed to read session entropy")
	}

	return base64.RawURLEncoding.EncodeToString(buf), nil
}
