package middleware

import (
	"log/slog"

	"campus/config"
	deliverycontext "campus/internal/delivery/context"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
)

// SessionMiddleware resolves the session cookie into an authenticated
// identity. Resolution is best-effort: a missing cookie, an expired session
// or an unreachable session store all leave the request anonymous, and the
// route guards decide whether anonymous is acceptable.
type SessionMiddleware struct {
	authUC usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewSessionMiddleware is the constructor for SessionMiddleware.
func NewSessionMiddleware(authUC usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{authUC: authUC, cfg: cfg, logger: logger}
}

// Resolve reads the session cookie and, when it maps to a live session and
// an existing user, attaches the identity to the request. It never fails the
// request itself.
func (m *SessionMiddleware) Resolve(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(m.cfg.Session.CookieName)
		if err != nil || cookie.Value == "" {
			return next(c)
		}

		identity, err := m.authUC.Authenticate(c.Request().Context(), cookie.Value)
		if err != nil {
			// Session store fault: degrade to anonymous rather than 500.
			m.logger.Warn("Session resolution failed, continuing anonymous", slog.Any("error", err))

			return next(c)
		}
		if identity == nil {
			return next(c)
		}

		deliverycontext.SetIdentity(c, identity, cookie.Value)

		return next(c)
	}
}

// Authenticate rejects anonymous requests with 401. It must run after Resolve.
func (m *SessionMiddleware) Authenticate(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		if deliverycontext.GetIdentity(c) == nil {
			return domainerrors.ErrAuthenticationRequired
		}

		return next(c)
	}
}

// RequireRole is a middleware factory that checks the authenticated
// identity's role. The role comes from the user row read this request, so a
// role change is effective immediately. It must be used AFTER Authenticate.
func (m *SessionMiddleware) RequireRole(requiredRole string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			identity := deliverycontext.GetIdentity(c)
			if identity == nil {
				return domainerrors.ErrAuthenticationRequired
			}

			if identity.Role.String() != requiredRole {
				return domainerrors.ErrForbidden.WrapMessage("requires the '" + requiredRole + "' role")
			}

			return next(c)
		}
	}
}
