// Package handler contains the HTTP handlers for the application.
package handler

import (
	"context"
	"log/slog"
	"net/http"

	"campus/config"
	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/response"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// AuthHandler holds dependencies for the session authentication endpoints.
type AuthHandler struct {
	uc     usecase.AuthUsecase
	cfg    *config.Config
	logger *slog.Logger
}

// NewAuthHandler is the constructor for AuthHandler, injected by Fx.
func NewAuthHandler(uc usecase.AuthUsecase, cfg *config.Config, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		uc:     uc,
		cfg:    cfg,
		logger: logger,
	}
}

// Login handles the public login request and sets the session cookie.
func (h *AuthHandler) Login(c echo.Context) error {
	return h.login(c, h.uc.Login)
}

// AdminLogin handles the admin login request. Valid credentials without the
// admin role are rejected with 403 and no cookie is set.
func (h *AuthHandler) AdminLogin(c echo.Context) error {
	return h.login(c, h.uc.AdminLogin)
}

func (h *AuthHandler) login(c echo.Context, loginFn func(ctx context.Context, input usecase.LoginInput) (*usecase.LoginOutput, error)) error {
	var input usecase.LoginInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid login input")
	}
	if err := c.Validate(&input); err != nil {
		return errors.WithStack(err)
	}

	output, err := loginFn(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.setSessionCookie(c, output.SessionID)

	return response.Success(c, http.StatusOK, output.Identity, "Login successful")
}

// CurrentUser returns the identity behind the session cookie.
func (h *AuthHandler) CurrentUser(c echo.Context) error {
	sessionID := h.sessionIDFromRequest(c)

	identity, err := h.uc.CurrentUser(c.Request().Context(), sessionID)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, identity, "")
}

// Logout destroys the session and clears the cookie. Logging out without a
// session succeeds.
func (h *AuthHandler) Logout(c echo.Context) error {
	sessionID := h.sessionIDFromRequest(c)

	if err := h.uc.Logout(c.Request().Context(), sessionID); err != nil {
		return errors.WithStack(err)
	}

	h.clearSessionCookie(c)

	return response.Success(c, http.StatusOK, nil, "Logged out")
}

// sessionIDFromRequest prefers the session resolved by the middleware and
// falls back to the raw cookie.
func (h *AuthHandler) sessionIDFromRequest(c echo.Context) string {
	if sessionID := deliverycontext.GetSessionID(c); sessionID != "" {
		return sessionID
	}

	cookie, err := c.Cookie(h.cfg.Session.CookieName)
	if err != nil {
		return ""
	}

	return cookie.Value
}

func (h *AuthHandler) setSessionCookie(c echo.Context, sessionID string) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    sessionID,
		Path:     "/",
		Domain:   h.cfg.Session.CookieDomain,
		MaxAge:   int(h.cfg.Session.TTL.Seconds()),
		HttpOnly: true,
		Secure:   h.cfg.Session.SecureCookies(h.cfg.Env.Env),
		SameSite: http.SameSiteLaxMode,
	})
}

func (h *AuthHandler) clearSessionCookie(c echo.Context) {
	c.SetCookie(&http.Cookie{
		Name:     h.cfg.Session.CookieName,
		Value:    "",
		Path:     "/",
		Domain:   h.cfg.Session.CookieDomain,
		MaxAge:   -1,
		HttpOnly: true,
		Secure:   h.cfg.Session.SecureCookies(h.cfg.Env.Env),
		SameSite: http.SameSiteLaxMode,
	})
}
