package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"campus/config"
	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	mockRepo "campus/internal/mocks/repository"
	"campus/internal/usecase/impl"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

const testCookieName = "campus_session"

func testConfig() *config.Config {
	cfg := &config.Config{}
	cfg.Session = &config.SessionConfig{TTL: time.Hour, CookieName: testCookieName}

	return cfg
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// newGuardedServer builds an echo instance with an admin-gated route wired
// the same way the real server is.
func newGuardedServer(t *testing.T, sessionRepo *mockRepo.MockSessionRepository, userRepo *mockRepo.MockUserRepository) *echo.Echo {
	t.Helper()

	cfg := testConfig()
	authUC := impl.NewAuthService(impl.AuthServiceParams{
		UserRepo:    userRepo,
		SessionRepo: sessionRepo,
		Config:      cfg,
		Logger:      discardLogger(),
	})

	sessionMW := NewSessionMiddleware(authUC, cfg, discardLogger())

	e := echo.New()
	e.HTTPErrorHandler = NewErrorMiddleware(discardLogger()).HandleHTTPError
	e.Use(sessionMW.Resolve)

	ok := func(c echo.Context) error { return c.NoContent(http.StatusOK) }
	e.GET("/admin", ok, sessionMW.Authenticate, sessionMW.RequireRole(entity.RoleAdmin.String()))
	e.GET("/me", ok, sessionMW.Authenticate)

	return e
}

func liveSession(id string, user *entity.User) *entity.Session {
	return &entity.Session{
		ID: id,
		Payload: entity.SessionPayload{
			Identity: entity.IdentityOf(user),
			IssuedAt: time.Now(),
		},
		ExpiresAt: time.Now().Add(time.Hour),
	}
}

func doRequest(e *echo.Echo, path, sessionID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	if sessionID != "" {
		req.AddCookie(&http.Cookie{Name: testCookieName, Value: sessionID})
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestSessionMiddleware_NoCookieIsUnauthorized(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/me", "")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ok":false`)
}

func TestSessionMiddleware_AdminPasses(t *testing.T) {
	admin := &entity.User{ID: uuid.New(), Email: "admin@example.com", Role: entity.RoleAdmin}

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s1").Return(liveSession("s1", admin), nil)
	userRepo.EXPECT().FindByID(mock.Anything, admin.ID).Return(admin, nil)

	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/admin", "s1")

	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestSessionMiddleware_NonAdminIsForbiddenNotUnauthorized(t *testing.T) {
	student := &entity.User{ID: uuid.New(), Email: "student@example.com", Role: entity.RoleStudent}

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s2").Return(liveSession("s2", student), nil)
	userRepo.EXPECT().FindByID(mock.Anything, student.ID).Return(student, nil)

	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/admin", "s2")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionMiddleware_StaleAdminSnapshotIsRejected(t *testing.T) {
	// The session payload was written while the user was an admin; the row
	// now says student. The guard must trust the row.
	userID := uuid.New()
	wasAdmin := &entity.User{ID: userID, Email: "demoted@example.com", Role: entity.RoleAdmin}
	nowStudent := &entity.User{ID: userID, Email: "demoted@example.com", Role: entity.RoleStudent}

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s3").Return(liveSession("s3", wasAdmin), nil)
	userRepo.EXPECT().FindByID(mock.Anything, userID).Return(nowStudent, nil)

	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/admin", "s3")

	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestSessionMiddleware_DeletedUserIsUnauthorized(t *testing.T) {
	ghost := &entity.User{ID: uuid.New(), Email: "ghost@example.com", Role: entity.RoleAdmin}

	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s4").Return(liveSession("s4", ghost), nil)
	userRepo.EXPECT().FindByID(mock.Anything, ghost.ID).Return(nil, errors.Wrap(repository.ErrUserNotFound, "lookup"))
	sessionRepo.EXPECT().Destroy(mock.Anything, "s4").Return(nil)

	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/admin", "s4")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_StoreFaultDegradesToAnonymous(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s5").Return(nil, errors.New("connection refused"))

	e := newGuardedServer(t, sessionRepo, userRepo)

	// The store fault must not 500 the request; the guard then rejects the
	// anonymous request with 401.
	rec := doRequest(e, "/me", "s5")

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestSessionMiddleware_ExpiredSessionIsAnonymous(t *testing.T) {
	sessionRepo := mockRepo.NewMockSessionRepository(t)
	userRepo := mockRepo.NewMockUserRepository(t)
	sessionRepo.EXPECT().Get(mock.Anything, "s6").Return(nil, nil)

	e := newGuardedServer(t, sessionRepo, userRepo)

	rec := doRequest(e, "/me", "s6")

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}
