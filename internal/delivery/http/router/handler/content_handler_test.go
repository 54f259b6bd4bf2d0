package handler

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/middleware"
	"campus/internal/domain/entity"
	"campus/internal/infra/persistence/memory"
	"campus/internal/usecase/impl"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testRoleHeader = "X-Test-Role"

func seededProjectServer(t *testing.T) *echo.Echo {
	t.Helper()

	store := memory.NewContentStore[entity.Project]()
	ctx := context.Background()
	require.NoError(t, store.Create(ctx, &entity.Project{
		Title:  entity.LocalizedText{Fr: "Projet visible"},
		Active: true,
	}))
	require.NoError(t, store.Create(ctx, &entity.Project{
		Title:  entity.LocalizedText{Fr: "Projet retiré"},
		Active: false,
	}))

	uc := impl.NewContentService(store, discardLogger())
	h := NewContentHandler(uc, true, discardLogger())

	e := echo.New()
	e.HTTPErrorHandler = middleware.NewErrorMiddleware(discardLogger()).HandleHTTPError
	// Stands in for the session middleware's Resolve stage.
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if role := c.Request().Header.Get(testRoleHeader); role != "" {
				deliverycontext.SetIdentity(c, &entity.Identity{Role: entity.Role(role)}, "test-session")
			}

			return next(c)
		}
	})
	e.GET("/api/projects", h.List)

	return e
}

func listProjects(e *echo.Echo, role string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/projects", nil)
	if role != "" {
		req.Header.Set(testRoleHeader, role)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	return rec
}

func TestContentHandler_ListHidesInactiveFromPublic(t *testing.T) {
	e := seededProjectServer(t)

	rec := listProjects(e, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Projet visible")
	assert.NotContains(t, rec.Body.String(), "Projet retiré")
}

func TestContentHandler_ListShowsEverythingToAdmin(t *testing.T) {
	e := seededProjectServer(t)

	rec := listProjects(e, entity.RoleAdmin.String())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Projet visible")
	assert.Contains(t, rec.Body.String(), "Projet retiré")
}

func TestContentHandler_ListKeepsFilterForNonAdmin(t *testing.T) {
	e := seededProjectServer(t)

	rec := listProjects(e, entity.RoleStudent.String())

	require.Equal(t, http.StatusOK, rec.Code)
	assert.NotContains(t, rec.Body.String(), "Projet retiré")
}
