package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	deliverycontext "campus/internal/delivery/context"
	"campus/internal/delivery/http/response"
	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// ContentHandler serves one content collection through the uniform
// validate-then-persist pattern. One instance exists per content type.
type ContentHandler[T any] struct {
	uc           usecase.ContentUsecase[T]
	filterActive bool
	logger       *slog.Logger
}

// NewContentHandler is the constructor for ContentHandler. filterActive
// restricts the public listing to active items; collections without an
// active flag (settings, feature flags) pass false.
func NewContentHandler[T any](uc usecase.ContentUsecase[T], filterActive bool, logger *slog.Logger) *ContentHandler[T] {
	return &ContentHandler[T]{
		uc:           uc,
		filterActive: filterActive,
		logger:       logger,
	}
}

// List returns the collection. Public listings hide inactive items; an
// authenticated admin sees everything, so a deactivated item stays
// reachable from the backend.
func (h *ContentHandler[T]) List(c echo.Context) error {
	includeInactive := !h.filterActive
	if !includeInactive {
		if identity := deliverycontext.GetIdentity(c); identity != nil && identity.Role == entity.RoleAdmin {
			includeInactive = true
		}
	}

	items, err := h.uc.List(c.Request().Context(), includeInactive)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, items, "")
}

// Get returns a single item by id.
func (h *ContentHandler[T]) Get(c echo.Context) error {
	id, err := contentID(c)
	if err != nil {
		return err
	}

	item, err := h.uc.Get(c.Request().Context(), id)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, item, "")
}

// Create inserts a new item.
func (h *ContentHandler[T]) Create(c echo.Context) error {
	var item T
	if err := c.Bind(&item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	created, err := h.uc.Create(c.Request().Context(), &item)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, created, "Created")
}

// Update replaces an existing item.
func (h *ContentHandler[T]) Update(c echo.Context) error {
	id, err := contentID(c)
	if err != nil {
		return err
	}

	var item T
	if err := c.Bind(&item); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid content input")
	}

	updated, err := h.uc.Update(c.Request().Context(), id, &item)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Updated")
}

// Delete removes an item.
func (h *ContentHandler[T]) Delete(c echo.Context) error {
	id, err := contentID(c)
	if err != nil {
		return err
	}

	if err := h.uc.Delete(c.Request().Context(), id); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Deleted")
}

func contentID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, domainerrors.ErrValidationFailed.WrapMessage("id must be a positive integer")
	}

	return id, nil
}
