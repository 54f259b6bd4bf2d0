package impl

import (
	"context"
	"testing"

	"campus/internal/domain/entity"
	domainerrors "campus/internal/domain/errors"
	"campus/internal/infra/persistence/memory"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContentService_PublicListHidesInactive(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContentStore[entity.Testimonial]()
	service := NewContentService(store, discardLogger())

	visible, err := service.Create(ctx, &entity.Testimonial{Author: "Amina", Active: true})
	require.NoError(t, err)
	_, err = service.Create(ctx, &entity.Testimonial{Author: "Draft", Active: false})
	require.NoError(t, err)

	public, err := service.List(ctx, false)
	require.NoError(t, err)
	require.Len(t, public, 1)
	assert.Equal(t, visible.ID, public[0].ID)

	admin, err := service.List(ctx, true)
	require.NoError(t, err)
	assert.Len(t, admin, 2)
}

func TestContentService_UpdateRoundTrip(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContentStore[entity.Course]()
	service := NewContentService(store, discardLogger())

	created, err := service.Create(ctx, &entity.Course{Code: "CS101", Semester: 1, Credits: 6, Active: true})
	require.NoError(t, err)

	created.Credits = 8
	updated, err := service.Update(ctx, created.ID, created)
	require.NoError(t, err)
	assert.Equal(t, 8, updated.Credits)

	_, err = service.Update(ctx, 404, created)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}

func TestContentService_GetAndDeleteMissing(t *testing.T) {
	ctx := context.Background()
	store := memory.NewContentStore[entity.Event]()
	service := NewContentService(store, discardLogger())

	_, err := service.Get(ctx, 1)
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)

	assert.ErrorIs(t, service.Delete(ctx, 1), domainerrors.ErrNotFound)
}
