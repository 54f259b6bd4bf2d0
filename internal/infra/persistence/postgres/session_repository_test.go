package postgres

import (
	"context"
	"testing"
	"time"

	"campus/internal/domain/entity"
	"campus/internal/domain/repository"
	"campus/internal/infra/persistence/model"

	"github.com/glebarez/sqlite"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newSessionRepoForTest runs the real repository SQL against an in-memory
// sqlite database. The dialect differences do not touch anything these
// queries use.
func newSessionRepoForTest(t *testing.T) (repository.SessionRepository, *gorm.DB) {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.SessionModel{}))

	return NewSessionRepository(db), db
}

func testPayload(role entity.Role) entity.SessionPayload {
	return entity.SessionPayload{
		Identity: entity.Identity{UserID: uuid.New(), Email: "u@example.com", Role: role},
		IssuedAt: time.Now(),
	}
}

func sessionRowCount(t *testing.T, db *gorm.DB, id string) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&model.SessionModel{}).Where("id = ?", id).Count(&count).Error)

	return count
}

func TestSessionRepository_GetHonorsTTL(t *testing.T) {
	repo, db := newSessionRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "live", testPayload(entity.RoleStudent), time.Hour))
	require.NoError(t, repo.Set(ctx, "expired", testPayload(entity.RoleStudent), -time.Minute))

	session, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, "u@example.com", session.Payload.Identity.Email)

	session, err = repo.Get(ctx, "expired")
	require.NoError(t, err)
	assert.Nil(t, session)

	// Lazy expiry removed the row, not just hid it.
	assert.Equal(t, int64(0), sessionRowCount(t, db, "expired"))
	assert.Equal(t, int64(1), sessionRowCount(t, db, "live"))
}

func TestSessionRepository_GetMissingIsAbsentNotError(t *testing.T) {
	repo, _ := newSessionRepoForTest(t)

	session, err := repo.Get(context.Background(), "never-written")

	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_SetUpsertsOneRow(t *testing.T) {
	repo, db := newSessionRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "tab", testPayload(entity.RoleStudent), time.Hour))
	require.NoError(t, repo.Set(ctx, "tab", testPayload(entity.RoleAdmin), time.Hour))

	assert.Equal(t, int64(1), sessionRowCount(t, db, "tab"))

	session, err := repo.Get(ctx, "tab")
	require.NoError(t, err)
	require.NotNil(t, session)
	assert.Equal(t, entity.RoleAdmin, session.Payload.Identity.Role)
}

func TestSessionRepository_DestroyIsIdempotent(t *testing.T) {
	repo, _ := newSessionRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Destroy(ctx, "never-written"))

	require.NoError(t, repo.Set(ctx, "gone", testPayload(entity.RoleStudent), time.Hour))
	require.NoError(t, repo.Destroy(ctx, "gone"))
	require.NoError(t, repo.Destroy(ctx, "gone"))

	session, err := repo.Get(ctx, "gone")
	require.NoError(t, err)
	assert.Nil(t, session)
}

func TestSessionRepository_DeleteExpiredSweepsOnlyStaleRows(t *testing.T) {
	repo, db := newSessionRepoForTest(t)
	ctx := context.Background()

	require.NoError(t, repo.Set(ctx, "stale-1", testPayload(entity.RoleStudent), -time.Minute))
	require.NoError(t, repo.Set(ctx, "stale-2", testPayload(entity.RoleStudent), -time.Second))
	require.NoError(t, repo.Set(ctx, "live", testPayload(entity.RoleStudent), time.Hour))

	deleted, err := repo.DeleteExpired(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(2), deleted)

	assert.Equal(t, int64(1), sessionRowCount(t, db, "live"))

	session, err := repo.Get(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, session)
}
