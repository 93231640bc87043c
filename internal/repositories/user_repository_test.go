package repositories

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nebulanotes/internal/models"
)

func TestUserRepository_CreateAndFind(t *testing.T) {
	pool, db := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(pool)

	u := &models.User{Username: "  dave ", Email: "dave@example.com", PasswordHash: "hash"}
	require.NoError(t, users.CreateWithProfile(ctx, u))
	assert.NotZero(t, u.ID)
	assert.Equal(t, "dave", u.Username)

	byName, err := users.FindUserByUsername(ctx, "dave")
	require.NoError(t, err)
	require.NotNil(t, byName)
	assert.Equal(t, u.ID, byName.ID)
	assert.Nil(t, byName.LastLoginAt)

	missing, err := users.FindUserByUsername(ctx, "nobody")
	require.NoError(t, err)
	assert.Nil(t, missing)

	now := time.Now().UTC().Truncate(time.Second)
	require.NoError(t, users.UpdateLastLogin(ctx, u.ID, now))
	byID, err := users.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, byID.LastLoginAt)
	assert.True(t, now.Equal(*byID.LastLoginAt))

	var profiles int64
	require.NoError(t, db.Model(&models.UserProfile{}).Where("user_id = ?", u.ID).Count(&profiles).Error)
	assert.Equal(t, int64(1), profiles)

	dup := &models.User{Username: "dave", Email: "other@example.com", PasswordHash: "hash"}
	assert.ErrorIs(t, users.CreateWithProfile(ctx, dup), ErrDuplicateKey)
}

func TestUserRepository_EmailStoredVerbatim(t *testing.T) {
	pool, _ := setupTestDB(t)
	ctx := context.Background()
	users := NewUserRepository(pool)

	u := &models.User{Username: "obrien", Email: " o'brien&co@example.com ", PasswordHash: "hash"}
	require.NoError(t, users.CreateWithProfile(ctx, u))

	got, err := users.FindUserByID(ctx, u.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "o'brien&co@example.com", got.Email)
}

func TestRedisRepository_Sessions(t *testing.T) {
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })

	repo := NewRedisRepository(rdb)
	ctx := context.Background()

	require.NoError(t, repo.StoreSession(ctx, "abc", 42, time.Hour))
	assert.True(t, mr.Exists("session:abc"))

	userID, ok, err := repo.SessionUser(ctx, "abc")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, int64(42), userID)

	mr.FastForward(2 * time.Hour)
	_, ok, err = repo.SessionUser(ctx, "abc")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.StoreSession(ctx, "def", 7, time.Hour))
	require.NoError(t, repo.DeleteSession(ctx, "def"))
	_, ok, err = repo.SessionUser(ctx, "def")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, repo.Ping(ctx))
}
