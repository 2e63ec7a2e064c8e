package repository

import (
	"context"
	"fmt"
	"testing"

	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newSQLiteRepo(t *testing.T) *GormSignupRepository {
	t.Helper()
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Discard})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.SignupRow{}))

	repo := NewGormSignupRepository(db, "sqlite")
	t.Cleanup(func() { _ = repo.Close(context.Background()) })
	return repo
}

func TestGormSignupRepository_InsertAndFindAll(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	first, err := repo.Insert(ctx, models.Signup{"name": "kjo", "email": "kjo@example.com"})
	require.NoError(t, err)
	second, err := repo.Insert(ctx, models.Signup{"name": "ada", "age": "36"})
	require.NoError(t, err)

	assert.NotEmpty(t, first)
	assert.NotEqual(t, first, second)
	_, err = uuid.Parse(first)
	assert.NoError(t, err)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.ElementsMatch(t, []models.Signup{
		{"name": "kjo", "email": "kjo@example.com"},
		{"name": "ada", "age": "36"},
	}, all)
}

func TestGormSignupRepository_DropsClientID(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	id, err := repo.Insert(ctx, models.Signup{"_id": "mine", "name": "kjo"})
	require.NoError(t, err)
	assert.NotEqual(t, "mine", id)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.NotContains(t, all[0], models.IDField)
}

func TestGormSignupRepository_EmptyRecordAndEmptyTable(t *testing.T) {
	ctx := context.Background()
	repo := newSQLiteRepo(t)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.NotNil(t, all)
	assert.Empty(t, all)

	_, err = repo.Insert(ctx, models.Signup{})
	require.NoError(t, err)

	all, err = repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Equal(t, []models.Signup{{}}, all)
}

func TestGormSignupRepository_PingAndDriver(t *testing.T) {
	repo := newSQLiteRepo(t)
	assert.NoError(t, repo.Ping(context.Background()))
	assert.Equal(t, "sqlite", repo.Driver())
}

func TestWithMetrics_PassesThrough(t *testing.T) {
	ctx := context.Background()
	repo := WithMetrics(newSQLiteRepo(t))

	id, err := repo.Insert(ctx, models.Signup{"name": "kjo"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)

	all, err := repo.FindAll(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.Equal(t, "sqlite", repo.Driver())
}
