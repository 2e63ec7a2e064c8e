package database

import (
	"context"
	"fmt"
	"testing"

	"github.com/RigelNana/arksignup/services/signup-service/config"
	"github.com/RigelNana/arksignup/services/signup-service/models"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOpen_SQLite(t *testing.T) {
	ctx := context.Background()
	cfg := config.StoreConfig{
		Driver: config.DriverSQLite,
		DSN:    fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString()),
	}

	repo, err := Open(ctx, cfg, logrus.New())
	require.NoError(t, err)
	t.Cleanup(func() { _ = repo.Close(ctx) })

	assert.Equal(t, config.DriverSQLite, repo.Driver())
	require.NoError(t, repo.Ping(ctx))

	id, err := repo.Insert(ctx, models.Signup{"name": "kjo"})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestOpen_UnknownDriver(t *testing.T) {
	_, err := Open(context.Background(), config.StoreConfig{Driver: "cassandra"}, logrus.New())
	assert.EqualError(t, err, `unsupported store driver "cassandra"`)
}
