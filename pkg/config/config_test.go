package config_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/consulta-cnpj/pkg/config"
)

func TestLoad_ValoresPorDefecto(t *testing.T) {
	t.Setenv("DATABASE_URL", "")
	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "consulta-cnpj", cfg.App.Name)
	assert.Equal(t, 5432, cfg.DB.Port)
	assert.Equal(t, 100, cfg.Batch.MaxSize)
	assert.Equal(t, 10*time.Second, cfg.HTTP.ReadTimeout)
	assert.False(t, cfg.JWT.Enabled())
}

func TestLoad_DesdeEntorno(t *testing.T) {
	t.Setenv("HTTP_PORT", "9090")
	t.Setenv("DB_PORT", "6543")
	t.Setenv("JWT_SECRET", "s3cr3t")
	t.Setenv("BATCH_MAX_SIZE", "10")
	t.Setenv("HTTP_READ_TIMEOUT", "3s")

	cfg, err := config.Load()
	require.NoError(t, err)

	assert.Equal(t, "0.0.0.0:9090", cfg.HTTP.Addr())
	assert.Equal(t, 6543, cfg.DB.Port)
	assert.True(t, cfg.JWT.Enabled())
	assert.Equal(t, 10, cfg.Batch.MaxSize)
	assert.Equal(t, 3*time.Second, cfg.HTTP.ReadTimeout)
}

func TestLoad_BatchInvalido(t *testing.T) {
	t.Setenv("BATCH_MAX_SIZE", "0")
	_, err := config.Load()
	assert.Error(t, err)
}

func TestDBConfig_ConnectionString(t *testing.T) {
	c := config.DBConfig{Host: "db", Port: 5432, User: "app", Password: "p@ss:word", DBName: "cnpj", SSLMode: "disable"}
	assert.Equal(t, "postgres://app:p%40ss%3Aword@db:5432/cnpj?sslmode=disable", c.ConnectionString())

	c.DatabaseURL = "postgres://x@y/z"
	assert.Equal(t, "postgres://x@y/z", c.ConnectionString())
}

func TestLoad_TimeoutInvalido(t *testing.T) {
	t.Setenv("HTTP_READ_TIMEOUT", "0s")
	_, err := config.Load()
	assert.Error(t, err)
}
